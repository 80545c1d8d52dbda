package utils

import "strings"

// UniqueStrings removes duplicates from a slice of strings, preserving order.
func UniqueStrings(slice []string) []string {
	keys := make(map[string]bool)
	list := []string{}
	for _, entry := range slice {
		if _, seen := keys[entry]; !seen {
			keys[entry] = true
			list = append(list, entry)
		}
	}
	return list
}

// NormalizeHashtags trims, lowercases and dedupes hashtags, ensuring each
// carries a leading '#'. Empty entries are dropped.
func NormalizeHashtags(tags []string) []string {
	out := []string{}
	for _, t := range tags {
		t = strings.ToLower(strings.TrimSpace(t))
		if t == "" || t == "#" {
			continue
		}
		if !strings.HasPrefix(t, "#") {
			t = "#" + t
		}
		out = append(out, t)
	}
	return UniqueStrings(out)
}
