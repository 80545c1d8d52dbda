package utils

import (
	"strings"

	"github.com/microcosm-cc/bluemonday"
)

var sanitizer = bluemonday.UGCPolicy()

// Sanitize cleans HTML in user-authored content to prevent XSS attacks.
func Sanitize(input string) string {
	return sanitizer.Sanitize(input)
}

// MakePreview derives a feed preview from note content: sanitized, trimmed
// to at most max runes with an ellipsis when truncated.
func MakePreview(content string, max int) string {
	clean := strings.TrimSpace(Sanitize(content))
	runes := []rune(clean)
	if len(runes) <= max {
		return clean
	}
	return string(runes[:max]) + "..."
}
