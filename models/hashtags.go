package models

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
)

// HashtagList stores a list of hashtags as a JSON array in a single text column.
type HashtagList []string

// Value implements driver.Valuer.
func (h HashtagList) Value() (driver.Value, error) {
	if h == nil {
		h = HashtagList{}
	}
	b, err := json.Marshal(h)
	if err != nil {
		return nil, err
	}
	return string(b), nil
}

// Scan implements sql.Scanner.
func (h *HashtagList) Scan(src interface{}) error {
	if src == nil {
		*h = HashtagList{}
		return nil
	}
	switch v := src.(type) {
	case []byte:
		return json.Unmarshal(v, h)
	case string:
		return json.Unmarshal([]byte(v), h)
	default:
		return fmt.Errorf("unsupported hashtag column type %T", src)
	}
}
