package sqlite

import (
	"fmt"
	"time"
	"unicode/utf8"
)

// parseRFC3339 parses an RFC3339 formatted timestamp string.
// Returns an error if parsing fails with a descriptive message including the field name.
func parseRFC3339(value, fieldName string) (time.Time, error) {
	t, err := time.Parse(time.RFC3339, value)
	if err != nil {
		return time.Time{}, fmt.Errorf("failed to parse %s: %w", fieldName, err)
	}
	return t, nil
}

// parseKey decodes a frequency key stored as a single-character string.
// A stored U+FFFD is a valid key; only undecodable bytes are rejected.
func parseKey(value string) (rune, error) {
	r, size := utf8.DecodeRuneInString(value)
	if (r == utf8.RuneError && size <= 1) || size != len(value) {
		return 0, fmt.Errorf("invalid frequency key %q", value)
	}
	return r, nil
}
