package domain

import (
	"fmt"
	"time"
)

// dateKeyLayout is the calendar date key format used as the uniqueness key
// for per-day records. Keys are formatted from the device-local clock, so
// lexical order equals chronological order.
const dateKeyLayout = "2006-01-02"

// DateKey formats t's local calendar date as a YYYY-MM-DD key.
func DateKey(t time.Time) string {
	return t.Format(dateKeyLayout)
}

// ParseDateKey parses a YYYY-MM-DD date key in the local time zone.
// Returns ErrInvalidDateKey if the value is malformed.
func ParseDateKey(key string) (time.Time, error) {
	t, err := time.ParseInLocation(dateKeyLayout, key, time.Local)
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: %q", ErrInvalidDateKey, key)
	}
	return t, nil
}

// ValidDateKey reports whether key is a well-formed date key.
func ValidDateKey(key string) bool {
	_, err := ParseDateKey(key)
	return err == nil
}
