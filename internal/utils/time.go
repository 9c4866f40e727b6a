package utils

import (
	"fmt"
	"strings"
	"time"
)

// LoadLocation resolves a configured timezone name. Empty or "local" means the
// machine's local zone.
func LoadLocation(name string) (*time.Location, error) {
	if name == "" || strings.EqualFold(name, "local") {
		return time.Local, nil
	}
	loc, err := time.LoadLocation(name)
	if err != nil {
		return nil, fmt.Errorf("failed to load location %s: %w", name, err)
	}
	return loc, nil
}

// FormatLocal returns the provided time formatted in the given location.
func FormatLocal(t time.Time, loc *time.Location) string {
	return t.In(loc).Format("Mon 02 Jan 2006 15:04")
}

// StartOfDay returns 00:00 of t's calendar day in t's location.
func StartOfDay(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, t.Location())
}

// ParseDay parses a calendar day in the given location. Accepts 2006-01-02 and 02/01/06.
func ParseDay(s string, loc *time.Location) (time.Time, error) {
	t, err := time.ParseInLocation("2006-01-02", s, loc)
	if err != nil {
		t, err = time.ParseInLocation("02/01/06", s, loc)
	}
	if err != nil {
		return time.Time{}, fmt.Errorf("failed to parse day %q: %w", s, err)
	}
	return t, nil
}

// EndOfDay returns 23:59:59.999 of t's calendar day.
func EndOfDay(t time.Time) time.Time {
	return StartOfDay(t).AddDate(0, 0, 1).Add(-time.Millisecond)
}
