package dbtime

import (
	"strings"
	"time"
)

// ClockLayout is how a time of day is rendered, e.g. "9:30 AM".
const ClockLayout = "3:04 PM"

var dateLayouts = []string{
	time.RFC3339Nano,
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05",
	"2006-01-02",
}

// NowUTC is the single clock source of handlers.
func NowUTC() time.Time {
	return time.Now().UTC()
}

// FormatClock renders the time-of-day part of t.
func FormatClock(t time.Time) string {
	return t.Format(ClockLayout)
}

// ParseFlexible accepts RFC3339 and a few date-only layouts (multipart forms
// carry dates as plain strings). The result is UTC.
func ParseFlexible(raw string) (time.Time, bool) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return time.Time{}, false
	}
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, raw); err == nil {
			return t.UTC(), true
		}
	}
	return time.Time{}, false
}

// ParseFlexiblePtr is ParseFlexible returning nil for empty or invalid input.
func ParseFlexiblePtr(raw string) *time.Time {
	t, ok := ParseFlexible(raw)
	if !ok {
		return nil
	}
	return &t
}
