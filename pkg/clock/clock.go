// pkg/clock/clock.go
package clock

import (
	"fmt"
	"strings"
	"time"
)

// Times of day travel through the system as zero-padded "HH:MM" strings, the
// same representation the schedule and availability tables store. Once
// normalized, plain string comparison gives chronological order both in Go
// and in SQL.

const layout = "15:04"

var weekdays = map[string]string{
	"monday":    "Monday",
	"tuesday":   "Tuesday",
	"wednesday": "Wednesday",
	"thursday":  "Thursday",
	"friday":    "Friday",
	"saturday":  "Saturday",
	"sunday":    "Sunday",
}

// Parse validates s as a time of day and returns it zero-padded ("9:05" -> "09:05").
func Parse(s string) (string, error) {
	t, err := time.Parse(layout, s)
	if err != nil {
		// Accept a single-digit hour as well.
		t, err = time.Parse("3:04", s)
		if err != nil {
			return "", fmt.Errorf("invalid time of day %q: %w", s, err)
		}
	}
	return t.Format(layout), nil
}

// Minutes returns the elapsed minutes between two normalized times of day.
func Minutes(start, end string) (int, error) {
	st, err := time.Parse(layout, start)
	if err != nil {
		return 0, fmt.Errorf("invalid time of day %q: %w", start, err)
	}
	et, err := time.Parse(layout, end)
	if err != nil {
		return 0, fmt.Errorf("invalid time of day %q: %w", end, err)
	}
	return int(et.Sub(st) / time.Minute), nil
}

// Before reports whether normalized time a is strictly earlier than b.
func Before(a, b string) bool { return a < b }

// Contains reports whether [outerStart, outerEnd] fully contains [start, end].
func Contains(outerStart, outerEnd, start, end string) bool {
	return outerStart <= start && outerEnd >= end
}

// Weekday validates s as an English weekday name and returns it canonically
// capitalized.
func Weekday(s string) (string, error) {
	if d, ok := weekdays[strings.ToLower(s)]; ok {
		return d, nil
	}
	return "", fmt.Errorf("invalid day of week %q", s)
}
