package datemath

import (
	"errors"
	"fmt"
	"strings"
	"time"
)

// ISOLayout is the millisecond-precision UTC layout used for event timestamps.
const ISOLayout = "2006-01-02T15:04:05.000Z"

// ErrInvalidTimestamp is returned when a value matches none of the accepted layouts.
var ErrInvalidTimestamp = errors.New("datemath: invalid timestamp")

// zone-less layouts are read as UTC
var acceptedLayouts = []string{
	time.RFC3339Nano,
	"2006-01-02T15:04:05.999999999",
	"2006-01-02T15:04",
}

// ParseISO parses an ISO-8601 timestamp and returns it in UTC.
func ParseISO(value string) (time.Time, error) {
	value = strings.TrimSpace(value)
	if value == "" {
		return time.Time{}, fmt.Errorf("%w: empty", ErrInvalidTimestamp)
	}
	for _, layout := range acceptedLayouts {
		if t, err := time.Parse(layout, value); err == nil {
			return t.UTC(), nil
		}
	}
	return time.Time{}, fmt.Errorf("%w: %q", ErrInvalidTimestamp, value)
}

// FormatISO formats t in UTC using ISOLayout.
func FormatISO(t time.Time) string {
	return t.UTC().Format(ISOLayout)
}

// WithYear moves t to the given year keeping month, day and time of day.
// Feb 29 moved into a non-leap year becomes Feb 28.
func WithYear(t time.Time, year int) time.Time {
	if t.Year() == year {
		return t
	}
	day := t.Day()
	if t.Month() == time.February && day == 29 && !isLeap(year) {
		day = 28
	}
	return time.Date(year, t.Month(), day, t.Hour(), t.Minute(), t.Second(), t.Nanosecond(), t.Location())
}

func isLeap(year int) bool {
	return year%4 == 0 && (year%100 != 0 || year%400 == 0)
}
