package utils

import (
	"fmt"
	"time"
)

const DateLayout = "2006-01-02"

// DayStart normalises a timestamp to local midnight, which is the calendar
// day key attendance rows are unique on.
func DayStart(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

// IsSunday reports whether the date falls on the fixed weekly off day.
func IsSunday(t time.Time) bool {
	return t.Weekday() == time.Sunday
}

// MonthRange returns the first day of the month and the first day of the
// following month, for half-open [from, to) date queries.
func MonthRange(year int, month time.Month) (time.Time, time.Time) {
	from := time.Date(year, month, 1, 0, 0, 0, 0, time.UTC)
	return from, from.AddDate(0, 1, 0)
}

func MustParseDate(dateStr string) time.Time {
	t, _ := time.ParseInLocation(DateLayout, dateStr, time.UTC)
	return t
}

// ParseISOTime accepts the timestamp formats the portal clients send.
func ParseISOTime(s string) (*time.Time, error) {
	if s == "" {
		return nil, fmt.Errorf("empty time string")
	}

	t, err := time.Parse(time.RFC3339, s)
	if err == nil {
		return &t, nil
	}

	t, err = time.Parse(time.RFC3339Nano, s)
	if err == nil {
		return &t, nil
	}

	layouts := []string{
		"2006-01-02 15:04:05",
		"2006-01-02T15:04:05",
		DateLayout,
	}
	for _, layout := range layouts {
		if tt, e := time.ParseInLocation(layout, s, time.UTC); e == nil {
			return &tt, nil
		}
	}

	return nil, fmt.Errorf("failed to parse time: %v", s)
}

// ClockLabel renders the display string stored next to each check-in/out
// timestamp, e.g. "09:05 AM".
func ClockLabel(t time.Time) string {
	return t.Format("03:04 PM")
}
