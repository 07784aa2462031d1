package core

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestLeaveDayCount(t *testing.T) {
	day := func(d int) time.Time {
		return time.Date(2025, 6, d, 0, 0, 0, 0, time.UTC)
	}

	tests := []struct {
		name     string
		start    time.Time
		end      time.Time
		expected int
	}{
		{name: "single day", start: day(2), end: day(2), expected: 1},
		{name: "full week", start: day(2), end: day(8), expected: 7},
		{name: "eight days", start: day(2), end: day(9), expected: 8},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, LeaveDayCount(tt.start, tt.end))
		})
	}
}

func TestValidateLeaveRange(t *testing.T) {
	// mid-morning "now" so the date-only comparison is what matters
	now := time.Date(2025, 6, 10, 10, 30, 0, 0, time.UTC)
	day := func(d int) time.Time {
		return time.Date(2025, 6, d, 0, 0, 0, 0, time.UTC)
	}

	tests := []struct {
		name     string
		start    time.Time
		end      time.Time
		expected error
	}{
		{name: "today single day", start: day(10), end: day(10), expected: nil},
		{name: "seven day cap accepted", start: day(10), end: day(16), expected: nil},
		{name: "eight days rejected", start: day(10), end: day(17), expected: ErrDurationExceeded},
		{name: "start yesterday rejected", start: day(9), end: day(12), expected: ErrInvalidRange},
		{name: "end before start rejected", start: day(12), end: day(11), expected: ErrInvalidRange},
		{name: "future range accepted", start: day(20), end: day(24), expected: nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateLeaveRange(tt.start, tt.end, now)
			if tt.expected == nil {
				assert.NoError(t, err)
			} else {
				assert.ErrorIs(t, err, tt.expected)
			}
		})
	}
}

func TestValidateLeaveRangeNonUTCServerClock(t *testing.T) {
	// Wire dates are UTC midnights; the server zone must not shift the
	// date-only comparison. A request starting today stays valid on a
	// server running west or east of UTC.
	today := time.Date(2025, 6, 10, 0, 0, 0, 0, time.UTC)

	tests := []struct {
		name string
		now  time.Time
	}{
		{name: "west of UTC", now: time.Date(2025, 6, 10, 10, 0, 0, 0, time.FixedZone("UTC-5", -5*3600))},
		{name: "east of UTC", now: time.Date(2025, 6, 10, 23, 30, 0, 0, time.FixedZone("UTC+9", 9*3600))},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.NoError(t, ValidateLeaveRange(today, today, tt.now))
			assert.NoError(t, ValidateLeaveRange(today, today.AddDate(0, 0, 6), tt.now))
		})
	}
}

func TestValidateLeaveRangePastStartWinsOverDuration(t *testing.T) {
	// a past start is rejected as an invalid range regardless of the end
	now := time.Date(2025, 6, 10, 0, 0, 0, 0, time.UTC)
	start := time.Date(2025, 6, 9, 0, 0, 0, 0, time.UTC)
	end := time.Date(2025, 7, 9, 0, 0, 0, 0, time.UTC)

	assert.ErrorIs(t, ValidateLeaveRange(start, end, now), ErrInvalidRange)
}
