package core

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestPartialHourRate(t *testing.T) {
	tests := []struct {
		name     string
		minutes  int
		expected float64
	}{
		{name: "zero", minutes: 0, expected: 0},
		{name: "just under quarter", minutes: 14, expected: 0},
		{name: "quarter boundary", minutes: 15, expected: 0.25},
		{name: "just under half", minutes: 29, expected: 0.25},
		{name: "half boundary", minutes: 30, expected: 0.5},
		{name: "just under three quarters", minutes: 44, expected: 0.5},
		{name: "three quarter boundary", minutes: 45, expected: 0.75},
		{name: "last minute of the hour", minutes: 59, expected: 0.75},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, PartialHourRate(tt.minutes))
		})
	}
}

func TestRoundSalary(t *testing.T) {
	tests := []struct {
		name     string
		amount   float64
		expected float64
	}{
		{name: "below half rounds down", amount: 100.49, expected: 100},
		{name: "half rounds up", amount: 100.50, expected: 101},
		{name: "whole stays", amount: 100.0, expected: 100},
		{name: "small fraction up", amount: 0.99, expected: 1},
		{name: "zero", amount: 0, expected: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, RoundSalary(tt.amount))
		})
	}
}

func TestCalcPay(t *testing.T) {
	day := time.Date(2025, 3, 3, 0, 0, 0, 0, time.UTC)
	at := func(hour, min int) time.Time {
		return day.Add(time.Duration(hour)*time.Hour + time.Duration(min)*time.Minute)
	}

	t.Run("standard day with half hour remainder", func(t *testing.T) {
		// 09:00 - 17:30, 1h break, rate 100: 7.5 working hours -> 700 + 50
		pay := CalcPay(at(9, 0), at(17, 30), 1, 100)
		assert.Equal(t, 8.5, pay.TotalHours)
		assert.Equal(t, 7.5, pay.WorkingHours)
		assert.Equal(t, 750.0, pay.RegularPay)
		assert.Equal(t, 750.0, pay.TotalPay)
	})

	t.Run("59 minute remainder stays at three quarters", func(t *testing.T) {
		// 09:00 - 17:59, 1h break: 7h59m working -> 700 + 75
		pay := CalcPay(at(9, 0), at(17, 59), 1, 100)
		assert.Equal(t, 775.0, pay.TotalPay)
	})

	t.Run("remainder under quarter hour earns nothing", func(t *testing.T) {
		// 09:00 - 17:14, 1h break: 7h14m working -> 700
		pay := CalcPay(at(9, 0), at(17, 14), 1, 100)
		assert.Equal(t, 700.0, pay.TotalPay)
	})

	t.Run("whole hours only", func(t *testing.T) {
		pay := CalcPay(at(9, 0), at(18, 0), 1, 50)
		assert.Equal(t, 8.0, pay.WorkingHours)
		assert.Equal(t, 400.0, pay.TotalPay)
	})

	t.Run("span shorter than break clamps to zero", func(t *testing.T) {
		pay := CalcPay(at(9, 0), at(9, 30), 1, 100)
		assert.Equal(t, 0.5, pay.TotalHours)
		assert.Equal(t, 0.0, pay.WorkingHours)
		assert.Equal(t, 0.0, pay.TotalPay)
	})

	t.Run("fractional rate rounds to whole currency", func(t *testing.T) {
		// 2h30m working at 10.50: 2*10.50 + 0.5*10.50 = 26.25 -> 26
		pay := CalcPay(at(9, 0), at(12, 30), 1, 10.50)
		assert.Equal(t, 26.0, pay.TotalPay)
	})
}
