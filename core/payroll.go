package core

import (
	"math"
	"time"
)

// DefaultBreakHours is deducted from clocked time when a record carries no
// explicit break.
const DefaultBreakHours = 1.0

// Remainder-minute pay buckets. Partial hours are paid in quarter-hour
// steps, not pro-rata: the step only unlocks once the boundary is reached.
const (
	threeQuarterMinutes = 45
	halfHourMinutes     = 30
	quarterHourMinutes  = 15
)

// PayBreakdown holds the computed fields written back onto an attendance
// record after checkout.
type PayBreakdown struct {
	TotalHours   float64
	WorkingHours float64
	RegularPay   float64
	TotalPay     float64
}

// CalcPay converts a clock-in/clock-out pair into working hours and pay.
// Whole working hours are paid at the full hourly rate; the remaining
// minutes are paid through the quarter-hour step function. Negative spans
// are clamped to zero working time; validity of the pair is the caller's
// problem.
func CalcPay(checkIn, checkOut time.Time, breakHours, hourlyRate float64) PayBreakdown {
	span := checkOut.Sub(checkIn)
	totalHours := span.Hours()

	working := span - time.Duration(breakHours*float64(time.Hour))
	if working < 0 {
		working = 0
	}
	workingHours := working.Hours()

	wholeHours := int(working / time.Hour)
	remainderMinutes := int(working/time.Minute) % 60

	pay := float64(wholeHours)*hourlyRate + PartialHourRate(remainderMinutes)*hourlyRate
	pay = RoundSalary(pay)

	return PayBreakdown{
		TotalHours:   totalHours,
		WorkingHours: workingHours,
		RegularPay:   pay,
		TotalPay:     pay,
	}
}

// PartialHourRate maps leftover minutes beyond the last whole hour to the
// fraction of the hourly rate they earn.
func PartialHourRate(minutes int) float64 {
	switch {
	case minutes >= threeQuarterMinutes:
		return 0.75
	case minutes >= halfHourMinutes:
		return 0.5
	case minutes >= quarterHourMinutes:
		return 0.25
	default:
		return 0
	}
}

// RoundSalary rounds a currency amount to the nearest whole unit, half up.
// Amounts here are never negative, so the floor+threshold form matches the
// payroll convention without banker's rounding surprises.
func RoundSalary(amount float64) float64 {
	floor := math.Floor(amount)
	if amount-floor >= 0.5 {
		return floor + 1
	}
	return floor
}
