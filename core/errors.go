package core

import "errors"

// Failure taxonomy surfaced to the HTTP layer. Handlers map these with
// errors.Is: not-found pairs to 404, the rest to 400.
var (
	ErrEmployeeNotFound  = errors.New("employee not found")
	ErrRecordNotFound    = errors.New("attendance record not found")
	ErrLeaveNotFound     = errors.New("leave request not found")
	ErrInvalidState      = errors.New("operation not allowed in the current state")
	ErrOffDay            = errors.New("cannot mark attendance on an off day")
	ErrDuplicateRequest  = errors.New("check-in already requested for this day")
	ErrDuplicateEmail    = errors.New("an employee with this email already exists")
	ErrAlreadyCheckedOut = errors.New("already checked out for this day")
	ErrNoApprovedCheckIn = errors.New("no approved check-in found for this day")
	ErrInvalidRange      = errors.New("invalid leave date range")
	ErrDurationExceeded  = errors.New("leave duration exceeds the maximum of 7 days")
)
