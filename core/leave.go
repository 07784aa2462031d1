package core

import (
	"errors"
	"fmt"
	"time"

	"attendly.com/attendly/model"
	"attendly.com/attendly/utils"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// MaxLeaveDays caps a single request; longer absences need a second one.
const MaxLeaveDays = 7

// LeaveDayCount is the inclusive number of calendar days a request spans.
func LeaveDayCount(startDate, endDate time.Time) int {
	start := utils.DayStart(startDate)
	end := utils.DayStart(endDate)
	return int(end.Sub(start).Hours()/24) + 1
}

// ValidateLeaveRange enforces the submission rules: no past start date
// (date-only comparison against now), end not before start, and at most
// MaxLeaveDays inclusive days. Wire dates are UTC midnights, so "today"
// is the current UTC calendar date whatever zone the server runs in.
func ValidateLeaveRange(startDate, endDate, now time.Time) error {
	start := utils.DayStart(startDate)
	end := utils.DayStart(endDate)
	today := utils.DayStart(now.UTC())

	if start.Before(today) || end.Before(start) {
		return ErrInvalidRange
	}
	if LeaveDayCount(start, end) > MaxLeaveDays {
		return ErrDurationExceeded
	}
	return nil
}

// SubmitLeave files a pending request for the employee.
func SubmitLeave(db *gorm.DB, employeeID uint, leaveType string, startDate, endDate time.Time, reason string) (*model.LeaveRequest, error) {
	var emp model.Employee
	if err := db.First(&emp, employeeID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrEmployeeNotFound
		}
		return nil, fmt.Errorf("failed to fetch employee: %w", err)
	}

	now := time.Now()
	if err := ValidateLeaveRange(startDate, endDate, now); err != nil {
		return nil, err
	}

	leave := model.LeaveRequest{
		EmployeeID:       employeeID,
		EmployeeSnapshot: emp.Snapshot(),
		LeaveType:        leaveType,
		StartDate:        utils.DayStart(startDate),
		EndDate:          utils.DayStart(endDate),
		TotalDays:        LeaveDayCount(startDate, endDate),
		Reason:           reason,
		Status:           model.LeavePending,
		AppliedDate:      utils.DayStart(now.UTC()),
	}
	if err := db.Create(&leave).Error; err != nil {
		return nil, fmt.Errorf("failed to create leave request: %w", err)
	}
	return &leave, nil
}

// ResolveLeave moves a request to its terminal Approved or Rejected state,
// recording who resolved it and when in the matching field pair.
func ResolveLeave(db *gorm.DB, id uuid.UUID, status, resolver string) (*model.LeaveRequest, error) {
	var leave model.LeaveRequest
	if err := db.First(&leave, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrLeaveNotFound
		}
		return nil, fmt.Errorf("failed to fetch leave request: %w", err)
	}

	now := time.Now()
	switch status {
	case model.LeaveApproved:
		leave.Status = model.LeaveApproved
		leave.ApprovedBy = utils.Ptr(resolver)
		leave.ApprovedAt = utils.Ptr(now)
	case model.LeaveRejected:
		leave.Status = model.LeaveRejected
		leave.RejectedBy = utils.Ptr(resolver)
		leave.RejectedAt = utils.Ptr(now)
	default:
		return nil, fmt.Errorf("unknown leave status: %q", status)
	}

	if err := db.Save(&leave).Error; err != nil {
		return nil, fmt.Errorf("failed to update leave request: %w", err)
	}
	return &leave, nil
}

// DeleteLeave removes a request. Resolved requests are part of the payroll
// record and stay forever; only pending ones can be withdrawn.
func DeleteLeave(db *gorm.DB, id uuid.UUID) error {
	var leave model.LeaveRequest
	if err := db.First(&leave, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrLeaveNotFound
		}
		return fmt.Errorf("failed to fetch leave request: %w", err)
	}
	if leave.Status != model.LeavePending {
		return ErrInvalidState
	}
	if err := db.Delete(&leave).Error; err != nil {
		return fmt.Errorf("failed to delete leave request: %w", err)
	}
	return nil
}
