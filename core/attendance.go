package core

import (
	"errors"
	"fmt"
	"time"

	"attendly.com/attendly/model"
	"attendly.com/attendly/utils"
	"gorm.io/gorm"
)

// Location is the optional geotag sent by the portal when the device
// allows it.
type Location struct {
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}

func findClockableEmployee(db *gorm.DB, employeeID uint) (*model.Employee, error) {
	var emp model.Employee
	if err := db.First(&emp, employeeID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrEmployeeNotFound
		}
		return nil, fmt.Errorf("failed to fetch employee: %w", err)
	}
	if !emp.CanClock() {
		return nil, ErrInvalidState
	}
	return &emp, nil
}

func findDayRecord(db *gorm.DB, employeeID uint, day time.Time) (*model.AttendanceRecord, error) {
	var rec model.AttendanceRecord
	err := db.Where("employee_id = ? AND date = ?", employeeID, day.Format(utils.DateLayout)).
		First(&rec).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to fetch attendance record: %w", err)
	}
	return &rec, nil
}

// ValidateCheckIn decides whether a new check-in may be lodged given the
// day's existing record, if any. Only a rejected attempt may be retried;
// anything else live for the day is a duplicate.
func ValidateCheckIn(existing *model.AttendanceRecord) error {
	if existing != nil && existing.ApprovalStatus != model.ApprovalRejected {
		return ErrDuplicateRequest
	}
	return nil
}

// ValidateCheckOut requires an approved check-in and no checkout yet.
func ValidateCheckOut(rec *model.AttendanceRecord) error {
	if rec == nil || !rec.CheckInApproved() {
		return ErrNoApprovedCheckIn
	}
	if rec.CheckOutTime != nil {
		return ErrAlreadyCheckedOut
	}
	return nil
}

func applyLocation(rec *model.AttendanceRecord, loc *Location) {
	if loc == nil {
		rec.Method = model.MethodManual
		return
	}
	rec.Method = model.MethodLocation
	rec.Latitude = utils.Ptr(loc.Latitude)
	rec.Longitude = utils.Ptr(loc.Longitude)
}

// RequestCheckIn lodges the first half of a day's attendance. The record is
// created pending and stays invisible to reports until an admin approves it.
// A rejected earlier attempt for the same day is overwritten in place; a
// live one fails as a duplicate. The (employee, date) unique index backstops
// the race between two concurrent first attempts.
func RequestCheckIn(db *gorm.DB, employeeID uint, loc *Location, ts time.Time) (*model.AttendanceRecord, error) {
	emp, err := findClockableEmployee(db, employeeID)
	if err != nil {
		return nil, err
	}

	// the day key is the UTC calendar date, matching reconciliation rows
	if utils.IsSunday(ts.UTC()) {
		return nil, ErrOffDay
	}
	day := utils.DayStart(ts.UTC())

	existing, err := findDayRecord(db, employeeID, day)
	if err != nil {
		return nil, err
	}
	if err := ValidateCheckIn(existing); err != nil {
		return nil, err
	}

	rec := model.AttendanceRecord{
		EmployeeID:       employeeID,
		EmployeeSnapshot: emp.Snapshot(),
		Date:             day,
		CheckInTime:      utils.Ptr(ts),
		CheckIn:          utils.ClockLabel(ts),
		BreakTime:        DefaultBreakHours,
		Status:           model.StatusPresent,
		ApprovalStatus:   model.ApprovalPending,
		RequestType:      utils.Ptr(model.RequestCheckIn),
	}
	applyLocation(&rec, loc)

	if existing != nil {
		// retry after rejection reuses the row
		rec.ID = existing.ID
		rec.CreatedAt = existing.CreatedAt
		if err := db.Save(&rec).Error; err != nil {
			return nil, fmt.Errorf("failed to update attendance record: %w", err)
		}
		return &rec, nil
	}

	if err := db.Create(&rec).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, ErrDuplicateRequest
		}
		return nil, fmt.Errorf("failed to create attendance record: %w", err)
	}
	return &rec, nil
}

// RequestCheckOut closes the day. Unlike check-in it never waits for an
// admin: presence was already vetted at check-in, so the checkout only
// drives pay computation and is approved on the spot.
func RequestCheckOut(db *gorm.DB, employeeID uint, loc *Location, ts time.Time) (*model.AttendanceRecord, error) {
	emp, err := findClockableEmployee(db, employeeID)
	if err != nil {
		return nil, err
	}

	if utils.IsSunday(ts.UTC()) {
		return nil, ErrOffDay
	}
	day := utils.DayStart(ts.UTC())

	rec, err := findDayRecord(db, employeeID, day)
	if err != nil {
		return nil, err
	}
	if err := ValidateCheckOut(rec); err != nil {
		return nil, err
	}

	pay := CalcPay(*rec.CheckInTime, ts, rec.BreakTime, emp.HourlyRate)

	rec.CheckOutTime = utils.Ptr(ts)
	rec.CheckOut = utils.ClockLabel(ts)
	rec.TotalHours = pay.TotalHours
	rec.WorkingHours = pay.WorkingHours
	rec.RegularPay = pay.RegularPay
	rec.TotalPay = pay.TotalPay
	rec.ApprovalStatus = model.ApprovalApproved
	rec.RequestType = utils.Ptr(model.RequestCheckOut)
	applyLocation(rec, loc)

	if err := db.Save(rec).Error; err != nil {
		return nil, fmt.Errorf("failed to update attendance record: %w", err)
	}
	return rec, nil
}

const (
	ActionApprove = "approve"
	ActionReject  = "reject"
)

// ApplyApproval resolves a pending request in place. Approving a checkout
// recomputes pay retroactively at the employee's current rate, so emp must
// be supplied on that path; rejecting wipes the half of the day being
// rejected so it can be lodged again.
func ApplyApproval(rec *model.AttendanceRecord, emp *model.Employee, action, targetStatus string) error {
	requestType := ""
	if rec.RequestType != nil {
		requestType = *rec.RequestType
	}

	switch action {
	case ActionApprove:
		rec.ApprovalStatus = model.ApprovalApproved
		if targetStatus == "" {
			targetStatus = model.StatusPresent
		}
		rec.Status = targetStatus

		if requestType == model.RequestCheckOut && rec.CheckInTime != nil && rec.CheckOutTime != nil {
			if emp == nil {
				return ErrEmployeeNotFound
			}
			pay := CalcPay(*rec.CheckInTime, *rec.CheckOutTime, rec.BreakTime, emp.HourlyRate)
			rec.TotalHours = pay.TotalHours
			rec.WorkingHours = pay.WorkingHours
			rec.RegularPay = pay.RegularPay
			rec.TotalPay = pay.TotalPay
		}
		rec.RequestType = nil

	case ActionReject:
		rec.ApprovalStatus = model.ApprovalRejected
		rec.Status = model.StatusAbsent
		switch requestType {
		case model.RequestCheckOut:
			rec.CheckOutTime = nil
			rec.CheckOut = ""
			rec.TotalHours = 0
			rec.WorkingHours = 0
			rec.RegularPay = 0
			rec.TotalPay = 0
		case model.RequestCheckIn:
			rec.CheckInTime = nil
			rec.CheckIn = ""
		}

	default:
		return fmt.Errorf("unknown approval action: %q", action)
	}
	return nil
}

// Approve loads the record, fetches the employee when pay has to be
// recomputed, and persists the resolution.
func Approve(db *gorm.DB, recordID uint, action, targetStatus string) (*model.AttendanceRecord, error) {
	var rec model.AttendanceRecord
	if err := db.First(&rec, recordID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrRecordNotFound
		}
		return nil, fmt.Errorf("failed to fetch attendance record: %w", err)
	}

	var emp *model.Employee
	if action == ActionApprove && rec.RequestType != nil && *rec.RequestType == model.RequestCheckOut {
		found, err := FindEmployeeByID(db, rec.EmployeeID)
		if err != nil {
			return nil, err
		}
		emp = found
	}

	if err := ApplyApproval(&rec, emp, action, targetStatus); err != nil {
		return nil, err
	}

	if err := db.Save(&rec).Error; err != nil {
		return nil, fmt.Errorf("failed to update attendance record: %w", err)
	}
	return &rec, nil
}
