package core

import (
	"fmt"
	"time"

	"attendly.com/attendly/model"
	"attendly.com/attendly/utils"
	"gorm.io/gorm"
)

// MarkedEmployee is the per-employee summary returned to the caller of the
// reconciliation endpoint.
type MarkedEmployee struct {
	EmployeeID   uint   `json:"employeeId"`
	EmployeeName string `json:"employeeName"`
	Department   string `json:"department"`
}

type ReconcileResult struct {
	Date           time.Time
	OffDay         bool
	TotalEmployees int
	Marked         []MarkedEmployee
}

// MissingAttendance returns the Active employees that have no attendance
// row for the day. On Leave employees are not part of the population: they
// are accounted for as on leave, never back-filled as absent.
func MissingAttendance(employees []model.Employee, existing []model.AttendanceRecord) []model.Employee {
	covered := make(map[uint]bool, len(existing))
	for _, rec := range existing {
		covered[rec.EmployeeID] = true
	}
	return utils.Filter(employees, func(e model.Employee) bool {
		return e.Status == model.EmployeeStatusActive && !covered[e.ID]
	})
}

// SyntheticRecord builds the auto-generated row reconciliation writes for
// an employee with no attendance that day.
func SyntheticRecord(emp *model.Employee, day time.Time, status string) model.AttendanceRecord {
	return model.AttendanceRecord{
		EmployeeID:       emp.ID,
		EmployeeSnapshot: emp.Snapshot(),
		Date:             utils.DayStart(day),
		BreakTime:        DefaultBreakHours,
		Status:           status,
		ApprovalStatus:   model.ApprovalApproved,
		Method:           model.MethodAuto,
	}
}

// MarkAbsentees back-fills the day. Weekdays are additive: only Active
// employees still missing a row get an Absent one, so repeated calls are
// no-ops. Sundays are unconditionally non-working, so the day's rows are
// deleted and recreated as Off Day for every Active employee; repeating
// the call replaces them with the same set.
func MarkAbsentees(db *gorm.DB, date time.Time) (*ReconcileResult, error) {
	day := utils.DayStart(date)
	dayStr := day.Format(utils.DateLayout)

	var employees []model.Employee
	if err := db.Find(&employees).Error; err != nil {
		return nil, fmt.Errorf("failed to fetch employees: %w", err)
	}
	active := utils.Filter(employees, func(e model.Employee) bool {
		return e.Status == model.EmployeeStatusActive
	})

	result := &ReconcileResult{
		Date:           day,
		OffDay:         utils.IsSunday(day),
		TotalEmployees: len(active),
		Marked:         []MarkedEmployee{},
	}

	if result.OffDay {
		if err := db.Where("date = ?", dayStr).Delete(&model.AttendanceRecord{}).Error; err != nil {
			return nil, fmt.Errorf("failed to clear off-day records: %w", err)
		}
		for i := range active {
			rec := SyntheticRecord(&active[i], day, model.StatusOffDay)
			if err := db.Create(&rec).Error; err != nil {
				return nil, fmt.Errorf("failed to create off-day record: %w", err)
			}
			result.Marked = append(result.Marked, MarkedEmployee{
				EmployeeID:   active[i].ID,
				EmployeeName: active[i].Name,
				Department:   active[i].Department,
			})
		}
		return result, nil
	}

	var existing []model.AttendanceRecord
	if err := db.Where("date = ?", dayStr).Find(&existing).Error; err != nil {
		return nil, fmt.Errorf("failed to fetch attendance records: %w", err)
	}

	for _, emp := range MissingAttendance(employees, existing) {
		rec := SyntheticRecord(&emp, day, model.StatusAbsent)
		if err := db.Create(&rec).Error; err != nil {
			return nil, fmt.Errorf("failed to create absent record: %w", err)
		}
		result.Marked = append(result.Marked, MarkedEmployee{
			EmployeeID:   emp.ID,
			EmployeeName: emp.Name,
			Department:   emp.Department,
		})
	}
	return result, nil
}
