package core

import (
	"fmt"
	"sort"
	"time"

	"attendly.com/attendly/model"
	"attendly.com/attendly/utils"
	"gorm.io/gorm"
)

type EmployeeSummary struct {
	EmployeeID     uint    `json:"employeeId"`
	EmployeeName   string  `json:"employeeName"`
	Department     string  `json:"department"`
	Position       string  `json:"position"`
	TotalHours     float64 `json:"totalHours"`
	TotalSalary    float64 `json:"totalSalary"`
	PresentDays    int     `json:"presentDays"`
	AbsentDays     int     `json:"absentDays"`
	OffDays        int     `json:"offDays"`
	LeaveDays      int     `json:"leaveDays"`
	AttendanceRate float64 `json:"attendanceRate"`
}

type ReportSummary struct {
	TotalEmployees    int     `json:"totalEmployees"`
	TotalHours        float64 `json:"totalHours"`
	TotalSalary       float64 `json:"totalSalary"`
	AverageAttendance float64 `json:"averageAttendance"`
}

type SalaryReport struct {
	Summary   ReportSummary     `json:"summary"`
	Employees []EmployeeSummary `json:"employees"`
	MonthName string            `json:"monthName"`
	Year      int               `json:"year"`
	Month     int               `json:"month"`
}

// BuildSalaryReport aggregates a month of approved attendance rows per
// employee. The monthly salary is the rounded sum of per-record pay; the
// per-record values were themselves rounded at write time, and that double
// rounding is the established payroll behaviour, so it stays.
func BuildSalaryReport(records []model.AttendanceRecord, year int, month time.Month) *SalaryReport {
	byEmployee := utils.GroupBy(records, func(r model.AttendanceRecord) uint { return r.EmployeeID })

	employees := make([]EmployeeSummary, 0, len(byEmployee))
	for employeeID, recs := range byEmployee {
		summary := EmployeeSummary{
			EmployeeID:   employeeID,
			EmployeeName: recs[0].EmployeeName,
			Department:   recs[0].Department,
			Position:     recs[0].Position,
		}

		var salary float64
		for _, rec := range recs {
			summary.TotalHours += rec.WorkingHours
			salary += rec.TotalPay

			switch rec.Status {
			case model.StatusPresent, model.StatusLate, model.StatusHalfDay:
				summary.PresentDays++
			case model.StatusAbsent:
				summary.AbsentDays++
			case model.StatusOffDay:
				summary.OffDays++
			case model.StatusOnLeave:
				summary.LeaveDays++
			}
		}
		summary.TotalSalary = RoundSalary(salary)

		// off days and leave days sit outside the attendance denominator
		if workdays := summary.PresentDays + summary.AbsentDays; workdays > 0 {
			summary.AttendanceRate = float64(summary.PresentDays) / float64(workdays) * 100
		}

		employees = append(employees, summary)
	}

	sort.Slice(employees, func(i, j int) bool {
		return employees[i].EmployeeID < employees[j].EmployeeID
	})

	report := &SalaryReport{
		Employees: employees,
		MonthName: month.String(),
		Year:      year,
		Month:     int(month),
	}
	report.Summary.TotalEmployees = len(employees)
	for _, e := range employees {
		report.Summary.TotalHours += e.TotalHours
		report.Summary.TotalSalary += e.TotalSalary
		report.Summary.AverageAttendance += e.AttendanceRate
	}
	if len(employees) > 0 {
		report.Summary.AverageAttendance /= float64(len(employees))
	}
	return report
}

// FetchSalaryReport loads the month's approved records and aggregates them.
func FetchSalaryReport(db *gorm.DB, year int, month time.Month) (*SalaryReport, error) {
	from, to := utils.MonthRange(year, month)

	var records []model.AttendanceRecord
	err := db.Where("approval_status = ?", model.ApprovalApproved).
		Where("date >= ? AND date < ?", from.Format(utils.DateLayout), to.Format(utils.DateLayout)).
		Find(&records).Error
	if err != nil {
		return nil, fmt.Errorf("failed to fetch attendance records: %w", err)
	}

	return BuildSalaryReport(records, year, month), nil
}
