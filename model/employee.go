package model

import (
	"slices"
	"time"
)

const (
	EmployeeStatusActive  = "Active"
	EmployeeStatusOnLeave = "On Leave"
)

// Departments the directory accepts. Kept as a fixed list rather than a
// lookup table; the set changes about once a year.
var Departments = []string{
	"Engineering",
	"Human Resources",
	"Finance",
	"Operations",
	"Sales",
	"Marketing",
}

// ValidDepartment reports whether name is one of the fixed Departments.
func ValidDepartment(name string) bool {
	return slices.Contains(Departments, name)
}

type Employee struct {
	ID         uint      `gorm:"primaryKey;autoIncrement" json:"id"`
	EmployeeID string    `gorm:"column:employee_id;size:20;uniqueIndex" json:"employeeId"`
	Name       string    `gorm:"size:100;not null" json:"name"`
	Email      string    `gorm:"size:100;uniqueIndex;not null" json:"email"`
	Phone      string    `gorm:"size:30" json:"phone"`
	Department string    `gorm:"size:50;not null" json:"department"`
	Position   string    `gorm:"size:50" json:"position"`
	HourlyRate float64   `gorm:"type:decimal(10,2);not null" json:"hourlyRate"`
	JoinDate   time.Time `gorm:"type:date" json:"joinDate"`
	Status     string    `gorm:"size:20;not null;default:'Active'" json:"status"`

	CreatedAt time.Time `gorm:"type:timestamp;not null;default:CURRENT_TIMESTAMP;<-:create" json:"createdAt"`
	UpdatedAt time.Time `gorm:"type:timestamp;not null;default:CURRENT_TIMESTAMP on update CURRENT_TIMESTAMP" json:"updatedAt"`
}

func (Employee) TableName() string {
	return "employees"
}

// CanClock reports whether the employee may lodge check-in/out requests.
// On Leave employees keep access so a part-day return still gets recorded.
func (e *Employee) CanClock() bool {
	return e.Status == EmployeeStatusActive || e.Status == EmployeeStatusOnLeave
}

// Snapshot captures the identity fields that attendance and leave rows
// denormalize at write time, so history stays stable after directory edits.
func (e *Employee) Snapshot() EmployeeSnapshot {
	return EmployeeSnapshot{
		EmployeeName: e.Name,
		Department:   e.Department,
		Position:     e.Position,
	}
}

type EmployeeSnapshot struct {
	EmployeeName string `gorm:"size:100" json:"employeeName"`
	Department   string `gorm:"size:50" json:"department"`
	Position     string `gorm:"size:50" json:"position"`
}
