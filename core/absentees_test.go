package core

import (
	"testing"
	"time"

	"attendly.com/attendly/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func employee(id uint, name, status string) model.Employee {
	return model.Employee{
		ID:         id,
		Name:       name,
		Department: "Operations",
		Status:     status,
	}
}

func TestMissingAttendance(t *testing.T) {
	employees := []model.Employee{
		employee(1, "Alice", model.EmployeeStatusActive),
		employee(2, "Bob", model.EmployeeStatusActive),
		employee(3, "Carol", model.EmployeeStatusOnLeave),
	}

	t.Run("covered employees are skipped", func(t *testing.T) {
		existing := []model.AttendanceRecord{{EmployeeID: 1}}
		missing := MissingAttendance(employees, existing)
		require.Len(t, missing, 1)
		assert.Equal(t, uint(2), missing[0].ID)
	})

	t.Run("on leave employees are never back-filled", func(t *testing.T) {
		missing := MissingAttendance(employees, nil)
		require.Len(t, missing, 2)
		for _, emp := range missing {
			assert.NotEqual(t, uint(3), emp.ID)
		}
	})

	t.Run("second pass finds nothing", func(t *testing.T) {
		// weekday idempotence: once every active employee has a row,
		// re-running the planner yields no work
		existing := []model.AttendanceRecord{{EmployeeID: 1}, {EmployeeID: 2}}
		assert.Empty(t, MissingAttendance(employees, existing))
	})
}

func TestSyntheticRecord(t *testing.T) {
	emp := employee(7, "Dave", model.EmployeeStatusActive)
	day := time.Date(2025, 3, 9, 15, 0, 0, 0, time.UTC) // a Sunday, mid-afternoon

	rec := SyntheticRecord(&emp, day, model.StatusOffDay)

	assert.Equal(t, uint(7), rec.EmployeeID)
	assert.Equal(t, "Dave", rec.EmployeeName)
	assert.Equal(t, time.Date(2025, 3, 9, 0, 0, 0, 0, time.UTC), rec.Date)
	assert.Equal(t, model.StatusOffDay, rec.Status)
	assert.Equal(t, model.ApprovalApproved, rec.ApprovalStatus)
	assert.Equal(t, model.MethodAuto, rec.Method)
	assert.Nil(t, rec.CheckInTime)
	assert.Zero(t, rec.WorkingHours)
	assert.Zero(t, rec.TotalPay)
}
