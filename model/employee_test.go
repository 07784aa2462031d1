package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidDepartment(t *testing.T) {
	for _, name := range Departments {
		assert.True(t, ValidDepartment(name), name)
	}

	assert.False(t, ValidDepartment("Legal"))
	assert.False(t, ValidDepartment("engineering"))
	assert.False(t, ValidDepartment(""))
}

func TestCanClock(t *testing.T) {
	tests := []struct {
		status   string
		expected bool
	}{
		{status: EmployeeStatusActive, expected: true},
		{status: EmployeeStatusOnLeave, expected: true},
		{status: "Terminated", expected: false},
		{status: "", expected: false},
	}

	for _, tt := range tests {
		t.Run(tt.status, func(t *testing.T) {
			emp := Employee{Status: tt.status}
			assert.Equal(t, tt.expected, emp.CanClock())
		})
	}
}
