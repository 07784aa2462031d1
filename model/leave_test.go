package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidLeaveType(t *testing.T) {
	for _, name := range LeaveTypes {
		assert.True(t, ValidLeaveType(name), name)
	}

	assert.False(t, ValidLeaveType("Sabbatical"))
	assert.False(t, ValidLeaveType("sick"))
	assert.False(t, ValidLeaveType(""))
}
