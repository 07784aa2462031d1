package common

import (
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"attendly.com/attendly/core"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func TestAbortCoreError(t *testing.T) {
	gin.SetMode(gin.TestMode)

	tests := []struct {
		name     string
		err      error
		expected int
	}{
		{name: "missing employee", err: core.ErrEmployeeNotFound, expected: http.StatusNotFound},
		{name: "missing leave request", err: core.ErrLeaveNotFound, expected: http.StatusNotFound},
		{name: "duplicate check-in", err: core.ErrDuplicateRequest, expected: http.StatusBadRequest},
		{name: "duplicate email", err: core.ErrDuplicateEmail, expected: http.StatusBadRequest},
		{name: "wrapped duplicate email", err: fmt.Errorf("saving: %w", core.ErrDuplicateEmail), expected: http.StatusBadRequest},
		{name: "off day", err: core.ErrOffDay, expected: http.StatusBadRequest},
		{name: "storage failure", err: errors.New("connection refused"), expected: http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := httptest.NewRecorder()
			c, _ := gin.CreateTestContext(w)

			AbortCoreError(c, tt.err)

			assert.Equal(t, tt.expected, w.Code)
		})
	}
}
