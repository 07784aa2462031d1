package common

import (
	"errors"
	"net/http"

	"attendly.com/attendly/core"
	"github.com/gin-gonic/gin"
)

var badRequestErrors = []error{
	core.ErrInvalidState,
	core.ErrOffDay,
	core.ErrDuplicateRequest,
	core.ErrDuplicateEmail,
	core.ErrAlreadyCheckedOut,
	core.ErrNoApprovedCheckIn,
	core.ErrInvalidRange,
	core.ErrDurationExceeded,
}

// AbortCoreError maps the core failure taxonomy onto HTTP statuses:
// missing entities are 404, business-rule violations 400, anything else
// (storage and the like) a plain 500.
func AbortCoreError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, core.ErrEmployeeNotFound),
		errors.Is(err, core.ErrRecordNotFound),
		errors.Is(err, core.ErrLeaveNotFound):
		c.JSON(http.StatusNotFound, NewErrorResponse(err.Error()))
		return
	}

	for _, target := range badRequestErrors {
		if errors.Is(err, target) {
			c.JSON(http.StatusBadRequest, NewErrorResponse(err.Error()))
			return
		}
	}

	c.JSON(http.StatusInternalServerError, NewErrorResponse(err.Error()))
}
