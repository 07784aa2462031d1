package attendance

import (
	"net/http"
	"time"

	"attendly.com/attendly/core"
	"attendly.com/attendly/utils"
	"attendly.com/attendly/web/common"
	"github.com/gin-gonic/gin"
)

type ClockRequestDTO struct {
	EmployeeID uint           `json:"employeeId" binding:"required"`
	Location   *core.Location `json:"location"`
	Timestamp  string         `json:"timestamp"`
}

func (dto *ClockRequestDTO) clockTime() (time.Time, error) {
	if dto.Timestamp == "" {
		return time.Now(), nil
	}
	ts, err := utils.ParseISOTime(dto.Timestamp)
	if err != nil {
		return time.Time{}, err
	}
	return *ts, nil
}

func (ep *Endpoint) CheckIn(c *gin.Context) {
	var dto ClockRequestDTO
	if err := c.ShouldBindJSON(&dto); err != nil {
		c.JSON(http.StatusBadRequest, common.NewErrorResponse(common.FormatBindingError(err)))
		return
	}

	ts, err := dto.clockTime()
	if err != nil {
		c.JSON(http.StatusBadRequest, common.NewErrorResponse(err.Error()))
		return
	}

	rec, err := core.RequestCheckIn(ep.db, dto.EmployeeID, dto.Location, ts)
	if err != nil {
		common.AbortCoreError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message":    "Check-in request submitted for approval",
		"attendance": rec,
		"status":     rec.ApprovalStatus,
	})
}

func (ep *Endpoint) CheckOut(c *gin.Context) {
	var dto ClockRequestDTO
	if err := c.ShouldBindJSON(&dto); err != nil {
		c.JSON(http.StatusBadRequest, common.NewErrorResponse(common.FormatBindingError(err)))
		return
	}

	ts, err := dto.clockTime()
	if err != nil {
		c.JSON(http.StatusBadRequest, common.NewErrorResponse(err.Error()))
		return
	}

	rec, err := core.RequestCheckOut(ep.db, dto.EmployeeID, dto.Location, ts)
	if err != nil {
		common.AbortCoreError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message":    "Checked out",
		"attendance": rec,
		"status":     rec.ApprovalStatus,
	})
}
