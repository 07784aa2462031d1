package attendance

import (
	"net/http"

	"attendly.com/attendly/model"
	"attendly.com/attendly/web/common"
	"github.com/gin-gonic/gin"
)

// List filters the attendance log. Only approved records are visible
// unless includeAll=true, which the dashboard uses to show the pending
// queue inline.
func (ep *Endpoint) List(c *gin.Context) {
	query := ep.db.Model(&model.AttendanceRecord{})

	if date := c.Query("date"); date != "" {
		query = query.Where("date = ?", date)
	}
	if month := c.Query("month"); month != "" {
		// month is yyyy-MM
		query = query.Where("date >= ? AND date < DATE_ADD(?, INTERVAL 1 MONTH)", month+"-01", month+"-01")
	}
	if employeeID := c.Query("employeeId"); employeeID != "" {
		query = query.Where("employee_id = ?", employeeID)
	}
	if c.Query("includeAll") != "true" {
		query = query.Where("approval_status = ?", model.ApprovalApproved)
	}

	var records []model.AttendanceRecord
	if err := query.Order("date DESC, employee_id").Find(&records).Error; err != nil {
		c.JSON(http.StatusInternalServerError, common.NewErrorResponse(err.Error()))
		return
	}

	c.JSON(http.StatusOK, records)
}

func (ep *Endpoint) Pending(c *gin.Context) {
	var records []model.AttendanceRecord
	err := ep.db.Where("approval_status = ?", model.ApprovalPending).
		Order("date DESC, employee_id").
		Find(&records).Error
	if err != nil {
		c.JSON(http.StatusInternalServerError, common.NewErrorResponse(err.Error()))
		return
	}

	c.JSON(http.StatusOK, records)
}
