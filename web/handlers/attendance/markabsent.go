package attendance

import (
	"net/http"

	"attendly.com/attendly/core"
	"attendly.com/attendly/web/common"
	"github.com/gin-gonic/gin"
)

type MarkAbsentDTO struct {
	Date *common.DateOnly `json:"date" binding:"required"`
}

func (ep *Endpoint) MarkAbsent(c *gin.Context) {
	var dto MarkAbsentDTO
	if err := c.ShouldBindJSON(&dto); err != nil {
		c.JSON(http.StatusBadRequest, common.NewErrorResponse(common.FormatBindingError(err)))
		return
	}

	result, err := core.MarkAbsentees(ep.db, dto.Date.Time)
	if err != nil {
		common.AbortCoreError(c, err)
		return
	}

	dateStr := result.Date.Format("2006-01-02")
	if result.OffDay {
		c.JSON(http.StatusOK, gin.H{
			"message":         "Sunday marked as off day for all active employees",
			"date":            dateStr,
			"totalEmployees":  result.TotalEmployees,
			"offDayMarked":    len(result.Marked),
			"offDayEmployees": result.Marked,
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message":         "Absentees marked",
		"date":            dateStr,
		"totalEmployees":  result.TotalEmployees,
		"absentMarked":    len(result.Marked),
		"absentEmployees": result.Marked,
	})
}
