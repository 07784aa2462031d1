package attendance

import (
	"net/http"
	"strconv"

	"attendly.com/attendly/core"
	"attendly.com/attendly/web/common"
	"github.com/gin-gonic/gin"
)

type ApproveDTO struct {
	Action string `json:"action" binding:"required,oneof=approve reject"`
	Status string `json:"status" binding:"omitempty,oneof=Present Absent 'Half Day' Late 'On Leave' 'Off Day'"`
}

func (ep *Endpoint) Approve(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, common.NewErrorResponse("Invalid id"))
		return
	}

	var dto ApproveDTO
	if err := c.ShouldBindJSON(&dto); err != nil {
		c.JSON(http.StatusBadRequest, common.NewErrorResponse(common.FormatBindingError(err)))
		return
	}

	rec, err := core.Approve(ep.db, uint(id), dto.Action, dto.Status)
	if err != nil {
		common.AbortCoreError(c, err)
		return
	}

	message := "Attendance approved"
	if dto.Action == core.ActionReject {
		message = "Attendance rejected"
	}
	c.JSON(http.StatusOK, gin.H{
		"message":    message,
		"attendance": rec,
	})
}
