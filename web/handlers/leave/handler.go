package leave

import (
	"net/http"

	"attendly.com/attendly/core"
	"attendly.com/attendly/model"
	"attendly.com/attendly/web/common"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Endpoint struct {
	db *gorm.DB
}

func Register(portal, admin *gin.RouterGroup, db *gorm.DB) {
	ep := &Endpoint{db: db}

	portal.POST("/leaves", ep.Create)

	admin.GET("/leaves", ep.List)
	admin.PUT("/leaves/:id/status", ep.UpdateStatus)
	admin.DELETE("/leaves/:id", ep.Delete)
}

type LeaveCreateDTO struct {
	EmployeeID uint             `json:"employeeId" binding:"required"`
	LeaveType  string           `json:"leaveType" binding:"required"`
	StartDate  *common.DateOnly `json:"startDate" binding:"required"`
	EndDate    *common.DateOnly `json:"endDate" binding:"required"`
	Reason     string           `json:"reason" binding:"required,max=500"`
}

func (ep *Endpoint) Create(c *gin.Context) {
	var dto LeaveCreateDTO
	if err := c.ShouldBindJSON(&dto); err != nil {
		c.JSON(http.StatusBadRequest, common.NewErrorResponse(common.FormatBindingError(err)))
		return
	}
	if !model.ValidLeaveType(dto.LeaveType) {
		c.JSON(http.StatusBadRequest, common.NewErrorResponse("Unknown leave type: "+dto.LeaveType))
		return
	}

	leave, err := core.SubmitLeave(ep.db, dto.EmployeeID, dto.LeaveType, dto.StartDate.Time, dto.EndDate.Time, dto.Reason)
	if err != nil {
		common.AbortCoreError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message": "Leave request submitted",
		"leave":   leave,
	})
}

type LeaveStatusDTO struct {
	Status     string `json:"status" binding:"required,oneof=Approved Rejected"`
	ApprovedBy string `json:"approvedBy" binding:"required"`
}

func (ep *Endpoint) UpdateStatus(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, common.NewErrorResponse("Invalid id"))
		return
	}

	var dto LeaveStatusDTO
	if err := c.ShouldBindJSON(&dto); err != nil {
		c.JSON(http.StatusBadRequest, common.NewErrorResponse(common.FormatBindingError(err)))
		return
	}

	leave, err := core.ResolveLeave(ep.db, id, dto.Status, dto.ApprovedBy)
	if err != nil {
		common.AbortCoreError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Leave request " + leave.Status,
		"leave":   leave,
	})
}

func (ep *Endpoint) Delete(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, common.NewErrorResponse("Invalid id"))
		return
	}

	if err := core.DeleteLeave(ep.db, id); err != nil {
		common.AbortCoreError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Leave request deleted"})
}

func (ep *Endpoint) List(c *gin.Context) {
	query := ep.db.Model(&model.LeaveRequest{})

	if status := c.Query("status"); status != "" {
		query = query.Where("status = ?", status)
	}
	if employeeID := c.Query("employeeId"); employeeID != "" {
		query = query.Where("employee_id = ?", employeeID)
	}

	var leaves []model.LeaveRequest
	if err := query.Order("applied_date DESC").Find(&leaves).Error; err != nil {
		c.JSON(http.StatusInternalServerError, common.NewErrorResponse(err.Error()))
		return
	}

	c.JSON(http.StatusOK, leaves)
}
