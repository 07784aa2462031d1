package employee

import (
	"net/http"
	"strconv"

	"attendly.com/attendly/core"
	"attendly.com/attendly/model"
	"attendly.com/attendly/web/common"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type Endpoint struct {
	db *gorm.DB
}

func Register(admin *gin.RouterGroup, db *gorm.DB) {
	ep := &Endpoint{db: db}

	admin.GET("/employees", ep.List)
	admin.GET("/employees/:id", ep.Get)
	admin.POST("/employees", ep.Create)
	admin.PUT("/employees/:id", ep.Update)
}

type EmployeeCreateDTO struct {
	Name       string           `json:"name" binding:"required,max=100"`
	Email      string           `json:"email" binding:"required,email"`
	Phone      string           `json:"phone" binding:"omitempty,max=30"`
	Department string           `json:"department" binding:"required"`
	Position   string           `json:"position" binding:"omitempty,max=50"`
	HourlyRate float64          `json:"hourlyRate" binding:"gte=0"`
	JoinDate   *common.DateOnly `json:"joinDate" binding:"required"`
}

func (ep *Endpoint) Create(c *gin.Context) {
	var dto EmployeeCreateDTO
	if err := c.ShouldBindJSON(&dto); err != nil {
		c.JSON(http.StatusBadRequest, common.NewErrorResponse(common.FormatBindingError(err)))
		return
	}
	if !model.ValidDepartment(dto.Department) {
		c.JSON(http.StatusBadRequest, common.NewErrorResponse("Unknown department: "+dto.Department))
		return
	}

	emp := model.Employee{
		Name:       dto.Name,
		Email:      dto.Email,
		Phone:      dto.Phone,
		Department: dto.Department,
		Position:   dto.Position,
		HourlyRate: dto.HourlyRate,
		JoinDate:   dto.JoinDate.Time,
	}
	if err := core.CreateEmployee(ep.db, &emp); err != nil {
		common.AbortCoreError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message":  "Employee created",
		"employee": emp,
	})
}

type EmployeeUpdateDTO struct {
	Name       *string  `json:"name,omitempty" binding:"omitempty,max=100"`
	Email      *string  `json:"email,omitempty" binding:"omitempty,email"`
	Phone      *string  `json:"phone,omitempty" binding:"omitempty,max=30"`
	Department *string  `json:"department,omitempty"`
	Position   *string  `json:"position,omitempty" binding:"omitempty,max=50"`
	HourlyRate *float64 `json:"hourlyRate,omitempty" binding:"omitempty,gte=0"`
	Status     *string  `json:"status,omitempty" binding:"omitempty,oneof=Active 'On Leave'"`
}

func (ep *Endpoint) Update(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, common.NewErrorResponse("Invalid id"))
		return
	}

	var dto EmployeeUpdateDTO
	if err := c.ShouldBindJSON(&dto); err != nil {
		c.JSON(http.StatusBadRequest, common.NewErrorResponse(common.FormatBindingError(err)))
		return
	}
	if dto.Department != nil && !model.ValidDepartment(*dto.Department) {
		c.JSON(http.StatusBadRequest, common.NewErrorResponse("Unknown department: "+*dto.Department))
		return
	}

	emp, err := core.FindEmployeeByID(ep.db, uint(id))
	if err != nil {
		common.AbortCoreError(c, err)
		return
	}

	if err := core.UpdateEmployee(ep.db, emp, dto); err != nil {
		common.AbortCoreError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message":  "Employee updated",
		"employee": emp,
	})
}

func (ep *Endpoint) Get(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, common.NewErrorResponse("Invalid id"))
		return
	}

	emp, err := core.FindEmployeeByID(ep.db, uint(id))
	if err != nil {
		common.AbortCoreError(c, err)
		return
	}

	c.JSON(http.StatusOK, emp)
}

func (ep *Endpoint) List(c *gin.Context) {
	query := ep.db.Model(&model.Employee{})

	if department := c.Query("department"); department != "" {
		query = query.Where("department = ?", department)
	}
	if status := c.Query("status"); status != "" {
		query = query.Where("status = ?", status)
	}

	var employees []model.Employee
	if err := query.Order("id").Find(&employees).Error; err != nil {
		c.JSON(http.StatusInternalServerError, common.NewErrorResponse(err.Error()))
		return
	}

	c.JSON(http.StatusOK, employees)
}
