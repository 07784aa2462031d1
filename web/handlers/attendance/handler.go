package attendance

import (
	"gorm.io/gorm"

	"github.com/gin-gonic/gin"
)

type Endpoint struct {
	db *gorm.DB
}

// Register wires the attendance routes. Check-in/out sit on the employee
// portal group; everything that resolves or reports goes through the
// authenticated admin group.
func Register(portal, admin *gin.RouterGroup, db *gorm.DB) {
	ep := &Endpoint{db: db}

	portal.POST("/attendance/checkin", ep.CheckIn)
	portal.POST("/attendance/checkout", ep.CheckOut)

	admin.PUT("/attendance/:id/approve", ep.Approve)
	admin.GET("/attendance", ep.List)
	admin.GET("/attendance/pending", ep.Pending)
	admin.POST("/attendance/mark-absent", ep.MarkAbsent)
	admin.GET("/attendance/salary-report", ep.SalaryReport)
	admin.GET("/attendance/salary-report/export", ep.ExportSalaryReport)
}
