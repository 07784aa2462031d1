package attendance

import (
	"fmt"
	"net/http"

	"attendly.com/attendly/core"
	"attendly.com/attendly/web/common"
	"github.com/gin-gonic/gin"
	"github.com/xuri/excelize/v2"
)

var exportHeaders = []string{
	"Employee", "Department", "Position",
	"Total Hours", "Total Salary",
	"Present Days", "Absent Days", "Off Days", "Leave Days",
	"Attendance Rate (%)",
}

// ExportSalaryReport serves the month's salary report as a spreadsheet.
func (ep *Endpoint) ExportSalaryReport(c *gin.Context) {
	year, month, ok := reportPeriod(c)
	if !ok {
		return
	}

	report, err := core.FetchSalaryReport(ep.db, year, month)
	if err != nil {
		common.AbortCoreError(c, err)
		return
	}

	f := excelize.NewFile()
	defer f.Close()

	sheet := "Salary Report"
	f.SetSheetName("Sheet1", sheet)

	for i, header := range exportHeaders {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		f.SetCellValue(sheet, cell, header)
	}

	for row, emp := range report.Employees {
		values := []interface{}{
			emp.EmployeeName, emp.Department, emp.Position,
			emp.TotalHours, emp.TotalSalary,
			emp.PresentDays, emp.AbsentDays, emp.OffDays, emp.LeaveDays,
			emp.AttendanceRate,
		}
		for col, value := range values {
			cell, _ := excelize.CoordinatesToCellName(col+1, row+2)
			f.SetCellValue(sheet, cell, value)
		}
	}

	summaryRow := len(report.Employees) + 3
	cell, _ := excelize.CoordinatesToCellName(1, summaryRow)
	f.SetCellValue(sheet, cell, fmt.Sprintf("Total employees: %d, total hours: %.2f, total salary: %.0f",
		report.Summary.TotalEmployees, report.Summary.TotalHours, report.Summary.TotalSalary))

	buf, err := f.WriteToBuffer()
	if err != nil {
		c.JSON(http.StatusInternalServerError, common.NewErrorResponse(err.Error()))
		return
	}

	filename := fmt.Sprintf("salary-report-%04d-%02d.xlsx", year, int(month))
	c.Header("Content-Disposition", fmt.Sprintf(`attachment; filename="%s"`, filename))
	c.Data(http.StatusOK, "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet", buf.Bytes())
}
