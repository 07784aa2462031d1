package attendance

import (
	"net/http"
	"strconv"
	"time"

	"attendly.com/attendly/core"
	"attendly.com/attendly/web/common"
	"github.com/gin-gonic/gin"
)

func reportPeriod(c *gin.Context) (int, time.Month, bool) {
	year, err := strconv.Atoi(c.Query("year"))
	if err != nil {
		c.JSON(http.StatusBadRequest, common.NewErrorResponse("Invalid year"))
		return 0, 0, false
	}
	month, err := strconv.Atoi(c.Query("month"))
	if err != nil || month < 1 || month > 12 {
		c.JSON(http.StatusBadRequest, common.NewErrorResponse("Invalid month"))
		return 0, 0, false
	}
	return year, time.Month(month), true
}

func (ep *Endpoint) SalaryReport(c *gin.Context) {
	year, month, ok := reportPeriod(c)
	if !ok {
		return
	}

	report, err := core.FetchSalaryReport(ep.db, year, month)
	if err != nil {
		common.AbortCoreError(c, err)
		return
	}

	c.JSON(http.StatusOK, report)
}
