package handlers

import (
	"net/http"
	"strings"

	"slift/internal/services"

	"github.com/gin-gonic/gin"
)

// GetSummaryReport aggregates dashboard totals over an optional date window.
func GetSummaryReport(c *gin.Context) {
	start := strings.TrimSpace(c.Query("startDate"))
	end := strings.TrimSpace(c.Query("endDate"))

	svc := services.ReportsService{}
	summary, err := svc.GetSummary(services.SummaryFilter{
		StartDate: start,
		EndDate:   end,
	})
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, summary)
}
