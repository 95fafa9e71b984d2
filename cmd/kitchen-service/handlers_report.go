package main

import (
	"fmt"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/ramasethuai/annapurnaskitchen/internal/report"
)

// summaryHandler godoc
// @Summary Lifetime per-customer summary
// @Tags reports
// @Produce json
// @Success 200 {array} report.SummaryRow
// @Failure 500 {object} httpx.HTTPError
// @Router /api/admin/summary [get]
func summaryHandler(repo report.Repository) gin.HandlerFunc {
	return func(c *gin.Context) {
		rows, err := repo.Summary(c.Request.Context())
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "summary failed"})
			return
		}
		c.JSON(http.StatusOK, rows)
	}
}

// summaryCSVHandler godoc
// @Summary Monthly summary CSV export
// @Description Per-customer totals within the month next to the lifetime balance, as a CSV attachment.
// @Tags reports
// @Produce text/csv
// @Param month query string true "month in YYYY-MM form"
// @Success 200 {string} string
// @Failure 400 {object} httpx.HTTPError
// @Router /api/admin/summary_csv [get]
func summaryCSVHandler(repo report.Repository) gin.HandlerFunc {
	return func(c *gin.Context) {
		month := strings.TrimSpace(c.Query("month"))
		if !report.ValidMonth(month) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "month param required in format YYYY-MM"})
			return
		}
		rows, err := repo.MonthlySummary(c.Request.Context(), month)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "summary failed"})
			return
		}

		filename := fmt.Sprintf("annapurna_monthly_summary_%s.csv", month)
		c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
		c.Data(http.StatusOK, "text/csv", []byte(report.MonthCSV(month, rows)))
	}
}
