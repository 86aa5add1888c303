package handlers

import (
	"fmt"
	"net/http"
	"time"

	"boutique-pos/internal/report"

	"github.com/gin-gonic/gin"
)

// reportRange reads start/end query params (YYYY-MM-DD) and widens them to
// whole days in UTC. Defaults to the first of the current month through today,
// like the reports screen.
func reportRange(c *gin.Context) (time.Time, time.Time, error) {
	now := time.Now().UTC()

	startStr := c.Query("start")
	endStr := c.Query("end")
	if startStr == "" {
		startStr = time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, time.UTC).Format("2006-01-02")
	}
	if endStr == "" {
		endStr = now.Format("2006-01-02")
	}

	start, err := time.Parse("2006-01-02", startStr)
	if err != nil {
		return time.Time{}, time.Time{}, fmt.Errorf("invalid start date %q", startStr)
	}
	end, err := time.Parse("2006-01-02", endStr)
	if err != nil {
		return time.Time{}, time.Time{}, fmt.Errorf("invalid end date %q", endStr)
	}

	// start of day .. end of day, range is inclusive
	end = end.Add(24*time.Hour - time.Nanosecond)
	return start, end, nil
}

// --- GET: /api/reports ---
func (h *Handler) GetSalesReport(c *gin.Context) {
	start, end, err := reportRange(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, report.Generate(h.Cart.Transactions(), start, end))
}

// --- GET: /api/reports/export ---
// Serves the report as a JSON file download.
func (h *Handler) ExportSalesReport(c *gin.Context) {
	start, end, err := reportRange(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	r := report.Generate(h.Cart.Transactions(), start, end)
	filename, data, err := report.Export(r)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to export report"})
		return
	}

	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
	c.Data(http.StatusOK, "application/json", data)
}

// --- GET: /api/dashboard ---
// The landing-page numbers: today's takings, catalog size, low stock and the
// five most recent sales.
func (h *Handler) GetDashboard(c *gin.Context) {
	now := time.Now().UTC()
	dayStart := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)

	transactions := h.Cart.Transactions()
	today := report.Generate(transactions, dayStart, now)

	recent := transactions
	if len(recent) > 5 {
		recent = recent[len(recent)-5:]
	}
	// newest first
	reversed := make([]any, 0, len(recent))
	for i := len(recent) - 1; i >= 0; i-- {
		reversed = append(reversed, recent[i])
	}

	c.JSON(http.StatusOK, gin.H{
		"todaySales":        today.TotalSales,
		"todayTransactions": today.TransactionCount,
		"productCount":      len(h.Catalog.Products()),
		"lowStockItems":     h.Catalog.LowStockCount(5),
		"recentSales":       reversed,
	})
}
