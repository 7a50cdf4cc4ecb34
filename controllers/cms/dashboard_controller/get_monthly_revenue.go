package dashboard_controller

import (
	"log"
	"net/http"
	"time"

	"github.com/Sarujan100/best-wishes-final-sub001/config"
	"github.com/Sarujan100/best-wishes-final-sub001/models"
	"github.com/gin-gonic/gin"
)

type revenueRow struct {
	CreatedAt time.Time
	Total     float64
}

// monthlyRevenue buckets non-cancelled order totals into the 12 months ending with now's month.
// Months without orders are present with zero revenue.
func monthlyRevenue(rows []revenueRow, now time.Time) []models.MonthlyRevenueData {
	start := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location()).AddDate(0, -11, 0)

	months := make([]models.MonthlyRevenueData, 12)
	for i := range months {
		m := start.AddDate(0, i, 0)
		months[i] = models.MonthlyRevenueData{
			Month:       m.Format("Jan"),
			MonthNumber: int(m.Month()),
			Year:        m.Year(),
		}
	}

	for _, r := range rows {
		t := r.CreatedAt.In(now.Location())
		i := (t.Year()-start.Year())*12 + int(t.Month()) - int(start.Month())
		if i < 0 || i >= len(months) {
			continue
		}
		months[i].Revenue += r.Total
		months[i].Orders++
	}
	return months
}

// GetMonthlyRevenue godoc
// @Summary Get monthly revenue for last 12 months
// @Description Revenue and order count of non-cancelled orders per month, oldest first, for the dashboard chart
// @Tags Dashboard
// @Produce json
// @Security BearerAuth
// @Success 200 {object} models.ApiResponse{data=[]models.MonthlyRevenueData}
// @Failure 500 {object} models.ApiResponse
// @Router /dashboard/monthly-revenue [get]
func GetMonthlyRevenue(c *gin.Context) {
	ctx, cancel := config.WithTimeout()
	defer cancel()

	now := time.Now()
	since := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location()).AddDate(0, -11, 0)

	var rows []revenueRow
	if err := config.CmsGorm.WithContext(ctx).
		Model(&models.Order{}).
		Select("created_at, total").
		Where("status <> ? AND created_at >= ?", models.OrderCancelled, since).
		Scan(&rows).Error; err != nil {
		log.Printf("[dashboard.monthly-revenue] ❌ query failed: %v", err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to fetch monthly revenue"))
		return
	}

	data := monthlyRevenue(rows, now)
	log.Printf("[dashboard.monthly-revenue] ✅ %d orders across %d months", len(rows), len(data))
	c.JSON(http.StatusOK, models.SuccessResponse(c, "Monthly revenue retrieved successfully", data))
}
