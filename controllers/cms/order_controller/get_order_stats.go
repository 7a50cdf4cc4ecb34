package order_controller

import (
	"log"
	"math"
	"net/http"
	"time"

	"github.com/Sarujan100/best-wishes-final-sub001/config"
	"github.com/Sarujan100/best-wishes-final-sub001/models"
	"github.com/gin-gonic/gin"
)

type groupCount struct {
	Label string
	Count int64
}

// GetOrderStats godoc
// @Summary Get order stats
// @Description Counts by status and payment status, revenue of non-cancelled orders, and this month's volume against last month's.
// @Tags Orders
// @Produce json
// @Security BearerAuth
// @Success 200 {object} models.ApiResponse{data=models.OrderStatsResponse}
// @Failure 500 {object} models.ApiResponse
// @Router /orders/stats [get]
func GetOrderStats(c *gin.Context) {
	ctx, cancel := config.WithTimeout()
	defer cancel()

	db := config.CmsGorm.WithContext(ctx)
	res := models.OrderStatsResponse{
		ByStatus:        map[string]int64{},
		ByPaymentStatus: map[string]int64{},
	}
	for _, s := range models.OrderStatuses {
		res.ByStatus[s] = 0
	}
	for _, s := range models.PaymentStatuses {
		res.ByPaymentStatus[s] = 0
	}

	var byStatus, byPayment []groupCount
	if err := db.Model(&models.Order{}).Select("status AS label, COUNT(*) AS count").Group("status").Scan(&byStatus).Error; err != nil {
		log.Printf("[orders.stats] ❌ status counts: %v", err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to fetch order stats"))
		return
	}
	if err := db.Model(&models.Order{}).Select("payment_status AS label, COUNT(*) AS count").Group("payment_status").Scan(&byPayment).Error; err != nil {
		log.Printf("[orders.stats] ❌ payment counts: %v", err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to fetch order stats"))
		return
	}
	for _, g := range byStatus {
		res.ByStatus[g.Label] = g.Count
		res.TotalOrders += g.Count
	}
	for _, g := range byPayment {
		res.ByPaymentStatus[g.Label] = g.Count
	}

	if err := db.Model(&models.Order{}).
		Where("status <> ?", models.OrderCancelled).
		Select("COALESCE(SUM(total), 0)").
		Row().Scan(&res.Revenue); err != nil {
		log.Printf("[orders.stats] ❌ revenue: %v", err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to fetch order stats"))
		return
	}

	now := time.Now().UTC()
	monthStart := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, time.UTC)
	prevStart := monthStart.AddDate(0, -1, 0)
	if err := db.Model(&models.Order{}).Where("created_at >= ?", monthStart).Count(&res.CurrentMonthTotal).Error; err != nil {
		log.Printf("[orders.stats] ❌ current month: %v", err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to fetch order stats"))
		return
	}
	if err := db.Model(&models.Order{}).Where("created_at >= ? AND created_at < ?", prevStart, monthStart).Count(&res.LastMonthTotal).Error; err != nil {
		log.Printf("[orders.stats] ❌ last month: %v", err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to fetch order stats"))
		return
	}
	// undefined when last month had no orders
	if res.LastMonthTotal > 0 {
		v := float64(res.CurrentMonthTotal-res.LastMonthTotal) / float64(res.LastMonthTotal) * 100
		v = math.Round(v*10) / 10
		res.ChangePercentFromLastMonth = &v
	}
	res.Revenue = math.Round(res.Revenue*100) / 100

	c.JSON(http.StatusOK, models.SuccessResponse(c, "Order stats retrieved successfully", res))
}
