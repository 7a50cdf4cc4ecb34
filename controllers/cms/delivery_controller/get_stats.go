package delivery_controller

import (
	"log"
	"net/http"
	"time"

	"github.com/Sarujan100/best-wishes-final-sub001/config"
	"github.com/Sarujan100/best-wishes-final-sub001/middleware"
	"github.com/Sarujan100/best-wishes-final-sub001/models"
	"github.com/gin-gonic/gin"
)

type DeliveryStats struct {
	ByStatus        map[string]int64 `json:"by_status"`
	DeliveredToday  int64            `json:"delivered_today"`
	AssignedOpen    int64            `json:"assigned_open"`
	AvailableToPick int64            `json:"available_to_pick"`
}

// GetDeliveryStats godoc
// @Summary Delivery staff statistics
// @Description Status changes made by the caller, grouped by status, with today's deliveries and the size of the queue.
// @Tags Delivery
// @Produce json
// @Security BearerAuth
// @Success 200 {object} models.ApiResponse{data=DeliveryStats}
// @Router /delivery/stats [get]
func GetDeliveryStats(c *gin.Context) {
	staffID, _ := middleware.GetStaffID(c)

	ctx, cancel := config.WithTimeout()
	defer cancel()
	db := config.CmsGorm.WithContext(ctx)

	stats := DeliveryStats{ByStatus: map[string]int64{}}
	for _, s := range models.DeliveryStatuses {
		stats.ByStatus[s] = 0
	}

	var rows []struct {
		Status string
		Count  int64
	}
	if err := db.Model(&models.OrderStatusHistory{}).
		Select("status, COUNT(*) AS count").
		Where("updated_by = ?", staffID).
		Group("status").
		Scan(&rows).Error; err != nil {
		log.Printf("[delivery.stats] ❌ history counts: %v", err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to fetch stats"))
		return
	}
	for _, r := range rows {
		stats.ByStatus[r.Status] = r.Count
	}

	now := time.Now()
	midnight := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	if err := db.Model(&models.OrderStatusHistory{}).
		Where("updated_by = ? AND status = ? AND updated_at >= ?", staffID, models.OrderDelivered, midnight.UTC()).
		Count(&stats.DeliveredToday).Error; err != nil {
		log.Printf("[delivery.stats] ❌ today: %v", err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to fetch stats"))
		return
	}

	open := []string{models.OrderProcessing, models.OrderShipped}
	if err := db.Model(&models.Order{}).
		Where("delivery_staff_id = ? AND status IN ?", staffID, open).
		Count(&stats.AssignedOpen).Error; err != nil {
		log.Printf("[delivery.stats] ❌ assigned: %v", err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to fetch stats"))
		return
	}
	if err := db.Model(&models.Order{}).
		Where("delivery_staff_id IS NULL AND status IN ?", open).
		Count(&stats.AvailableToPick).Error; err != nil {
		log.Printf("[delivery.stats] ❌ available: %v", err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to fetch stats"))
		return
	}

	c.JSON(http.StatusOK, models.SuccessResponse(c, "Stats fetched successfully", stats))
}
