package delivery_controller

import (
	"log"
	"net/http"

	"github.com/Sarujan100/best-wishes-final-sub001/config"
	"github.com/Sarujan100/best-wishes-final-sub001/middleware"
	"github.com/Sarujan100/best-wishes-final-sub001/models"
	"github.com/Sarujan100/best-wishes-final-sub001/utils"
	"github.com/gin-gonic/gin"
)

// GetDeliveryOrders godoc
// @Summary Delivery queue
// @Description Orders assigned to the caller, plus unassigned Processing and Shipped orders.
// @Tags Delivery
// @Produce json
// @Security BearerAuth
// @Param page query int false "Page number" default(1)
// @Param limit query int false "Items per page (max 50)" default(10)
// @Param status query string false "Status, comma separated"
// @Success 200 {object} models.ApiResponse
// @Router /delivery/orders [get]
func GetDeliveryOrders(c *gin.Context) {
	staffID, _ := middleware.GetStaffID(c)
	page, limit, offset := utils.ParsePagination(c)

	ctx, cancel := config.WithTimeout()
	defer cancel()

	query := deliveryQueue(config.CmsGorm.WithContext(ctx), staffID)
	if statuses := utils.SplitCSV(c.Query("status")); len(statuses) > 0 {
		query = query.Where("status IN ?", statuses)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		log.Printf("[delivery.orders] ❌ count failed: %v", err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to count orders"))
		return
	}

	orders := make([]models.Order, 0)
	if err := query.Preload("Items").
		Order("created_at ASC").
		Limit(limit).
		Offset(offset).
		Find(&orders).Error; err != nil {
		log.Printf("[delivery.orders] ❌ fetch failed: %v", err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to fetch orders"))
		return
	}

	c.JSON(http.StatusOK, models.PaginatedResponse(c, "Orders fetched successfully", orders, models.NewPagination(page, limit, total)))
}
