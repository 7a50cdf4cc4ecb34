package delivery_controller

import (
	"log"
	"net/http"
	"strings"

	"github.com/Sarujan100/best-wishes-final-sub001/config"
	"github.com/Sarujan100/best-wishes-final-sub001/middleware"
	"github.com/Sarujan100/best-wishes-final-sub001/models"
	"github.com/gin-gonic/gin"
)

// maxSearchResults caps a queue search.
const maxSearchResults = 100

// SearchDeliveryOrders godoc
// @Summary Search the delivery queue
// @Description Matches q case-insensitively against the order id, order number, customer name, email and phone.
// @Tags Delivery
// @Produce json
// @Security BearerAuth
// @Param q query string true "Search term"
// @Success 200 {object} models.ApiResponse
// @Failure 400 {object} models.ApiResponse
// @Router /delivery/orders/search [get]
func SearchDeliveryOrders(c *gin.Context) {
	term := strings.TrimSpace(c.Query("q"))
	if term == "" {
		c.JSON(http.StatusBadRequest, models.ErrorResponse(c, "Search query is required"))
		return
	}
	staffID, _ := middleware.GetStaffID(c)

	ctx, cancel := config.WithTimeout()
	defer cancel()

	var queue []models.Order
	if err := deliveryQueue(config.CmsGorm.WithContext(ctx), staffID).
		Order("created_at DESC").
		Find(&queue).Error; err != nil {
		log.Printf("[delivery.search] ❌ fetch failed: %v", err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to search orders"))
		return
	}

	matches := make([]models.Order, 0)
	for i := range queue {
		if models.OrderMatchesSearch(&queue[i], term) {
			matches = append(matches, queue[i])
			if len(matches) == maxSearchResults {
				break
			}
		}
	}

	c.JSON(http.StatusOK, models.SuccessResponse(c, "Orders fetched successfully", matches))
}
