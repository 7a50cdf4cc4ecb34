package delivery_controller

import (
	"errors"
	"log"
	"net/http"

	"github.com/Sarujan100/best-wishes-final-sub001/config"
	"github.com/Sarujan100/best-wishes-final-sub001/middleware"
	"github.com/Sarujan100/best-wishes-final-sub001/models"
	"github.com/Sarujan100/best-wishes-final-sub001/services"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// inQueue reports whether the order is visible to the caller. Admins see every order.
func inQueue(c *gin.Context, order *models.Order) bool {
	if c.GetString("staffRole") == models.RoleAdmin {
		return true
	}
	staffID, _ := middleware.GetStaffID(c)
	return order.ClaimableBy(staffID)
}

// GetDeliveryOrder godoc
// @Summary Get an order from the delivery queue
// @Tags Delivery
// @Produce json
// @Security BearerAuth
// @Param id path string true "Order ID"
// @Success 200 {object} models.ApiResponse{data=models.Order}
// @Failure 404 {object} models.ApiResponse
// @Router /delivery/orders/{id} [get]
func GetDeliveryOrder(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse(c, "Invalid order ID"))
		return
	}

	ctx, cancel := config.WithTimeout()
	defer cancel()

	order, err := services.LoadOrder(ctx, id)
	if err != nil {
		if errors.Is(err, services.ErrOrderNotFound) {
			c.JSON(http.StatusNotFound, models.ErrorResponse(c, "Order not found"))
			return
		}
		log.Printf("[delivery.order] ❌ %v", err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Server error"))
		return
	}
	if !inQueue(c, order) {
		c.JSON(http.StatusNotFound, models.ErrorResponse(c, "Order not found"))
		return
	}

	c.JSON(http.StatusOK, models.SuccessResponse(c, "Order fetched successfully", order))
}
