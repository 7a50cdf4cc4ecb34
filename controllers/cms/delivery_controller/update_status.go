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

// UpdateDeliveryStatus godoc
// @Summary Update a delivery status
// @Description Sets Processing, Shipped, Delivered or Cancelled and assigns the order to the caller.
// @Tags Delivery
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Order ID"
// @Param body body models.DeliveryStatusRequest true "Status and notes"
// @Success 200 {object} models.ApiResponse{data=models.Order}
// @Failure 400 {object} models.ApiResponse
// @Failure 404 {object} models.ApiResponse
// @Failure 409 {object} models.ApiResponse
// @Router /delivery/orders/{id}/status [put]
func UpdateDeliveryStatus(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse(c, "Invalid order ID"))
		return
	}

	var req models.DeliveryStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse(c, "Status is required"))
		return
	}
	if !models.ValidDeliveryStatus(req.Status) {
		c.JSON(http.StatusBadRequest, models.ErrorResponse(c, "Invalid status: "+req.Status))
		return
	}

	ctx, cancel := config.WithTimeout()
	defer cancel()

	current, err := services.LoadOrder(ctx, id)
	if err != nil {
		if errors.Is(err, services.ErrOrderNotFound) {
			c.JSON(http.StatusNotFound, models.ErrorResponse(c, "Order not found"))
			return
		}
		log.Printf("[delivery.status] ❌ %v", err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Server error"))
		return
	}
	if !inQueue(c, current) {
		c.JSON(http.StatusNotFound, models.ErrorResponse(c, "Order not found"))
		return
	}

	staffID, _ := middleware.GetStaffID(c)
	update := models.OrderUpdate{
		Status: &req.Status,
		Notes:  req.Notes,
	}
	if req.Notes != "" {
		update.DeliveryNotes = &req.Notes
	}

	var (
		order  *models.Order
		change *services.StatusChange
	)
	if c.GetString("staffRole") == models.RoleAdmin {
		update.DeliveryStaffID = &staffID
		order, change, err = services.GetOrderService().Update(ctx, id, update, &staffID)
	} else {
		order, change, err = services.GetOrderService().ClaimAndUpdate(ctx, id, update, staffID)
	}
	if err != nil {
		switch {
		case errors.Is(err, services.ErrOrderNotFound):
			c.JSON(http.StatusNotFound, models.ErrorResponse(c, "Order not found"))
		case errors.Is(err, services.ErrOrderClaimed):
			log.Printf("[delivery.status] ⚠️ %s lost the claim on %s", staffID, id)
			c.JSON(http.StatusConflict, models.ErrorResponse(c, "Order was taken by another delivery staff member"))
		default:
			log.Printf("[delivery.status] ❌ %v", err)
			c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to update order"))
		}
		return
	}
	if change != nil {
		services.AnnounceStatusChange(*change, &staffID)
	}

	log.Printf("[delivery.status] ✅ %s → %s by %s", order.OrderNumber, order.Status, staffID)
	c.JSON(http.StatusOK, models.SuccessResponse(c, "Order status updated successfully", order))
}
