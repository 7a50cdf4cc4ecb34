package order_controller

import (
	"log"
	"net/http"

	"github.com/Sarujan100/best-wishes-final-sub001/config"
	"github.com/Sarujan100/best-wishes-final-sub001/middleware"
	"github.com/Sarujan100/best-wishes-final-sub001/models"
	"github.com/Sarujan100/best-wishes-final-sub001/services"
	"github.com/gin-gonic/gin"
)

// UpdateOrder godoc
// @Summary Update an order
// @Description Any status may follow any other; each change is recorded in the status history.
// @Tags Orders
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Order ID"
// @Param body body models.OrderUpdate true "Fields to change"
// @Success 200 {object} models.ApiResponse{data=models.Order}
// @Failure 400 {object} models.ApiResponse
// @Failure 404 {object} models.ApiResponse
// @Router /orders/{id} [patch]
func UpdateOrder(c *gin.Context) {
	id, ok := parseOrderID(c)
	if !ok {
		return
	}

	var req models.OrderUpdate
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse(c, "Invalid request body"))
		return
	}
	if req.Empty() {
		c.JSON(http.StatusBadRequest, models.ErrorResponse(c, "No fields to update"))
		return
	}
	if errs := req.Validate(); len(errs) > 0 {
		c.JSON(http.StatusBadRequest, models.ValidationErrorResponse(c, errs))
		return
	}

	ctx, cancel := config.WithTimeout()
	defer cancel()

	staffID := middleware.StaffIDPtr(c)
	order, change, err := services.GetOrderService().Update(ctx, id, req, staffID)
	if err != nil {
		writeOrderError(c, "update", err)
		return
	}
	if change != nil {
		log.Printf("[orders.update] ✅ %s: %s → %s", order.OrderNumber, change.Previous, order.Status)
		services.AnnounceStatusChange(*change, staffID)
	}

	c.JSON(http.StatusOK, models.SuccessResponse(c, "Order updated successfully", order))
}
