package order_controller

import (
	"net/http"

	"github.com/Sarujan100/best-wishes-final-sub001/config"
	"github.com/Sarujan100/best-wishes-final-sub001/middleware"
	"github.com/Sarujan100/best-wishes-final-sub001/models"
	"github.com/Sarujan100/best-wishes-final-sub001/services"
	"github.com/gin-gonic/gin"
)

// CreateOrder godoc
// @Summary Create a manual order
// @Description Item names and prices default to the product's. Stock is reserved in the same transaction; any short line fails the whole order with 409.
// @Tags Orders
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param body body models.CreateOrderRequest true "Order"
// @Success 201 {object} models.ApiResponse{data=models.Order}
// @Failure 400 {object} models.ApiResponse
// @Failure 409 {object} models.ApiResponse "Insufficient stock"
// @Router /orders [post]
func CreateOrder(c *gin.Context) {
	var req models.CreateOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.ValidationErrorResponse(c, services.ValidationMessages(err)))
		return
	}
	if req.PaymentStatus != "" && !models.ValidPaymentStatus(req.PaymentStatus) {
		c.JSON(http.StatusBadRequest, models.ValidationErrorResponse(c, []string{"Invalid payment status: " + req.PaymentStatus}))
		return
	}

	ctx, cancel := config.WithTimeout()
	defer cancel()

	order, err := services.GetOrderService().Create(ctx, req, middleware.StaffIDPtr(c))
	if err != nil {
		writeOrderError(c, "create", err)
		return
	}

	c.JSON(http.StatusCreated, models.SuccessResponse(c, "Order created successfully", order))
}
