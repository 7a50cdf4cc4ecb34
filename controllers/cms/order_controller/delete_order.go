package order_controller

import (
	"errors"
	"net/http"

	"github.com/Sarujan100/best-wishes-final-sub001/config"
	"github.com/Sarujan100/best-wishes-final-sub001/models"
	"github.com/Sarujan100/best-wishes-final-sub001/services"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// DeleteOrder godoc
// @Summary Delete an order
// @Tags Orders
// @Produce json
// @Security BearerAuth
// @Param id path string true "Order ID"
// @Success 200 {object} models.ApiResponse
// @Failure 404 {object} models.ApiResponse
// @Router /orders/{id} [delete]
func DeleteOrder(c *gin.Context) {
	id, ok := parseOrderID(c)
	if !ok {
		return
	}

	ctx, cancel := config.WithTimeout()
	defer cancel()

	if _, err := services.GetOrderService().BulkDelete(ctx, []uuid.UUID{id}); err != nil {
		if errors.Is(err, services.ErrOrdersNotFound) {
			err = services.ErrOrderNotFound
		}
		writeOrderError(c, "delete", err)
		return
	}

	services.PublishAsync(services.EventOrdersDeleted, id.String(), map[string]interface{}{"order_id": id})
	c.JSON(http.StatusOK, models.SuccessResponse(c, "Order deleted successfully", gin.H{"id": id}))
}
