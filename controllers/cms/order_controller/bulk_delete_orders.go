package order_controller

import (
	"log"
	"net/http"

	"github.com/Sarujan100/best-wishes-final-sub001/config"
	"github.com/Sarujan100/best-wishes-final-sub001/models"
	"github.com/Sarujan100/best-wishes-final-sub001/services"
	"github.com/gin-gonic/gin"
)

// BulkDeleteOrders godoc
// @Summary Delete many orders at once
// @Description All or nothing: when any id is unknown no order is deleted and the missing ids are returned with 404.
// @Tags Orders
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param body body models.BulkDeleteOrdersRequest true "Order ids"
// @Success 200 {object} models.ApiResponse{data=models.BulkResult}
// @Failure 400 {object} models.ApiResponse
// @Failure 404 {object} models.ApiResponse "Missing ids, nothing deleted"
// @Router /orders/bulk-delete [delete]
func BulkDeleteOrders(c *gin.Context) {
	var req models.BulkDeleteOrdersRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.ValidationErrorResponse(c, services.ValidationMessages(err)))
		return
	}

	ctx, cancel := config.WithTimeout()
	defer cancel()

	result, err := services.GetOrderService().BulkDelete(ctx, req.OrderIDs)
	if err != nil {
		writeOrderError(c, "bulk-delete", err)
		return
	}
	for _, id := range result.Affected {
		services.PublishAsync(services.EventOrdersDeleted, id.String(), map[string]interface{}{"order_id": id})
	}

	log.Printf("[orders.bulk-delete] ✅ %d orders deleted", len(result.Affected))
	c.JSON(http.StatusOK, models.SuccessResponse(c, "Orders deleted successfully", result))
}
