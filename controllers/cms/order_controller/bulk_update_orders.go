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

// BulkUpdateOrders godoc
// @Summary Update many orders at once
// @Description Runs in one transaction. When any id is unknown nothing changes and the missing ids are returned with 404.
// @Tags Orders
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param body body models.BulkUpdateOrdersRequest true "Order ids and updates"
// @Success 200 {object} models.ApiResponse{data=models.BulkResult}
// @Failure 400 {object} models.ApiResponse
// @Failure 404 {object} models.ApiResponse "Missing ids, nothing updated"
// @Router /orders/bulk-update [patch]
func BulkUpdateOrders(c *gin.Context) {
	var req models.BulkUpdateOrdersRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.ValidationErrorResponse(c, services.ValidationMessages(err)))
		return
	}
	if req.Updates.Empty() {
		c.JSON(http.StatusBadRequest, models.ErrorResponse(c, "No fields to update"))
		return
	}
	if errs := req.Updates.Validate(); len(errs) > 0 {
		c.JSON(http.StatusBadRequest, models.ValidationErrorResponse(c, errs))
		return
	}

	ctx, cancel := config.WithTimeout()
	defer cancel()

	staffID := middleware.StaffIDPtr(c)
	result, changes, err := services.GetOrderService().BulkUpdate(ctx, req.OrderIDs, req.Updates, staffID)
	if err != nil {
		writeOrderError(c, "bulk-update", err)
		return
	}
	for _, change := range changes {
		services.AnnounceStatusChange(change, staffID)
	}
	services.PublishAsync(services.EventOrdersBulkUpdated, "", map[string]interface{}{
		"order_ids":  result.Affected,
		"updated_by": staffID,
	})

	log.Printf("[orders.bulk-update] ✅ %d orders updated, %d status changes", len(result.Affected), len(changes))
	c.JSON(http.StatusOK, models.SuccessResponse(c, "Orders updated successfully", result))
}
