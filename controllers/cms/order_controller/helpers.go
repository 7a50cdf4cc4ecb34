package order_controller

import (
	"errors"
	"log"
	"net/http"

	"github.com/Sarujan100/best-wishes-final-sub001/models"
	"github.com/Sarujan100/best-wishes-final-sub001/services"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

func parseOrderID(c *gin.Context) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse(c, "Invalid order ID"))
		return uuid.Nil, false
	}
	return id, true
}

// writeOrderError maps service errors onto the response envelope.
func writeOrderError(c *gin.Context, op string, err error) {
	var (
		missing  *services.MissingOrdersError
		invalid  *services.OrderValidationError
		shortage *services.InsufficientStockError
	)
	switch {
	case errors.As(err, &missing):
		resp := models.ErrorResponse(c, "Some orders were not found, nothing was changed")
		resp.Data = gin.H{"missing": missing.IDs}
		c.JSON(http.StatusNotFound, resp)
	case errors.Is(err, services.ErrOrderNotFound):
		c.JSON(http.StatusNotFound, models.ErrorResponse(c, "Order not found"))
	case errors.As(err, &invalid):
		c.JSON(http.StatusBadRequest, models.ValidationErrorResponse(c, invalid.Problems))
	case errors.As(err, &shortage):
		resp := models.ErrorResponse(c, "Insufficient stock")
		resp.Data = gin.H{"items": shortage.Items}
		c.JSON(http.StatusConflict, resp)
	default:
		log.Printf("[orders.%s] ❌ %v", op, err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to process order"))
	}
}
