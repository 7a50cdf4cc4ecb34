package order_controller

import (
	"fmt"
	"log"
	"net/http"

	"github.com/Sarujan100/best-wishes-final-sub001/config"
	"github.com/Sarujan100/best-wishes-final-sub001/models"
	"github.com/Sarujan100/best-wishes-final-sub001/services"
	"github.com/gin-gonic/gin"
)

// DownloadOrderInvoice godoc
// @Summary Download order invoice PDF
// @Tags Orders
// @Produce application/pdf
// @Security BearerAuth
// @Param id path string true "Order ID"
// @Success 200 "PDF file"
// @Failure 400 {object} models.ApiResponse "Invalid order ID"
// @Failure 404 {object} models.ApiResponse "Order not found"
// @Failure 500 {object} models.ApiResponse "Server error"
// @Router /orders/{id}/invoice [get]
func DownloadOrderInvoice(c *gin.Context) {
	id, ok := parseOrderID(c)
	if !ok {
		return
	}

	ctx, cancel := config.WithTimeout()
	defer cancel()

	order, err := services.LoadOrder(ctx, id)
	if err != nil {
		writeOrderError(c, "invoice", err)
		return
	}

	pdf, err := services.GenerateInvoicePDF(order)
	if err != nil {
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to generate invoice"))
		return
	}

	log.Printf("[orders.invoice] ✅ %s (%d bytes)", order.OrderNumber, len(pdf))
	c.Header("Content-Disposition", fmt.Sprintf(`attachment; filename="invoice-%s.pdf"`, order.OrderNumber))
	c.Data(http.StatusOK, "application/pdf", pdf)
}
