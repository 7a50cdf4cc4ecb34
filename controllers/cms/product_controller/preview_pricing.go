package product_controller

import (
	"net/http"

	"github.com/Sarujan100/best-wishes-final-sub001/config"
	"github.com/Sarujan100/best-wishes-final-sub001/models"
	"github.com/Sarujan100/best-wishes-final-sub001/services"
	"github.com/gin-gonic/gin"
)

// PreviewPricing godoc
// @Summary Pricing and shipping figures for unsaved form values
// @Tags Products
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param body body models.PricingPreviewRequest true "Form values"
// @Success 200 {object} models.ApiResponse
// @Failure 400 {object} models.ApiResponse
// @Router /products/pricing/preview [post]
func PreviewPricing(c *gin.Context) {
	var req models.PricingPreviewRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.ValidationErrorResponse(c, services.ValidationMessages(err)))
		return
	}

	ctx, cancel := config.WithTimeout()
	defer cancel()

	c.JSON(http.StatusOK, models.SuccessResponse(c, "Pricing calculated", gin.H{
		"pricing":  services.CalculatePricing(req.CostPrice, req.RetailPrice, req.SalePrice, req.TaxClass),
		"shipping": services.BuildShippingSummary(req.Weight, req.Dimensions, req.ShippingClass, req.Stock, services.LoadShippingFees(ctx)),
	}))
}
