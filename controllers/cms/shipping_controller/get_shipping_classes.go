package shipping_controller

import (
	"net/http"

	"github.com/Sarujan100/best-wishes-final-sub001/config"
	"github.com/Sarujan100/best-wishes-final-sub001/models"
	"github.com/gin-gonic/gin"
)

// GetShippingClasses godoc
// @Summary List shipping classes
// @Tags Shipping
// @Produce json
// @Security BearerAuth
// @Success 200 {object} models.ApiResponse
// @Router /shipping-classes [get]
func GetShippingClasses(c *gin.Context) {
	ctx, cancel := config.WithTimeout()
	defer cancel()

	classes := make([]models.ShippingClass, 0)
	if err := config.CmsGorm.WithContext(ctx).Order("fee ASC, name ASC").Find(&classes).Error; err != nil {
		logError("list", err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to fetch shipping classes"))
		return
	}

	c.JSON(http.StatusOK, models.SuccessResponse(c, "Shipping classes fetched successfully", classes))
}

// GetShippingClass godoc
// @Summary Get a shipping class
// @Tags Shipping
// @Produce json
// @Security BearerAuth
// @Param key path string true "Shipping class key"
// @Success 200 {object} models.ApiResponse
// @Failure 404 {object} models.ApiResponse
// @Router /shipping-classes/{key} [get]
func GetShippingClass(c *gin.Context) {
	class, ok := findClass(c, "get")
	if !ok {
		return
	}
	c.JSON(http.StatusOK, models.SuccessResponse(c, "Shipping class fetched successfully", class))
}
