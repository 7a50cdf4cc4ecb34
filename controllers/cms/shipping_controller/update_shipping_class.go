package shipping_controller

import (
	"net/http"
	"strings"

	"github.com/Sarujan100/best-wishes-final-sub001/config"
	"github.com/Sarujan100/best-wishes-final-sub001/models"
	"github.com/Sarujan100/best-wishes-final-sub001/services"
	"github.com/gin-gonic/gin"
)

// UpdateShippingClass godoc
// @Summary Update a shipping class
// @Description Changes the name, fee, description or delivery estimate. The key never changes.
// @Tags Shipping
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param key path string true "Shipping class key"
// @Param body body models.ShippingClassRequest true "Shipping class"
// @Success 200 {object} models.ApiResponse
// @Failure 400 {object} models.ApiResponse
// @Failure 404 {object} models.ApiResponse
// @Router /shipping-classes/{key} [put]
func UpdateShippingClass(c *gin.Context) {
	var req models.ShippingClassRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.ValidationErrorResponse(c, services.ValidationMessages(err)))
		return
	}

	class, ok := findClass(c, "update")
	if !ok {
		return
	}

	ctx, cancel := config.WithTimeout()
	defer cancel()

	class.Name = strings.TrimSpace(req.Name)
	class.Fee = req.Fee
	class.Description = req.Description
	class.EstimatedDays = req.EstimatedDays
	if err := config.CmsGorm.WithContext(ctx).Save(class).Error; err != nil {
		logError("update", err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to update shipping class"))
		return
	}

	c.JSON(http.StatusOK, models.SuccessResponse(c, "Shipping class updated successfully", class))
}
