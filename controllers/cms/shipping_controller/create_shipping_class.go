package shipping_controller

import (
	"errors"
	"log"
	"net/http"
	"strings"

	"github.com/Sarujan100/best-wishes-final-sub001/config"
	"github.com/Sarujan100/best-wishes-final-sub001/models"
	"github.com/Sarujan100/best-wishes-final-sub001/services"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// CreateShippingClass godoc
// @Summary Create a shipping class
// @Description The key is derived from the name ("Next Day" becomes next-day).
// @Tags Shipping
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param body body models.ShippingClassRequest true "Shipping class"
// @Success 201 {object} models.ApiResponse
// @Failure 400 {object} models.ApiResponse
// @Failure 409 {object} models.ApiResponse
// @Router /shipping-classes [post]
func CreateShippingClass(c *gin.Context) {
	var req models.ShippingClassRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.ValidationErrorResponse(c, services.ValidationMessages(err)))
		return
	}

	key := models.ShippingClassKey(req.Name)
	if key == "" {
		c.JSON(http.StatusBadRequest, models.ErrorResponse(c, "Name is required"))
		return
	}

	ctx, cancel := config.WithTimeout()
	defer cancel()

	var existing models.ShippingClass
	err := config.CmsGorm.WithContext(ctx).Where("key = ?", key).First(&existing).Error
	if err == nil {
		c.JSON(http.StatusConflict, models.ErrorResponse(c, "Shipping class already exists"))
		return
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		logError("create", err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to create shipping class"))
		return
	}

	class := models.ShippingClass{
		Key:           key,
		Name:          strings.TrimSpace(req.Name),
		Fee:           req.Fee,
		Description:   req.Description,
		EstimatedDays: req.EstimatedDays,
	}
	if err := config.CmsGorm.WithContext(ctx).Create(&class).Error; err != nil {
		logError("create", err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to create shipping class"))
		return
	}

	log.Printf("[shipping.create] ✅ %s (%.2f)", class.Key, class.Fee)
	c.JSON(http.StatusCreated, models.SuccessResponse(c, "Shipping class created successfully", class))
}
