package shipping_controller

import (
	"errors"
	"log"
	"net/http"

	"github.com/Sarujan100/best-wishes-final-sub001/config"
	"github.com/Sarujan100/best-wishes-final-sub001/models"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

func logError(op string, err error) {
	log.Printf("[shipping.%s] ❌ %v", op, err)
}

// findClass loads a class by key, writing 404/500 itself when it fails.
func findClass(c *gin.Context, op string) (*models.ShippingClass, bool) {
	ctx, cancel := config.WithTimeout()
	defer cancel()

	var class models.ShippingClass
	if err := config.CmsGorm.WithContext(ctx).
		Where("key = ?", c.Param("key")).
		First(&class).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, models.ErrorResponse(c, "Shipping class not found"))
			return nil, false
		}
		logError(op, err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to fetch shipping class"))
		return nil, false
	}
	return &class, true
}
