package shipping_controller

import (
	"log"
	"net/http"

	"github.com/Sarujan100/best-wishes-final-sub001/config"
	"github.com/Sarujan100/best-wishes-final-sub001/models"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// DeleteShippingClass godoc
// @Summary Delete a shipping class
// @Description Products using the class move to the standard class, which itself cannot be deleted.
// @Tags Shipping
// @Produce json
// @Security BearerAuth
// @Param key path string true "Shipping class key"
// @Success 200 {object} models.ApiResponse
// @Failure 400 {object} models.ApiResponse
// @Failure 404 {object} models.ApiResponse
// @Router /shipping-classes/{key} [delete]
func DeleteShippingClass(c *gin.Context) {
	if c.Param("key") == models.DefaultShippingClass {
		c.JSON(http.StatusBadRequest, models.ErrorResponse(c, "The standard shipping class cannot be deleted"))
		return
	}

	class, ok := findClass(c, "delete")
	if !ok {
		return
	}

	ctx, cancel := config.WithTimeout()
	defer cancel()

	var moved int64
	err := config.CmsGorm.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		res := tx.Model(&models.Product{}).
			Where("shipping_class = ?", class.Key).
			UpdateColumn("shipping_class", models.DefaultShippingClass)
		if res.Error != nil {
			return res.Error
		}
		moved = res.RowsAffected
		return tx.Delete(class).Error
	})
	if err != nil {
		logError("delete", err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to delete shipping class"))
		return
	}

	log.Printf("[shipping.delete] ✅ %s deleted, %d products moved to %s", class.Key, moved, models.DefaultShippingClass)
	c.JSON(http.StatusOK, models.SuccessResponse(c, "Shipping class deleted successfully", gin.H{
		"key":            class.Key,
		"moved_products": moved,
	}))
}
