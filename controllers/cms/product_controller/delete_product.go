package product_controller

import (
	"log"
	"net/http"

	category_cache "github.com/Sarujan100/best-wishes-final-sub001/cache"
	"github.com/Sarujan100/best-wishes-final-sub001/config"
	"github.com/Sarujan100/best-wishes-final-sub001/models"
	"github.com/Sarujan100/best-wishes-final-sub001/services"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// DeleteProduct godoc
// @Summary Delete a product
// @Description Deletes the product and its filter index; its Cloudinary media is removed in the background.
// @Tags Products
// @Produce json
// @Security BearerAuth
// @Param id path string true "Product ID"
// @Success 200 {object} models.ApiResponse
// @Failure 404 {object} models.ApiResponse
// @Router /products/{id} [delete]
func DeleteProduct(c *gin.Context) {
	id, ok := parseProductID(c)
	if !ok {
		return
	}

	ctx, cancel := config.WithTimeout()
	defer cancel()

	var product models.Product
	err := config.CmsGorm.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.First(&product, "id = ?", id).Error; err != nil {
			return err
		}
		if err := tx.Where("product_id = ?", id).Delete(&models.ProductFilterValue{}).Error; err != nil {
			return err
		}
		return tx.Delete(&models.Product{}, "id = ?", id).Error
	})
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			c.JSON(http.StatusNotFound, models.ErrorResponse(c, "Product not found"))
			return
		}
		log.Printf("[products.delete] ❌ failed to delete %s: %v", id, err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to delete product"))
		return
	}

	category_cache.Invalidate()
	services.DeleteMediaAsync(removedMedia(product.Images, nil), "image")
	services.DeleteMediaAsync(removedMedia(product.Videos, nil), "video")
	services.PublishAsync(services.EventProductDeleted, id.String(), map[string]interface{}{
		"product_id": id,
		"sku":        product.SKU,
	})

	log.Printf("[products.delete] ✅ %s deleted", product.SKU)
	c.JSON(http.StatusOK, models.SuccessResponse(c, "Product deleted successfully", gin.H{"id": id}))
}
