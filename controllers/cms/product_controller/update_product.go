package product_controller

import (
	"errors"
	"log"
	"net/http"

	category_cache "github.com/Sarujan100/best-wishes-final-sub001/cache"
	"github.com/Sarujan100/best-wishes-final-sub001/config"
	"github.com/Sarujan100/best-wishes-final-sub001/middleware"
	"github.com/Sarujan100/best-wishes-final-sub001/models"
	"github.com/Sarujan100/best-wishes-final-sub001/services"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// UpdateProduct godoc
// @Summary Update a product
// @Description Replace the editable fields of a product with the submitted form.
// @Tags Products
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Product ID"
// @Param product body models.ProductRequest true "Product details"
// @Success 200 {object} models.ApiResponse
// @Failure 400 {object} models.ApiResponse
// @Failure 404 {object} models.ApiResponse
// @Failure 409 {object} models.ApiResponse
// @Router /products/{id} [put]
func UpdateProduct(c *gin.Context) {
	id, ok := parseProductID(c)
	if !ok {
		return
	}

	var req models.ProductRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.ValidationErrorResponse(c, services.ValidationMessages(err)))
		return
	}

	ctx, cancel := config.WithTimeout()
	defer cancel()

	var product models.Product
	if err := config.CmsGorm.WithContext(ctx).First(&product, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, models.ErrorResponse(c, "Product not found"))
			return
		}
		log.Printf("[products.update] ❌ %v", err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to fetch product"))
		return
	}

	errs, err := validateProduct(ctx, &req)
	if err != nil {
		log.Printf("[products.update] ❌ validation lookup failed: %v", err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to validate product"))
		return
	}
	if len(errs) > 0 {
		c.JSON(http.StatusBadRequest, models.ValidationErrorResponse(c, errs))
		return
	}

	taken, err := skuTaken(ctx, req.SKU, id)
	if err != nil {
		log.Printf("[products.update] ❌ sku lookup failed: %v", err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to validate product"))
		return
	}
	if taken {
		c.JSON(http.StatusConflict, models.ErrorResponse(c, "SKU is already in use"))
		return
	}

	previousStock := product.Stock
	removedImages := removedMedia(product.Images, req.Images)
	removedVideos := removedMedia(product.Videos, req.Videos)

	req.Apply(&product)
	product.UpdatedBy = middleware.StaffIDPtr(c)

	// Save runs BeforeSave/AfterSave so derived fields and the filter index follow the form.
	if err := config.CmsGorm.WithContext(ctx).Save(&product).Error; err != nil {
		log.Printf("[products.update] ❌ failed to save product %s: %v", id, err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to update product"))
		return
	}

	category_cache.Invalidate()
	services.AnnounceLowStock(product, previousStock, product.Stock)
	services.DeleteMediaAsync(removedImages, "image")
	services.DeleteMediaAsync(removedVideos, "video")

	log.Printf("[products.update] ✅ %s updated", product.SKU)
	c.JSON(http.StatusOK, models.SuccessResponse(c, "Product updated successfully", toResponse(product, services.LoadShippingFees(ctx))))
}

// removedMedia lists the media ids (Cloudinary public ids) the form dropped.
func removedMedia(current models.MediaList, submitted []models.MediaItem) []string {
	kept := map[string]bool{}
	for _, m := range submitted {
		kept[m.ID] = true
	}
	var removed []string
	for _, m := range current {
		if m.ID != "" && !kept[m.ID] {
			removed = append(removed, m.ID)
		}
	}
	return removed
}
