package product_controller

import (
	"log"
	"net/http"
	"time"

	category_cache "github.com/Sarujan100/best-wishes-final-sub001/cache"
	"github.com/Sarujan100/best-wishes-final-sub001/config"
	"github.com/Sarujan100/best-wishes-final-sub001/middleware"
	"github.com/Sarujan100/best-wishes-final-sub001/models"
	"github.com/Sarujan100/best-wishes-final-sub001/services"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// CreateProduct godoc
// @Summary Create a new product
// @Description Create a product from the admin form. Media URLs come from /upload/single.
// @Tags Products
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param product body models.ProductRequest true "Product details"
// @Success 201 {object} models.ApiResponse
// @Failure 400 {object} models.ApiResponse "Validation errors in errors[]"
// @Failure 409 {object} models.ApiResponse "SKU already in use"
// @Failure 500 {object} models.ApiResponse
// @Router /products [post]
func CreateProduct(c *gin.Context) {
	start := time.Now()

	var req models.ProductRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		log.Printf("[products.create] invalid request: %v", err)
		c.JSON(http.StatusBadRequest, models.ValidationErrorResponse(c, services.ValidationMessages(err)))
		return
	}

	ctx, cancel := config.WithTimeout()
	defer cancel()

	errs, err := validateProduct(ctx, &req)
	if err != nil {
		log.Printf("[products.create] ❌ validation lookup failed: %v", err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to validate product"))
		return
	}
	if len(errs) > 0 {
		c.JSON(http.StatusBadRequest, models.ValidationErrorResponse(c, errs))
		return
	}

	taken, err := skuTaken(ctx, req.SKU, uuid.Nil)
	if err != nil {
		log.Printf("[products.create] ❌ sku lookup failed: %v", err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to validate product"))
		return
	}
	if taken {
		c.JSON(http.StatusConflict, models.ErrorResponse(c, "SKU is already in use"))
		return
	}

	// UUID v7, stock status and SEO defaults are set by the model hooks.
	var product models.Product
	req.Apply(&product)
	product.CreatedBy = middleware.StaffIDPtr(c)
	product.UpdatedBy = product.CreatedBy

	if err := config.CmsGorm.WithContext(ctx).Create(&product).Error; err != nil {
		log.Printf("[products.create] ❌ failed to create product: %v", err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to create product"))
		return
	}

	category_cache.Invalidate()
	// A new product that starts below the threshold is announced like a drop.
	services.AnnounceLowStock(product, models.LowStockThreshold+1, product.Stock)

	log.Printf("[products.create] ✅ %s (%s) created in %v", product.Name, product.SKU, time.Since(start))
	c.JSON(http.StatusCreated, models.SuccessResponse(c, "Product created successfully", toResponse(product, services.LoadShippingFees(ctx))))
}
