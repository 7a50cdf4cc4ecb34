package product_controller

import (
	"log"
	"net/http"

	"github.com/Sarujan100/best-wishes-final-sub001/config"
	"github.com/Sarujan100/best-wishes-final-sub001/models"
	"github.com/Sarujan100/best-wishes-final-sub001/utils"
	"github.com/gin-gonic/gin"
)

// GetLowStockProducts godoc
// @Summary Products at or below the low-stock threshold
// @Tags Products
// @Produce json
// @Security BearerAuth
// @Param page query int false "Page number" default(1)
// @Param limit query int false "Items per page" default(10)
// @Success 200 {object} models.ApiResponse
// @Router /products/low-stock [get]
func GetLowStockProducts(c *gin.Context) {
	page, limit, offset := utils.ParsePagination(c)

	ctx, cancel := config.WithTimeout()
	defer cancel()

	query := config.CmsGorm.WithContext(ctx).
		Model(&models.Product{}).
		Where("stock <= ?", models.LowStockThreshold)

	var total int64
	if err := query.Count(&total).Error; err != nil {
		log.Printf("[products.low-stock] ❌ %v", err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to count products"))
		return
	}

	products := make([]models.Product, 0)
	if err := query.Order("stock ASC").Order("name ASC").Limit(limit).Offset(offset).Find(&products).Error; err != nil {
		log.Printf("[products.low-stock] ❌ %v", err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to fetch products"))
		return
	}

	c.JSON(http.StatusOK, models.PaginatedResponse(c, "Low stock products fetched successfully", products, models.NewPagination(page, limit, total)))
}
