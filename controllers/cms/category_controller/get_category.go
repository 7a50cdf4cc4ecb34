package category_controller

import (
	"errors"
	"log"
	"net/http"

	category_cache "github.com/Sarujan100/best-wishes-final-sub001/cache"
	"github.com/Sarujan100/best-wishes-final-sub001/config"
	"github.com/Sarujan100/best-wishes-final-sub001/models"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// GetCategory godoc
// @Summary Get a category by key
// @Tags Categories
// @Produce json
// @Security BearerAuth
// @Param key path string true "Category key"
// @Success 200 {object} models.ApiResponse
// @Failure 404 {object} models.ApiResponse
// @Router /categories/{key} [get]
func GetCategory(c *gin.Context) {
	key := models.NormalizeCategoryKey(c.Param("key"))

	if cached, ok := category_cache.GetByKey(key); ok {
		c.JSON(http.StatusOK, models.SuccessResponse(c, "Category fetched successfully", cached))
		return
	}

	ctx, cancel := config.WithTimeout()
	defer cancel()

	var category models.Category
	if err := config.CmsGorm.WithContext(ctx).Where("key = ?", key).First(&category).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, models.ErrorResponse(c, "Category not found"))
			return
		}
		log.Printf("[categories.get] ❌ %v", err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to fetch category"))
		return
	}

	count, err := countProducts(ctx, key)
	if err != nil {
		log.Printf("[categories.get] ⚠️ product count failed: %v", err)
	}
	category.ProductCount = count

	c.JSON(http.StatusOK, models.SuccessResponse(c, "Category fetched successfully", category))
}
