package category_controller

import (
	"errors"
	"net/http"

	"github.com/Sarujan100/best-wishes-final-sub001/config"
	"github.com/Sarujan100/best-wishes-final-sub001/models"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// GetAttributeItems godoc
// @Summary List the values of a filter attribute
// @Tags Categories
// @Produce json
// @Security BearerAuth
// @Param key path string true "Category key"
// @Param name path string true "Attribute name"
// @Success 200 {object} models.ApiResponse
// @Failure 404 {object} models.ApiResponse
// @Router /categories/{key}/attributes/{name}/items [get]
func GetAttributeItems(c *gin.Context) {
	ctx, cancel := config.WithTimeout()
	defer cancel()

	var category models.Category
	if err := config.CmsGorm.WithContext(ctx).
		Where("key = ?", models.NormalizeCategoryKey(c.Param("key"))).
		First(&category).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			err = errCategoryNotFound
		}
		writeCategoryError(c, "items", err)
		return
	}

	attr, err := category.Attribute(c.Param("name"))
	if err != nil {
		writeCategoryError(c, "items", err)
		return
	}

	c.JSON(http.StatusOK, models.SuccessResponse(c, "Items fetched successfully", attr.Items))
}
