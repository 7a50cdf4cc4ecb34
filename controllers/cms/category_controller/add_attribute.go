package category_controller

import (
	"net/http"

	category_cache "github.com/Sarujan100/best-wishes-final-sub001/cache"
	"github.com/Sarujan100/best-wishes-final-sub001/config"
	"github.com/Sarujan100/best-wishes-final-sub001/models"
	"github.com/Sarujan100/best-wishes-final-sub001/services"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// AddAttribute godoc
// @Summary Add a filter attribute to a category
// @Tags Categories
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param key path string true "Category key"
// @Param body body models.AttributeRequest true "Attribute"
// @Success 201 {object} models.ApiResponse
// @Failure 404 {object} models.ApiResponse
// @Failure 409 {object} models.ApiResponse
// @Router /categories/{key}/attributes [post]
func AddAttribute(c *gin.Context) {
	var req models.AttributeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.ValidationErrorResponse(c, services.ValidationMessages(err)))
		return
	}

	ctx, cancel := config.WithTimeout()
	defer cancel()

	var category *models.Category
	err := config.CmsGorm.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var err error
		if category, err = lockCategory(tx, c.Param("key")); err != nil {
			return err
		}
		if err := category.AddAttribute(req.Name, req.DisplayName); err != nil {
			return err
		}
		return tx.Save(category).Error
	})
	if err != nil {
		writeCategoryError(c, "add-attribute", err)
		return
	}
	category_cache.Invalidate()

	c.JSON(http.StatusCreated, models.SuccessResponse(c, "Attribute added successfully", category))
}
