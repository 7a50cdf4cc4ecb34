package category_controller

import (
	"net/http"

	category_cache "github.com/Sarujan100/best-wishes-final-sub001/cache"
	"github.com/Sarujan100/best-wishes-final-sub001/config"
	"github.com/Sarujan100/best-wishes-final-sub001/models"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// AddAttributeItem godoc
// @Summary Add a value to a filter attribute
// @Description The value is trimmed; empty or duplicate values are rejected with 400.
// @Tags Categories
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param key path string true "Category key"
// @Param name path string true "Attribute name"
// @Param body body models.AddItemRequest true "New value"
// @Success 201 {object} models.ApiResponse
// @Failure 400 {object} models.ApiResponse
// @Failure 404 {object} models.ApiResponse
// @Router /categories/{key}/attributes/{name}/items [post]
func AddAttributeItem(c *gin.Context) {
	var req models.AddItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse(c, "Invalid request body"))
		return
	}

	ctx, cancel := config.WithTimeout()
	defer cancel()

	var (
		category *models.Category
		value    string
	)
	err := config.CmsGorm.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var err error
		if category, err = lockCategory(tx, c.Param("key")); err != nil {
			return err
		}
		if value, err = category.AddItem(c.Param("name"), req.Value); err != nil {
			return err
		}
		return tx.Save(category).Error
	})
	if err != nil {
		writeCategoryError(c, "add-item", err)
		return
	}
	category_cache.Invalidate()

	attr, _ := category.Attribute(c.Param("name"))
	c.JSON(http.StatusCreated, models.SuccessResponse(c, "Item added successfully", gin.H{
		"value": value,
		"items": attr.Items,
	}))
}
