package category_controller

import (
	"log"
	"net/http"

	category_cache "github.com/Sarujan100/best-wishes-final-sub001/cache"
	"github.com/Sarujan100/best-wishes-final-sub001/config"
	"github.com/Sarujan100/best-wishes-final-sub001/models"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// UpdateAttributeItem godoc
// @Summary Rename a value of a filter attribute
// @Description Products of the category that selected the old value are updated in the same transaction.
// @Tags Categories
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param key path string true "Category key"
// @Param name path string true "Attribute name"
// @Param item path string true "Current value"
// @Param body body models.UpdateItemRequest true "New value"
// @Success 200 {object} models.ApiResponse
// @Failure 400 {object} models.ApiResponse "Empty or duplicate value"
// @Failure 404 {object} models.ApiResponse
// @Router /categories/{key}/attributes/{name}/items/{item} [put]
func UpdateAttributeItem(c *gin.Context) {
	var req models.UpdateItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse(c, "Invalid request body"))
		return
	}

	name, oldValue := c.Param("name"), c.Param("item")

	ctx, cancel := config.WithTimeout()
	defer cancel()

	var (
		category *models.Category
		newValue string
		updated  int
	)
	err := config.CmsGorm.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var err error
		if category, err = lockCategory(tx, c.Param("key")); err != nil {
			return err
		}
		if newValue, err = category.RenameItem(name, oldValue, req.NewValue); err != nil {
			return err
		}
		if newValue == oldValue {
			return nil
		}
		if err := tx.Save(category).Error; err != nil {
			return err
		}
		updated, err = cascadeFilterChange(tx, category.Key, name, oldValue, func(f models.FilterSelections) bool {
			return f.Rename(name, oldValue, newValue)
		})
		return err
	})
	if err != nil {
		writeCategoryError(c, "update-item", err)
		return
	}
	category_cache.Invalidate()

	log.Printf("[categories.update-item] ✅ %s/%s: %q → %q, %d products updated", category.Key, name, oldValue, newValue, updated)
	attr, _ := category.Attribute(name)
	c.JSON(http.StatusOK, models.SuccessResponse(c, "Item updated successfully", gin.H{
		"value":            newValue,
		"items":            attr.Items,
		"updated_products": updated,
	}))
}
