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

// DeleteAttributeItem godoc
// @Summary Delete a value of a filter attribute
// @Description The value is deselected on every product of the category in the same transaction.
// @Tags Categories
// @Produce json
// @Security BearerAuth
// @Param key path string true "Category key"
// @Param name path string true "Attribute name"
// @Param item path string true "Value"
// @Success 200 {object} models.ApiResponse
// @Failure 404 {object} models.ApiResponse
// @Router /categories/{key}/attributes/{name}/items/{item} [delete]
func DeleteAttributeItem(c *gin.Context) {
	name, value := c.Param("name"), c.Param("item")

	ctx, cancel := config.WithTimeout()
	defer cancel()

	var (
		category *models.Category
		updated  int
	)
	err := config.CmsGorm.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var err error
		if category, err = lockCategory(tx, c.Param("key")); err != nil {
			return err
		}
		if err := category.RemoveItem(name, value); err != nil {
			return err
		}
		if err := tx.Save(category).Error; err != nil {
			return err
		}
		updated, err = cascadeFilterChange(tx, category.Key, name, value, func(f models.FilterSelections) bool {
			return f.Remove(name, value)
		})
		return err
	})
	if err != nil {
		writeCategoryError(c, "delete-item", err)
		return
	}
	category_cache.Invalidate()

	log.Printf("[categories.delete-item] ✅ %s/%s: %q removed, %d products updated", category.Key, name, value, updated)
	attr, _ := category.Attribute(name)
	c.JSON(http.StatusOK, models.SuccessResponse(c, "Item deleted successfully", gin.H{
		"items":            attr.Items,
		"updated_products": updated,
	}))
}
