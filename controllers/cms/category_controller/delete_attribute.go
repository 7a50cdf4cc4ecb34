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

// DeleteAttribute godoc
// @Summary Remove a filter attribute
// @Description Removes the attribute and drops its selections from every product of the category.
// @Tags Categories
// @Produce json
// @Security BearerAuth
// @Param key path string true "Category key"
// @Param name path string true "Attribute name"
// @Success 200 {object} models.ApiResponse
// @Failure 404 {object} models.ApiResponse
// @Router /categories/{key}/attributes/{name} [delete]
func DeleteAttribute(c *gin.Context) {
	name := c.Param("name")

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
		if err := category.RemoveAttribute(name); err != nil {
			return err
		}
		if err := tx.Save(category).Error; err != nil {
			return err
		}
		updated, err = cascadeFilterChange(tx, category.Key, name, "", func(f models.FilterSelections) bool {
			if _, ok := f[name]; !ok {
				return false
			}
			delete(f, name)
			return true
		})
		return err
	})
	if err != nil {
		writeCategoryError(c, "delete-attribute", err)
		return
	}
	category_cache.Invalidate()

	log.Printf("[categories.delete-attribute] ✅ %s/%s removed, %d products updated", category.Key, name, updated)
	c.JSON(http.StatusOK, models.SuccessResponse(c, "Attribute removed successfully", gin.H{
		"category":         category,
		"updated_products": updated,
	}))
}
