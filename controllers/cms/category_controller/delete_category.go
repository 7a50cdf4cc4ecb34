package category_controller

import (
	"errors"
	"log"
	"net/http"
	"strconv"

	category_cache "github.com/Sarujan100/best-wishes-final-sub001/cache"
	"github.com/Sarujan100/best-wishes-final-sub001/config"
	"github.com/Sarujan100/best-wishes-final-sub001/models"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

var errCategoryInUse = errors.New("category has products")

// DeleteCategory godoc
// @Summary Delete a category
// @Description Refused with 409 while products reference the category. With force=true those products are archived and keep their old category key.
// @Tags Categories
// @Produce json
// @Security BearerAuth
// @Param key path string true "Category key"
// @Param force query bool false "Archive referencing products and delete anyway"
// @Success 200 {object} models.ApiResponse
// @Failure 404 {object} models.ApiResponse
// @Failure 409 {object} models.ApiResponse
// @Router /categories/{key} [delete]
func DeleteCategory(c *gin.Context) {
	force, _ := strconv.ParseBool(c.Query("force"))

	ctx, cancel := config.WithTimeout()
	defer cancel()

	var (
		key      string
		archived int64
		inUse    int64
	)
	err := config.CmsGorm.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		category, err := lockCategory(tx, c.Param("key"))
		if err != nil {
			return err
		}
		key = category.Key

		if err := tx.Model(&models.Product{}).Where("main_category = ?", key).Count(&inUse).Error; err != nil {
			return err
		}
		if inUse > 0 {
			if !force {
				return errCategoryInUse
			}
			res := tx.Model(&models.Product{}).
				Where("main_category = ?", key).
				UpdateColumn("status", models.ProductStatusArchived)
			if res.Error != nil {
				return res.Error
			}
			archived = res.RowsAffected
		}
		return tx.Delete(&models.Category{}, "id = ?", category.ID).Error
	})
	if err != nil {
		if errors.Is(err, errCategoryInUse) {
			c.JSON(http.StatusConflict, models.ErrorResponse(c, "Category is used by "+strconv.FormatInt(inUse, 10)+" products; pass force=true to archive them and delete"))
			return
		}
		writeCategoryError(c, "delete", err)
		return
	}
	category_cache.Invalidate()

	log.Printf("[categories.delete] ✅ %s deleted (%d products archived)", key, archived)
	c.JSON(http.StatusOK, models.SuccessResponse(c, "Category deleted successfully", gin.H{"key": key, "archived_products": archived}))
}
