package category_controller

import (
	"errors"
	"log"
	"net/http"
	"strings"

	category_cache "github.com/Sarujan100/best-wishes-final-sub001/cache"
	"github.com/Sarujan100/best-wishes-final-sub001/config"
	"github.com/Sarujan100/best-wishes-final-sub001/models"
	"github.com/Sarujan100/best-wishes-final-sub001/services"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

var errKeyTaken = errors.New("category key already exists")

// UpdateCategory godoc
// @Summary Update a category
// @Description Partial update. Changing the key re-points every product of the category.
// @Tags Categories
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param key path string true "Category key"
// @Param category body models.UpdateCategoryRequest true "Fields to change"
// @Success 200 {object} models.ApiResponse
// @Failure 400 {object} models.ApiResponse
// @Failure 404 {object} models.ApiResponse
// @Failure 409 {object} models.ApiResponse "New key already exists"
// @Router /categories/{key} [put]
func UpdateCategory(c *gin.Context) {
	var req models.UpdateCategoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.ValidationErrorResponse(c, services.ValidationMessages(err)))
		return
	}

	var attrs models.AttributeList
	if req.Attributes != nil {
		var err error
		if attrs, err = models.SanitizeAttributes(*req.Attributes); err != nil {
			c.JSON(http.StatusBadRequest, models.ErrorResponse(c, "Invalid attributes: "+err.Error()))
			return
		}
	}

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
		oldKey := category.Key

		if req.Key != nil {
			newKey := models.NormalizeCategoryKey(*req.Key)
			if newKey != oldKey {
				var n int64
				if err := tx.Model(&models.Category{}).Where("key = ?", newKey).Count(&n).Error; err != nil {
					return err
				}
				if n > 0 {
					return errKeyTaken
				}
				if err := tx.Model(&models.Product{}).
					Where("main_category = ?", oldKey).
					UpdateColumn("main_category", newKey).Error; err != nil {
					return err
				}
				category.Key = newKey
			}
		}
		if req.Name != nil && strings.TrimSpace(*req.Name) != "" {
			category.Name = strings.TrimSpace(*req.Name)
		}
		if req.Description != nil {
			category.Description = *req.Description
		}
		if req.Icon != nil {
			category.Icon = *req.Icon
		}
		if req.Image != nil {
			category.Image = *req.Image
		}
		if req.IsActive != nil {
			category.IsActive = *req.IsActive
		}
		if req.SortOrder != nil {
			category.SortOrder = *req.SortOrder
		}
		var (
			droppedAttrs []string
			droppedItems map[string][]string
		)
		if req.Attributes != nil {
			droppedAttrs, droppedItems = models.DroppedSelections(category.Attributes, attrs)
			category.Attributes = attrs
		}
		if err := tx.Save(category).Error; err != nil {
			return err
		}

		for _, name := range droppedAttrs {
			n, err := cascadeFilterChange(tx, category.Key, name, "", func(f models.FilterSelections) bool {
				if _, ok := f[name]; !ok {
					return false
				}
				delete(f, name)
				return true
			})
			if err != nil {
				return err
			}
			updated += n
		}
		for name, values := range droppedItems {
			for _, value := range values {
				n, err := cascadeFilterChange(tx, category.Key, name, value, func(f models.FilterSelections) bool {
					return f.Remove(name, value)
				})
				if err != nil {
					return err
				}
				updated += n
			}
		}
		return nil
	})
	if err != nil {
		if errors.Is(err, errKeyTaken) {
			c.JSON(http.StatusConflict, models.ErrorResponse(c, "A category with that key already exists"))
			return
		}
		writeCategoryError(c, "update", err)
		return
	}
	category_cache.Invalidate()

	if updated > 0 {
		log.Printf("[categories.update] ✅ %s updated, %d product filter changes", category.Key, updated)
	}
	c.JSON(http.StatusOK, models.SuccessResponse(c, "Category updated successfully", category))
}
