package product_controller

import (
	"errors"
	"log"
	"net/http"

	"github.com/Sarujan100/best-wishes-final-sub001/config"
	"github.com/Sarujan100/best-wishes-final-sub001/middleware"
	"github.com/Sarujan100/best-wishes-final-sub001/models"
	"github.com/Sarujan100/best-wishes-final-sub001/services"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// ToggleProductFilter godoc
// @Summary Toggle one filter value on a product
// @Description Selects the item when it is not selected and deselects it otherwise. The item must exist in the category attribute.
// @Tags Products
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Product ID"
// @Param body body models.ToggleFilterRequest true "Attribute and item"
// @Success 200 {object} models.ApiResponse
// @Failure 400 {object} models.ApiResponse
// @Failure 404 {object} models.ApiResponse
// @Router /products/{id}/filters/toggle [post]
func ToggleProductFilter(c *gin.Context) {
	id, ok := parseProductID(c)
	if !ok {
		return
	}

	var req models.ToggleFilterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.ValidationErrorResponse(c, services.ValidationMessages(err)))
		return
	}

	ctx, cancel := config.WithTimeout()
	defer cancel()

	var (
		product  models.Product
		selected bool
	)
	err := config.CmsGorm.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).First(&product, "id = ?", id).Error; err != nil {
			return err
		}
		var category models.Category
		if err := tx.Where("key = ?", product.MainCategory).First(&category).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return models.ErrAttributeNotFound
			}
			return err
		}
		attr, err := category.Attribute(req.Attribute)
		if err != nil {
			return err
		}
		known := false
		for _, item := range attr.Items {
			if item == req.Item {
				known = true
				break
			}
		}
		if !known {
			return models.ErrItemNotFound
		}

		product.Filters = product.Filters.Toggle(req.Attribute, req.Item)
		selected = product.Filters.Has(req.Attribute, req.Item)
		product.UpdatedBy = middleware.StaffIDPtr(c)
		return tx.Save(&product).Error
	})
	switch {
	case err == nil:
	case errors.Is(err, gorm.ErrRecordNotFound):
		c.JSON(http.StatusNotFound, models.ErrorResponse(c, "Product not found"))
		return
	case errors.Is(err, models.ErrAttributeNotFound), errors.Is(err, models.ErrItemNotFound):
		c.JSON(http.StatusBadRequest, models.ErrorResponse(c, "Filter "+req.Attribute+"/"+req.Item+" is not defined for this category"))
		return
	default:
		log.Printf("[products.toggle-filter] ❌ %v", err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to update filters"))
		return
	}

	c.JSON(http.StatusOK, models.SuccessResponse(c, "Filter updated successfully", gin.H{
		"id":       product.ID,
		"filters":  product.Filters,
		"selected": selected,
	}))
}
