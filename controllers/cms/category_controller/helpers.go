package category_controller

import (
	"errors"
	"log"
	"net/http"

	"github.com/Sarujan100/best-wishes-final-sub001/models"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

var errCategoryNotFound = errors.New("category not found")

// lockCategory loads the category row FOR UPDATE inside tx.
func lockCategory(tx *gorm.DB, key string) (*models.Category, error) {
	key = models.NormalizeCategoryKey(key)
	if key == "" {
		return nil, errCategoryNotFound
	}
	var category models.Category
	err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
		Where("key = ?", key).
		First(&category).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, errCategoryNotFound
	}
	return &category, err
}

// productsWithValue are the products of a category that have value selected under
// attribute. An empty value matches any selection of the attribute.
func productsWithValue(tx *gorm.DB, categoryKey, attribute, value string) ([]models.Product, error) {
	sub := tx.Model(&models.ProductFilterValue{}).
		Select("product_id").
		Where("attribute = ?", attribute)
	if value != "" {
		sub = sub.Where("value = ?", value)
	}
	var products []models.Product
	err := tx.
		Where("main_category = ? AND id IN (?)", categoryKey, sub).
		Find(&products).Error
	return products, err
}

// cascadeFilterChange applies change to every product of the category that has the value
// selected, and saves them so the filter index follows.
func cascadeFilterChange(tx *gorm.DB, categoryKey, attribute, value string, change func(models.FilterSelections) bool) (int, error) {
	products, err := productsWithValue(tx, categoryKey, attribute, value)
	if err != nil {
		return 0, err
	}
	updated := 0
	for i := range products {
		filters := products[i].Filters.Clone()
		if !change(filters) {
			continue
		}
		products[i].Filters = filters
		if err := tx.Save(&products[i]).Error; err != nil {
			return updated, err
		}
		updated++
	}
	return updated, nil
}

// writeCategoryError maps domain errors to responses.
func writeCategoryError(c *gin.Context, op string, err error) {
	switch {
	case errors.Is(err, errCategoryNotFound):
		c.JSON(http.StatusNotFound, models.ErrorResponse(c, "Category not found"))
	case errors.Is(err, models.ErrAttributeNotFound):
		c.JSON(http.StatusNotFound, models.ErrorResponse(c, "Attribute not found"))
	case errors.Is(err, models.ErrItemNotFound):
		c.JSON(http.StatusNotFound, models.ErrorResponse(c, "Item not found"))
	case errors.Is(err, models.ErrDuplicateItem):
		c.JSON(http.StatusBadRequest, models.ErrorResponse(c, "Item already exists"))
	case errors.Is(err, models.ErrDuplicateAttribute):
		c.JSON(http.StatusConflict, models.ErrorResponse(c, "Attribute already exists"))
	case errors.Is(err, models.ErrEmptyItem):
		c.JSON(http.StatusBadRequest, models.ErrorResponse(c, "Value cannot be empty"))
	default:
		log.Printf("[categories.%s] ❌ %v", op, err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to update category"))
	}
}
