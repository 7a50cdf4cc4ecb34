package category_controller

import (
	"log"
	"net/http"
	"strings"

	category_cache "github.com/Sarujan100/best-wishes-final-sub001/cache"
	"github.com/Sarujan100/best-wishes-final-sub001/config"
	"github.com/Sarujan100/best-wishes-final-sub001/models"
	"github.com/Sarujan100/best-wishes-final-sub001/services"
	"github.com/gin-gonic/gin"
)

// CreateCategory godoc
// @Summary Create a category
// @Tags Categories
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param category body models.CategoryRequest true "Category"
// @Success 201 {object} models.ApiResponse
// @Failure 400 {object} models.ApiResponse
// @Failure 409 {object} models.ApiResponse "Key already exists"
// @Router /categories [post]
func CreateCategory(c *gin.Context) {
	var req models.CategoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.ValidationErrorResponse(c, services.ValidationMessages(err)))
		return
	}

	attrs, err := models.SanitizeAttributes(req.Attributes)
	if err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse(c, "Invalid attributes: "+err.Error()))
		return
	}

	ctx, cancel := config.WithTimeout()
	defer cancel()
	db := config.CmsGorm.WithContext(ctx)

	key := models.NormalizeCategoryKey(req.Key)
	var existing int64
	if err := db.Model(&models.Category{}).Where("key = ?", key).Count(&existing).Error; err != nil {
		log.Printf("[categories.create] ❌ %v", err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to create category"))
		return
	}
	if existing > 0 {
		c.JSON(http.StatusConflict, models.ErrorResponse(c, "A category with key "+key+" already exists"))
		return
	}

	category := models.Category{
		Key:         key,
		Name:        strings.TrimSpace(req.Name),
		Description: req.Description,
		Icon:        req.Icon,
		Image:       req.Image,
		IsActive:    req.IsActive == nil || *req.IsActive,
		SortOrder:   req.SortOrder,
		Attributes:  attrs,
	}
	if err := db.Create(&category).Error; err != nil {
		log.Printf("[categories.create] ❌ %v", err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to create category"))
		return
	}
	category_cache.Invalidate()

	log.Printf("[categories.create] ✅ %s created", category.Key)
	c.JSON(http.StatusCreated, models.SuccessResponse(c, "Category created successfully", category))
}
