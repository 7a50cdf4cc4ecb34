package category_controller

import (
	"log"
	"net/http"
	"strconv"

	category_cache "github.com/Sarujan100/best-wishes-final-sub001/cache"
	"github.com/Sarujan100/best-wishes-final-sub001/config"
	"github.com/Sarujan100/best-wishes-final-sub001/models"
	"github.com/gin-gonic/gin"
)

// GetCategories godoc
// @Summary List categories
// @Description All categories ordered by sort_order then name, each with its attributes and product count.
// @Tags Categories
// @Produce json
// @Security BearerAuth
// @Param active query bool false "Only active categories"
// @Success 200 {object} models.ApiResponse
// @Failure 500 {object} models.ApiResponse
// @Router /categories [get]
func GetCategories(c *gin.Context) {
	categories, hit := category_cache.GetAll()
	if !hit {
		ctx, cancel := config.WithTimeout()
		defer cancel()

		var err error
		categories, err = loadCatalogue(ctx)
		if err != nil {
			log.Printf("[categories.list] ❌ %v", err)
			c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to fetch categories"))
			return
		}
		category_cache.SetAll(categories)
	}

	if activeOnly, err := strconv.ParseBool(c.Query("active")); err == nil && activeOnly {
		filtered := make([]models.Category, 0, len(categories))
		for _, cat := range categories {
			if cat.IsActive {
				filtered = append(filtered, cat)
			}
		}
		categories = filtered
	}

	c.JSON(http.StatusOK, models.SuccessResponse(c, "Categories fetched successfully", categories))
}
