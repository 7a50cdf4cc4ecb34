package homepage_controller

import (
	"net/http"

	"github.com/Sarujan100/best-wishes-final-sub001/config"
	"github.com/Sarujan100/best-wishes-final-sub001/models"
	"github.com/gin-gonic/gin"
)

func listHeroes(c *gin.Context, activeOnly bool) {
	ctx, cancel := config.WithTimeout()
	defer cancel()

	q := config.CmsGorm.WithContext(ctx).Order("sort_order ASC, created_at DESC")
	if activeOnly {
		q = q.Where("is_active = ?", true)
	}
	heroes := make([]models.HeroSection, 0)
	if err := q.Find(&heroes).Error; err != nil {
		logError("list", err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to fetch hero sections"))
		return
	}
	c.JSON(http.StatusOK, models.SuccessResponse(c, "Hero sections fetched successfully", heroes))
}

// GetHeroSections godoc
// @Summary List every hero section
// @Tags Homepage
// @Produce json
// @Security BearerAuth
// @Success 200 {object} models.ApiResponse{data=[]models.HeroSection}
// @Router /hero-sections [get]
func GetHeroSections(c *gin.Context) {
	listHeroes(c, false)
}

// GetActiveHeroSections godoc
// @Summary List the hero sections shown on the storefront
// @Description Public. Active sections in display order.
// @Tags Homepage
// @Produce json
// @Success 200 {object} models.ApiResponse{data=[]models.HeroSection}
// @Router /hero-sections/active [get]
func GetActiveHeroSections(c *gin.Context) {
	listHeroes(c, true)
}
