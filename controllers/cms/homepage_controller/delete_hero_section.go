package homepage_controller

import (
	"log"
	"net/http"

	"github.com/Sarujan100/best-wishes-final-sub001/config"
	"github.com/Sarujan100/best-wishes-final-sub001/models"
	"github.com/Sarujan100/best-wishes-final-sub001/services"
	"github.com/gin-gonic/gin"
)

// DeleteHeroSection godoc
// @Summary Delete a hero section and its image
// @Tags Homepage
// @Produce json
// @Security BearerAuth
// @Param id path string true "Hero section ID"
// @Success 200 {object} models.ApiResponse
// @Failure 404 {object} models.ApiResponse
// @Router /hero-sections/{id} [delete]
func DeleteHeroSection(c *gin.Context) {
	hero, ok := findHero(c, "delete")
	if !ok {
		return
	}

	ctx, cancel := config.WithTimeout()
	defer cancel()
	if err := config.CmsGorm.WithContext(ctx).Delete(hero).Error; err != nil {
		logError("delete", err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to delete hero section"))
		return
	}
	services.DeleteMediaAsync([]string{hero.ImagePublicID}, "image")

	log.Printf("[hero-sections.delete] ✅ %s", hero.ID)
	c.JSON(http.StatusOK, models.SuccessResponse(c, "Hero section deleted successfully", gin.H{"id": hero.ID}))
}

// ToggleHeroSection godoc
// @Summary Show or hide a hero section
// @Tags Homepage
// @Produce json
// @Security BearerAuth
// @Param id path string true "Hero section ID"
// @Success 200 {object} models.ApiResponse{data=models.HeroSection}
// @Failure 404 {object} models.ApiResponse
// @Router /hero-sections/{id}/toggle-status [patch]
func ToggleHeroSection(c *gin.Context) {
	hero, ok := findHero(c, "toggle")
	if !ok {
		return
	}

	ctx, cancel := config.WithTimeout()
	defer cancel()
	hero.IsActive = !hero.IsActive
	if err := config.CmsGorm.WithContext(ctx).Model(hero).Update("is_active", hero.IsActive).Error; err != nil {
		logError("toggle", err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to update hero section"))
		return
	}

	state := "deactivated"
	if hero.IsActive {
		state = "activated"
	}
	c.JSON(http.StatusOK, models.SuccessResponse(c, "Hero section "+state+" successfully", hero))
}
