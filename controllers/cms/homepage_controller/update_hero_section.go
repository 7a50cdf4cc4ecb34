package homepage_controller

import (
	"log"
	"net/http"
	"strings"

	"github.com/Sarujan100/best-wishes-final-sub001/config"
	"github.com/Sarujan100/best-wishes-final-sub001/models"
	"github.com/Sarujan100/best-wishes-final-sub001/services"
	"github.com/gin-gonic/gin"
)

// UpdateHeroSection godoc
// @Summary Update a hero section
// @Description Multipart form; every field is optional. A new image replaces and removes the old one.
// @Tags Homepage
// @Accept multipart/form-data
// @Produce json
// @Security BearerAuth
// @Param id path string true "Hero section ID"
// @Param title formData string false "Title"
// @Param description formData string false "Description"
// @Param link_url formData string false "Where the slide links to"
// @Param is_active formData bool false "Shown on the storefront"
// @Param sort_order formData int false "Display position"
// @Param image formData file false "Replacement image"
// @Success 200 {object} models.ApiResponse{data=models.HeroSection}
// @Failure 400 {object} models.ApiResponse
// @Failure 404 {object} models.ApiResponse
// @Router /hero-sections/{id} [put]
func UpdateHeroSection(c *gin.Context) {
	var form models.HeroSectionForm
	if err := c.ShouldBind(&form); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse(c, "Invalid form: "+err.Error()))
		return
	}
	if form.Title != nil && strings.TrimSpace(*form.Title) == "" {
		c.JSON(http.StatusBadRequest, models.ErrorResponse(c, "Title cannot be empty"))
		return
	}

	hero, ok := findHero(c, "update")
	if !ok {
		return
	}

	uctx, ucancel := uploadContext()
	defer ucancel()
	media, err := uploadHeroImage(uctx, imageHeader(c))
	if writeUploadError(c, "update", err) {
		return
	}

	oldImage := hero.ImagePublicID
	form.Apply(hero)
	hero.Title = strings.TrimSpace(hero.Title)
	if media != nil {
		hero.Image = media.URL
		hero.ImagePublicID = media.PublicID
	}

	ctx, cancel := config.WithTimeout()
	defer cancel()
	if err := config.CmsGorm.WithContext(ctx).Save(hero).Error; err != nil {
		if media != nil {
			services.DeleteMediaAsync([]string{media.PublicID}, "image")
		}
		logError("update", err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to update hero section"))
		return
	}
	if media != nil && oldImage != "" {
		services.DeleteMediaAsync([]string{oldImage}, "image")
	}

	log.Printf("[hero-sections.update] ✅ %s", hero.ID)
	c.JSON(http.StatusOK, models.SuccessResponse(c, "Hero section updated successfully", hero))
}
