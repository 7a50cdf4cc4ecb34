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

// CreateHeroSection godoc
// @Summary Create a hero section
// @Description Multipart form; the image file is required and stored in the hero-sections folder.
// @Tags Homepage
// @Accept multipart/form-data
// @Produce json
// @Security BearerAuth
// @Param title formData string true "Title"
// @Param description formData string false "Description"
// @Param link_url formData string false "Where the slide links to"
// @Param is_active formData bool false "Shown on the storefront" default(true)
// @Param sort_order formData int false "Display position"
// @Param image formData file true "Slide image"
// @Success 201 {object} models.ApiResponse{data=models.HeroSection}
// @Failure 400 {object} models.ApiResponse
// @Failure 503 {object} models.ApiResponse "Uploads disabled"
// @Router /hero-sections [post]
func CreateHeroSection(c *gin.Context) {
	var form models.HeroSectionForm
	if err := c.ShouldBind(&form); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse(c, "Invalid form: "+err.Error()))
		return
	}
	if form.Title == nil || strings.TrimSpace(*form.Title) == "" {
		c.JSON(http.StatusBadRequest, models.ErrorResponse(c, "Title is required"))
		return
	}
	header := imageHeader(c)
	if header == nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse(c, "Image file is required"))
		return
	}

	uctx, ucancel := uploadContext()
	defer ucancel()
	media, err := uploadHeroImage(uctx, header)
	if writeUploadError(c, "create", err) {
		return
	}

	hero := models.HeroSection{IsActive: true}
	form.Apply(&hero)
	hero.Title = strings.TrimSpace(hero.Title)
	hero.Image = media.URL
	hero.ImagePublicID = media.PublicID

	ctx, cancel := config.WithTimeout()
	defer cancel()
	if err := config.CmsGorm.WithContext(ctx).Create(&hero).Error; err != nil {
		services.DeleteMediaAsync([]string{media.PublicID}, "image")
		logError("create", err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to create hero section"))
		return
	}

	log.Printf("[hero-sections.create] ✅ %s %q", hero.ID, hero.Title)
	c.JSON(http.StatusCreated, models.SuccessResponse(c, "Hero section created successfully", hero))
}
