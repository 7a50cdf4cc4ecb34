package homepage_controller

import (
	"context"
	"errors"
	"log"
	"mime/multipart"
	"net/http"
	"time"

	"github.com/Sarujan100/best-wishes-final-sub001/config"
	"github.com/Sarujan100/best-wishes-final-sub001/controllers/cms/upload_controller"
	"github.com/Sarujan100/best-wishes-final-sub001/models"
	"github.com/Sarujan100/best-wishes-final-sub001/services"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

const heroFolder = "hero-sections"

var errNotAnImage = errors.New("only image files are allowed")

func logError(op string, err error) {
	log.Printf("[hero-sections.%s] ❌ %v", op, err)
}

// findHero loads a hero section by id, writing 400/404/500 itself when it fails.
func findHero(c *gin.Context, op string) (*models.HeroSection, bool) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse(c, "Invalid hero section ID"))
		return nil, false
	}

	ctx, cancel := config.WithTimeout()
	defer cancel()

	var hero models.HeroSection
	if err := config.CmsGorm.WithContext(ctx).First(&hero, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, models.ErrorResponse(c, "Hero section not found"))
			return nil, false
		}
		logError(op, err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to fetch hero section"))
		return nil, false
	}
	return &hero, true
}

// uploadHeroImage stores the "image" file of the form. It returns nil media without an
// error when the form carries no image.
func uploadHeroImage(ctx context.Context, header *multipart.FileHeader) (*services.UploadedMedia, error) {
	if header == nil {
		return nil, nil
	}
	if upload_controller.MediaKind(header.Header.Get("Content-Type"), header.Filename) != "image" ||
		header.Size > upload_controller.MaxUploadSize("image") {
		return nil, errNotAnImage
	}
	store := services.GetMediaStore()
	if store == nil {
		return nil, services.ErrMediaStoreUnavailable
	}
	file, err := header.Open()
	if err != nil {
		return nil, err
	}
	defer file.Close()
	return store.Upload(ctx, file, heroFolder, "image")
}

// writeUploadError maps image upload failures; it reports false when err is nil.
func writeUploadError(c *gin.Context, op string, err error) bool {
	switch {
	case err == nil:
		return false
	case errors.Is(err, errNotAnImage):
		c.JSON(http.StatusBadRequest, models.ErrorResponse(c, "Image must be a picture of at most 5 MB"))
	case errors.Is(err, services.ErrMediaStoreUnavailable):
		c.JSON(http.StatusServiceUnavailable, models.ErrorResponse(c, err.Error()))
	default:
		logError(op, err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Image upload failed"))
	}
	return true
}

func imageHeader(c *gin.Context) *multipart.FileHeader {
	header, err := c.FormFile("image")
	if err != nil {
		return nil
	}
	return header
}

func uploadContext() (context.Context, context.CancelFunc) {
	return config.WithCustomTimeout(30 * time.Second)
}
