package upload_controller

import (
	"errors"
	"log"
	"net/http"
	"path/filepath"
	"strings"
	"time"

	"github.com/Sarujan100/best-wishes-final-sub001/config"
	"github.com/Sarujan100/best-wishes-final-sub001/models"
	"github.com/Sarujan100/best-wishes-final-sub001/services"
	"github.com/gin-gonic/gin"
)

const (
	maxImageSize = 5 << 20
	maxVideoSize = 50 << 20
	uploadFolder = "uploads"
)

var (
	imageExtensions = map[string]bool{".jpg": true, ".jpeg": true, ".png": true, ".gif": true, ".webp": true, ".svg": true}
	videoExtensions = map[string]bool{".mp4": true, ".mov": true, ".webm": true, ".avi": true, ".mkv": true}
)

// MediaKind classifies an upload as "image" or "video" from its content type, falling
// back to the file extension. Anything else is "".
func MediaKind(contentType, filename string) string {
	switch {
	case strings.HasPrefix(contentType, "image/"):
		return "image"
	case strings.HasPrefix(contentType, "video/"):
		return "video"
	}
	ext := strings.ToLower(filepath.Ext(filename))
	switch {
	case imageExtensions[ext]:
		return "image"
	case videoExtensions[ext]:
		return "video"
	}
	return ""
}

// MaxUploadSize is the limit for a media kind.
func MaxUploadSize(kind string) int64 {
	if kind == "video" {
		return maxVideoSize
	}
	return maxImageSize
}

// UploadSingle godoc
// @Summary Upload one image or video
// @Description Images up to 5 MB and videos up to 50 MB are stored in the uploads folder.
// @Tags Upload
// @Accept multipart/form-data
// @Produce json
// @Security BearerAuth
// @Param file formData file true "Image or video"
// @Success 200 {object} models.ApiResponse{data=services.UploadedMedia}
// @Failure 400 {object} models.ApiResponse
// @Failure 503 {object} models.ApiResponse "Uploads disabled"
// @Router /upload/single [post]
func UploadSingle(c *gin.Context) {
	c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, maxVideoSize+(1<<20))

	header, err := c.FormFile("file")
	if err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse(c, "No file uploaded"))
		return
	}

	kind := MediaKind(header.Header.Get("Content-Type"), header.Filename)
	if kind == "" {
		c.JSON(http.StatusBadRequest, models.ErrorResponse(c, "Only image and video files are allowed"))
		return
	}
	if header.Size > MaxUploadSize(kind) {
		c.JSON(http.StatusBadRequest, models.ErrorResponse(c, "File is too large"))
		return
	}

	store := services.GetMediaStore()
	if store == nil {
		c.JSON(http.StatusServiceUnavailable, models.ErrorResponse(c, services.ErrMediaStoreUnavailable.Error()))
		return
	}

	file, err := header.Open()
	if err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse(c, "Failed to read file"))
		return
	}
	defer file.Close()

	ctx, cancel := config.WithCustomTimeout(uploadTimeout(kind))
	defer cancel()

	media, err := store.Upload(ctx, file, uploadFolder, kind)
	if err != nil {
		if errors.Is(err, services.ErrMediaStoreUnavailable) {
			c.JSON(http.StatusServiceUnavailable, models.ErrorResponse(c, err.Error()))
			return
		}
		log.Printf("[upload.single] ❌ %v", err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Upload failed"))
		return
	}

	log.Printf("[upload.single] ✅ %s %s (%d bytes)", kind, media.PublicID, media.Size)
	c.JSON(http.StatusOK, models.SuccessResponse(c, "File uploaded successfully", media))
}

func uploadTimeout(kind string) time.Duration {
	if kind == "video" {
		return 2 * time.Minute
	}
	return 30 * time.Second
}
