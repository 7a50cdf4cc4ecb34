package staff_controller

import (
	"log"
	"net/http"

	"github.com/Sarujan100/best-wishes-final-sub001/config"
	"github.com/Sarujan100/best-wishes-final-sub001/models"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// CheckEmail godoc
// @Summary Check whether an email is registered
// @Tags Users
// @Produce json
// @Security BearerAuth
// @Param email path string true "Email"
// @Success 200 {object} models.ApiResponse
// @Router /admin/users/check-email/{email} [get]
func CheckEmail(c *gin.Context) {
	ctx, cancel := config.WithTimeout()
	defer cancel()

	email := models.NormalizeEmail(c.Param("email"))
	taken, err := emailTaken(ctx, email, uuid.Nil)
	if err != nil {
		log.Printf("[users.check-email] ❌ %v", err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Server error"))
		return
	}

	c.JSON(http.StatusOK, models.SuccessResponse(c, "Email checked", gin.H{
		"email":     email,
		"exists":    taken,
		"available": !taken,
	}))
}
