package auth_controller

import (
	"log"
	"net/http"

	"github.com/Sarujan100/best-wishes-final-sub001/config"
	"github.com/Sarujan100/best-wishes-final-sub001/models"
	"github.com/Sarujan100/best-wishes-final-sub001/services"
	"github.com/gin-gonic/gin"
)

// Logout godoc
// @Summary Staff logout
// @Description Revokes the current session and clears the token cookie.
// @Tags Auth
// @Produce json
// @Security BearerAuth
// @Success 200 {object} models.ApiResponse
// @Router /auth/logout [post]
func Logout(c *gin.Context) {
	ctx, cancel := config.WithTimeout()
	defer cancel()

	if err := services.GetSessionService().DeactivateSession(ctx, c.GetString("staffToken")); err != nil {
		log.Printf("[auth.logout] ⚠️ failed to deactivate session: %v", err)
	}
	setAuthCookie(c, "", -1)

	c.JSON(http.StatusOK, models.SuccessResponse(c, "Logged out successfully", nil))
}
