package auth_controller

import (
	"net/http"

	"github.com/Sarujan100/best-wishes-final-sub001/config"
	"github.com/Sarujan100/best-wishes-final-sub001/models"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// GoogleLogin godoc
// @Summary Redirect to Google sign-in
// @Description Stores a state token in a cookie and redirects to Google's consent page. 404 when Google sign-in is not configured.
// @Tags Auth
// @Success 307 "Redirect to Google"
// @Failure 404 {object} models.ApiResponse
// @Router /auth/google/login [get]
func GoogleLogin(c *gin.Context) {
	if !config.GoogleEnabled() {
		c.JSON(http.StatusNotFound, models.ErrorResponse(c, "Google sign-in is not enabled"))
		return
	}

	state := uuid.New().String()
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(oauthStateCookie, state, 600, "/", "", config.App.IsProduction(), true)

	c.Redirect(http.StatusTemporaryRedirect, config.GoogleOAuthConfig.AuthCodeURL(state))
}
