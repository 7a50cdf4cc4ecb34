package auth_controller

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"net/url"
	"time"

	"github.com/Sarujan100/best-wishes-final-sub001/config"
	"github.com/Sarujan100/best-wishes-final-sub001/middleware"
	"github.com/Sarujan100/best-wishes-final-sub001/models"
	"github.com/Sarujan100/best-wishes-final-sub001/services"
	"github.com/Sarujan100/best-wishes-final-sub001/utils"
	"github.com/gin-gonic/gin"
)

const oauthStateCookie = "oauth_state"

// startSession issues a JWT for user, records the session, stamps last_login_at and sets the cookie.
func startSession(ctx context.Context, c *gin.Context, user *models.User) (string, error) {
	token, err := services.GenerateStaffJWT(user.ID.String(), user.Email, user.Role)
	if err != nil {
		return "", fmt.Errorf("generate token: %w", err)
	}

	if _, err := services.GetSessionService().CreateSession(ctx, user.ID, token, utils.GetClientIP(c), c.Request.UserAgent()); err != nil {
		return "", fmt.Errorf("create session: %w", err)
	}

	now := time.Now().UTC()
	if err := config.CmsGorm.WithContext(ctx).
		Model(&models.User{}).
		Where("id = ?", user.ID).
		UpdateColumns(map[string]interface{}{"last_login_at": now, "last_active_at": now}).Error; err != nil {
		log.Printf("[auth.session] ⚠️ failed to stamp last login for %s: %v", user.ID, err)
	}
	user.LastLoginAt = &now
	user.LastActiveAt = &now

	setAuthCookie(c, token, int(services.GetJWTService().TTL().Seconds()))
	return token, nil
}

func setAuthCookie(c *gin.Context, token string, maxAge int) {
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(middleware.AuthCookieName, token, maxAge, "/", "", config.App.IsProduction(), true)
}

func redirectWithError(c *gin.Context, message string) {
	c.Redirect(http.StatusTemporaryRedirect, config.App.FrontendURL+"/login?error="+url.QueryEscape(message))
}
