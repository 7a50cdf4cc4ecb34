package auth_controller

import (
	"errors"
	"log"
	"net/http"

	"github.com/Sarujan100/best-wishes-final-sub001/config"
	"github.com/Sarujan100/best-wishes-final-sub001/models"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type googleClaims struct {
	Email         string `json:"email"`
	EmailVerified bool   `json:"email_verified"`
}

// GoogleCallback godoc
// @Summary Google sign-in callback
// @Description Verifies the state and the ID token, then signs in the existing staff account with that email. Accounts are never created here.
// @Tags Auth
// @Success 307 "Redirect to the admin dashboard"
// @Router /auth/google/callback [get]
func GoogleCallback(c *gin.Context) {
	if !config.GoogleEnabled() {
		c.JSON(http.StatusNotFound, models.ErrorResponse(c, "Google sign-in is not enabled"))
		return
	}

	savedState, err := c.Cookie(oauthStateCookie)
	if err != nil || savedState == "" || c.Query("state") != savedState {
		log.Printf("[auth.google] ❌ state mismatch")
		redirectWithError(c, "Invalid state token")
		return
	}
	c.SetCookie(oauthStateCookie, "", -1, "/", "", config.App.IsProduction(), true)

	code := c.Query("code")
	if code == "" {
		redirectWithError(c, "No authorization code")
		return
	}

	ctx, cancel := config.WithTimeout()
	defer cancel()

	oauthToken, err := config.GoogleOAuthConfig.Exchange(ctx, code)
	if err != nil {
		log.Printf("[auth.google] ❌ exchange failed: %v", err)
		redirectWithError(c, "Failed to exchange token")
		return
	}
	rawIDToken, ok := oauthToken.Extra("id_token").(string)
	if !ok {
		redirectWithError(c, "Google did not return an ID token")
		return
	}
	idToken, err := config.VerifyGoogleIDToken(ctx, rawIDToken)
	if err != nil {
		log.Printf("[auth.google] ❌ id token verification failed: %v", err)
		redirectWithError(c, "Invalid ID token")
		return
	}

	var claims googleClaims
	if err := idToken.Claims(&claims); err != nil || claims.Email == "" || !claims.EmailVerified {
		redirectWithError(c, "A verified Google email is required")
		return
	}

	var user models.User
	if err := config.CmsGorm.WithContext(ctx).
		Where("email = ?", models.NormalizeEmail(claims.Email)).
		First(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			log.Printf("[auth.google] no staff account for %s", claims.Email)
			redirectWithError(c, "No staff account uses this email")
			return
		}
		log.Printf("[auth.google] ❌ database error: %v", err)
		redirectWithError(c, "Server error")
		return
	}
	if user.IsBlocked || !models.IsStaffRole(user.Role) {
		redirectWithError(c, "This account cannot sign in")
		return
	}

	if _, err := startSession(ctx, c, &user); err != nil {
		log.Printf("[auth.google] ❌ %v", err)
		redirectWithError(c, "Server error")
		return
	}

	log.Printf("[auth.google] ✅ %s (%s)", user.Email, user.Role)
	c.Redirect(http.StatusTemporaryRedirect, config.App.FrontendURL+"/dashboard")
}
