package auth_controller

import (
	"errors"
	"log"
	"net/http"

	"github.com/Sarujan100/best-wishes-final-sub001/config"
	"github.com/Sarujan100/best-wishes-final-sub001/models"
	"github.com/Sarujan100/best-wishes-final-sub001/services"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// Login godoc
// @Summary Staff login
// @Description Authenticates staff with email and password. Sets the httpOnly token cookie and returns the token for Bearer use.
// @Tags Auth
// @Accept json
// @Produce json
// @Param body body models.LoginRequest true "Email and password"
// @Success 200 {object} models.ApiResponse{data=models.LoginResponse}
// @Failure 400 {object} models.ApiResponse "Invalid credentials"
// @Failure 403 {object} models.ApiResponse "Blocked or not staff"
// @Failure 500 {object} models.ApiResponse "Server error"
// @Router /auth/login [post]
func Login(c *gin.Context) {
	var req models.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.ValidationErrorResponse(c, services.ValidationMessages(err)))
		return
	}
	email := models.NormalizeEmail(req.Email)

	ctx, cancel := config.WithTimeout()
	defer cancel()

	var user models.User
	if err := config.CmsGorm.WithContext(ctx).Where("email = ?", email).First(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			log.Printf("[auth.login] unknown email: %s", email)
			c.JSON(http.StatusBadRequest, models.ErrorResponse(c, "Invalid email or password"))
			return
		}
		log.Printf("[auth.login] ❌ database error: %v", err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Server error"))
		return
	}

	if !services.GetAuthService().VerifyPassword(user.PasswordHash, req.Password) {
		log.Printf("[auth.login] invalid password: %s", email)
		c.JSON(http.StatusBadRequest, models.ErrorResponse(c, "Invalid email or password"))
		return
	}
	if user.IsBlocked {
		log.Printf("[auth.login] blocked account attempt: %s", email)
		c.JSON(http.StatusForbidden, models.ErrorResponse(c, "Your account has been blocked"))
		return
	}
	if !models.IsStaffRole(user.Role) {
		c.JSON(http.StatusForbidden, models.ErrorResponse(c, "Only staff accounts can sign in here"))
		return
	}

	token, err := startSession(ctx, c, &user)
	if err != nil {
		log.Printf("[auth.login] ❌ %v", err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Server error"))
		return
	}

	log.Printf("[auth.login] ✅ %s (%s)", user.Email, user.Role)
	c.JSON(http.StatusOK, models.SuccessResponse(c, "Login successful", models.LoginResponse{
		User:  user.ToResponse(),
		Token: token,
	}))
}
