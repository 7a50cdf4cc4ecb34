package staff_controller

import (
	"log"
	"net/http"
	"strings"

	"github.com/Sarujan100/best-wishes-final-sub001/config"
	"github.com/Sarujan100/best-wishes-final-sub001/models"
	"github.com/Sarujan100/best-wishes-final-sub001/services"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// CreateUser godoc
// @Summary Create a user
// @Description Admin only. Passwords need at least 8 characters, a digit and a symbol. Staff accounts receive a welcome email.
// @Tags Users
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param body body models.CreateUserRequest true "User"
// @Success 201 {object} models.ApiResponse{data=models.UserResponse}
// @Failure 400 {object} models.ApiResponse
// @Failure 409 {object} models.ApiResponse "Email already registered"
// @Failure 429 {object} models.ApiResponse
// @Router /admin/users [post]
func CreateUser(c *gin.Context) {
	var req models.CreateUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.ValidationErrorResponse(c, services.ValidationMessages(err)))
		return
	}

	ctx, cancel := config.WithTimeout()
	defer cancel()

	taken, err := emailTaken(ctx, req.Email, uuid.Nil)
	if err != nil {
		log.Printf("[users.create] ❌ email check failed: %v", err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Server error"))
		return
	}
	if taken {
		c.JSON(http.StatusConflict, models.ErrorResponse(c, "Email is already registered"))
		return
	}

	hash, err := services.GetAuthService().HashPassword(req.Password)
	if err != nil {
		log.Printf("[users.create] ❌ password hashing failed: %v", err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Server error"))
		return
	}

	user := models.User{
		FirstName:    strings.TrimSpace(req.FirstName),
		LastName:     strings.TrimSpace(req.LastName),
		Email:        req.Email,
		PasswordHash: hash,
		Role:         req.Role,
		Phone:        strings.TrimSpace(req.Phone),
		Address:      req.Address,
	}
	if err := config.CmsGorm.WithContext(ctx).Create(&user).Error; err != nil {
		log.Printf("[users.create] ❌ insert failed: %v", err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to create user"))
		return
	}

	if models.IsStaffRole(user.Role) {
		services.SendStaffWelcomeEmailAsync(services.StaffWelcomeEmailData{
			Name:     user.FullName(),
			Email:    user.Email,
			Role:     user.Role,
			LoginURL: config.App.FrontendURL + "/login",
		})
	}

	log.Printf("[users.create] ✅ %s (%s)", user.Email, user.Role)
	c.JSON(http.StatusCreated, models.SuccessResponse(c, "User created successfully", user.ToResponse()))
}
