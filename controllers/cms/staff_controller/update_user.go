package staff_controller

import (
	"log"
	"net/http"
	"strings"

	"github.com/Sarujan100/best-wishes-final-sub001/config"
	"github.com/Sarujan100/best-wishes-final-sub001/middleware"
	"github.com/Sarujan100/best-wishes-final-sub001/models"
	"github.com/Sarujan100/best-wishes-final-sub001/services"
	"github.com/gin-gonic/gin"
)

// UpdateUser godoc
// @Summary Update a user
// @Description Only the provided fields change. An admin cannot change their own role.
// @Tags Users
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "User ID"
// @Param body body models.UpdateUserRequest true "Fields to change"
// @Success 200 {object} models.ApiResponse{data=models.UserResponse}
// @Failure 400 {object} models.ApiResponse
// @Failure 404 {object} models.ApiResponse
// @Failure 409 {object} models.ApiResponse "Email already registered"
// @Router /admin/users/{id} [put]
func UpdateUser(c *gin.Context) {
	var req models.UpdateUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.ValidationErrorResponse(c, services.ValidationMessages(err)))
		return
	}

	ctx, cancel := config.WithTimeout()
	defer cancel()

	user, ok := loadUser(c, ctx, "update")
	if !ok {
		return
	}

	if req.Role != nil && *req.Role != user.Role {
		if staffID, _ := middleware.GetStaffID(c); staffID == user.ID {
			c.JSON(http.StatusBadRequest, models.ErrorResponse(c, "You cannot change your own role"))
			return
		}
		user.Role = *req.Role
	}
	if req.Email != nil && models.NormalizeEmail(*req.Email) != user.Email {
		taken, err := emailTaken(ctx, *req.Email, user.ID)
		if err != nil {
			log.Printf("[users.update] ❌ email check failed: %v", err)
			c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Server error"))
			return
		}
		if taken {
			c.JSON(http.StatusConflict, models.ErrorResponse(c, "Email is already registered"))
			return
		}
		user.Email = *req.Email
	}
	if req.FirstName != nil {
		user.FirstName = strings.TrimSpace(*req.FirstName)
	}
	if req.LastName != nil {
		user.LastName = strings.TrimSpace(*req.LastName)
	}
	if req.Phone != nil {
		user.Phone = strings.TrimSpace(*req.Phone)
	}
	if req.Address != nil {
		user.Address = *req.Address
	}
	if req.ProfileImage != nil {
		user.ProfileImage = *req.ProfileImage
	}
	if req.TwoFactorEnabled != nil {
		user.TwoFactorEnabled = *req.TwoFactorEnabled
	}

	if err := config.CmsGorm.WithContext(ctx).Save(user).Error; err != nil {
		log.Printf("[users.update] ❌ save failed: %v", err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to update user"))
		return
	}

	c.JSON(http.StatusOK, models.SuccessResponse(c, "User updated successfully", user.ToResponse()))
}
