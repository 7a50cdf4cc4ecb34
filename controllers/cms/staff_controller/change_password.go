package staff_controller

import (
	"log"
	"net/http"

	"github.com/Sarujan100/best-wishes-final-sub001/config"
	"github.com/Sarujan100/best-wishes-final-sub001/models"
	"github.com/Sarujan100/best-wishes-final-sub001/services"
	"github.com/gin-gonic/gin"
)

// ChangePassword godoc
// @Summary Set a user's password
// @Description Admin action. Every session of the user is revoked afterwards.
// @Tags Users
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "User ID"
// @Param body body models.ChangePasswordRequest true "New password"
// @Success 200 {object} models.ApiResponse
// @Failure 400 {object} models.ApiResponse
// @Failure 404 {object} models.ApiResponse
// @Router /admin/users/{id}/change-password [put]
func ChangePassword(c *gin.Context) {
	var req models.ChangePasswordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.ValidationErrorResponse(c, services.ValidationMessages(err)))
		return
	}

	ctx, cancel := config.WithTimeout()
	defer cancel()

	user, ok := loadUser(c, ctx, "change-password")
	if !ok {
		return
	}

	hash, err := services.GetAuthService().HashPassword(req.NewPassword)
	if err != nil {
		log.Printf("[users.change-password] ❌ hashing failed: %v", err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Server error"))
		return
	}
	if err := config.CmsGorm.WithContext(ctx).
		Model(&models.User{}).
		Where("id = ?", user.ID).
		UpdateColumn("password_hash", hash).Error; err != nil {
		log.Printf("[users.change-password] ❌ update failed: %v", err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to change password"))
		return
	}
	if err := services.GetSessionService().DeactivateAllForUsers(ctx, user.ID); err != nil {
		log.Printf("[users.change-password] ⚠️ failed to revoke sessions: %v", err)
	}

	log.Printf("[users.change-password] ✅ %s", user.Email)
	c.JSON(http.StatusOK, models.SuccessResponse(c, "Password changed successfully", nil))
}
