package delivery_controller

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

// GetProfile godoc
// @Summary Delivery staff profile
// @Tags Delivery
// @Produce json
// @Security BearerAuth
// @Success 200 {object} models.ApiResponse{data=models.UserResponse}
// @Router /delivery/profile [get]
func GetProfile(c *gin.Context) {
	user, ok := middleware.GetStaffUser(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, models.ErrorResponse(c, "Unauthorized"))
		return
	}
	c.JSON(http.StatusOK, models.SuccessResponse(c, "Profile fetched successfully", user.ToResponse()))
}

// UpdateProfile godoc
// @Summary Update own profile
// @Tags Delivery
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param body body models.UpdateProfileRequest true "Fields to change"
// @Success 200 {object} models.ApiResponse{data=models.UserResponse}
// @Failure 400 {object} models.ApiResponse
// @Router /delivery/profile [put]
func UpdateProfile(c *gin.Context) {
	user, ok := middleware.GetStaffUser(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, models.ErrorResponse(c, "Unauthorized"))
		return
	}

	var req models.UpdateProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.ValidationErrorResponse(c, services.ValidationMessages(err)))
		return
	}

	updates := map[string]interface{}{}
	if req.FirstName != nil {
		user.FirstName = strings.TrimSpace(*req.FirstName)
		updates["first_name"] = user.FirstName
	}
	if req.LastName != nil {
		user.LastName = strings.TrimSpace(*req.LastName)
		updates["last_name"] = user.LastName
	}
	if req.Phone != nil {
		user.Phone = strings.TrimSpace(*req.Phone)
		updates["phone"] = user.Phone
	}
	if req.Address != nil {
		user.Address = *req.Address
		updates["address"] = user.Address
	}
	if req.ProfileImage != nil {
		user.ProfileImage = *req.ProfileImage
		updates["profile_image"] = user.ProfileImage
	}
	if len(updates) == 0 {
		c.JSON(http.StatusBadRequest, models.ErrorResponse(c, "No fields to update"))
		return
	}

	ctx, cancel := config.WithTimeout()
	defer cancel()

	if err := config.CmsGorm.WithContext(ctx).
		Model(&models.User{}).
		Where("id = ?", user.ID).
		UpdateColumns(updates).Error; err != nil {
		log.Printf("[delivery.profile] ❌ update failed: %v", err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to update profile"))
		return
	}

	c.JSON(http.StatusOK, models.SuccessResponse(c, "Profile updated successfully", user.ToResponse()))
}
