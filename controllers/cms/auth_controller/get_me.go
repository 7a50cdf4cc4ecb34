package auth_controller

import (
	"net/http"

	"github.com/Sarujan100/best-wishes-final-sub001/middleware"
	"github.com/Sarujan100/best-wishes-final-sub001/models"
	"github.com/gin-gonic/gin"
)

// GetMe godoc
// @Summary Current staff profile
// @Tags Auth
// @Produce json
// @Security BearerAuth
// @Success 200 {object} models.ApiResponse{data=models.UserResponse}
// @Failure 401 {object} models.ApiResponse
// @Router /auth/me [get]
func GetMe(c *gin.Context) {
	user, ok := middleware.GetStaffUser(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, models.ErrorResponse(c, "Unauthorized"))
		return
	}
	c.JSON(http.StatusOK, models.SuccessResponse(c, "Profile fetched successfully", user.ToResponse()))
}
