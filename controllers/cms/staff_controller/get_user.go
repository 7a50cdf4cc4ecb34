package staff_controller

import (
	"log"
	"net/http"

	"github.com/Sarujan100/best-wishes-final-sub001/config"
	"github.com/Sarujan100/best-wishes-final-sub001/models"
	"github.com/gin-gonic/gin"
)

// GetUser godoc
// @Summary Get a user
// @Tags Users
// @Produce json
// @Security BearerAuth
// @Param id path string true "User ID"
// @Success 200 {object} models.ApiResponse{data=models.UserResponse}
// @Failure 404 {object} models.ApiResponse
// @Router /admin/users/{id} [get]
func GetUser(c *gin.Context) {
	ctx, cancel := config.WithTimeout()
	defer cancel()

	user, ok := loadUser(c, ctx, "get")
	if !ok {
		return
	}

	data, err := withOrderTotals(ctx, []models.User{*user})
	if err != nil {
		log.Printf("[users.get] ❌ order totals failed: %v", err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Server error"))
		return
	}

	c.JSON(http.StatusOK, models.SuccessResponse(c, "User fetched successfully", data[0]))
}
