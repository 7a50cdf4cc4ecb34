package notification_controller

import (
	"log"
	"net/http"

	"github.com/Sarujan100/best-wishes-final-sub001/config"
	"github.com/Sarujan100/best-wishes-final-sub001/middleware"
	"github.com/Sarujan100/best-wishes-final-sub001/models"
	"github.com/Sarujan100/best-wishes-final-sub001/services"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// DeleteNotification godoc
// @Summary Delete a notification
// @Tags Notifications
// @Produce json
// @Security BearerAuth
// @Param id path string true "Notification ID"
// @Success 200 {object} models.ApiResponse
// @Failure 404 {object} models.ApiResponse
// @Router /notifications/{id} [delete]
func DeleteNotification(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse(c, "Invalid notification ID"))
		return
	}
	staffID, _ := middleware.GetStaffID(c)

	ctx, cancel := config.WithTimeout()
	defer cancel()

	res := config.CmsGorm.WithContext(ctx).
		Where("id = ? AND user_id = ?", id, staffID).
		Delete(&models.Notification{})
	if res.Error != nil {
		log.Printf("[notifications.delete] ❌ %v", res.Error)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to delete notification"))
		return
	}
	if res.RowsAffected == 0 {
		c.JSON(http.StatusNotFound, models.ErrorResponse(c, "Notification not found"))
		return
	}
	services.GetNotificationService().InvalidateUnreadCount(ctx, staffID)

	c.JSON(http.StatusOK, models.SuccessResponse(c, "Notification deleted successfully", gin.H{"id": id}))
}
