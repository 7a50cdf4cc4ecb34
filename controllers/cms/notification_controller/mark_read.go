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

// MarkAsRead godoc
// @Summary Mark a notification as read
// @Tags Notifications
// @Produce json
// @Security BearerAuth
// @Param id path string true "Notification ID"
// @Success 200 {object} models.ApiResponse
// @Failure 404 {object} models.ApiResponse
// @Router /notifications/{id}/read [put]
func MarkAsRead(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse(c, "Invalid notification ID"))
		return
	}
	staffID, _ := middleware.GetStaffID(c)

	ctx, cancel := config.WithTimeout()
	defer cancel()

	res := config.CmsGorm.WithContext(ctx).
		Model(&models.Notification{}).
		Where("id = ? AND user_id = ?", id, staffID).
		Update("is_read", true)
	if res.Error != nil {
		log.Printf("[notifications.read] ❌ %v", res.Error)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to update notification"))
		return
	}
	if res.RowsAffected == 0 {
		c.JSON(http.StatusNotFound, models.ErrorResponse(c, "Notification not found"))
		return
	}
	services.GetNotificationService().InvalidateUnreadCount(ctx, staffID)

	c.JSON(http.StatusOK, models.SuccessResponse(c, "Notification marked as read", gin.H{"id": id}))
}

// MarkAllAsRead godoc
// @Summary Mark all my notifications as read
// @Tags Notifications
// @Produce json
// @Security BearerAuth
// @Success 200 {object} models.ApiResponse
// @Router /notifications/mark-all-read [put]
func MarkAllAsRead(c *gin.Context) {
	staffID, _ := middleware.GetStaffID(c)

	ctx, cancel := config.WithTimeout()
	defer cancel()

	res := config.CmsGorm.WithContext(ctx).
		Model(&models.Notification{}).
		Where("user_id = ? AND is_read = ?", staffID, false).
		Update("is_read", true)
	if res.Error != nil {
		log.Printf("[notifications.read-all] ❌ %v", res.Error)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to update notifications"))
		return
	}
	services.GetNotificationService().InvalidateUnreadCount(ctx, staffID)

	c.JSON(http.StatusOK, models.SuccessResponse(c, "All notifications marked as read", gin.H{"updated": res.RowsAffected}))
}
