package notification_controller

import (
	"log"
	"net/http"
	"strconv"

	"github.com/Sarujan100/best-wishes-final-sub001/config"
	"github.com/Sarujan100/best-wishes-final-sub001/middleware"
	"github.com/Sarujan100/best-wishes-final-sub001/models"
	"github.com/Sarujan100/best-wishes-final-sub001/services"
	"github.com/Sarujan100/best-wishes-final-sub001/utils"
	"github.com/gin-gonic/gin"
)

type NotificationList struct {
	Notifications []models.Notification `json:"notifications"`
	UnreadCount   int64                 `json:"unread_count"`
	TotalCount    int64                 `json:"total_count"`
}

// GetNotifications godoc
// @Summary List my notifications
// @Tags Notifications
// @Produce json
// @Security BearerAuth
// @Param page query int false "Page number" default(1)
// @Param limit query int false "Items per page (max 50)" default(10)
// @Param unread query bool false "Unread only"
// @Success 200 {object} models.ApiResponse{data=NotificationList}
// @Router /notifications [get]
func GetNotifications(c *gin.Context) {
	staffID, _ := middleware.GetStaffID(c)
	page, limit, offset := utils.ParsePagination(c)

	ctx, cancel := config.WithTimeout()
	defer cancel()

	query := config.CmsGorm.WithContext(ctx).Model(&models.Notification{}).Where("user_id = ?", staffID)
	if unread, err := strconv.ParseBool(c.Query("unread")); err == nil && unread {
		query = query.Where("is_read = ?", false)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		log.Printf("[notifications.list] ❌ count failed: %v", err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to fetch notifications"))
		return
	}

	list := NotificationList{Notifications: make([]models.Notification, 0), TotalCount: total}
	if err := query.Order("created_at DESC").Limit(limit).Offset(offset).Find(&list.Notifications).Error; err != nil {
		log.Printf("[notifications.list] ❌ fetch failed: %v", err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to fetch notifications"))
		return
	}

	unread, err := services.GetNotificationService().UnreadCount(ctx, staffID)
	if err != nil {
		log.Printf("[notifications.list] ⚠️ unread count failed: %v", err)
	}
	list.UnreadCount = unread

	c.JSON(http.StatusOK, models.PaginatedResponse(c, "Notifications fetched successfully", list, models.NewPagination(page, limit, total)))
}

// GetUnreadCount godoc
// @Summary Count my unread notifications
// @Tags Notifications
// @Produce json
// @Security BearerAuth
// @Success 200 {object} models.ApiResponse
// @Router /notifications/unread-count [get]
func GetUnreadCount(c *gin.Context) {
	staffID, _ := middleware.GetStaffID(c)

	ctx, cancel := config.WithTimeout()
	defer cancel()

	count, err := services.GetNotificationService().UnreadCount(ctx, staffID)
	if err != nil {
		log.Printf("[notifications.unread] ❌ %v", err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to count notifications"))
		return
	}

	c.JSON(http.StatusOK, models.SuccessResponse(c, "Unread count fetched successfully", gin.H{"unread_count": count}))
}
