package cms_routes

import (
	"github.com/Sarujan100/best-wishes-final-sub001/controllers/cms/notification_controller"
	"github.com/Sarujan100/best-wishes-final-sub001/middleware"
	"github.com/gin-gonic/gin"
)

func SetupNotificationRoutes(rg *gin.RouterGroup) {
	notifications := rg.Group("/notifications")
	notifications.Use(middleware.StaffAuthMiddleware())
	{
		notifications.GET("", notification_controller.GetNotifications)
		notifications.GET("/unread-count", notification_controller.GetUnreadCount)
		notifications.PUT("/mark-all-read", notification_controller.MarkAllAsRead)
		notifications.PUT("/:id/read", notification_controller.MarkAsRead)
		notifications.DELETE("/:id", notification_controller.DeleteNotification)
	}
}
