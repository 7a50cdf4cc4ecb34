package cms_routes

import (
	"github.com/Sarujan100/best-wishes-final-sub001/controllers/cms/delivery_controller"
	"github.com/Sarujan100/best-wishes-final-sub001/middleware"
	"github.com/Sarujan100/best-wishes-final-sub001/models"
	"github.com/gin-gonic/gin"
)

func SetupDeliveryRoutes(rg *gin.RouterGroup) {
	delivery := rg.Group("/delivery")
	delivery.Use(middleware.StaffAuthMiddleware())
	delivery.Use(middleware.RequireRoles(models.RoleDeliveryStaff, models.RoleAdmin))

	// Orders
	delivery.GET("/orders", delivery_controller.GetDeliveryOrders)
	delivery.GET("/orders/search", delivery_controller.SearchDeliveryOrders)
	delivery.GET("/orders/:id", delivery_controller.GetDeliveryOrder)

	// Profile & stats
	delivery.GET("/profile", delivery_controller.GetProfile)
	delivery.GET("/stats", delivery_controller.GetDeliveryStats)

	protected := delivery.Group("")
	protected.Use(middleware.ActivityLoggingMiddleware())
	{
		protected.PUT("/orders/:id/status", delivery_controller.UpdateDeliveryStatus)
		protected.PUT("/profile", delivery_controller.UpdateProfile)
	}
}
