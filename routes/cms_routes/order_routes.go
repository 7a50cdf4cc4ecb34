package cms_routes

import (
	"github.com/Sarujan100/best-wishes-final-sub001/controllers/cms/order_controller"
	"github.com/Sarujan100/best-wishes-final-sub001/middleware"
	"github.com/Sarujan100/best-wishes-final-sub001/models"
	"github.com/gin-gonic/gin"
)

func SetupOrderRoutes(rg *gin.RouterGroup) {
	order := rg.Group("/orders")
	order.Use(middleware.StaffAuthMiddleware())
	order.Use(middleware.RequireRoles(models.RoleAdmin, models.RoleInventoryManager))

	// ════════════════════════════════════════════════════════════
	// Read Routes
	// ════════════════════════════════════════════════════════════
	order.GET("", order_controller.GetOrders)
	order.GET("/stats", order_controller.GetOrderStats)
	order.GET("/:id", order_controller.GetOrder)
	order.GET("/:id/invoice", order_controller.DownloadOrderInvoice)

	// ════════════════════════════════════════════════════════════
	// Mutations (Activity Logging)
	// ════════════════════════════════════════════════════════════
	protected := order.Group("")
	protected.Use(middleware.ActivityLoggingMiddleware())
	{
		// Bulk routes come before /:id so the static segments win
		protected.PATCH("/bulk-update", order_controller.BulkUpdateOrders)
		protected.DELETE("/bulk-delete", order_controller.BulkDeleteOrders)

		protected.POST("", order_controller.CreateOrder)
		protected.PATCH("/:id", order_controller.UpdateOrder)
		protected.DELETE("/:id", order_controller.DeleteOrder)
	}
}
