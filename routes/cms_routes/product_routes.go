package cms_routes

import (
	"github.com/Sarujan100/best-wishes-final-sub001/controllers/cms/product_controller"
	"github.com/Sarujan100/best-wishes-final-sub001/middleware"
	"github.com/Sarujan100/best-wishes-final-sub001/models"
	"github.com/gin-gonic/gin"
)

func SetupProductRoutes(rg *gin.RouterGroup) {
	product := rg.Group("/products")
	product.Use(middleware.StaffAuthMiddleware())

	// ════════════════════════════════════════════════════════════
	// Read Routes (any staff)
	// ════════════════════════════════════════════════════════════
	product.GET("", product_controller.GetProducts)
	product.GET("/low-stock", product_controller.GetLowStockProducts)
	product.GET("/:id", product_controller.GetProductByID)
	product.POST("/pricing/preview", product_controller.PreviewPricing)

	// ════════════════════════════════════════════════════════════
	// Protected Routes (Inventory + Activity Logging)
	// ════════════════════════════════════════════════════════════
	protected := product.Group("")
	protected.Use(middleware.RequireRoles(models.RoleAdmin, models.RoleInventoryManager))
	protected.Use(middleware.ActivityLoggingMiddleware())
	{
		protected.POST("", product_controller.CreateProduct)
		protected.PUT("/:id", product_controller.UpdateProduct)
		protected.DELETE("/:id", product_controller.DeleteProduct)
		protected.POST("/:id/filters/toggle", product_controller.ToggleProductFilter)
	}
}
