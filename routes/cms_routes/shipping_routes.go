package cms_routes

import (
	"github.com/Sarujan100/best-wishes-final-sub001/controllers/cms/shipping_controller"
	"github.com/Sarujan100/best-wishes-final-sub001/middleware"
	"github.com/Sarujan100/best-wishes-final-sub001/models"
	"github.com/gin-gonic/gin"
)

func SetupShippingRoutes(rg *gin.RouterGroup) {
	shipping := rg.Group("/shipping-classes")
	shipping.Use(middleware.StaffAuthMiddleware())

	shipping.GET("", shipping_controller.GetShippingClasses)
	shipping.GET("/:key", shipping_controller.GetShippingClass)

	protected := shipping.Group("")
	protected.Use(middleware.RequireRoles(models.RoleAdmin, models.RoleInventoryManager))
	protected.Use(middleware.ActivityLoggingMiddleware())
	{
		protected.POST("", shipping_controller.CreateShippingClass)
		protected.PUT("/:key", shipping_controller.UpdateShippingClass)
		protected.DELETE("/:key", shipping_controller.DeleteShippingClass)
	}
}
