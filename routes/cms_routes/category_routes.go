package cms_routes

import (
	"github.com/Sarujan100/best-wishes-final-sub001/controllers/cms/category_controller"
	"github.com/Sarujan100/best-wishes-final-sub001/middleware"
	"github.com/Sarujan100/best-wishes-final-sub001/models"
	"github.com/gin-gonic/gin"
)

func SetupCategoryRoutes(rg *gin.RouterGroup) {
	category := rg.Group("/categories")
	category.Use(middleware.StaffAuthMiddleware())

	category.GET("", category_controller.GetCategories)
	category.GET("/:key", category_controller.GetCategory)
	category.GET("/:key/attributes/:name/items", category_controller.GetAttributeItems)

	protected := category.Group("")
	protected.Use(middleware.RequireRoles(models.RoleAdmin, models.RoleInventoryManager))
	protected.Use(middleware.ActivityLoggingMiddleware())
	{
		// Categories
		protected.POST("", category_controller.CreateCategory)
		protected.PUT("/:key", category_controller.UpdateCategory)
		protected.DELETE("/:key", category_controller.DeleteCategory)

		// Attributes
		protected.POST("/:key/attributes", category_controller.AddAttribute)
		protected.DELETE("/:key/attributes/:name", category_controller.DeleteAttribute)

		// Attribute items
		protected.POST("/:key/attributes/:name/items", category_controller.AddAttributeItem)
		protected.PUT("/:key/attributes/:name/items/:item", category_controller.UpdateAttributeItem)
		protected.DELETE("/:key/attributes/:name/items/:item", category_controller.DeleteAttributeItem)
	}
}
