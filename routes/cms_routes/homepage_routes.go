package cms_routes

import (
	"github.com/Sarujan100/best-wishes-final-sub001/controllers/cms/customization_controller"
	"github.com/Sarujan100/best-wishes-final-sub001/controllers/cms/homepage_controller"
	"github.com/Sarujan100/best-wishes-final-sub001/middleware"
	"github.com/Sarujan100/best-wishes-final-sub001/models"
	"github.com/gin-gonic/gin"
)

// SetupHomepageRoutes registers the storefront hero slider. The active list is public.
func SetupHomepageRoutes(rg *gin.RouterGroup) {
	hero := rg.Group("/hero-sections")
	hero.GET("/active", homepage_controller.GetActiveHeroSections)

	staff := hero.Group("")
	staff.Use(middleware.StaffAuthMiddleware())
	staff.Use(middleware.RequireRoles(models.RoleAdmin))
	staff.GET("", homepage_controller.GetHeroSections)

	protected := staff.Group("")
	protected.Use(middleware.ActivityLoggingMiddleware())
	{
		protected.POST("", homepage_controller.CreateHeroSection)
		protected.PUT("/:id", homepage_controller.UpdateHeroSection)
		protected.DELETE("/:id", homepage_controller.DeleteHeroSection)
		protected.PATCH("/:id/toggle-status", homepage_controller.ToggleHeroSection)
	}
}

// SetupCustomizationRoutes registers moderation of customer designs, admins only.
func SetupCustomizationRoutes(rg *gin.RouterGroup) {
	custom := rg.Group("/customizations")
	custom.Use(middleware.StaffAuthMiddleware())
	custom.Use(middleware.RequireRoles(models.RoleAdmin))

	custom.GET("", customization_controller.GetCustomizations)
	custom.GET("/:id", customization_controller.GetCustomization)

	protected := custom.Group("")
	protected.Use(middleware.ActivityLoggingMiddleware())
	protected.PATCH("/:id/status", customization_controller.UpdateCustomizationStatus)
}
