package cms_routes

import (
	"time"

	"github.com/Sarujan100/best-wishes-final-sub001/controllers/cms/auth_controller"
	"github.com/Sarujan100/best-wishes-final-sub001/middleware"
	"github.com/gin-gonic/gin"
)

// SetupAuthRoutes registers staff sign-in and session routes.
func SetupAuthRoutes(rg *gin.RouterGroup) {
	auth := rg.Group("/auth")

	// ════════════════════════════════════════════════════════════
	// Public Routes (No Auth Required)
	// ════════════════════════════════════════════════════════════
	auth.POST("/login", middleware.RateLimiter(10, time.Minute), auth_controller.Login)
	auth.GET("/google/login", auth_controller.GoogleLogin)
	auth.GET("/google/callback", auth_controller.GoogleCallback)

	// ════════════════════════════════════════════════════════════
	// Protected Routes (Auth Required)
	// ════════════════════════════════════════════════════════════
	protected := auth.Group("")
	protected.Use(middleware.StaffAuthMiddleware())
	{
		protected.POST("/logout", auth_controller.Logout)
		protected.GET("/me", auth_controller.GetMe)
	}
}
