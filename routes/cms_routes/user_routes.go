package cms_routes

import (
	"time"

	"github.com/Sarujan100/best-wishes-final-sub001/controllers/cms/activity_controller"
	"github.com/Sarujan100/best-wishes-final-sub001/controllers/cms/staff_controller"
	"github.com/Sarujan100/best-wishes-final-sub001/middleware"
	"github.com/Sarujan100/best-wishes-final-sub001/models"
	"github.com/gin-gonic/gin"
)

// SetupAdminRoutes registers staff management and the activity log, admins only.
func SetupAdminRoutes(rg *gin.RouterGroup) {
	admin := rg.Group("/admin")
	admin.Use(middleware.StaffAuthMiddleware())
	admin.Use(middleware.RequireRoles(models.RoleAdmin))

	// Activity logs
	admin.GET("/activity-logs", activity_controller.GetActivityLogs)

	users := admin.Group("/users")
	users.GET("", staff_controller.GetUsers)
	users.GET("/check-email/:email", staff_controller.CheckEmail)
	users.GET("/:id", staff_controller.GetUser)

	protected := users.Group("")
	protected.Use(middleware.ActivityLoggingMiddleware())
	{
		protected.POST("", middleware.RateLimiter(20, time.Hour), staff_controller.CreateUser)
		protected.PUT("/:id", staff_controller.UpdateUser)
		protected.PUT("/:id/change-password", staff_controller.ChangePassword)
		protected.POST("/activate", staff_controller.ActivateUsers)
		protected.POST("/deactivate", staff_controller.DeactivateUsers)
		protected.DELETE("", staff_controller.DeleteUsers)
	}
}
