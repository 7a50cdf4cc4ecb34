package cms_routes

import (
	"github.com/Sarujan100/best-wishes-final-sub001/controllers/cms/dashboard_controller"
	"github.com/Sarujan100/best-wishes-final-sub001/controllers/cms/upload_controller"
	"github.com/Sarujan100/best-wishes-final-sub001/middleware"
	"github.com/Sarujan100/best-wishes-final-sub001/models"
	"github.com/gin-gonic/gin"
)

func SetupUploadRoutes(rg *gin.RouterGroup) {
	upload := rg.Group("/upload")
	upload.Use(middleware.StaffAuthMiddleware())
	upload.Use(middleware.RequireRoles(models.RoleAdmin, models.RoleInventoryManager))
	upload.Use(middleware.ActivityLoggingMiddleware())
	upload.POST("/single", upload_controller.UploadSingle)
}

func SetupDashboardRoutes(rg *gin.RouterGroup) {
	dashboard := rg.Group("/dashboard")
	dashboard.Use(middleware.StaffAuthMiddleware())
	dashboard.Use(middleware.RequireRoles(models.RoleAdmin, models.RoleInventoryManager))
	dashboard.GET("/overview", dashboard_controller.GetOverview)
	dashboard.GET("/monthly-revenue", dashboard_controller.GetMonthlyRevenue)
	dashboard.GET("/top-products", dashboard_controller.GetTopProducts)

	reports := dashboard.Group("/reports")
	reports.Use(middleware.RequireRoles(models.RoleAdmin))
	reports.Use(middleware.ActivityLoggingMiddleware())
	reports.POST("/email", dashboard_controller.SendReportEmail)
}
