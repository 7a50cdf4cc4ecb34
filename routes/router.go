package routes

import (
	"net/http"
	"strings"
	"time"

	"github.com/Sarujan100/best-wishes-final-sub001/config"
	"github.com/Sarujan100/best-wishes-final-sub001/middleware"
	"github.com/Sarujan100/best-wishes-final-sub001/models"
	"github.com/Sarujan100/best-wishes-final-sub001/routes/cms_routes"
	"github.com/Sarujan100/best-wishes-final-sub001/services"
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

// AllowedOrigins lists the front-end origins for CORS and the socket.io handshake.
func AllowedOrigins() []string {
	var origins []string
	for _, o := range strings.Split(config.App.FrontendURL, ",") {
		if o = strings.TrimRight(strings.TrimSpace(o), "/"); o != "" {
			origins = append(origins, o)
		}
	}
	if len(origins) == 0 {
		origins = []string{"http://localhost:3000"}
	}
	return origins
}

// NewRouter wires middleware, operational endpoints and every API group.
// hub may be nil, in which case no socket.io endpoint is mounted.
func NewRouter(hub *services.SocketHub) *gin.Engine {
	if config.App.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.New()
	router.Use(gin.Logger(), gin.Recovery())

	// ✅ Single CORS config, Content-Disposition exposed for invoice downloads
	router.Use(cors.New(cors.Config{
		AllowOrigins:     AllowedOrigins(),
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization", "X-CSRF-Token", "X-Requested-With"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
		ExposeHeaders:    []string{"Content-Disposition", "Content-Length"},
	}))
	router.Use(middleware.MetricsMiddleware())

	// ════════════════════════════════════════════════════════════
	// Operations
	// ════════════════════════════════════════════════════════════
	router.GET("/health", health)
	router.GET("/metrics", middleware.MetricsHandler())
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	if hub != nil {
		router.GET("/socket.io/*any", gin.WrapH(hub.Handler()))
		router.POST("/socket.io/*any", gin.WrapH(hub.Handler()))
	}

	// ════════════════════════════════════════════════════════════
	// API
	// ════════════════════════════════════════════════════════════
	api := router.Group("/api")
	api.Use(middleware.RateLimiter(config.App.RateLimitPerMinute, time.Minute))

	cms_routes.SetupAuthRoutes(api)
	cms_routes.SetupProductRoutes(api)
	cms_routes.SetupCategoryRoutes(api)
	cms_routes.SetupShippingRoutes(api)
	cms_routes.SetupOrderRoutes(api)
	cms_routes.SetupAdminRoutes(api)
	cms_routes.SetupDeliveryRoutes(api)
	cms_routes.SetupNotificationRoutes(api)
	cms_routes.SetupUploadRoutes(api)
	cms_routes.SetupDashboardRoutes(api)
	cms_routes.SetupHomepageRoutes(api)
	cms_routes.SetupCustomizationRoutes(api)

	return router
}

// health godoc
// @Summary      Liveness and readiness
// @Tags         Operations
// @Produce      json
// @Success      200  {object}  models.ApiResponse
// @Failure      503  {object}  models.ApiResponse
// @Router       /health [get]
func health(c *gin.Context) {
	ctx, cancel := config.WithCustomTimeout(3 * time.Second)
	defer cancel()

	status := config.Ping(ctx)
	for _, v := range status {
		if v != "ok" && v != "not configured" {
			resp := models.ErrorResponse(c, "Degraded")
			resp.Data = status
			c.JSON(http.StatusServiceUnavailable, resp)
			return
		}
	}
	c.JSON(http.StatusOK, models.SuccessResponse(c, "OK", status))
}
