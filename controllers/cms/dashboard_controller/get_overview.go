package dashboard_controller

import (
	"log"
	"net/http"

	"github.com/Sarujan100/best-wishes-final-sub001/config"
	"github.com/Sarujan100/best-wishes-final-sub001/models"
	"github.com/Sarujan100/best-wishes-final-sub001/services"
	"github.com/gin-gonic/gin"
)

// GetOverview godoc
// @Summary Dashboard overview
// @Description Orders by status, revenue of non-cancelled orders with month-over-month growth, products by stock status, active staff by role and the latest 5 orders.
// @Tags Dashboard
// @Produce json
// @Security BearerAuth
// @Success 200 {object} models.ApiResponse{data=services.DashboardOverview}
// @Failure 500 {object} models.ApiResponse
// @Router /dashboard/overview [get]
func GetOverview(c *gin.Context) {
	ctx, cancel := config.WithTimeout()
	defer cancel()

	overview, err := services.BuildDashboardOverview(ctx)
	if err != nil {
		log.Printf("[dashboard.overview] ❌ %v", err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to fetch dashboard"))
		return
	}

	c.JSON(http.StatusOK, models.SuccessResponse(c, "Dashboard fetched successfully", overview))
}
