package dashboard_controller

import (
	"log"
	"net/http"
	"strconv"
	"time"

	"github.com/Sarujan100/best-wishes-final-sub001/config"
	"github.com/Sarujan100/best-wishes-final-sub001/models"
	"github.com/Sarujan100/best-wishes-final-sub001/services"
	"github.com/gin-gonic/gin"
)

const defaultTopProducts = 6

// GetTopProducts godoc
// @Summary Get top performing products
// @Description Best selling products of the current month by item revenue, with units sold and revenue share
// @Tags Dashboard
// @Produce json
// @Security BearerAuth
// @Param limit query int false "How many products (1-20)" default(6)
// @Success 200 {object} models.ApiResponse{data=[]models.TopProduct}
// @Failure 500 {object} models.ApiResponse
// @Router /dashboard/top-products [get]
func GetTopProducts(c *gin.Context) {
	ctx, cancel := config.WithTimeout()
	defer cancel()

	limit, err := strconv.Atoi(c.DefaultQuery("limit", strconv.Itoa(defaultTopProducts)))
	if err != nil || limit < 1 || limit > 20 {
		limit = defaultTopProducts
	}

	now := time.Now()
	monthStart := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location())

	top, err := services.TopProducts(ctx, monthStart, now.Add(time.Second), limit)
	if err != nil {
		log.Printf("[dashboard.top-products] ❌ %v", err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to fetch top products"))
		return
	}

	log.Printf("[dashboard.top-products] ✅ products=%d", len(top))
	c.JSON(http.StatusOK, models.SuccessResponse(c, "Top products retrieved successfully", top))
}
