package order_controller

import (
	"log"
	"net/http"
	"strings"
	"time"

	"github.com/Sarujan100/best-wishes-final-sub001/config"
	"github.com/Sarujan100/best-wishes-final-sub001/models"
	"github.com/Sarujan100/best-wishes-final-sub001/utils"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

const dateLayout = "2006-01-02"

var orderSortColumns = map[string]string{
	"created_at":   "created_at",
	"updated_at":   "updated_at",
	"total":        "total",
	"status":       "status",
	"order_number": "order_number",
}

// FilterOrders applies the list filters shared by the admin and delivery queues.
func FilterOrders(c *gin.Context, query *gorm.DB) *gorm.DB {
	if term := strings.TrimSpace(c.Query("search")); term != "" {
		clause, args := utils.SearchClause(term,
			"CAST(id AS TEXT)", "order_number", "customer_name", "customer_email", "customer_phone")
		query = query.Where(clause, args...)
	}
	if status := c.Query("status"); status != "" {
		query = query.Where("status IN ?", utils.SplitCSV(status))
	}
	if ps := c.Query("payment_status"); ps != "" {
		query = query.Where("payment_status = ?", ps)
	}
	if sm := c.Query("shipping_method"); sm != "" {
		query = query.Where("shipping_method = ?", sm)
	}
	if from, err := time.Parse(dateLayout, c.Query("date_from")); err == nil {
		query = query.Where("created_at >= ?", from)
	}
	if to, err := time.Parse(dateLayout, c.Query("date_to")); err == nil {
		query = query.Where("created_at < ?", to.AddDate(0, 0, 1))
	}
	return query
}

// GetOrders godoc
// @Summary Get paginated orders
// @Description Search matches the id, order number, customer name, email and phone case-insensitively.
// @Tags Orders
// @Produce json
// @Security BearerAuth
// @Param page query int false "Page number" default(1)
// @Param limit query int false "Items per page (max 50)" default(10)
// @Param search query string false "Search term"
// @Param status query string false "Status, comma separated"
// @Param payment_status query string false "Payment status"
// @Param shipping_method query string false "Shipping class key"
// @Param date_from query string false "YYYY-MM-DD"
// @Param date_to query string false "YYYY-MM-DD, inclusive"
// @Param sort_by query string false "Sort column" Enums(created_at, updated_at, total, status, order_number)
// @Param sort_order query string false "asc or desc" default(desc)
// @Success 200 {object} models.ApiResponse
// @Failure 500 {object} models.ApiResponse
// @Router /orders [get]
func GetOrders(c *gin.Context) {
	page, limit, offset := utils.ParsePagination(c)

	ctx, cancel := config.WithTimeout()
	defer cancel()

	query := FilterOrders(c, config.CmsGorm.WithContext(ctx).Model(&models.Order{}))

	var total int64
	if err := query.Count(&total).Error; err != nil {
		log.Printf("[orders.list] ❌ count failed: %v", err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to count orders"))
		return
	}

	orders := make([]models.Order, 0)
	if err := query.
		Preload("Items").
		Order(utils.ParseSort(c, orderSortColumns, "created_at")).
		Limit(limit).
		Offset(offset).
		Find(&orders).Error; err != nil {
		log.Printf("[orders.list] ❌ fetch failed: %v", err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to fetch orders"))
		return
	}

	c.JSON(http.StatusOK, models.PaginatedResponse(c, "Orders fetched successfully", orders, models.NewPagination(page, limit, total)))
}
