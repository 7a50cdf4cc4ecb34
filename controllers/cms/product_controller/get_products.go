package product_controller

import (
	"log"
	"net/http"
	"strconv"
	"strings"

	"github.com/Sarujan100/best-wishes-final-sub001/config"
	"github.com/Sarujan100/best-wishes-final-sub001/models"
	"github.com/Sarujan100/best-wishes-final-sub001/services"
	"github.com/Sarujan100/best-wishes-final-sub001/utils"
	"github.com/gin-gonic/gin"
)

var productSortColumns = map[string]string{
	"created_at":   "created_at",
	"updated_at":   "updated_at",
	"name":         "name",
	"retail_price": "retail_price",
	"stock":        "stock",
}

// GetProducts godoc
// @Summary Get paginated products
// @Description List products with search, category, status, stock and attribute filters. Attribute filters use attr.<name>=v1,v2 and match any listed value.
// @Tags Products
// @Produce json
// @Security BearerAuth
// @Param page query int false "Page number" default(1)
// @Param limit query int false "Items per page (max 50)" default(10)
// @Param search query string false "Search name, descriptions, category, SKU and tags"
// @Param category query string false "Main category key"
// @Param status query string false "Status" Enums(draft, active, archived)
// @Param stock_status query string false "Stock status" Enums(in-stock, low-stock, out-of-stock)
// @Param featured query bool false "Featured only"
// @Param sort_by query string false "Sort column" Enums(created_at, updated_at, name, retail_price, stock)
// @Param sort_order query string false "asc or desc" default(desc)
// @Success 200 {object} models.ApiResponse
// @Failure 500 {object} models.ApiResponse
// @Router /products [get]
func GetProducts(c *gin.Context) {
	page, limit, offset := utils.ParsePagination(c)

	ctx, cancel := config.WithTimeout()
	defer cancel()

	query := config.CmsGorm.WithContext(ctx).Model(&models.Product{})

	if term := strings.TrimSpace(c.Query("search")); term != "" {
		clause, args := utils.SearchClause(term,
			"name", "short_description", "detailed_description", "main_category", "sku", "CAST(tags AS TEXT)")
		query = query.Where(clause, args...)
	}
	if category := c.Query("category"); category != "" {
		query = query.Where("main_category = ?", models.NormalizeCategoryKey(category))
	}
	if status := c.Query("status"); status != "" {
		query = query.Where("status = ?", status)
	}
	if stockStatus := c.Query("stock_status"); stockStatus != "" {
		query = query.Where("stock_status = ?", stockStatus)
	}
	if featured, err := strconv.ParseBool(c.Query("featured")); err == nil {
		query = query.Where("featured = ?", featured)
	}

	// attr.<name>=v1,v2: the product must carry one of the values for every attribute given.
	for key, values := range c.Request.URL.Query() {
		attribute := strings.TrimPrefix(key, "attr.")
		if attribute == key || attribute == "" {
			continue
		}
		var wanted []string
		for _, v := range values {
			wanted = append(wanted, utils.SplitCSV(v)...)
		}
		if len(wanted) == 0 {
			continue
		}
		sub := config.CmsGorm.WithContext(ctx).
			Model(&models.ProductFilterValue{}).
			Select("product_id").
			Where("attribute = ? AND value IN ?", attribute, wanted)
		query = query.Where("id IN (?)", sub)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		log.Printf("[products.list] ❌ count failed: %v", err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to count products"))
		return
	}

	products := make([]models.Product, 0)
	if err := query.
		Order(utils.ParseSort(c, productSortColumns, "created_at")).
		Limit(limit).
		Offset(offset).
		Find(&products).Error; err != nil {
		log.Printf("[products.list] ❌ fetch failed: %v", err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to fetch products"))
		return
	}

	fees := services.LoadShippingFees(ctx)
	data := make([]ProductResponse, 0, len(products))
	for _, p := range products {
		data = append(data, toResponse(p, fees))
	}

	c.JSON(http.StatusOK, models.PaginatedResponse(c, "Products fetched successfully", data, models.NewPagination(page, limit, total)))
}
