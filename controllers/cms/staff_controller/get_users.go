package staff_controller

import (
	"log"
	"net/http"
	"strings"
	"time"

	"github.com/Sarujan100/best-wishes-final-sub001/config"
	"github.com/Sarujan100/best-wishes-final-sub001/models"
	"github.com/Sarujan100/best-wishes-final-sub001/utils"
	"github.com/gin-gonic/gin"
)

var userSortColumns = map[string]string{
	"created_at":     "created_at",
	"first_name":     "first_name",
	"email":          "email",
	"last_login_at":  "last_login_at",
	"last_active_at": "last_active_at",
}

// GetUsers godoc
// @Summary List users
// @Description Each row carries status (Active within the last 5 minutes, Inactive, Blocked) and, for customers, order count and total.
// @Tags Users
// @Produce json
// @Security BearerAuth
// @Param page query int false "Page number" default(1)
// @Param limit query int false "Items per page (max 50)" default(10)
// @Param role query string false "Role, comma separated"
// @Param status query string false "Active, Inactive or Blocked"
// @Param search query string false "Search name, email and phone"
// @Param sort_by query string false "Sort column" Enums(created_at, first_name, email, last_login_at, last_active_at)
// @Param sort_order query string false "asc or desc" default(desc)
// @Success 200 {object} models.ApiResponse{data=[]models.UserResponse}
// @Router /admin/users [get]
func GetUsers(c *gin.Context) {
	page, limit, offset := utils.ParsePagination(c)

	ctx, cancel := config.WithTimeout()
	defer cancel()

	query := config.CmsGorm.WithContext(ctx).Model(&models.User{})
	if roles := utils.SplitCSV(c.Query("role")); len(roles) > 0 {
		query = query.Where("role IN ?", roles)
	}
	if term := strings.TrimSpace(c.Query("search")); term != "" {
		clause, args := utils.SearchClause(term, "first_name", "last_name", "email", "phone")
		query = query.Where(clause, args...)
	}
	activeSince := time.Now().Add(-models.ActiveWindow)
	switch c.Query("status") {
	case models.UserStatusBlocked:
		query = query.Where("is_blocked = ?", true)
	case models.UserStatusActive:
		query = query.Where("is_blocked = ? AND last_active_at >= ?", false, activeSince)
	case models.UserStatusInactive:
		query = query.Where("is_blocked = ? AND (last_active_at IS NULL OR last_active_at < ?)", false, activeSince)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		log.Printf("[users.list] ❌ count failed: %v", err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to count users"))
		return
	}

	var users []models.User
	if err := query.
		Order(utils.ParseSort(c, userSortColumns, "created_at")).
		Limit(limit).
		Offset(offset).
		Find(&users).Error; err != nil {
		log.Printf("[users.list] ❌ fetch failed: %v", err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to fetch users"))
		return
	}

	data, err := withOrderTotals(ctx, users)
	if err != nil {
		log.Printf("[users.list] ❌ order totals failed: %v", err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to fetch users"))
		return
	}

	c.JSON(http.StatusOK, models.PaginatedResponse(c, "Users fetched successfully", data, models.NewPagination(page, limit, total)))
}
