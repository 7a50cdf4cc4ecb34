package activity_controller

import (
	"log"
	"net/http"
	"time"

	"github.com/Sarujan100/best-wishes-final-sub001/config"
	"github.com/Sarujan100/best-wishes-final-sub001/models"
	"github.com/Sarujan100/best-wishes-final-sub001/services"
	"github.com/Sarujan100/best-wishes-final-sub001/utils"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// GetActivityLogs godoc
// @Summary List staff activity
// @Tags Activity Logs
// @Produce json
// @Security BearerAuth
// @Param page query int false "Page number" default(1)
// @Param limit query int false "Items per page (max 50)" default(10)
// @Param staff_id query string false "Staff ID"
// @Param action query string false "Action, e.g. created_product"
// @Param resource_type query string false "Resource type" Enums(product, category, attribute_item, shipping_class, order, user, media, notification, hero_section, customization, report)
// @Param from query string false "RFC3339 or YYYY-MM-DD"
// @Param to query string false "RFC3339 or YYYY-MM-DD"
// @Success 200 {object} models.ApiResponse{data=[]models.ActivityLogResponse}
// @Router /admin/activity-logs [get]
func GetActivityLogs(c *gin.Context) {
	page, limit, offset := utils.ParsePagination(c)

	filter := models.ActivityLogFilter{
		Action:       c.Query("action"),
		ResourceType: c.Query("resource_type"),
		From:         parseTime(c.Query("from"), false),
		To:           parseTime(c.Query("to"), true),
	}
	if raw := c.Query("staff_id"); raw != "" {
		id, err := uuid.Parse(raw)
		if err != nil {
			c.JSON(http.StatusBadRequest, models.ErrorResponse(c, "Invalid staff ID"))
			return
		}
		filter.StaffID = &id
	}

	ctx, cancel := config.WithTimeout()
	defer cancel()

	logs, total, err := services.GetActivityLogService().List(ctx, filter, limit, offset)
	if err != nil {
		log.Printf("[activity-logs.list] ❌ %v", err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to fetch activity logs"))
		return
	}

	data := make([]models.ActivityLogResponse, len(logs))
	for i := range logs {
		data[i] = logs[i].ToResponse()
	}

	c.JSON(http.StatusOK, models.PaginatedResponse(c, "Activity logs fetched successfully", data, models.NewPagination(page, limit, total)))
}

// parseTime accepts RFC3339 or a date; a bare date used as an upper bound covers the whole day.
func parseTime(raw string, endOfDay bool) *time.Time {
	if raw == "" {
		return nil
	}
	if t, err := time.Parse(time.RFC3339, raw); err == nil {
		return &t
	}
	t, err := time.Parse("2006-01-02", raw)
	if err != nil {
		return nil
	}
	if endOfDay {
		t = t.Add(24*time.Hour - time.Nanosecond)
	}
	return &t
}
