package services

import (
	"context"
	"encoding/json"
	"log"

	"github.com/Sarujan100/best-wishes-final-sub001/config"
	"github.com/Sarujan100/best-wishes-final-sub001/models"
	"github.com/Sarujan100/best-wishes-final-sub001/utils"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// ActivityLogService handles activity logging
type ActivityLogService struct{}

func NewActivityLogService() *ActivityLogService {
	return &ActivityLogService{}
}

// LogActivityRequest contains the parameters for logging an activity
type LogActivityRequest struct {
	StaffID      uuid.UUID
	StaffEmail   string
	StaffRole    string
	Action       string // created_product, bulk_updated_order, ...
	ResourceType string
	ResourceID   string
	ResourceName string
	Changes      map[string]interface{} // {before, after} or {request}
	Status       string
	ErrorMessage string
	Context      *gin.Context // For IP and User-Agent extraction
}

// LogActivity stores one entry. Failures are logged, never returned to the caller's request.
func (s *ActivityLogService) LogActivity(req LogActivityRequest) {
	if req.StaffID == uuid.Nil {
		log.Printf("[activity-log] warning: StaffID is nil for action %s", req.Action)
		return
	}

	userAgent := ""
	if req.Context != nil {
		userAgent = req.Context.GetHeader("User-Agent")
	}

	var changesJSON []byte
	if req.Changes != nil {
		data, err := json.Marshal(req.Changes)
		if err != nil {
			log.Printf("[activity-log] failed to marshal changes: %v", err)
			changesJSON = []byte("{}")
		} else {
			changesJSON = data
		}
	}

	if req.Status == "" {
		req.Status = models.StatusSuccess
	}

	entry := models.ActivityLog{
		StaffID:      req.StaffID,
		StaffEmail:   req.StaffEmail,
		StaffRole:    req.StaffRole,
		Action:       req.Action,
		ResourceType: req.ResourceType,
		ResourceID:   req.ResourceID,
		ResourceName: req.ResourceName,
		Changes:      changesJSON,
		Status:       req.Status,
		ErrorMessage: req.ErrorMessage,
		IPAddress:    utils.GetClientIP(req.Context),
		UserAgent:    userAgent,
	}

	ctx, cancel := config.WithTimeout()
	defer cancel()

	if err := config.CmsGorm.WithContext(ctx).Create(&entry).Error; err != nil {
		log.Printf("[activity-log] failed to create activity log: %v", err)
		return
	}

	log.Printf("[activity-log] %s: %s/%s/%s by %s", req.Action, req.ResourceType, req.ResourceID, req.ResourceName, req.StaffEmail)
}

// List returns a page of entries, newest first.
func (s *ActivityLogService) List(ctx context.Context, f models.ActivityLogFilter, limit, offset int) ([]models.ActivityLog, int64, error) {
	query := config.CmsGorm.WithContext(ctx).Model(&models.ActivityLog{})
	if f.StaffID != nil {
		query = query.Where("staff_id = ?", *f.StaffID)
	}
	if f.Action != "" {
		query = query.Where("action = ?", f.Action)
	}
	if f.ResourceType != "" {
		query = query.Where("resource_type = ?", f.ResourceType)
	}
	if f.From != nil {
		query = query.Where("created_at >= ?", *f.From)
	}
	if f.To != nil {
		query = query.Where("created_at <= ?", *f.To)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var logs []models.ActivityLog
	if err := query.Order("created_at DESC").Limit(limit).Offset(offset).Find(&logs).Error; err != nil {
		return nil, 0, err
	}
	return logs, total, nil
}

var activityLogService *ActivityLogService

func GetActivityLogService() *ActivityLogService {
	if activityLogService == nil {
		activityLogService = NewActivityLogService()
	}
	return activityLogService
}

// LogActivity logs an activity using the global service
func LogActivity(req LogActivityRequest) {
	GetActivityLogService().LogActivity(req)
}

// CreateChanges builds the before/after changes map.
func CreateChanges(before, after interface{}) map[string]interface{} {
	return map[string]interface{}{
		"before": before,
		"after":  after,
	}
}
