package models

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"

	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// ActivityLog is one mutating request made by a staff member.
type ActivityLog struct {
	ID           uuid.UUID      `json:"id" gorm:"type:uuid;primaryKey"`
	StaffID      uuid.UUID      `json:"staff_id" gorm:"type:uuid;not null;index"`
	StaffEmail   string         `json:"staff_email" gorm:"not null"`
	StaffRole    string         `json:"staff_role"`
	Action       string         `json:"action" gorm:"not null;index"`        // created_product, bulk_updated_orders, ...
	ResourceType string         `json:"resource_type" gorm:"not null;index"` // product, category, order, user
	ResourceID   string         `json:"resource_id" gorm:"index"`            // UUID, category key or comma list for bulk ops
	ResourceName string         `json:"resource_name"`
	Changes      datatypes.JSON `json:"changes" gorm:"type:jsonb"` // request body as sent
	Status       string         `json:"status" gorm:"not null"`
	ErrorMessage string         `json:"error_message"`
	IPAddress    string         `json:"ip_address"`
	UserAgent    string         `json:"user_agent"`
	CreatedAt    time.Time      `json:"created_at" gorm:"autoCreateTime;index"`
}

// BeforeCreate hook - auto-generate UUID v7
func (al *ActivityLog) BeforeCreate(tx *gorm.DB) error {
	if al.ID == uuid.Nil {
		al.ID = uuid.Must(uuid.NewV7())
	}
	// Default status to success if not set
	if al.Status == "" {
		al.Status = "success"
	}
	return nil
}

// TableName specifies the table name
func (ActivityLog) TableName() string {
	return "activity_logs"
}

// ════════════════════════════════════════════════════════════
// Request/Response Models
// ════════════════════════════════════════════════════════════

// ActivityLogResponse is the response for activity log data
type ActivityLogResponse struct {
	ID           uuid.UUID              `json:"id"`
	StaffID      uuid.UUID              `json:"staff_id"`
	StaffEmail   string                 `json:"staff_email"`
	StaffRole    string                 `json:"staff_role"`
	Action       string                 `json:"action"`
	ResourceType string                 `json:"resource_type"`
	ResourceID   string                 `json:"resource_id"`
	ResourceName string                 `json:"resource_name"`
	Changes      map[string]interface{} `json:"changes"`
	Status       string                 `json:"status"`
	ErrorMessage string                 `json:"error_message,omitempty"`
	IPAddress    string                 `json:"ip_address"`
	UserAgent    string                 `json:"user_agent"`
	CreatedAt    time.Time              `json:"created_at"`
}

// ToResponse converts ActivityLog to ActivityLogResponse
func (al *ActivityLog) ToResponse() ActivityLogResponse {
	changes := make(map[string]interface{})
	if al.Changes != nil {
		_ = json.Unmarshal(al.Changes, &changes)
	}

	return ActivityLogResponse{
		ID:           al.ID,
		StaffID:      al.StaffID,
		StaffEmail:   al.StaffEmail,
		StaffRole:    al.StaffRole,
		Action:       al.Action,
		ResourceType: al.ResourceType,
		ResourceID:   al.ResourceID,
		ResourceName: al.ResourceName,
		Changes:      changes,
		Status:       al.Status,
		ErrorMessage: al.ErrorMessage,
		IPAddress:    al.IPAddress,
		UserAgent:    al.UserAgent,
		CreatedAt:    al.CreatedAt,
	}
}

// ════════════════════════════════════════════════════════════
// Action Constants
// ════════════════════════════════════════════════════════════

const (
	ActionCreate     = "created"
	ActionUpdate     = "updated"
	ActionDelete     = "deleted"
	ActionBulkUpdate = "bulk_updated"
	ActionBulkDelete = "bulk_deleted"
	ActionActivate   = "activated"
	ActionDeactivate = "deactivated"
	ActionPassword   = "changed_password"
	ActionUpload     = "uploaded"
	ActionEmail      = "emailed"

	ResourceTypeProduct       = "product"
	ResourceTypeCategory      = "category"
	ResourceTypeAttributeItem = "attribute_item"
	ResourceTypeShippingClass = "shipping_class"
	ResourceTypeOrder         = "order"
	ResourceTypeUser          = "user"
	ResourceTypeMedia         = "media"
	ResourceTypeNotification  = "notification"
	ResourceTypeHeroSection   = "hero_section"
	ResourceTypeCustomization = "customization"
	ResourceTypeReport        = "report"

	StatusSuccess = "success"
	StatusFailed  = "failed"
)

// ActivityLogFilter narrows the activity log listing.
type ActivityLogFilter struct {
	StaffID      *uuid.UUID
	Action       string
	ResourceType string
	From, To     *time.Time
}
