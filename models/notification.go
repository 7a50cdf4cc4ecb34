package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

const (
	NotificationOrder     = "order"
	NotificationSystem    = "system"
	NotificationPromotion = "promotion"
	NotificationReminder  = "reminder"
	NotificationGift      = "gift"
	NotificationInventory = "inventory"

	PriorityLow    = "low"
	PriorityMedium = "medium"
	PriorityHigh   = "high"
)

type Notification struct {
	ID           uuid.UUID      `json:"id" gorm:"type:uuid;primaryKey"`
	UserID       uuid.UUID      `json:"user_id" gorm:"type:uuid;not null;index:idx_notifications_user_read"`
	Title        string         `json:"title" gorm:"not null"`
	Message      string         `json:"message" gorm:"type:text;not null"`
	Type         string         `json:"type" gorm:"not null;default:'system'"`
	IsRead       bool           `json:"is_read" gorm:"not null;default:false;index:idx_notifications_user_read"`
	RelatedID    string         `json:"related_id,omitempty"`
	RelatedModel string         `json:"related_model,omitempty"`
	Priority     string         `json:"priority" gorm:"not null;default:'medium'"`
	ActionURL    string         `json:"action_url,omitempty"`
	Metadata     datatypes.JSON `json:"metadata,omitempty" gorm:"type:jsonb"`
	CreatedAt    time.Time      `json:"created_at" gorm:"autoCreateTime;index"`
	UpdatedAt    time.Time      `json:"updated_at" gorm:"autoUpdateTime"`
}

func (n *Notification) BeforeCreate(tx *gorm.DB) error {
	if n.ID == uuid.Nil {
		n.ID = uuid.Must(uuid.NewV7())
	}
	if n.Type == "" {
		n.Type = NotificationSystem
	}
	if n.Priority == "" {
		n.Priority = PriorityMedium
	}
	return nil
}

func (Notification) TableName() string {
	return "notifications"
}

// NotificationPayload is what the socket pushes as `newNotification`.
type NotificationPayload struct {
	ID        uuid.UUID `json:"id"`
	Title     string    `json:"title"`
	Message   string    `json:"message"`
	Type      string    `json:"type"`
	Priority  string    `json:"priority"`
	ActionURL string    `json:"action_url,omitempty"`
	CreatedAt time.Time `json:"created_at"`
	IsRead    bool      `json:"is_read"`
}

func (n *Notification) Payload() NotificationPayload {
	return NotificationPayload{
		ID:        n.ID,
		Title:     n.Title,
		Message:   n.Message,
		Type:      n.Type,
		Priority:  n.Priority,
		ActionURL: n.ActionURL,
		CreatedAt: n.CreatedAt,
		IsRead:    n.IsRead,
	}
}
