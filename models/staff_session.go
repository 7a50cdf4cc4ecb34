package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// StaffSession represents one signed-in device of a staff member.
type StaffSession struct {
	ID             uuid.UUID `json:"id" gorm:"type:uuid;primaryKey"`
	UserID         uuid.UUID `json:"user_id" gorm:"type:uuid;not null;index"`
	TokenHash      string    `json:"-" gorm:"not null;uniqueIndex"` // Hash of JWT token
	IPAddress      string    `json:"ip_address"`
	UserAgent      string    `json:"user_agent" gorm:"type:text"`
	DeviceType     string    `json:"device_type"`
	Browser        string    `json:"browser"`
	CreatedAt      time.Time `json:"created_at" gorm:"autoCreateTime;index"`
	LastActivityAt time.Time `json:"last_activity_at" gorm:"index"`
	ExpiresAt      time.Time `json:"expires_at" gorm:"index"`
	IsActive       bool      `json:"is_active" gorm:"not null;index"`
}

// BeforeCreate hook - auto-generate UUID v7
func (s *StaffSession) BeforeCreate(tx *gorm.DB) error {
	if s.ID == uuid.Nil {
		s.ID = uuid.Must(uuid.NewV7())
	}
	if s.ExpiresAt.IsZero() {
		s.ExpiresAt = time.Now().Add(24 * time.Hour)
	}
	if s.LastActivityAt.IsZero() {
		s.LastActivityAt = time.Now()
	}
	return nil
}

func (StaffSession) TableName() string {
	return "staff_sessions"
}

// IsExpired checks if session has expired
func (s *StaffSession) IsExpired() bool {
	return time.Now().After(s.ExpiresAt)
}
