package models

import (
	"strings"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

const DefaultShippingClass = "standard"

// ShippingClass is a named flat-fee shipping tier.
type ShippingClass struct {
	ID            uuid.UUID `json:"id" gorm:"type:uuid;primaryKey"`
	Key           string    `json:"key" gorm:"not null;uniqueIndex"`
	Name          string    `json:"name" gorm:"not null"`
	Fee           float64   `json:"fee" gorm:"type:numeric(10,2);not null;default:0"`
	Description   string    `json:"description"`
	EstimatedDays string    `json:"estimated_days"`
	CreatedAt     time.Time `json:"created_at" gorm:"autoCreateTime"`
	UpdatedAt     time.Time `json:"updated_at" gorm:"autoUpdateTime"`
}

func (s *ShippingClass) BeforeCreate(tx *gorm.DB) error {
	if s.ID == uuid.Nil {
		s.ID = uuid.Must(uuid.NewV7())
	}
	return nil
}

func (ShippingClass) TableName() string {
	return "shipping_classes"
}

// ShippingClassKey derives a key from a display name: "Next Day" -> "next-day".
func ShippingClassKey(name string) string {
	return strings.Join(strings.Fields(strings.ToLower(name)), "-")
}

// DefaultShippingClasses are seeded on first start.
func DefaultShippingClasses() []ShippingClass {
	return []ShippingClass{
		{Key: "standard", Name: "Standard", Fee: 5.99, EstimatedDays: "3-5"},
		{Key: "express", Name: "Express", Fee: 12.99, EstimatedDays: "1-2"},
		{Key: "overnight", Name: "Overnight", Fee: 24.99, EstimatedDays: "1"},
		{Key: "free", Name: "Free", Fee: 0, EstimatedDays: "5-7"},
		{Key: "heavy", Name: "Heavy", Fee: 19.99, EstimatedDays: "5-10"},
	}
}

type ShippingClassRequest struct {
	Name          string  `json:"name" binding:"required"`
	Fee           float64 `json:"fee" binding:"min=0"`
	Description   string  `json:"description"`
	EstimatedDays string  `json:"estimated_days"`
}
