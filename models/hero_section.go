package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// HeroSection is one slide of the storefront homepage banner.
type HeroSection struct {
	ID            uuid.UUID `json:"id" gorm:"type:uuid;primaryKey"`
	Title         string    `json:"title" gorm:"not null"`
	Description   string    `json:"description" gorm:"type:text"`
	Image         string    `json:"image" gorm:"not null"`
	ImagePublicID string    `json:"image_public_id"`
	LinkURL       string    `json:"link_url"`
	IsActive      bool      `json:"is_active" gorm:"not null;index"`
	SortOrder     int       `json:"sort_order" gorm:"not null;default:0"`
	CreatedAt     time.Time `json:"created_at" gorm:"autoCreateTime"`
	UpdatedAt     time.Time `json:"updated_at" gorm:"autoUpdateTime"`
}

func (h *HeroSection) BeforeCreate(tx *gorm.DB) error {
	if h.ID == uuid.Nil {
		h.ID = uuid.Must(uuid.NewV7())
	}
	return nil
}

func (HeroSection) TableName() string {
	return "hero_sections"
}

// HeroSectionForm is the multipart form of create and update; the image travels as the "image" file.
// On update every field is optional.
type HeroSectionForm struct {
	Title       *string `form:"title"`
	Description *string `form:"description"`
	LinkURL     *string `form:"link_url"`
	IsActive    *bool   `form:"is_active"`
	SortOrder   *int    `form:"sort_order"`
}

// Apply copies the submitted fields onto h.
func (f HeroSectionForm) Apply(h *HeroSection) {
	if f.Title != nil {
		h.Title = *f.Title
	}
	if f.Description != nil {
		h.Description = *f.Description
	}
	if f.LinkURL != nil {
		h.LinkURL = *f.LinkURL
	}
	if f.IsActive != nil {
		h.IsActive = *f.IsActive
	}
	if f.SortOrder != nil {
		h.SortOrder = *f.SortOrder
	}
}
