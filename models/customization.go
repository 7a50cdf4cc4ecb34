package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

const (
	CustomizationMug             = "mug"
	CustomizationBirthdayCard    = "birthday-card"
	CustomizationAnniversaryCard = "anniversary-card"
	CustomizationGeneralCard     = "general-card"

	CustomizationDraft        = "draft"
	CustomizationConfirmed    = "confirmed"
	CustomizationInProduction = "in-production"
	CustomizationCompleted    = "completed"
	CustomizationCancelled    = "cancelled"
)

var CustomizationTypes = []string{CustomizationMug, CustomizationBirthdayCard, CustomizationAnniversaryCard, CustomizationGeneralCard}

// CustomizationStatuses may follow one another in any order; moderation is a manual call.
var CustomizationStatuses = []string{CustomizationDraft, CustomizationConfirmed, CustomizationInProduction, CustomizationCompleted, CustomizationCancelled}

func ValidCustomizationStatus(s string) bool { return contains(CustomizationStatuses, s) }
func ValidCustomizationType(s string) bool   { return contains(CustomizationTypes, s) }

// SelectedQuote is a copy of the catalogue quote the customer picked.
type SelectedQuote struct {
	Ref      string `json:"id"`
	Text     string `json:"text"`
	Category string `json:"category"`
}

// Customization is a customer's personalised design of a product (a printed mug or a card).
// The storefront creates them; staff only read and moderate.
type Customization struct {
	ID                  uuid.UUID     `json:"id" gorm:"type:uuid;primaryKey"`
	ProductID           uuid.UUID     `json:"product_id" gorm:"type:uuid;not null;index"`
	UserID              uuid.UUID     `json:"user_id" gorm:"type:uuid;not null;index"`
	OrderID             *uuid.UUID    `json:"order_id,omitempty" gorm:"type:uuid;index"`
	CustomizationType   string        `json:"customization_type" gorm:"not null;index"`
	SelectedQuote       SelectedQuote `json:"selected_quote" gorm:"embedded;embeddedPrefix:quote_"`
	CustomMessage       string        `json:"custom_message" gorm:"size:500"`
	FontStyle           string        `json:"font_style" gorm:"not null;default:'Arial'"`
	FontSize            int           `json:"font_size" gorm:"not null;default:14"`
	FontColor           string        `json:"font_color" gorm:"not null;default:'#000000'"`
	BackgroundColor     string        `json:"background_color" gorm:"not null;default:'#FFFFFF'"`
	PreviewImage        string        `json:"preview_image" gorm:"type:text"`
	Price               float64       `json:"price" gorm:"type:numeric(10,2);not null"`
	Status              string        `json:"status" gorm:"not null;default:'draft';index"`
	SpecialInstructions string        `json:"special_instructions" gorm:"size:1000"`
	CreatedAt           time.Time     `json:"created_at" gorm:"autoCreateTime;index"`
	UpdatedAt           time.Time     `json:"updated_at" gorm:"autoUpdateTime"`

	// Filled from products and users for the admin views.
	ProductName   string `json:"product_name,omitempty" gorm:"-"`
	CustomerName  string `json:"customer_name,omitempty" gorm:"-"`
	CustomerEmail string `json:"customer_email,omitempty" gorm:"-"`
}

func (c *Customization) BeforeCreate(tx *gorm.DB) error {
	if c.ID == uuid.Nil {
		c.ID = uuid.Must(uuid.NewV7())
	}
	if c.Status == "" {
		c.Status = CustomizationDraft
	}
	return nil
}

func (Customization) TableName() string {
	return "customizations"
}

// FinalText is the quote followed by the customer's own message, separated by a blank line.
func (c *Customization) FinalText() string {
	switch {
	case c.SelectedQuote.Text == "":
		return c.CustomMessage
	case c.CustomMessage == "":
		return c.SelectedQuote.Text
	}
	return c.SelectedQuote.Text + "\n\n" + c.CustomMessage
}

type CustomizationStatusRequest struct {
	Status string `json:"status" binding:"required" example:"confirmed"`
	Notes  string `json:"notes"`
}

// CustomizationFilter narrows the admin listing.
type CustomizationFilter struct {
	Status string
	Type   string
	Search string
}
