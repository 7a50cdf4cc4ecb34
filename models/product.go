package models

import (
	"strings"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

const (
	ProductStatusDraft    = "draft"
	ProductStatusActive   = "active"
	ProductStatusArchived = "archived"

	StockInStock    = "in-stock"
	StockLow        = "low-stock"
	StockOutOfStock = "out-of-stock"

	TaxClassStandard = "standard"
	TaxClassReduced  = "reduced"
	TaxClassZero     = "zero"
	TaxClassExempt   = "exempt"
)

// LowStockThreshold is the highest quantity still reported as low-stock.
var LowStockThreshold = 10

// StockStatusFromQuantity derives the stock label: 0 is out-of-stock,
// 1..LowStockThreshold is low-stock, anything above is in-stock.
func StockStatusFromQuantity(qty int) string {
	switch {
	case qty <= 0:
		return StockOutOfStock
	case qty <= LowStockThreshold:
		return StockLow
	default:
		return StockInStock
	}
}

// NeedsReorder is true for stock that is low but not yet exhausted.
func NeedsReorder(qty int) bool {
	return qty > 0 && qty <= LowStockThreshold
}

func ValidProductStatus(s string) bool {
	return s == ProductStatusDraft || s == ProductStatusActive || s == ProductStatusArchived
}

func ValidTaxClass(s string) bool {
	switch s {
	case TaxClassStandard, TaxClassReduced, TaxClassZero, TaxClassExempt:
		return true
	}
	return false
}

type Dimensions struct {
	Length float64 `json:"length" gorm:"type:numeric(10,2);default:0"`
	Width  float64 `json:"width" gorm:"type:numeric(10,2);default:0"`
	Height float64 `json:"height" gorm:"type:numeric(10,2);default:0"`
}

// ═══════════════════════════════════════════════════════════
// Main Product Model (GORM)
// ═══════════════════════════════════════════════════════════

type Product struct {
	ID                  uuid.UUID        `json:"id" gorm:"type:uuid;primaryKey"`
	Name                string           `json:"name" gorm:"not null;index"`
	SKU                 string           `json:"sku" gorm:"not null;uniqueIndex"`
	ShortDescription    string           `json:"short_description" gorm:"not null"`
	DetailedDescription string           `json:"detailed_description" gorm:"type:text"`
	MainCategory        string           `json:"main_category" gorm:"not null;index"`
	Filters             FilterSelections `json:"filters" gorm:"type:jsonb;not null;default:'{}'"`
	Tags                StringList       `json:"tags" gorm:"type:jsonb;not null;default:'[]'"`
	Images              MediaList        `json:"images" gorm:"type:jsonb;not null;default:'[]'"`
	Videos              MediaList        `json:"videos" gorm:"type:jsonb;not null;default:'[]'"`
	CostPrice           float64          `json:"cost_price" gorm:"type:numeric(12,2);not null;default:0"`
	RetailPrice         float64          `json:"retail_price" gorm:"type:numeric(12,2);not null"`
	SalePrice           float64          `json:"sale_price" gorm:"type:numeric(12,2);not null;default:0"`
	TaxClass            string           `json:"tax_class" gorm:"not null;default:'standard'"`
	Stock               int              `json:"stock" gorm:"not null;default:0;index"`
	StockStatus         string           `json:"stock_status" gorm:"not null;index"`
	Weight              float64          `json:"weight" gorm:"type:numeric(10,3);not null;default:0"`
	Dimensions          Dimensions       `json:"dimensions" gorm:"embedded;embeddedPrefix:dim_"`
	ShippingClass       string           `json:"shipping_class" gorm:"not null;default:'standard';index"`
	Variants            VariantList      `json:"variants" gorm:"type:jsonb;not null;default:'[]'"`
	Status              string           `json:"status" gorm:"not null;default:'draft';index"`
	Featured            bool             `json:"featured" gorm:"not null;default:false"`
	SEOTitle            string           `json:"seo_title"`
	SEODescription      string           `json:"seo_description" gorm:"type:text"`
	Rating              float64          `json:"rating" gorm:"type:numeric(3,2);not null;default:3"`
	CreatedBy           *uuid.UUID       `json:"created_by,omitempty" gorm:"type:uuid"`
	UpdatedBy           *uuid.UUID       `json:"updated_by,omitempty" gorm:"type:uuid"`
	CreatedAt           time.Time        `json:"created_at" gorm:"autoCreateTime;index"`
	UpdatedAt           time.Time        `json:"updated_at" gorm:"autoUpdateTime"`
}

func (Product) TableName() string {
	return "products"
}

// BeforeCreate hook - auto-generate UUID v7
func (p *Product) BeforeCreate(tx *gorm.DB) error {
	if p.ID == uuid.Nil {
		p.ID = uuid.Must(uuid.NewV7())
	}
	return nil
}

// BeforeSave normalises the record and recomputes derived fields.
func (p *Product) BeforeSave(tx *gorm.DB) error {
	p.Normalize()
	return nil
}

// AfterSave keeps the filter index in step with Filters.
func (p *Product) AfterSave(tx *gorm.DB) error {
	return SyncProductFilterValues(tx, p.ID, p.Filters)
}

// Normalize applies the save-time rules without touching the database.
func (p *Product) Normalize() {
	p.Name = strings.TrimSpace(p.Name)
	p.SKU = strings.ToUpper(strings.TrimSpace(p.SKU))
	p.MainCategory = NormalizeCategoryKey(p.MainCategory)
	p.StockStatus = StockStatusFromQuantity(p.Stock)
	if p.Filters == nil {
		p.Filters = FilterSelections{}
	} else {
		p.Filters = p.Filters.Clone()
	}
	if p.TaxClass == "" {
		p.TaxClass = TaxClassStandard
	}
	if p.ShippingClass == "" {
		p.ShippingClass = DefaultShippingClass
	}
	if p.Status == "" {
		p.Status = ProductStatusDraft
	}
	if p.Rating == 0 {
		p.Rating = 3
	}
	if p.SEOTitle == "" {
		p.SEOTitle = truncateRunes(p.Name, 60)
	}
	if p.SEODescription == "" {
		p.SEODescription = p.ShortDescription
	}
}

// SellingPrice is the sale price when one is set, otherwise the retail price.
func (p *Product) SellingPrice() float64 {
	if p.SalePrice > 0 {
		return p.SalePrice
	}
	return p.RetailPrice
}

func truncateRunes(s string, n int) string {
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	return string(r[:n])
}

// ═══════════════════════════════════════════════════════════
// Request DTOs
// ═══════════════════════════════════════════════════════════

type ProductRequest struct {
	Name                string              `json:"name" example:"Birthday Hamper"`
	SKU                 string              `json:"sku" binding:"omitempty,sku" example:"BW-HAMPER-001"`
	ShortDescription    string              `json:"short_description"`
	DetailedDescription string              `json:"detailed_description"`
	MainCategory        string              `json:"main_category" example:"gifts"`
	Filters             map[string][]string `json:"filters"`
	Tags                []string            `json:"tags"`
	Images              []MediaItem         `json:"images" binding:"omitempty,dive"`
	Videos              []MediaItem         `json:"videos" binding:"omitempty,dive"`
	CostPrice           float64             `json:"cost_price"`
	RetailPrice         float64             `json:"retail_price"`
	SalePrice           float64             `json:"sale_price"`
	TaxClass            string              `json:"tax_class" example:"standard"`
	Stock               int                 `json:"stock"`
	Weight              float64             `json:"weight"`
	Dimensions          Dimensions          `json:"dimensions"`
	ShippingClass       string              `json:"shipping_class" example:"standard"`
	Variants            []ProductVariant    `json:"variants" binding:"omitempty,dive"`
	Status              string              `json:"status" example:"draft"`
	Featured            bool                `json:"featured"`
	SEOTitle            string              `json:"seo_title"`
	SEODescription      string              `json:"seo_description"`
}

// Apply copies the form onto p. Derived fields are recomputed by Normalize.
func (r *ProductRequest) Apply(p *Product) {
	p.Name = r.Name
	p.SKU = r.SKU
	p.ShortDescription = strings.TrimSpace(r.ShortDescription)
	p.DetailedDescription = r.DetailedDescription
	p.MainCategory = r.MainCategory
	p.Filters = FilterSelections(r.Filters)
	p.Tags = StringList(cleanTags(r.Tags))
	p.Images = MediaList(r.Images)
	p.Videos = MediaList(r.Videos)
	p.CostPrice = r.CostPrice
	p.RetailPrice = r.RetailPrice
	p.SalePrice = r.SalePrice
	p.TaxClass = r.TaxClass
	p.Stock = r.Stock
	p.Weight = r.Weight
	p.Dimensions = r.Dimensions
	p.ShippingClass = r.ShippingClass
	p.Variants = VariantList(r.Variants)
	p.Status = r.Status
	p.Featured = r.Featured
	p.SEOTitle = r.SEOTitle
	p.SEODescription = r.SEODescription
}

func cleanTags(tags []string) []string {
	out := make([]string, 0, len(tags))
	seen := map[string]bool{}
	for _, t := range tags {
		t = strings.TrimSpace(t)
		if t == "" || seen[strings.ToLower(t)] {
			continue
		}
		seen[strings.ToLower(t)] = true
		out = append(out, t)
	}
	return out
}

type ToggleFilterRequest struct {
	Attribute string `json:"attribute" binding:"required"`
	Item      string `json:"item" binding:"required"`
}

type PricingPreviewRequest struct {
	CostPrice     float64    `json:"cost_price" binding:"min=0"`
	RetailPrice   float64    `json:"retail_price" binding:"min=0"`
	SalePrice     float64    `json:"sale_price" binding:"min=0"`
	TaxClass      string     `json:"tax_class"`
	Stock         int        `json:"stock" binding:"min=0"`
	Weight        float64    `json:"weight" binding:"min=0"`
	Dimensions    Dimensions `json:"dimensions"`
	ShippingClass string     `json:"shipping_class"`
}
