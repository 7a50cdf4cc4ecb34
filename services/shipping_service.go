package services

import (
	"context"
	"math"

	"github.com/Sarujan100/best-wishes-final-sub001/config"
	"github.com/Sarujan100/best-wishes-final-sub001/models"
)

type ShippingSummary struct {
	ShippingClass    string  `json:"shipping_class"`
	ShippingFee      float64 `json:"shipping_fee"`
	VolumetricWeight float64 `json:"volumetric_weight"`
	ChargeableWeight float64 `json:"chargeable_weight"`
	StockStatus      string  `json:"stock_status"`
	ReorderAlert     bool    `json:"reorder_alert"`
}

// ShippingFees maps shipping class keys to their flat fee.
type ShippingFees map[string]float64

// Fee falls back to the standard class for unknown keys.
func (f ShippingFees) Fee(class string) float64 {
	if fee, ok := f[class]; ok {
		return fee
	}
	return f[models.DefaultShippingClass]
}

// DefaultShippingFees are used when the table cannot be read.
func DefaultShippingFees() ShippingFees {
	fees := ShippingFees{}
	for _, sc := range models.DefaultShippingClasses() {
		fees[sc.Key] = sc.Fee
	}
	return fees
}

// LoadShippingFees reads every shipping class once.
func LoadShippingFees(ctx context.Context) ShippingFees {
	var classes []models.ShippingClass
	if err := config.CmsGorm.WithContext(ctx).Find(&classes).Error; err != nil || len(classes) == 0 {
		return DefaultShippingFees()
	}
	fees := ShippingFees{}
	for _, sc := range classes {
		fees[sc.Key] = sc.Fee
	}
	return fees
}

// BuildShippingSummary derives the inventory panel figures of a product.
func BuildShippingSummary(weight float64, dims models.Dimensions, class string, stock int, fees ShippingFees) ShippingSummary {
	if class == "" {
		class = models.DefaultShippingClass
	}
	vol := VolumetricWeight(dims)
	return ShippingSummary{
		ShippingClass:    class,
		ShippingFee:      fees.Fee(class),
		VolumetricWeight: vol,
		ChargeableWeight: math.Max(weight, vol),
		StockStatus:      models.StockStatusFromQuantity(stock),
		ReorderAlert:     models.NeedsReorder(stock),
	}
}
