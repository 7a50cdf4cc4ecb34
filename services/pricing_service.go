package services

import (
	"github.com/Sarujan100/best-wishes-final-sub001/models"
	"github.com/shopspring/decimal"
)

// LowMarginThreshold is the profit margin (percent) below which a warning is raised.
const LowMarginThreshold = 10

// VolumetricDivisor converts cm³ into volumetric kilograms.
const VolumetricDivisor = 5000

var taxRates = map[string]decimal.Decimal{
	models.TaxClassStandard: decimal.NewFromFloat(0.10),
	models.TaxClassReduced:  decimal.NewFromFloat(0.05),
	models.TaxClassZero:     decimal.Zero,
	models.TaxClassExempt:   decimal.Zero,
}

// TaxRate returns the rate for a tax class; unknown classes are taxed at the standard rate.
func TaxRate(taxClass string) decimal.Decimal {
	if r, ok := taxRates[taxClass]; ok {
		return r
	}
	return taxRates[models.TaxClassStandard]
}

type PricingSummary struct {
	SellingPrice    float64 `json:"selling_price"`
	OnSale          bool    `json:"on_sale"`
	DiscountPercent float64 `json:"discount_percent"`
	Profit          float64 `json:"profit"`
	ProfitMargin    float64 `json:"profit_margin"`
	TaxRate         float64 `json:"tax_rate"`
	TaxAmount       float64 `json:"tax_amount"`
	FinalPrice      float64 `json:"final_price"`
	LowMargin       bool    `json:"low_margin"`
}

// SellingPrice is the sale price when positive, else the retail price.
func SellingPrice(retail, sale float64) decimal.Decimal {
	if sale > 0 {
		return decimal.NewFromFloat(sale)
	}
	return decimal.NewFromFloat(retail)
}

// ProfitMargin is (selling-cost)/cost*100 rounded to 2 places, or 0 when cost is not positive.
func ProfitMargin(cost, selling float64) float64 {
	c := decimal.NewFromFloat(cost)
	if !c.IsPositive() {
		return 0
	}
	m := decimal.NewFromFloat(selling).Sub(c).Div(c).Mul(decimal.NewFromInt(100))
	return m.Round(2).InexactFloat64()
}

// CalculatePricing derives every pricing figure shown next to the product form.
func CalculatePricing(cost, retail, sale float64, taxClass string) PricingSummary {
	selling := SellingPrice(retail, sale)
	rate := TaxRate(taxClass)
	tax := selling.Mul(rate).Round(2)

	s := PricingSummary{
		SellingPrice: selling.Round(2).InexactFloat64(),
		OnSale:       sale > 0 && sale < retail,
		TaxRate:      rate.InexactFloat64(),
		TaxAmount:    tax.InexactFloat64(),
		FinalPrice:   selling.Add(tax).Round(2).InexactFloat64(),
		ProfitMargin: ProfitMargin(cost, selling.InexactFloat64()),
	}
	if cost > 0 {
		s.Profit = selling.Sub(decimal.NewFromFloat(cost)).Round(2).InexactFloat64()
		s.LowMargin = s.ProfitMargin < LowMarginThreshold
	}
	if s.OnSale && retail > 0 {
		r := decimal.NewFromFloat(retail)
		s.DiscountPercent = r.Sub(selling).Div(r).Mul(decimal.NewFromInt(100)).Round(2).InexactFloat64()
	}
	return s
}

// VolumetricWeight is L×W×H/5000 (cm → kg), rounded to 2 places.
func VolumetricWeight(d models.Dimensions) float64 {
	v := decimal.NewFromFloat(d.Length).
		Mul(decimal.NewFromFloat(d.Width)).
		Mul(decimal.NewFromFloat(d.Height)).
		Div(decimal.NewFromInt(VolumetricDivisor))
	return v.Round(2).InexactFloat64()
}

// ════════════════════════════════════════════════════════════
// Order totals
// ════════════════════════════════════════════════════════════

type OrderLine struct {
	Price    float64
	Quantity int
}

type OrderTotals struct {
	Subtotal     float64 `json:"subtotal"`
	ShippingCost float64 `json:"shipping_cost"`
	Tax          float64 `json:"tax"`
	Discount     float64 `json:"discount"`
	Total        float64 `json:"total"`
}

// CalculateOrderTotals sums the lines, taxes the subtotal and never returns a negative total.
func CalculateOrderTotals(lines []OrderLine, shipping, discount float64, taxClass string) OrderTotals {
	subtotal := decimal.Zero
	for _, l := range lines {
		subtotal = subtotal.Add(decimal.NewFromFloat(l.Price).Mul(decimal.NewFromInt(int64(l.Quantity))))
	}
	tax := subtotal.Mul(TaxRate(taxClass)).Round(2)
	ship := decimal.NewFromFloat(shipping)
	disc := decimal.NewFromFloat(discount)

	total := subtotal.Add(tax).Add(ship).Sub(disc)
	if total.IsNegative() {
		total = decimal.Zero
	}
	return OrderTotals{
		Subtotal:     subtotal.Round(2).InexactFloat64(),
		ShippingCost: ship.Round(2).InexactFloat64(),
		Tax:          tax.InexactFloat64(),
		Discount:     disc.Round(2).InexactFloat64(),
		Total:        total.Round(2).InexactFloat64(),
	}
}
