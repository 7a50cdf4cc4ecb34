package services_test

import (
	"testing"

	"github.com/Sarujan100/best-wishes-final-sub001/models"
	"github.com/Sarujan100/best-wishes-final-sub001/services"
)

func TestCalculatePricingOnSale(t *testing.T) {
	p := services.CalculatePricing(50, 100, 80, models.TaxClassStandard)

	if p.SellingPrice != 80 || !p.OnSale {
		t.Fatalf("selling = %v on_sale = %v", p.SellingPrice, p.OnSale)
	}
	if p.DiscountPercent != 20 {
		t.Errorf("discount = %v", p.DiscountPercent)
	}
	if p.TaxAmount != 8 || p.FinalPrice != 88 {
		t.Errorf("tax = %v final = %v", p.TaxAmount, p.FinalPrice)
	}
	if p.Profit != 30 || p.ProfitMargin != 60 {
		t.Errorf("profit = %v margin = %v", p.Profit, p.ProfitMargin)
	}
	if p.LowMargin {
		t.Error("60% margin is not low")
	}
}

func TestCalculatePricingLowMargin(t *testing.T) {
	p := services.CalculatePricing(95, 100, 0, models.TaxClassZero)

	if p.OnSale || p.DiscountPercent != 0 {
		t.Errorf("no sale price given: %+v", p)
	}
	if p.ProfitMargin != 5.26 {
		t.Errorf("margin = %v", p.ProfitMargin)
	}
	if !p.LowMargin {
		t.Error("margin under 10 should warn")
	}
	if p.TaxAmount != 0 || p.FinalPrice != 100 {
		t.Errorf("zero-rated: tax = %v final = %v", p.TaxAmount, p.FinalPrice)
	}
}

func TestCalculatePricingWithoutCost(t *testing.T) {
	p := services.CalculatePricing(0, 40, 0, models.TaxClassReduced)
	if p.ProfitMargin != 0 || p.Profit != 0 || p.LowMargin {
		t.Errorf("unknown cost must not produce margin figures: %+v", p)
	}
	if p.TaxAmount != 2 {
		t.Errorf("reduced tax = %v", p.TaxAmount)
	}
}

func TestTaxRateFallsBackToStandard(t *testing.T) {
	if !services.TaxRate("luxury").Equal(services.TaxRate(models.TaxClassStandard)) {
		t.Error("unknown tax class should use the standard rate")
	}
}

func TestVolumetricWeight(t *testing.T) {
	if got := services.VolumetricWeight(models.Dimensions{Length: 50, Width: 40, Height: 30}); got != 12 {
		t.Errorf("got %v", got)
	}
	if got := services.VolumetricWeight(models.Dimensions{Length: 10, Width: 10, Height: 10}); got != 0.2 {
		t.Errorf("got %v", got)
	}
}

func TestBuildShippingSummary(t *testing.T) {
	fees := services.DefaultShippingFees()

	s := services.BuildShippingSummary(2, models.Dimensions{Length: 50, Width: 40, Height: 30}, "express", 3, fees)
	if s.ShippingFee != 12.99 {
		t.Errorf("fee = %v", s.ShippingFee)
	}
	if s.ChargeableWeight != 12 {
		t.Errorf("chargeable weight should be the larger of actual and volumetric, got %v", s.ChargeableWeight)
	}
	if !s.ReorderAlert || s.StockStatus != models.StockLow {
		t.Errorf("stock 3: %+v", s)
	}

	s = services.BuildShippingSummary(1, models.Dimensions{}, "", 0, fees)
	if s.ShippingClass != models.DefaultShippingClass || s.ShippingFee != 5.99 {
		t.Errorf("empty class should be standard: %+v", s)
	}
	if s.ReorderAlert {
		t.Error("out of stock is not a reorder alert")
	}
}

func TestCalculateOrderTotals(t *testing.T) {
	lines := []services.OrderLine{{Price: 19.99, Quantity: 3}, {Price: 5.01, Quantity: 1}}
	got := services.CalculateOrderTotals(lines, 5.99, 10, models.TaxClassStandard)

	if got.Subtotal != 64.98 {
		t.Errorf("subtotal = %v", got.Subtotal)
	}
	if got.Tax != 6.5 {
		t.Errorf("tax = %v", got.Tax)
	}
	if got.Total != 67.47 {
		t.Errorf("total = %v", got.Total)
	}

	free := services.CalculateOrderTotals(lines, 0, 1000, models.TaxClassStandard)
	if free.Total != 0 {
		t.Errorf("total must not go negative, got %v", free.Total)
	}
}
