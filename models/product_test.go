package models

import (
	"reflect"
	"strings"
	"testing"
)

func TestStockStatusFromQuantity(t *testing.T) {
	cases := []struct {
		qty  int
		want string
	}{
		{-3, StockOutOfStock},
		{0, StockOutOfStock},
		{1, StockLow},
		{10, StockLow},
		{11, StockInStock},
		{500, StockInStock},
	}
	for _, tc := range cases {
		if got := StockStatusFromQuantity(tc.qty); got != tc.want {
			t.Errorf("StockStatusFromQuantity(%d) = %q, want %q", tc.qty, got, tc.want)
		}
	}
}

func TestNeedsReorder(t *testing.T) {
	if NeedsReorder(0) {
		t.Error("an exhausted product is out of stock, not a reorder alert")
	}
	if !NeedsReorder(5) || !NeedsReorder(10) {
		t.Error("1..10 should raise a reorder alert")
	}
	if NeedsReorder(11) {
		t.Error("11 is healthy stock")
	}
}

func TestProductNormalize(t *testing.T) {
	p := &Product{
		Name:             "  " + strings.Repeat("x", 70) + " ",
		SKU:              " bw-mug-01 ",
		MainCategory:     " Gifts ",
		ShortDescription: "A mug",
		Stock:            4,
		Filters:          FilterSelections{"color": {"Red"}, "empty": {}},
	}
	p.Normalize()

	if p.SKU != "BW-MUG-01" {
		t.Errorf("SKU = %q", p.SKU)
	}
	if p.MainCategory != "gifts" {
		t.Errorf("MainCategory = %q", p.MainCategory)
	}
	if p.StockStatus != StockLow {
		t.Errorf("StockStatus = %q", p.StockStatus)
	}
	if len([]rune(p.SEOTitle)) != 60 {
		t.Errorf("SEOTitle should be the name cut to 60 runes, got %d", len([]rune(p.SEOTitle)))
	}
	if p.SEODescription != "A mug" {
		t.Errorf("SEODescription = %q", p.SEODescription)
	}
	if p.TaxClass != TaxClassStandard || p.ShippingClass != DefaultShippingClass || p.Status != ProductStatusDraft {
		t.Errorf("defaults not applied: %q %q %q", p.TaxClass, p.ShippingClass, p.Status)
	}
	if p.Rating != 3 {
		t.Errorf("Rating = %v", p.Rating)
	}
	if _, ok := p.Filters["empty"]; ok {
		t.Error("attributes with nothing selected should be dropped")
	}
}

func TestSellingPrice(t *testing.T) {
	p := Product{RetailPrice: 100}
	if p.SellingPrice() != 100 {
		t.Fatalf("without sale price want retail")
	}
	p.SalePrice = 80
	if p.SellingPrice() != 80 {
		t.Fatalf("with sale price want sale")
	}
}

func TestFilterToggleIsItsOwnInverse(t *testing.T) {
	start := FilterSelections{"occasion": {"Birthday"}}

	once := start.Toggle("occasion", "Christmas")
	if !once.Has("occasion", "Christmas") || !once.Has("occasion", "Birthday") {
		t.Fatalf("toggle on: %v", once)
	}
	twice := once.Toggle("occasion", "Christmas")
	if !reflect.DeepEqual(twice, start) {
		t.Fatalf("toggle twice = %v, want %v", twice, start)
	}
	if !start.Has("occasion", "Birthday") || start.Has("occasion", "Christmas") {
		t.Fatalf("Toggle must not mutate its receiver: %v", start)
	}

	off := start.Toggle("occasion", "Birthday")
	if _, ok := off["occasion"]; ok {
		t.Fatalf("deselecting the last value should drop the attribute: %v", off)
	}
}

func TestFilterRenameAndRemove(t *testing.T) {
	f := FilterSelections{"color": {"Red", "Blue"}}

	if f.Rename("size", "Red", "Crimson") {
		t.Error("rename under an unselected attribute reported a change")
	}
	if !f.Rename("color", "Red", "Blue") {
		t.Fatal("rename should report a change")
	}
	if !reflect.DeepEqual(f["color"], []string{"Blue"}) {
		t.Fatalf("rename onto an existing value should dedupe, got %v", f["color"])
	}

	if f.Remove("color", "Green") {
		t.Error("removing an unselected value reported a change")
	}
	if !f.Remove("color", "Blue") {
		t.Fatal("remove should report a change")
	}
	if f.Count() != 0 {
		t.Fatalf("want no selections, got %v", f)
	}
}
