package models

import "testing"

func TestCustomizationFinalText(t *testing.T) {
	tests := []struct {
		quote, message, want string
	}{
		{"", "", ""},
		{"Happy birthday!", "", "Happy birthday!"},
		{"", "Love, Amma", "Love, Amma"},
		{"Happy birthday!", "Love, Amma", "Happy birthday!\n\nLove, Amma"},
	}
	for _, tt := range tests {
		c := Customization{SelectedQuote: SelectedQuote{Text: tt.quote}, CustomMessage: tt.message}
		if got := c.FinalText(); got != tt.want {
			t.Errorf("FinalText(%q, %q) = %q, want %q", tt.quote, tt.message, got, tt.want)
		}
	}
}

func TestCustomizationStatuses(t *testing.T) {
	for _, s := range CustomizationStatuses {
		if !ValidCustomizationStatus(s) {
			t.Errorf("%s rejected", s)
		}
	}
	if ValidCustomizationStatus("shipped") || ValidCustomizationType("poster") {
		t.Error("unknown values accepted")
	}
}

func TestHeroSectionFormApply(t *testing.T) {
	h := HeroSection{Title: "Old", Description: "keep", IsActive: true, SortOrder: 3}
	title, off := "New", false
	HeroSectionForm{Title: &title, IsActive: &off}.Apply(&h)

	if h.Title != "New" || h.IsActive || h.Description != "keep" || h.SortOrder != 3 {
		t.Errorf("after apply: %+v", h)
	}
}
