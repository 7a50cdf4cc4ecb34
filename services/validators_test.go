package services_test

import (
	"errors"
	"strings"
	"testing"

	"github.com/Sarujan100/best-wishes-final-sub001/services"
	"github.com/gin-gonic/gin/binding"
)

func TestValidSKU(t *testing.T) {
	for _, ok := range []string{"BW-001", "ab", "hamper_2026"} {
		if !services.ValidSKU(ok) {
			t.Errorf("%q rejected", ok)
		}
	}
	for _, bad := range []string{"", "x", "-lead", "has space", strings.Repeat("a", 65)} {
		if services.ValidSKU(bad) {
			t.Errorf("%q accepted", bad)
		}
	}
}

func TestValidCategoryKey(t *testing.T) {
	if !services.ValidCategoryKey(" Birthday-Gifts ") {
		t.Error("key is normalised before checking")
	}
	if services.ValidCategoryKey("gifts & more") {
		t.Error("symbols accepted")
	}
}

type signup struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,strongpassword"`
	SKU      string `json:"sku" binding:"omitempty,sku"`
}

func TestRegisteredTagsAndMessages(t *testing.T) {
	services.RegisterValidators()

	err := binding.Validator.ValidateStruct(&signup{Email: "nope", Password: "weak", SKU: "a b"})
	if err == nil {
		t.Fatal("invalid struct passed")
	}
	msgs := services.ValidationMessages(err)
	joined := strings.Join(msgs, " | ")
	for _, want := range []string{"valid email", "at least 8 characters", "SKU may only contain"} {
		if !strings.Contains(joined, want) {
			t.Errorf("messages %q missing %q", joined, want)
		}
	}

	if err := binding.Validator.ValidateStruct(&signup{Email: "a@b.lk", Password: "Secret#2026"}); err != nil {
		t.Errorf("valid struct rejected: %v", err)
	}

	if got := services.ValidationMessages(errors.New("bad json")); len(got) != 1 || got[0] != "bad json" {
		t.Errorf("plain errors pass through, got %v", got)
	}
}
