package routes_test

import (
	"net/http"
	"testing"

	"github.com/Sarujan100/best-wishes-final-sub001/models"
	"github.com/Sarujan100/best-wishes-final-sub001/testutil"
	"github.com/gin-gonic/gin"
)

func TestBlankCategoryKeyIsNotFound(t *testing.T) {
	f := newFixture(t)
	f.createGiftsCategory(t)

	for _, method := range []string{http.MethodGet, http.MethodPut, http.MethodDelete} {
		code, _ := f.do(t, method, "/api/categories/%20", gin.H{"name": "Renamed"})
		if code != http.StatusNotFound {
			t.Errorf("%s blank key: expected 404, got %d", method, code)
		}
	}

	var gifts models.Category
	if err := f.db.Where("key = ?", "gifts").First(&gifts).Error; err != nil {
		t.Fatalf("gifts category is gone: %v", err)
	}
	if gifts.Name != "Gifts" {
		t.Errorf("gifts category was renamed to %q", gifts.Name)
	}
}

func TestReplacingAttributesCleansProductFilters(t *testing.T) {
	f := newFixture(t)
	f.createGiftsCategory(t)
	id := f.createProduct(t, "BW-10", 5, map[string][]string{"occasion": {"Birthday", "Anniversary"}})

	code, env := f.do(t, http.MethodPut, "/api/categories/gifts", gin.H{
		"attributes": []gin.H{
			{"name": "occasion", "display_name": "Occasion", "items": []string{"Birthday"}},
		},
	})
	if code != http.StatusOK {
		t.Fatalf("drop item: got %d (%s %v)", code, env.Message, env.Errors)
	}
	var p models.Product
	f.db.First(&p, "id = ?", id)
	if got := p.Filters["occasion"]; len(got) != 1 || got[0] != "Birthday" {
		t.Fatalf("after dropping Anniversary, occasion = %v", got)
	}

	code, env = f.do(t, http.MethodPut, "/api/categories/gifts", gin.H{
		"attributes": []gin.H{
			{"name": "colour", "display_name": "Colour", "items": []string{"Red"}},
		},
	})
	if code != http.StatusOK {
		t.Fatalf("drop attribute: got %d (%s %v)", code, env.Message, env.Errors)
	}
	var after models.Product
	f.db.First(&after, "id = ?", id)
	if _, ok := after.Filters["occasion"]; ok {
		t.Errorf("occasion survived removal of the attribute: %v", after.Filters)
	}

	var indexed int64
	f.db.Model(&models.ProductFilterValue{}).Where("product_id = ? AND attribute = ?", id, "occasion").Count(&indexed)
	if indexed != 0 {
		t.Errorf("filter index still holds %d occasion rows", indexed)
	}
}

func TestRepeatedLoginKeepsBothSessions(t *testing.T) {
	f := newFixture(t)

	var tokens []string
	for i := 0; i < 2; i++ {
		rec := testutil.Do(t, f.router, http.MethodPost, "/api/auth/login", "", gin.H{
			"email":    "admin@bestwishes.lk",
			"password": testutil.Password,
		})
		if rec.Code != http.StatusOK {
			t.Fatalf("login %d: got %d: %s", i+1, rec.Code, rec.Body.String())
		}
		var login models.LoginResponse
		testutil.Decode(t, rec, &login)
		tokens = append(tokens, login.Token)
	}
	if tokens[0] == tokens[1] {
		t.Fatal("two logins issued the same token")
	}
	for i, token := range tokens {
		if rec := testutil.Do(t, f.router, http.MethodGet, "/api/auth/me", token, nil); rec.Code != http.StatusOK {
			t.Errorf("session %d: me got %d", i+1, rec.Code)
		}
	}
}

func TestActivityLogNamesCreatedResources(t *testing.T) {
	f := newFixture(t)
	f.createGiftsCategory(t)
	id := f.createProduct(t, "BW-20", 3, map[string][]string{"occasion": {"Birthday"}})

	tests := []struct {
		resourceType string
		wantID       string
		wantName     string
	}{
		{models.ResourceTypeCategory, "gifts", "Gifts"},
		{models.ResourceTypeProduct, id.String(), "Hamper BW-20"},
	}
	for _, tt := range tests {
		t.Run(tt.resourceType, func(t *testing.T) {
			var entry models.ActivityLog
			err := f.db.Where("action = ? AND resource_type = ?", models.ActionCreate+"_"+tt.resourceType, tt.resourceType).
				First(&entry).Error
			if err != nil {
				t.Fatalf("no create entry: %v", err)
			}
			if entry.ResourceID != tt.wantID {
				t.Errorf("resource id = %q, want %q", entry.ResourceID, tt.wantID)
			}
			if entry.ResourceName != tt.wantName {
				t.Errorf("resource name = %q, want %q", entry.ResourceName, tt.wantName)
			}
		})
	}
}

func TestShippingClassesByKey(t *testing.T) {
	f := newFixture(t)

	code, env := f.do(t, http.MethodPost, "/api/shipping-classes", gin.H{"name": "Next Day", "fee": 15})
	if code != http.StatusCreated {
		t.Fatalf("create: got %d (%s)", code, env.Message)
	}

	if code, _ := f.do(t, http.MethodGet, "/api/shipping-classes/next-day", nil); code != http.StatusOK {
		t.Fatalf("get by key: got %d", code)
	}
	code, env = f.do(t, http.MethodPut, "/api/shipping-classes/next-day", gin.H{"name": "Next Day", "fee": 17.5})
	if code != http.StatusOK {
		t.Fatalf("update: got %d (%s)", code, env.Message)
	}
	var class models.ShippingClass
	f.db.Where("key = ?", "next-day").First(&class)
	if class.Fee != 17.5 {
		t.Errorf("fee = %v, want 17.5", class.Fee)
	}

	if code, _ := f.do(t, http.MethodDelete, "/api/shipping-classes/standard", nil); code != http.StatusBadRequest {
		t.Errorf("deleting standard: got %d", code)
	}
	if code, _ := f.do(t, http.MethodDelete, "/api/shipping-classes/next-day", nil); code != http.StatusOK {
		t.Errorf("delete: got %d", code)
	}
	if code, _ := f.do(t, http.MethodGet, "/api/shipping-classes/next-day", nil); code != http.StatusNotFound {
		t.Errorf("after delete: got %d", code)
	}

	var entry models.ActivityLog
	if err := f.db.Where("action = ?", models.ActionCreate+"_"+models.ResourceTypeShippingClass).First(&entry).Error; err != nil {
		t.Fatalf("no create entry: %v", err)
	}
	if entry.ResourceID != "next-day" {
		t.Errorf("resource id = %q, want next-day", entry.ResourceID)
	}
}
