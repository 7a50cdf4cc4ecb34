package routes_test

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"sort"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/Sarujan100/best-wishes-final-sub001/models"
	"github.com/Sarujan100/best-wishes-final-sub001/services"
	"github.com/Sarujan100/best-wishes-final-sub001/testutil"
	"github.com/gin-gonic/gin"
)

type memoryStore struct {
	mu      sync.Mutex
	n       int
	deleted []string
}

func (m *memoryStore) Upload(ctx context.Context, file io.Reader, folder, resourceType string) (*services.UploadedMedia, error) {
	b, err := io.ReadAll(file)
	if err != nil {
		return nil, err
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.n++
	id := fmt.Sprintf("%s/%d", folder, m.n)
	return &services.UploadedMedia{URL: "https://cdn.example/" + id, PublicID: id, ResourceType: resourceType, Size: len(b)}, nil
}

func (m *memoryStore) Delete(ctx context.Context, publicID, resourceType string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.deleted = append(m.deleted, publicID)
	return nil
}

func (m *memoryStore) deletedIDs() []string {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]string(nil), m.deleted...)
}

func png(name string) testutil.File {
	return testutil.File{Field: "image", Name: name, ContentType: "image/png", Content: []byte("png-bytes")}
}

func TestHeroSections(t *testing.T) {
	f := newFixture(t)
	store := &memoryStore{}
	services.SetMediaStore(store)
	t.Cleanup(func() { services.SetMediaStore(nil) })

	rec := testutil.DoMultipart(t, f.router, http.MethodPost, "/api/hero-sections", f.token, map[string]string{"title": "Avurudu sale"})
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("create without image: got %d", rec.Code)
	}

	rec = testutil.DoMultipart(t, f.router, http.MethodPost, "/api/hero-sections", f.token, map[string]string{
		"title":      "Avurudu sale",
		"is_active":  "false",
		"sort_order": "2",
	}, png("slide.png"))
	if rec.Code != http.StatusCreated {
		t.Fatalf("create: got %d: %s", rec.Code, rec.Body.String())
	}
	var hero models.HeroSection
	testutil.Decode(t, rec, &hero)
	if hero.IsActive || hero.SortOrder != 2 || hero.ImagePublicID != "hero-sections/1" {
		t.Fatalf("created %+v", hero)
	}

	var active []models.HeroSection
	rec = testutil.Do(t, f.router, http.MethodGet, "/api/hero-sections/active", "", nil)
	testutil.Decode(t, rec, &active)
	if rec.Code != http.StatusOK || len(active) != 0 {
		t.Fatalf("public list before toggle: %d, %d sections", rec.Code, len(active))
	}

	path := "/api/hero-sections/" + hero.ID.String()
	if code, _ := f.do(t, http.MethodPatch, path+"/toggle-status", nil); code != http.StatusOK {
		t.Fatalf("toggle: got %d", code)
	}
	rec = testutil.Do(t, f.router, http.MethodGet, "/api/hero-sections/active", "", nil)
	testutil.Decode(t, rec, &active)
	if len(active) != 1 || active[0].ID != hero.ID {
		t.Fatalf("public list after toggle: %+v", active)
	}

	rec = testutil.DoMultipart(t, f.router, http.MethodPut, path, f.token, map[string]string{"title": "New year sale"}, png("new.png"))
	if rec.Code != http.StatusOK {
		t.Fatalf("update: got %d: %s", rec.Code, rec.Body.String())
	}
	var updated models.HeroSection
	testutil.Decode(t, rec, &updated)
	if updated.Title != "New year sale" || updated.ImagePublicID != "hero-sections/2" || !updated.IsActive {
		t.Errorf("updated %+v", updated)
	}

	if code, _ := f.do(t, http.MethodDelete, path, nil); code != http.StatusOK {
		t.Fatalf("delete: got %d", code)
	}
	if !services.WaitBackground(5 * time.Second) {
		t.Fatal("media cleanup did not finish")
	}
	deleted := store.deletedIDs()
	sort.Strings(deleted)
	if got := strings.Join(deleted, ","); got != "hero-sections/1,hero-sections/2" {
		t.Errorf("deleted media = %s", got)
	}

	var entry models.ActivityLog
	if err := f.db.Where("action = ?", models.ActionCreate+"_"+models.ResourceTypeHeroSection).First(&entry).Error; err != nil {
		t.Fatalf("no create entry: %v", err)
	}
	if entry.ResourceID != hero.ID.String() || entry.ResourceName != "Avurudu sale" {
		t.Errorf("activity entry id=%q name=%q", entry.ResourceID, entry.ResourceName)
	}
}

func TestHeroSectionsAreAdminOnly(t *testing.T) {
	f := newFixture(t)
	inventory := testutil.CreateUser(t, f.db, models.RoleInventoryManager, "stock@bestwishes.lk")

	rec := testutil.Do(t, f.router, http.MethodGet, "/api/hero-sections", testutil.Login(t, inventory), nil)
	if rec.Code != http.StatusForbidden {
		t.Errorf("inventory manager: got %d", rec.Code)
	}
	if rec := testutil.Do(t, f.router, http.MethodGet, "/api/hero-sections", "", nil); rec.Code != http.StatusUnauthorized {
		t.Errorf("anonymous: got %d", rec.Code)
	}
}

func TestCustomizationModeration(t *testing.T) {
	f := newFixture(t)
	f.createGiftsCategory(t)
	productID := f.createProduct(t, "BW-MUG", 10, map[string][]string{"occasion": {"Birthday"}})
	customer := testutil.CreateUser(t, f.db, models.RoleUser, "shopper@example.com")

	custom := models.Customization{
		ProductID:         productID,
		UserID:            customer.ID,
		CustomizationType: models.CustomizationMug,
		SelectedQuote:     models.SelectedQuote{Ref: "q1", Text: "Happy birthday!", Category: "birthday"},
		CustomMessage:     "Love, Amma",
		Price:             1500,
	}
	if err := f.db.Create(&custom).Error; err != nil {
		t.Fatalf("seed customization: %v", err)
	}

	code, env := f.do(t, http.MethodGet, "/api/customizations?status=draft&search=shopper", nil)
	if code != http.StatusOK {
		t.Fatalf("list: got %d", code)
	}
	var list []models.Customization
	json.Unmarshal(env.Data, &list)
	if len(list) != 1 || list[0].ProductName != "Hamper BW-MUG" || list[0].CustomerEmail != "shopper@example.com" {
		t.Fatalf("list = %+v", list)
	}
	if code, _ := f.do(t, http.MethodGet, "/api/customizations?status=shipped", nil); code != http.StatusBadRequest {
		t.Errorf("unknown status filter: got %d", code)
	}

	path := "/api/customizations/" + custom.ID.String()
	code, env = f.do(t, http.MethodGet, path, nil)
	var detail struct {
		FinalText string `json:"final_text"`
	}
	json.Unmarshal(env.Data, &detail)
	if code != http.StatusOK || detail.FinalText != "Happy birthday!\n\nLove, Amma" {
		t.Errorf("get: %d %q", code, detail.FinalText)
	}

	if code, _ := f.do(t, http.MethodPatch, path+"/status", gin.H{"status": "printed"}); code != http.StatusBadRequest {
		t.Errorf("invalid status: got %d", code)
	}
	code, env = f.do(t, http.MethodPatch, path+"/status", gin.H{"status": models.CustomizationConfirmed})
	if code != http.StatusOK {
		t.Fatalf("confirm: got %d (%s)", code, env.Message)
	}
	if code, _ := f.do(t, http.MethodPatch, "/api/customizations/0190f3a2-7c4e-7b1a-9d2e-5f6a7b8c9d0e/status", gin.H{"status": "confirmed"}); code != http.StatusNotFound {
		t.Errorf("unknown id: got %d", code)
	}

	var stored models.Customization
	f.db.First(&stored, "id = ?", custom.ID)
	if stored.Status != models.CustomizationConfirmed {
		t.Errorf("status = %s", stored.Status)
	}

	if !services.WaitBackground(5 * time.Second) {
		t.Fatal("notification did not finish")
	}
	var notes int64
	f.db.Model(&models.Notification{}).Where("user_id = ? AND related_id = ?", customer.ID, custom.ID.String()).Count(&notes)
	if notes != 1 {
		t.Errorf("customer notifications = %d, want 1", notes)
	}
}

func TestSendReportEmail(t *testing.T) {
	f := newFixture(t)
	f.createGiftsCategory(t)
	productID := f.createProduct(t, "BW-30", 10, map[string][]string{"occasion": {"Birthday"}})
	code, env := f.do(t, http.MethodPost, "/api/orders", gin.H{
		"customer_name": "Nimali Perera",
		"items":         []gin.H{{"product_id": productID, "quantity": 2}},
	})
	if code != http.StatusCreated {
		t.Fatalf("create order: got %d (%s %v)", code, env.Message, env.Errors)
	}

	body := gin.H{"email": "owner@bestwishes.lk"}
	if code, _ := f.do(t, http.MethodPost, "/api/dashboard/reports/email", body); code != http.StatusServiceUnavailable {
		t.Fatalf("without mailer: got %d", code)
	}

	var (
		mu   sync.Mutex
		sent []map[string]interface{}
	)
	resend := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var payload map[string]interface{}
		json.NewDecoder(r.Body).Decode(&payload)
		mu.Lock()
		sent = append(sent, payload)
		mu.Unlock()
		w.WriteHeader(http.StatusOK)
		w.Write([]byte(`{"id":"email_1"}`))
	}))
	defer resend.Close()
	services.SetMailer(services.NewResendClient("re_test", "reports@bestwishes.lk").WithEndpoint(resend.URL))
	t.Cleanup(func() { services.SetMailer(nil) })

	if code, _ := f.do(t, http.MethodPost, "/api/dashboard/reports/email", gin.H{"email": "not-an-email"}); code != http.StatusBadRequest {
		t.Errorf("bad address: got %d", code)
	}

	code, env = f.do(t, http.MethodPost, "/api/dashboard/reports/email", body)
	if code != http.StatusOK {
		t.Fatalf("send: got %d (%s)", code, env.Message)
	}
	var report services.AnalyticsReport
	json.Unmarshal(env.Data, &report)
	if report.Orders != 1 || report.ItemsSold != 2 || len(report.TopProducts) != 1 {
		t.Errorf("report = %+v", report)
	}

	if !services.WaitBackground(5 * time.Second) {
		t.Fatal("background work did not finish")
	}
	mu.Lock()
	defer mu.Unlock()
	var mail map[string]interface{}
	for _, p := range sent {
		if p["to"] == "owner@bestwishes.lk" {
			mail = p
		}
	}
	if mail == nil {
		t.Fatalf("no report mail among %d sent", len(sent))
	}
	if !strings.HasPrefix(mail["subject"].(string), "Best Wishes sales report") {
		t.Errorf("subject = %v", mail["subject"])
	}
	attachments, _ := mail["attachments"].([]interface{})
	if len(attachments) != 1 {
		t.Errorf("attachments = %d, want the PDF", len(attachments))
	}

	var entry models.ActivityLog
	if err := f.db.Where("action = ?", models.ActionEmail+"_"+models.ResourceTypeReport).First(&entry).Error; err != nil {
		t.Errorf("report email not in the activity log: %v", err)
	}
}
