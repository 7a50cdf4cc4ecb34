package routes_test

import (
	"context"
	"encoding/json"
	"net/http"
	"testing"

	"github.com/Sarujan100/best-wishes-final-sub001/models"
	"github.com/Sarujan100/best-wishes-final-sub001/routes"
	"github.com/Sarujan100/best-wishes-final-sub001/services"
	"github.com/Sarujan100/best-wishes-final-sub001/testutil"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type fixture struct {
	db     *gorm.DB
	router http.Handler
	admin  *models.User
	token  string
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	db := testutil.SetupTestDB(t)
	admin := testutil.CreateUser(t, db, models.RoleAdmin, "admin@bestwishes.lk")
	return &fixture{
		db:     db,
		router: routes.NewRouter(nil),
		admin:  admin,
		token:  testutil.Login(t, admin),
	}
}

func (f *fixture) do(t *testing.T, method, path string, body interface{}) (int, testutil.Envelope) {
	t.Helper()
	rec := testutil.Do(t, f.router, method, path, f.token, body)
	return rec.Code, testutil.Decode(t, rec, nil)
}

func (f *fixture) createGiftsCategory(t *testing.T) {
	t.Helper()
	code, env := f.do(t, http.MethodPost, "/api/categories", gin.H{
		"key":  "gifts",
		"name": "Gifts",
		"attributes": []gin.H{
			{"name": "occasion", "display_name": "Occasion", "items": []string{"Birthday", "Anniversary"}},
		},
	})
	if code != http.StatusCreated {
		t.Fatalf("create category: got %d (%s %v)", code, env.Message, env.Errors)
	}
}

func (f *fixture) createProduct(t *testing.T, sku string, stock int, filters map[string][]string) uuid.UUID {
	t.Helper()
	code, env := f.do(t, http.MethodPost, "/api/products", gin.H{
		"name":              "Hamper " + sku,
		"sku":               sku,
		"short_description": "A hamper",
		"main_category":     "gifts",
		"filters":           filters,
		"cost_price":        10,
		"retail_price":      25,
		"stock":             stock,
	})
	if code != http.StatusCreated {
		t.Fatalf("create product %s: got %d (%s %v)", sku, code, env.Message, env.Errors)
	}
	var p models.Product
	if err := json.Unmarshal(env.Data, &p); err != nil {
		t.Fatalf("decode product: %v", err)
	}
	return p.ID
}

func TestHealth(t *testing.T) {
	f := newFixture(t)

	code, env := f.do(t, http.MethodGet, "/health", nil)
	if code != http.StatusOK {
		t.Fatalf("expected 200, got %d", code)
	}
	var status map[string]string
	if err := json.Unmarshal(env.Data, &status); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if status["database"] != "ok" {
		t.Errorf("database status = %q", status["database"])
	}
}

func TestLogin(t *testing.T) {
	f := newFixture(t)
	testutil.CreateUser(t, f.db, models.RoleUser, "shopper@example.com")

	tests := []struct {
		name     string
		email    string
		password string
		want     int
	}{
		{"staff", "admin@bestwishes.lk", testutil.Password, http.StatusOK},
		{"email is case insensitive", "ADMIN@bestwishes.lk", testutil.Password, http.StatusOK},
		{"wrong password", "admin@bestwishes.lk", "Wrong#2026", http.StatusBadRequest},
		{"unknown email", "nobody@bestwishes.lk", testutil.Password, http.StatusBadRequest},
		{"customer account", "shopper@example.com", testutil.Password, http.StatusForbidden},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := testutil.Do(t, f.router, http.MethodPost, "/api/auth/login", "", gin.H{
				"email":    tt.email,
				"password": tt.password,
			})
			if rec.Code != tt.want {
				t.Fatalf("expected %d, got %d: %s", tt.want, rec.Code, rec.Body.String())
			}
			if tt.want != http.StatusOK {
				return
			}
			var login models.LoginResponse
			testutil.Decode(t, rec, &login)
			if login.Token == "" {
				t.Fatal("expected a token")
			}

			me := testutil.Do(t, f.router, http.MethodGet, "/api/auth/me", login.Token, nil)
			if me.Code != http.StatusOK {
				t.Fatalf("me with fresh token: got %d", me.Code)
			}
		})
	}
}

func TestAuthRequired(t *testing.T) {
	f := newFixture(t)

	if rec := testutil.Do(t, f.router, http.MethodGet, "/api/auth/me", "", nil); rec.Code != http.StatusUnauthorized {
		t.Errorf("no token: expected 401, got %d", rec.Code)
	}
	if rec := testutil.Do(t, f.router, http.MethodGet, "/api/auth/me", "not-a-jwt", nil); rec.Code != http.StatusUnauthorized {
		t.Errorf("garbage token: expected 401, got %d", rec.Code)
	}

	if rec := testutil.Do(t, f.router, http.MethodPost, "/api/auth/logout", f.token, nil); rec.Code != http.StatusOK {
		t.Fatalf("logout: got %d", rec.Code)
	}
	if rec := testutil.Do(t, f.router, http.MethodGet, "/api/auth/me", f.token, nil); rec.Code != http.StatusUnauthorized {
		t.Errorf("token after logout: expected 401, got %d", rec.Code)
	}
}

func TestRoleGuards(t *testing.T) {
	f := newFixture(t)
	driver := testutil.CreateUser(t, f.db, models.RoleDeliveryStaff, "driver@bestwishes.lk")
	driverToken := testutil.Login(t, driver)
	inventory := testutil.CreateUser(t, f.db, models.RoleInventoryManager, "stock@bestwishes.lk")
	inventoryToken := testutil.Login(t, inventory)

	tests := []struct {
		name   string
		token  string
		method string
		path   string
		want   int
	}{
		{"driver cannot list orders", driverToken, http.MethodGet, "/api/orders", http.StatusForbidden},
		{"driver sees own queue", driverToken, http.MethodGet, "/api/delivery/orders", http.StatusOK},
		{"inventory lists orders", inventoryToken, http.MethodGet, "/api/orders", http.StatusOK},
		{"inventory cannot manage staff", inventoryToken, http.MethodGet, "/api/admin/users", http.StatusForbidden},
		{"admin manages staff", f.token, http.MethodGet, "/api/admin/users", http.StatusOK},
		{"driver cannot create products", driverToken, http.MethodPost, "/api/products", http.StatusForbidden},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := testutil.Do(t, f.router, tt.method, tt.path, tt.token, gin.H{})
			if rec.Code != tt.want {
				t.Fatalf("expected %d, got %d: %s", tt.want, rec.Code, rec.Body.String())
			}
		})
	}
}

func TestProductValidation(t *testing.T) {
	f := newFixture(t)
	f.createGiftsCategory(t)

	code, env := f.do(t, http.MethodPost, "/api/products", gin.H{
		"name":          "Hamper",
		"sku":           "BW-1",
		"main_category": "gifts",
		"retail_price":  10,
		"sale_price":    12,
		"filters":       map[string][]string{"occasion": {"Graduation"}},
	})
	if code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", code)
	}
	if len(env.Errors) < 2 {
		t.Errorf("expected several validation errors, got %v", env.Errors)
	}

	f.createProduct(t, "BW-1", 5, map[string][]string{"occasion": {"Birthday"}})
	code, _ = f.do(t, http.MethodPost, "/api/products", gin.H{
		"name":              "Other",
		"sku":               "BW-1",
		"short_description": "x",
		"main_category":     "gifts",
		"filters":           map[string][]string{"occasion": {"Anniversary"}},
		"retail_price":      10,
	})
	if code != http.StatusConflict {
		t.Errorf("duplicate sku: expected 409, got %d", code)
	}

	code, env = f.do(t, http.MethodGet, "/api/products", nil)
	if code != http.StatusOK {
		t.Fatalf("list: got %d", code)
	}
	if env.Meta == nil || env.Meta.Total != 1 {
		t.Errorf("expected one product in meta, got %+v", env.Meta)
	}
}

func TestAttributeItemCascade(t *testing.T) {
	f := newFixture(t)
	f.createGiftsCategory(t)
	id := f.createProduct(t, "BW-2", 20, map[string][]string{"occasion": {"Birthday", "Anniversary"}})

	code, _ := f.do(t, http.MethodPost, "/api/categories/gifts/attributes/occasion/items", gin.H{"value": "Christmas"})
	if code != http.StatusCreated {
		t.Fatalf("add item: got %d", code)
	}
	code, _ = f.do(t, http.MethodPost, "/api/categories/gifts/attributes/occasion/items", gin.H{"value": " Christmas "})
	if code != http.StatusBadRequest {
		t.Errorf("duplicate item: expected 400, got %d", code)
	}
	code, _ = f.do(t, http.MethodPost, "/api/categories/nope/attributes/occasion/items", gin.H{"value": "x"})
	if code != http.StatusNotFound {
		t.Errorf("unknown category: expected 404, got %d", code)
	}

	code, env := f.do(t, http.MethodPut, "/api/categories/gifts/attributes/occasion/items/Birthday", gin.H{"newValue": "Birthdays"})
	if code != http.StatusOK {
		t.Fatalf("rename item: got %d (%s)", code, env.Message)
	}
	var renamed struct {
		UpdatedProducts int `json:"updated_products"`
	}
	if err := json.Unmarshal(env.Data, &renamed); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if renamed.UpdatedProducts != 1 {
		t.Errorf("expected 1 product updated, got %d", renamed.UpdatedProducts)
	}

	code, _ = f.do(t, http.MethodDelete, "/api/categories/gifts/attributes/occasion/items/Anniversary", nil)
	if code != http.StatusOK {
		t.Fatalf("delete item: got %d", code)
	}

	var product models.Product
	if err := f.db.First(&product, "id = ?", id).Error; err != nil {
		t.Fatalf("load product: %v", err)
	}
	got := product.Filters["occasion"]
	if len(got) != 1 || got[0] != "Birthdays" {
		t.Errorf("product filters = %v, want [Birthdays]", got)
	}
}

func TestOrderLifecycle(t *testing.T) {
	f := newFixture(t)
	f.createGiftsCategory(t)
	productID := f.createProduct(t, "BW-3", 12, nil)

	code, env := f.do(t, http.MethodPost, "/api/orders", gin.H{
		"customer_name":  "Nimali Perera",
		"customer_email": "nimali@example.com",
		"items":          []gin.H{{"product_id": productID, "quantity": 3}},
	})
	if code != http.StatusCreated {
		t.Fatalf("create order: got %d (%s %v)", code, env.Message, env.Errors)
	}
	var order models.Order
	if err := json.Unmarshal(env.Data, &order); err != nil {
		t.Fatalf("decode order: %v", err)
	}
	if order.Subtotal != 75 {
		t.Errorf("subtotal = %v, want 75", order.Subtotal)
	}

	var product models.Product
	f.db.First(&product, "id = ?", productID)
	if product.Stock != 9 || product.StockStatus != models.StockLow {
		t.Errorf("stock = %d (%s), want 9 (low-stock)", product.Stock, product.StockStatus)
	}

	code, _ = f.do(t, http.MethodPost, "/api/orders", gin.H{
		"customer_name": "Greedy",
		"items":         []gin.H{{"product_id": productID, "quantity": 50}},
	})
	if code != http.StatusConflict {
		t.Errorf("oversell: expected 409, got %d", code)
	}

	missing := uuid.New()
	status := models.OrderProcessing
	code, env = f.do(t, http.MethodPatch, "/api/orders/bulk-update", gin.H{
		"order_ids": []uuid.UUID{order.ID, missing},
		"updates":   gin.H{"status": status},
	})
	if code != http.StatusNotFound {
		t.Fatalf("bulk update with missing id: expected 404, got %d", code)
	}
	var miss struct {
		Missing []uuid.UUID `json:"missing"`
	}
	if err := json.Unmarshal(env.Data, &miss); err != nil || len(miss.Missing) != 1 || miss.Missing[0] != missing {
		t.Errorf("missing ids = %v (%v)", miss.Missing, err)
	}
	var unchanged models.Order
	f.db.First(&unchanged, "id = ?", order.ID)
	if unchanged.Status != models.OrderPending {
		t.Errorf("order changed despite failed bulk update: %s", unchanged.Status)
	}

	code, _ = f.do(t, http.MethodPatch, "/api/orders/bulk-update", gin.H{
		"order_ids": []uuid.UUID{order.ID},
		"updates":   gin.H{"status": status},
	})
	if code != http.StatusOK {
		t.Fatalf("bulk update: got %d", code)
	}
	var processed models.Order
	f.db.First(&processed, "id = ?", order.ID)
	if processed.Status != models.OrderProcessing {
		t.Errorf("status = %s, want %s", processed.Status, models.OrderProcessing)
	}

	code, _ = f.do(t, http.MethodDelete, "/api/orders/bulk-delete", gin.H{"order_ids": []uuid.UUID{order.ID}})
	if code != http.StatusOK {
		t.Fatalf("bulk delete: got %d", code)
	}
	code, _ = f.do(t, http.MethodGet, "/api/orders/"+order.ID.String(), nil)
	if code != http.StatusNotFound {
		t.Errorf("deleted order: expected 404, got %d", code)
	}
}

func TestStaffManagement(t *testing.T) {
	f := newFixture(t)
	body := gin.H{
		"first_name": "Kamal",
		"last_name":  "Silva",
		"email":      "kamal@bestwishes.lk",
		"password":   testutil.Password,
		"role":       models.RoleDeliveryStaff,
	}

	code, env := f.do(t, http.MethodPost, "/api/admin/users", body)
	if code != http.StatusCreated {
		t.Fatalf("create staff: got %d (%s %v)", code, env.Message, env.Errors)
	}
	code, _ = f.do(t, http.MethodPost, "/api/admin/users", body)
	if code != http.StatusConflict {
		t.Errorf("duplicate email: expected 409, got %d", code)
	}

	body["email"] = "weak@bestwishes.lk"
	body["password"] = "short"
	code, _ = f.do(t, http.MethodPost, "/api/admin/users", body)
	if code != http.StatusBadRequest {
		t.Errorf("weak password: expected 400, got %d", code)
	}

	code, _ = f.do(t, http.MethodPost, "/api/admin/users/deactivate", gin.H{"user_ids": []uuid.UUID{f.admin.ID}})
	if code != http.StatusBadRequest {
		t.Errorf("self deactivate: expected 400, got %d", code)
	}

	var admins int64
	f.db.Model(&models.User{}).Where("id = ? AND is_blocked = ?", f.admin.ID, false).Count(&admins)
	if admins != 1 {
		t.Error("admin was blocked")
	}
}

func TestNotificationsAreScopedToCaller(t *testing.T) {
	f := newFixture(t)
	other := testutil.CreateUser(t, f.db, models.RoleInventoryManager, "other@bestwishes.lk")

	ctx := context.Background()
	notifier := services.GetNotificationService()
	mine, err := notifier.Notify(ctx, f.admin.ID, services.NotificationInput{Title: "Mine", Message: "for admin"})
	if err != nil {
		t.Fatalf("notify: %v", err)
	}
	theirs, err := notifier.Notify(ctx, other.ID, services.NotificationInput{Title: "Theirs", Message: "for other"})
	if err != nil {
		t.Fatalf("notify: %v", err)
	}

	code, env := f.do(t, http.MethodGet, "/api/notifications", nil)
	if code != http.StatusOK {
		t.Fatalf("list: got %d", code)
	}
	var list struct {
		Notifications []models.Notification `json:"notifications"`
		UnreadCount   int64                 `json:"unread_count"`
	}
	if err := json.Unmarshal(env.Data, &list); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if len(list.Notifications) != 1 || list.Notifications[0].ID != mine.ID {
		t.Fatalf("expected only own notification, got %+v", list.Notifications)
	}
	if list.UnreadCount != 1 {
		t.Errorf("unread = %d, want 1", list.UnreadCount)
	}

	code, _ = f.do(t, http.MethodPut, "/api/notifications/"+theirs.ID.String()+"/read", nil)
	if code != http.StatusNotFound {
		t.Errorf("marking someone else's notification: expected 404, got %d", code)
	}
	code, _ = f.do(t, http.MethodPut, "/api/notifications/"+mine.ID.String()+"/read", nil)
	if code != http.StatusOK {
		t.Errorf("mark read: got %d", code)
	}

	code, env = f.do(t, http.MethodGet, "/api/notifications/unread-count", nil)
	if code != http.StatusOK {
		t.Fatalf("unread count: got %d", code)
	}
	var count struct {
		UnreadCount int64 `json:"unread_count"`
	}
	json.Unmarshal(env.Data, &count)
	if count.UnreadCount != 0 {
		t.Errorf("unread = %d, want 0", count.UnreadCount)
	}
}
