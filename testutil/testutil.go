// Package testutil wires an in-memory database and signed-in staff for handler tests.
package testutil

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"net/textproto"
	"testing"
	"time"

	category_cache "github.com/Sarujan100/best-wishes-final-sub001/cache"
	"github.com/Sarujan100/best-wishes-final-sub001/config"
	"github.com/Sarujan100/best-wishes-final-sub001/models"
	"github.com/Sarujan100/best-wishes-final-sub001/services"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// Password satisfies the staff password policy.
const Password = "Secret#2026"

// SetupTestDB opens a fresh in-memory sqlite database, migrates it, seeds the
// shipping classes and installs it as config.CmsGorm for the test.
func SetupTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	gin.SetMode(gin.TestMode)

	db, err := config.OpenSQLite(":memory:")
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	if err := models.AutoMigrate(db); err != nil {
		t.Fatalf("migrate: %v", err)
	}
	if err := models.SeedShippingClasses(db); err != nil {
		t.Fatalf("seed shipping classes: %v", err)
	}

	prev := config.CmsGorm
	config.CmsGorm = db
	category_cache.Invalidate()
	services.RegisterValidators()
	if err := services.InitJWTService("test-secret-key-for-handlers", time.Hour); err != nil {
		t.Fatalf("init jwt: %v", err)
	}

	t.Cleanup(func() {
		if !services.WaitBackground(10 * time.Second) {
			t.Errorf("background tasks did not finish")
		}
		config.CmsGorm = prev
		category_cache.Invalidate()
		if sqlDB, err := db.DB(); err == nil {
			_ = sqlDB.Close()
		}
	})
	return db
}

// CreateUser stores an account with the shared test password.
func CreateUser(t *testing.T, db *gorm.DB, role, email string) *models.User {
	t.Helper()
	hash, err := services.GetAuthService().HashPassword(Password)
	if err != nil {
		t.Fatalf("hash password: %v", err)
	}
	u := &models.User{
		FirstName:    "Test",
		LastName:     role,
		Email:        email,
		PasswordHash: hash,
		Role:         role,
	}
	if err := db.Create(u).Error; err != nil {
		t.Fatalf("create user %s: %v", email, err)
	}
	return u
}

// Login issues a token for u and records the session the auth middleware expects.
func Login(t *testing.T, u *models.User) string {
	t.Helper()
	token, err := services.GenerateStaffJWT(u.ID.String(), u.Email, u.Role)
	if err != nil {
		t.Fatalf("sign token: %v", err)
	}
	if _, err := services.GetSessionService().CreateSession(context.Background(), u.ID, token, "127.0.0.1", "go-test"); err != nil {
		t.Fatalf("create session: %v", err)
	}
	return token
}

// Envelope mirrors models.ApiResponse with the data left raw.
type Envelope struct {
	Message string             `json:"message"`
	Data    json.RawMessage    `json:"data"`
	Error   bool               `json:"error"`
	Errors  []string           `json:"errors"`
	Meta    *models.Pagination `json:"meta"`
}

// Do sends a JSON request through h with an optional bearer token.
func Do(t *testing.T, h http.Handler, method, path, token string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()
	var r io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		if err != nil {
			t.Fatalf("marshal body: %v", err)
		}
		r = bytes.NewReader(raw)
	}
	req := httptest.NewRequest(method, path, r)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	return rec
}

// File is one file part of a multipart request.
type File struct {
	Field       string
	Name        string
	ContentType string
	Content     []byte
}

// DoMultipart sends a multipart form through h with an optional bearer token.
func DoMultipart(t *testing.T, h http.Handler, method, path, token string, fields map[string]string, files ...File) *httptest.ResponseRecorder {
	t.Helper()
	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)
	for k, v := range fields {
		if err := w.WriteField(k, v); err != nil {
			t.Fatalf("write field %s: %v", k, err)
		}
	}
	for _, f := range files {
		hdr := textproto.MIMEHeader{}
		hdr.Set("Content-Disposition", `form-data; name="`+f.Field+`"; filename="`+f.Name+`"`)
		hdr.Set("Content-Type", f.ContentType)
		part, err := w.CreatePart(hdr)
		if err != nil {
			t.Fatalf("create part: %v", err)
		}
		part.Write(f.Content)
	}
	if err := w.Close(); err != nil {
		t.Fatalf("close multipart: %v", err)
	}

	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", w.FormDataContentType())
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	return rec
}

// Decode parses the envelope and, when dst is non-nil, its data.
func Decode(t *testing.T, rec *httptest.ResponseRecorder, dst interface{}) Envelope {
	t.Helper()
	var env Envelope
	if err := json.Unmarshal(rec.Body.Bytes(), &env); err != nil {
		t.Fatalf("decode response %q: %v", rec.Body.String(), err)
	}
	if dst != nil && len(env.Data) > 0 {
		if err := json.Unmarshal(env.Data, dst); err != nil {
			t.Fatalf("decode data %s: %v", env.Data, err)
		}
	}
	return env
}
