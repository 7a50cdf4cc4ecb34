package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/Sarujan100/best-wishes-final-sub001/config"
	"github.com/gin-gonic/gin"
)

func TestRateKeySeparatesStackedLimiters(t *testing.T) {
	gin.SetMode(gin.TestMode)

	var keys []string
	r := gin.New()
	r.POST("/api/auth/login", func(c *gin.Context) {
		keys = append(keys, rateKey(100, time.Minute, c), rateKey(10, time.Minute, c), rateKey(10, time.Hour, c))
	})
	req := httptest.NewRequest(http.MethodPost, "/api/auth/login", nil)
	req.RemoteAddr = "10.0.0.7:5555"
	r.ServeHTTP(httptest.NewRecorder(), req)

	if len(keys) != 3 {
		t.Fatalf("handler did not run")
	}
	seen := map[string]bool{}
	for _, k := range keys {
		if seen[k] {
			t.Fatalf("duplicate key %q", k)
		}
		seen[k] = true
	}
	if want := "rl:100/1m0s:10.0.0.7:POST:/api/auth/login"; keys[0] != want {
		t.Errorf("key = %q, want %q", keys[0], want)
	}
}

func TestRateLimiterPassesWithoutRedis(t *testing.T) {
	gin.SetMode(gin.TestMode)
	prev := config.RedisClient
	config.RedisClient = nil
	t.Cleanup(func() { config.RedisClient = prev })

	r := gin.New()
	r.Use(RateLimiter(1, time.Minute))
	r.GET("/ping", func(c *gin.Context) { c.Status(http.StatusNoContent) })

	for i := 0; i < 3; i++ {
		rec := httptest.NewRecorder()
		r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/ping", nil))
		if rec.Code != http.StatusNoContent {
			t.Fatalf("request %d: got %d", i+1, rec.Code)
		}
		if rec.Header().Get("X-RateLimit-Limit") != "" {
			t.Fatalf("unexpected rate headers without redis")
		}
	}
}
