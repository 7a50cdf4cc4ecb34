package utils

import (
	"net/http/httptest"
	"reflect"
	"testing"

	"github.com/gin-gonic/gin"
)

func ctxWithQuery(query string) *gin.Context {
	gin.SetMode(gin.TestMode)
	c, _ := gin.CreateTestContext(httptest.NewRecorder())
	c.Request = httptest.NewRequest("GET", "/?"+query, nil)
	return c
}

func TestParsePagination(t *testing.T) {
	cases := []struct {
		query               string
		page, limit, offset int
	}{
		{"", 1, 10, 0},
		{"page=3&limit=20", 3, 20, 40},
		{"page=0&limit=0", 1, 10, 0},
		{"page=-2&limit=500", 1, 50, 0},
		{"page=abc&limit=xyz", 1, 10, 0},
	}
	for _, tc := range cases {
		page, limit, offset := ParsePagination(ctxWithQuery(tc.query))
		if page != tc.page || limit != tc.limit || offset != tc.offset {
			t.Errorf("%q: got (%d,%d,%d), want (%d,%d,%d)", tc.query, page, limit, offset, tc.page, tc.limit, tc.offset)
		}
	}
}

func TestParseSort(t *testing.T) {
	allowed := map[string]string{"name": "name", "price": "retail_price"}

	if got := ParseSort(ctxWithQuery("sort_by=price&sort_order=asc"), allowed, "created_at"); got != "retail_price ASC" {
		t.Errorf("got %q", got)
	}
	if got := ParseSort(ctxWithQuery("sort_by=password_hash"), allowed, "created_at"); got != "created_at DESC" {
		t.Errorf("unknown columns must fall back, got %q", got)
	}
}

func TestSplitCSV(t *testing.T) {
	if got := SplitCSV(" Pending, Shipped ,,"); !reflect.DeepEqual(got, []string{"Pending", "Shipped"}) {
		t.Errorf("got %v", got)
	}
	if got := SplitCSV(""); got != nil {
		t.Errorf("got %v", got)
	}
}

func TestSearchClause(t *testing.T) {
	clause, args := SearchClause(" 50%_Off ", "name", "sku")
	want := `(LOWER(name) LIKE ? ESCAPE '\' OR LOWER(sku) LIKE ? ESCAPE '\')`
	if clause != want {
		t.Errorf("clause = %s", clause)
	}
	if len(args) != 2 || args[0] != `%50\%\_off%` {
		t.Errorf("args = %v", args)
	}
}

func TestParseUserAgent(t *testing.T) {
	iphone := "Mozilla/5.0 (iPhone; CPU iPhone OS 17_0 like Mac OS X) AppleWebKit/605.1.15 Version/17.0 Mobile/15E148 Safari/604.1"
	d := ParseUserAgent(iphone)
	if d.DeviceType != "mobile" || d.Browser != "Safari" || d.OS != "iOS" {
		t.Errorf("iphone = %+v", d)
	}

	edge := "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 Chrome/120.0 Safari/537.36 Edg/120.0"
	d = ParseUserAgent(edge)
	if d.DeviceType != "desktop" || d.Browser != "Edge" || d.OS != "Windows" {
		t.Errorf("edge = %+v", d)
	}
}

func TestGetClientIPPrefersForwardedFor(t *testing.T) {
	c := ctxWithQuery("")
	c.Request.Header.Set("X-Forwarded-For", "203.0.113.7, 10.0.0.1")
	if got := GetClientIP(c); got != "203.0.113.7" {
		t.Errorf("got %q", got)
	}
}
