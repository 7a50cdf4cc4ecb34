package utils

import (
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
)

const (
	DefaultPageLimit = 10
	MaxPageLimit     = 50
)

// ParsePagination reads ?page and ?limit: page >= 1, limit in 1..50 (default 10).
func ParsePagination(c *gin.Context) (page, limit, offset int) {
	page, _ = strconv.Atoi(c.DefaultQuery("page", "1"))
	limit, _ = strconv.Atoi(c.DefaultQuery("limit", strconv.Itoa(DefaultPageLimit)))
	page, limit = ClampPagination(page, limit)
	return page, limit, (page - 1) * limit
}

func ClampPagination(page, limit int) (int, int) {
	if page < 1 {
		page = 1
	}
	if limit < 1 {
		limit = DefaultPageLimit
	}
	if limit > MaxPageLimit {
		limit = MaxPageLimit
	}
	return page, limit
}

// ParseSort whitelists the sort column and normalises the direction.
func ParseSort(c *gin.Context, allowed map[string]string, fallback string) string {
	col, ok := allowed[c.DefaultQuery("sort_by", "")]
	if !ok {
		col = fallback
	}
	dir := "DESC"
	if strings.EqualFold(c.DefaultQuery("sort_order", "desc"), "asc") {
		dir = "ASC"
	}
	return col + " " + dir
}

// SplitCSV splits "a,b , c" into trimmed non-empty values.
func SplitCSV(raw string) []string {
	var out []string
	for _, p := range strings.Split(raw, ",") {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}

// LikePattern builds a lower-cased %term% pattern with LIKE wildcards escaped.
func LikePattern(term string) string {
	r := strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)
	return "%" + r.Replace(strings.ToLower(strings.TrimSpace(term))) + "%"
}

// SearchClause builds a case-insensitive OR of LIKE matches over columns.
func SearchClause(term string, columns ...string) (string, []interface{}) {
	pattern := LikePattern(term)
	parts := make([]string, len(columns))
	args := make([]interface{}, len(columns))
	for i, col := range columns {
		parts[i] = "LOWER(" + col + ") LIKE ? ESCAPE '\\'"
		args[i] = pattern
	}
	return "(" + strings.Join(parts, " OR ") + ")", args
}
