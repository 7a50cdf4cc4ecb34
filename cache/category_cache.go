package category_cache

import (
	"sync"
	"time"

	"github.com/Sarujan100/best-wishes-final-sub001/models"
)

const TTL = 5 * time.Minute

// ── Category catalogue cache ─────────────────────────────────────────────────
// Holds every category (sorted by sort_order, name) with product counts filled in.
// Callers receive copies, so the cached slice is never mutated.

type listEntry struct {
	categories []models.Category
	fetchedAt  time.Time
}

var (
	listMu    sync.RWMutex
	listCache *listEntry
)

func GetAll() ([]models.Category, bool) {
	listMu.RLock()
	defer listMu.RUnlock()
	if listCache != nil && time.Since(listCache.fetchedAt) < TTL {
		return copyCategories(listCache.categories), true
	}
	return nil, false
}

func SetAll(categories []models.Category) {
	listMu.Lock()
	defer listMu.Unlock()
	listCache = &listEntry{categories: copyCategories(categories), fetchedAt: time.Now()}
}

// GetByKey serves a single category from the cached catalogue.
func GetByKey(key string) (models.Category, bool) {
	listMu.RLock()
	defer listMu.RUnlock()
	if listCache == nil || time.Since(listCache.fetchedAt) >= TTL {
		return models.Category{}, false
	}
	for _, c := range listCache.categories {
		if c.Key == key {
			return copyCategories([]models.Category{c})[0], true
		}
	}
	return models.Category{}, false
}

// ── Invalidate everything (call on any category or product write) ────────────

func Invalidate() {
	listMu.Lock()
	listCache = nil
	listMu.Unlock()
}

func copyCategories(in []models.Category) []models.Category {
	out := make([]models.Category, len(in))
	for i, c := range in {
		attrs := make(models.AttributeList, len(c.Attributes))
		for j, a := range c.Attributes {
			a.Items = append([]string(nil), a.Items...)
			attrs[j] = a
		}
		c.Attributes = attrs
		out[i] = c
	}
	return out
}
