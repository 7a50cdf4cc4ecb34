package models

import (
	"sort"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Toggle selects item under attribute, or deselects it when already selected.
// Applying the same toggle twice leaves the selections unchanged.
func (f FilterSelections) Toggle(attribute, item string) FilterSelections {
	out := f.Clone()
	current := out[attribute]
	for i, v := range current {
		if v == item {
			current = append(current[:i:i], current[i+1:]...)
			if len(current) == 0 {
				delete(out, attribute)
			} else {
				out[attribute] = current
			}
			return out
		}
	}
	out[attribute] = append(current, item)
	return out
}

// Clone deep-copies the selections, dropping attributes with nothing selected.
func (f FilterSelections) Clone() FilterSelections {
	out := make(FilterSelections, len(f))
	for k, v := range f {
		if len(v) == 0 {
			continue
		}
		out[k] = append([]string(nil), v...)
	}
	return out
}

// Has reports whether item is selected under attribute.
func (f FilterSelections) Has(attribute, item string) bool {
	for _, v := range f[attribute] {
		if v == item {
			return true
		}
	}
	return false
}

// Count is the number of selected values across all attributes.
func (f FilterSelections) Count() int {
	n := 0
	for _, v := range f {
		n += len(v)
	}
	return n
}

// Rename replaces a selected value, dropping duplicates. It reports whether anything changed.
func (f FilterSelections) Rename(attribute, from, to string) bool {
	values, ok := f[attribute]
	if !ok {
		return false
	}
	changed := false
	seen := map[string]bool{}
	out := values[:0]
	for _, v := range values {
		if v == from {
			v = to
			changed = true
		}
		if seen[v] {
			continue
		}
		seen[v] = true
		out = append(out, v)
	}
	f[attribute] = out
	return changed
}

// Remove deselects a value. It reports whether anything changed.
func (f FilterSelections) Remove(attribute, item string) bool {
	if !f.Has(attribute, item) {
		return false
	}
	values := f[attribute]
	out := make([]string, 0, len(values)-1)
	for _, v := range values {
		if v != item {
			out = append(out, v)
		}
	}
	if len(out) == 0 {
		delete(f, attribute)
	} else {
		f[attribute] = out
	}
	return true
}

// ═══════════════════════════════════════════════════════════
// Filter index (one row per selected value, used for attr.* queries)
// ═══════════════════════════════════════════════════════════

type ProductFilterValue struct {
	ProductID uuid.UUID `json:"product_id" gorm:"type:uuid;primaryKey"`
	Attribute string    `json:"attribute" gorm:"primaryKey;size:120"`
	Value     string    `json:"value" gorm:"primaryKey;size:200;index"`
}

func (ProductFilterValue) TableName() string {
	return "product_filter_values"
}

// SyncProductFilterValues rewrites the index rows of one product.
func SyncProductFilterValues(tx *gorm.DB, productID uuid.UUID, filters FilterSelections) error {
	db := tx.Session(&gorm.Session{NewDB: true})
	if err := db.Where("product_id = ?", productID).Delete(&ProductFilterValue{}).Error; err != nil {
		return err
	}

	attrs := make([]string, 0, len(filters))
	for k := range filters {
		attrs = append(attrs, k)
	}
	sort.Strings(attrs)

	var rows []ProductFilterValue
	for _, attr := range attrs {
		seen := map[string]bool{}
		for _, v := range filters[attr] {
			if seen[v] {
				continue
			}
			seen[v] = true
			rows = append(rows, ProductFilterValue{ProductID: productID, Attribute: attr, Value: v})
		}
	}
	if len(rows) == 0 {
		return nil
	}
	return db.Create(&rows).Error
}
