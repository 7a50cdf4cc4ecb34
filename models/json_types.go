package models

import (
	"database/sql/driver"
	"encoding/json"
	"errors"
	"fmt"
)

// ═══════════════════════════════════════════════════════════
// JSON column types (jsonb on postgres, text on sqlite)
// ═══════════════════════════════════════════════════════════

type MediaItem struct {
	ID   string `json:"id"`
	URL  string `json:"url" binding:"required"`
	Name string `json:"name"`
	Size int64  `json:"size"`
}

type ProductVariant struct {
	ID         string            `json:"id"`
	SKU        string            `json:"sku"`
	Attributes map[string]string `json:"attributes"`
	Price      float64           `json:"price" binding:"min=0"`
	Stock      int               `json:"stock" binding:"min=0"`
	Weight     float64           `json:"weight" binding:"min=0"`
	Enabled    bool              `json:"enabled"`
}

type CategoryAttribute struct {
	Name        string   `json:"name"`
	DisplayName string   `json:"display_name"`
	Items       []string `json:"items"`
}

type (
	StringList       []string
	MediaList        []MediaItem
	VariantList      []ProductVariant
	AttributeList    []CategoryAttribute
	FilterSelections map[string][]string
)

func scanJSON(value interface{}, dest interface{}) error {
	if value == nil {
		return nil
	}
	var raw []byte
	switch v := value.(type) {
	case []byte:
		raw = v
	case string:
		raw = []byte(v)
	default:
		return errors.New(fmt.Sprint("failed to unmarshal JSON value: ", value))
	}
	if len(raw) == 0 {
		return nil
	}
	return json.Unmarshal(raw, dest)
}

func (s StringList) Value() (driver.Value, error) {
	if s == nil {
		return "[]", nil
	}
	b, err := json.Marshal(s)
	return string(b), err
}

func (s *StringList) Scan(value interface{}) error { return scanJSON(value, s) }

func (m MediaList) Value() (driver.Value, error) {
	if m == nil {
		return "[]", nil
	}
	b, err := json.Marshal(m)
	return string(b), err
}

func (m *MediaList) Scan(value interface{}) error { return scanJSON(value, m) }

func (v VariantList) Value() (driver.Value, error) {
	if v == nil {
		return "[]", nil
	}
	b, err := json.Marshal(v)
	return string(b), err
}

func (v *VariantList) Scan(value interface{}) error { return scanJSON(value, v) }

func (a AttributeList) Value() (driver.Value, error) {
	if a == nil {
		return "[]", nil
	}
	b, err := json.Marshal(a)
	return string(b), err
}

func (a *AttributeList) Scan(value interface{}) error { return scanJSON(value, a) }

func (f FilterSelections) Value() (driver.Value, error) {
	if f == nil {
		return "{}", nil
	}
	b, err := json.Marshal(f)
	return string(b), err
}

func (f *FilterSelections) Scan(value interface{}) error { return scanJSON(value, f) }
