package models

import (
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

var (
	ErrAttributeNotFound  = errors.New("attribute not found")
	ErrDuplicateAttribute = errors.New("attribute already exists")
	ErrItemNotFound       = errors.New("item not found")
	ErrDuplicateItem      = errors.New("item already exists")
	ErrEmptyItem          = errors.New("item value is required")
)

// Category is a top-level product grouping with its own filter attributes.
type Category struct {
	ID          uuid.UUID     `json:"id" gorm:"type:uuid;primaryKey"`
	Key         string        `json:"key" gorm:"not null;uniqueIndex"`
	Name        string        `json:"name" gorm:"not null"`
	Description string        `json:"description" gorm:"type:text"`
	Icon        string        `json:"icon"`
	Image       string        `json:"image"`
	IsActive    bool          `json:"is_active" gorm:"not null;index"`
	SortOrder   int           `json:"sort_order" gorm:"not null;default:0"`
	Attributes  AttributeList `json:"attributes" gorm:"type:jsonb;not null;default:'[]'"`
	CreatedAt   time.Time     `json:"created_at" gorm:"autoCreateTime"`
	UpdatedAt   time.Time     `json:"updated_at" gorm:"autoUpdateTime"`

	ProductCount int64 `json:"product_count" gorm:"-"`
}

// BeforeCreate hook - runs automatically before creating a record
func (c *Category) BeforeCreate(tx *gorm.DB) error {
	if c.ID == uuid.Nil {
		c.ID = uuid.Must(uuid.NewV7())
	}
	return nil
}

// BeforeSave keeps the key canonical.
func (c *Category) BeforeSave(tx *gorm.DB) error {
	c.Key = NormalizeCategoryKey(c.Key)
	if c.Attributes == nil {
		c.Attributes = AttributeList{}
	}
	return nil
}

func (Category) TableName() string {
	return "categories"
}

// NormalizeCategoryKey lower-cases and trims a category key.
func NormalizeCategoryKey(key string) string {
	return strings.ToLower(strings.TrimSpace(key))
}

// attribute returns the index of the named attribute or -1.
func (c *Category) attribute(name string) int {
	for i := range c.Attributes {
		if c.Attributes[i].Name == name {
			return i
		}
	}
	return -1
}

// Attribute looks an attribute up by name.
func (c *Category) Attribute(name string) (*CategoryAttribute, error) {
	i := c.attribute(name)
	if i < 0 {
		return nil, ErrAttributeNotFound
	}
	return &c.Attributes[i], nil
}

func (c *Category) AddAttribute(name, displayName string) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return ErrEmptyItem
	}
	if c.attribute(name) >= 0 {
		return ErrDuplicateAttribute
	}
	if strings.TrimSpace(displayName) == "" {
		displayName = name
	}
	c.Attributes = append(c.Attributes, CategoryAttribute{Name: name, DisplayName: displayName, Items: []string{}})
	return nil
}

func (c *Category) RemoveAttribute(name string) error {
	i := c.attribute(name)
	if i < 0 {
		return ErrAttributeNotFound
	}
	c.Attributes = append(c.Attributes[:i:i], c.Attributes[i+1:]...)
	return nil
}

// AddItem appends a trimmed, non-empty, not yet present value to an attribute.
func (c *Category) AddItem(attribute, value string) (string, error) {
	attr, err := c.Attribute(attribute)
	if err != nil {
		return "", err
	}
	value = strings.TrimSpace(value)
	if value == "" {
		return "", ErrEmptyItem
	}
	for _, item := range attr.Items {
		if item == value {
			return "", ErrDuplicateItem
		}
	}
	attr.Items = append(attr.Items, value)
	return value, nil
}

// RenameItem replaces oldValue. Renaming to the same value is allowed.
func (c *Category) RenameItem(attribute, oldValue, newValue string) (string, error) {
	attr, err := c.Attribute(attribute)
	if err != nil {
		return "", err
	}
	newValue = strings.TrimSpace(newValue)
	if newValue == "" {
		return "", ErrEmptyItem
	}
	idx := -1
	for i, item := range attr.Items {
		if item == oldValue {
			idx = i
		} else if item == newValue {
			return "", ErrDuplicateItem
		}
	}
	if idx < 0 {
		return "", ErrItemNotFound
	}
	attr.Items[idx] = newValue
	return newValue, nil
}

func (c *Category) RemoveItem(attribute, value string) error {
	attr, err := c.Attribute(attribute)
	if err != nil {
		return err
	}
	for i, item := range attr.Items {
		if item == value {
			attr.Items = append(attr.Items[:i:i], attr.Items[i+1:]...)
			return nil
		}
	}
	return ErrItemNotFound
}

// ValidateSelections checks product filter selections against the attributes.
func (c *Category) ValidateSelections(filters FilterSelections) []string {
	var errs []string
	hasItems := false
	for _, attr := range c.Attributes {
		if len(attr.Items) > 0 {
			hasItems = true
			break
		}
	}
	if hasItems && filters.Count() == 0 {
		errs = append(errs, "Please select at least one filter for the "+c.Name+" category")
	}
	for name, values := range filters {
		attr, err := c.Attribute(name)
		if err != nil {
			errs = append(errs, "Unknown filter "+name+" for category "+c.Key)
			continue
		}
		for _, v := range values {
			found := false
			for _, item := range attr.Items {
				if item == v {
					found = true
					break
				}
			}
			if !found {
				errs = append(errs, "Unknown value "+v+" for filter "+name)
			}
		}
	}
	return errs
}

// ═══════════════════════════════════════════════════════════
// Request DTOs
// ═══════════════════════════════════════════════════════════

type CategoryRequest struct {
	Key         string              `json:"key" binding:"required,category_key" example:"birthday-gifts"`
	Name        string              `json:"name" binding:"required" example:"Birthday Gifts"`
	Description string              `json:"description"`
	Icon        string              `json:"icon"`
	Image       string              `json:"image"`
	IsActive    *bool               `json:"is_active"`
	SortOrder   int                 `json:"sort_order"`
	Attributes  []CategoryAttribute `json:"attributes"`
}

type UpdateCategoryRequest struct {
	Key         *string              `json:"key" binding:"omitempty,category_key"`
	Name        *string              `json:"name"`
	Description *string              `json:"description"`
	Icon        *string              `json:"icon"`
	Image       *string              `json:"image"`
	IsActive    *bool                `json:"is_active"`
	SortOrder   *int                 `json:"sort_order"`
	Attributes  *[]CategoryAttribute `json:"attributes"`
}

type AttributeRequest struct {
	Name        string `json:"name" binding:"required"`
	DisplayName string `json:"display_name"`
}

type AddItemRequest struct {
	Value string `json:"value"`
}

type UpdateItemRequest struct {
	NewValue string `json:"newValue"`
}

// SanitizeAttributes trims names and items and drops empty or repeated items.
func SanitizeAttributes(attrs []CategoryAttribute) (AttributeList, error) {
	out := make(AttributeList, 0, len(attrs))
	seenAttr := map[string]bool{}
	for _, a := range attrs {
		name := strings.TrimSpace(a.Name)
		if name == "" {
			return nil, ErrEmptyItem
		}
		if seenAttr[name] {
			return nil, ErrDuplicateAttribute
		}
		seenAttr[name] = true
		display := strings.TrimSpace(a.DisplayName)
		if display == "" {
			display = name
		}
		items := []string{}
		seen := map[string]bool{}
		for _, it := range a.Items {
			it = strings.TrimSpace(it)
			if it == "" || seen[it] {
				continue
			}
			seen[it] = true
			items = append(items, it)
		}
		out = append(out, CategoryAttribute{Name: name, DisplayName: display, Items: items})
	}
	return out, nil
}

// DroppedSelections reports what replacing old with next removes: attributes that no
// longer exist, and items gone from attributes that remain.
func DroppedSelections(old, next AttributeList) (attributes []string, items map[string][]string) {
	kept := make(map[string]map[string]bool, len(next))
	for _, a := range next {
		set := make(map[string]bool, len(a.Items))
		for _, it := range a.Items {
			set[it] = true
		}
		kept[a.Name] = set
	}

	items = map[string][]string{}
	for _, a := range old {
		set, ok := kept[a.Name]
		if !ok {
			attributes = append(attributes, a.Name)
			continue
		}
		for _, it := range a.Items {
			if !set[it] {
				items[a.Name] = append(items[a.Name], it)
			}
		}
	}
	return attributes, items
}
