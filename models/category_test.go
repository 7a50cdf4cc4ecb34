package models

import (
	"errors"
	"testing"
)

func giftCategory() *Category {
	return &Category{
		Key:  "gifts",
		Name: "Gifts",
		Attributes: AttributeList{
			{Name: "occasion", DisplayName: "Occasion", Items: []string{"Birthday", "Christmas"}},
		},
	}
}

func TestCategoryAddItem(t *testing.T) {
	c := giftCategory()

	v, err := c.AddItem("occasion", "  Anniversary ")
	if err != nil || v != "Anniversary" {
		t.Fatalf("AddItem = %q, %v", v, err)
	}
	if _, err := c.AddItem("occasion", "Birthday"); !errors.Is(err, ErrDuplicateItem) {
		t.Errorf("duplicate: got %v", err)
	}
	if _, err := c.AddItem("occasion", "   "); !errors.Is(err, ErrEmptyItem) {
		t.Errorf("blank: got %v", err)
	}
	if _, err := c.AddItem("colour", "Red"); !errors.Is(err, ErrAttributeNotFound) {
		t.Errorf("unknown attribute: got %v", err)
	}
}

func TestCategoryRenameItem(t *testing.T) {
	c := giftCategory()

	if _, err := c.RenameItem("occasion", "Birthday", "Christmas"); !errors.Is(err, ErrDuplicateItem) {
		t.Errorf("rename onto another item: got %v", err)
	}
	if v, err := c.RenameItem("occasion", "Birthday", "Birthday"); err != nil || v != "Birthday" {
		t.Errorf("rename to itself should be allowed: %q %v", v, err)
	}
	if _, err := c.RenameItem("occasion", "Easter", "Vesak"); !errors.Is(err, ErrItemNotFound) {
		t.Errorf("missing item: got %v", err)
	}
	if _, err := c.RenameItem("occasion", "Birthday", "Birthdays"); err != nil {
		t.Fatal(err)
	}
	attr, _ := c.Attribute("occasion")
	if attr.Items[0] != "Birthdays" {
		t.Errorf("items = %v", attr.Items)
	}
}

func TestCategoryRemoveItemAndAttribute(t *testing.T) {
	c := giftCategory()

	if err := c.RemoveItem("occasion", "Easter"); !errors.Is(err, ErrItemNotFound) {
		t.Errorf("missing item: got %v", err)
	}
	if err := c.RemoveItem("occasion", "Birthday"); err != nil {
		t.Fatal(err)
	}
	attr, _ := c.Attribute("occasion")
	if len(attr.Items) != 1 || attr.Items[0] != "Christmas" {
		t.Errorf("items = %v", attr.Items)
	}

	if err := c.AddAttribute("occasion", ""); !errors.Is(err, ErrDuplicateAttribute) {
		t.Errorf("duplicate attribute: got %v", err)
	}
	if err := c.RemoveAttribute("occasion"); err != nil {
		t.Fatal(err)
	}
	if _, err := c.Attribute("occasion"); !errors.Is(err, ErrAttributeNotFound) {
		t.Errorf("attribute should be gone, got %v", err)
	}
}

func TestValidateSelections(t *testing.T) {
	c := giftCategory()

	if errs := c.ValidateSelections(FilterSelections{}); len(errs) == 0 {
		t.Error("a category with items requires at least one selection")
	}
	if errs := c.ValidateSelections(FilterSelections{"occasion": {"Easter"}}); len(errs) == 0 {
		t.Error("unknown values must be rejected")
	}
	if errs := c.ValidateSelections(FilterSelections{"occasion": {"Christmas"}}); len(errs) != 0 {
		t.Errorf("valid selection rejected: %v", errs)
	}
}

func TestNormalizeCategoryKey(t *testing.T) {
	if got := NormalizeCategoryKey("  Birthday-Gifts "); got != "birthday-gifts" {
		t.Errorf("got %q", got)
	}
}

func TestDroppedSelections(t *testing.T) {
	old := AttributeList{
		{Name: "occasion", Items: []string{"Birthday", "Christmas", "Anniversary"}},
		{Name: "recipient", Items: []string{"Him", "Her"}},
	}
	next := AttributeList{
		{Name: "occasion", Items: []string{"Birthday", "Wedding"}},
		{Name: "theme", Items: []string{"Gold"}},
	}

	attrs, items := DroppedSelections(old, next)
	if len(attrs) != 1 || attrs[0] != "recipient" {
		t.Errorf("dropped attributes = %v, want [recipient]", attrs)
	}
	got := items["occasion"]
	if len(got) != 2 || got[0] != "Christmas" || got[1] != "Anniversary" {
		t.Errorf("dropped occasion items = %v, want [Christmas Anniversary]", got)
	}
	if _, ok := items["recipient"]; ok {
		t.Error("a dropped attribute should not also list its items")
	}

	attrs, items = DroppedSelections(old, old)
	if len(attrs) != 0 || len(items) != 0 {
		t.Errorf("unchanged list dropped %v %v", attrs, items)
	}
}
