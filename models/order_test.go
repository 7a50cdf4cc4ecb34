package models

import (
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
)

func TestOrderMatchesSearch(t *testing.T) {
	id := uuid.MustParse("0190f3a2-7c4e-7b1a-9d2e-5f6a7b8c9d0e")
	o := &Order{
		ID:            id,
		OrderNumber:   "ORD-2026-5F6A7B8C9D0E",
		CustomerName:  "Nimali Perera",
		CustomerEmail: "nimali@example.com",
		CustomerPhone: "+94 77 123 4567",
	}

	hits := []string{"", "  ", "ord-2026", "NIMALI", "example.COM", "123 4567", "7c4e-7b1a"}
	for _, term := range hits {
		if !OrderMatchesSearch(o, term) {
			t.Errorf("expected %q to match", term)
		}
	}
	if OrderMatchesSearch(o, "kamal") {
		t.Error("unrelated term matched")
	}
}

func TestNewOrderNumber(t *testing.T) {
	id := uuid.MustParse("0190f3a2-7c4e-7b1a-9d2e-5f6a7b8c9d0e")
	at := time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC)
	if got := NewOrderNumber(id, at); got != "ORD-2026-5F6A7B8C9D0E" {
		t.Errorf("got %q", got)
	}

	// Ids that share the last four bytes still get distinct numbers.
	other := uuid.MustParse("0190f3a2-7c4e-7b1a-9d2e-11117b8c9d0e")
	if NewOrderNumber(id, at) == NewOrderNumber(other, at) {
		t.Error("order numbers collide on a shared 32-bit tail")
	}
}

func TestOrderClaimableBy(t *testing.T) {
	me, someone := uuid.New(), uuid.New()
	tests := []struct {
		name  string
		order Order
		want  bool
	}{
		{"unassigned processing", Order{Status: OrderProcessing}, true},
		{"unassigned shipped", Order{Status: OrderShipped}, true},
		{"unassigned pending", Order{Status: OrderPending}, false},
		{"mine delivered", Order{Status: OrderDelivered, DeliveryStaffID: &me}, true},
		{"taken by someone else", Order{Status: OrderProcessing, DeliveryStaffID: &someone}, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.order.ClaimableBy(me); got != tt.want {
				t.Errorf("ClaimableBy = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestOrderUpdateValidate(t *testing.T) {
	bad := "Lost"
	u := OrderUpdate{Status: &bad, PaymentStatus: &bad}
	if errs := u.Validate(); len(errs) != 2 {
		t.Fatalf("want 2 problems, got %v", errs)
	}

	for _, s := range OrderStatuses {
		s := s
		u := OrderUpdate{Status: &s}
		if errs := u.Validate(); len(errs) != 0 {
			t.Errorf("status %s rejected: %v", s, errs)
		}
	}

	if !(&OrderUpdate{Notes: "only a note"}).Empty() {
		t.Error("notes alone change nothing")
	}
}

func TestDeliveryStatuses(t *testing.T) {
	if ValidDeliveryStatus(OrderPending) || ValidDeliveryStatus(OrderCompleted) {
		t.Error("delivery staff may not set Pending or Completed")
	}
	if !ValidDeliveryStatus(OrderDelivered) {
		t.Error("Delivered must be allowed")
	}
}

func TestAddressString(t *testing.T) {
	a := Address{Line1: "12 Galle Rd", City: " Colombo ", Country: "Sri Lanka"}
	if got := a.String(); got != "12 Galle Rd, Colombo, Sri Lanka" {
		t.Errorf("got %q", got)
	}
	if (Address{}).String() != "" {
		t.Error("empty address should render empty")
	}
}

func TestUserStatus(t *testing.T) {
	now := time.Now()
	recent := now.Add(-2 * time.Minute)
	stale := now.Add(-time.Hour)

	cases := []struct {
		name string
		user User
		want string
	}{
		{"blocked wins", User{IsBlocked: true, LastActiveAt: &recent}, UserStatusBlocked},
		{"recently active", User{LastActiveAt: &recent}, UserStatusActive},
		{"stale", User{LastActiveAt: &stale}, UserStatusInactive},
		{"never seen", User{}, UserStatusInactive},
	}
	for _, tc := range cases {
		if got := tc.user.Status(now); got != tc.want {
			t.Errorf("%s: got %s, want %s", tc.name, got, tc.want)
		}
	}
}

func TestShippingClassKey(t *testing.T) {
	if got := ShippingClassKey("  Next   Day "); got != "next-day" {
		t.Errorf("got %q", got)
	}
	if !strings.EqualFold(ShippingClassKey("Standard"), DefaultShippingClass) {
		t.Error("standard key mismatch")
	}
}
