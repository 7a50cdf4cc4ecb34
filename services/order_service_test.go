package services_test

import (
	"context"
	"errors"
	"testing"

	"github.com/Sarujan100/best-wishes-final-sub001/models"
	"github.com/Sarujan100/best-wishes-final-sub001/services"
	"github.com/Sarujan100/best-wishes-final-sub001/testutil"
	"gorm.io/gorm"
)

func seedOrder(t *testing.T, db *gorm.DB, status string) models.Order {
	t.Helper()
	o := models.Order{CustomerName: "Nimali Perera", Status: status, Total: 25}
	if err := db.Create(&o).Error; err != nil {
		t.Fatalf("create order: %v", err)
	}
	return o
}

func TestClaimAndUpdate(t *testing.T) {
	db := testutil.SetupTestDB(t)
	first := testutil.CreateUser(t, db, models.RoleDeliveryStaff, "first@bestwishes.lk")
	second := testutil.CreateUser(t, db, models.RoleDeliveryStaff, "second@bestwishes.lk")
	order := seedOrder(t, db, models.OrderProcessing)
	svc := services.GetOrderService()
	shipped := models.OrderShipped

	got, change, err := svc.ClaimAndUpdate(context.Background(), order.ID, models.OrderUpdate{Status: &shipped}, first.ID)
	if err != nil {
		t.Fatalf("first claim: %v", err)
	}
	if got.DeliveryStaffID == nil || *got.DeliveryStaffID != first.ID {
		t.Fatalf("order not assigned to the first driver: %v", got.DeliveryStaffID)
	}
	if change == nil || change.Previous != models.OrderProcessing {
		t.Fatalf("expected a status change from Processing, got %+v", change)
	}

	delivered := models.OrderDelivered
	_, _, err = svc.ClaimAndUpdate(context.Background(), order.ID, models.OrderUpdate{Status: &delivered}, second.ID)
	if !errors.Is(err, services.ErrOrderClaimed) {
		t.Fatalf("second claim: expected ErrOrderClaimed, got %v", err)
	}

	var stored models.Order
	db.First(&stored, "id = ?", order.ID)
	if stored.Status != models.OrderShipped || *stored.DeliveryStaffID != first.ID {
		t.Errorf("losing claim changed the order: %s %v", stored.Status, stored.DeliveryStaffID)
	}
}

func TestClaimAndUpdateRejectsPendingOrders(t *testing.T) {
	db := testutil.SetupTestDB(t)
	driver := testutil.CreateUser(t, db, models.RoleDeliveryStaff, "driver@bestwishes.lk")
	order := seedOrder(t, db, models.OrderPending)

	shipped := models.OrderShipped
	_, _, err := services.GetOrderService().ClaimAndUpdate(context.Background(), order.ID, models.OrderUpdate{Status: &shipped}, driver.ID)
	if !errors.Is(err, services.ErrOrderClaimed) {
		t.Fatalf("expected ErrOrderClaimed, got %v", err)
	}
}
