package services_test

import (
	"testing"
	"time"

	"github.com/Sarujan100/best-wishes-final-sub001/models"
	"github.com/Sarujan100/best-wishes-final-sub001/services"
	"github.com/Sarujan100/best-wishes-final-sub001/testutil"
)

func TestWaitBackgroundCoversAsyncNotifications(t *testing.T) {
	db := testutil.SetupTestDB(t)
	testutil.CreateUser(t, db, models.RoleAdmin, "admin@bestwishes.lk")
	testutil.CreateUser(t, db, models.RoleInventoryManager, "stock@bestwishes.lk")
	testutil.CreateUser(t, db, models.RoleDeliveryStaff, "driver@bestwishes.lk")

	services.GetNotificationService().NotifyRolesAsync(
		[]string{models.RoleAdmin, models.RoleInventoryManager},
		services.NotificationInput{Title: "Low stock", Message: "Hamper has 2 left"},
	)
	if !services.WaitBackground(5 * time.Second) {
		t.Fatal("background work did not finish")
	}

	var n int64
	db.Model(&models.Notification{}).Count(&n)
	if n != 2 {
		t.Errorf("notifications = %d, want 2", n)
	}
}

func TestWaitBackgroundWithNothingPending(t *testing.T) {
	if !services.WaitBackground(time.Second) {
		t.Fatal("idle wait timed out")
	}
}
