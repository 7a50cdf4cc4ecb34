package delivery_controller

import (
	"github.com/Sarujan100/best-wishes-final-sub001/models"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// deliveryQueue scopes orders to those assigned to staffID plus unassigned ones ready to ship.
func deliveryQueue(db *gorm.DB, staffID uuid.UUID) *gorm.DB {
	return db.Model(&models.Order{}).Where(
		"delivery_staff_id = ? OR (delivery_staff_id IS NULL AND status IN ?)",
		staffID, []string{models.OrderProcessing, models.OrderShipped},
	)
}
