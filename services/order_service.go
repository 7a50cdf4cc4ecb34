package services

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/Sarujan100/best-wishes-final-sub001/config"
	"github.com/Sarujan100/best-wishes-final-sub001/models"
	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

var (
	ErrOrderNotFound  = errors.New("order not found")
	ErrOrdersNotFound = errors.New("orders not found")
	ErrInvalidOrder   = errors.New("invalid order")
	ErrOrderClaimed   = errors.New("order is assigned to another delivery staff member")
)

// MissingOrdersError lists ids that do not exist; errors.Is matches ErrOrdersNotFound.
type MissingOrdersError struct {
	IDs []uuid.UUID
}

func (e *MissingOrdersError) Error() string {
	ids := make([]string, len(e.IDs))
	for i, id := range e.IDs {
		ids[i] = id.String()
	}
	return "orders not found: " + strings.Join(ids, ", ")
}

func (e *MissingOrdersError) Is(target error) bool { return target == ErrOrdersNotFound }

// OrderValidationError carries the problems of a submitted order; errors.Is matches ErrInvalidOrder.
type OrderValidationError struct {
	Problems []string
}

func (e *OrderValidationError) Error() string { return strings.Join(e.Problems, "; ") }

func (e *OrderValidationError) Is(target error) bool { return target == ErrInvalidOrder }

// StatusChange records one order whose status moved.
type StatusChange struct {
	Order    models.Order
	Previous string
}

// OrderService holds the transactional order operations.
type OrderService struct{}

func NewOrderService() *OrderService {
	return &OrderService{}
}

func preloadOrder(db *gorm.DB) *gorm.DB {
	return db.Preload("Items").Preload("StatusHistory", func(db *gorm.DB) *gorm.DB {
		return db.Order("updated_at ASC")
	})
}

// LoadOrder fetches an order with its items and history.
func LoadOrder(ctx context.Context, id uuid.UUID) (*models.Order, error) {
	var order models.Order
	if err := preloadOrder(config.CmsGorm.WithContext(ctx)).First(&order, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrOrderNotFound
		}
		return nil, err
	}
	return &order, nil
}

// ApplyUpdate writes the non-nil fields of u to order inside tx and appends a history
// entry when the status changes. Any status may follow any other.
func (s *OrderService) ApplyUpdate(tx *gorm.DB, order *models.Order, u models.OrderUpdate, staffID *uuid.UUID) (bool, error) {
	now := time.Now().UTC()
	updates := map[string]interface{}{}
	statusChanged := false

	if u.Status != nil && *u.Status != order.Status {
		statusChanged = true
		order.Status = *u.Status
		updates["status"] = order.Status
		if order.Status == models.OrderDelivered {
			order.DeliveredAt = &now
			updates["delivered_at"] = now
		}
	}
	if u.PaymentStatus != nil {
		order.PaymentStatus = *u.PaymentStatus
		updates["payment_status"] = order.PaymentStatus
	}
	if u.TrackingNumber != nil {
		order.TrackingNumber = strings.TrimSpace(*u.TrackingNumber)
		updates["tracking_number"] = order.TrackingNumber
	}
	if u.DeliveryNotes != nil {
		order.DeliveryNotes = *u.DeliveryNotes
		updates["delivery_notes"] = order.DeliveryNotes
	}
	if u.DeliveryStaffID != nil {
		if *u.DeliveryStaffID == uuid.Nil {
			order.DeliveryStaffID = nil
			updates["delivery_staff_id"] = nil
		} else {
			id := *u.DeliveryStaffID
			order.DeliveryStaffID = &id
			updates["delivery_staff_id"] = id
		}
	}
	if len(updates) == 0 {
		return false, nil
	}
	if staffID != nil {
		order.UpdatedBy = staffID
		updates["updated_by"] = *staffID
	}
	updates["updated_at"] = now

	if err := tx.Model(&models.Order{}).Where("id = ?", order.ID).Updates(updates).Error; err != nil {
		return false, fmt.Errorf("update order %s: %w", order.ID, err)
	}

	if statusChanged {
		entry := models.OrderStatusHistory{
			OrderID:   order.ID,
			Status:    order.Status,
			Notes:     u.Notes,
			UpdatedBy: staffID,
			UpdatedAt: now,
		}
		if err := tx.Create(&entry).Error; err != nil {
			return false, fmt.Errorf("record status history: %w", err)
		}
		order.StatusHistory = append(order.StatusHistory, entry)
	}
	return statusChanged, nil
}

// Update applies u to a single order in its own transaction.
func (s *OrderService) Update(ctx context.Context, id uuid.UUID, u models.OrderUpdate, staffID *uuid.UUID) (*models.Order, *StatusChange, error) {
	return s.update(ctx, id, u, staffID, nil)
}

// ClaimAndUpdate applies u for a delivery staff member and assigns the order to them.
// The order must still be claimable by staffID once locked, otherwise ErrOrderClaimed.
func (s *OrderService) ClaimAndUpdate(ctx context.Context, id uuid.UUID, u models.OrderUpdate, staffID uuid.UUID) (*models.Order, *StatusChange, error) {
	u.DeliveryStaffID = &staffID
	return s.update(ctx, id, u, &staffID, func(o *models.Order) error {
		if !o.ClaimableBy(staffID) {
			return ErrOrderClaimed
		}
		return nil
	})
}

func (s *OrderService) update(ctx context.Context, id uuid.UUID, u models.OrderUpdate, staffID *uuid.UUID, check func(*models.Order) error) (*models.Order, *StatusChange, error) {
	var (
		order  models.Order
		change *StatusChange
	)
	err := config.CmsGorm.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := preloadOrder(tx.Clauses(clause.Locking{Strength: "UPDATE"})).First(&order, "id = ?", id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrOrderNotFound
			}
			return err
		}
		if check != nil {
			if err := check(&order); err != nil {
				return err
			}
		}
		previous := order.Status
		changed, err := s.ApplyUpdate(tx, &order, u, staffID)
		if err != nil {
			return err
		}
		if changed {
			change = &StatusChange{Order: order, Previous: previous}
		}
		return nil
	})
	if err != nil {
		return nil, nil, err
	}
	return &order, change, nil
}

// lockOrders loads every id or fails with *MissingOrdersError.
func lockOrders(tx *gorm.DB, ids []uuid.UUID) ([]models.Order, error) {
	ids = uniqueIDs(ids)
	var orders []models.Order
	if err := preloadOrder(tx.Clauses(clause.Locking{Strength: "UPDATE"})).
		Where("id IN ?", ids).
		Find(&orders).Error; err != nil {
		return nil, err
	}
	if len(orders) == len(ids) {
		return orders, nil
	}
	found := make(map[uuid.UUID]bool, len(orders))
	for _, o := range orders {
		found[o.ID] = true
	}
	missing := []uuid.UUID{}
	for _, id := range ids {
		if !found[id] {
			missing = append(missing, id)
		}
	}
	return nil, &MissingOrdersError{IDs: missing}
}

func uniqueIDs(ids []uuid.UUID) []uuid.UUID {
	seen := make(map[uuid.UUID]bool, len(ids))
	out := make([]uuid.UUID, 0, len(ids))
	for _, id := range ids {
		if !seen[id] {
			seen[id] = true
			out = append(out, id)
		}
	}
	return out
}

// BulkUpdate applies the same update to every order in one transaction. When any id
// is unknown nothing is written and *MissingOrdersError is returned.
func (s *OrderService) BulkUpdate(ctx context.Context, ids []uuid.UUID, u models.OrderUpdate, staffID *uuid.UUID) (models.BulkResult, []StatusChange, error) {
	result := models.BulkResult{}
	var changes []StatusChange

	err := config.CmsGorm.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		orders, err := lockOrders(tx, ids)
		if err != nil {
			return err
		}
		for i := range orders {
			previous := orders[i].Status
			changed, err := s.ApplyUpdate(tx, &orders[i], u, staffID)
			if err != nil {
				return err
			}
			result.Affected = append(result.Affected, orders[i].ID)
			if changed {
				changes = append(changes, StatusChange{Order: orders[i], Previous: previous})
			}
		}
		return nil
	})
	if err != nil {
		var missing *MissingOrdersError
		if errors.As(err, &missing) {
			result.Missing = missing.IDs
		}
		return result, nil, err
	}
	return result, changes, nil
}

// BulkDelete removes the orders with their items and history in one transaction, all or nothing.
func (s *OrderService) BulkDelete(ctx context.Context, ids []uuid.UUID) (models.BulkResult, error) {
	result := models.BulkResult{}

	err := config.CmsGorm.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		orders, err := lockOrders(tx, ids)
		if err != nil {
			return err
		}
		found := make([]uuid.UUID, len(orders))
		for i, o := range orders {
			found[i] = o.ID
		}
		if err := tx.Where("order_id IN ?", found).Delete(&models.OrderItem{}).Error; err != nil {
			return err
		}
		if err := tx.Where("order_id IN ?", found).Delete(&models.OrderStatusHistory{}).Error; err != nil {
			return err
		}
		if err := tx.Where("id IN ?", found).Delete(&models.Order{}).Error; err != nil {
			return err
		}
		result.Affected = found
		return nil
	})
	if err != nil {
		var missing *MissingOrdersError
		if errors.As(err, &missing) {
			result.Missing = missing.IDs
		}
		return result, err
	}
	return result, nil
}

// Create builds a manual order: missing item names and prices are filled from the
// product, totals are computed with decimal arithmetic and stock is reserved atomically.
func (s *OrderService) Create(ctx context.Context, req models.CreateOrderRequest, staffID *uuid.UUID) (*models.Order, error) {
	fees := LoadShippingFees(ctx)
	var (
		order   models.Order
		changes []StockChange
	)

	err := config.CmsGorm.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var problems []string
		wanted := map[uuid.UUID]int{}
		items := make([]models.OrderItem, 0, len(req.Items))
		lines := make([]OrderLine, 0, len(req.Items))

		for i, in := range req.Items {
			item := models.OrderItem{
				ProductID: in.ProductID,
				Name:      strings.TrimSpace(in.Name),
				Variant:   in.Variant,
				Quantity:  in.Quantity,
			}
			if in.Price != nil {
				item.Price = *in.Price
			}

			if in.ProductID != nil {
				var p models.Product
				if err := tx.First(&p, "id = ?", *in.ProductID).Error; err != nil {
					if errors.Is(err, gorm.ErrRecordNotFound) {
						problems = append(problems, fmt.Sprintf("Item %d: product not found", i+1))
						continue
					}
					return err
				}
				if item.Name == "" {
					item.Name = p.Name
				}
				if in.Price == nil {
					item.Price = p.SellingPrice()
				}
				if len(p.Images) > 0 {
					item.Image = p.Images[0].URL
				}
				wanted[p.ID] += in.Quantity
			} else if item.Name == "" || in.Price == nil {
				problems = append(problems, fmt.Sprintf("Item %d: name and price are required without a product", i+1))
				continue
			}

			items = append(items, item)
			lines = append(lines, OrderLine{Price: item.Price, Quantity: item.Quantity})
		}
		if len(problems) > 0 {
			return &OrderValidationError{Problems: problems}
		}

		var err error
		changes, err = ReserveStock(tx, wanted)
		if err != nil {
			return err
		}

		shippingMethod := req.ShippingMethod
		if shippingMethod == "" {
			shippingMethod = models.DefaultShippingClass
		}
		totals := CalculateOrderTotals(lines, fees.Fee(shippingMethod), req.Discount, req.TaxClass)

		paymentStatus := req.PaymentStatus
		if paymentStatus == "" {
			paymentStatus = models.PaymentPending
		}
		billing := req.ShippingAddress
		if req.BillingAddress != nil {
			billing = *req.BillingAddress
		}

		order = models.Order{
			CustomerID:      req.CustomerID,
			CustomerName:    strings.TrimSpace(req.CustomerName),
			CustomerEmail:   models.NormalizeEmail(req.CustomerEmail),
			CustomerPhone:   strings.TrimSpace(req.CustomerPhone),
			ShippingAddress: req.ShippingAddress,
			BillingAddress:  billing,
			Subtotal:        totals.Subtotal,
			ShippingCost:    totals.ShippingCost,
			Tax:             totals.Tax,
			Discount:        totals.Discount,
			Total:           totals.Total,
			Status:          models.OrderPending,
			PaymentStatus:   paymentStatus,
			PaymentMethod:   req.PaymentMethod,
			ShippingMethod:  shippingMethod,
			UpdatedBy:       staffID,
			Items:           items,
			StatusHistory: []models.OrderStatusHistory{{
				Status:    models.OrderPending,
				Notes:     "Order created",
				UpdatedBy: staffID,
			}},
		}
		return tx.Create(&order).Error
	})
	if err != nil {
		return nil, err
	}

	for _, c := range changes {
		AnnounceLowStock(c.Product, c.Before, c.After)
	}
	PublishAsync(EventOrderCreated, order.ID.String(), map[string]interface{}{
		"order_id":     order.ID,
		"order_number": order.OrderNumber,
		"total":        order.Total,
		"items":        len(order.Items),
	})
	if order.CustomerID != nil {
		GetNotificationService().NotifyAsync(*order.CustomerID, NotificationInput{
			Title:        "Order placed",
			Message:      fmt.Sprintf("Your order %s has been placed", order.OrderNumber),
			Type:         models.NotificationOrder,
			RelatedID:    order.ID.String(),
			RelatedModel: "Order",
		})
	}
	log.Printf("[orders.create] ✅ created %s with %d items", order.OrderNumber, len(order.Items))
	return &order, nil
}

// AnnounceStatusChange notifies the customer and the assigned delivery staff, publishes
// order.status_changed and mails the customer once the order is Delivered.
func AnnounceStatusChange(change StatusChange, actor *uuid.UUID) {
	order := change.Order
	in := NotificationInput{
		Title:        "Order " + strings.ToLower(order.Status),
		Message:      fmt.Sprintf("Order %s is now %s", order.OrderNumber, order.Status),
		Type:         models.NotificationOrder,
		Priority:     models.PriorityMedium,
		RelatedID:    order.ID.String(),
		RelatedModel: "Order",
		Metadata:     map[string]interface{}{"status": order.Status, "previous_status": change.Previous},
	}

	notifier := GetNotificationService()
	if order.CustomerID != nil {
		notifier.NotifyAsync(*order.CustomerID, in)
	}
	if order.DeliveryStaffID != nil && (actor == nil || *actor != *order.DeliveryStaffID) {
		staffIn := in
		staffIn.ActionURL = "/delivery/orders/" + order.ID.String()
		notifier.NotifyAsync(*order.DeliveryStaffID, staffIn)
	}

	PublishAsync(EventOrderStatusChanged, order.ID.String(), map[string]interface{}{
		"order_id":        order.ID,
		"order_number":    order.OrderNumber,
		"status":          order.Status,
		"previous_status": change.Previous,
		"updated_by":      actor,
	})

	if order.Status == models.OrderDelivered {
		SendOrderDeliveredEmailAsync(order)
	}
}

// ════════════════════════════════════════════════════════════
// Global Instance
// ════════════════════════════════════════════════════════════

var orderService *OrderService

func GetOrderService() *OrderService {
	if orderService == nil {
		orderService = NewOrderService()
	}
	return orderService
}
