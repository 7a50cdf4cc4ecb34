package models

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

const (
	OrderPending    = "Pending"
	OrderProcessing = "Processing"
	OrderShipped    = "Shipped"
	OrderDelivered  = "Delivered"
	OrderCompleted  = "Completed"
	OrderCancelled  = "Cancelled"

	PaymentPending  = "Pending"
	PaymentPaid     = "Paid"
	PaymentFailed   = "Failed"
	PaymentRefunded = "Refunded"
)

// OrderStatuses lists every status an order may hold; transitions between them are unrestricted.
var OrderStatuses = []string{OrderPending, OrderProcessing, OrderShipped, OrderDelivered, OrderCompleted, OrderCancelled}

var PaymentStatuses = []string{PaymentPending, PaymentPaid, PaymentFailed, PaymentRefunded}

func ValidOrderStatus(s string) bool   { return contains(OrderStatuses, s) }
func ValidPaymentStatus(s string) bool { return contains(PaymentStatuses, s) }

func contains(list []string, s string) bool {
	for _, v := range list {
		if v == s {
			return true
		}
	}
	return false
}

type Address struct {
	Line1      string `json:"line1"`
	Line2      string `json:"line2"`
	City       string `json:"city"`
	State      string `json:"state"`
	PostalCode string `json:"postal_code"`
	Country    string `json:"country"`
}

// String renders the address on one line, skipping empty parts.
func (a Address) String() string {
	var parts []string
	for _, p := range []string{a.Line1, a.Line2, a.City, a.State, a.PostalCode, a.Country} {
		if strings.TrimSpace(p) != "" {
			parts = append(parts, strings.TrimSpace(p))
		}
	}
	return strings.Join(parts, ", ")
}

// Order represents a complete customer order
type Order struct {
	ID              uuid.UUID  `json:"id" gorm:"type:uuid;primaryKey"`
	OrderNumber     string     `json:"order_number" gorm:"not null;uniqueIndex"`
	CustomerID      *uuid.UUID `json:"customer_id,omitempty" gorm:"type:uuid;index"`
	CustomerName    string     `json:"customer_name" gorm:"not null"`
	CustomerEmail   string     `json:"customer_email" gorm:"index"`
	CustomerPhone   string     `json:"customer_phone"`
	ShippingAddress Address    `json:"shipping_address" gorm:"embedded;embeddedPrefix:ship_"`
	BillingAddress  Address    `json:"billing_address" gorm:"embedded;embeddedPrefix:bill_"`
	Subtotal        float64    `json:"subtotal" gorm:"type:numeric(12,2);not null;default:0"`
	ShippingCost    float64    `json:"shipping_cost" gorm:"type:numeric(12,2);not null;default:0"`
	Tax             float64    `json:"tax" gorm:"type:numeric(12,2);not null;default:0"`
	Discount        float64    `json:"discount" gorm:"type:numeric(12,2);not null;default:0"`
	Total           float64    `json:"total" gorm:"type:numeric(12,2);not null;default:0"`
	Status          string     `json:"status" gorm:"not null;default:'Pending';index"`
	PaymentStatus   string     `json:"payment_status" gorm:"not null;default:'Pending';index"`
	PaymentMethod   string     `json:"payment_method"`
	ShippingMethod  string     `json:"shipping_method" gorm:"index"`
	TrackingNumber  string     `json:"tracking_number"`
	DeliveryNotes   string     `json:"delivery_notes" gorm:"type:text"`
	DeliveryStaffID *uuid.UUID `json:"delivery_staff_id,omitempty" gorm:"type:uuid;index"`
	DeliveredAt     *time.Time `json:"delivered_at,omitempty"`
	UpdatedBy       *uuid.UUID `json:"updated_by,omitempty" gorm:"type:uuid"`
	CreatedAt       time.Time  `json:"created_at" gorm:"autoCreateTime;index"`
	UpdatedAt       time.Time  `json:"updated_at" gorm:"autoUpdateTime"`

	Items         []OrderItem          `json:"items" gorm:"foreignKey:OrderID"`
	StatusHistory []OrderStatusHistory `json:"status_history" gorm:"foreignKey:OrderID"`
}

func (o *Order) BeforeCreate(tx *gorm.DB) error {
	if o.ID == uuid.Nil {
		o.ID = uuid.Must(uuid.NewV7())
	}
	if o.OrderNumber == "" {
		o.OrderNumber = NewOrderNumber(o.ID, time.Now())
	}
	return nil
}

func (Order) TableName() string {
	return "orders"
}

// orderNumberSuffix is taken from the last six bytes of the id, which are random in a v7 uuid.
const orderNumberSuffix = 12

// NewOrderNumber formats ORD-<year>-<12 hex chars taken from the random tail of id>.
func NewOrderNumber(id uuid.UUID, at time.Time) string {
	s := strings.ReplaceAll(id.String(), "-", "")
	return fmt.Sprintf("ORD-%d-%s", at.Year(), strings.ToUpper(s[len(s)-orderNumberSuffix:]))
}

// ClaimableBy reports whether a delivery staff member may work the order: it is
// assigned to them, or unassigned and ready to ship.
func (o *Order) ClaimableBy(staffID uuid.UUID) bool {
	if o.DeliveryStaffID != nil {
		return *o.DeliveryStaffID == staffID
	}
	return o.Status == OrderProcessing || o.Status == OrderShipped
}

// OrderMatchesSearch reports whether term is a case-insensitive substring of the
// order id, order number, customer name, email or phone. An empty term matches everything.
func OrderMatchesSearch(o *Order, term string) bool {
	term = strings.ToLower(strings.TrimSpace(term))
	if term == "" {
		return true
	}
	for _, field := range []string{o.ID.String(), o.OrderNumber, o.CustomerName, o.CustomerEmail, o.CustomerPhone} {
		if strings.Contains(strings.ToLower(field), term) {
			return true
		}
	}
	return false
}

// OrderItem represents an individual product in an order
type OrderItem struct {
	ID        uuid.UUID  `json:"id" gorm:"type:uuid;primaryKey"`
	OrderID   uuid.UUID  `json:"order_id" gorm:"type:uuid;not null;index"`
	ProductID *uuid.UUID `json:"product_id,omitempty" gorm:"type:uuid;index"`
	Name      string     `json:"name" gorm:"not null"`
	Variant   string     `json:"variant"`
	Quantity  int        `json:"quantity" gorm:"not null"`
	Price     float64    `json:"price" gorm:"type:numeric(12,2);not null"`
	Image     string     `json:"image"`
}

func (i *OrderItem) BeforeCreate(tx *gorm.DB) error {
	if i.ID == uuid.Nil {
		i.ID = uuid.Must(uuid.NewV7())
	}
	return nil
}

func (OrderItem) TableName() string {
	return "order_items"
}

// OrderStatusHistory records every status change, including who made it.
type OrderStatusHistory struct {
	ID        uuid.UUID  `json:"id" gorm:"type:uuid;primaryKey"`
	OrderID   uuid.UUID  `json:"order_id" gorm:"type:uuid;not null;index"`
	Status    string     `json:"status" gorm:"not null;index"`
	Notes     string     `json:"notes"`
	UpdatedBy *uuid.UUID `json:"updated_by,omitempty" gorm:"type:uuid;index"`
	UpdatedAt time.Time  `json:"updated_at" gorm:"index"`
}

func (h *OrderStatusHistory) BeforeCreate(tx *gorm.DB) error {
	if h.ID == uuid.Nil {
		h.ID = uuid.Must(uuid.NewV7())
	}
	if h.UpdatedAt.IsZero() {
		h.UpdatedAt = time.Now().UTC()
	}
	return nil
}

func (OrderStatusHistory) TableName() string {
	return "order_status_history"
}

// ═══════════════════════════════════════════════════════════
// Request DTOs
// ═══════════════════════════════════════════════════════════

type OrderItemInput struct {
	ProductID *uuid.UUID `json:"product_id"`
	Name      string     `json:"name"`
	Variant   string     `json:"variant"`
	Quantity  int        `json:"quantity" binding:"required,min=1"`
	Price     *float64   `json:"price" binding:"omitempty,min=0"`
}

type CreateOrderRequest struct {
	CustomerID      *uuid.UUID       `json:"customer_id"`
	CustomerName    string           `json:"customer_name" binding:"required"`
	CustomerEmail   string           `json:"customer_email" binding:"omitempty,email"`
	CustomerPhone   string           `json:"customer_phone"`
	ShippingAddress Address          `json:"shipping_address"`
	BillingAddress  *Address         `json:"billing_address"`
	Items           []OrderItemInput `json:"items" binding:"required,min=1,dive"`
	ShippingMethod  string           `json:"shipping_method"`
	PaymentMethod   string           `json:"payment_method"`
	PaymentStatus   string           `json:"payment_status"`
	Discount        float64          `json:"discount" binding:"min=0"`
	TaxClass        string           `json:"tax_class"`
}

// OrderUpdate is the set of fields staff may change on an order. Nil means unchanged.
type OrderUpdate struct {
	Status          *string    `json:"status"`
	PaymentStatus   *string    `json:"payment_status"`
	TrackingNumber  *string    `json:"tracking_number"`
	DeliveryNotes   *string    `json:"delivery_notes"`
	DeliveryStaffID *uuid.UUID `json:"delivery_staff_id"`
	Notes           string     `json:"notes"`
}

// Validate returns the list of problems with the update.
func (u *OrderUpdate) Validate() []string {
	var errs []string
	if u.Status != nil && !ValidOrderStatus(*u.Status) {
		errs = append(errs, "Invalid status: "+*u.Status)
	}
	if u.PaymentStatus != nil && !ValidPaymentStatus(*u.PaymentStatus) {
		errs = append(errs, "Invalid payment status: "+*u.PaymentStatus)
	}
	return errs
}

// Empty is true when no field would change.
func (u *OrderUpdate) Empty() bool {
	return u.Status == nil && u.PaymentStatus == nil && u.TrackingNumber == nil &&
		u.DeliveryNotes == nil && u.DeliveryStaffID == nil
}

type BulkUpdateOrdersRequest struct {
	OrderIDs []uuid.UUID `json:"order_ids" binding:"required,min=1"`
	Updates  OrderUpdate `json:"updates"`
}

type BulkDeleteOrdersRequest struct {
	OrderIDs []uuid.UUID `json:"order_ids" binding:"required,min=1"`
}

// BulkResult reports which ids were affected or missing.
type BulkResult struct {
	Affected []uuid.UUID `json:"affected"`
	Missing  []uuid.UUID `json:"missing,omitempty"`
}

type DeliveryStatusRequest struct {
	Status string `json:"status" binding:"required"`
	Notes  string `json:"notes"`
}

// DeliveryStatuses are the statuses delivery staff may set.
var DeliveryStatuses = []string{OrderProcessing, OrderShipped, OrderDelivered, OrderCancelled}

func ValidDeliveryStatus(s string) bool { return contains(DeliveryStatuses, s) }

// OrderStatsResponse summarises every order plus month-over-month volume.
type OrderStatsResponse struct {
	TotalOrders                int64            `json:"total_orders"`
	CurrentMonthTotal          int64            `json:"current_month_total"`
	LastMonthTotal             int64            `json:"last_month_total"`
	ChangePercentFromLastMonth *float64         `json:"change_percent_from_last_month"`
	ByStatus                   map[string]int64 `json:"by_status"`
	ByPaymentStatus            map[string]int64 `json:"by_payment_status"`
	Revenue                    float64          `json:"revenue"`
}
