package services

import (
	"errors"
	"fmt"
	"strings"

	"github.com/Sarujan100/best-wishes-final-sub001/models"
	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

var ErrInsufficientStock = errors.New("insufficient stock")

// StockShortage describes one line that could not be fulfilled.
type StockShortage struct {
	ProductID uuid.UUID `json:"product_id"`
	Name      string    `json:"name"`
	Requested int       `json:"requested"`
	Available int       `json:"available"`
}

// InsufficientStockError lists every short line; errors.Is matches ErrInsufficientStock.
type InsufficientStockError struct {
	Items []StockShortage
}

func (e *InsufficientStockError) Error() string {
	names := make([]string, 0, len(e.Items))
	for _, it := range e.Items {
		names = append(names, fmt.Sprintf("%s (requested %d, available %d)", it.Name, it.Requested, it.Available))
	}
	return "insufficient stock: " + strings.Join(names, ", ")
}

func (e *InsufficientStockError) Is(target error) bool {
	return target == ErrInsufficientStock
}

// StockChange is the before/after of one product touched by a reservation.
type StockChange struct {
	Product models.Product
	Before  int
	After   int
}

// BecameLow is true when the change moved stock into low-stock or out-of-stock.
func (c StockChange) BecameLow() bool {
	return StockBecameLow(c.Before, c.After)
}

// StockBecameLow reports a move from a healthier stock status into low or out of stock.
func StockBecameLow(before, after int) bool {
	if after >= before {
		return false
	}
	was := models.StockStatusFromQuantity(before)
	now := models.StockStatusFromQuantity(after)
	return was != now && now != models.StockInStock
}

// ReserveStock decrements stock for every requested product inside tx. Rows are
// locked; when any line is short nothing is written and *InsufficientStockError is returned.
// Quantities for the same product are summed.
func ReserveStock(tx *gorm.DB, wanted map[uuid.UUID]int) ([]StockChange, error) {
	if len(wanted) == 0 {
		return nil, nil
	}

	ids := make([]uuid.UUID, 0, len(wanted))
	for id := range wanted {
		ids = append(ids, id)
	}

	var products []models.Product
	if err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
		Where("id IN ?", ids).
		Order("id").
		Find(&products).Error; err != nil {
		return nil, fmt.Errorf("lock products: %w", err)
	}

	found := make(map[uuid.UUID]models.Product, len(products))
	for _, p := range products {
		found[p.ID] = p
	}

	var short []StockShortage
	for _, id := range ids {
		p, ok := found[id]
		if !ok {
			short = append(short, StockShortage{ProductID: id, Name: id.String(), Requested: wanted[id]})
			continue
		}
		if p.Stock < wanted[id] {
			short = append(short, StockShortage{ProductID: id, Name: p.Name, Requested: wanted[id], Available: p.Stock})
		}
	}
	if len(short) > 0 {
		return nil, &InsufficientStockError{Items: short}
	}

	changes := make([]StockChange, 0, len(products))
	for _, p := range products {
		after := p.Stock - wanted[p.ID]
		if err := tx.Model(&models.Product{}).
			Where("id = ?", p.ID).
			UpdateColumns(map[string]interface{}{
				"stock":        after,
				"stock_status": models.StockStatusFromQuantity(after),
			}).Error; err != nil {
			return nil, fmt.Errorf("update stock of %s: %w", p.ID, err)
		}
		changes = append(changes, StockChange{Product: p, Before: p.Stock, After: after})
	}
	return changes, nil
}

// AnnounceLowStock notifies inventory staff and publishes product.stock_low for a product
// whose stock just dropped into low or out of stock.
func AnnounceLowStock(p models.Product, before, after int) {
	if !StockBecameLow(before, after) {
		return
	}

	status := models.StockStatusFromQuantity(after)
	priority := models.PriorityMedium
	title := "Low stock"
	if status == models.StockOutOfStock {
		priority = models.PriorityHigh
		title = "Out of stock"
	}

	GetNotificationService().NotifyRolesAsync(
		[]string{models.RoleInventoryManager, models.RoleAdmin},
		NotificationInput{
			Title:        title,
			Message:      fmt.Sprintf("%s (%s) has %d left in stock", p.Name, p.SKU, after),
			Type:         models.NotificationInventory,
			Priority:     priority,
			RelatedID:    p.ID.String(),
			RelatedModel: "Product",
			ActionURL:    "/products/" + p.ID.String(),
			Metadata:     map[string]interface{}{"stock": after, "stock_status": status, "sku": p.SKU},
		},
	)

	PublishAsync(EventProductStockLow, p.ID.String(), map[string]interface{}{
		"product_id":   p.ID,
		"sku":          p.SKU,
		"name":         p.Name,
		"stock":        after,
		"stock_status": status,
	})
}
