package services

import (
	"context"
	"fmt"
	"math"
	"time"

	"github.com/Sarujan100/best-wishes-final-sub001/config"
	"github.com/Sarujan100/best-wishes-final-sub001/models"
	"gorm.io/gorm"
)

type RevenueSummary struct {
	Total         float64  `json:"total"`
	ThisMonth     float64  `json:"this_month"`
	LastMonth     float64  `json:"last_month"`
	GrowthPercent *float64 `json:"growth_percent"`
}

type DashboardOverview struct {
	TotalOrders           int64            `json:"total_orders"`
	OrdersByStatus        map[string]int64 `json:"orders_by_status"`
	Revenue               RevenueSummary   `json:"revenue"`
	TotalProducts         int64            `json:"total_products"`
	ProductsByStockStatus map[string]int64 `json:"products_by_stock_status"`
	ActiveStaffByRole     map[string]int64 `json:"active_staff_by_role"`
	OnlineStaff           int64            `json:"online_staff"`
	LatestOrders          []models.Order   `json:"latest_orders"`
}

type labelCount struct {
	Label string
	Count int64
}

const revenueSQL = `
	SELECT
		COALESCE(SUM(total), 0),
		COALESCE(SUM(total) FILTER (WHERE created_at >= $1), 0),
		COALESCE(SUM(total) FILTER (WHERE created_at >= $2 AND created_at < $1), 0)
	FROM orders
	WHERE status <> $3`

// revenue sums non-cancelled orders in one pgx round trip on postgres, falling back to gorm.
func revenue(ctx context.Context, monthStart, prevStart time.Time) (RevenueSummary, error) {
	var r RevenueSummary
	if config.CmsDB != nil {
		err := config.CmsDB.QueryRow(ctx, revenueSQL, monthStart, prevStart, models.OrderCancelled).
			Scan(&r.Total, &r.ThisMonth, &r.LastMonth)
		if err != nil {
			return r, fmt.Errorf("revenue aggregate: %w", err)
		}
		return r, nil
	}

	base := func() *gorm.DB {
		return config.CmsGorm.WithContext(ctx).Model(&models.Order{}).
			Where("status <> ?", models.OrderCancelled).
			Select("COALESCE(SUM(total), 0)")
	}
	if err := base().Row().Scan(&r.Total); err != nil {
		return r, fmt.Errorf("revenue total: %w", err)
	}
	if err := base().Where("created_at >= ?", monthStart).Row().Scan(&r.ThisMonth); err != nil {
		return r, fmt.Errorf("revenue this month: %w", err)
	}
	if err := base().Where("created_at >= ? AND created_at < ?", prevStart, monthStart).Row().Scan(&r.LastMonth); err != nil {
		return r, fmt.Errorf("revenue last month: %w", err)
	}
	return r, nil
}

func groupCounts(ctx context.Context, model interface{}, column string, where string, args ...interface{}) (map[string]int64, int64, error) {
	var rows []labelCount
	q := config.CmsGorm.WithContext(ctx).Model(model).Select(column + " AS label, COUNT(*) AS count")
	if where != "" {
		q = q.Where(where, args...)
	}
	if err := q.Group(column).Scan(&rows).Error; err != nil {
		return nil, 0, err
	}
	out := make(map[string]int64, len(rows))
	var total int64
	for _, r := range rows {
		out[r.Label] = r.Count
		total += r.Count
	}
	return out, total, nil
}

// BuildDashboardOverview gathers the admin landing page figures.
func BuildDashboardOverview(ctx context.Context) (*DashboardOverview, error) {
	now := time.Now().UTC()
	monthStart := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, time.UTC)
	prevStart := monthStart.AddDate(0, -1, 0)

	o := &DashboardOverview{LatestOrders: make([]models.Order, 0)}
	var err error

	if o.OrdersByStatus, o.TotalOrders, err = groupCounts(ctx, &models.Order{}, "status", ""); err != nil {
		return nil, fmt.Errorf("orders by status: %w", err)
	}
	for _, s := range models.OrderStatuses {
		if _, ok := o.OrdersByStatus[s]; !ok {
			o.OrdersByStatus[s] = 0
		}
	}

	if o.Revenue, err = revenue(ctx, monthStart, prevStart); err != nil {
		return nil, err
	}
	o.Revenue.Total = math.Round(o.Revenue.Total*100) / 100
	if o.Revenue.LastMonth > 0 {
		g := math.Round((o.Revenue.ThisMonth-o.Revenue.LastMonth)/o.Revenue.LastMonth*1000) / 10
		o.Revenue.GrowthPercent = &g
	}

	if o.ProductsByStockStatus, o.TotalProducts, err = groupCounts(ctx, &models.Product{}, "stock_status", ""); err != nil {
		return nil, fmt.Errorf("products by stock status: %w", err)
	}
	for _, s := range []string{models.StockInStock, models.StockLow, models.StockOutOfStock} {
		if _, ok := o.ProductsByStockStatus[s]; !ok {
			o.ProductsByStockStatus[s] = 0
		}
	}

	staffRoles := []string{models.RoleAdmin, models.RoleInventoryManager, models.RoleDeliveryStaff}
	if o.ActiveStaffByRole, _, err = groupCounts(ctx, &models.User{}, "role", "is_blocked = ? AND role IN ?", false, staffRoles); err != nil {
		return nil, fmt.Errorf("staff by role: %w", err)
	}
	if err := config.CmsGorm.WithContext(ctx).Model(&models.User{}).
		Where("is_blocked = ? AND role IN ? AND last_active_at >= ?", false, staffRoles, now.Add(-models.ActiveWindow)).
		Count(&o.OnlineStaff).Error; err != nil {
		return nil, fmt.Errorf("online staff: %w", err)
	}

	if err := config.CmsGorm.WithContext(ctx).
		Order("created_at DESC").
		Limit(5).
		Find(&o.LatestOrders).Error; err != nil {
		return nil, fmt.Errorf("latest orders: %w", err)
	}
	return o, nil
}
