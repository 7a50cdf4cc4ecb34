package services

import (
	"context"
	"fmt"
	"log"
	"math"
	"sort"
	"time"

	"github.com/Sarujan100/best-wishes-final-sub001/config"
	"github.com/Sarujan100/best-wishes-final-sub001/models"
	"github.com/johnfercher/maroto/pkg/consts"
	"github.com/johnfercher/maroto/pkg/pdf"
	"github.com/johnfercher/maroto/pkg/props"
	"gorm.io/gorm"
)

const reportTopProducts = 5

// AnalyticsReport summarises sales between From (inclusive) and To (exclusive).
type AnalyticsReport struct {
	From           time.Time           `json:"from"`
	To             time.Time           `json:"to"`
	GeneratedAt    time.Time           `json:"generated_at"`
	Orders         int64               `json:"orders"`
	Revenue        float64             `json:"revenue"`
	AverageOrder   float64             `json:"average_order"`
	ItemsSold      int64               `json:"items_sold"`
	OrdersByStatus map[string]int64    `json:"orders_by_status"`
	TopProducts    []models.TopProduct `json:"top_products"`
}

// TopProducts ranks products by item revenue of non-cancelled orders created in [from, to).
func TopProducts(ctx context.Context, from, to time.Time, limit int) ([]models.TopProduct, error) {
	base := func() *gorm.DB {
		return config.CmsGorm.WithContext(ctx).
			Table("order_items AS oi").
			Joins("JOIN orders o ON o.id = oi.order_id").
			Where("o.status <> ? AND o.created_at >= ? AND o.created_at < ? AND oi.product_id IS NOT NULL", models.OrderCancelled, from, to)
	}

	var totalRevenue float64
	if err := base().
		Select("COALESCE(SUM(oi.price * oi.quantity), 0)").
		Scan(&totalRevenue).Error; err != nil {
		return nil, fmt.Errorf("item revenue: %w", err)
	}

	top := make([]models.TopProduct, 0, limit)
	if err := base().
		Select(`CAST(oi.product_id AS TEXT) AS product_id,
			MAX(oi.name) AS product_name,
			COUNT(DISTINCT oi.order_id) AS order_count,
			SUM(oi.quantity) AS sales_count,
			SUM(oi.price * oi.quantity) AS revenue`).
		Group("oi.product_id").
		Order("revenue DESC").
		Limit(limit).
		Scan(&top).Error; err != nil {
		return nil, fmt.Errorf("top products: %w", err)
	}

	for i := range top {
		if totalRevenue > 0 {
			top[i].RevenuePercent = top[i].Revenue / totalRevenue * 100
		}
	}
	return top, nil
}

// BuildAnalyticsReport gathers the figures of the emailed sales report.
func BuildAnalyticsReport(ctx context.Context, from, to time.Time) (*AnalyticsReport, error) {
	r := &AnalyticsReport{From: from, To: to, GeneratedAt: time.Now().UTC()}
	var err error

	inRange := "created_at >= ? AND created_at < ?"
	if r.OrdersByStatus, _, err = groupCounts(ctx, &models.Order{}, "status", inRange, from, to); err != nil {
		return nil, fmt.Errorf("orders by status: %w", err)
	}
	for status, n := range r.OrdersByStatus {
		if status != models.OrderCancelled {
			r.Orders += n
		}
	}

	if err := config.CmsGorm.WithContext(ctx).Model(&models.Order{}).
		Select("COALESCE(SUM(total), 0)").
		Where(inRange+" AND status <> ?", from, to, models.OrderCancelled).
		Row().Scan(&r.Revenue); err != nil {
		return nil, fmt.Errorf("revenue: %w", err)
	}
	r.Revenue = math.Round(r.Revenue*100) / 100
	if r.Orders > 0 {
		r.AverageOrder = math.Round(r.Revenue/float64(r.Orders)*100) / 100
	}

	if err := config.CmsGorm.WithContext(ctx).
		Table("order_items AS oi").
		Joins("JOIN orders o ON o.id = oi.order_id").
		Where("o.status <> ? AND o.created_at >= ? AND o.created_at < ?", models.OrderCancelled, from, to).
		Select("COALESCE(SUM(oi.quantity), 0)").
		Row().Scan(&r.ItemsSold); err != nil {
		return nil, fmt.Errorf("items sold: %w", err)
	}

	if r.TopProducts, err = TopProducts(ctx, from, to, reportTopProducts); err != nil {
		return nil, err
	}
	return r, nil
}

// Period renders the report range as inclusive dates.
func (r *AnalyticsReport) Period() string {
	return r.From.Format("Jan 02, 2006") + " - " + r.To.Add(-time.Nanosecond).Format("Jan 02, 2006")
}

// GenerateAnalyticsReportPDF renders the report on one A4 page.
func GenerateAnalyticsReportPDF(r *AnalyticsReport) ([]byte, error) {
	m := pdf.NewMaroto(consts.Portrait, consts.A4)
	m.SetPageMargins(20, 20, 20)

	heading := props.Text{Size: 8, Style: consts.Bold, Color: invoiceDark}
	muted := props.Text{Size: 9, Color: invoiceMuted}
	right := func(p props.Text) props.Text { p.Align = consts.Right; return p }

	m.Row(15, func() {
		m.Col(12, func() {
			m.Text("SALES REPORT", props.Text{Size: 24, Style: consts.Bold, Color: invoiceDark})
		})
	})
	m.Row(6, func() {
		m.Col(12, func() {
			m.Text(r.Period(), muted)
		})
	})
	m.Row(8, func() {})

	summary := [][2]string{
		{"Orders", fmt.Sprintf("%d", r.Orders)},
		{"Revenue", money(r.Revenue)},
		{"Average order", money(r.AverageOrder)},
		{"Items sold", fmt.Sprintf("%d", r.ItemsSold)},
	}
	for _, row := range summary {
		label, value := row[0], row[1]
		m.Row(6, func() {
			m.Col(8, func() {
				m.Text(label, muted)
			})
			m.Col(4, func() {
				m.Text(value, right(props.Text{Size: 10, Style: consts.Bold, Color: invoiceDark}))
			})
		})
	}

	m.Row(8, func() {})
	m.Row(6, func() {
		m.Col(12, func() {
			m.Text("ORDERS BY STATUS", heading)
		})
	})
	statuses := make([]string, 0, len(r.OrdersByStatus))
	for s := range r.OrdersByStatus {
		statuses = append(statuses, s)
	}
	sort.Strings(statuses)
	for _, s := range statuses {
		status, n := s, r.OrdersByStatus[s]
		m.Row(5, func() {
			m.Col(8, func() {
				m.Text(status, muted)
			})
			m.Col(4, func() {
				m.Text(fmt.Sprintf("%d", n), right(muted))
			})
		})
	}

	if len(r.TopProducts) > 0 {
		m.Row(8, func() {})
		m.Row(6, func() {
			m.Col(6, func() {
				m.Text("TOP PRODUCTS", heading)
			})
			m.Col(2, func() {
				m.Text("Units", right(heading))
			})
			m.Col(2, func() {
				m.Text("Revenue", right(heading))
			})
			m.Col(2, func() {
				m.Text("Share", right(heading))
			})
		})
		for _, p := range r.TopProducts {
			p := p
			m.Row(6, func() {
				m.Col(6, func() {
					m.Text(p.ProductName, props.Text{Size: 9, Color: invoiceDark})
				})
				m.Col(2, func() {
					m.Text(fmt.Sprintf("%d", p.SalesCount), right(muted))
				})
				m.Col(2, func() {
					m.Text(money(p.Revenue), right(muted))
				})
				m.Col(2, func() {
					m.Text(fmt.Sprintf("%.1f%%", p.RevenuePercent), right(muted))
				})
			})
		}
	}

	m.Row(12, func() {})
	m.Row(5, func() {
		m.Col(12, func() {
			m.Text("Generated "+r.GeneratedAt.Format(time.RFC1123), props.Text{Size: 8, Color: invoiceMuted})
		})
	})

	buf, err := m.Output()
	if err != nil {
		log.Printf("[report.pdf] failed to generate report for %s: %v", r.Period(), err)
		return nil, fmt.Errorf("generate report pdf: %w", err)
	}
	return buf.Bytes(), nil
}
