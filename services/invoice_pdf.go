package services

import (
	"fmt"
	"log"

	"github.com/Sarujan100/best-wishes-final-sub001/models"
	"github.com/johnfercher/maroto/pkg/color"
	"github.com/johnfercher/maroto/pkg/consts"
	"github.com/johnfercher/maroto/pkg/pdf"
	"github.com/johnfercher/maroto/pkg/props"
)

var (
	invoiceDark  = color.Color{Red: 38, Green: 38, Blue: 34}
	invoiceMuted = color.Color{Red: 121, Green: 119, Blue: 109}
)

func money(v float64) string {
	return fmt.Sprintf("Rs. %.2f", v)
}

// GenerateInvoicePDF renders the order as an A4 invoice. Items must be preloaded.
func GenerateInvoicePDF(order *models.Order) ([]byte, error) {
	m := pdf.NewMaroto(consts.Portrait, consts.A4)
	m.SetPageMargins(20, 20, 20)

	m.Row(15, func() {
		m.Col(12, func() {
			m.Text("INVOICE", props.Text{Size: 24, Style: consts.Bold, Color: invoiceDark})
		})
	})
	m.Row(10, func() {
		m.Col(12, func() {
			m.Text("BEST WISHES", props.Text{Size: 16, Style: consts.Bold, Color: invoiceDark})
		})
	})
	m.Row(5, func() {
		m.Col(12, func() {
			m.Text("Gifts, rentals and decorations", props.Text{Size: 9, Color: invoiceMuted})
		})
	})

	m.Row(8, func() {})

	// Billing
	m.Row(5, func() {
		m.Col(6, func() {
			m.Text("BILL TO", props.Text{Size: 8, Style: consts.Bold, Color: invoiceDark})
		})
		m.Col(6, func() {
			m.Text("INVOICE DETAILS", props.Text{Size: 8, Style: consts.Bold, Color: invoiceDark, Align: consts.Right})
		})
	})
	billing := order.BillingAddress
	if billing.String() == "" {
		billing = order.ShippingAddress
	}
	left := []string{order.CustomerName, order.CustomerEmail, order.CustomerPhone, billing.String()}
	right := []string{
		fmt.Sprintf("Invoice #%s", order.OrderNumber),
		fmt.Sprintf("Date: %s", order.CreatedAt.Format("Jan 02, 2006")),
		fmt.Sprintf("Status: %s / %s", order.Status, order.PaymentStatus),
		"",
	}
	for i := range left {
		l, r := left[i], right[i]
		if l == "" && r == "" {
			continue
		}
		m.Row(5, func() {
			m.Col(6, func() {
				m.Text(l, props.Text{Size: 9, Color: invoiceMuted})
			})
			m.Col(6, func() {
				m.Text(r, props.Text{Size: 9, Color: invoiceMuted, Align: consts.Right})
			})
		})
	}

	m.Row(8, func() {})

	// Items
	m.Row(6, func() {
		m.Col(6, func() {
			m.Text("Description", props.Text{Size: 8, Style: consts.Bold, Color: invoiceDark})
		})
		m.Col(2, func() {
			m.Text("Qty", props.Text{Size: 8, Style: consts.Bold, Color: invoiceDark, Align: consts.Right})
		})
		m.Col(2, func() {
			m.Text("Price", props.Text{Size: 8, Style: consts.Bold, Color: invoiceDark, Align: consts.Right})
		})
		m.Col(2, func() {
			m.Text("Total", props.Text{Size: 8, Style: consts.Bold, Color: invoiceDark, Align: consts.Right})
		})
	})
	for _, item := range order.Items {
		name := item.Name
		if item.Variant != "" {
			name = fmt.Sprintf("%s (%s)", item.Name, item.Variant)
		}
		qty := item.Quantity
		price := item.Price
		m.Row(6, func() {
			m.Col(6, func() {
				m.Text(name, props.Text{Size: 9, Color: invoiceDark})
			})
			m.Col(2, func() {
				m.Text(fmt.Sprintf("%d", qty), props.Text{Size: 9, Color: invoiceDark, Align: consts.Right})
			})
			m.Col(2, func() {
				m.Text(money(price), props.Text{Size: 9, Color: invoiceDark, Align: consts.Right})
			})
			m.Col(2, func() {
				m.Text(money(price*float64(qty)), props.Text{Size: 9, Color: invoiceDark, Align: consts.Right})
			})
		})
	}

	m.Row(8, func() {})

	// Totals
	totals := [][2]string{
		{"Subtotal", money(order.Subtotal)},
		{"Shipping", money(order.ShippingCost)},
		{"Tax", money(order.Tax)},
	}
	if order.Discount > 0 {
		totals = append(totals, [2]string{"Discount", "-" + money(order.Discount)})
	}
	for _, t := range totals {
		label, value := t[0], t[1]
		m.Row(5, func() {
			m.Col(8, func() {})
			m.Col(2, func() {
				m.Text(label, props.Text{Size: 9, Color: invoiceMuted})
			})
			m.Col(2, func() {
				m.Text(value, props.Text{Size: 9, Color: invoiceDark, Align: consts.Right})
			})
		})
	}
	m.Row(8, func() {
		m.Col(8, func() {})
		m.Col(2, func() {
			m.Text("Total", props.Text{Size: 10, Style: consts.Bold, Color: invoiceDark})
		})
		m.Col(2, func() {
			m.Text(money(order.Total), props.Text{Size: 10, Style: consts.Bold, Color: invoiceDark, Align: consts.Right})
		})
	})

	m.Row(12, func() {})
	m.Row(5, func() {
		m.Col(12, func() {
			m.Text("Thank you for shopping with Best Wishes!", props.Text{Size: 9, Style: consts.Bold, Color: invoiceDark})
		})
	})

	buf, err := m.Output()
	if err != nil {
		log.Printf("[invoice.pdf] failed to generate PDF for %s: %v", order.OrderNumber, err)
		return nil, fmt.Errorf("generate invoice pdf: %w", err)
	}
	return buf.Bytes(), nil
}
