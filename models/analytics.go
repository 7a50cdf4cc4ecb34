package models

// MonthlyRevenueData is one bar of the 12-month revenue chart.
type MonthlyRevenueData struct {
	Month       string  `json:"month"`        // Jan, Feb, ...
	MonthNumber int     `json:"month_number"` // 1-12
	Year        int     `json:"year"`
	Revenue     float64 `json:"revenue"`
	Orders      int64   `json:"orders"`
}

// TopProduct is a best seller of the current month.
type TopProduct struct {
	ProductID      string  `json:"product_id"`
	ProductName    string  `json:"product_name"`
	OrderCount     int64   `json:"order_count"` // distinct orders containing it
	SalesCount     int64   `json:"sales_count"` // units sold
	Revenue        float64 `json:"revenue"`
	RevenuePercent float64 `json:"revenue_percent"` // share of this month's item revenue
}

// ReportEmailRequest asks for the sales report of a date range to be mailed.
// Dates are YYYY-MM-DD and inclusive; without them the last 30 days are reported.
type ReportEmailRequest struct {
	Email string `json:"email" binding:"required,email" example:"owner@bestwishes.lk"`
	From  string `json:"from" example:"2026-03-01"`
	To    string `json:"to" example:"2026-03-31"`
}
