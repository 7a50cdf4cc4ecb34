package dashboard_controller

import (
	"testing"
	"time"
)

func TestMonthlyRevenueBuckets(t *testing.T) {
	now := time.Date(2026, time.March, 15, 12, 0, 0, 0, time.UTC)
	rows := []revenueRow{
		{CreatedAt: time.Date(2026, time.March, 1, 9, 0, 0, 0, time.UTC), Total: 100},
		{CreatedAt: time.Date(2026, time.March, 14, 9, 0, 0, 0, time.UTC), Total: 50.5},
		{CreatedAt: time.Date(2025, time.December, 31, 23, 0, 0, 0, time.UTC), Total: 20},
		{CreatedAt: time.Date(2025, time.April, 2, 0, 0, 0, 0, time.UTC), Total: 7},
		{CreatedAt: time.Date(2025, time.March, 31, 0, 0, 0, 0, time.UTC), Total: 999},
	}

	months := monthlyRevenue(rows, now)
	if len(months) != 12 {
		t.Fatalf("want 12 months, got %d", len(months))
	}

	first, last := months[0], months[11]
	if first.Month != "Apr" || first.Year != 2025 || first.Revenue != 7 || first.Orders != 1 {
		t.Errorf("first = %+v", first)
	}
	if last.Month != "Mar" || last.Year != 2026 || last.Revenue != 150.5 || last.Orders != 2 {
		t.Errorf("last = %+v", last)
	}

	dec := months[8]
	if dec.MonthNumber != 12 || dec.Revenue != 20 {
		t.Errorf("december = %+v", dec)
	}

	empty := months[5]
	if empty.Revenue != 0 || empty.Orders != 0 {
		t.Errorf("months without orders stay at zero: %+v", empty)
	}
}
