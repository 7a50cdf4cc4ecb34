package dashboard_controller

import (
	"testing"
	"time"
)

func TestReportRange(t *testing.T) {
	now := time.Date(2026, time.March, 15, 18, 30, 0, 0, time.UTC)
	day := func(m time.Month, d int) time.Time { return time.Date(2026, m, d, 0, 0, 0, 0, time.UTC) }

	tests := []struct {
		name           string
		from, to       string
		wantFrom, want time.Time
		wantErr        bool
	}{
		{"defaults to the last 30 days", "", "", day(time.February, 14), day(time.March, 16), false},
		{"inclusive dates", "2026-03-01", "2026-03-31", day(time.March, 1), day(time.April, 1), false},
		{"single day", "2026-03-10", "2026-03-10", day(time.March, 10), day(time.March, 11), false},
		{"to only", "", "2026-01-31", day(time.January, 2), day(time.February, 1), false},
		{"reversed", "2026-03-10", "2026-03-01", time.Time{}, time.Time{}, true},
		{"bad date", "03/01/2026", "", time.Time{}, time.Time{}, true},
		{"too long", "2024-01-01", "2026-01-01", time.Time{}, time.Time{}, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			from, to, err := reportRange(tt.from, tt.to, now)
			if tt.wantErr {
				if err == nil {
					t.Fatalf("expected an error, got %s - %s", from, to)
				}
				return
			}
			if err != nil {
				t.Fatal(err)
			}
			if !from.Equal(tt.wantFrom) || !to.Equal(tt.want) {
				t.Errorf("got %s - %s, want %s - %s", from, to, tt.wantFrom, tt.want)
			}
		})
	}
}
