package usecase

import (
	"testing"
	"time"

	"github.com/Gunvolt24/wb_shop/internal/domain"
)

func TestChangePercent(t *testing.T) {
	cases := []struct {
		this, last int64
		want       float64
	}{
		{150, 100, 150},
		{50, 100, 50},
		{100, 100, 100},
		{0, 100, 0},
		// Нулевая база — рост «в разах ста», как в исходном поведении.
		{3, 0, 300},
		{0, 0, 0},
		{1, 3, 33.33},
	}
	for _, c := range cases {
		if got := changePercent(c.this, c.last); got != c.want {
			t.Fatalf("changePercent(%d, %d): got %v, want %v", c.this, c.last, got, c.want)
		}
	}
}

func TestMonthlyCounts(t *testing.T) {
	now := time.Date(2026, time.August, 15, 12, 0, 0, 0, time.UTC)

	times := []time.Time{
		now,                                // текущий месяц
		now.AddDate(0, -1, 0),              // прошлый
		now.AddDate(0, -1, 0),              // прошлый
		now.AddDate(0, -5, 0),              // край окна
		now.AddDate(0, -6, 0),              // за окном
		time.Date(2027, 1, 1, 0, 0, 0, 0, time.UTC), // будущее — игнор
	}

	got := monthlyCounts(times, now, 6)
	want := []int64{1, 0, 0, 0, 2, 1}
	if len(got) != len(want) {
		t.Fatalf("length: got %d", len(got))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("monthlyCounts: got %v, want %v", got, want)
		}
	}
}

func TestMonthlyOrderSums(t *testing.T) {
	now := time.Date(2026, time.August, 15, 12, 0, 0, 0, time.UTC)

	points := []domain.OrderPoint{
		{CreatedAt: now, Total: 100, Discount: 10},
		{CreatedAt: now, Total: 50, Discount: 5},
		{CreatedAt: now.AddDate(0, -2, 0), Total: 200, Discount: 20},
	}

	totals := monthlyOrderSums(points, now, 6, func(p domain.OrderPoint) int64 { return p.Total })
	if totals[5] != 150 || totals[3] != 200 {
		t.Fatalf("totals: %v", totals)
	}

	discounts := monthlyOrderSums(points, now, 6, func(p domain.OrderPoint) int64 { return p.Discount })
	if discounts[5] != 15 || discounts[3] != 20 {
		t.Fatalf("discounts: %v", discounts)
	}
}

func TestMonthDiff_AcrossYearBoundary(t *testing.T) {
	now := time.Date(2026, time.January, 10, 0, 0, 0, 0, time.UTC)
	past := time.Date(2025, time.November, 25, 0, 0, 0, 0, time.UTC)
	if got := monthDiff(now, past); got != 2 {
		t.Fatalf("monthDiff: got %d, want 2", got)
	}
}

func TestMonthStart(t *testing.T) {
	now := time.Date(2026, time.March, 20, 15, 30, 0, 0, time.UTC)

	if got := monthStart(now, 0); !got.Equal(time.Date(2026, time.March, 1, 0, 0, 0, 0, time.UTC)) {
		t.Fatalf("monthStart(0): %v", got)
	}
	if got := monthStart(now, -1); !got.Equal(time.Date(2026, time.February, 1, 0, 0, 0, 0, time.UTC)) {
		t.Fatalf("monthStart(-1): %v", got)
	}
}

func TestCountSinceAndBetween(t *testing.T) {
	base := time.Date(2026, time.June, 1, 0, 0, 0, 0, time.UTC)
	times := []time.Time{
		base.AddDate(0, 0, -10),
		base,
		base.AddDate(0, 0, 10),
	}

	if got := countSince(times, base); got != 2 {
		t.Fatalf("countSince: got %d, want 2", got)
	}
	if got := countBetween(times, base.AddDate(0, -1, 0), base); got != 1 {
		t.Fatalf("countBetween: got %d, want 1", got)
	}
}
