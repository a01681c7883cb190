package domain

import (
	"testing"

	"github.com/shopspring/decimal"
)

func points(values ...int64) []DataPoint {
	out := make([]DataPoint, len(values))
	for i, v := range values {
		out[i] = DataPoint{Label: FormatDate(NewDate(2024, 6, 1).AddDays(i)), Value: decimal.NewFromInt(v)}
	}
	return out
}

func TestNormalizeToZero(t *testing.T) {
	got := NormalizeToZero(points(50, 70, 40))

	want := []int64{0, 20, -10}
	for i, w := range want {
		if !got[i].Value.Equal(decimal.NewFromInt(w)) {
			t.Errorf("point %d = %s, want %d", i, got[i].Value, w)
		}
	}

	if got := NormalizeToZero(nil); len(got) != 0 {
		t.Errorf("empty input should stay empty")
	}
}

func TestPeriodDelta(t *testing.T) {
	series := points(100, 150, 130)

	if got := PeriodDelta(series, ModeValue); got == nil || !got.Equal(decimal.NewFromInt(30)) {
		t.Errorf("value delta = %v, want 30", got)
	}
	if got := PeriodDelta(series, ModeProfit); got == nil || !got.Equal(decimal.NewFromInt(130)) {
		t.Errorf("profit delta = %v, want 130", got)
	}
	if got := PeriodDelta(nil, ModeValue); got != nil {
		t.Errorf("empty series delta = %v, want nil", got)
	}
}

func TestCumulativeInvestment(t *testing.T) {
	transactions := []Transaction{
		buy("AAPL", "2024-06-07", 5, 100),
		buy("MSFT", "2024-06-06", 2, 200),
		buy("AAPL", "2024-06-06", 1, 100),
	}

	got := CumulativeInvestment(transactions)
	if len(got) != 2 {
		t.Fatalf("got %d points, want 2", len(got))
	}
	if got[0].Label != "2024-06-06" || !got[0].Value.Equal(decimal.NewFromInt(500)) {
		t.Errorf("first point = %s %s", got[0].Label, got[0].Value)
	}
	if got[1].Label != "2024-06-07" || !got[1].Value.Equal(decimal.NewFromInt(1000)) {
		t.Errorf("second point = %s %s", got[1].Label, got[1].Value)
	}
}

func TestInvestmentByTicker(t *testing.T) {
	transactions := []Transaction{
		buy("msft", "2024-06-06", 2, 200),
		buy("AAPL", "2024-06-06", 1, 100),
		buy("MSFT", "2024-06-07", 1, 200),
	}

	got := InvestmentByTicker(transactions)
	if len(got) != 2 {
		t.Fatalf("got %d entries, want 2", len(got))
	}
	if got[0].Ticker != "AAPL" || !got[0].Amount.Equal(decimal.NewFromInt(100)) {
		t.Errorf("first = %+v", got[0])
	}
	if got[1].Ticker != "MSFT" || !got[1].Amount.Equal(decimal.NewFromInt(600)) {
		t.Errorf("second = %+v", got[1])
	}
}
