package domain

import (
	"testing"

	"github.com/shopspring/decimal"
)

func TestBuildHoldings(t *testing.T) {
	transactions := []Transaction{
		buy("AAPL", "2024-06-06", 10, 100),
		buy("MSFT", "2024-06-06", 5, 200),
	}
	prices := []PricePoint{
		price("AAPL", "2024-06-06", 100),
		price("AAPL", "2024-06-07", 120), // latest close wins
		price("MSFT", "2024-06-07", 160),
	}

	got := BuildHoldings([]string{"AAPL", "MSFT"}, transactions, prices)
	if len(got) != 2 {
		t.Fatalf("got %d rows, want 2", len(got))
	}

	aapl := got[0]
	if aapl.Ticker != "AAPL" {
		t.Fatalf("first row ticker = %q", aapl.Ticker)
	}
	if !aapl.Quantity.Equal(decimal.NewFromInt(10)) {
		t.Errorf("quantity = %s", aapl.Quantity)
	}
	if !aapl.Invested.Equal(decimal.NewFromInt(1000)) {
		t.Errorf("invested = %s", aapl.Invested)
	}
	if !aapl.CurrentPrice.Equal(decimal.NewFromInt(120)) {
		t.Errorf("current price = %s, want the latest close", aapl.CurrentPrice)
	}
	if !aapl.Worth.Equal(decimal.NewFromInt(1200)) {
		t.Errorf("worth = %s", aapl.Worth)
	}
	if !aapl.Profit.Equal(decimal.NewFromInt(200)) {
		t.Errorf("profit = %s", aapl.Profit)
	}
	if !aapl.ProfitPct.Equal(decimal.NewFromFloat(0.2)) {
		t.Errorf("profit pct = %s, want 0.2", aapl.ProfitPct)
	}

	// AAPL worth 1200 of 2000 total.
	if !aapl.PortfolioShare.Equal(decimal.NewFromFloat(0.6)) {
		t.Errorf("portfolio share = %s, want 0.6", aapl.PortfolioShare)
	}
}

func TestBuildHoldings_NoPriceData(t *testing.T) {
	transactions := []Transaction{buy("XYZ", "2024-06-06", 10, 50)}

	got := BuildHoldings([]string{"XYZ"}, transactions, nil)
	if len(got) != 1 {
		t.Fatalf("got %d rows, want 1", len(got))
	}
	row := got[0]
	if !row.CurrentPrice.IsZero() || !row.Worth.IsZero() {
		t.Errorf("price/worth should be zero without observations: %+v", row)
	}
	if !row.Profit.Equal(decimal.NewFromInt(-500)) {
		t.Errorf("profit = %s, want -500", row.Profit)
	}
	if !row.PortfolioShare.IsZero() {
		t.Errorf("share should be zero when total worth is zero, got %s", row.PortfolioShare)
	}
}

func TestBuildHoldings_ZeroInvestedGuard(t *testing.T) {
	// A fully sold position has zero invested; the profit ratio degrades to
	// zero instead of dividing by it.
	transactions := []Transaction{
		buy("AAPL", "2024-06-06", 10, 100),
		buy("AAPL", "2024-06-07", -10, 100),
	}
	prices := []PricePoint{price("AAPL", "2024-06-07", 100)}

	got := BuildHoldings([]string{"AAPL"}, transactions, prices)
	if len(got) != 1 {
		t.Fatalf("got %d rows, want 1", len(got))
	}
	if !got[0].ProfitPct.IsZero() {
		t.Errorf("profit pct = %s, want 0", got[0].ProfitPct)
	}
}
