package dto

import (
	"testing"

	"github.com/shopspring/decimal"

	"github.com/iho/goportfolio/internal/domain"
)

func TestAddTransactionRequestToUseCaseInput(t *testing.T) {
	req := AddTransactionRequest{
		Date:      "2024-06-06",
		Ticker:    "aapl",
		Quantity:  "10",
		UnitPrice: "1.500,55",
		Fees:      "2,5",
	}

	input := req.ToUseCaseInput()

	if !input.Date.Equal(domain.ParseDate("2024-06-06")) {
		t.Fatalf("date = %v", input.Date)
	}
	if input.Ticker != "aapl" {
		t.Fatalf("ticker should pass through unnormalized, got %q", input.Ticker)
	}
	if !input.UnitPrice.Equal(decimal.RequireFromString("1500.55")) {
		t.Fatalf("unit price = %s", input.UnitPrice)
	}
	if !input.Fees.Equal(decimal.RequireFromString("2.5")) {
		t.Fatalf("fees = %s", input.Fees)
	}
}

func TestAddTransactionRequestUnparseableValues(t *testing.T) {
	req := AddTransactionRequest{
		Date:      "not-a-date",
		Ticker:    "AAPL",
		Quantity:  "garbage",
		UnitPrice: "",
	}

	input := req.ToUseCaseInput()

	if !input.Date.IsZero() {
		t.Fatalf("unparseable date should be the sentinel, got %v", input.Date)
	}
	if !input.Quantity.IsZero() || !input.UnitPrice.IsZero() {
		t.Fatalf("unparseable values should degrade to zero: %s %s", input.Quantity, input.UnitPrice)
	}
}
