package dto

import (
	"github.com/iho/goportfolio/internal/domain"
	"github.com/iho/goportfolio/internal/usecase"
)

// AddTransactionRequest represents a request to record a transaction.
// Numeric fields arrive as text: clients have historically sent values in
// both dot-decimal and comma-decimal form, so parsing is locale tolerant.
type AddTransactionRequest struct {
	Date      string `json:"date"`
	Ticker    string `json:"ticker"`
	Quantity  string `json:"quantity"`
	UnitPrice string `json:"unit_price"`
	Fees      string `json:"fees"`
}

// ToUseCaseInput converts to use case input.
func (r *AddTransactionRequest) ToUseCaseInput() usecase.AddTransactionInput {
	return usecase.AddTransactionInput{
		Date:      domain.ParseDate(r.Date),
		Ticker:    r.Ticker,
		Quantity:  domain.ParseDecimal(r.Quantity),
		UnitPrice: domain.ParseDecimal(r.UnitPrice),
		Fees:      domain.ParseDecimal(r.Fees),
	}
}

// DashboardRequest represents the dashboard query parameters.
type DashboardRequest struct {
	Mode      string
	Tickers   string
	Timerange string
	Year      int
}

// ToUseCaseInput converts to use case input.
func (r *DashboardRequest) ToUseCaseInput() usecase.DashboardInput {
	return usecase.DashboardInput{
		Mode:      r.Mode,
		Tickers:   r.Tickers,
		Timerange: r.Timerange,
		Year:      r.Year,
	}
}
