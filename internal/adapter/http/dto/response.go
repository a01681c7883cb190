package dto

import (
	"github.com/shopspring/decimal"

	"github.com/iho/goportfolio/internal/domain"
	"github.com/iho/goportfolio/internal/usecase"
)

// ErrorResponse represents an error in API responses.
type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message,omitempty"`
}

// TransactionResponse represents a transaction in API responses.
type TransactionResponse struct {
	ID        string          `json:"id"`
	Date      domain.Date     `json:"date"`
	Ticker    string          `json:"ticker"`
	Quantity  decimal.Decimal `json:"quantity"`
	UnitPrice decimal.Decimal `json:"unit_price"`
	Fees      decimal.Decimal `json:"fees"`
	TotalCost decimal.Decimal `json:"total_cost"`
}

// TransactionFromDomain converts a domain transaction to a response.
func TransactionFromDomain(t *domain.Transaction) *TransactionResponse {
	return &TransactionResponse{
		ID:        t.ID,
		Date:      t.Date,
		Ticker:    t.Ticker,
		Quantity:  t.Quantity,
		UnitPrice: t.UnitPrice,
		Fees:      t.Fees,
		TotalCost: t.TotalCost(),
	}
}

// TransactionsFromDomain converts domain transactions to responses.
func TransactionsFromDomain(transactions []domain.Transaction) []*TransactionResponse {
	result := make([]*TransactionResponse, len(transactions))
	for i := range transactions {
		result[i] = TransactionFromDomain(&transactions[i])
	}
	return result
}

// ListTransactionsResponse wraps the full ledger.
type ListTransactionsResponse struct {
	Transactions []*TransactionResponse `json:"transactions"`
	Total        int64                  `json:"total"`
}

// YearsResponse lists the distinct ledger years.
type YearsResponse struct {
	Years []int `json:"years"`
}

// HoldingResponse represents one holdings table row.
type HoldingResponse struct {
	Ticker         string          `json:"ticker"`
	Quantity       decimal.Decimal `json:"quantity"`
	Invested       decimal.Decimal `json:"invested"`
	CurrentPrice   decimal.Decimal `json:"current_price"`
	Worth          decimal.Decimal `json:"worth"`
	Profit         decimal.Decimal `json:"profit"`
	ProfitPct      decimal.Decimal `json:"profit_pct"`
	PortfolioShare decimal.Decimal `json:"portfolio_share"`
}

// HoldingsFromDomain converts domain holdings to responses.
func HoldingsFromDomain(holdings []domain.HoldingAggregate) []HoldingResponse {
	result := make([]HoldingResponse, len(holdings))
	for i, h := range holdings {
		result[i] = HoldingResponse{
			Ticker:         h.Ticker,
			Quantity:       h.Quantity,
			Invested:       h.Invested,
			CurrentPrice:   h.CurrentPrice,
			Worth:          h.Worth,
			Profit:         h.Profit,
			ProfitPct:      h.ProfitPct,
			PortfolioShare: h.PortfolioShare,
		}
	}
	return result
}

// DashboardResponse represents the dashboard payload.
type DashboardResponse struct {
	Mode        string                `json:"mode"`
	Series      []domain.DataPoint    `json:"series"`
	PeriodDelta *decimal.Decimal      `json:"period_delta,omitempty"`
	Holdings    []HoldingResponse     `json:"holdings"`
	Tickers     []string              `json:"tickers"`
	Years       []int                 `json:"years"`
	Timeranges  []string              `json:"timeranges"`
	Errors      []usecase.TickerError `json:"errors,omitempty"`
}

// DashboardFromUseCase converts the use case payload to a response.
func DashboardFromUseCase(d *usecase.Dashboard) *DashboardResponse {
	return &DashboardResponse{
		Mode:        d.Mode.String(),
		Series:      d.Series,
		PeriodDelta: d.PeriodDelta,
		Holdings:    HoldingsFromDomain(d.Holdings),
		Tickers:     d.AllTickers,
		Years:       d.Years,
		Timeranges:  d.Timeranges,
		Errors:      d.Errors,
	}
}

// MarketHistoryResponse represents the close-price series for one ticker.
type MarketHistoryResponse struct {
	Ticker    string             `json:"ticker"`
	Currency  string             `json:"currency"`
	Points    []domain.DataPoint `json:"points"`
	Latest    decimal.Decimal    `json:"latest"`
	Change    decimal.Decimal    `json:"change"`
	ChangePct decimal.Decimal    `json:"change_pct"`
}

// MarketHistoryFromUseCase converts the use case payload to a response.
func MarketHistoryFromUseCase(s *usecase.MarketSeries) *MarketHistoryResponse {
	return &MarketHistoryResponse{
		Ticker:    s.Ticker,
		Currency:  s.Currency,
		Points:    s.Points,
		Latest:    s.Latest,
		Change:    s.Change,
		ChangePct: s.ChangePct,
	}
}

// InvestmentResponse represents the invested-amount report.
type InvestmentResponse struct {
	Series   []domain.DataPoint    `json:"series"`
	ByTicker []domain.TickerAmount `json:"by_ticker"`
	Total    decimal.Decimal       `json:"total"`
}

// InvestmentFromUseCase converts the use case payload to a response.
func InvestmentFromUseCase(inv *usecase.Investment) *InvestmentResponse {
	return &InvestmentResponse{
		Series:   inv.Series,
		ByTicker: inv.ByTicker,
		Total:    inv.Total,
	}
}
