package usecase

import (
	"context"

	"github.com/shopspring/decimal"

	"github.com/iho/goportfolio/internal/domain"
)

// InvestmentUseCase reports how much money went into the portfolio.
type InvestmentUseCase struct {
	transactions TransactionProvider
	nowFunc      func() domain.Date
}

// NewInvestmentUseCase creates a new InvestmentUseCase.
func NewInvestmentUseCase(transactions TransactionProvider) *InvestmentUseCase {
	return &InvestmentUseCase{
		transactions: transactions,
		nowFunc:      domain.Today,
	}
}

// InvestmentInput represents the investment query.
type InvestmentInput struct {
	Tickers   string
	Timerange string
}

// Investment is the invested-amount report.
type Investment struct {
	Series   []domain.DataPoint
	ByTicker []domain.TickerAmount
	Total    decimal.Decimal
}

// Get computes the cumulative investment series and per-ticker totals for
// the filtered ledger.
func (uc *InvestmentUseCase) Get(ctx context.Context, input InvestmentInput) (*Investment, error) {
	all, err := uc.transactions.List(ctx)
	if err != nil {
		return nil, err
	}

	today := uc.nowFunc()
	start, end := domain.DateRangeForTimerange(input.Timerange, today)
	filtered := domain.FilterTransactions(all, input.Tickers, start, end)

	series := domain.CumulativeInvestment(filtered)

	total := decimal.Zero
	if len(series) > 0 {
		total = series[len(series)-1].Value
	}

	return &Investment{
		Series:   series,
		ByTicker: domain.InvestmentByTicker(filtered),
		Total:    total,
	}, nil
}
