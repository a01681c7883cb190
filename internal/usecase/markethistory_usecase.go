package usecase

import (
	"context"
	"sort"

	"github.com/shopspring/decimal"

	"github.com/iho/goportfolio/internal/domain"
)

// MarketHistoryUseCase serves the raw price chart for a single ticker.
type MarketHistoryUseCase struct {
	prices   PriceSource
	earliest domain.Date
	nowFunc  func() domain.Date
}

// NewMarketHistoryUseCase creates a new MarketHistoryUseCase.
func NewMarketHistoryUseCase(prices PriceSource, earliest domain.Date) *MarketHistoryUseCase {
	return &MarketHistoryUseCase{
		prices:   prices,
		earliest: earliest,
		nowFunc:  domain.Today,
	}
}

// MarketHistoryInput represents the market history query. Year takes
// precedence over Timerange; with neither set the window spans the full
// range since the ledger start.
type MarketHistoryInput struct {
	Ticker    string
	Timerange string
	Year      int
}

// MarketSeries is the close-price series for one ticker, with summary
// stats over the requested window.
type MarketSeries struct {
	Ticker    string
	Currency  string
	Points    []domain.DataPoint
	Latest    decimal.Decimal
	Change    decimal.Decimal
	ChangePct decimal.Decimal
}

// Get fetches and windows the close-price history for one ticker.
func (uc *MarketHistoryUseCase) Get(ctx context.Context, input MarketHistoryInput) (*MarketSeries, error) {
	ticker := domain.NormalizeTicker(input.Ticker)
	if ticker == "" {
		return nil, domain.ErrTickerRequired
	}

	today := uc.nowFunc()

	var (
		period     string
		start, end domain.Date
	)
	if input.Year > 0 {
		period = domain.PeriodForYear(input.Year, today)
		start, end = domain.DateRangeForYear(input.Year)
	} else {
		period = domain.PeriodForTimerange(input.Timerange, uc.earliest, today)
		start, end = domain.DateRangeForTimerange(input.Timerange, today)
		if start.IsZero() {
			start = uc.earliest
		}
	}

	history, err := uc.prices.GetHistory(ctx, ticker, period, DefaultInterval)
	if err != nil {
		return nil, err
	}

	points := make([]domain.DataPoint, 0, len(history.History))
	for _, p := range history.History {
		points = append(points, domain.DataPoint{Label: domain.FormatDate(p.Date), Value: p.Close})
	}
	// Upstream observation order is not guaranteed.
	sort.Slice(points, func(i, j int) bool { return points[i].Label < points[j].Label })

	windowed := domain.FilterDataPoints(points, start, end)

	series := &MarketSeries{
		Ticker:   ticker,
		Currency: history.Currency,
		Points:   windowed,
	}
	if len(windowed) > 0 {
		first := windowed[0].Value
		series.Latest = windowed[len(windowed)-1].Value
		series.Change = series.Latest.Sub(first)
		if !first.IsZero() {
			series.ChangePct = series.Change.Div(first).Mul(decimal.NewFromInt(100))
		}
	}

	return series, nil
}
