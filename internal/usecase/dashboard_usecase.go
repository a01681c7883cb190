package usecase

import (
	"context"
	"sort"
	"sync"

	"github.com/shopspring/decimal"

	"github.com/iho/goportfolio/internal/domain"
)

// DashboardUseCase assembles the portfolio valuation dashboard.
type DashboardUseCase struct {
	transactions TransactionProvider
	prices       PriceSource
	earliest     domain.Date
	nowFunc      func() domain.Date
}

// NewDashboardUseCase creates a new DashboardUseCase. earliest is the date
// the ledger is known to start at, used when a filter leaves no
// transactions to anchor the price window on.
func NewDashboardUseCase(transactions TransactionProvider, prices PriceSource, earliest domain.Date) *DashboardUseCase {
	return &DashboardUseCase{
		transactions: transactions,
		prices:       prices,
		earliest:     earliest,
		nowFunc:      domain.Today,
	}
}

// DashboardInput represents the dashboard query. Year zero means no year
// filter; a positive year takes precedence over the timerange.
type DashboardInput struct {
	Mode      string
	Tickers   string
	Timerange string
	Year      int
}

// TickerError reports a ticker whose price history could not be fetched.
type TickerError struct {
	Ticker  string `json:"ticker"`
	Message string `json:"message"`
}

// Dashboard is the assembled dashboard payload.
type Dashboard struct {
	Mode        domain.ChartMode
	Series      []domain.DataPoint
	PeriodDelta *decimal.Decimal
	Holdings    []domain.HoldingAggregate
	AllTickers  []string
	Years       []int
	Timeranges  []string
	Errors      []TickerError
}

// Build computes the dashboard for one query. Price fetches run per ticker;
// a failed ticker degrades to a partial result reported in Errors rather
// than failing the whole dashboard.
func (uc *DashboardUseCase) Build(ctx context.Context, input DashboardInput) (*Dashboard, error) {
	mode, err := domain.ParseChartMode(input.Mode)
	if err != nil {
		return nil, err
	}

	all, err := uc.transactions.List(ctx)
	if err != nil {
		return nil, err
	}

	today := uc.nowFunc()

	// Only the ticker filter narrows the ledger going into the sweep. The
	// date window applies to the output points, so a position bought before
	// the window still carries its full running state into it.
	filtered := domain.FilterTransactions(all, input.Tickers, domain.Date{}, domain.Date{})

	first := domain.FirstTransactionDate(filtered)
	if first.IsZero() {
		first = uc.earliest
	}

	var start, end domain.Date
	if input.Year > 0 {
		start, end = domain.DateRangeForYear(input.Year)
	} else {
		start, end = domain.DateRangeForTimerange(input.Timerange, today)
	}
	// The chart never reaches back before the first filtered transaction;
	// there is nothing to value there.
	if start.IsZero() || start.Before(first) {
		start = first
	}

	period := domain.PeriodForTimerange(input.Timerange, first, today)
	if input.Year > 0 {
		period = domain.PeriodForYear(input.Year, today)
	}

	// Prices are fetched for every ticker in the ledger: the holdings table
	// always covers the whole portfolio, whatever the chart filter says.
	allTickers := domain.DistinctTickers(all)
	prices, fetchErrors := uc.fetchHistories(ctx, allTickers, period)

	series := domain.ComputeSeries(filtered, pricesForTickers(prices, domain.DistinctTickers(filtered)), mode)
	series = domain.FilterDataPoints(series, start, end)
	if mode.IsProfitMode() {
		series = domain.NormalizeToZero(series)
	}

	return &Dashboard{
		Mode:        mode,
		Series:      series,
		PeriodDelta: domain.PeriodDelta(series, mode),
		Holdings:    domain.BuildHoldings(allTickers, all, prices),
		AllTickers:  allTickers,
		Years:       domain.TransactionYears(all),
		Timeranges:  domain.Timeranges,
		Errors:      fetchErrors,
	}, nil
}

// pricesForTickers keeps the observations belonging to the given tickers so
// the chart axis only carries dates from tickers actually on the chart.
func pricesForTickers(prices []domain.PricePoint, tickers []string) []domain.PricePoint {
	set := make(map[string]struct{}, len(tickers))
	for _, t := range tickers {
		set[domain.NormalizeTicker(t)] = struct{}{}
	}

	out := make([]domain.PricePoint, 0, len(prices))
	for _, p := range prices {
		if _, ok := set[domain.NormalizeTicker(p.Ticker)]; ok {
			out = append(out, p)
		}
	}
	return out
}

// fetchHistories pulls price history for every ticker concurrently and
// flattens the observations into one slice.
func (uc *DashboardUseCase) fetchHistories(ctx context.Context, tickers []string, period string) ([]domain.PricePoint, []TickerError) {
	var (
		mu          sync.Mutex
		wg          sync.WaitGroup
		prices      []domain.PricePoint
		fetchErrors []TickerError
	)

	for _, ticker := range tickers {
		wg.Add(1)
		go func(ticker string) {
			defer wg.Done()

			history, err := uc.prices.GetHistory(ctx, ticker, period, DefaultInterval)

			mu.Lock()
			defer mu.Unlock()
			if err != nil {
				fetchErrors = append(fetchErrors, TickerError{Ticker: ticker, Message: err.Error()})
				return
			}
			prices = append(prices, history.History...)
		}(ticker)
	}
	wg.Wait()

	sort.Slice(fetchErrors, func(i, j int) bool { return fetchErrors[i].Ticker < fetchErrors[j].Ticker })

	return prices, fetchErrors
}
