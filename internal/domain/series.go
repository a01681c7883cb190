package domain

import (
	"sort"

	"github.com/shopspring/decimal"
)

// NormalizeToZero rebases a series so it starts at zero by subtracting the
// first point's value from every point. Applied to the profit modes so a
// filtered window shows profit gained during the window rather than profit
// accrued before it.
func NormalizeToZero(points []DataPoint) []DataPoint {
	if len(points) == 0 {
		return points
	}
	first := points[0].Value
	out := make([]DataPoint, len(points))
	for i, p := range points {
		out[i] = DataPoint{Label: p.Label, Value: p.Value.Sub(first)}
	}
	return out
}

// PeriodDelta is the change over the filtered period: last minus first for
// the worth series, plain last for the already rebased profit series.
// Returns nil for an empty series.
func PeriodDelta(points []DataPoint, mode ChartMode) *decimal.Decimal {
	if len(points) == 0 {
		return nil
	}
	last := points[len(points)-1].Value
	if mode == ModeValue {
		delta := last.Sub(points[0].Value)
		return &delta
	}
	return &last
}

// CumulativeInvestment produces the running invested-amount series: one
// point per distinct transaction date, carrying the cumulative total cost
// up to and including that date.
func CumulativeInvestment(transactions []Transaction) []DataPoint {
	byDate := make(map[Date]decimal.Decimal)
	for _, t := range transactions {
		byDate[t.Date] = byDate[t.Date].Add(t.TotalCost())
	}

	dates := make([]Date, 0, len(byDate))
	for d := range byDate {
		dates = append(dates, d)
	}
	sort.Slice(dates, func(i, j int) bool { return dates[i].Before(dates[j]) })

	sum := decimal.Zero
	points := make([]DataPoint, 0, len(dates))
	for _, d := range dates {
		sum = sum.Add(byDate[d])
		points = append(points, DataPoint{Label: FormatDate(d), Value: sum})
	}
	return points
}

// TickerAmount is an invested total for one ticker.
type TickerAmount struct {
	Ticker string          `json:"ticker"`
	Amount decimal.Decimal `json:"amount"`
}

// InvestmentByTicker sums total cost per normalized ticker, sorted by
// ticker.
func InvestmentByTicker(transactions []Transaction) []TickerAmount {
	totals := make(map[string]decimal.Decimal)
	for _, t := range transactions {
		ticker := NormalizeTicker(t.Ticker)
		if ticker == "" {
			continue
		}
		totals[ticker] = totals[ticker].Add(t.TotalCost())
	}

	out := make([]TickerAmount, 0, len(totals))
	for ticker, amount := range totals {
		out = append(out, TickerAmount{Ticker: ticker, Amount: amount})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Ticker < out[j].Ticker })
	return out
}
