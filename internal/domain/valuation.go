package domain

import (
	"sort"

	"github.com/shopspring/decimal"
)

// tickerState is the running sweep state for one ticker: the cumulative
// position, a monotonically advancing cursor into that ticker's sorted
// transactions, and the forward-filled last known price.
type tickerState struct {
	position decimal.Decimal
	txCursor int
	price    decimal.Decimal
	hasPrice bool
}

// ComputeSeries reconciles the transaction ledger against the fetched price
// history into one regular daily series, one value per price-observation
// date, projected through mode.
//
// The output date axis is the union of all price observation dates across
// tickers; transactions never introduce dates of their own, they only move
// the running position on whichever observation dates they precede or
// coincide with. Prices forward-fill per ticker once seen, and a single
// net-invested accumulator is shared across the whole portfolio. A ticker
// with transactions but no price history never contributes worth, but its
// costs still accrue into net invested.
func ComputeSeries(transactions []Transaction, prices []PricePoint, mode ChartMode) []DataPoint {
	txByTicker := make(map[string][]Transaction)
	for _, t := range transactions {
		ticker := NormalizeTicker(t.Ticker)
		if ticker == "" {
			continue
		}
		txByTicker[ticker] = append(txByTicker[ticker], t)
	}
	for _, txs := range txByTicker {
		sort.SliceStable(txs, func(i, j int) bool { return txs[i].Date.Before(txs[j].Date) })
	}

	priceByTicker := make(map[string]map[Date]decimal.Decimal)
	dateSet := make(map[Date]struct{})
	for _, p := range prices {
		ticker := NormalizeTicker(p.Ticker)
		if ticker == "" {
			continue
		}
		byDate := priceByTicker[ticker]
		if byDate == nil {
			byDate = make(map[Date]decimal.Decimal)
			priceByTicker[ticker] = byDate
		}
		byDate[p.Date] = p.Close // duplicate dates: last observed wins
		dateSet[p.Date] = struct{}{}
	}

	axis := make([]Date, 0, len(dateSet))
	for d := range dateSet {
		axis = append(axis, d)
	}
	sort.Slice(axis, func(i, j int) bool { return axis[i].Before(axis[j]) })

	tickers := unionTickers(txByTicker, priceByTicker)
	states := make(map[string]*tickerState, len(tickers))
	for _, ticker := range tickers {
		states[ticker] = &tickerState{position: decimal.Zero}
	}

	netInvested := decimal.Zero
	points := make([]DataPoint, 0, len(axis))

	for _, day := range axis {
		for _, ticker := range tickers {
			st := states[ticker]

			txs := txByTicker[ticker]
			for st.txCursor < len(txs) && !txs[st.txCursor].Date.After(day) {
				tx := txs[st.txCursor]
				st.txCursor++
				st.position = st.position.Add(tx.Quantity)
				netInvested = netInvested.Add(tx.TotalCost())
			}

			if price, ok := priceByTicker[ticker][day]; ok {
				st.price = price
				st.hasPrice = true
			}
		}

		totalWorth := decimal.Zero
		for _, ticker := range tickers {
			st := states[ticker]
			if st.hasPrice && !st.position.IsZero() {
				totalWorth = totalWorth.Add(st.position.Mul(st.price))
			}
		}

		points = append(points, DataPoint{
			Label: FormatDate(day),
			Value: mode.Project(totalWorth, netInvested),
		})
	}

	return points
}

func unionTickers(txByTicker map[string][]Transaction, priceByTicker map[string]map[Date]decimal.Decimal) []string {
	seen := make(map[string]struct{}, len(txByTicker)+len(priceByTicker))
	out := make([]string, 0, len(txByTicker)+len(priceByTicker))
	for ticker := range txByTicker {
		if _, ok := seen[ticker]; !ok {
			seen[ticker] = struct{}{}
			out = append(out, ticker)
		}
	}
	for ticker := range priceByTicker {
		if _, ok := seen[ticker]; !ok {
			seen[ticker] = struct{}{}
			out = append(out, ticker)
		}
	}
	sort.Strings(out)
	return out
}
