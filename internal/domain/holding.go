package domain

import "github.com/shopspring/decimal"

// HoldingAggregate is one per-ticker roll-up row for the dashboard table.
type HoldingAggregate struct {
	Ticker         string
	Quantity       decimal.Decimal
	Invested       decimal.Decimal
	CurrentPrice   decimal.Decimal
	Worth          decimal.Decimal
	Profit         decimal.Decimal
	ProfitPct      decimal.Decimal
	PortfolioShare decimal.Decimal
}

// BuildHoldings rolls transactions up per ticker against the latest close
// observation for each ticker. Tickers with no price observation carry a
// zero current price; ratios guard division by zero and degrade to zero.
func BuildHoldings(tickers []string, transactions []Transaction, prices []PricePoint) []HoldingAggregate {
	type lastClose struct {
		date  Date
		close decimal.Decimal
	}
	latest := make(map[string]lastClose)
	for _, p := range prices {
		ticker := NormalizeTicker(p.Ticker)
		if ticker == "" {
			continue
		}
		// Same-date repeats overwrite, so the last observation wins.
		if cur, ok := latest[ticker]; !ok || !p.Date.Before(cur.date) {
			latest[ticker] = lastClose{date: p.Date, close: p.Close}
		}
	}

	rows := make([]HoldingAggregate, 0, len(tickers))
	totalWorth := decimal.Zero
	for _, raw := range tickers {
		ticker := NormalizeTicker(raw)

		quantity := decimal.Zero
		invested := decimal.Zero
		for _, t := range transactions {
			if NormalizeTicker(t.Ticker) != ticker {
				continue
			}
			quantity = quantity.Add(t.Quantity)
			invested = invested.Add(t.TotalCost())
		}

		price := latest[ticker].close
		worth := price.Mul(quantity)
		profit := worth.Sub(invested)

		profitPct := decimal.Zero
		if invested.IsPositive() {
			profitPct = profit.Div(invested)
		}

		rows = append(rows, HoldingAggregate{
			Ticker:       ticker,
			Quantity:     quantity,
			Invested:     invested,
			CurrentPrice: price,
			Worth:        worth,
			Profit:       profit,
			ProfitPct:    profitPct,
		})
		totalWorth = totalWorth.Add(worth)
	}

	for i := range rows {
		if totalWorth.IsPositive() {
			rows[i].PortfolioShare = rows[i].Worth.Div(totalWorth)
		} else {
			rows[i].PortfolioShare = decimal.Zero
		}
	}

	return rows
}
