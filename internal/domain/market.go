package domain

import "github.com/shopspring/decimal"

// PricePoint is one daily price observation for a ticker, fetched from the
// external price source. At most one close counts per (ticker, date); when
// the source repeats a date the last observation wins.
type PricePoint struct {
	Ticker string
	Date   Date
	Open   decimal.Decimal
	Close  decimal.Decimal
}

// MarketHistory is the price source's response for one ticker.
type MarketHistory struct {
	Ticker   string
	Currency string
	History  []PricePoint
}

// DataPoint is one emitted series sample. Label is the yyyy-MM-dd date the
// sample falls on; series are always chronologically ascending.
type DataPoint struct {
	Label string          `json:"label"`
	Value decimal.Decimal `json:"value"`
}
