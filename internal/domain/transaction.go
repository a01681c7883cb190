package domain

import (
	"sort"
	"strings"

	"github.com/shopspring/decimal"
)

// Transaction is one immutable ledger entry: a signed quantity of a ticker
// acquired (positive) or disposed (negative) at a unit price, plus fees.
type Transaction struct {
	ID        string
	Date      Date
	Ticker    string
	Quantity  decimal.Decimal
	UnitPrice decimal.Decimal
	Fees      decimal.Decimal
}

// TotalCost is the net cash outlay: quantity * unit price + fees. Fees can
// be negative to represent a rebate.
func (t Transaction) TotalCost() decimal.Decimal {
	return t.Quantity.Mul(t.UnitPrice).Add(t.Fees)
}

// NormalizeTicker upper-cases a ticker symbol. Ticker identity is
// case-insensitive everywhere in the ledger.
func NormalizeTicker(s string) string {
	return strings.ToUpper(strings.TrimSpace(s))
}

// DistinctTickers returns the distinct normalized tickers, sorted.
func DistinctTickers(transactions []Transaction) []string {
	seen := make(map[string]struct{}, len(transactions))
	out := make([]string, 0, len(transactions))
	for _, t := range transactions {
		ticker := NormalizeTicker(t.Ticker)
		if ticker == "" {
			continue
		}
		if _, ok := seen[ticker]; ok {
			continue
		}
		seen[ticker] = struct{}{}
		out = append(out, ticker)
	}
	sort.Strings(out)
	return out
}

// TransactionYears returns the distinct years transactions fall in,
// ascending. Sentinel dates are skipped.
func TransactionYears(transactions []Transaction) []int {
	seen := make(map[int]struct{})
	out := make([]int, 0)
	for _, t := range transactions {
		if t.Date.IsZero() {
			continue
		}
		if _, ok := seen[t.Date.Year]; ok {
			continue
		}
		seen[t.Date.Year] = struct{}{}
		out = append(out, t.Date.Year)
	}
	sort.Ints(out)
	return out
}

// FirstTransactionDate returns the earliest transaction date, or the zero
// Date when the slice is empty.
func FirstTransactionDate(transactions []Transaction) Date {
	var first Date
	for _, t := range transactions {
		if t.Date.IsZero() {
			continue
		}
		if first.IsZero() || t.Date.Before(first) {
			first = t.Date
		}
	}
	return first
}
