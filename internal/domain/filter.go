package domain

import (
	"strings"
	"time"
)

// Timeranges the dashboard UI offers.
var Timeranges = []string{"1W", "1M", "3M", "YTD", "ALL"}

// FilterTransactions narrows transactions by ticker set and date range.
//
// tickers is a comma separated list; an empty string or the literal string
// "null" (what the UI sends for "no filter") leaves the set unfiltered.
// When a ticker filter is active, transactions with a blank ticker are
// dropped. Both date bounds are inclusive; a zero bound is open.
func FilterTransactions(transactions []Transaction, tickers string, start, end Date) []Transaction {
	out := transactions

	if s := strings.TrimSpace(tickers); s != "" && s != "null" {
		set := make(map[string]struct{})
		for _, part := range strings.Split(s, ",") {
			if ticker := NormalizeTicker(part); ticker != "" {
				set[ticker] = struct{}{}
			}
		}

		filtered := make([]Transaction, 0, len(out))
		for _, t := range out {
			ticker := NormalizeTicker(t.Ticker)
			if ticker == "" {
				continue
			}
			if _, ok := set[ticker]; ok {
				filtered = append(filtered, t)
			}
		}
		out = filtered
	}

	if !start.IsZero() || !end.IsZero() {
		filtered := make([]Transaction, 0, len(out))
		for _, t := range out {
			if !start.IsZero() && t.Date.Before(start) {
				continue
			}
			if !end.IsZero() && t.Date.After(end) {
				continue
			}
			filtered = append(filtered, t)
		}
		out = filtered
	}

	return out
}

// DateRangeForTimerange translates a UI timerange code into an inclusive
// date range ending today. Unknown codes (and ALL) open the range from the
// beginning of time.
func DateRangeForTimerange(timerange string, today Date) (Date, Date) {
	switch strings.ToUpper(strings.TrimSpace(timerange)) {
	case "1W":
		return today.AddDays(-7), today
	case "1M":
		return today.AddMonths(-1), today
	case "3M":
		return today.AddMonths(-3), today
	case "YTD":
		return NewDate(today.Year, time.January, 1), today
	default:
		return Date{}, today
	}
}

// DateRangeForYear returns the inclusive range covering one calendar year.
func DateRangeForYear(year int) (Date, Date) {
	return NewDate(year, time.January, 1), NewDate(year, time.December, 31)
}

// FilterDataPoints keeps the points whose label falls inside the inclusive
// date range. Points with an unparseable label are dropped. A zero bound is
// open.
func FilterDataPoints(points []DataPoint, start, end Date) []DataPoint {
	out := make([]DataPoint, 0, len(points))
	for _, p := range points {
		t, err := time.Parse("2006-01-02", p.Label)
		if err != nil {
			continue
		}
		d := DateOf(t)
		if !start.IsZero() && d.Before(start) {
			continue
		}
		if !end.IsZero() && d.After(end) {
			continue
		}
		out = append(out, p)
	}
	return out
}
