package domain

import (
	"fmt"
	"strings"
)

// The price API period tokens deliberately over-fetch so forward-fill
// always has a price observation at or before the window start.

// PeriodForTimerange translates a UI timerange code into the upstream API
// period token. first is the first ledger date, used for the ALL range.
func PeriodForTimerange(timerange string, first, today Date) string {
	switch strings.ToUpper(strings.TrimSpace(timerange)) {
	case "1W":
		// Two weeks, so a short trading week still covers the window.
		return "14d"
	case "1M":
		return "1mo"
	case "3M":
		return "3mo"
	case "YTD":
		// Reach back past January 1 so early-January requests have data
		// from the end of the previous year to forward-fill from.
		return "2mo"
	default:
		return DefaultPeriod(first, today)
	}
}

// DefaultPeriod spans from the first transaction's year through today.
func DefaultPeriod(first, today Date) string {
	return fmt.Sprintf("%dy", today.Year-first.Year+1)
}

// PeriodForYear covers the given calendar year with a two year buffer so
// the target year is never clipped.
func PeriodForYear(year int, today Date) string {
	return fmt.Sprintf("%dy", today.Year-year+2)
}
