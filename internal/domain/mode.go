package domain

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
)

// ChartMode selects the projection applied to each day of the valuation
// sweep.
type ChartMode int

const (
	ModeValue ChartMode = iota
	ModeProfit
	ModeProfitPercentage
)

var hundred = decimal.NewFromInt(100)

// ParseChartMode parses the wire form of a chart mode. The empty string
// defaults to profit.
func ParseChartMode(s string) (ChartMode, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "profit":
		return ModeProfit, nil
	case "value":
		return ModeValue, nil
	case "profit-percentage":
		return ModeProfitPercentage, nil
	default:
		return ModeProfit, fmt.Errorf("%w: %q", ErrUnknownChartMode, s)
	}
}

func (m ChartMode) String() string {
	switch m {
	case ModeValue:
		return "value"
	case ModeProfitPercentage:
		return "profit-percentage"
	default:
		return "profit"
	}
}

// IsProfitMode reports whether the series for this mode is rebased to start
// at zero after window filtering.
func (m ChartMode) IsProfitMode() bool {
	return m == ModeProfit || m == ModeProfitPercentage
}

// Project computes the emitted value for one day from the portfolio worth
// and the running net invested amount.
func (m ChartMode) Project(worth, invested decimal.Decimal) decimal.Decimal {
	switch m {
	case ModeProfit:
		return worth.Sub(invested)
	case ModeProfitPercentage:
		if invested.IsZero() {
			return decimal.Zero
		}
		return worth.Sub(invested).Div(invested).Mul(hundred)
	default:
		return worth
	}
}
