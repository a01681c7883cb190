package domain

import (
	"fmt"
	"regexp"
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// Persisted rows predate the dot-decimal convention: older entries were
// written with a comma decimal separator and dot thousands grouping.
// ParseDecimal tries the canonical dot-decimal reading first and falls back
// to the comma reading. It never fails: malformed text degrades to zero so
// one bad row cannot take down reporting.

var (
	dotDecimalRe    = regexp.MustCompile(`^[+-]?(\d+(\.\d+)?|\.\d+)$`)
	groupedDigitsRe = regexp.MustCompile(`^\d+(\.\d+)*$`)
	fracDigitsRe    = regexp.MustCompile(`^\d+$`)
)

// ParseDecimal converts persisted text to a decimal, returning zero for
// empty or unparseable input.
func ParseDecimal(s string) decimal.Decimal {
	s = strings.TrimSpace(s)
	if s == "" {
		return decimal.Zero
	}

	if dotDecimalRe.MatchString(s) {
		d, err := decimal.NewFromString(s)
		if err == nil {
			// "1.234" is ambiguous: under the old convention the dot is a
			// thousands separator. Exactly three digits after a single dot
			// and no comma resolves to the thousands reading.
			digits := strings.TrimLeft(s, "+-")
			if parts := strings.Split(digits, "."); len(parts) == 2 && len(parts[1]) == 3 {
				if alt, ok := parseCommaDecimal(s); ok {
					return alt
				}
			}
			return d
		}
	}

	if d, ok := parseCommaDecimal(s); ok {
		return d
	}

	return decimal.Zero
}

// parseCommaDecimal reads a comma-decimal value with optional dot thousands
// grouping, e.g. "1.234,56" or "1,234".
func parseCommaDecimal(s string) (decimal.Decimal, bool) {
	digits := s
	sign := ""
	if digits != "" && (digits[0] == '+' || digits[0] == '-') {
		sign = digits[:1]
		digits = digits[1:]
	}

	intPart := digits
	fracPart := ""
	if i := strings.IndexByte(digits, ','); i >= 0 {
		intPart = digits[:i]
		fracPart = digits[i+1:]
		if !fracDigitsRe.MatchString(fracPart) {
			return decimal.Decimal{}, false
		}
	}
	if !groupedDigitsRe.MatchString(intPart) {
		return decimal.Decimal{}, false
	}

	out := sign + strings.ReplaceAll(intPart, ".", "")
	if fracPart != "" {
		out += "." + fracPart
	}

	d, err := decimal.NewFromString(out)
	if err != nil {
		return decimal.Decimal{}, false
	}
	return d, true
}

// FormatDecimal renders a decimal in the canonical persisted form: dot
// decimal separator, no thousands grouping, no trailing zeros.
func FormatDecimal(d decimal.Decimal) string {
	s := d.String()
	if strings.ContainsRune(s, '.') {
		s = strings.TrimRight(s, "0")
		s = strings.TrimRight(s, ".")
	}
	if s == "" || s == "-0" {
		s = "0"
	}
	return s
}

// Layouts tried after the strict date form, in order. The offset-aware
// layout comes first so an explicit UTC marker is honored instead of the
// timestamp being reinterpreted in local time.
var dateTimeLayouts = []string{
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05",
	"01/02/2006",
}

// ParseDate converts persisted text to a Date, returning the sentinel zero
// Date for empty or unparseable input.
func ParseDate(s string) Date {
	s = strings.TrimSpace(s)
	if s == "" {
		return Date{}
	}

	if t, err := time.Parse("2006-01-02", s); err == nil {
		return DateOf(t)
	}

	for _, layout := range dateTimeLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			// Truncate in the timestamp's own offset; "2024-05-17T23:59:59Z"
			// stays May 17 regardless of the server timezone.
			return DateOf(t)
		}
	}

	return Date{}
}

// FormatDate renders a date as yyyy-MM-dd, or "" for the sentinel.
func FormatDate(d Date) string {
	if d.IsZero() {
		return ""
	}
	return fmt.Sprintf("%04d-%02d-%02d", d.Year, int(d.Month), d.Day)
}
