package domain

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
)

func TestParseDecimal(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{name: "plain integer", input: "1500", want: "1500"},
		{name: "dot decimal", input: "1500.55", want: "1500.55"},
		{name: "comma decimal", input: "1500,55", want: "1500.55"},
		{name: "dot grouped with comma decimal", input: "1.500,55", want: "1500.55"},
		{name: "three fraction digits treated as grouping", input: "1.234", want: "1234"},
		{name: "two fraction digits stay decimal", input: "1.23", want: "1.23"},
		{name: "four fraction digits stay decimal", input: "1.2345", want: "1.2345"},
		{name: "negative comma decimal", input: "-1.500,55", want: "-1500.55"},
		{name: "positive sign", input: "+12,5", want: "12.5"},
		{name: "leading whitespace", input: "  42.5  ", want: "42.5"},
		{name: "empty", input: "", want: "0"},
		{name: "whitespace only", input: "   ", want: "0"},
		{name: "garbage", input: "abc", want: "0"},
		{name: "mixed grouping rejected", input: "1,234.56", want: "0"},
		{name: "double comma rejected", input: "12,34,56", want: "0"},
		{name: "bare fraction", input: ".5", want: "0.5"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ParseDecimal(tt.input)
			want, err := decimal.NewFromString(tt.want)
			if err != nil {
				t.Fatalf("bad expectation %q: %v", tt.want, err)
			}
			if !got.Equal(want) {
				t.Errorf("ParseDecimal(%q) = %s, want %s", tt.input, got, want)
			}
		})
	}
}

func TestFormatDecimal(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{name: "strips trailing zeros", input: "1500.5500", want: "1500.55"},
		{name: "strips bare dot", input: "1500.000", want: "1500"},
		{name: "integer unchanged", input: "42", want: "42"},
		{name: "zero", input: "0", want: "0"},
		{name: "negative zero collapses", input: "-0.000", want: "0"},
		{name: "negative value", input: "-12.50", want: "-12.5"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d, err := decimal.NewFromString(tt.input)
			if err != nil {
				t.Fatalf("bad input %q: %v", tt.input, err)
			}
			if got := FormatDecimal(d); got != tt.want {
				t.Errorf("FormatDecimal(%s) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

func TestFormatDecimalRoundTrip(t *testing.T) {
	values := []string{"0", "1", "1500.55", "-12.5", "0.001", "123456789.123456789"}
	for _, v := range values {
		d, err := decimal.NewFromString(v)
		if err != nil {
			t.Fatalf("bad value %q: %v", v, err)
		}
		back := ParseDecimal(FormatDecimal(d))
		if !back.Equal(d) {
			t.Errorf("round trip of %s produced %s", d, back)
		}
	}
}

func TestParseDate(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  Date
	}{
		{name: "plain date", input: "2024-06-06", want: NewDate(2024, time.June, 6)},
		{name: "rfc3339 keeps calendar day", input: "2024-05-17T23:59:59Z", want: NewDate(2024, time.May, 17)},
		{name: "datetime without zone", input: "2024-05-17T10:30:00", want: NewDate(2024, time.May, 17)},
		{name: "space separated datetime", input: "2024-05-17 10:30:00", want: NewDate(2024, time.May, 17)},
		{name: "us slash date", input: "05/17/2024", want: NewDate(2024, time.May, 17)},
		{name: "empty", input: "", want: Date{}},
		{name: "garbage", input: "not-a-date", want: Date{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ParseDate(tt.input); !got.Equal(tt.want) {
				t.Errorf("ParseDate(%q) = %v, want %v", tt.input, got, tt.want)
			}
		})
	}
}

func TestFormatDate(t *testing.T) {
	if got := FormatDate(NewDate(2024, time.June, 6)); got != "2024-06-06" {
		t.Errorf("FormatDate = %q, want 2024-06-06", got)
	}
	if got := FormatDate(Date{}); got != "" {
		t.Errorf("FormatDate of zero date = %q, want empty", got)
	}
}
