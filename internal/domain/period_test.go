package domain

import (
	"testing"
	"time"
)

func TestPeriodForTimerange(t *testing.T) {
	first := NewDate(2024, time.June, 6)
	today := NewDate(2025, time.June, 15)

	tests := []struct {
		name      string
		timerange string
		want      string
	}{
		{name: "one week over-fetches two", timerange: "1W", want: "14d"},
		{name: "one month", timerange: "1M", want: "1mo"},
		{name: "three months", timerange: "3M", want: "3mo"},
		{name: "year to date", timerange: "YTD", want: "2mo"},
		{name: "all spans ledger", timerange: "ALL", want: "2y"},
		{name: "unknown falls back to default", timerange: "bogus", want: "2y"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := PeriodForTimerange(tt.timerange, first, today); got != tt.want {
				t.Errorf("PeriodForTimerange(%q) = %q, want %q", tt.timerange, got, tt.want)
			}
		})
	}
}

func TestDefaultPeriod(t *testing.T) {
	if got := DefaultPeriod(NewDate(2024, time.June, 6), NewDate(2024, time.December, 1)); got != "1y" {
		t.Errorf("same year = %q, want 1y", got)
	}
	if got := DefaultPeriod(NewDate(2022, time.January, 1), NewDate(2025, time.June, 15)); got != "4y" {
		t.Errorf("multi year = %q, want 4y", got)
	}
}

func TestPeriodForYear(t *testing.T) {
	today := NewDate(2025, time.June, 15)
	if got := PeriodForYear(2024, today); got != "3y" {
		t.Errorf("PeriodForYear(2024) = %q, want 3y", got)
	}
	if got := PeriodForYear(2025, today); got != "2y" {
		t.Errorf("PeriodForYear(2025) = %q, want 2y", got)
	}
}
