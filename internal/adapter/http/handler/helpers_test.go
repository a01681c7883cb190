package handler

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/iho/goportfolio/internal/domain"
)

func TestMapDomainError(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want int
	}{
		{name: "not found", err: domain.ErrTransactionNotFound, want: http.StatusNotFound},
		{name: "ticker required", err: domain.ErrTickerRequired, want: http.StatusBadRequest},
		{name: "unknown mode", err: domain.ErrUnknownChartMode, want: http.StatusBadRequest},
		{name: "wrapped", err: errors.Join(errors.New("ctx"), domain.ErrTickerRequired), want: http.StatusBadRequest},
		{name: "unknown", err: errors.New("boom"), want: http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := mapDomainError(tt.err); got != tt.want {
				t.Fatalf("mapDomainError(%v) = %d, want %d", tt.err, got, tt.want)
			}
		})
	}
}

func TestParseIntQuery(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/?year=2024&bad=abc", nil)

	if got := parseIntQuery(req, "year", 0); got != 2024 {
		t.Fatalf("year = %d", got)
	}
	if got := parseIntQuery(req, "bad", 7); got != 7 {
		t.Fatalf("bad = %d, want default", got)
	}
	if got := parseIntQuery(req, "missing", 42); got != 42 {
		t.Fatalf("missing = %d, want default", got)
	}
}
