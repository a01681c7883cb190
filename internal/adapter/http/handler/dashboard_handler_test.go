package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/shopspring/decimal"

	"github.com/iho/goportfolio/internal/adapter/http/dto"
	"github.com/iho/goportfolio/internal/domain"
	"github.com/iho/goportfolio/internal/usecase"
)

type dashboardServiceStub struct {
	buildFn func(ctx context.Context, input usecase.DashboardInput) (*usecase.Dashboard, error)
}

func (s *dashboardServiceStub) Build(ctx context.Context, input usecase.DashboardInput) (*usecase.Dashboard, error) {
	return s.buildFn(ctx, input)
}

func TestDashboardHandler_Get_Success(t *testing.T) {
	delta := decimal.NewFromInt(200)

	var captured usecase.DashboardInput
	handler := NewDashboardHandler(&dashboardServiceStub{
		buildFn: func(ctx context.Context, input usecase.DashboardInput) (*usecase.Dashboard, error) {
			captured = input
			return &usecase.Dashboard{
				Mode: domain.ModeProfit,
				Series: []domain.DataPoint{
					{Label: "2024-06-06", Value: decimal.Zero},
					{Label: "2024-06-07", Value: decimal.NewFromInt(200)},
				},
				PeriodDelta: &delta,
				Holdings: []domain.HoldingAggregate{
					{Ticker: "AAPL", Worth: decimal.NewFromInt(1200)},
				},
				AllTickers: []string{"AAPL"},
				Years:      []int{2024},
				Timeranges: domain.Timeranges,
			}, nil
		},
	})

	req := httptest.NewRequest(http.MethodGet, "/dashboard?mode=profit&tickers=AAPL&timerange=1M", nil)
	rec := httptest.NewRecorder()

	handler.Get(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
	}

	if captured.Mode != "profit" || captured.Tickers != "AAPL" || captured.Timerange != "1M" {
		t.Fatalf("captured input = %+v", captured)
	}

	var resp dto.DashboardResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if resp.Mode != "profit" {
		t.Fatalf("mode = %q", resp.Mode)
	}
	if len(resp.Series) != 2 || resp.Series[1].Label != "2024-06-07" {
		t.Fatalf("series = %+v", resp.Series)
	}
	if resp.PeriodDelta == nil || !resp.PeriodDelta.Equal(delta) {
		t.Fatalf("period delta = %v", resp.PeriodDelta)
	}
	if len(resp.Holdings) != 1 || resp.Holdings[0].Ticker != "AAPL" {
		t.Fatalf("holdings = %+v", resp.Holdings)
	}
}

func TestDashboardHandler_Get_UnknownMode(t *testing.T) {
	handler := NewDashboardHandler(&dashboardServiceStub{
		buildFn: func(ctx context.Context, input usecase.DashboardInput) (*usecase.Dashboard, error) {
			return nil, domain.ErrUnknownChartMode
		},
	})

	req := httptest.NewRequest(http.MethodGet, "/dashboard?mode=bogus", nil)
	rec := httptest.NewRecorder()

	handler.Get(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rec.Code)
	}
}

func TestDashboardHandler_Get_PartialErrors(t *testing.T) {
	handler := NewDashboardHandler(&dashboardServiceStub{
		buildFn: func(ctx context.Context, input usecase.DashboardInput) (*usecase.Dashboard, error) {
			return &usecase.Dashboard{
				Mode:       domain.ModeValue,
				Timeranges: domain.Timeranges,
				Errors: []usecase.TickerError{
					{Ticker: "XYZ", Message: "upstream down"},
				},
			}, nil
		},
	})

	req := httptest.NewRequest(http.MethodGet, "/dashboard?mode=value", nil)
	rec := httptest.NewRecorder()

	handler.Get(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("partial failures should still return 200, got %d", rec.Code)
	}

	var resp dto.DashboardResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if len(resp.Errors) != 1 || resp.Errors[0].Ticker != "XYZ" {
		t.Fatalf("errors = %+v", resp.Errors)
	}
}
