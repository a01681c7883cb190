package handler

import (
	"context"
	"net/http"

	"github.com/iho/goportfolio/internal/adapter/http/dto"
	"github.com/iho/goportfolio/internal/usecase"
)

// MarketHistoryService defines the behavior needed by MarketHistoryHandler.
type MarketHistoryService interface {
	Get(ctx context.Context, input usecase.MarketHistoryInput) (*usecase.MarketSeries, error)
}

// MarketHistoryHandler handles market history HTTP requests.
type MarketHistoryHandler struct {
	historyUC MarketHistoryService
}

// NewMarketHistoryHandler creates a new MarketHistoryHandler.
func NewMarketHistoryHandler(historyUC MarketHistoryService) *MarketHistoryHandler {
	return &MarketHistoryHandler{historyUC: historyUC}
}

// Get returns the close-price series for one ticker.
func (h *MarketHistoryHandler) Get(w http.ResponseWriter, r *http.Request) {
	input := usecase.MarketHistoryInput{
		Ticker:    r.URL.Query().Get("ticker"),
		Timerange: r.URL.Query().Get("timerange"),
		Year:      parseIntQuery(r, "year", 0),
	}

	series, err := h.historyUC.Get(r.Context(), input)
	if err != nil {
		status := mapDomainError(err)
		writeError(w, status, "failed to fetch market history", err.Error())

		return
	}

	writeJSON(w, http.StatusOK, dto.MarketHistoryFromUseCase(series))
}
