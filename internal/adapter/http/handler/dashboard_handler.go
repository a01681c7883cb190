package handler

import (
	"context"
	"net/http"

	"github.com/iho/goportfolio/internal/adapter/http/dto"
	"github.com/iho/goportfolio/internal/usecase"
)

// DashboardService defines the behavior needed by DashboardHandler.
type DashboardService interface {
	Build(ctx context.Context, input usecase.DashboardInput) (*usecase.Dashboard, error)
}

// DashboardHandler handles dashboard HTTP requests.
type DashboardHandler struct {
	dashboardUC DashboardService
}

// NewDashboardHandler creates a new DashboardHandler.
func NewDashboardHandler(dashboardUC DashboardService) *DashboardHandler {
	return &DashboardHandler{dashboardUC: dashboardUC}
}

// Get builds the dashboard for the requested mode and filters.
func (h *DashboardHandler) Get(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()
	req := dto.DashboardRequest{
		Mode:      query.Get("mode"),
		Tickers:   query.Get("tickers"),
		Timerange: query.Get("timerange"),
		Year:      parseIntQuery(r, "year", 0),
	}

	dashboard, err := h.dashboardUC.Build(r.Context(), req.ToUseCaseInput())
	if err != nil {
		status := mapDomainError(err)
		writeError(w, status, "failed to build dashboard", err.Error())

		return
	}

	writeJSON(w, http.StatusOK, dto.DashboardFromUseCase(dashboard))
}
