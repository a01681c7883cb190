package handler

import (
	"context"
	"net/http"

	"github.com/iho/goportfolio/internal/adapter/http/dto"
	"github.com/iho/goportfolio/internal/usecase"
)

// InvestmentService defines the behavior needed by InvestmentHandler.
type InvestmentService interface {
	Get(ctx context.Context, input usecase.InvestmentInput) (*usecase.Investment, error)
}

// InvestmentHandler handles invested-amount HTTP requests.
type InvestmentHandler struct {
	investmentUC InvestmentService
}

// NewInvestmentHandler creates a new InvestmentHandler.
func NewInvestmentHandler(investmentUC InvestmentService) *InvestmentHandler {
	return &InvestmentHandler{investmentUC: investmentUC}
}

// Get returns the invested-amount report.
func (h *InvestmentHandler) Get(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()
	input := usecase.InvestmentInput{
		Tickers:   query.Get("tickers"),
		Timerange: query.Get("timerange"),
	}

	investment, err := h.investmentUC.Get(r.Context(), input)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "failed to compute investment", err.Error())
		return
	}

	writeJSON(w, http.StatusOK, dto.InvestmentFromUseCase(investment))
}
