package usecase

import "github.com/iho/goportfolio/internal/domain"

// Clock overrides for deterministic tests.

func (uc *DashboardUseCase) SetNow(fn func() domain.Date) { uc.nowFunc = fn }

func (uc *MarketHistoryUseCase) SetNow(fn func() domain.Date) { uc.nowFunc = fn }

func (uc *InvestmentUseCase) SetNow(fn func() domain.Date) { uc.nowFunc = fn }
