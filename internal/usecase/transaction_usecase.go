package usecase

import (
	"context"
	"encoding/json"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/iho/goportfolio/internal/domain"
)

// TransactionUseCase handles ledger business logic.
type TransactionUseCase struct {
	repo     TransactionRepository
	cache    Cache
	idGen    IDGenerator
	cacheTTL time.Duration
}

// NewTransactionUseCase creates a new TransactionUseCase. A non-positive ttl
// falls back to DefaultTransactionCacheTTL.
func NewTransactionUseCase(repo TransactionRepository, cache Cache, idGen IDGenerator, cacheTTL time.Duration) *TransactionUseCase {
	if cacheTTL <= 0 {
		cacheTTL = DefaultTransactionCacheTTL
	}
	return &TransactionUseCase{
		repo:     repo,
		cache:    cache,
		idGen:    idGen,
		cacheTTL: cacheTTL,
	}
}

// List returns the full ledger, served from cache when possible.
func (uc *TransactionUseCase) List(ctx context.Context) ([]domain.Transaction, error) {
	if raw, err := uc.cache.Get(ctx, TransactionsCacheKey); err == nil && raw != nil {
		var cached []domain.Transaction
		if err := json.Unmarshal(raw, &cached); err == nil {
			return cached, nil
		}
	}

	transactions, err := uc.repo.List(ctx)
	if err != nil {
		return nil, err
	}

	if raw, err := json.Marshal(transactions); err == nil {
		// Cache fill is best effort.
		_ = uc.cache.Set(ctx, TransactionsCacheKey, raw, uc.cacheTTL)
	}

	return transactions, nil
}

// Get returns a single transaction by ID.
func (uc *TransactionUseCase) Get(ctx context.Context, id string) (*domain.Transaction, error) {
	if strings.TrimSpace(id) == "" {
		return nil, domain.ErrTransactionNotFound
	}
	return uc.repo.GetByID(ctx, id)
}

// AddTransactionInput represents input for recording a transaction.
type AddTransactionInput struct {
	Date      domain.Date
	Ticker    string
	Quantity  decimal.Decimal
	UnitPrice decimal.Decimal
	Fees      decimal.Decimal
}

// Add records a new transaction and invalidates the cached ledger.
func (uc *TransactionUseCase) Add(ctx context.Context, input AddTransactionInput) (*domain.Transaction, error) {
	ticker := domain.NormalizeTicker(input.Ticker)
	if ticker == "" {
		return nil, domain.ErrTickerRequired
	}

	transaction := &domain.Transaction{
		ID:        uc.idGen.Generate(),
		Date:      input.Date,
		Ticker:    ticker,
		Quantity:  input.Quantity,
		UnitPrice: input.UnitPrice,
		Fees:      input.Fees,
	}

	if err := uc.repo.Add(ctx, transaction); err != nil {
		return nil, err
	}

	_ = uc.cache.Delete(ctx, TransactionsCacheKey)

	return transaction, nil
}

// Delete removes a transaction by ID and invalidates the cached ledger.
func (uc *TransactionUseCase) Delete(ctx context.Context, id string) error {
	if strings.TrimSpace(id) == "" {
		return domain.ErrTransactionNotFound
	}

	if err := uc.repo.Delete(ctx, id); err != nil {
		return err
	}

	_ = uc.cache.Delete(ctx, TransactionsCacheKey)

	return nil
}

// Years lists the distinct calendar years the ledger spans.
func (uc *TransactionUseCase) Years(ctx context.Context) ([]int, error) {
	transactions, err := uc.List(ctx)
	if err != nil {
		return nil, err
	}
	return domain.TransactionYears(transactions), nil
}
