package usecase

import (
	"context"
	"time"

	"github.com/iho/goportfolio/internal/domain"
)

// TransactionRepository defines data access for ledger transactions.
type TransactionRepository interface {
	List(ctx context.Context) ([]domain.Transaction, error)
	GetByID(ctx context.Context, id string) (*domain.Transaction, error)
	Add(ctx context.Context, transaction *domain.Transaction) error
	Delete(ctx context.Context, id string) error
}

// PriceSource fetches market price history for one ticker.
type PriceSource interface {
	GetHistory(ctx context.Context, ticker, period, interval string) (*domain.MarketHistory, error)
}

// TransactionProvider yields the full ledger, typically through a cache.
type TransactionProvider interface {
	List(ctx context.Context) ([]domain.Transaction, error)
}

// IDGenerator generates unique IDs.
type IDGenerator interface {
	Generate() string
}

// Cache defines caching operations.
type Cache interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, value []byte, ttl time.Duration) error
	Delete(ctx context.Context, key string) error
}
