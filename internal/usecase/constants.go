package usecase

import "time"

const (
	// TransactionsCacheKey is the cache key holding the full ledger.
	TransactionsCacheKey = "transactions:all"

	// DefaultTransactionCacheTTL bounds staleness of the cached ledger;
	// writes invalidate eagerly, the TTL only covers missed invalidations.
	DefaultTransactionCacheTTL = 10 * time.Minute

	// DefaultInterval is the price observation granularity requested from
	// the upstream history API.
	DefaultInterval = "1d"
)
