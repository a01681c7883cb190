package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics holds all Prometheus metrics
type Metrics struct {
	// Ledger metrics
	TransactionsCreated prometheus.Counter
	TransactionsDeleted prometheus.Counter

	// Valuation metrics
	DashboardsBuilt *prometheus.CounterVec
	SweepDuration   prometheus.Histogram

	// Price source metrics
	PriceFetches      *prometheus.CounterVec
	PriceFetchSeconds prometheus.Histogram
	PriceCacheHits    prometheus.Counter
	PriceCacheMisses  prometheus.Counter

	// API metrics
	HTTPRequests *prometheus.CounterVec
	HTTPDuration *prometheus.HistogramVec

	// Database metrics
	DBQueries  *prometheus.CounterVec
	DBDuration *prometheus.HistogramVec
	DBErrors   *prometheus.CounterVec

	// Redis metrics
	RedisOperations *prometheus.CounterVec
	RedisErrors     *prometheus.CounterVec

	// Rate limiting metrics
	RateLimitHits *prometheus.CounterVec
}

// New creates and registers all Prometheus metrics
func New() *Metrics {
	return &Metrics{
		// Ledger metrics
		TransactionsCreated: promauto.NewCounter(prometheus.CounterOpts{
			Name: "goportfolio_transactions_created_total",
			Help: "Total number of transactions recorded",
		}),
		TransactionsDeleted: promauto.NewCounter(prometheus.CounterOpts{
			Name: "goportfolio_transactions_deleted_total",
			Help: "Total number of transactions deleted",
		}),

		// Valuation metrics
		DashboardsBuilt: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "goportfolio_dashboards_built_total",
				Help: "Total dashboards built by chart mode",
			},
			[]string{"mode"},
		),
		SweepDuration: promauto.NewHistogram(prometheus.HistogramOpts{
			Name:    "goportfolio_sweep_duration_seconds",
			Help:    "Duration of valuation sweeps",
			Buckets: prometheus.DefBuckets,
		}),

		// Price source metrics
		PriceFetches: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "goportfolio_price_fetches_total",
				Help: "Total upstream price history fetches by outcome",
			},
			[]string{"outcome"},
		),
		PriceFetchSeconds: promauto.NewHistogram(prometheus.HistogramOpts{
			Name:    "goportfolio_price_fetch_duration_seconds",
			Help:    "Duration of upstream price history fetches",
			Buckets: prometheus.DefBuckets,
		}),
		PriceCacheHits: promauto.NewCounter(prometheus.CounterOpts{
			Name: "goportfolio_price_cache_hits_total",
			Help: "Total price history cache hits",
		}),
		PriceCacheMisses: promauto.NewCounter(prometheus.CounterOpts{
			Name: "goportfolio_price_cache_misses_total",
			Help: "Total price history cache misses",
		}),

		// API metrics
		HTTPRequests: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "goportfolio_http_requests_total",
				Help: "Total HTTP requests",
			},
			[]string{"method", "path", "status"},
		),
		HTTPDuration: promauto.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "goportfolio_http_duration_seconds",
				Help:    "HTTP request duration",
				Buckets: prometheus.DefBuckets,
			},
			[]string{"method", "path"},
		),

		// Database metrics
		DBQueries: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "goportfolio_db_queries_total",
				Help: "Total database queries",
			},
			[]string{"operation", "table"},
		),
		DBDuration: promauto.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "goportfolio_db_query_duration_seconds",
				Help:    "Database query duration",
				Buckets: prometheus.DefBuckets,
			},
			[]string{"operation", "table"},
		),
		DBErrors: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "goportfolio_db_errors_total",
				Help: "Total database errors",
			},
			[]string{"operation"},
		),

		// Redis metrics
		RedisOperations: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "goportfolio_redis_operations_total",
				Help: "Total Redis operations",
			},
			[]string{"operation"},
		),
		RedisErrors: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "goportfolio_redis_errors_total",
				Help: "Total Redis errors",
			},
			[]string{"operation"},
		),

		// Rate limiting metrics
		RateLimitHits: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "goportfolio_rate_limit_hits_total",
				Help: "Total rate limit hits",
			},
			[]string{"ip"},
		),
	}
}
