package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/rs/zerolog/log"

	"github.com/iho/goportfolio/internal/adapter/client/tickerapi"
	httpAdapter "github.com/iho/goportfolio/internal/adapter/http"
	"github.com/iho/goportfolio/internal/adapter/http/handler"
	"github.com/iho/goportfolio/internal/adapter/http/middleware"
	postgresRepo "github.com/iho/goportfolio/internal/adapter/repository/postgres"
	redisRepo "github.com/iho/goportfolio/internal/adapter/repository/redis"
	"github.com/iho/goportfolio/internal/domain"
	"github.com/iho/goportfolio/internal/infrastructure/config"
	"github.com/iho/goportfolio/internal/infrastructure/logger"
	"github.com/iho/goportfolio/internal/infrastructure/metrics"
	"github.com/iho/goportfolio/internal/infrastructure/postgres"
	"github.com/iho/goportfolio/internal/infrastructure/redis"
	"github.com/iho/goportfolio/internal/usecase"
)

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("failed to load configuration")
	}

	appLogger := logger.New(logger.Config{Level: cfg.LogLevel, Format: cfg.LogFormat})
	log.Logger = appLogger

	ctx := context.Background()

	// Connect to PostgreSQL
	pool, err := postgres.NewPool(ctx, cfg.DatabaseURL, cfg.DatabaseMaxConns, cfg.DatabaseMinConns)
	if err != nil {
		appLogger.Fatal().Err(err).Msg("failed to connect to postgres")
	}
	defer pool.Close()
	appLogger.Info().Msg("connected to postgres")

	// Apply migrations
	if err := postgres.RunMigrations(appLogger, cfg.DatabaseURL, cfg.MigrationsPath); err != nil {
		appLogger.Fatal().Err(err).Msg("failed to run migrations")
	}

	// Connect to Redis
	redisClient, err := redis.NewClient(ctx, cfg.RedisURL)
	if err != nil {
		appLogger.Fatal().Err(err).Msg("failed to connect to redis")
	}
	defer redisClient.Close()
	appLogger.Info().Msg("connected to redis")

	appMetrics := metrics.New()

	earliest := domain.ParseDate(cfg.EarliestLedgerDate)
	if earliest.IsZero() {
		appLogger.Fatal().Str("value", cfg.EarliestLedgerDate).Msg("invalid EARLIEST_LEDGER_DATE")
	}

	// Initialize repositories and clients
	retrier := postgresRepo.NewRetrier(appLogger)
	transactionRepo := postgresRepo.NewTransactionRepository(pool, retrier)
	cache := redisRepo.NewCache(redisClient)
	idGen := postgresRepo.NewULIDGenerator()
	priceClient := tickerapi.NewClient(
		cfg.TickerAPIBaseURL,
		cfg.TickerAPICode,
		cfg.TickerAPITimeout,
		cache,
		cfg.PriceCacheTTL,
		appMetrics,
		appLogger,
	)

	// Initialize use cases
	transactionUC := usecase.NewTransactionUseCase(transactionRepo, cache, idGen, cfg.TransactionCacheTTL)
	dashboardUC := usecase.NewDashboardUseCase(transactionUC, priceClient, earliest)
	historyUC := usecase.NewMarketHistoryUseCase(priceClient, earliest)
	investmentUC := usecase.NewInvestmentUseCase(transactionUC)

	// Initialize handlers
	transactionHandler := handler.NewTransactionHandler(transactionUC)
	dashboardHandler := handler.NewDashboardHandler(dashboardUC)
	historyHandler := handler.NewMarketHistoryHandler(historyUC)
	investmentHandler := handler.NewInvestmentHandler(investmentUC)
	healthHandler := handler.NewHealthHandler(pool, redisClient)

	// Create router
	router := httpAdapter.NewRouter(httpAdapter.RouterConfig{
		TransactionHandler:   transactionHandler,
		DashboardHandler:     dashboardHandler,
		MarketHistoryHandler: historyHandler,
		InvestmentHandler:    investmentHandler,
		HealthHandler:        healthHandler,
		Logging:              middleware.NewLoggingMiddleware(appLogger),
		Metrics:              middleware.NewMetricsMiddleware(appMetrics),
		RateLimiter:          middleware.NewRateLimiter(50, 100),
	})

	// Create server
	server := &http.Server{
		Addr:         fmt.Sprintf(":%s", cfg.HTTPPort),
		Handler:      router,
		ReadTimeout:  cfg.HTTPReadTimeout,
		WriteTimeout: cfg.HTTPWriteTimeout,
		IdleTimeout:  cfg.HTTPIdleTimeout,
	}

	// Start server in goroutine
	go func() {
		appLogger.Info().Str("port", cfg.HTTPPort).Msg("starting server")
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			appLogger.Fatal().Err(err).Msg("server failed")
		}
	}()

	// Wait for interrupt signal
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	appLogger.Info().Msg("shutting down server...")

	// Graceful shutdown
	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.HTTPShutdownTimeout)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		appLogger.Fatal().Err(err).Msg("server forced to shutdown")
	}

	appLogger.Info().Msg("server stopped")
}
