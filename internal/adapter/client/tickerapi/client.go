package tickerapi

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"github.com/cenkalti/backoff/v4"
	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"

	"github.com/iho/goportfolio/internal/domain"
	"github.com/iho/goportfolio/internal/infrastructure/metrics"
	"github.com/iho/goportfolio/internal/usecase"
)

// Client implements usecase.PriceSource against the ticker history API.
// Responses are cached per (ticker, period, interval) so one dashboard
// request does not hammer the upstream for every chart mode.
type Client struct {
	httpClient *http.Client
	baseURL    string
	code       string
	cache      usecase.Cache
	cacheTTL   time.Duration
	metrics    *metrics.Metrics
	logger     zerolog.Logger
}

// NewClient creates a new ticker history API client.
func NewClient(baseURL, code string, timeout time.Duration, cache usecase.Cache, cacheTTL time.Duration, m *metrics.Metrics, logger zerolog.Logger) *Client {
	return &Client{
		httpClient: &http.Client{Timeout: timeout},
		baseURL:    baseURL,
		code:       code,
		cache:      cache,
		cacheTTL:   cacheTTL,
		metrics:    m,
		logger:     logger,
	}
}

// historyResponse mirrors the upstream JSON payload.
type historyResponse struct {
	Ticker   string         `json:"ticker"`
	Currency string         `json:"currency"`
	History  []historyPoint `json:"history"`
}

type historyPoint struct {
	Ticker string          `json:"ticker"`
	Date   string          `json:"date"`
	Open   decimal.Decimal `json:"open"`
	Close  decimal.Decimal `json:"close"`
}

// GetHistory fetches price history for one ticker, serving from cache when
// a fresh copy exists.
func (c *Client) GetHistory(ctx context.Context, ticker, period, interval string) (*domain.MarketHistory, error) {
	ticker = domain.NormalizeTicker(ticker)
	if ticker == "" {
		return nil, domain.ErrTickerRequired
	}

	cacheKey := fmt.Sprintf("history:%s:%s:%s", ticker, period, interval)

	if raw, err := c.cache.Get(ctx, cacheKey); err == nil && raw != nil {
		var cached historyResponse
		if err := json.Unmarshal(raw, &cached); err == nil {
			c.metrics.PriceCacheHits.Inc()
			return c.toDomain(ticker, &cached), nil
		}
	}
	c.metrics.PriceCacheMisses.Inc()

	raw, err := c.fetch(ctx, ticker, period, interval)
	if err != nil {
		c.metrics.PriceFetches.WithLabelValues("error").Inc()
		return nil, err
	}
	c.metrics.PriceFetches.WithLabelValues("ok").Inc()

	var response historyResponse
	if err := json.Unmarshal(raw, &response); err != nil {
		return nil, fmt.Errorf("decode history for %s: %w", ticker, err)
	}

	// Cache fill is best effort.
	_ = c.cache.Set(ctx, cacheKey, raw, c.cacheTTL)

	return c.toDomain(ticker, &response), nil
}

// fetch performs the HTTP request, retrying transient failures.
func (c *Client) fetch(ctx context.Context, ticker, period, interval string) ([]byte, error) {
	query := url.Values{}
	query.Set("code", c.code)
	query.Set("ticker", ticker)
	query.Set("period", period)
	query.Set("interval", interval)
	requestURL := c.baseURL + "/get_history?" + query.Encode()

	var body []byte

	started := time.Now()
	b := backoff.NewExponentialBackOff()
	b.InitialInterval = 100 * time.Millisecond
	b.MaxElapsedTime = 10 * time.Second

	err := backoff.Retry(func() error {
		req, err := http.NewRequestWithContext(ctx, http.MethodGet, requestURL, nil)
		if err != nil {
			return backoff.Permanent(err)
		}

		resp, err := c.httpClient.Do(req)
		if err != nil {
			return err
		}
		defer resp.Body.Close()

		if resp.StatusCode >= http.StatusInternalServerError {
			c.logger.Warn().
				Str("ticker", ticker).
				Int("status", resp.StatusCode).
				Msg("upstream history fetch failed, retrying")
			return fmt.Errorf("history fetch for %s: status %d", ticker, resp.StatusCode)
		}
		if resp.StatusCode != http.StatusOK {
			return backoff.Permanent(fmt.Errorf("history fetch for %s: status %d", ticker, resp.StatusCode))
		}

		body, err = io.ReadAll(resp.Body)
		if err != nil {
			return err
		}
		return nil
	}, backoff.WithContext(b, ctx))

	c.metrics.PriceFetchSeconds.Observe(time.Since(started).Seconds())

	if err != nil {
		return nil, err
	}
	return body, nil
}

func (c *Client) toDomain(requested string, response *historyResponse) *domain.MarketHistory {
	history := &domain.MarketHistory{
		Ticker:   domain.NormalizeTicker(response.Ticker),
		Currency: response.Currency,
	}
	if history.Ticker == "" {
		history.Ticker = requested
	}

	for _, p := range response.History {
		ticker := domain.NormalizeTicker(p.Ticker)
		if ticker == "" {
			ticker = history.Ticker
		}
		history.History = append(history.History, domain.PricePoint{
			Ticker: ticker,
			Date:   domain.ParseDate(p.Date),
			Open:   p.Open,
			Close:  p.Close,
		})
	}

	return history
}
