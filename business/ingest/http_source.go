package ingest

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"

	"eduintel/domain"
	"eduintel/pkg/logger"

	gobreaker "github.com/sony/gobreaker/v2"
	"golang.org/x/time/rate"
)

const maxFeedBytes = 4 << 20

// Source yields raw catalog records.
type Source interface {
	Name() string
	Fetch(ctx context.Context) ([]Record, error)
}

type HTTPSourceConfig struct {
	URL               string
	RequestsPerSecond float64
	FailureThreshold  uint32
	BreakerTimeout    time.Duration
	FetchTimeout      time.Duration
}

// HTTPSource reads a JSON feed of universities. Requests are paced by a
// token bucket and guarded by a circuit breaker that opens after
// FailureThreshold consecutive failures.
type HTTPSource struct {
	url     string
	client  *http.Client
	limiter *rate.Limiter
	cb      *gobreaker.CircuitBreaker[[]Record]
}

func NewHTTPSource(cfg HTTPSourceConfig, client *http.Client) *HTTPSource {
	if client == nil {
		client = &http.Client{Timeout: cfg.FetchTimeout}
	}
	if cfg.RequestsPerSecond <= 0 {
		cfg.RequestsPerSecond = 1
	}
	if cfg.FailureThreshold == 0 {
		cfg.FailureThreshold = 3
	}
	threshold := cfg.FailureThreshold

	name := "catalog-feed"
	IngestBreakerState.WithLabelValues(name).Set(0)

	cb := gobreaker.NewCircuitBreaker[[]Record](gobreaker.Settings{
		Name:        name,
		MaxRequests: 1,
		Timeout:     cfg.BreakerTimeout,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			return counts.ConsecutiveFailures >= threshold
		},
		OnStateChange: func(name string, from, to gobreaker.State) {
			logger.Warn("catalog feed breaker state changed", "source", name, "from", from.String(), "to", to.String())
			IngestBreakerState.WithLabelValues(name).Set(float64(to))
		},
	})

	return &HTTPSource{
		url:     cfg.URL,
		client:  client,
		limiter: rate.NewLimiter(rate.Limit(cfg.RequestsPerSecond), 1),
		cb:      cb,
	}
}

func (s *HTTPSource) Name() string {
	return s.url
}

func (s *HTTPSource) Fetch(ctx context.Context) ([]Record, error) {
	if err := s.limiter.Wait(ctx); err != nil {
		return nil, fmt.Errorf("rate limiter: %w", err)
	}

	records, err := s.cb.Execute(func() ([]Record, error) {
		return s.fetch(ctx)
	})
	if err != nil {
		if errors.Is(err, gobreaker.ErrOpenState) || errors.Is(err, gobreaker.ErrTooManyRequests) {
			IngestSourceRequestsTotal.WithLabelValues("http", "rejected").Inc()
			return nil, fmt.Errorf("%w: %v", domain.ErrSourceUnavailable, err)
		}
		IngestSourceRequestsTotal.WithLabelValues("http", "failure").Inc()
		return nil, err
	}

	IngestSourceRequestsTotal.WithLabelValues("http", "success").Inc()
	if len(records) == 0 {
		return nil, domain.ErrEmptyCatalog
	}
	return records, nil
}

func (s *HTTPSource) fetch(ctx context.Context) ([]Record, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, s.url, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to build feed request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := s.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch feed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, fmt.Errorf("feed returned status %d", resp.StatusCode)
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxFeedBytes))
	if err != nil {
		return nil, fmt.Errorf("failed to read feed: %w", err)
	}

	return decodeFeed(body)
}

// decodeFeed accepts a bare array or an object with a "universities" array.
func decodeFeed(body []byte) ([]Record, error) {
	body = bytes.TrimSpace(body)
	if len(body) == 0 {
		return nil, nil
	}

	var records []Record
	if body[0] == '[' {
		if err := json.Unmarshal(body, &records); err != nil {
			return nil, fmt.Errorf("failed to decode feed: %w", err)
		}
		return records, nil
	}

	var envelope struct {
		Universities []Record `json:"universities"`
	}
	if err := json.Unmarshal(body, &envelope); err != nil {
		return nil, fmt.Errorf("failed to decode feed: %w", err)
	}
	return envelope.Universities, nil
}
