package upstream

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/windoze95/servicehub-api/internal/logger"
	"go.uber.org/zap"
	"golang.org/x/time/rate"
)

const (
	// DefaultTimeout bounds a single upstream call when no client is supplied.
	DefaultTimeout = 10 * time.Second

	// The monthly USGS feed is the largest body we read.
	maxBodyBytes  = 64 << 20
	maxErrorBytes = 4096

	userAgent = "servicehub-api/1.0 (+https://github.com/windoze95/servicehub-api)"
)

// fetcher is the GET-and-decode path shared by every provider.
type fetcher struct {
	service    string
	httpClient *http.Client
	limiter    *rate.Limiter
}

// newFetcher builds a fetcher. A nil client gets DefaultTimeout; rps <= 0
// disables client-side rate limiting.
func newFetcher(service string, httpClient *http.Client, rps float64) *fetcher {
	if httpClient == nil {
		httpClient = &http.Client{Timeout: DefaultTimeout}
	}
	var limiter *rate.Limiter
	if rps > 0 {
		burst := int(rps)
		if burst < 1 {
			burst = 1
		}
		limiter = rate.NewLimiter(rate.Limit(rps), burst)
	}
	return &fetcher{service: service, httpClient: httpClient, limiter: limiter}
}

func (f *fetcher) getJSON(ctx context.Context, reqURL string, out any) error {
	if f.limiter != nil {
		if err := f.limiter.Wait(ctx); err != nil {
			return TransportError{Service: f.service, Err: err}
		}
	}

	start := time.Now()
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return fmt.Errorf("failed to create %s request: %w", f.service, err)
	}
	req.Header.Set("User-Agent", userAgent)
	req.Header.Set("Accept", "application/json")

	resp, err := f.httpClient.Do(req)
	if err != nil {
		observe(f.service, outcomeTransport, start)
		logger.Get().Warn("upstream request failed", zap.String("service", f.service), zap.Error(err))
		return TransportError{Service: f.service, Err: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBytes))
		observe(f.service, outcomeStatus, start)
		logger.Get().Warn("upstream returned error status",
			zap.String("service", f.service),
			zap.Int("status", resp.StatusCode),
		)
		return RemoteServiceError{
			Service:    f.service,
			StatusCode: resp.StatusCode,
			Body:       strings.TrimSpace(string(body)),
		}
	}

	if err := json.NewDecoder(io.LimitReader(resp.Body, maxBodyBytes)).Decode(out); err != nil {
		observe(f.service, outcomeDecode, start)
		return fmt.Errorf("failed to parse %s response: %w", f.service, err)
	}

	observe(f.service, outcomeOK, start)
	return nil
}
