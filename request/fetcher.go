package request

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/go-resty/resty/v2"
	"go.uber.org/zap"
	"golang.org/x/time/rate"

	"github.com/lstpsche/openmeteo-cli/errs"
)

// fetchTimeout bounds the single GET. The CLI is one-shot and never
// retries, so a generous timeout beats backoff logic.
const fetchTimeout = 30 * time.Second

// Fetcher issues one GET and returns the response body.
type Fetcher interface {
	Fetch(ctx context.Context, url string) ([]byte, error)
}

// HTTPFetcher is the resty-backed Fetcher. Proxy environment variables
// are honored by the underlying transport.
type HTTPFetcher struct {
	client *resty.Client
	log    *zap.Logger
}

// NewFetcher creates a fetcher with the default timeout.
func NewFetcher(log *zap.Logger) *HTTPFetcher {
	client := resty.New().
		SetTimeout(fetchTimeout).
		SetHeader("User-Agent", "openmeteo-cli")
	return &HTTPFetcher{client: client, log: log}
}

// SetTimeout overrides the request timeout.
func (f *HTTPFetcher) SetTimeout(timeout time.Duration) {
	f.client.SetTimeout(timeout)
}

// Fetch performs the GET. Transport failures come back as network errors;
// non-2xx statuses come back as upstream errors carrying the service's
// own reason field when the body has one.
func (f *HTTPFetcher) Fetch(ctx context.Context, url string) ([]byte, error) {
	f.log.Debug("fetching", zap.String("url", url))

	resp, err := f.client.R().SetContext(ctx).Get(url)
	if err != nil {
		return nil, errs.Networkf(err, "request failed")
	}

	body := resp.Body()
	f.log.Debug("response",
		zap.Int("status", resp.StatusCode()),
		zap.Int("bytes", len(body)),
		zap.Duration("elapsed", resp.Time()))

	if resp.IsError() {
		return nil, errs.Upstreamf("API error (status %d): %s",
			resp.StatusCode(), upstreamReason(body))
	}
	return body, nil
}

// upstreamReason extracts the API's own error message from a failure
// body, falling back to the raw body.
func upstreamReason(body []byte) string {
	var payload struct {
		Reason string `json:"reason"`
	}
	if err := json.Unmarshal(body, &payload); err == nil && payload.Reason != "" {
		return payload.Reason
	}
	return strings.TrimSpace(string(body))
}

// RateLimitedFetcher wraps a Fetcher with a client-side rate limit so the
// resolver call plus the data call stay inside the free-tier budget.
type RateLimitedFetcher struct {
	fetcher Fetcher
	limiter *rate.Limiter
}

// NewRateLimitedFetcher creates a rate limited wrapper.
// rps is the maximum requests per second allowed; burst is the maximum
// burst size allowed.
func NewRateLimitedFetcher(fetcher Fetcher, rps float64, burst int) *RateLimitedFetcher {
	return &RateLimitedFetcher{
		fetcher: fetcher,
		limiter: rate.NewLimiter(rate.Limit(rps), burst),
	}
}

// Fetch waits for rate limiter permission, then forwards to the
// underlying fetcher.
func (r *RateLimitedFetcher) Fetch(ctx context.Context, url string) ([]byte, error) {
	if err := r.limiter.Wait(ctx); err != nil {
		return nil, fmt.Errorf("rate limit wait canceled: %w", err)
	}
	return r.fetcher.Fetch(ctx, url)
}

// Verify that the wrappers implement the Fetcher interface.
var (
	_ Fetcher = (*HTTPFetcher)(nil)
	_ Fetcher = (*RateLimitedFetcher)(nil)
)
