// Package httpclient is the outbound side of the service: the one HTTP
// client that talks to the listing API.
//
// A call passes, in order, through the circuit breaker, the optional rate
// limiter, request and correlation ID headers, and a client span before it
// reaches the network:
//
//	resp, err := client.Do(ctx, req)
//
// Calls are made once. No timeout is set unless client.timeout is
// configured; the caller's context bounds the call.
package httpclient

import (
	"context"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/sony/gobreaker/v2"
	"golang.org/x/time/rate"

	"github.com/jsamuelsen11/listing-search-service/internal/platform/config"
	"github.com/jsamuelsen11/listing-search-service/internal/platform/telemetry"
)

// Client sends requests to one upstream service.
type Client struct {
	http    *http.Client
	baseURL string
	peer    string
	breaker *gobreaker.CircuitBreaker[struct{}]
	limiter *rate.Limiter
	metrics *telemetry.Metrics
}

// New returns a Client for the upstream rooted at baseURL. peer names the
// upstream in spans, metrics and breaker logs. metrics may be nil.
func New(cfg *config.ClientConfig, baseURL, peer string, metrics *telemetry.Metrics, logger *slog.Logger) *Client {
	c := &Client{
		http:    &http.Client{Timeout: cfg.Timeout},
		baseURL: strings.TrimRight(baseURL, "/"),
		peer:    peer,
		breaker: newBreaker(peer, cfg.CircuitBreaker, logger),
		metrics: metrics,
	}
	if rl := cfg.RateLimit; rl.RequestsPerSecond > 0 {
		c.limiter = rate.NewLimiter(rate.Limit(rl.RequestsPerSecond), rl.BurstSize)
	}
	return c
}

// Do sends req once and returns the upstream response.
//
// resp is non-nil whenever the upstream answered, and the caller must close
// its body. A 5xx or 429 answer comes back with err wrapping
// ErrFailureStatus as well. resp is nil when the breaker refused the call,
// the limiter wait was abandoned, or the transport failed.
func (c *Client) Do(ctx context.Context, req *http.Request) (*http.Response, error) {
	start := time.Now()

	var resp *http.Response
	_, err := c.breaker.Execute(func() (struct{}, error) {
		if c.limiter != nil {
			if err := c.limiter.Wait(ctx); err != nil {
				return struct{}{}, err
			}
		}

		setOutboundIDs(ctx, req.Header)

		spanCtx, span := c.startSpan(ctx, req)
		defer span.End()

		err := c.send(req.WithContext(spanCtx), &resp)
		endSpan(span, resp, err)
		return struct{}{}, err
	})

	c.record(ctx, req.Method, time.Since(start), resp, err)
	return resp, err
}

// BaseURL is the upstream root without a trailing slash.
func (c *Client) BaseURL() string {
	return c.baseURL
}
