package httpclient

import (
	"context"
	"errors"
	"log/slog"
	"math"

	"github.com/sony/gobreaker/v2"

	"github.com/jsamuelsen11/listing-search-service/internal/platform/config"
)

// newBreaker opens after cfg.MaxFailures consecutive failures, stays open
// for cfg.Timeout, then admits cfg.HalfOpenLimit trial calls.
func newBreaker(peer string, cfg config.CircuitBreakerConfig, logger *slog.Logger) *gobreaker.CircuitBreaker[struct{}] {
	return gobreaker.NewCircuitBreaker[struct{}](gobreaker.Settings{
		Name:         peer,
		MaxRequests:  uint32(min(max(cfg.HalfOpenLimit, 0), math.MaxUint32)),
		Timeout:      cfg.Timeout,
		IsSuccessful: breakerSuccess,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			return counts.ConsecutiveFailures >= uint32(max(cfg.MaxFailures, 1))
		},
		OnStateChange: func(name string, from, to gobreaker.State) {
			logger.Warn("upstream circuit breaker changed state",
				slog.String("peer", name),
				slog.String("from", from.String()),
				slog.String("to", to.String()),
			)
		},
	})
}

// breakerSuccess is the IsSuccessful hook. A caller abandoning the request
// says nothing about upstream health.
func breakerSuccess(err error) bool {
	return err == nil || errors.Is(err, context.Canceled)
}

// CircuitBreakerState is "closed", "half-open" or "open".
func (c *Client) CircuitBreakerState() string {
	return c.breaker.State().String()
}

// IsBreakerRejection reports whether err is the breaker refusing a call
// rather than an upstream outcome.
func IsBreakerRejection(err error) bool {
	return errors.Is(err, gobreaker.ErrOpenState) || errors.Is(err, gobreaker.ErrTooManyRequests)
}
