// Package middleware provides the inbound HTTP pipeline for the listing
// search routes. Every middleware is a func(http.Handler) http.Handler;
// [Inbound] returns them in the order the server installs them.
package middleware

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/jsamuelsen11/listing-search-service/internal/platform/config"
	"github.com/jsamuelsen11/listing-search-service/internal/platform/telemetry"
)

// InboundConfig carries what the inbound pipeline needs from the process.
type InboundConfig struct {
	Logger *slog.Logger
	// Metrics may be nil when telemetry is disabled.
	Metrics        *telemetry.Metrics
	CORS           config.CORSConfig
	RequestTimeout time.Duration
}

// Inbound returns the middleware stack, outermost first:
//
//	Recovery → RequestID → CorrelationID → CORS → OpenTelemetry → Logging → Timeout
//
// Recovery wraps everything so a panic anywhere still yields a problem
// response. CORS answers preflights before they are traced or logged.
// Timeout is innermost so the logged duration includes a timed-out request.
func Inbound(cfg InboundConfig) []func(http.Handler) http.Handler {
	return []func(http.Handler) http.Handler{
		Recovery(cfg.Logger),
		RequestID(),
		CorrelationID(),
		CORS(cfg.CORS),
		OpenTelemetry(cfg.Metrics),
		Logging(cfg.Logger),
		Timeout(cfg.RequestTimeout),
	}
}
