package middleware

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/jsamuelsen11/listing-search-service/internal/platform/logging"
)

// Logging writes a "request started" and a "request completed" line per
// request and puts a child of logger, tagged with the request and
// correlation IDs, into the context for handlers and services.
//
// The start line carries the raw query string, which is where search
// filters live. The completion line is logged at info below 400, warn for
// 4xx and error for 5xx. At debug level the request headers are dumped with
// credentials redacted.
func Logging(logger *slog.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()
			ctx := r.Context()

			reqLogger := logger.With(
				slog.String("request_id", RequestIDFromContext(ctx)),
				slog.String("correlation_id", CorrelationIDFromContext(ctx)),
			)
			ctx = logging.WithLogger(ctx, reqLogger)
			route := []any{slog.String("method", r.Method), slog.String("path", r.URL.Path)}

			reqLogger.InfoContext(ctx, "request started", append(route, slog.String("query", r.URL.RawQuery))...)
			if reqLogger.Enabled(ctx, slog.LevelDebug) {
				reqLogger.DebugContext(ctx, "request headers", RedactHeaders(r.Header))
			}

			rw := recordStatus(w)
			next.ServeHTTP(rw, r.WithContext(ctx))

			reqLogger.Log(ctx, levelForStatus(rw.status), "request completed", append(route,
				slog.Int("status", rw.status),
				slog.Int64("bytes", rw.bytes),
				slog.Duration("duration", time.Since(start)),
			)...)
		})
	}
}

func levelForStatus(status int) slog.Level {
	if status >= http.StatusInternalServerError {
		return slog.LevelError
	}
	if status >= http.StatusBadRequest {
		return slog.LevelWarn
	}
	return slog.LevelInfo
}
