package middleware

import (
	"context"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/propagation"
	"go.opentelemetry.io/otel/trace"

	"github.com/jsamuelsen11/listing-search-service/internal/platform/telemetry"
)

const tracerName = "github.com/jsamuelsen11/listing-search-service/internal/adapters/http/middleware"

// OpenTelemetry opens a server span per request, continuing any W3C trace
// the caller sent, and records request metrics when metrics is non-nil.
//
// Spans and metric series are keyed by the chi route pattern, e.g.
// /api/v1/listings/{listingKey}/history, so neither listing keys nor search
// filters multiply the series. Outside a chi router the raw path is used.
func OpenTelemetry(metrics *telemetry.Metrics) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()

			ctx := otel.GetTextMapPropagator().Extract(r.Context(), propagation.HeaderCarrier(r.Header))
			ctx, span := otel.Tracer(tracerName).Start(ctx, "HTTP "+r.Method+" "+r.URL.Path,
				trace.WithSpanKind(trace.SpanKindServer),
				trace.WithAttributes(
					telemetry.AttrHTTPMethod.String(r.Method),
					telemetry.AttrHTTPURL.String(r.URL.String()),
				),
			)
			defer span.End()

			rw := recordStatus(w)
			r = r.WithContext(ctx)
			next.ServeHTTP(rw, r)

			route := r.URL.Path
			if pattern := routePattern(r); pattern != "" {
				route = pattern
				span.SetName("HTTP " + r.Method + " " + route)
			}
			span.SetAttributes(
				telemetry.AttrHTTPRoute.String(route),
				telemetry.AttrHTTPStatus.Int(rw.status),
			)
			// 4xx is the caller's doing and leaves the span unset.
			if rw.status >= http.StatusInternalServerError {
				span.SetStatus(codes.Error, http.StatusText(rw.status))
			}

			if metrics != nil {
				recordRequest(ctx, metrics, r.Method, route, rw.status, time.Since(start))
			}
		})
	}
}

// routePattern is the matched chi pattern, or "" outside a chi router. chi
// fills the route context in place, so it is complete after ServeHTTP.
func routePattern(r *http.Request) string {
	if rctx := chi.RouteContext(r.Context()); rctx != nil {
		return rctx.RoutePattern()
	}
	return ""
}

func recordRequest(ctx context.Context, metrics *telemetry.Metrics, method, route string, status int, elapsed time.Duration) {
	result := "success"
	if status >= http.StatusBadRequest {
		result = "error"
	}

	attrs := metric.WithAttributes(
		telemetry.AttrHTTPMethod.String(method),
		telemetry.AttrHTTPRoute.String(route),
		telemetry.AttrHTTPStatus.Int(status),
		telemetry.AttrResult.String(result),
	)
	metrics.ServerRequestDuration.Record(ctx, elapsed.Seconds(), attrs)
	metrics.ServerRequestTotal.Add(ctx, 1, attrs)
}
