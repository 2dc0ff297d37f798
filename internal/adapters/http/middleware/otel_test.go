package middleware_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/propagation"
	sdkmetric "go.opentelemetry.io/otel/sdk/metric"
	"go.opentelemetry.io/otel/sdk/metric/metricdata"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/sdk/trace/tracetest"

	"github.com/jsamuelsen11/listing-search-service/internal/adapters/http/middleware"
	"github.com/jsamuelsen11/listing-search-service/internal/platform/telemetry"
)

// Span tests swap the global tracer provider and cannot run in parallel.

func recordSpans(t *testing.T) *tracetest.InMemoryExporter {
	t.Helper()

	exporter := tracetest.NewInMemoryExporter()
	tp := sdktrace.NewTracerProvider(sdktrace.WithSyncer(exporter))
	prevTP, prevProp := otel.GetTracerProvider(), otel.GetTextMapPropagator()
	otel.SetTracerProvider(tp)
	otel.SetTextMapPropagator(propagation.TraceContext{})

	t.Cleanup(func() {
		_ = tp.Shutdown(t.Context())
		otel.SetTracerProvider(prevTP)
		otel.SetTextMapPropagator(prevProp)
	})
	return exporter
}

// listingRouter mounts the search routes behind the middleware, each
// answering with status.
func listingRouter(metrics *telemetry.Metrics, status int) http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.OpenTelemetry(metrics))
	reply := func(w http.ResponseWriter, _ *http.Request) { w.WriteHeader(status) }
	r.Get("/api/properties", reply)
	r.Get("/api/v1/listings/{listingKey}/history", reply)
	return r
}

func spanAttrs(span sdktrace.ReadOnlySpan) map[attribute.Key]attribute.Value {
	attrs := make(map[attribute.Key]attribute.Value)
	for _, kv := range span.Attributes() {
		attrs[kv.Key] = kv.Value
	}
	return attrs
}

func TestOpenTelemetry_Spans(t *testing.T) {
	tests := []struct {
		name      string
		target    string
		status    int
		wantName  string
		wantRoute string
		wantError bool
	}{
		{
			name:      "search",
			target:    "/api/properties?city=Toronto&minPrice=400000",
			status:    http.StatusOK,
			wantName:  "HTTP GET /api/properties",
			wantRoute: "/api/properties",
		},
		{
			name:      "history keyed by pattern",
			target:    "/api/v1/listings/W123/history",
			status:    http.StatusOK,
			wantName:  "HTTP GET /api/v1/listings/{listingKey}/history",
			wantRoute: "/api/v1/listings/{listingKey}/history",
		},
		{
			name:      "bad criteria is not a span error",
			target:    "/api/properties?bedrooms=many",
			status:    http.StatusBadRequest,
			wantName:  "HTTP GET /api/properties",
			wantRoute: "/api/properties",
		},
		{
			name:      "upstream failure marks span",
			target:    "/api/properties",
			status:    http.StatusBadGateway,
			wantName:  "HTTP GET /api/properties",
			wantRoute: "/api/properties",
			wantError: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			exporter := recordSpans(t)

			rec := httptest.NewRecorder()
			listingRouter(nil, tt.status).ServeHTTP(rec, httptest.NewRequest(http.MethodGet, tt.target, http.NoBody))

			spans := exporter.GetSpans().Snapshots()
			if len(spans) != 1 {
				t.Fatalf("recorded %d spans, want 1", len(spans))
			}
			span := spans[0]
			if span.Name() != tt.wantName {
				t.Errorf("span name = %q, want %q", span.Name(), tt.wantName)
			}

			attrs := spanAttrs(span)
			if got := attrs["http.route"].AsString(); got != tt.wantRoute {
				t.Errorf("http.route = %q, want %q", got, tt.wantRoute)
			}
			if got := attrs["http.status_code"].AsInt64(); got != int64(tt.status) {
				t.Errorf("http.status_code = %d, want %d", got, tt.status)
			}
			if gotErr := span.Status().Code == codes.Error; gotErr != tt.wantError {
				t.Errorf("span status = %v, want error=%v", span.Status().Code, tt.wantError)
			}
		})
	}
}

func TestOpenTelemetry_JoinsIncomingTrace(t *testing.T) {
	exporter := recordSpans(t)

	const traceID = "4bf92f3577b34da6a3ce929d0e0e4736"
	req := httptest.NewRequest(http.MethodGet, "/api/properties", http.NoBody)
	req.Header.Set("traceparent", "00-"+traceID+"-00f067aa0ba902b7-01")

	listingRouter(nil, http.StatusOK).ServeHTTP(httptest.NewRecorder(), req)

	spans := exporter.GetSpans().Snapshots()
	if len(spans) != 1 {
		t.Fatalf("recorded %d spans, want 1", len(spans))
	}
	if got := spans[0].SpanContext().TraceID().String(); got != traceID {
		t.Errorf("trace ID = %s, want %s from traceparent", got, traceID)
	}
	if !spans[0].Parent().IsRemote() {
		t.Error("span parent is not the remote caller")
	}
}

func TestOpenTelemetry_RecordsServerMetrics(t *testing.T) {
	t.Parallel()

	reader := sdkmetric.NewManualReader()
	mp := sdkmetric.NewMeterProvider(sdkmetric.WithReader(reader))
	t.Cleanup(func() { _ = mp.Shutdown(t.Context()) })

	metrics, err := telemetry.NewMetrics(mp, "listing-search-service")
	if err != nil {
		t.Fatalf("NewMetrics() error = %v", err)
	}

	router := listingRouter(metrics, http.StatusOK)
	for _, key := range []string{"W1", "W2", "W3"} {
		router.ServeHTTP(httptest.NewRecorder(),
			httptest.NewRequest(http.MethodGet, "/api/v1/listings/"+key+"/history", http.NoBody))
	}

	var rm metricdata.ResourceMetrics
	if err := reader.Collect(t.Context(), &rm); err != nil {
		t.Fatalf("Collect() error = %v", err)
	}

	var total *metricdata.Sum[int64]
	for _, sm := range rm.ScopeMetrics {
		for _, md := range sm.Metrics {
			if md.Name == "http.server.request.total" {
				if sum, ok := md.Data.(metricdata.Sum[int64]); ok {
					total = &sum
				}
			}
		}
	}
	if total == nil {
		t.Fatal("http.server.request.total not collected")
	}
	if len(total.DataPoints) != 1 {
		t.Fatalf("request total has %d series, want 1 (one per route pattern)", len(total.DataPoints))
	}

	point := total.DataPoints[0]
	if point.Value != 3 {
		t.Errorf("request total = %d, want 3", point.Value)
	}
	route, _ := point.Attributes.Value(telemetry.AttrHTTPRoute)
	if route.AsString() != "/api/v1/listings/{listingKey}/history" {
		t.Errorf("route attribute = %q, want the pattern", route.AsString())
	}
}

func TestOpenTelemetry_NilMetrics(t *testing.T) {
	t.Parallel()

	rec := httptest.NewRecorder()
	listingRouter(nil, http.StatusOK).ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/properties", http.NoBody))

	if rec.Code != http.StatusOK {
		t.Errorf("status = %d, want %d", rec.Code, http.StatusOK)
	}
}
