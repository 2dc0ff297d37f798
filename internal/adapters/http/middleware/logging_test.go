package middleware_test

import (
	"bytes"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/jsamuelsen11/listing-search-service/internal/adapters/http/middleware"
	"github.com/jsamuelsen11/listing-search-service/internal/platform/logging"
)

func TestLogging_HistoryRequest(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	handler := middleware.Logging(testLogger(&buf))(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	}))

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/v1/listings/W123/history", http.NoBody)
	handler.ServeHTTP(rec, req)

	output := buf.String()
	for _, want := range []string{
		"request started",
		"request completed",
		"method=GET",
		"path=/api/v1/listings/W123/history",
		"status=404",
		"duration=",
	} {
		if !strings.Contains(output, want) {
			t.Errorf("log output missing %q:\n%s", want, output)
		}
	}
}

func TestLogging_ContextLoggerCarriesIDs(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	handler := middleware.RequestID()(middleware.CorrelationID()(
		middleware.Logging(testLogger(&buf))(http.HandlerFunc(func(_ http.ResponseWriter, r *http.Request) {
			logging.FromContext(r.Context()).InfoContext(r.Context(), "searching upstream")
		})),
	))

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/properties?city=Toronto", http.NoBody)
	req.Header.Set("X-Request-ID", "req-log-1")
	req.Header.Set("X-Correlation-ID", "corr-log-1")
	handler.ServeHTTP(rec, req)

	var handlerLine string
	for line := range strings.Lines(buf.String()) {
		if strings.Contains(line, "searching upstream") {
			handlerLine = line
		}
	}
	if handlerLine == "" {
		t.Fatalf("handler log line not written through the context logger:\n%s", buf.String())
	}
	for _, want := range []string{"request_id=req-log-1", "correlation_id=corr-log-1"} {
		if !strings.Contains(handlerLine, want) {
			t.Errorf("handler log line = %q, want %s", handlerLine, want)
		}
	}
}

func TestLogging_DebugHeadersRedacted(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	handler := middleware.Logging(testLogger(&buf))(http.HandlerFunc(func(http.ResponseWriter, *http.Request) {}))

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/properties", http.NoBody)
	req.Header.Set("Authorization", "Bearer leaked-token")
	req.Header.Set("Origin", "http://localhost:5173")
	handler.ServeHTTP(rec, req)

	output := buf.String()
	if strings.Contains(output, "leaked-token") {
		t.Errorf("debug header dump leaked the credential:\n%s", output)
	}
	for _, want := range []string{"headers.Authorization=[REDACTED]", "headers.Origin=http://localhost:5173"} {
		if !strings.Contains(output, want) {
			t.Errorf("log output missing %q:\n%s", want, output)
		}
	}
}

func TestLogging_IncludesSearchQuery(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	handler := middleware.Logging(testLogger(&buf))(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte(`{"value":[]}`))
	}))

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/properties?city=Toronto&top=5", http.NoBody)
	handler.ServeHTTP(rec, req)

	output := buf.String()
	if !strings.Contains(output, "city=Toronto&top=5") {
		t.Errorf("log output missing query string: %s", output)
	}
	if !strings.Contains(output, "bytes=12") {
		t.Errorf("log output missing response size: %s", output)
	}
}

func TestLogging_LevelFollowsStatus(t *testing.T) {
	t.Parallel()

	tests := []struct {
		status    int
		wantLevel string
	}{
		{status: http.StatusOK, wantLevel: "level=INFO"},
		{status: http.StatusBadRequest, wantLevel: "level=WARN"},
		{status: http.StatusBadGateway, wantLevel: "level=ERROR"},
	}

	for _, tt := range tests {
		var buf bytes.Buffer
		handler := middleware.Logging(testLogger(&buf))(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
			w.WriteHeader(tt.status)
		}))

		rec := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/api/properties", http.NoBody)
		handler.ServeHTTP(rec, req)

		var completed string
		for line := range strings.Lines(buf.String()) {
			if strings.Contains(line, "request completed") {
				completed = line
			}
		}
		if !strings.Contains(completed, tt.wantLevel) {
			t.Errorf("status %d: completion line = %q, want %s", tt.status, completed, tt.wantLevel)
		}
	}
}
