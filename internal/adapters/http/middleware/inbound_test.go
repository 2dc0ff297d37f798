package middleware_test

import (
	"bytes"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/jsamuelsen11/listing-search-service/internal/adapters/http/middleware"
	"github.com/jsamuelsen11/listing-search-service/internal/platform/config"
)

// inboundHandler wraps h in the full inbound stack, outermost first.
func inboundHandler(cfg middleware.InboundConfig, h http.Handler) http.Handler {
	mws := middleware.Inbound(cfg)
	for i := len(mws) - 1; i >= 0; i-- {
		h = mws[i](h)
	}
	return h
}

func TestInbound_SearchRequest(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	handler := inboundHandler(middleware.InboundConfig{
		Logger:         testLogger(&buf),
		RequestTimeout: 5 * time.Second,
	}, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if middleware.RequestIDFromContext(r.Context()) == "" {
			t.Error("request ID missing from handler context")
		}
		if _, ok := r.Context().Deadline(); !ok {
			t.Error("handler context has no deadline")
		}
		_, _ = w.Write([]byte(`{"value":[]}`))
	}))

	rec := serveSearch(handler)

	if rec.Code != http.StatusOK {
		t.Errorf("status = %d, want %d", rec.Code, http.StatusOK)
	}
	reqID := rec.Header().Get("X-Request-ID")
	if reqID == "" {
		t.Fatal("response missing X-Request-ID")
	}
	if got := rec.Header().Get("X-Correlation-ID"); got != reqID {
		t.Errorf("X-Correlation-ID = %q, want request ID %q", got, reqID)
	}

	logOutput := buf.String()
	for _, want := range []string{"request started", "request completed", "city=Toronto", "request_id=" + reqID} {
		if !strings.Contains(logOutput, want) {
			t.Errorf("log output missing %q:\n%s", want, logOutput)
		}
	}
}

func TestInbound_PanicKeepsRequestID(t *testing.T) {
	t.Parallel()

	handler := inboundHandler(middleware.InboundConfig{
		Logger:         discardLogger(),
		RequestTimeout: 5 * time.Second,
	}, http.HandlerFunc(func(http.ResponseWriter, *http.Request) {
		panic("boom")
	}))

	rec := serveSearch(handler)

	if rec.Code != http.StatusInternalServerError {
		t.Errorf("status = %d, want %d", rec.Code, http.StatusInternalServerError)
	}
	if rec.Header().Get("X-Request-ID") == "" {
		t.Error("panic response missing X-Request-ID")
	}
}

func TestInbound_PreflightAnsweredBeforeHandler(t *testing.T) {
	t.Parallel()

	called := false
	handler := inboundHandler(middleware.InboundConfig{
		Logger:         discardLogger(),
		CORS:           config.CORSConfig{AllowedOrigins: []string{"http://localhost:5173"}, MaxAge: 300},
		RequestTimeout: 5 * time.Second,
	}, http.HandlerFunc(func(http.ResponseWriter, *http.Request) {
		called = true
	}))

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodOptions, "/api/properties", http.NoBody)
	req.Header.Set("Origin", "http://localhost:5173")
	req.Header.Set("Access-Control-Request-Method", http.MethodGet)
	handler.ServeHTTP(rec, req)

	if called {
		t.Error("preflight reached the handler")
	}
	if got := rec.Header().Get("Access-Control-Allow-Origin"); got != "http://localhost:5173" {
		t.Errorf("Access-Control-Allow-Origin = %q, want the configured origin", got)
	}
	if rec.Header().Get("X-Request-ID") == "" {
		t.Error("preflight response missing X-Request-ID")
	}
}
