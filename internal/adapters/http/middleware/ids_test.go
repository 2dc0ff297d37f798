package middleware_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"regexp"
	"strings"
	"testing"

	"github.com/jsamuelsen11/listing-search-service/internal/adapters/http/middleware"
)

var uuidPattern = regexp.MustCompile(`^[0-9a-f]{8}-[0-9a-f]{4}-4[0-9a-f]{3}-[89ab][0-9a-f]{3}-[0-9a-f]{12}$`)

// captureIDs runs a search request through RequestID and CorrelationID and
// returns the IDs the handler saw along with the response.
func captureIDs(t *testing.T, headers map[string]string) (reqID, corrID string, rec *httptest.ResponseRecorder) {
	t.Helper()

	handler := middleware.RequestID()(middleware.CorrelationID()(
		http.HandlerFunc(func(_ http.ResponseWriter, r *http.Request) {
			reqID = middleware.RequestIDFromContext(r.Context())
			corrID = middleware.CorrelationIDFromContext(r.Context())
		}),
	))

	rec = httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/properties?city=Toronto", http.NoBody)
	for k, v := range headers {
		req.Header.Set(k, v)
	}
	handler.ServeHTTP(rec, req)
	return reqID, corrID, rec
}

func TestRequestID_GeneratesUUID(t *testing.T) {
	t.Parallel()

	reqID, _, rec := captureIDs(t, nil)

	if !uuidPattern.MatchString(reqID) {
		t.Errorf("request ID %q is not a UUID v4", reqID)
	}
	if got := rec.Header().Get("X-Request-ID"); got != reqID {
		t.Errorf("response X-Request-ID = %q, want %q", got, reqID)
	}
}

func TestRequestID_IncomingHeader(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		incoming string
		wantKept bool
	}{
		{name: "plain id kept", incoming: "req-7f3a", wantKept: true},
		{name: "128 bytes kept", incoming: strings.Repeat("a", 128), wantKept: true},
		{name: "129 bytes replaced", incoming: strings.Repeat("a", 129)},
		{name: "space replaced", incoming: "req 1"},
		{name: "control character replaced", incoming: "req\x01forged"},
		{name: "non-ascii replaced", incoming: "réq-1"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			reqID, _, _ := captureIDs(t, map[string]string{"X-Request-ID": tt.incoming})

			if tt.wantKept && reqID != tt.incoming {
				t.Errorf("request ID = %q, want incoming %q", reqID, tt.incoming)
			}
			if !tt.wantKept && !uuidPattern.MatchString(reqID) {
				t.Errorf("request ID = %q, want a generated UUID", reqID)
			}
		})
	}
}

func TestRequestID_UniqueAcrossRequests(t *testing.T) {
	t.Parallel()

	seen := make(map[string]struct{})
	for range 50 {
		reqID, _, _ := captureIDs(t, nil)
		seen[reqID] = struct{}{}
	}
	if len(seen) != 50 {
		t.Errorf("unique request IDs = %d, want 50", len(seen))
	}
}

func TestCorrelationID_KeepsIncomingHeader(t *testing.T) {
	t.Parallel()

	reqID, corrID, rec := captureIDs(t, map[string]string{"X-Correlation-ID": "browser-session-42"})

	if corrID != "browser-session-42" {
		t.Errorf("correlation ID = %q, want %q", corrID, "browser-session-42")
	}
	if corrID == reqID {
		t.Error("correlation ID fell back to the request ID despite a usable header")
	}
	if got := rec.Header().Get("X-Correlation-ID"); got != corrID {
		t.Errorf("response X-Correlation-ID = %q, want %q", got, corrID)
	}
}

func TestCorrelationID_FallsBackToRequestID(t *testing.T) {
	t.Parallel()

	for _, incoming := range []string{"", strings.Repeat("c", 200)} {
		reqID, corrID, rec := captureIDs(t, map[string]string{
			"X-Request-ID":     "req-from-gateway",
			"X-Correlation-ID": incoming,
		})

		if reqID != "req-from-gateway" {
			t.Fatalf("request ID = %q, want %q", reqID, "req-from-gateway")
		}
		if corrID != reqID {
			t.Errorf("correlation ID = %q, want request ID %q", corrID, reqID)
		}
		if got := rec.Header().Get("X-Correlation-ID"); got != reqID {
			t.Errorf("response X-Correlation-ID = %q, want %q", got, reqID)
		}
	}
}

func TestIDsFromContext_Empty(t *testing.T) {
	t.Parallel()

	if got := middleware.RequestIDFromContext(context.Background()); got != "" {
		t.Errorf("RequestIDFromContext() = %q, want empty", got)
	}
	if got := middleware.CorrelationIDFromContext(context.Background()); got != "" {
		t.Errorf("CorrelationIDFromContext() = %q, want empty", got)
	}
}
