package handlers_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"

	"github.com/jsamuelsen11/listing-search-service/internal/adapters/http/dto"
	"github.com/jsamuelsen11/listing-search-service/internal/domain/listing"
)

// testPropertyBody is a Property envelope as the upstream sends it,
// including a field the service knows nothing about.
const testPropertyBody = `{"@odata.context":"$metadata#Property","value":[` +
	`{"ListingKey":"W1","City":"Toronto","ListPrice":799000,"Zeta":"kept"},` +
	`{"ListingKey":"W2","City":"Toronto","ListPrice":650000}]}`

// withListingKey sets the {listingKey} path parameter the way chi would
// after matching /api/v1/listings/{listingKey}/history.
func withListingKey(r *http.Request, key string) *http.Request {
	rctx := chi.NewRouteContext()
	rctx.URLParams.Add(dto.ParamListingKey, key)
	return r.WithContext(context.WithValue(r.Context(), chi.RouteCtxKey, rctx))
}

func envelope(t *testing.T, body string) *listing.Envelope {
	t.Helper()
	env, err := listing.DecodeEnvelope([]byte(body))
	if err != nil {
		t.Fatalf("DecodeEnvelope(%s) error = %v", body, err)
	}
	return env
}

func decodeBody[T any](t *testing.T, rec *httptest.ResponseRecorder) T {
	t.Helper()
	var v T
	if err := json.Unmarshal(rec.Body.Bytes(), &v); err != nil {
		t.Fatalf("decoding %q: %v", rec.Body.String(), err)
	}
	return v
}

func wantStatus(t *testing.T, rec *httptest.ResponseRecorder, status int) {
	t.Helper()
	if rec.Code != status {
		t.Errorf("status = %d, want %d; body = %s", rec.Code, status, rec.Body.String())
	}
}
