// Package dto provides HTTP request/response data transfer objects and
// RFC 9457 Problem Details error responses for the inbound HTTP adapter layer.
package dto

import (
	"log/slog"
	"net/http"
	"strconv"

	"github.com/jsamuelsen11/listing-search-service/internal/domain/listing"
	"github.com/jsamuelsen11/listing-search-service/internal/platform/logging"
)

// HeaderResultCount carries the number of records in a pass-through
// envelope so clients can read it without parsing the body.
const HeaderResultCount = "X-Result-Count"

// WriteEnvelope writes the upstream body of env unchanged with status 200.
// Responses are never cached: listing data changes continuously.
func WriteEnvelope(w http.ResponseWriter, r *http.Request, env *listing.Envelope) {
	h := w.Header()
	h.Set("Content-Type", "application/json")
	h.Set("Cache-Control", "no-store")
	h.Set(HeaderResultCount, strconv.Itoa(env.Len()))
	w.WriteHeader(http.StatusOK)

	if _, err := w.Write(env.Raw); err != nil {
		logging.FromContext(r.Context()).ErrorContext(r.Context(), "writing envelope failed",
			slog.Int("records", env.Len()),
			slog.Any("error", err),
		)
	}
}
