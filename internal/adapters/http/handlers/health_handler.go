package handlers

import (
	"log/slog"
	"net/http"

	"github.com/jsamuelsen11/listing-search-service/internal/adapters/http/dto"
	"github.com/jsamuelsen11/listing-search-service/internal/platform/logging"
	"github.com/jsamuelsen11/listing-search-service/internal/ports"
)

// HealthHandler serves the liveness and readiness probes.
type HealthHandler struct {
	registry ports.HealthRegistry
}

// NewHealthHandler creates a HealthHandler backed by registry.
func NewHealthHandler(registry ports.HealthRegistry) *HealthHandler {
	return &HealthHandler{registry: registry}
}

// Liveness handles GET /health/live. A process that can answer is alive.
func (h *HealthHandler) Liveness(w http.ResponseWriter, r *http.Request) {
	dto.WriteJSON(w, r, http.StatusOK, dto.Live())
}

// Readiness handles GET /health/ready. The service is ready while every
// registered check passes; for the listing API that means its circuit
// breaker is closed. Not ready answers 503.
func (h *HealthHandler) Readiness(w http.ResponseWriter, r *http.Request) {
	body, failing := dto.NewReadiness(h.registry.CheckAll(r.Context()))

	code := http.StatusOK
	if len(failing) > 0 {
		code = http.StatusServiceUnavailable
		logging.FromContext(r.Context()).WarnContext(r.Context(), "readiness check failed",
			slog.Any("failing", failing),
		)
	}

	dto.WriteJSON(w, r, code, body)
}
