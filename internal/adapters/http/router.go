// Package http is the inbound adapter: the search and history routes, the
// health probes and the server lifecycle.
package http

import (
	"fmt"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/jsamuelsen11/listing-search-service/internal/adapters/http/dto"
	"github.com/jsamuelsen11/listing-search-service/internal/adapters/http/handlers"
	"github.com/jsamuelsen11/listing-search-service/internal/domain"
)

// Handlers are the endpoint handlers NewRouter mounts.
type Handlers struct {
	Listings *handlers.ListingHandler
	Health   *handlers.HealthHandler
}

// NewRouter mounts every route behind middlewares, outermost first.
//
// The browser front end calls the flat /api routes. /api/v1 serves the same
// operations with the listing key as a path segment. Unknown paths and
// methods answer with a problem body like every other error.
func NewRouter(h Handlers, middlewares ...func(http.Handler) http.Handler) http.Handler {
	r := chi.NewRouter()
	r.Use(middlewares...)

	r.NotFound(func(w http.ResponseWriter, r *http.Request) {
		dto.WriteErrorResponse(w, r, fmt.Errorf("no route for %s %s: %w", r.Method, r.URL.Path, domain.ErrNotFound))
	})
	r.MethodNotAllowed(func(w http.ResponseWriter, r *http.Request) {
		dto.WriteStatusProblem(w, r, http.StatusMethodNotAllowed,
			fmt.Sprintf("%s is not served on %s", r.Method, r.URL.Path))
	})

	r.Get("/health/live", h.Health.Liveness)
	r.Get("/health/ready", h.Health.Readiness)

	r.Route("/api", func(api chi.Router) {
		api.Get("/properties", h.Listings.Search)
		api.Get("/history", h.Listings.History)

		api.Get("/v1/properties", h.Listings.Search)
		api.Get("/v1/listings/{"+dto.ParamListingKey+"}/history", h.Listings.History)
	})

	return r
}
