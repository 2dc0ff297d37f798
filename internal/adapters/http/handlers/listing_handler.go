package handlers

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/jsamuelsen11/listing-search-service/internal/adapters/http/dto"
	"github.com/jsamuelsen11/listing-search-service/internal/platform/validator"
	"github.com/jsamuelsen11/listing-search-service/internal/ports"
)

// ListingHandler handles the property search and listing history endpoints.
// Successful responses carry the upstream envelope unchanged.
type ListingHandler struct {
	service  ports.ListingService
	validate *validator.Validator
}

// NewListingHandler creates a ListingHandler backed by the given service.
func NewListingHandler(service ports.ListingService, validate *validator.Validator) *ListingHandler {
	return &ListingHandler{service: service, validate: validate}
}

// Search handles GET /api/properties and GET /api/v1/properties.
// Query parameters: city, stateOrProvince, priceMin, priceMax, bedrooms,
// propertyType, mlsStatus, top. All are optional.
func (h *ListingHandler) Search(w http.ResponseWriter, r *http.Request) {
	req, err := dto.ParseSearchRequest(r.URL.Query())
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}
	if !validRequest(w, r, h.validate, req) {
		return
	}

	env, err := h.service.Search(r.Context(), req.ToCriteria())
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	dto.WriteEnvelope(w, r, env)
}

// History handles GET /api/history?listingKey={key} and
// GET /api/v1/listings/{listingKey}/history. The path parameter wins when
// both are present.
func (h *ListingHandler) History(w http.ResponseWriter, r *http.Request) {
	key := chi.URLParam(r, dto.ParamListingKey)
	if key == "" {
		key = r.URL.Query().Get(dto.ParamListingKey)
	}

	req := dto.NewHistoryRequest(key)
	if !validRequest(w, r, h.validate, req) {
		return
	}

	env, err := h.service.History(r.Context(), req.ListingKey)
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	dto.WriteEnvelope(w, r, env)
}
