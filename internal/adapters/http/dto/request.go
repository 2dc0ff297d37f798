package dto

import (
	"math"
	"net/url"
	"strconv"
	"strings"

	"github.com/jsamuelsen11/listing-search-service/internal/domain"
	"github.com/jsamuelsen11/listing-search-service/internal/domain/listing"
)

// Query parameter names accepted by the search and history endpoints.
const (
	ParamCity            = "city"
	ParamStateOrProvince = "stateOrProvince"
	ParamPriceMin        = "priceMin"
	ParamPriceMax        = "priceMax"
	ParamBedrooms        = "bedrooms"
	ParamPropertyType    = "propertyType"
	ParamMlsStatus       = "mlsStatus"
	ParamTop             = "top"
	ParamListingKey      = "listingKey"
)

// SearchRequest holds the flat query parameters of a listing search. Text
// values are trimmed; an empty value is the same as an absent one.
type SearchRequest struct {
	City            string   `query:"city"`
	StateOrProvince string   `query:"stateOrProvince"`
	PriceMin        *float64 `query:"priceMin" validate:"omitempty,gte=0"`
	PriceMax        *float64 `query:"priceMax" validate:"omitempty,gte=0"`
	Bedrooms        *int     `query:"bedrooms" validate:"omitempty,gte=0"`
	PropertyType    string   `query:"propertyType"`
	MlsStatus       string   `query:"mlsStatus"`
	Top             int      `query:"top" validate:"gte=0"`
}

// ParseSearchRequest reads a SearchRequest from query parameters. Numeric
// parameters that do not parse, or parse to NaN or infinity, are reported
// together in a *domain.ValidationError.
func ParseSearchRequest(q url.Values) (*SearchRequest, error) {
	req := &SearchRequest{
		City:            param(q, ParamCity),
		StateOrProvince: param(q, ParamStateOrProvince),
		PropertyType:    param(q, ParamPropertyType),
		MlsStatus:       param(q, ParamMlsStatus),
	}
	fields := make(map[string]string)

	req.PriceMin = parseFloat(q, ParamPriceMin, fields)
	req.PriceMax = parseFloat(q, ParamPriceMax, fields)
	req.Bedrooms = parseInt(q, ParamBedrooms, fields)
	if top := parseInt(q, ParamTop, fields); top != nil {
		req.Top = *top
	}

	if len(fields) > 0 {
		return nil, &domain.ValidationError{Fields: fields}
	}
	return req, nil
}

// ToCriteria converts the request to domain search criteria.
func (r *SearchRequest) ToCriteria() listing.Criteria {
	return listing.Criteria{
		City:            r.City,
		StateOrProvince: r.StateOrProvince,
		PriceMin:        r.PriceMin,
		PriceMax:        r.PriceMax,
		Bedrooms:        r.Bedrooms,
		PropertyType:    listing.PropertyType(r.PropertyType),
		Status:          listing.Status(r.MlsStatus),
		Top:             r.Top,
	}
}

// HistoryRequest holds the parameters of a history lookup.
type HistoryRequest struct {
	ListingKey string `query:"listingKey" validate:"required"`
}

// NewHistoryRequest builds a HistoryRequest from a raw key, trimming it.
func NewHistoryRequest(listingKey string) *HistoryRequest {
	return &HistoryRequest{ListingKey: strings.TrimSpace(listingKey)}
}

func param(q url.Values, name string) string {
	return strings.TrimSpace(q.Get(name))
}

func parseFloat(q url.Values, name string, fields map[string]string) *float64 {
	raw := param(q, name)
	if raw == "" {
		return nil
	}
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
		fields[name] = domain.MsgNotANumber
		return nil
	}
	return &v
}

func parseInt(q url.Values, name string, fields map[string]string) *int {
	raw := param(q, name)
	if raw == "" {
		return nil
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		fields[name] = "must be an integer"
		return nil
	}
	return &v
}
