// Package odata implements the Anti-Corruption Layer translation from listing
// search criteria to the upstream OData query string ($filter, $top,
// $orderby).
//
// The upstream filter language only offers exact, case-sensitive equality on
// text fields: tolower(), contains() and substringof() are rejected. A city
// search is therefore widened into an OR of the common case variants of the
// input. This is a known limitation of the upstream, not a general
// case-insensitive match.
//
// Every function in this package is pure.
package odata

import (
	"net/url"
	"strconv"
	"strings"

	"github.com/jsamuelsen11/listing-search-service/internal/domain/listing"
)

// Upstream field names.
const (
	FieldCity            = "City"
	FieldStateOrProvince = "StateOrProvince"
	FieldListPrice       = "ListPrice"
	FieldBedroomsTotal   = "BedroomsTotal"
	FieldPropertyType    = "PropertyType"
	FieldMlsStatus       = "MlsStatus"
	FieldListingKey      = "ListingKey"
)

// OrderByModifiedDesc is the fixed ordering applied to every query.
const OrderByModifiedDesc = "ModificationTimestamp desc"

// BuildListingQuery returns the query string (without leading "?") for a
// Property search. The $filter parameter is omitted when c has no filter
// fields; $top and $orderby are always present. $filter and $orderby values
// are percent-encoded independently; $top is a bare integer.
func BuildListingQuery(c listing.Criteria) string {
	params := make([]string, 0, 3)

	if filter := FilterExpression(c); filter != "" {
		params = append(params, "$filter="+encodeComponent(filter))
	}
	params = append(params,
		"$top="+strconv.Itoa(c.Limit()),
		"$orderby="+encodeComponent(OrderByModifiedDesc),
	)

	return strings.Join(params, "&")
}

// BuildHistoryQuery returns the query string for the change history of one
// listing.
func BuildHistoryQuery(listingKey string) string {
	return "$filter=" + encodeComponent(eqString(FieldListingKey, listingKey)) +
		"&$orderby=" + encodeComponent(OrderByModifiedDesc)
}

// FilterExpression returns the unencoded $filter expression for c, or "" if
// no filter field is set. Clauses appear in a fixed order (city, state or
// province, price min, price max, bedrooms, property type, status) and are
// joined with "and".
func FilterExpression(c listing.Criteria) string {
	var clauses []string

	if c.City != "" {
		clauses = append(clauses, cityClause(c.City))
	}
	if c.StateOrProvince != "" {
		clauses = append(clauses, eqString(FieldStateOrProvince, c.StateOrProvince))
	}
	if c.PriceMin != nil {
		clauses = append(clauses, FieldListPrice+" ge "+formatNumber(*c.PriceMin))
	}
	if c.PriceMax != nil {
		clauses = append(clauses, FieldListPrice+" le "+formatNumber(*c.PriceMax))
	}
	if c.Bedrooms != nil {
		clauses = append(clauses, FieldBedroomsTotal+" eq "+strconv.Itoa(*c.Bedrooms))
	}
	if c.PropertyType != "" {
		clauses = append(clauses, eqString(FieldPropertyType, c.PropertyType.String()))
	}
	if c.Status != "" {
		clauses = append(clauses, eqString(FieldMlsStatus, c.Status.String()))
	}

	return strings.Join(clauses, " and ")
}

// EscapeLiteral doubles every single quote so v can be embedded in a quoted
// OData string literal.
func EscapeLiteral(v string) string {
	return strings.ReplaceAll(v, "'", "''")
}

// cityClause widens city into a parenthesized OR of exact matches over its
// case variants.
func cityClause(city string) string {
	variants := CityVariants(city)
	parts := make([]string, len(variants))
	for i, v := range variants {
		parts[i] = eqString(FieldCity, v)
	}
	return "(" + strings.Join(parts, " or ") + ")"
}

func eqString(field, value string) string {
	return field + " eq '" + EscapeLiteral(value) + "'"
}

// formatNumber renders v as a plain decimal literal without exponent.
func formatNumber(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

// encodeComponent percent-encodes s for use as a query parameter value.
// Spaces become %20, not "+".
func encodeComponent(s string) string {
	return strings.ReplaceAll(url.QueryEscape(s), "+", "%20")
}
