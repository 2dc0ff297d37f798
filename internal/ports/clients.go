package ports

import (
	"context"

	"github.com/jsamuelsen11/listing-search-service/internal/domain/listing"
)

// ListingClient defines the client port for the upstream OData listing API.
// Implemented by the ACL adapter; called by the application layer.
//
// Both methods issue exactly one GET request and never retry. Errors wrap
// domain.ErrUpstream for non-success HTTP outcomes and transport failures,
// domain.ErrUpstreamContract for bodies that are not a valid envelope, and
// domain.ErrUnavailable when the circuit breaker refuses the call.
type ListingClient interface {
	// FetchListings queries the Property resource with the given criteria.
	// The criteria are assumed to be validated.
	FetchListings(ctx context.Context, criteria listing.Criteria) (*listing.Envelope, error)

	// FetchHistory queries the change history of one listing, newest first.
	// A blank listingKey fails with a *domain.ValidationError before any
	// request is sent.
	FetchHistory(ctx context.Context, listingKey string) (*listing.Envelope, error)
}
