package ports

import (
	"context"

	"github.com/jsamuelsen11/listing-search-service/internal/domain/listing"
)

// ListingService defines the service port for property search.
// Implemented by the application layer; called by inbound adapters (handlers).
type ListingService interface {
	// Search validates the criteria, applies the default result limit, and
	// returns the matching listings ordered by modification time, newest
	// first. Returns a *domain.ValidationError for invalid criteria.
	Search(ctx context.Context, criteria listing.Criteria) (*listing.Envelope, error)

	// History returns the change history of one listing. Returns a
	// *domain.ValidationError when listingKey is blank.
	History(ctx context.Context, listingKey string) (*listing.Envelope, error)
}
