// Package app provides application services that orchestrate use cases by
// coordinating between domain logic and infrastructure through port interfaces.
package app

import (
	"context"
	"log/slog"
	"strings"

	"github.com/jsamuelsen11/listing-search-service/internal/domain"
	"github.com/jsamuelsen11/listing-search-service/internal/domain/listing"
	"github.com/jsamuelsen11/listing-search-service/internal/ports"
)

// Compile-time check that ListingService implements ports.ListingService.
var _ ports.ListingService = (*ListingService)(nil)

// SearchLimits bounds the row limit of a search. A zero DefaultTop falls back
// to listing.DefaultTop; a zero MaxTop leaves the limit unbounded.
type SearchLimits struct {
	DefaultTop int
	MaxTop     int
}

// ListingService implements ports.ListingService by validating input and
// delegating to the upstream listing API through the ListingClient port.
// It handles validation and structured logging but holds no state of its own.
type ListingService struct {
	client ports.ListingClient
	limits SearchLimits
	logger *slog.Logger
}

// NewListingService creates a ListingService. A nil logger discards output.
func NewListingService(client ports.ListingClient, limits SearchLimits, logger *slog.Logger) *ListingService {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	if limits.DefaultTop <= 0 {
		limits.DefaultTop = listing.DefaultTop
	}
	return &ListingService{
		client: client,
		limits: limits,
		logger: logger,
	}
}

// Search validates criteria, fills in the default row limit, and fetches the
// matching listings. Unrecognized property types and statuses are passed
// through; the upstream simply matches nothing for them.
func (s *ListingService) Search(ctx context.Context, criteria listing.Criteria) (*listing.Envelope, error) {
	if err := criteria.Validate(s.limits.MaxTop); err != nil {
		return nil, err
	}
	if criteria.Top == 0 {
		criteria.Top = s.limits.DefaultTop
	}

	s.logUnknownValues(ctx, criteria)
	s.logger.InfoContext(ctx, "searching listings",
		slog.String("city", criteria.City),
		slog.String("state_or_province", criteria.StateOrProvince),
		slog.Int("top", criteria.Top),
		slog.Bool("unfiltered", criteria.IsEmpty()),
	)

	env, err := s.client.FetchListings(ctx, criteria)
	if err != nil {
		s.logger.ErrorContext(ctx, "failed to search listings",
			slog.String("operation", "Search"),
			slog.Any("error", err),
		)
		return nil, err
	}

	s.logger.InfoContext(ctx, "listings found", slog.Int("count", env.Len()))
	return env, nil
}

// History fetches the change history of one listing. A blank key is rejected
// without calling the upstream.
func (s *ListingService) History(ctx context.Context, listingKey string) (*listing.Envelope, error) {
	listingKey = strings.TrimSpace(listingKey)
	if listingKey == "" {
		return nil, domain.NewValidationError("listingKey", domain.MsgRequired)
	}

	s.logger.InfoContext(ctx, "fetching listing history", slog.String("listing_key", listingKey))

	env, err := s.client.FetchHistory(ctx, listingKey)
	if err != nil {
		s.logger.ErrorContext(ctx, "failed to fetch listing history",
			slog.String("operation", "History"),
			slog.String("listing_key", listingKey),
			slog.Any("error", err),
		)
		return nil, err
	}

	s.logger.InfoContext(ctx, "listing history found",
		slog.String("listing_key", listingKey),
		slog.Int("count", env.Len()),
	)
	return env, nil
}

func (s *ListingService) logUnknownValues(ctx context.Context, c listing.Criteria) {
	if c.PropertyType != "" && !c.PropertyType.IsKnown() {
		s.logger.DebugContext(ctx, "unrecognized property type", slog.String("property_type", c.PropertyType.String()))
	}
	if c.Status != "" && !c.Status.IsKnown() {
		s.logger.DebugContext(ctx, "unrecognized status", slog.String("status", c.Status.String()))
	}
	if c.StateOrProvince != "" && !listing.Province(c.StateOrProvince).IsKnown() {
		s.logger.DebugContext(ctx, "unrecognized state or province", slog.String("state_or_province", c.StateOrProvince))
	}
}
