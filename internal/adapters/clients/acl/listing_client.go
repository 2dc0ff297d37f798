package acl

import (
	"context"
	"log/slog"
	"strings"

	"go.opentelemetry.io/otel/metric"

	"github.com/jsamuelsen11/listing-search-service/internal/adapters/clients/acl/odata"
	"github.com/jsamuelsen11/listing-search-service/internal/domain"
	"github.com/jsamuelsen11/listing-search-service/internal/domain/listing"
	"github.com/jsamuelsen11/listing-search-service/internal/platform/httpclient"
	"github.com/jsamuelsen11/listing-search-service/internal/platform/telemetry"
	"github.com/jsamuelsen11/listing-search-service/internal/ports"
)

// Compile-time interface check.
var _ ports.ListingClient = (*ListingClient)(nil)

// Default upstream resource names.
const (
	DefaultPropertyResource = "Property"
	DefaultHistoryResource  = "HistoryTransactional"
)

// ListingClient is the outbound adapter for the upstream OData listing API.
// It implements [ports.ListingClient].
//
// Criteria are translated to OData query strings by [odata.BuildListingQuery]
// and [odata.BuildHistoryQuery]. HTTP failures are mapped to domain errors
// by [TranslateHTTPError] and [TranslateTransportError].
//
// The underlying [httpclient.Client] provides circuit breaking, OpenTelemetry
// tracing, and health checking ([ports.HealthChecker]) for every outbound
// call.
type ListingClient struct {
	req              *Requester
	propertyResource string
	historyResource  string
	metrics          *telemetry.Metrics
	logger           *slog.Logger
}

// ListingClientConfig names the upstream resources and carries the bearer
// token. Empty resource names fall back to the defaults.
type ListingClientConfig struct {
	Token            string
	PropertyResource string
	HistoryResource  string
}

// NewListingClient creates a ListingClient that sends requests through the
// given [httpclient.Client]. The client's BaseURL should point to the OData
// root (e.g. "https://query.ampre.ca/odata"). If metrics is nil, result
// counts are not recorded.
func NewListingClient(client *httpclient.Client, cfg ListingClientConfig, metrics *telemetry.Metrics, logger *slog.Logger) *ListingClient {
	c := &ListingClient{
		req:              NewRequester(client, cfg.Token, logger),
		propertyResource: cfg.PropertyResource,
		historyResource:  cfg.HistoryResource,
		metrics:          metrics,
		logger:           logger,
	}
	if c.propertyResource == "" {
		c.propertyResource = DefaultPropertyResource
	}
	if c.historyResource == "" {
		c.historyResource = DefaultHistoryResource
	}
	return c
}

// FetchListings fetches GET /Property with the $filter, $top and $orderby
// built from criteria. Records come back newest first.
func (c *ListingClient) FetchListings(ctx context.Context, criteria listing.Criteria) (*listing.Envelope, error) {
	query := odata.BuildListingQuery(criteria)

	c.logger.DebugContext(ctx, "querying listings",
		slog.String("resource", c.propertyResource),
		slog.String("filter", odata.FilterExpression(criteria)),
		slog.Int("top", criteria.Limit()),
	)

	env, err := c.req.Get(ctx, "fetching properties", c.propertyResource, query)
	if err != nil {
		return nil, err
	}

	c.recordResults(ctx, c.propertyResource, env)
	return env, nil
}

// FetchHistory fetches GET /HistoryTransactional for one listing key,
// newest first. A blank key fails with a validation error and no request is
// sent.
func (c *ListingClient) FetchHistory(ctx context.Context, listingKey string) (*listing.Envelope, error) {
	listingKey = strings.TrimSpace(listingKey)
	if listingKey == "" {
		return nil, domain.NewValidationError("listingKey", domain.MsgRequired)
	}

	env, err := c.req.Get(ctx, "fetching history", c.historyResource, odata.BuildHistoryQuery(listingKey))
	if err != nil {
		return nil, err
	}

	c.recordResults(ctx, c.historyResource, env)
	return env, nil
}

func (c *ListingClient) recordResults(ctx context.Context, resource string, env *listing.Envelope) {
	if c.metrics == nil {
		return
	}
	c.metrics.SearchResults.Record(ctx, int64(env.Len()),
		metric.WithAttributes(telemetry.AttrResource.String(resource)),
	)
}
