package telemetry

import (
	"fmt"

	"go.opentelemetry.io/otel/metric"
	semconv "go.opentelemetry.io/otel/semconv/v1.39.0"
)

const meterName = "github.com/jsamuelsen11/listing-search-service"

// Metrics holds the service's metric instruments. A nil *Metrics means
// telemetry is off.
type Metrics struct {
	ServerRequestDuration metric.Float64Histogram
	ServerRequestTotal    metric.Int64Counter
	ClientRequestDuration metric.Float64Histogram
	ClientRequestTotal    metric.Int64Counter

	// SearchResults records how many records each successful upstream query
	// returned, labeled by AttrResource.
	SearchResults metric.Int64Histogram
}

// resultBuckets follow the useful $top values: the default page of 50 and
// the upstream cap of 1000.
var resultBuckets = []float64{0, 1, 10, 25, 50, 100, 250, 500, 1000}

// NewMetrics registers every instrument on mp under the module's meter.
func NewMetrics(mp metric.MeterProvider, serviceName string) (*Metrics, error) {
	meter := mp.Meter(meterName,
		metric.WithInstrumentationAttributes(semconv.ServiceName(serviceName)),
	)

	var (
		m   Metrics
		err error
	)
	if m.ServerRequestDuration, err = meter.Float64Histogram("http.server.request.duration",
		metric.WithDescription("Duration of inbound search API requests"),
		metric.WithUnit("s"),
	); err != nil {
		return nil, instrumentErr("http.server.request.duration", err)
	}
	if m.ServerRequestTotal, err = meter.Int64Counter("http.server.request.total",
		metric.WithDescription("Inbound search API requests"),
		metric.WithUnit("{request}"),
	); err != nil {
		return nil, instrumentErr("http.server.request.total", err)
	}
	if m.ClientRequestDuration, err = meter.Float64Histogram("http.client.request.duration",
		metric.WithDescription("Duration of upstream listing API calls"),
		metric.WithUnit("s"),
	); err != nil {
		return nil, instrumentErr("http.client.request.duration", err)
	}
	if m.ClientRequestTotal, err = meter.Int64Counter("http.client.request.total",
		metric.WithDescription("Upstream listing API calls"),
		metric.WithUnit("{request}"),
	); err != nil {
		return nil, instrumentErr("http.client.request.total", err)
	}
	if m.SearchResults, err = meter.Int64Histogram("listing.search.results",
		metric.WithDescription("Records returned per upstream query"),
		metric.WithUnit("{record}"),
		metric.WithExplicitBucketBoundaries(resultBuckets...),
	); err != nil {
		return nil, instrumentErr("listing.search.results", err)
	}

	return &m, nil
}

func instrumentErr(name string, err error) error {
	return fmt.Errorf("creating %s: %w", name, err)
}
