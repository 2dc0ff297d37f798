package telemetry

import (
	"context"
	"errors"
	"fmt"
	"net/url"

	"go.opentelemetry.io/otel/exporters/otlp/otlpmetric/otlpmetrichttp"
	"go.opentelemetry.io/otel/exporters/otlp/otlptrace/otlptracehttp"
	"go.opentelemetry.io/otel/exporters/stdout/stdoutmetric"
	"go.opentelemetry.io/otel/exporters/stdout/stdouttrace"
	sdkmetric "go.opentelemetry.io/otel/sdk/metric"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
)

// Supported exporter names.
const (
	ExporterStdout = "stdout"
	ExporterOTLP   = "otlp"
)

// exportTarget is a validated exporter choice. host and insecure only apply
// to OTLP.
type exportTarget struct {
	kind     string
	host     string
	insecure bool
}

// parseExporter validates an exporter name and, for OTLP, splits the
// collector URL into the host:port the OTLP/HTTP options expect. Plain http
// endpoints are dialed without TLS.
func parseExporter(kind, endpoint string) (exportTarget, error) {
	switch kind {
	case ExporterStdout:
		return exportTarget{kind: kind}, nil
	case ExporterOTLP:
		if endpoint == "" {
			return exportTarget{}, errors.New("otlp exporter requires an endpoint")
		}
		t := exportTarget{kind: kind, host: endpoint, insecure: true}
		if u, err := url.Parse(endpoint); err == nil && u.Host != "" {
			t.host = u.Host
			t.insecure = u.Scheme != "https"
		}
		return t, nil
	default:
		return exportTarget{}, fmt.Errorf("unsupported exporter %q", kind)
	}
}

func (t exportTarget) spanExporter(ctx context.Context) (sdktrace.SpanExporter, error) {
	if t.kind == ExporterStdout {
		return stdouttrace.New(stdouttrace.WithPrettyPrint())
	}
	opts := []otlptracehttp.Option{otlptracehttp.WithEndpoint(t.host)}
	if t.insecure {
		opts = append(opts, otlptracehttp.WithInsecure())
	}
	return otlptracehttp.New(ctx, opts...)
}

func (t exportTarget) metricExporter(ctx context.Context) (sdkmetric.Exporter, error) {
	if t.kind == ExporterStdout {
		return stdoutmetric.New()
	}
	opts := []otlpmetrichttp.Option{otlpmetrichttp.WithEndpoint(t.host)}
	if t.insecure {
		opts = append(opts, otlpmetrichttp.WithInsecure())
	}
	return otlpmetrichttp.New(ctx, opts...)
}
