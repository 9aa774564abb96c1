package telemetry

import (
	"context"
	"os"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/exporters/otlp/otlptrace/otlptracehttp"
	"go.opentelemetry.io/otel/sdk/resource"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	semconv "go.opentelemetry.io/otel/semconv/v1.4.0"
	oteltrace "go.opentelemetry.io/otel/trace"
	"go.opentelemetry.io/otel/trace/noop"

	"github.com/katalvlaran/lychrel/internal/buildinfo"
)

const (
	// EnvEndpoint enables OTLP export when set (host:port).
	EnvEndpoint = "OTEL_EXPORTER_OTLP_ENDPOINT"
	// EnvServiceName overrides the reported service name.
	EnvServiceName = "OTEL_SERVICE_NAME"

	defaultServiceName = "lychrel"
	tracerName         = "github.com/katalvlaran/lychrel/internal/batch"
)

// Provider hands out the tracer used by batch runs. A Provider built without
// an endpoint records nothing.
type Provider struct {
	provider *sdktrace.TracerProvider
	tracer   oteltrace.Tracer
}

// New creates an OTLP/HTTP exporting provider if OTEL_EXPORTER_OTLP_ENDPOINT
// is set, and a no-op provider otherwise.
func New(ctx context.Context) (*Provider, error) {
	endpoint := os.Getenv(EnvEndpoint)
	if endpoint == "" {
		return Noop(), nil
	}

	exporter, err := otlptracehttp.New(ctx,
		otlptracehttp.WithEndpoint(endpoint),
		otlptracehttp.WithInsecure(),
	)
	if err != nil {
		return nil, err
	}

	return NewWithExporter(exporter), nil
}

// NewWithExporter builds a provider around any span exporter; tests pass an
// in-memory one.
func NewWithExporter(exporter sdktrace.SpanExporter) *Provider {
	serviceName := os.Getenv(EnvServiceName)
	if serviceName == "" {
		serviceName = defaultServiceName
	}

	res := resource.NewWithAttributes(
		semconv.SchemaURL,
		semconv.ServiceNameKey.String(serviceName),
		semconv.ServiceVersionKey.String(buildinfo.Version),
	)

	tp := sdktrace.NewTracerProvider(
		sdktrace.WithSyncer(exporter),
		sdktrace.WithResource(res),
	)

	return &Provider{provider: tp, tracer: tp.Tracer(tracerName)}
}

// Noop returns a provider whose spans are discarded.
func Noop() *Provider {
	return &Provider{tracer: noop.NewTracerProvider().Tracer(tracerName)}
}

// Tracer returns the batch tracer.
func (p *Provider) Tracer() oteltrace.Tracer { return p.tracer }

// Enabled reports whether spans are exported.
func (p *Provider) Enabled() bool { return p != nil && p.provider != nil }

// Shutdown flushes and stops the exporter. It is a no-op for Noop providers.
func (p *Provider) Shutdown(ctx context.Context) error {
	if !p.Enabled() {
		return nil
	}
	return p.provider.Shutdown(ctx)
}

// Attribute keys recorded on batch spans.
const (
	KeyBase       = attribute.Key("lychrel.base")
	KeySeeds      = attribute.Key("lychrel.seeds")
	KeyCandidates = attribute.Key("lychrel.candidates")
	KeyDepth      = attribute.Key("lychrel.depth")
	KeyWorkers    = attribute.Key("lychrel.workers")
	KeyRunID      = attribute.Key("lychrel.run_id")
)
