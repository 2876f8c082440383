package infra

import (
	"context"
	"slices"

	"github.com/cockroachdb/errors"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/exporters/otlp/otlptrace/otlptracegrpc"
	"go.opentelemetry.io/otel/propagation"
	"go.opentelemetry.io/otel/sdk/resource"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	semconv "go.opentelemetry.io/otel/semconv/v1.37.0"
	"go.opentelemetry.io/otel/trace"
	"go.opentelemetry.io/otel/trace/noop"
)

const DEFAULT_SAMPLING_RATIO = 0.2

type TelemetryConfiguration struct {
	Enabled         bool
	ApplicationName string
	SamplingRatio   float64
}

type TelemetryRessources struct {
	TracerProvider    trace.TracerProvider
	Tracer            trace.Tracer
	TextMapPropagator propagation.TextMapPropagator

	shutdown func(ctx context.Context) error
}

// Shutdown flushes the spans still buffered by the exporter.
func (r TelemetryRessources) Shutdown(ctx context.Context) error {
	if r.shutdown == nil {
		return nil
	}
	return r.shutdown(ctx)
}

func NoopTelemetry() TelemetryRessources {
	return TelemetryRessources{
		TracerProvider:    noop.NewTracerProvider(),
		Tracer:            noop.Tracer{},
		TextMapPropagator: propagation.TraceContext{},
	}
}

// InitTelemetry exports spans over OTLP/gRPC. The collector endpoint is read by the exporter
// from the standard OTEL_EXPORTER_OTLP_* variables.
func InitTelemetry(ctx context.Context, configuration TelemetryConfiguration, apiVersion string) (TelemetryRessources, error) {
	if !configuration.Enabled {
		return NoopTelemetry(), nil
	}

	exporter, err := otlptracegrpc.New(ctx)
	if err != nil {
		return TelemetryRessources{}, errors.Wrap(err, "could not create the otlp exporter")
	}

	res, err := resource.New(ctx,
		resource.WithTelemetrySDK(),
		resource.WithAttributes(
			semconv.ServiceNameKey.String(configuration.ApplicationName),
			semconv.ServiceVersion(apiVersion),
		),
	)
	if err != nil {
		return TelemetryRessources{}, errors.Wrap(err, "could not describe the telemetry resource")
	}

	samplingRatio := configuration.SamplingRatio
	if samplingRatio <= 0 {
		samplingRatio = DEFAULT_SAMPLING_RATIO
	}
	tp := sdktrace.NewTracerProvider(
		sdktrace.WithSampler(sdktrace.ParentBased(NewRouteSampler(samplingRatio))),
		sdktrace.WithBatcher(exporter),
		sdktrace.WithResource(res),
	)

	propagators := propagation.NewCompositeTextMapPropagator(
		propagation.TraceContext{},
		propagation.Baggage{},
	)
	otel.SetTextMapPropagator(propagators)

	return TelemetryRessources{
		TracerProvider:    tp,
		Tracer:            tp.Tracer(configuration.ApplicationName),
		TextMapPropagator: propagators,
		shutdown:          tp.Shutdown,
	}, nil
}

var unsampledRoutes = []string{"/liveness", "/metrics", "/public/*filepath"}

// RouteSampler never samples liveness, scrape and static file requests, and samples every
// other root span with a fixed ratio.
type RouteSampler struct {
	ratio sdktrace.Sampler
}

func NewRouteSampler(ratio float64) RouteSampler {
	return RouteSampler{ratio: sdktrace.TraceIDRatioBased(ratio)}
}

func (RouteSampler) Description() string {
	return "treedo-route-sampler"
}

func (s RouteSampler) ShouldSample(p sdktrace.SamplingParameters) sdktrace.SamplingResult {
	for _, attr := range p.Attributes {
		if attr.Key == semconv.HTTPRouteKey && slices.Contains(unsampledRoutes, attr.Value.AsString()) {
			return sdktrace.SamplingResult{
				Decision:   sdktrace.Drop,
				Tracestate: trace.SpanContextFromContext(p.ParentContext).TraceState(),
			}
		}
	}
	return s.ratio.ShouldSample(p)
}
