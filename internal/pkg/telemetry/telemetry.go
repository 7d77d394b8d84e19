// Package telemetry wires OpenTelemetry tracing for both HTTP surfaces.
//
// Spans are always created so request handling code can rely on a real
// tracer; they are only exported (to stdout) when OTEL_ENABLED is set.
package telemetry

import (
	"context"
	"net/http"

	"flight-onboard/internal/pkg/config"
	"flight-onboard/internal/pkg/errs"

	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/exporters/stdout/stdouttrace"
	"go.opentelemetry.io/otel/propagation"
	"go.opentelemetry.io/otel/sdk/resource"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	semconv "go.opentelemetry.io/otel/semconv/v1.17.0"
	"go.opentelemetry.io/otel/trace"
)

const instrumentationName = "flight-onboard"

type Provider struct {
	tp       *sdktrace.TracerProvider
	exported bool
}

func NewProvider(cfg config.TelemetryConfig) (*Provider, error) {
	res := resource.NewWithAttributes(
		semconv.SchemaURL,
		semconv.ServiceNameKey.String(cfg.ServiceName),
	)

	opts := []sdktrace.TracerProviderOption{sdktrace.WithResource(res)}
	if cfg.Enabled {
		var exporterOpts []stdouttrace.Option
		if cfg.PrettyPrint {
			exporterOpts = append(exporterOpts, stdouttrace.WithPrettyPrint())
		}
		exporter, err := stdouttrace.New(exporterOpts...)
		if err != nil {
			return nil, errs.Wrap(err, "failed to create stdout trace exporter")
		}
		opts = append(opts, sdktrace.WithBatcher(exporter))
	}

	tp := sdktrace.NewTracerProvider(opts...)
	otel.SetTracerProvider(tp)
	otel.SetTextMapPropagator(propagation.NewCompositeTextMapPropagator(
		propagation.TraceContext{},
		propagation.Baggage{},
	))

	return &Provider{tp: tp, exported: cfg.Enabled}, nil
}

func (p *Provider) Exported() bool {
	return p.exported
}

func (p *Provider) Shutdown(ctx context.Context) error {
	return p.tp.Shutdown(ctx)
}

// Tracer returns the package-wide tracer from the global provider, so callers
// constructed before NewProvider still pick up the configured one.
func Tracer() trace.Tracer {
	return otel.Tracer(instrumentationName)
}

// HTTPMiddleware wraps a handler with otelhttp; excluded paths produce no spans.
func HTTPMiddleware(operation string, excludedPaths ...string) func(http.Handler) http.Handler {
	excluded := make(map[string]struct{}, len(excludedPaths))
	for _, p := range excludedPaths {
		excluded[p] = struct{}{}
	}

	opts := []otelhttp.Option{
		otelhttp.WithSpanNameFormatter(func(_ string, r *http.Request) string {
			return "HTTP " + r.Method + " " + r.URL.Path
		}),
	}
	if len(excluded) > 0 {
		opts = append(opts, otelhttp.WithFilter(func(r *http.Request) bool {
			_, skip := excluded[r.URL.Path]
			return !skip
		}))
	}

	return func(next http.Handler) http.Handler {
		return otelhttp.NewHandler(next, operation, opts...)
	}
}
