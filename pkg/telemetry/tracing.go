package telemetry

import (
	"context"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"

	"github.com/QAddict/ruix/pkg/view"
)

const defaultTracerName = "ruix"

// TracingConfig configures the OpenTelemetry observer.
type TracingConfig struct {
	// TracerName is the name of the tracer (default: "ruix").
	TracerName string

	// Provider supplies the tracer. Default: the global provider.
	Provider trace.TracerProvider

	// Context is the parent of every span. Default: context.Background().
	Context context.Context
}

// TracingOption configures the OpenTelemetry observer.
type TracingOption func(*TracingConfig)

// WithTracerName sets the tracer name.
func WithTracerName(name string) TracingOption {
	return func(c *TracingConfig) {
		c.TracerName = name
	}
}

// WithTracerProvider sets the tracer provider.
func WithTracerProvider(p trace.TracerProvider) TracingOption {
	return func(c *TracingConfig) {
		c.Provider = p
	}
}

// WithContext sets the parent context of the spans.
func WithContext(ctx context.Context) TracingOption {
	return func(c *TracingConfig) {
		c.Context = ctx
	}
}

// Tracing records one span per region update pass.
type Tracing struct {
	tracer trace.Tracer
	ctx    context.Context
}

// NewTracing creates the observer. The tracer is resolved once, so configure
// the global provider before calling it.
func NewTracing(opts ...TracingOption) *Tracing {
	config := TracingConfig{TracerName: defaultTracerName}
	for _, opt := range opts {
		opt(&config)
	}
	if config.Provider == nil {
		config.Provider = otel.GetTracerProvider()
	}
	if config.Context == nil {
		config.Context = context.Background()
	}
	return &Tracing{
		tracer: config.Provider.Tracer(config.TracerName),
		ctx:    config.Context,
	}
}

// RenderStarted implements view.Observer.
func (t *Tracing) RenderStarted(info view.RegionInfo) func(view.RenderStats) {
	_, span := t.tracer.Start(t.ctx, "ruix.render",
		trace.WithAttributes(
			attribute.String("ruix.region", regionName(info)),
			attribute.String("ruix.strategy", info.Strategy.String()),
		),
	)
	return func(s view.RenderStats) {
		span.SetAttributes(
			attribute.Int("ruix.items", s.Items),
			attribute.Int("ruix.created", s.Created),
			attribute.Int("ruix.reused", s.Reused),
			attribute.Int("ruix.moved", s.Moved),
			attribute.Int("ruix.removed", s.Removed),
			attribute.Int("ruix.evicted", s.Evicted),
			attribute.Int("ruix.cached", s.Cached),
		)
		span.End()
	}
}
