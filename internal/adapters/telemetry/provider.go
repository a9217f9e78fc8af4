package telemetry

import (
	"context"
	"fmt"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
	"go.trai.ch/cram/internal/core/ports"
)

// rpcSystem tags every backend call span.
var rpcSystem = attribute.String("rpc.system", "grpc")

// OTelTracer is a concrete implementation of ports.Tracer using OpenTelemetry.
type OTelTracer struct {
	name     string
	provider trace.TracerProvider
}

// NewOTelTracer creates a new OTelTracer with the given instrumentation name.
// Spans go to the global provider as it is at the time each span starts, so
// the provider can be installed after the tracer is built.
func NewOTelTracer(name string) *OTelTracer {
	return &OTelTracer{name: name}
}

// WithProvider pins the tracer to tp instead of the global provider.
func (t *OTelTracer) WithProvider(tp trace.TracerProvider) *OTelTracer {
	t.provider = tp
	return t
}

// Start creates a new span.
func (t *OTelTracer) Start(ctx context.Context, name string, opts ...ports.SpanOption) (context.Context, ports.Span) {
	cfg := &ports.SpanConfig{}
	for _, opt := range opts {
		opt(cfg)
	}

	start := []trace.SpanStartOption{trace.WithSpanKind(trace.SpanKindInternal)}
	if cfg.RemoteMethod != "" {
		start = []trace.SpanStartOption{
			trace.WithSpanKind(trace.SpanKindClient),
			trace.WithAttributes(rpcSystem, attribute.String("rpc.method", cfg.RemoteMethod)),
		}
	}

	provider := t.provider
	if provider == nil {
		provider = otel.GetTracerProvider()
	}

	ctx, span := provider.Tracer(t.name).Start(ctx, name, start...)
	return ctx, &OTelSpan{span: span}
}

// OTelSpan is a concrete implementation of ports.Span using OpenTelemetry.
type OTelSpan struct {
	span trace.Span
}

// End completes the span.
func (s *OTelSpan) End() {
	s.span.End()
}

// RecordError records an error for the span.
func (s *OTelSpan) RecordError(err error) {
	if err == nil {
		return
	}
	s.span.RecordError(err)
	s.span.SetStatus(codes.Error, err.Error())
}

// SetAttribute adds a key-value pair to the span.
func (s *OTelSpan) SetAttribute(key string, value any) {
	switch v := value.(type) {
	case string:
		s.span.SetAttributes(attribute.String(key, v))
	case int:
		s.span.SetAttributes(attribute.Int(key, v))
	case int64:
		s.span.SetAttributes(attribute.Int64(key, v))
	case float64:
		s.span.SetAttributes(attribute.Float64(key, v))
	case bool:
		s.span.SetAttributes(attribute.Bool(key, v))
	case []string:
		s.span.SetAttributes(attribute.StringSlice(key, v))
	case fmt.Stringer:
		s.span.SetAttributes(attribute.String(key, v.String()))
	default:
		s.span.SetAttributes(attribute.String(key, fmt.Sprintf("%v", v)))
	}
}
