package ports

import "context"

//go:generate mockgen -source=telemetry.go -destination=mocks/mock_telemetry.go -package=mocks

// Tracer starts spans for mutations, uploads and backend calls.
type Tracer interface {
	Start(ctx context.Context, name string, opts ...SpanOption) (context.Context, Span)
}

// Span is one traced operation.
type Span interface {
	End()
	// RecordError marks the span failed. A nil err is ignored.
	RecordError(err error)
	SetAttribute(key string, value any)
}

// SpanConfig collects the options of a span being started.
type SpanConfig struct {
	// RemoteMethod is the backend method a client span calls. Empty for local work.
	RemoteMethod string
}

// SpanOption configures a span being started.
type SpanOption func(*SpanConfig)

// RemoteCall marks the span as a call of the backend method.
func RemoteCall(method string) SpanOption {
	return func(c *SpanConfig) {
		c.RemoteMethod = method
	}
}
