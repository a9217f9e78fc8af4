// Package telemetry adapts OpenTelemetry tracing to the renderers.
package telemetry

import (
	"context"
	"errors"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/trace"
	"go.trai.ch/cram/internal/core/ports"
)

// errCallFailed stands in for a failed span that recorded no message.
var errCallFailed = errors.New("call failed")

// Names used by trace.Span.RecordError.
const (
	exceptionEvent                 = "exception"
	exceptionMessage attribute.Key = "exception.message"
)

// Bridge is an sdktrace.SpanProcessor that reports mutations, uploads and backend calls to a Renderer.
// A span whose parent is not valid is a root call; the renderers nest the others under it.
type Bridge struct {
	renderer ports.Renderer
}

// NewBridge returns a Bridge reporting to renderer. A nil renderer ignores every span.
func NewBridge(renderer ports.Renderer) *Bridge {
	return &Bridge{renderer: renderer}
}

// OnStart reports a call start.
func (b *Bridge) OnStart(parent context.Context, s sdktrace.ReadWriteSpan) {
	sc := s.SpanContext()
	if b.renderer == nil || !sc.IsValid() {
		return
	}

	var parentID string
	if p := trace.SpanContextFromContext(parent); p.IsValid() {
		parentID = p.SpanID().String()
	}
	b.renderer.OnCallStart(sc.SpanID().String(), parentID, s.Name(), s.StartTime())
}

// OnEnd reports a call outcome. A failed call carries the message of the error recorded on it.
func (b *Bridge) OnEnd(s sdktrace.ReadOnlySpan) {
	sc := s.SpanContext()
	if b.renderer == nil || !sc.IsValid() {
		return
	}
	b.renderer.OnCallComplete(sc.SpanID().String(), s.EndTime(), failure(s))
}

// failure returns the error of a span with an error status, or nil.
func failure(s sdktrace.ReadOnlySpan) error {
	status := s.Status()
	if status.Code != codes.Error {
		return nil
	}

	events := s.Events()
	for i := len(events) - 1; i >= 0; i-- {
		if events[i].Name != exceptionEvent {
			continue
		}
		for _, attr := range events[i].Attributes {
			if attr.Key == exceptionMessage && attr.Value.AsString() != "" {
				return errors.New(attr.Value.AsString())
			}
		}
	}
	if status.Description != "" {
		return errors.New(status.Description)
	}
	return errCallFailed
}

// ForceFlush does nothing; calls are reported as they happen.
func (b *Bridge) ForceFlush(context.Context) error {
	return nil
}

// Shutdown does nothing.
func (b *Bridge) Shutdown(context.Context) error {
	return nil
}
