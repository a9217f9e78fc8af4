package telemetry_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/sdk/trace/tracetest"
	"go.opentelemetry.io/otel/trace"
	"go.trai.ch/cram/internal/adapters/telemetry"
	"go.trai.ch/cram/internal/core/domain"
	"go.trai.ch/cram/internal/core/ports"
)

func newRecordingTracer(t *testing.T) (*telemetry.OTelTracer, *tracetest.SpanRecorder) {
	t.Helper()
	sr := tracetest.NewSpanRecorder()
	tp := sdktrace.NewTracerProvider(sdktrace.WithSpanProcessor(sr))
	t.Cleanup(func() { _ = tp.Shutdown(context.Background()) })
	return telemetry.NewOTelTracer("test").WithProvider(tp), sr
}

func TestOTelTracer_SpanKindAndAttributes(t *testing.T) {
	tracer, sr := newRecordingTracer(t)

	_, span := tracer.Start(context.Background(), "rpc SaveQuiz", ports.RemoteCall("SaveQuiz"))
	span.SetAttribute("topic", "Biology")
	span.SetAttribute("questions", 3)
	span.SetAttribute("size", int64(2048))
	span.SetAttribute("generated", false)
	span.SetAttribute("principal", domain.Principal("p-1"))
	span.End()

	_, internal := tracer.Start(context.Background(), "settle")
	internal.End()

	spans := sr.Ended()
	require.Len(t, spans, 2)

	assert.Equal(t, trace.SpanKindClient, spans[0].SpanKind())
	assert.Equal(t, trace.SpanKindInternal, spans[1].SpanKind())
	assert.ElementsMatch(t, []attribute.KeyValue{
		attribute.String("topic", "Biology"),
		attribute.Int("questions", 3),
		attribute.Int64("size", 2048),
		attribute.Bool("generated", false),
		attribute.String("principal", "p-1"),
		attribute.String("rpc.system", "grpc"),
		attribute.String("rpc.method", "SaveQuiz"),
	}, spans[0].Attributes())
}

func TestOTelTracer_RecordError(t *testing.T) {
	tracer, sr := newRecordingTracer(t)

	_, span := tracer.Start(context.Background(), "DeleteFile")
	span.RecordError(nil)
	span.RecordError(errors.New("file is referenced"))
	span.End()

	spans := sr.Ended()
	require.Len(t, spans, 1)
	assert.Equal(t, codes.Error, spans[0].Status().Code)
	assert.Equal(t, "file is referenced", spans[0].Status().Description)
	assert.Len(t, spans[0].Events(), 1)
}

func TestNoOpTracer(t *testing.T) {
	ctx := context.Background()

	got, span := telemetry.NewNoOpTracer().Start(ctx, "anything", ports.RemoteCall("ListFiles"))
	span.SetAttribute("k", "v")
	span.RecordError(errors.New("ignored"))
	span.End()

	assert.Equal(t, ctx, got)
}
