package telemetry

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/cram/internal/core/ports"
)

// TracerNodeID identifies the tracer shared by the sync engine and the backend client.
const TracerNodeID graft.ID = "adapter.tracer"

// InstrumentationName is the tracer name on every cram span.
const InstrumentationName = "go.trai.ch/cram"

func init() {
	graft.Register(graft.Node[ports.Tracer]{
		ID:        TracerNodeID,
		Cacheable: true,
		Run: func(context.Context) (ports.Tracer, error) {
			// Spans reach the provider installed by the workspace, which may come later.
			return NewOTelTracer(InstrumentationName), nil
		},
	})
}
