package ports

import (
	"context"
	"time"
)

// Renderer is the abstraction for activity rendering.
// It decouples telemetry collection from presentation logic,
// allowing the same span stream to drive either the dashboard status line or linear logs.
//
//go:generate mockgen -source=renderer.go -destination=mocks/mock_renderer.go -package=mocks
type Renderer interface {
	// Start initializes the renderer and begins its lifecycle.
	// For asynchronous renderers (like TUI), this may launch background goroutines.
	Start(ctx context.Context) error

	// Stop signals the renderer to stop accepting new events and prepare for shutdown.
	Stop() error

	// Wait blocks until the renderer has fully terminated.
	// For synchronous renderers, this may return immediately.
	Wait() error

	// OnCallStart is called when a traced operation begins.
	// spanID: unique identifier for this operation
	// parentID: spanID of the enclosing operation (empty if root)
	// name: operation name, e.g. "ListNotes"
	OnCallStart(spanID, parentID, name string, startTime time.Time)

	// OnCallComplete is called when a traced operation finishes.
	// err: nil if successful, error otherwise
	OnCallComplete(spanID string, endTime time.Time, err error)
}
