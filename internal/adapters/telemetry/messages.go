package telemetry

import (
	"time"
)

// MsgCallStart indicates a traced remote call has started.
type MsgCallStart struct {
	SpanID    string
	ParentID  string // May be empty if root
	Name      string
	StartTime time.Time
}

// MsgCallComplete indicates a traced remote call has finished.
type MsgCallComplete struct {
	SpanID  string
	EndTime time.Time
	Err     error
}
