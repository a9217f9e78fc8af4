// Package wiring registers all Graft nodes for the application.
package wiring

import (
	// Register adapter nodes.
	_ "go.trai.ch/cram/internal/adapters/config"
	_ "go.trai.ch/cram/internal/adapters/detector"
	_ "go.trai.ch/cram/internal/adapters/linear"
	_ "go.trai.ch/cram/internal/adapters/logger"
	_ "go.trai.ch/cram/internal/adapters/notify"
	_ "go.trai.ch/cram/internal/adapters/remote"
	_ "go.trai.ch/cram/internal/adapters/telemetry"
	_ "go.trai.ch/cram/internal/adapters/watcher"
	// Register app nodes.
	_ "go.trai.ch/cram/internal/app"
)
