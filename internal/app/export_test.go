package app

import (
	"context"

	"go.trai.ch/cram/internal/adapters/tui"
)

// OpenDashboard opens a workspace and returns the source the dashboard reads from.
// done closes the workspace.
func (a *App) OpenDashboard(ctx context.Context) (source tui.Source, done func(), err error) {
	w, err := a.open(ctx)
	if err != nil {
		return nil, nil, err
	}
	return &dashboardSource{w: w}, func() { w.close(a.logger) }, nil
}
