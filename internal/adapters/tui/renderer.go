package tui

import (
	"context"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"go.trai.ch/cram/internal/adapters/notify"
	"go.trai.ch/cram/internal/adapters/telemetry"
)

// Renderer wraps the dashboard Bubble Tea model as a ports.Renderer.
type Renderer struct {
	program *tea.Program
	model   *Model
	errCh   chan error
}

// NewRenderer creates a new dashboard renderer.
func NewRenderer(model *Model, opts ...tea.ProgramOption) *Renderer {
	program := tea.NewProgram(model, opts...)
	return &Renderer{
		program: program,
		model:   model,
		errCh:   make(chan error, 1),
	}
}

// Start launches the dashboard in a background goroutine.
// Loads issued by the dashboard use ctx.
func (r *Renderer) Start(ctx context.Context) error {
	r.model.ctx = ctx
	go func() {
		_, err := r.program.Run()
		r.errCh <- err
	}()
	return nil
}

// Stop signals the dashboard to quit.
func (r *Renderer) Stop() error {
	r.program.Quit()
	return nil
}

// Wait blocks until the dashboard has terminated, then stops watching its data.
func (r *Renderer) Wait() error {
	err := <-r.errCh
	r.model.Close()
	return err
}

// OnCallStart forwards call start events to the status line.
func (r *Renderer) OnCallStart(spanID, parentID, name string, startTime time.Time) {
	r.program.Send(telemetry.MsgCallStart{
		SpanID:    spanID,
		ParentID:  parentID,
		Name:      name,
		StartTime: startTime,
	})
}

// OnCallComplete forwards call completion events to the status line.
func (r *Renderer) OnCallComplete(spanID string, endTime time.Time, err error) {
	r.program.Send(telemetry.MsgCallComplete{
		SpanID:  spanID,
		EndTime: endTime,
		Err:     err,
	})
}

// OnToast shows an outcome message on the dashboard.
func (r *Renderer) OnToast(t notify.Toast) {
	r.program.Send(MsgToast{Toast: t})
}

// Program returns the underlying tea.Program for testing.
func (r *Renderer) Program() *tea.Program {
	return r.program
}
