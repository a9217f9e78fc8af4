// Package linear provides a synchronous, line-oriented renderer for scripts and CI.
package linear

import (
	"context"
	"fmt"
	"io"
	"os"
	"sync"
	"time"

	"github.com/muesli/termenv"
	"go.trai.ch/cram/internal/adapters/notify"
	"go.trai.ch/cram/internal/ui/output"
	"go.trai.ch/cram/internal/ui/style"
)

// Renderer implements ports.Renderer for non-interactive output.
// It prints one line when a root call starts and one when it settles; nested calls are silent.
type Renderer struct {
	w      io.Writer
	output *termenv.Output

	mu    sync.Mutex
	calls map[string]*callState // spanID -> root call
}

type callState struct {
	name      string
	startTime time.Time
}

// NewRenderer creates a new Renderer writing to w, or to stderr when w is nil.
func NewRenderer(w io.Writer) *Renderer {
	if w == nil {
		w = os.Stderr
	}

	return &Renderer{
		w:      w,
		output: output.NewPlain(w),
		calls:  make(map[string]*callState),
	}
}

// Start is a no-op for linear renderer (synchronous).
func (r *Renderer) Start(_ context.Context) error {
	return nil
}

// Stop reports calls that never settled.
func (r *Renderer) Stop() error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for spanID, c := range r.calls {
		_, _ = fmt.Fprintf(r.w, "%s interrupted\n", r.prefix(c.name))
		delete(r.calls, spanID)
	}
	return nil
}

// Wait is a no-op for linear renderer (synchronous).
func (r *Renderer) Wait() error {
	return nil
}

// OnCallStart prints a start message for root calls.
func (r *Renderer) OnCallStart(spanID, parentID, name string, startTime time.Time) {
	if parentID != "" {
		return
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	r.calls[spanID] = &callState{name: name, startTime: startTime}
	_, _ = fmt.Fprintf(r.w, "%s Starting...\n", r.prefix(name))
}

// OnCallComplete prints the outcome of a root call.
func (r *Renderer) OnCallComplete(spanID string, endTime time.Time, err error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	c, ok := r.calls[spanID]
	if !ok {
		return
	}
	delete(r.calls, spanID)

	duration := endTime.Sub(c.startTime).Round(time.Millisecond)
	if err != nil {
		_, _ = fmt.Fprintf(r.w, "%s %s Failed after %v: %v\n", r.prefix(c.name), r.cross(), duration, err)
		return
	}
	_, _ = fmt.Fprintf(r.w, "%s %s Completed in %v\n", r.prefix(c.name), r.check(), duration)
}

// OnToast prints an action outcome.
func (r *Renderer) OnToast(t notify.Toast) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if t.Failed() {
		_, _ = fmt.Fprintf(r.w, "%s %s: %v\n", r.cross(), t.Message, t.Err)
		return
	}
	_, _ = fmt.Fprintf(r.w, "%s %s\n", r.check(), t.Message)
}

func (r *Renderer) prefix(name string) string {
	return r.output.String(fmt.Sprintf("[%s]", name)).Faint().String()
}

func (r *Renderer) check() string {
	return r.output.String(style.Check).Foreground(termenv.ANSIGreen).String()
}

func (r *Renderer) cross() string {
	return r.output.String(style.Cross).Foreground(termenv.ANSIRed).String()
}
