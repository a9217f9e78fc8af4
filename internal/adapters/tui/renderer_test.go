package tui_test

import (
	"context"
	"io"
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/cram/internal/adapters/notify"
	"go.trai.ch/cram/internal/adapters/tui"
)

func newRenderer(t *testing.T) (*tui.Renderer, *fakeSource) {
	t.Helper()
	source := &fakeSource{snapshot: dashboard()}
	model := tui.NewModel(io.Discard, source)
	return tui.NewRenderer(
		model,
		tea.WithInput(strings.NewReader("")),
		tea.WithOutput(io.Discard),
		tea.WithoutSignalHandler(),
		tea.WithoutRenderer(),
	), source
}

func TestRenderer_Lifecycle(t *testing.T) {
	renderer, source := newRenderer(t)

	require.NoError(t, renderer.Start(context.Background()))
	require.NoError(t, renderer.Stop())
	require.NoError(t, renderer.Wait())

	source.mu.Lock()
	defer source.mu.Unlock()
	assert.Equal(t, []string{""}, source.watched)
	assert.Equal(t, 1, source.stopped, "the watch ends with the program")
}

func TestRenderer_ForwardsEvents(t *testing.T) {
	renderer, _ := newRenderer(t)
	require.NoError(t, renderer.Start(context.Background()))
	defer func() {
		_ = renderer.Stop()
		_ = renderer.Wait()
	}()

	now := time.Now()
	renderer.OnCallStart("span-1", "", "rpc ListNotes", now)
	renderer.OnCallComplete("span-1", now.Add(time.Millisecond), nil)
	renderer.OnToast(notify.Toast{Message: "Flashcard created successfully", At: now})
}
