package linear_test

import (
	"bytes"
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/cram/internal/adapters/linear"
	"go.trai.ch/cram/internal/adapters/notify"
)

func newRenderer(t *testing.T) (*linear.Renderer, *bytes.Buffer) {
	t.Helper()
	t.Setenv("NO_COLOR", "1")
	var out bytes.Buffer
	return linear.NewRenderer(&out), &out
}

func TestRenderer_CallLifecycle(t *testing.T) {
	r, out := newRenderer(t)
	require.NoError(t, r.Start(context.Background()))

	start := time.Date(2026, 1, 1, 9, 0, 0, 0, time.UTC)
	r.OnCallStart("span1", "", "rpc ListNotes", start)
	r.OnCallComplete("span1", start.Add(25*time.Millisecond), nil)

	require.NoError(t, r.Stop())
	require.NoError(t, r.Wait())

	assert.Equal(t, "[rpc ListNotes] Starting...\n[rpc ListNotes] ✓ Completed in 25ms\n", out.String())
}

func TestRenderer_Failure(t *testing.T) {
	r, out := newRenderer(t)

	start := time.Now()
	r.OnCallStart("span1", "", "rpc UploadBlob", start)
	r.OnCallComplete("span1", start.Add(time.Second), errors.New("connection reset"))

	assert.Contains(t, out.String(), "[rpc UploadBlob] ✗ Failed after 1s: connection reset")
}

func TestRenderer_NestedCallsAreSilent(t *testing.T) {
	r, out := newRenderer(t)

	start := time.Now()
	r.OnCallStart("child", "root", "decode", start)
	r.OnCallComplete("child", start, nil)
	r.OnCallComplete("unknown", start, nil)

	assert.Empty(t, out.String())
}

func TestRenderer_StopReportsUnsettledCalls(t *testing.T) {
	r, out := newRenderer(t)

	r.OnCallStart("span1", "", "rpc Search", time.Now())
	require.NoError(t, r.Stop())

	assert.Contains(t, out.String(), "[rpc Search] interrupted")
}

func TestRenderer_Toasts(t *testing.T) {
	r, out := newRenderer(t)

	r.OnToast(notify.Toast{Message: "Note created successfully"})
	r.OnToast(notify.Toast{Message: "Failed to delete file", Err: errors.New("not found")})

	assert.Equal(t, "✓ Note created successfully\n✗ Failed to delete file: not found\n", out.String())
}
