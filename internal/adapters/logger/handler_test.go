package logger_test

import (
	"bytes"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.trai.ch/cram/internal/adapters/logger"
)

func TestPrettyHandler_Attrs(t *testing.T) {
	t.Setenv("NO_COLOR", "1")

	buf := &bytes.Buffer{}
	lg := slog.New(logger.NewPrettyHandler(buf, nil)).
		With("tab", "notes")

	lg.Info("refetched", "entries", 2)

	assert.Equal(t, "refetched tab=notes entries=2\n", buf.String())
}

func TestPrettyHandler_Group(t *testing.T) {
	t.Setenv("NO_COLOR", "1")

	buf := &bytes.Buffer{}
	lg := slog.New(logger.NewPrettyHandler(buf, nil)).WithGroup("query")

	lg.Warn("stale result discarded", "key", "notes")

	assert.Equal(t, "! stale result discarded query.key=notes\n", buf.String())
}

func TestPrettyHandler_LevelIsLive(t *testing.T) {
	t.Setenv("NO_COLOR", "1")

	level := new(slog.LevelVar)
	buf := &bytes.Buffer{}
	lg := slog.New(logger.NewPrettyHandler(buf, &slog.HandlerOptions{Level: level}))

	lg.Debug("hidden")
	level.Set(slog.LevelDebug)
	lg.Debug("shown")

	assert.Equal(t, "~ shown\n", buf.String())
}
