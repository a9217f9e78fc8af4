package detector_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/cram/internal/adapters/detector"
	"go.trai.ch/cram/internal/core/domain"
)

func TestDetectEnvironment(t *testing.T) {
	tests := []struct {
		name    string
		ciValue string
	}{
		{name: "CI=true forces linear mode", ciValue: "true"},
		{name: "CI=1 forces linear mode", ciValue: "1"},
		{name: "CI=false on a regular file", ciValue: "false"},
		{name: "No CI env var on a regular file", ciValue: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv("CI", tt.ciValue)

			f, err := os.Create(filepath.Join(t.TempDir(), "out"))
			require.NoError(t, err)
			defer func() { _ = f.Close() }()

			assert.Equal(t, detector.ModeLinear, detector.DetectEnvironment(f))
		})
	}
}

func TestDetectEnvironment_NilFile(t *testing.T) {
	t.Setenv("CI", "")
	assert.Equal(t, detector.ModeLinear, detector.DetectEnvironment(nil))
}

func TestParseMode(t *testing.T) {
	tests := []struct {
		flag     string
		expected detector.OutputMode
	}{
		{flag: "", expected: detector.ModeAuto},
		{flag: "auto", expected: detector.ModeAuto},
		{flag: "tui", expected: detector.ModeInteractive},
		{flag: "TUI", expected: detector.ModeInteractive},
		{flag: "linear", expected: detector.ModeLinear},
		{flag: "ci", expected: detector.ModeLinear},
	}

	for _, tt := range tests {
		t.Run(tt.flag, func(t *testing.T) {
			mode, err := detector.ParseMode(tt.flag)
			require.NoError(t, err)
			assert.Equal(t, tt.expected, mode)
		})
	}

	_, err := detector.ParseMode("json")
	require.Error(t, err)
	assert.Contains(t, err.Error(), domain.ErrInvalidOutputMode.Error())
}

func TestResolveMode(t *testing.T) {
	assert.Equal(t, detector.ModeInteractive, detector.ResolveMode(detector.ModeInteractive, detector.ModeAuto))
	assert.Equal(t, detector.ModeLinear, detector.ResolveMode(detector.ModeInteractive, detector.ModeLinear))
}

func TestOutputMode_String(t *testing.T) {
	for _, m := range []detector.OutputMode{detector.ModeAuto, detector.ModeInteractive, detector.ModeLinear} {
		parsed, err := detector.ParseMode(m.String())
		require.NoError(t, err)
		assert.Equal(t, m, parsed)
	}
}
