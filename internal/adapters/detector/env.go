// Package detector picks how command results are presented for the current terminal.
package detector

import (
	"os"
	"strings"

	"go.trai.ch/cram/internal/core/domain"
	"go.trai.ch/zerr"
	"golang.org/x/term"
)

// OutputMode represents the rendering mode for the application.
type OutputMode int

const (
	// ModeAuto automatically detects the appropriate mode.
	ModeAuto OutputMode = iota
	// ModeInteractive uses the dashboard and live status line.
	ModeInteractive
	// ModeLinear prints one line per call and outcome.
	ModeLinear
)

// String returns the flag value selecting the mode.
func (m OutputMode) String() string {
	switch m {
	case ModeInteractive:
		return "tui"
	case ModeLinear:
		return "linear"
	default:
		return "auto"
	}
}

// DetectEnvironment returns the recommended output mode for f.
// Pipes, files and CI runners get linear output.
func DetectEnvironment(f *os.File) OutputMode {
	ci := strings.ToLower(os.Getenv("CI"))
	if ci == "true" || ci == "1" {
		return ModeLinear
	}
	if f == nil || !term.IsTerminal(int(f.Fd())) {
		return ModeLinear
	}
	return ModeInteractive
}

// ParseMode parses the value of the --output-mode flag.
func ParseMode(flag string) (OutputMode, error) {
	switch strings.ToLower(flag) {
	case "", "auto":
		return ModeAuto, nil
	case "tui", "interactive":
		return ModeInteractive, nil
	case "linear", "ci", "plain":
		return ModeLinear, nil
	default:
		return ModeAuto, zerr.With(domain.ErrInvalidOutputMode, "output", flag)
	}
}

// ResolveMode applies the user's choice to auto-detection.
func ResolveMode(autoDetected, chosen OutputMode) OutputMode {
	if chosen == ModeAuto {
		return autoDetected
	}
	return chosen
}
