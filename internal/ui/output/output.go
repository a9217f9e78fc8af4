// Package output creates termenv outputs for the two ways cram writes to a terminal:
// the interactive dashboard and plain line output.
package output

import (
	"io"
	"os"

	"github.com/muesli/termenv"
)

// Interactive returns the color profile for the dashboard.
// NO_COLOR disables colors; otherwise the terminal's capabilities decide.
func Interactive() termenv.Profile {
	if noColor() {
		return termenv.Ascii
	}
	return termenv.EnvColorProfile()
}

// Plain returns the color profile for line output, which often ends up in CI logs.
// It never goes beyond the 16 basic ANSI colors.
func Plain() termenv.Profile {
	if noColor() {
		return termenv.Ascii
	}
	return termenv.ANSI
}

// New creates an output on w with the interactive profile. A nil w writes to stderr.
func New(w io.Writer) *termenv.Output {
	return newOutput(w, Interactive())
}

// NewPlain creates an output on w with the plain profile. A nil w writes to stderr.
func NewPlain(w io.Writer) *termenv.Output {
	return newOutput(w, Plain())
}

func newOutput(w io.Writer, profile termenv.Profile) *termenv.Output {
	if w == nil {
		w = os.Stderr
	}
	return termenv.NewOutput(w, termenv.WithProfile(profile), termenv.WithTTY(true))
}

func noColor() bool {
	return os.Getenv("NO_COLOR") != ""
}
