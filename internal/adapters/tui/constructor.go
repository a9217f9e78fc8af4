// Package tui provides the interactive study dashboard.
package tui

import (
	"context"
	"io"
	"os"
	"time"

	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/lipgloss"
	"go.trai.ch/cram/internal/ui/output"
)

const defaultToastTTL = 4 * time.Second

// Option configures a Model.
type Option func(*Model)

// WithTab selects the tab shown first.
func WithTab(t Tab) Option {
	return func(m *Model) {
		m.tab = t
	}
}

// WithSearch starts the dashboard with a search term applied.
func WithSearch(term string) Option {
	return func(m *Model) {
		m.term = term
		m.search.SetValue(term)
	}
}

// NewModel creates a dashboard model that reads from source.
func NewModel(w io.Writer, source Source, opts ...Option) *Model {
	if w == nil {
		w = os.Stderr
	}

	out := output.New(w)
	lipgloss.SetColorProfile(out.Profile)

	search := textinput.New()
	search.Placeholder = "search notes, flashcards and quizzes"
	search.Prompt = "/ "
	search.CharLimit = 120

	m := &Model{
		ctx:      context.Background(),
		source:   source,
		search:   search,
		spinner:  spinner.New(spinner.WithSpinner(spinner.Dot), spinner.WithStyle(spinnerStyle)),
		inflight: make(map[string]call),
		toastTTL: defaultToastTTL,
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}
