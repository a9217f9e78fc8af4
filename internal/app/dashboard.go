package app

import (
	"context"
	"fmt"
	"slices"

	tea "github.com/charmbracelet/bubbletea"
	"go.trai.ch/cram/internal/adapters/detector"
	"go.trai.ch/cram/internal/adapters/telemetry"
	"go.trai.ch/cram/internal/adapters/tui"
	"go.trai.ch/cram/internal/core/domain"
	"go.trai.ch/cram/internal/engine/view"
	"go.trai.ch/zerr"
)

// DashboardOptions configures the dashboard command.
type DashboardOptions struct {
	Tab    string
	Search string
}

// Dashboard opens the interactive dashboard, or prints an overview when output is not a terminal.
func (a *App) Dashboard(ctx context.Context, opts DashboardOptions) error {
	tab := tui.TabFlashcards
	if opts.Tab != "" {
		t, ok := tui.ParseTab(opts.Tab)
		if !ok {
			return zerr.With(zerr.New("unknown dashboard tab"), "tab", opts.Tab)
		}
		tab = t
	}

	w, err := a.open(ctx)
	if err != nil {
		return err
	}
	defer w.close(a.logger)

	source := &dashboardSource{w: w}
	if w.mode != detector.ModeInteractive {
		return a.overview(ctx, source, opts.Search)
	}

	model := tui.NewModel(a.out, source, tui.WithTab(tab), tui.WithSearch(opts.Search))
	renderer := tui.NewRenderer(model, slices.Concat([]tea.ProgramOption{tea.WithContext(ctx)}, a.teaOptions)...)
	setupOTel(telemetry.NewBridge(renderer))

	stop := a.forwardToasts(renderer)
	defer stop()

	if err := renderer.Start(ctx); err != nil {
		return err
	}
	return renderer.Wait()
}

// overview prints the counts the dashboard tabs would show.
func (a *App) overview(ctx context.Context, source *dashboardSource, term string) error {
	snap := source.Load(ctx, term)
	if snap.Err != nil {
		return snap.Err
	}

	out := a.out
	if snap.Screen != domain.ScreenDashboard {
		_, _ = fmt.Fprintln(out, "Signed out. Sign in with cram login --name NAME.")
		return nil
	}

	_, _ = fmt.Fprintf(out, "Signed in as %s\n", snap.User)
	if snap.NeedsProfile {
		_, _ = fmt.Fprintln(out, "Set your display name with cram profile set NAME.")
	}

	flashcards := view.SelectView(snap.Flashcards, found(snap.Searched, snap.Found.Flashcards))
	notes := view.SelectView(snap.Notes, found(snap.Searched, snap.Found.Notes))
	quizzes := view.SelectView(snap.Quizzes, found(snap.Searched, snap.Found.Quizzes))

	_, _ = fmt.Fprintf(out, "Flashcards  %s\n", topicSummary(len(flashcards), view.Topics(flashcards)))
	_, _ = fmt.Fprintf(out, "Notes       %s\n", topicSummary(len(notes), view.Topics(notes)))
	_, _ = fmt.Fprintf(out, "Quizzes     %s\n", topicSummary(len(quizzes), view.Topics(quizzes)))
	_, _ = fmt.Fprintf(out, "Files       %d\n", len(snap.Files))
	_, _ = fmt.Fprintf(out, "Attempts    %s\n", attemptLine(snap.Attempts))
	return nil
}

func found[T any](searched bool, items []T) view.Subset[T] {
	if !searched {
		return view.Subset[T]{}
	}
	return view.Filtered(items)
}

func topicSummary(n int, topics []string) string {
	if n == 0 {
		return "0"
	}
	return fmt.Sprintf("%d in %s", n, view.Pluralize(len(topics), "topic", "topics"))
}

func attemptLine(s view.AttemptSummary) string {
	if s.Total == 0 {
		return "none yet"
	}
	return fmt.Sprintf("%d, average %d%%, last %s", s.Total, s.AveragePercent, view.Date(s.Last))
}
