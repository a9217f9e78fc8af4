package app

import (
	"context"
	"strings"

	"go.trai.ch/cram/internal/adapters/tui"
	"go.trai.ch/cram/internal/core/domain"
	"go.trai.ch/cram/internal/engine/querycache"
	"go.trai.ch/cram/internal/engine/view"
	"go.trai.ch/zerr"
	"golang.org/x/sync/errgroup"
)

var _ tui.Source = (*dashboardSource)(nil)

// dashboardSource loads dashboard frames through the study client.
type dashboardSource struct {
	w *workspace
}

// Start begins loading every collection and returns the frame the cache holds right now.
// Collections still in flight are marked as loading; Watch reports when they settle.
func (s *dashboardSource) Start(ctx context.Context, term string) tui.Snapshot {
	gate, client := s.w.gate, s.w.client

	snap := tui.Snapshot{Screen: gate.Screen()}
	if id, ok := gate.Identity(); ok {
		snap.User = id.Name
	}
	if !gate.Authenticated() {
		return snap
	}

	d := client.StartDashboard(ctx, term)
	if p, _ := querycache.Value[*domain.UserProfile](d.Profile); p != nil && p.Name != "" {
		snap.User = p.Name
	}
	snap.Flashcards, _ = querycache.Value[[]domain.Flashcard](d.Flashcards)
	snap.Notes, _ = querycache.Value[[]domain.StudyNote](d.Notes)
	snap.Quizzes, _ = querycache.Value[[]domain.Quiz](d.Quizzes)
	snap.Files, _ = querycache.Value[[]domain.FileMetadata](d.Files)
	attempts, _ := querycache.Value[[]domain.QuizAttempt](d.Attempts)
	snap.Attempts = view.SummarizeAttempts(attempts)

	snap.Loading = map[tui.Tab]bool{
		tui.TabFlashcards: d.Flashcards.IsLoading(),
		tui.TabNotes:      d.Notes.IsLoading(),
		tui.TabQuizzes:    d.Quizzes.IsLoading() || d.Attempts.IsLoading(),
		tui.TabFiles:      d.Files.IsLoading(),
	}
	if strings.TrimSpace(term) != "" {
		snap.Found, snap.Searched = querycache.Value[domain.SearchResult](d.Search)
		snap.Searching = d.Search.IsLoading()
	}

	snap.Err = d.Err()
	snap.NeedsProfile = gate.NeedsProfile(d.Profile)
	return snap
}

// Watch signals whenever a dashboard query for term changes state.
func (s *dashboardSource) Watch(term string) (<-chan struct{}, func()) {
	return s.w.client.WatchDashboard(term)
}

// Retry refetches the dashboard queries for term that failed.
func (s *dashboardSource) Retry(ctx context.Context, term string) {
	s.w.client.RetryDashboard(ctx, term)
}

// Load reads every collection in parallel and waits for all of them. Each query is cached, so only stale or
// missing collections reach the backend.
func (s *dashboardSource) Load(ctx context.Context, term string) tui.Snapshot {
	gate, client := s.w.gate, s.w.client

	snap := tui.Snapshot{Screen: gate.Screen()}
	if id, ok := gate.Identity(); ok {
		snap.User = id.Name
	}
	if !gate.Authenticated() {
		return snap
	}

	var (
		g        errgroup.Group
		profile  domain.QueryEntry
		attempts []domain.QuizAttempt
	)
	g.Go(func() error {
		p, entry := client.CallerProfile(ctx)
		profile = entry
		if p != nil && p.Name != "" {
			snap.User = p.Name
		}
		return settled(ctx, entry)
	})
	g.Go(func() error {
		cards, entry := client.Flashcards(ctx)
		snap.Flashcards = cards
		return settled(ctx, entry)
	})
	g.Go(func() error {
		notes, entry := client.Notes(ctx)
		snap.Notes = notes
		return settled(ctx, entry)
	})
	g.Go(func() error {
		quizzes, entry := client.Quizzes(ctx)
		snap.Quizzes = quizzes
		return settled(ctx, entry)
	})
	g.Go(func() error {
		var entry domain.QueryEntry
		attempts, entry = client.Attempts(ctx)
		return settled(ctx, entry)
	})
	g.Go(func() error {
		files, entry := client.Files(ctx)
		snap.Files = files
		return settled(ctx, entry)
	})
	if term != "" {
		g.Go(func() error {
			found, entry := client.Search(ctx, term)
			if err := settled(ctx, entry); err != nil {
				return err
			}
			snap.Searched = true
			snap.Found = found
			return nil
		})
	}

	snap.Err = g.Wait()
	snap.NeedsProfile = gate.NeedsProfile(profile)
	snap.Attempts = view.SummarizeAttempts(attempts)
	return snap
}

// Refresh marks all cached collections stale. Watchers see the refetch.
func (s *dashboardSource) Refresh() {
	s.w.client.Refresh()
}

// Delete removes the record with id from the collection shown on tab.
func (s *dashboardSource) Delete(ctx context.Context, tab tui.Tab, id string) error {
	client := s.w.client
	switch tab {
	case tui.TabFlashcards:
		return client.DeleteFlashcard(ctx, id).Err()
	case tui.TabNotes:
		return client.DeleteNote(ctx, id).Err()
	case tui.TabFiles:
		return client.DeleteFile(ctx, id).Err()
	default:
		return zerr.With(zerr.New("records of this tab cannot be deleted"), "tab", tab.String())
	}
}
