package studysync_test

import (
	"context"
	"errors"
	"testing"
	"testing/synctest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/cram/internal/core/domain"
	"go.trai.ch/cram/internal/engine/studysync"
	"go.uber.org/mock/gomock"
)

// expectCollections serves every dashboard collection once with empty results.
func expectCollections(h *harness) {
	h.backend.EXPECT().GetCallerProfile(gomock.Any()).Return(&domain.UserProfile{Name: "Ada"}, nil)
	h.backend.EXPECT().ListNotes(gomock.Any()).Return(nil, nil)
	h.backend.EXPECT().ListQuizzes(gomock.Any()).Return(nil, nil)
	h.backend.EXPECT().ListMyAttempts(gomock.Any()).Return(nil, nil)
	h.backend.EXPECT().ListFiles(gomock.Any()).Return(nil, nil)
}

func TestStartDashboard_ReturnsWithoutWaiting(t *testing.T) {
	synctest.Test(t, func(t *testing.T) {
		h := newHarness(t)
		ctx := context.Background()

		release := make(chan struct{})
		expectCollections(h)
		h.backend.EXPECT().ListFlashcards(gomock.Any()).DoAndReturn(
			func(context.Context) ([]domain.Flashcard, error) {
				<-release
				return []domain.Flashcard{{ID: "c1", Topic: "Physics"}}, nil
			})

		d := h.client.StartDashboard(ctx, "  ")
		assert.Equal(t, domain.StatusLoading, d.Flashcards.Status)
		assert.Equal(t, domain.StatusLoading, d.Notes.Status)
		assert.Equal(t, domain.StatusIdle, d.Search.Status, "a blank term does not search")

		synctest.Wait()
		d = h.client.StartDashboard(ctx, "")
		assert.Equal(t, domain.StatusSuccess, d.Notes.Status)
		assert.Equal(t, domain.StatusLoading, d.Flashcards.Status, "the slow fetch is joined, not repeated")

		close(release)
		synctest.Wait()
		d = h.client.StartDashboard(ctx, "")
		require.Equal(t, domain.StatusSuccess, d.Flashcards.Status)
		assert.Equal(t, []domain.Flashcard{{ID: "c1", Topic: "Physics"}}, d.Flashcards.Value)
		assert.NoError(t, d.Err())
	})
}

func TestStartDashboard_SignedOutStaysIdle(t *testing.T) {
	h := newHarness(t)
	h.session.principal = ""

	d := h.client.StartDashboard(context.Background(), "cells")

	assert.Equal(t, domain.StatusIdle, d.Profile.Status)
	assert.Equal(t, domain.StatusIdle, d.Search.Status)
	assert.Zero(t, h.cache.Len())
}

func TestWatchDashboard_SignalsChangesUntilStopped(t *testing.T) {
	synctest.Test(t, func(t *testing.T) {
		h := newHarness(t)
		ctx := context.Background()
		h.backend.EXPECT().ListNotes(gomock.Any()).Return([]domain.StudyNote{{ID: "n1"}}, nil).Times(2)

		changes, stop := h.client.WatchDashboard("")

		h.client.Notes(ctx)
		synctest.Wait()
		select {
		case <-changes:
		default:
			t.Fatal("a settled query is signalled")
		}
		select {
		case <-changes:
			t.Fatal("signals coalesce while unread")
		default:
		}

		h.client.Notes(ctx)
		synctest.Wait()
		select {
		case <-changes:
			t.Fatal("a cache hit changes nothing")
		default:
		}

		h.cache.Invalidate(studysync.NotesKey())
		synctest.Wait()
		select {
		case <-changes:
		default:
			t.Fatal("an invalidation is signalled")
		}

		h.client.Notes(ctx)
		stop()
		stop()
		for range changes {
		}
	})
}

func TestRetryDashboard_RefetchesFailedQueries(t *testing.T) {
	h := newHarness(t)
	ctx := context.Background()

	outage := errors.Join(domain.ErrTransportUnavailable, errors.New("connection reset"))
	expectCollections(h)
	h.backend.EXPECT().ListFlashcards(gomock.Any()).Return(nil, outage)
	h.backend.EXPECT().ListFlashcards(gomock.Any()).Return([]domain.Flashcard{{ID: "c1"}}, nil)

	h.client.CallerProfile(ctx)
	h.client.Notes(ctx)
	h.client.Quizzes(ctx)
	h.client.Attempts(ctx)
	h.client.Files(ctx)
	_, entry := h.client.Flashcards(ctx)
	require.Equal(t, domain.StatusError, entry.Status)

	d := h.client.StartDashboard(ctx, "")
	require.ErrorIs(t, d.Err(), domain.ErrTransportUnavailable, "a failed query is not refetched by a start")

	assert.Equal(t, 1, h.client.RetryDashboard(ctx, ""))

	d = h.client.StartDashboard(ctx, "")
	require.NoError(t, d.Err())
	assert.Equal(t, []domain.Flashcard{{ID: "c1"}}, d.Flashcards.Value)
	assert.Zero(t, h.client.RetryDashboard(ctx, ""), "nothing left to retry")
}
