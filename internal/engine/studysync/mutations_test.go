package studysync_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/cram/internal/core/domain"
	"go.uber.org/mock/gomock"
)

func TestCreateFlashcard_ValidationNeverReachesBackend(t *testing.T) {
	h := newHarness(t)

	tests := []struct {
		name  string
		input domain.FlashcardInput
		field string
	}{
		{
			name:  "blank question",
			input: domain.FlashcardInput{Topic: "bio", Question: "   ", Answer: "a", Difficulty: "easy"},
			field: "question",
		},
		{
			name:  "unknown difficulty",
			input: domain.FlashcardInput{Topic: "bio", Question: "q", Answer: "a", Difficulty: "brutal"},
			field: "difficulty",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h.notifier.EXPECT().Failure("Failed to create flashcard", gomock.Any()).Times(1)

			res := h.client.CreateFlashcard(context.Background(), tt.input)

			require.False(t, res.IsOk())
			assert.ErrorIs(t, res.Err(), domain.ErrValidationFailed)
			assert.Equal(t, domain.KindValidationFailed, res.Kind())
			assert.Contains(t, res.Message(), tt.field)
		})
	}
}

func TestCreateFlashcard_InvalidatesFlashcardsAndSearch(t *testing.T) {
	h := newHarness(t)
	ctx := context.Background()

	h.backend.EXPECT().ListFlashcards(gomock.Any()).Return(nil, nil).Times(2)
	h.backend.EXPECT().Search(gomock.Any(), "mitosis").Return(domain.SearchResult{}, nil).Times(2)
	h.backend.EXPECT().ListNotes(gomock.Any()).Return(nil, nil).Times(1)

	h.client.Flashcards(ctx)
	h.client.Search(ctx, "mitosis")
	h.client.Notes(ctx)

	h.backend.EXPECT().CreateFlashcard(gomock.Any(), domain.FlashcardInput{
		Topic: "bio", Question: "What divides?", Answer: "Cells", Difficulty: "medium",
	}).Return("card-1", nil)
	h.notifier.EXPECT().Success("Flashcard created successfully").Times(1)

	res := h.client.CreateFlashcard(ctx, domain.FlashcardInput{
		Topic: " bio ", Question: "What divides? ", Answer: "Cells", Difficulty: "Medium",
	})
	id, err := res.Get()
	require.NoError(t, err)
	assert.Equal(t, "card-1", id)

	h.client.Flashcards(ctx)
	h.client.Search(ctx, "mitosis")
	h.client.Notes(ctx)
}

func TestMutation_FailureLeavesCacheAndNotifiesOnce(t *testing.T) {
	h := newHarness(t)
	ctx := context.Background()

	h.backend.EXPECT().ListNotes(gomock.Any()).Return([]domain.StudyNote{{ID: "n1"}}, nil).Times(1)
	h.client.Notes(ctx)

	remoteErr := errors.Join(domain.ErrRemoteCallFailed, errors.New("caller is not permitted"))
	h.backend.EXPECT().DeleteNote(gomock.Any(), "n1").Return(remoteErr)
	h.notifier.EXPECT().Failure("Failed to delete note", remoteErr).Times(1)

	res := h.client.DeleteNote(ctx, "n1")

	assert.Equal(t, domain.KindRemoteCallFailed, res.Kind())
	entry, ok := h.cache.Peek(domain.NewQueryKey("notes"))
	require.True(t, ok)
	assert.False(t, entry.Stale)
}

func TestMutation_SignedOutIsTransportUnavailable(t *testing.T) {
	h := newHarness(t)
	h.session.principal = ""
	h.notifier.EXPECT().Failure(gomock.Any(), gomock.Any()).Times(1)

	res := h.client.CreateNote(context.Background(), domain.NoteInput{Title: "t", Content: "c", Topic: "x"})

	assert.Equal(t, domain.KindTransportUnavailable, res.Kind())
	assert.ErrorIs(t, res.Err(), domain.ErrNotAuthenticated)
}

func TestSaveQuiz(t *testing.T) {
	questions := func(answer string) []domain.QuizQuestion {
		return []domain.QuizQuestion{{
			Question:      "2+2?",
			Options:       []string{"3", " 4 "},
			CorrectAnswer: answer,
		}}
	}

	t.Run("correct answer must be an option", func(t *testing.T) {
		h := newHarness(t)
		h.notifier.EXPECT().Failure("Failed to save quiz", gomock.Any())

		res := h.client.SaveQuiz(context.Background(), domain.QuizInput{
			Topic: "math", Difficulty: "easy", Questions: questions("5"),
		})

		assert.Equal(t, domain.KindValidationFailed, res.Kind())
		assert.Contains(t, res.Message(), "correctAnswer must be one of the options")
	})

	t.Run("question needs two options", func(t *testing.T) {
		h := newHarness(t)
		h.notifier.EXPECT().Failure("Failed to save quiz", gomock.Any())

		res := h.client.SaveQuiz(context.Background(), domain.QuizInput{
			Topic: "math", Difficulty: "easy",
			Questions: []domain.QuizQuestion{{Question: "q", Options: []string{"a"}, CorrectAnswer: "a"}},
		})

		assert.Equal(t, domain.KindValidationFailed, res.Kind())
		assert.Contains(t, res.Message(), "options")
	})

	t.Run("questions inherit topic and difficulty", func(t *testing.T) {
		h := newHarness(t)
		h.backend.EXPECT().SaveQuiz(gomock.Any(), gomock.Any(), "math", "easy").DoAndReturn(
			func(_ context.Context, qs []domain.QuizQuestion, _, _ string) (string, error) {
				require.Len(t, qs, 1)
				assert.Equal(t, "math", qs[0].Topic)
				assert.Equal(t, "easy", qs[0].Difficulty)
				assert.Equal(t, []string{"3", "4"}, qs[0].Options)
				return "quiz-1", nil
			})
		h.notifier.EXPECT().Success("Quiz saved successfully")

		res := h.client.SaveQuiz(context.Background(), domain.QuizInput{
			Topic: "math", Difficulty: "Easy", Questions: questions("4"),
		})
		assert.Equal(t, "quiz-1", res.Value())
	})
}

func TestSaveAttempt(t *testing.T) {
	h := newHarness(t)
	ctx := context.Background()

	h.backend.EXPECT().SaveAttempt(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, a domain.QuizAttempt) error {
			assert.Equal(t, domain.Principal("student-1"), a.User)
			assert.False(t, a.Timestamp.IsZero())
			return nil
		})
	h.notifier.EXPECT().Success("Quiz attempt saved")
	res := h.client.SaveAttempt(ctx, domain.QuizAttempt{Topic: "math", Score: 2, TotalQuestions: 3})
	assert.True(t, res.IsOk())

	h.notifier.EXPECT().Failure("Failed to save quiz attempt", gomock.Any())
	res = h.client.SaveAttempt(ctx, domain.QuizAttempt{Topic: "math", Score: 4, TotalQuestions: 3})
	assert.Equal(t, domain.KindValidationFailed, res.Kind())
}

func TestProfileAndRoles(t *testing.T) {
	h := newHarness(t)
	ctx := context.Background()

	h.backend.EXPECT().GetCallerProfile(gomock.Any()).Return(nil, nil).Times(2)
	_, entry := h.client.CallerProfile(ctx)
	require.Equal(t, domain.StatusSuccess, entry.Status)

	h.backend.EXPECT().SaveCallerProfile(gomock.Any(), domain.UserProfile{Name: "Ada"}).Return(nil)
	h.notifier.EXPECT().Success("Profile saved successfully")
	assert.True(t, h.client.SaveProfile(ctx, domain.UserProfile{Name: " Ada "}).IsOk())
	h.client.CallerProfile(ctx)

	h.notifier.EXPECT().Failure("Failed to assign role", gomock.Any())
	res := h.client.AssignRole(ctx, "student-2", "superuser")
	assert.Equal(t, domain.KindValidationFailed, res.Kind())
}
