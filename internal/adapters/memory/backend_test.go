package memory_test

import (
	"context"
	"fmt"
	"strings"
	"testing"
	"time"

	"github.com/cespare/xxhash/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/cram/internal/adapters/memory"
	"go.trai.ch/cram/internal/core/domain"
)

var fixed = time.Date(2026, 5, 4, 9, 30, 0, 0, time.UTC)

func newBackend(opts ...memory.Option) *memory.Backend {
	n := 0
	base := []memory.Option{
		memory.WithClock(func() time.Time { return fixed }),
		memory.WithIDs(func() string {
			n++
			return fmt.Sprintf("id-%d", n)
		}),
	}
	return memory.New(append(base, opts...)...)
}

func as(p string) context.Context {
	return domain.WithCaller(context.Background(), domain.Principal(p))
}

func TestBackend_FirstCallerIsAdmin(t *testing.T) {
	b := newBackend()

	admin, err := b.IsCallerAdmin(as("ada"))
	require.NoError(t, err)
	assert.True(t, admin)

	role, err := b.GetCallerRole(as("grace"))
	require.NoError(t, err)
	assert.Equal(t, domain.RoleUser, role)

	role, err = b.GetCallerRole(context.Background())
	require.NoError(t, err)
	assert.Equal(t, domain.RoleGuest, role)

	err = b.AssignRole(as("grace"), "ada", domain.RoleGuest)
	require.ErrorIs(t, err, domain.ErrForbidden)

	require.NoError(t, b.AssignRole(as("ada"), "grace", domain.RoleAdmin))
	admin, err = b.IsCallerAdmin(as("grace"))
	require.NoError(t, err)
	assert.True(t, admin)
}

func TestBackend_Profiles(t *testing.T) {
	b := newBackend()

	profile, err := b.GetCallerProfile(as("ada"))
	require.NoError(t, err)
	assert.Nil(t, profile)

	require.NoError(t, b.SaveCallerProfile(as("ada"), domain.UserProfile{Name: " Ada "}))
	profile, err = b.GetUserProfile(context.Background(), "ada")
	require.NoError(t, err)
	require.NotNil(t, profile)
	assert.Equal(t, "Ada", profile.Name)

	err = b.SaveCallerProfile(as("ada"), domain.UserProfile{Name: " "})
	assert.Equal(t, domain.KindValidationFailed, domain.KindOf(err))

	_, err = b.GetCallerProfile(context.Background())
	require.ErrorIs(t, err, domain.ErrNotAuthenticated)
}

func TestBackend_FlashcardLifecycle(t *testing.T) {
	b := newBackend()
	ctx := as("ada")

	id, err := b.CreateFlashcard(ctx, domain.FlashcardInput{
		Topic: "Biology", Question: "Powerhouse?", Answer: "Mitochondria", Difficulty: "easy",
	})
	require.NoError(t, err)
	_, err = b.CreateFlashcard(ctx, domain.FlashcardInput{
		Topic: "Chemistry", Question: "H2O?", Answer: "Water", Difficulty: "hard",
	})
	require.NoError(t, err)

	card, err := b.GetFlashcard(ctx, id)
	require.NoError(t, err)
	require.NotNil(t, card)
	assert.Equal(t, domain.Principal("ada"), card.CreatedBy)
	assert.Equal(t, fixed, card.CreatedAt)

	byTopic, err := b.FlashcardsByTopic(ctx, "Biology")
	require.NoError(t, err)
	assert.Len(t, byTopic, 1)

	byDifficulty, err := b.FlashcardsByDifficulty(ctx, "hard")
	require.NoError(t, err)
	require.Len(t, byDifficulty, 1)
	assert.Equal(t, "Chemistry", byDifficulty[0].Topic)

	// Another user may not touch ada's card.
	err = b.EditFlashcard(as("grace"), id, domain.FlashcardInput{Topic: "x", Question: "y", Answer: "z", Difficulty: "easy"})
	require.ErrorIs(t, err, domain.ErrForbidden)

	require.NoError(t, b.EditFlashcard(ctx, id, domain.FlashcardInput{
		Topic: "Biology", Question: "Powerhouse of the cell?", Answer: "Mitochondria", Difficulty: "medium",
	}))
	card, err = b.GetFlashcard(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, "medium", card.Difficulty)

	require.NoError(t, b.DeleteFlashcard(ctx, id))
	card, err = b.GetFlashcard(ctx, id)
	require.NoError(t, err)
	assert.Nil(t, card)

	err = b.DeleteFlashcard(ctx, id)
	require.ErrorIs(t, err, domain.ErrNotFound)

	_, err = b.CreateFlashcard(context.Background(), domain.FlashcardInput{})
	require.ErrorIs(t, err, domain.ErrNotAuthenticated)
}

func TestBackend_NotesAndQuizzes(t *testing.T) {
	b := newBackend()
	ctx := as("ada")

	noteID, err := b.CreateNote(ctx, domain.NoteInput{Title: "Cells", Content: "Cells divide.", Topic: "Biology"})
	require.NoError(t, err)

	notes, err := b.NotesByTopic(ctx, "Biology")
	require.NoError(t, err)
	require.Len(t, notes, 1)
	assert.Equal(t, noteID, notes[0].ID)

	quizID, err := b.SaveQuiz(ctx, []domain.QuizQuestion{
		{Question: "2+2?", Options: []string{"3", "4"}, CorrectAnswer: "4"},
	}, "Math", "easy")
	require.NoError(t, err)

	quiz, err := b.GetQuiz(ctx, quizID)
	require.NoError(t, err)
	require.NotNil(t, quiz)
	require.Len(t, quiz.Questions, 1)
	assert.NotEmpty(t, quiz.Questions[0].ID)

	require.NoError(t, b.SaveAttempt(ctx, domain.QuizAttempt{Topic: "Math", Score: 1, TotalQuestions: 1}))
	require.NoError(t, b.SaveAttempt(as("grace"), domain.QuizAttempt{Topic: "Math", Score: 0, TotalQuestions: 1}))

	mine, err := b.ListMyAttempts(ctx)
	require.NoError(t, err)
	require.Len(t, mine, 1)
	assert.Equal(t, domain.Principal("ada"), mine[0].User)
	assert.Equal(t, fixed, mine[0].Timestamp)

	require.NoError(t, b.DeleteNote(ctx, noteID))
	notes, err = b.ListNotes(ctx)
	require.NoError(t, err)
	assert.Empty(t, notes)
}

func TestBackend_Files(t *testing.T) {
	b := newBackend(memory.WithMaxBlobSize(16))
	ctx := as("ada")
	content := []byte("lecture 1 notes")

	ref, err := b.UploadBlob(ctx, strings.NewReader(string(content)))
	require.NoError(t, err)
	assert.Equal(t, int64(len(content)), ref.Size)
	assert.Equal(t, domain.FormatDigest(xxhash.Sum64(content)), ref.Digest)

	_, err = b.SaveFileReference(ctx, "l1.txt", "text/plain", domain.BlobRef{ID: ref.ID, Digest: "bad"})
	assert.Equal(t, domain.KindValidationFailed, domain.KindOf(err))

	fileID, err := b.SaveFileReference(ctx, "l1.txt", "text/plain", ref)
	require.NoError(t, err)

	mine, err := b.FilesByUser(ctx, "ada")
	require.NoError(t, err)
	require.Len(t, mine, 1)
	assert.Equal(t, ref, mine[0].Blob)

	data, ok := b.Blob(ref.ID)
	require.True(t, ok)
	assert.Equal(t, content, data)

	_, err = b.UploadBlob(ctx, strings.NewReader("this is far too long"))
	require.ErrorIs(t, err, domain.ErrUploadFailed)

	require.NoError(t, b.DeleteFile(ctx, fileID))
	_, ok = b.Blob(ref.ID)
	assert.False(t, ok)

	_, err = b.SaveFileReference(ctx, "l1.txt", "text/plain", ref)
	require.ErrorIs(t, err, domain.ErrNotFound)
}

func TestBackend_Search(t *testing.T) {
	b := newBackend()
	ctx := as("ada")

	_, err := b.CreateNote(ctx, domain.NoteInput{Title: "Photosynthesis", Content: "Light to sugar", Topic: "Biology"})
	require.NoError(t, err)
	_, err = b.CreateFlashcard(ctx, domain.FlashcardInput{Topic: "Physics", Question: "Speed of light?", Answer: "c", Difficulty: "easy"})
	require.NoError(t, err)
	_, err = b.SaveQuiz(ctx, []domain.QuizQuestion{{Question: "What is LIGHT made of?", Options: []string{"a", "b"}, CorrectAnswer: "a"}}, "Physics", "easy")
	require.NoError(t, err)

	result, err := b.Search(ctx, "light")
	require.NoError(t, err)
	assert.Len(t, result.Notes, 1)
	assert.Len(t, result.Flashcards, 1)
	assert.Len(t, result.Quizzes, 1)

	result, err = b.Search(ctx, "   ")
	require.NoError(t, err)
	assert.True(t, result.Empty())
}
