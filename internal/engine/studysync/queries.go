package studysync

import (
	"context"
	"strings"

	"go.trai.ch/cram/internal/core/domain"
	"go.trai.ch/cram/internal/engine/querycache"
)

// query reads key through the cache with the caller attached to the fetch context.
func query[T any](
	ctx context.Context,
	c *Client,
	key domain.QueryKey,
	enabled bool,
	fetch func(context.Context) (T, error),
) (T, domain.QueryEntry) {
	return querycache.Query(c.caller(ctx), c.cache, key, fetch, enabled)
}

// CallerProfile returns the signed-in user's profile, nil when none was saved yet.
func (c *Client) CallerProfile(ctx context.Context) (*domain.UserProfile, domain.QueryEntry) {
	return query(ctx, c, ProfileKey(), c.gated(), c.backend.GetCallerProfile)
}

// CallerRole returns the signed-in user's role.
func (c *Client) CallerRole(ctx context.Context) (domain.UserRole, domain.QueryEntry) {
	return query(ctx, c, RoleKey(), c.gated(), c.backend.GetCallerRole)
}

// IsCallerAdmin reports whether the signed-in user is an admin.
func (c *Client) IsCallerAdmin(ctx context.Context) (bool, domain.QueryEntry) {
	return query(ctx, c, AdminKey(), c.gated(), c.backend.IsCallerAdmin)
}

// UserProfile returns the profile of user.
func (c *Client) UserProfile(ctx context.Context, user domain.Principal) (*domain.UserProfile, domain.QueryEntry) {
	return query(ctx, c, UserProfileKey(user), c.gated(user.String()),
		func(ctx context.Context) (*domain.UserProfile, error) {
			return c.backend.GetUserProfile(ctx, user)
		})
}

// Flashcards returns every flashcard.
func (c *Client) Flashcards(ctx context.Context) ([]domain.Flashcard, domain.QueryEntry) {
	return query(ctx, c, FlashcardsKey(), c.gated(), c.backend.ListFlashcards)
}

// FlashcardsByTopic returns the flashcards of topic. An empty topic disables the query.
func (c *Client) FlashcardsByTopic(ctx context.Context, topic string) ([]domain.Flashcard, domain.QueryEntry) {
	return query(ctx, c, FlashcardsByTopicKey(topic), c.gated(topic),
		func(ctx context.Context) ([]domain.Flashcard, error) {
			return c.backend.FlashcardsByTopic(ctx, topic)
		})
}

// FlashcardsByDifficulty returns the flashcards of one difficulty.
func (c *Client) FlashcardsByDifficulty(ctx context.Context, difficulty string) ([]domain.Flashcard, domain.QueryEntry) {
	return query(ctx, c, FlashcardsByDifficultyKey(difficulty), c.gated(difficulty),
		func(ctx context.Context) ([]domain.Flashcard, error) {
			return c.backend.FlashcardsByDifficulty(ctx, difficulty)
		})
}

// Flashcard returns one flashcard, nil when it does not exist.
func (c *Client) Flashcard(ctx context.Context, id string) (*domain.Flashcard, domain.QueryEntry) {
	return query(ctx, c, FlashcardKey(id), c.gated(id),
		func(ctx context.Context) (*domain.Flashcard, error) {
			return c.backend.GetFlashcard(ctx, id)
		})
}

// Notes returns every note.
func (c *Client) Notes(ctx context.Context) ([]domain.StudyNote, domain.QueryEntry) {
	return query(ctx, c, NotesKey(), c.gated(), c.backend.ListNotes)
}

// NotesByTopic returns the notes of topic.
func (c *Client) NotesByTopic(ctx context.Context, topic string) ([]domain.StudyNote, domain.QueryEntry) {
	return query(ctx, c, NotesByTopicKey(topic), c.gated(topic),
		func(ctx context.Context) ([]domain.StudyNote, error) {
			return c.backend.NotesByTopic(ctx, topic)
		})
}

// Note returns one note, nil when it does not exist.
func (c *Client) Note(ctx context.Context, id string) (*domain.StudyNote, domain.QueryEntry) {
	return query(ctx, c, NoteKey(id), c.gated(id),
		func(ctx context.Context) (*domain.StudyNote, error) {
			return c.backend.GetNote(ctx, id)
		})
}

// Quizzes returns every saved quiz.
func (c *Client) Quizzes(ctx context.Context) ([]domain.Quiz, domain.QueryEntry) {
	return query(ctx, c, QuizzesKey(), c.gated(), c.backend.ListQuizzes)
}

// QuizzesByTopic returns the quizzes of topic.
func (c *Client) QuizzesByTopic(ctx context.Context, topic string) ([]domain.Quiz, domain.QueryEntry) {
	return query(ctx, c, QuizzesByTopicKey(topic), c.gated(topic),
		func(ctx context.Context) ([]domain.Quiz, error) {
			return c.backend.QuizzesByTopic(ctx, topic)
		})
}

// Quiz returns one quiz, nil when it does not exist.
func (c *Client) Quiz(ctx context.Context, id string) (*domain.Quiz, domain.QueryEntry) {
	return query(ctx, c, QuizKey(id), c.gated(id),
		func(ctx context.Context) (*domain.Quiz, error) {
			return c.backend.GetQuiz(ctx, id)
		})
}

// Attempts returns the signed-in user's quiz attempts.
func (c *Client) Attempts(ctx context.Context) ([]domain.QuizAttempt, domain.QueryEntry) {
	return query(ctx, c, AttemptsKey(), c.gated(), c.backend.ListMyAttempts)
}

// Files returns every uploaded file.
func (c *Client) Files(ctx context.Context) ([]domain.FileMetadata, domain.QueryEntry) {
	return query(ctx, c, FilesKey(), c.gated(), c.backend.ListFiles)
}

// FilesByUser returns the files uploaded by user.
func (c *Client) FilesByUser(ctx context.Context, user domain.Principal) ([]domain.FileMetadata, domain.QueryEntry) {
	return query(ctx, c, FilesByUserKey(user), c.gated(user.String()),
		func(ctx context.Context) ([]domain.FileMetadata, error) {
			return c.backend.FilesByUser(ctx, user)
		})
}

// File returns one file reference, nil when it does not exist.
func (c *Client) File(ctx context.Context, id string) (*domain.FileMetadata, domain.QueryEntry) {
	return query(ctx, c, FileKey(id), c.gated(id),
		func(ctx context.Context) (*domain.FileMetadata, error) {
			return c.backend.GetFile(ctx, id)
		})
}

// Search returns the notes, flashcards and quizzes matching term.
// Surrounding whitespace is ignored and a blank term disables the query.
func (c *Client) Search(ctx context.Context, term string) (domain.SearchResult, domain.QueryEntry) {
	term = strings.TrimSpace(term)
	return query(ctx, c, SearchKey(term), c.gated(term),
		func(ctx context.Context) (domain.SearchResult, error) {
			return c.backend.Search(ctx, term)
		})
}
