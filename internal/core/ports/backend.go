// Package ports defines the core interfaces for the application.
package ports

import (
	"context"
	"io"

	"go.trai.ch/cram/internal/core/domain"
)

// Backend is the call contract of the remote study service.
// Every method may fail with a transport or application error.
//
//go:generate mockgen -source=backend.go -destination=mocks/mock_backend.go -package=mocks
type Backend interface {
	ProfileAPI
	FlashcardAPI
	NoteAPI
	QuizAPI
	FileAPI

	// Search returns notes, flashcards and quizzes matching term.
	Search(ctx context.Context, term string) (domain.SearchResult, error)
}

// ProfileAPI covers profile and role operations.
type ProfileAPI interface {
	// GetCallerProfile returns nil when the caller has not saved a profile yet.
	GetCallerProfile(ctx context.Context) (*domain.UserProfile, error)
	SaveCallerProfile(ctx context.Context, profile domain.UserProfile) error
	GetUserProfile(ctx context.Context, user domain.Principal) (*domain.UserProfile, error)
	GetCallerRole(ctx context.Context) (domain.UserRole, error)
	AssignRole(ctx context.Context, user domain.Principal, role domain.UserRole) error
	IsCallerAdmin(ctx context.Context) (bool, error)
}

// FlashcardAPI covers flashcard operations.
type FlashcardAPI interface {
	ListFlashcards(ctx context.Context) ([]domain.Flashcard, error)
	FlashcardsByTopic(ctx context.Context, topic string) ([]domain.Flashcard, error)
	FlashcardsByDifficulty(ctx context.Context, difficulty string) ([]domain.Flashcard, error)
	// GetFlashcard returns nil when no card has the id.
	GetFlashcard(ctx context.Context, id string) (*domain.Flashcard, error)
	CreateFlashcard(ctx context.Context, input domain.FlashcardInput) (string, error)
	EditFlashcard(ctx context.Context, id string, input domain.FlashcardInput) error
	DeleteFlashcard(ctx context.Context, id string) error
}

// NoteAPI covers study note operations.
type NoteAPI interface {
	ListNotes(ctx context.Context) ([]domain.StudyNote, error)
	NotesByTopic(ctx context.Context, topic string) ([]domain.StudyNote, error)
	// GetNote returns nil when no note has the id.
	GetNote(ctx context.Context, id string) (*domain.StudyNote, error)
	CreateNote(ctx context.Context, input domain.NoteInput) (string, error)
	DeleteNote(ctx context.Context, id string) error
}

// QuizAPI covers quizzes and attempts.
type QuizAPI interface {
	ListQuizzes(ctx context.Context) ([]domain.Quiz, error)
	QuizzesByTopic(ctx context.Context, topic string) ([]domain.Quiz, error)
	// GetQuiz returns nil when no quiz has the id.
	GetQuiz(ctx context.Context, id string) (*domain.Quiz, error)
	SaveQuiz(ctx context.Context, questions []domain.QuizQuestion, topic, difficulty string) (string, error)
	ListMyAttempts(ctx context.Context) ([]domain.QuizAttempt, error)
	SaveAttempt(ctx context.Context, attempt domain.QuizAttempt) error
}

// FileAPI covers uploaded file references and blob transfer.
type FileAPI interface {
	ListFiles(ctx context.Context) ([]domain.FileMetadata, error)
	FilesByUser(ctx context.Context, user domain.Principal) ([]domain.FileMetadata, error)
	// GetFile returns nil when no file has the id.
	GetFile(ctx context.Context, id string) (*domain.FileMetadata, error)
	// UploadBlob streams content to the backend and returns a reference to it.
	UploadBlob(ctx context.Context, content io.Reader) (domain.BlobRef, error)
	SaveFileReference(ctx context.Context, name, fileType string, blob domain.BlobRef) (string, error)
	DeleteFile(ctx context.Context, id string) error
}
