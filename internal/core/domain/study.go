package domain

import (
	"strconv"
	"time"
)

// Principal identifies a caller of the remote backend.
type Principal string

// String returns the principal as text.
func (p Principal) String() string {
	return string(p)
}

// IsAnonymous reports whether the principal is empty.
func (p Principal) IsAnonymous() bool {
	return p == ""
}

// UserRole is the access level assigned to a principal.
type UserRole string

const (
	// RoleAdmin can manage roles of other principals.
	RoleAdmin UserRole = "admin"
	// RoleUser is a regular signed-in student.
	RoleUser UserRole = "user"
	// RoleGuest is an anonymous visitor.
	RoleGuest UserRole = "guest"
)

// Valid reports whether r is one of the known roles.
func (r UserRole) Valid() bool {
	switch r {
	case RoleAdmin, RoleUser, RoleGuest:
		return true
	default:
		return false
	}
}

// UserProfile holds the caller's display information.
type UserProfile struct {
	Name string `json:"name" yaml:"name" validate:"required"`
}

// Flashcard is a question/answer card.
type Flashcard struct {
	ID             string    `json:"id"`
	Topic          string    `json:"topic"`
	Question       string    `json:"question"`
	Answer         string    `json:"answer"`
	Difficulty     string    `json:"difficulty"`
	CreatedAt      time.Time `json:"createdAt"`
	CreatedBy      Principal `json:"createdBy"`
	IsGenerated    bool      `json:"isGenerated"`
	SourceMaterial string    `json:"sourceMaterial,omitempty"`
}

// TopicName returns the card's grouping label.
func (f Flashcard) TopicName() string { return f.Topic }

// FlashcardInput carries the editable fields of a flashcard.
type FlashcardInput struct {
	Topic      string `json:"topic" validate:"required"`
	Question   string `json:"question" validate:"required"`
	Answer     string `json:"answer" validate:"required"`
	Difficulty string `json:"difficulty" validate:"required,oneof=easy medium hard"`
}

// StudyNote is a free-form note attached to a topic.
type StudyNote struct {
	ID             string    `json:"id"`
	Title          string    `json:"title"`
	Topic          string    `json:"topic"`
	Content        string    `json:"content"`
	CreatedAt      time.Time `json:"createdAt"`
	CreatedBy      Principal `json:"createdBy"`
	IsGenerated    bool      `json:"isGenerated"`
	SourceMaterial string    `json:"sourceMaterial,omitempty"`
}

// TopicName returns the note's grouping label.
func (n StudyNote) TopicName() string { return n.Topic }

// NoteInput carries the fields required to create a note.
type NoteInput struct {
	Title   string `json:"title" validate:"required"`
	Content string `json:"content" validate:"required"`
	Topic   string `json:"topic" validate:"required"`
}

// QuizQuestion is a single multiple-choice question.
type QuizQuestion struct {
	ID             string   `json:"id" yaml:"id"`
	Topic          string   `json:"topic" yaml:"topic"`
	Question       string   `json:"question" yaml:"question" validate:"required"`
	Difficulty     string   `json:"difficulty" yaml:"difficulty"`
	CorrectAnswer  string   `json:"correctAnswer" yaml:"correctAnswer" validate:"required"`
	Options        []string `json:"options" yaml:"options" validate:"min=2,dive,required"`
	IsGenerated    bool     `json:"isGenerated" yaml:"isGenerated"`
	SourceMaterial string   `json:"sourceMaterial,omitempty" yaml:"sourceMaterial,omitempty"`
}

// TopicName returns the question's grouping label.
func (q QuizQuestion) TopicName() string { return q.Topic }

// Quiz is an ordered set of questions saved together.
type Quiz struct {
	ID         string         `json:"id"`
	Topic      string         `json:"topic"`
	Difficulty string         `json:"difficulty"`
	Questions  []QuizQuestion `json:"questions"`
}

// TopicName returns the quiz's grouping label.
func (q Quiz) TopicName() string { return q.Topic }

// QuizInput carries a quiz to be saved.
type QuizInput struct {
	Topic      string         `json:"topic" yaml:"topic" validate:"required"`
	Difficulty string         `json:"difficulty" yaml:"difficulty" validate:"required,oneof=easy medium hard"`
	Questions  []QuizQuestion `json:"questions" yaml:"questions" validate:"min=1,dive"`
}

// QuizAttempt records the outcome of one pass through a quiz.
type QuizAttempt struct {
	ID             string         `json:"id"`
	Topic          string         `json:"topic" validate:"required"`
	Difficulty     string         `json:"difficulty"`
	User           Principal      `json:"user"`
	Score          int            `json:"score" validate:"gte=0,ltefield=TotalQuestions"`
	TotalQuestions int            `json:"totalQuestions" validate:"gt=0"`
	Timestamp      time.Time      `json:"timestamp"`
	Questions      []QuizQuestion `json:"questions"`
}

// TopicName returns the attempt's grouping label.
func (a QuizAttempt) TopicName() string { return a.Topic }

// BlobRef points at uploaded file content held by the backend.
type BlobRef struct {
	ID     string `json:"id"`
	Size   int64  `json:"size"`
	Digest string `json:"digest"`
}

// FormatDigest renders a 64-bit content hash the way BlobRef.Digest stores it.
func FormatDigest(sum uint64) string {
	return strconv.FormatUint(sum, 16)
}

// FileInput carries the reference to an uploaded blob.
type FileInput struct {
	Name     string  `json:"name" validate:"required"`
	FileType string  `json:"fileType"`
	Blob     BlobRef `json:"blob"`
}

// FileMetadata describes an uploaded study file.
type FileMetadata struct {
	ID         string    `json:"id"`
	Name       string    `json:"name"`
	FileType   string    `json:"fileType"`
	Blob       BlobRef   `json:"blob"`
	UploadTime time.Time `json:"uploadTime"`
	UploadedBy Principal `json:"uploadedBy"`
}

// SearchResult groups the matches of a content search.
type SearchResult struct {
	Notes      []StudyNote `json:"notes"`
	Flashcards []Flashcard `json:"flashcards"`
	Quizzes    []Quiz      `json:"quizzes"`
}

// Empty reports whether the search matched nothing.
func (r SearchResult) Empty() bool {
	return len(r.Notes) == 0 && len(r.Flashcards) == 0 && len(r.Quizzes) == 0
}
