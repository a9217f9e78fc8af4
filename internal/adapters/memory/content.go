package memory

import (
	"context"
	"slices"

	"go.trai.ch/cram/internal/core/domain"
)

// ListFlashcards returns every flashcard in creation order.
func (b *Backend) ListFlashcards(_ context.Context) ([]domain.Flashcard, error) {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return slices.Clone(b.flashcards), nil
}

// FlashcardsByTopic returns the flashcards filed under topic.
func (b *Backend) FlashcardsByTopic(_ context.Context, topic string) ([]domain.Flashcard, error) {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return filter(b.flashcards, func(f domain.Flashcard) bool { return f.Topic == topic }), nil
}

// FlashcardsByDifficulty returns the flashcards of one difficulty.
func (b *Backend) FlashcardsByDifficulty(_ context.Context, difficulty string) ([]domain.Flashcard, error) {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return filter(b.flashcards, func(f domain.Flashcard) bool { return f.Difficulty == difficulty }), nil
}

// GetFlashcard returns the flashcard with id, or nil.
func (b *Backend) GetFlashcard(_ context.Context, id string) (*domain.Flashcard, error) {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return find(b.flashcards, func(f domain.Flashcard) bool { return f.ID == id }), nil
}

// CreateFlashcard stores a new flashcard owned by the caller.
func (b *Backend) CreateFlashcard(ctx context.Context, input domain.FlashcardInput) (string, error) {
	b.mu.Lock()
	defer b.mu.Unlock()

	p, err := b.caller(ctx)
	if err != nil {
		return "", err
	}

	card := domain.Flashcard{
		ID:         b.newID(),
		Topic:      input.Topic,
		Question:   input.Question,
		Answer:     input.Answer,
		Difficulty: input.Difficulty,
		CreatedAt:  b.now().UTC(),
		CreatedBy:  p,
	}
	b.flashcards = append(b.flashcards, card)
	return card.ID, nil
}

// EditFlashcard replaces the editable fields of a flashcard.
func (b *Backend) EditFlashcard(ctx context.Context, id string, input domain.FlashcardInput) error {
	b.mu.Lock()
	defer b.mu.Unlock()

	p, err := b.caller(ctx)
	if err != nil {
		return err
	}

	i := slices.IndexFunc(b.flashcards, func(f domain.Flashcard) bool { return f.ID == id })
	if i < 0 {
		return notFound("flashcard", id)
	}
	card := &b.flashcards[i]
	if !b.mayModify(p, card.CreatedBy) {
		return forbidden("editing a flashcard", id)
	}

	card.Topic = input.Topic
	card.Question = input.Question
	card.Answer = input.Answer
	card.Difficulty = input.Difficulty
	return nil
}

// DeleteFlashcard removes a flashcard.
func (b *Backend) DeleteFlashcard(ctx context.Context, id string) error {
	b.mu.Lock()
	defer b.mu.Unlock()

	p, err := b.caller(ctx)
	if err != nil {
		return err
	}

	i := slices.IndexFunc(b.flashcards, func(f domain.Flashcard) bool { return f.ID == id })
	if i < 0 {
		return notFound("flashcard", id)
	}
	if !b.mayModify(p, b.flashcards[i].CreatedBy) {
		return forbidden("deleting a flashcard", id)
	}
	b.flashcards = slices.Delete(b.flashcards, i, i+1)
	return nil
}

// ListNotes returns every note in creation order.
func (b *Backend) ListNotes(_ context.Context) ([]domain.StudyNote, error) {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return slices.Clone(b.notes), nil
}

// NotesByTopic returns the notes filed under topic.
func (b *Backend) NotesByTopic(_ context.Context, topic string) ([]domain.StudyNote, error) {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return filter(b.notes, func(n domain.StudyNote) bool { return n.Topic == topic }), nil
}

// GetNote returns the note with id, or nil.
func (b *Backend) GetNote(_ context.Context, id string) (*domain.StudyNote, error) {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return find(b.notes, func(n domain.StudyNote) bool { return n.ID == id }), nil
}

// CreateNote stores a new note owned by the caller.
func (b *Backend) CreateNote(ctx context.Context, input domain.NoteInput) (string, error) {
	b.mu.Lock()
	defer b.mu.Unlock()

	p, err := b.caller(ctx)
	if err != nil {
		return "", err
	}

	note := domain.StudyNote{
		ID:        b.newID(),
		Title:     input.Title,
		Topic:     input.Topic,
		Content:   input.Content,
		CreatedAt: b.now().UTC(),
		CreatedBy: p,
	}
	b.notes = append(b.notes, note)
	return note.ID, nil
}

// DeleteNote removes a note.
func (b *Backend) DeleteNote(ctx context.Context, id string) error {
	b.mu.Lock()
	defer b.mu.Unlock()

	p, err := b.caller(ctx)
	if err != nil {
		return err
	}

	i := slices.IndexFunc(b.notes, func(n domain.StudyNote) bool { return n.ID == id })
	if i < 0 {
		return notFound("note", id)
	}
	if !b.mayModify(p, b.notes[i].CreatedBy) {
		return forbidden("deleting a note", id)
	}
	b.notes = slices.Delete(b.notes, i, i+1)
	return nil
}

// ListQuizzes returns every quiz in creation order.
func (b *Backend) ListQuizzes(_ context.Context) ([]domain.Quiz, error) {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return slices.Clone(b.quizzes), nil
}

// QuizzesByTopic returns the quizzes filed under topic.
func (b *Backend) QuizzesByTopic(_ context.Context, topic string) ([]domain.Quiz, error) {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return filter(b.quizzes, func(q domain.Quiz) bool { return q.Topic == topic }), nil
}

// GetQuiz returns the quiz with id, or nil.
func (b *Backend) GetQuiz(_ context.Context, id string) (*domain.Quiz, error) {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return find(b.quizzes, func(q domain.Quiz) bool { return q.ID == id }), nil
}

// SaveQuiz stores questions as one quiz and assigns question identifiers.
func (b *Backend) SaveQuiz(
	ctx context.Context,
	questions []domain.QuizQuestion,
	topic, difficulty string,
) (string, error) {
	b.mu.Lock()
	defer b.mu.Unlock()

	if _, err := b.caller(ctx); err != nil {
		return "", err
	}

	quiz := domain.Quiz{
		ID:         b.newID(),
		Topic:      topic,
		Difficulty: difficulty,
		Questions:  slices.Clone(questions),
	}
	for i := range quiz.Questions {
		quiz.Questions[i].ID = b.newID()
		quiz.Questions[i].Options = slices.Clone(quiz.Questions[i].Options)
	}
	b.quizzes = append(b.quizzes, quiz)
	return quiz.ID, nil
}

// ListMyAttempts returns the caller's quiz attempts in the order they were saved.
func (b *Backend) ListMyAttempts(ctx context.Context) ([]domain.QuizAttempt, error) {
	b.mu.Lock()
	defer b.mu.Unlock()

	p, err := b.caller(ctx)
	if err != nil {
		return nil, err
	}
	return filter(b.attempts, func(a domain.QuizAttempt) bool { return a.User == p }), nil
}

// SaveAttempt records a quiz attempt for the caller.
func (b *Backend) SaveAttempt(ctx context.Context, attempt domain.QuizAttempt) error {
	b.mu.Lock()
	defer b.mu.Unlock()

	p, err := b.caller(ctx)
	if err != nil {
		return err
	}

	attempt.ID = b.newID()
	attempt.User = p
	if attempt.Timestamp.IsZero() {
		attempt.Timestamp = b.now().UTC()
	}
	b.attempts = append(b.attempts, attempt)
	return nil
}

func filter[T any](items []T, keep func(T) bool) []T {
	out := make([]T, 0, len(items))
	for _, item := range items {
		if keep(item) {
			out = append(out, item)
		}
	}
	return out
}

func find[T any](items []T, match func(T) bool) *T {
	i := slices.IndexFunc(items, match)
	if i < 0 {
		return nil
	}
	item := items[i]
	return &item
}
