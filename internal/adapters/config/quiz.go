package config

import (
	"bytes"
	"errors"

	"go.trai.ch/cram/internal/core/domain"
	"go.trai.ch/zerr"
	"gopkg.in/yaml.v3"
)

// LoadQuiz reads a quiz import file. Questions without their own difficulty
// inherit the quiz difficulty. Content checks are left to the caller.
func (l *Loader) LoadQuiz(path string) (domain.QuizInput, error) {
	data, err := l.FS.ReadFile(path)
	if err != nil {
		return domain.QuizInput{}, errors.Join(domain.ErrQuizImportFailed, zerr.With(err, "path", path))
	}

	var file Quizfile
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&file); err != nil {
		return domain.QuizInput{}, errors.Join(domain.ErrQuizImportFailed, zerr.With(err, "path", path))
	}

	input := domain.QuizInput{
		Topic:      file.Topic,
		Difficulty: file.Difficulty,
		Questions:  make([]domain.QuizQuestion, 0, len(file.Questions)),
	}
	for _, q := range file.Questions {
		difficulty := q.Difficulty
		if difficulty == "" {
			difficulty = file.Difficulty
		}
		input.Questions = append(input.Questions, domain.QuizQuestion{
			Topic:         file.Topic,
			Question:      q.Question,
			Difficulty:    difficulty,
			CorrectAnswer: q.CorrectAnswer,
			Options:       q.Options,
		})
	}
	return input, nil
}
