package ports

import "go.trai.ch/cram/internal/core/domain"

// ConfigLoader defines the interface for loading the client configuration.
//
//go:generate mockgen -source=config_loader.go -destination=mocks/mock_config_loader.go -package=mocks
type ConfigLoader interface {
	// Load reads the configuration at path, applying defaults for anything missing.
	// A missing file yields the defaults.
	Load(path string) (*domain.Config, error)

	// LoadQuiz reads a quiz import file.
	LoadQuiz(path string) (domain.QuizInput, error)
}
