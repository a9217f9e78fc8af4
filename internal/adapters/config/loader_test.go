package config_test

import (
	"errors"
	"io/fs"
	"testing"
	"testing/fstest"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/cram/internal/adapters/config"
	"go.trai.ch/cram/internal/core/domain"
	"go.trai.ch/cram/internal/core/ports/mocks"
	"go.uber.org/mock/gomock"
)

func newLoader(t *testing.T, files fstest.MapFS) *config.Loader {
	t.Helper()
	ctrl := gomock.NewController(t)
	mockLogger := mocks.NewMockLogger(ctrl)
	mockLogger.EXPECT().Debug(gomock.Any()).AnyTimes()

	return config.NewLoader(mockLogger).WithFS(config.NewMapFSAdapter("/home/ada/.config/cram", files))
}

func TestLoader_MissingFileYieldsDefaults(t *testing.T) {
	loader := newLoader(t, fstest.MapFS{})

	cfg, err := loader.Load("/home/ada/.config/cram/cram.yaml")

	require.NoError(t, err)
	assert.Equal(t, domain.DefaultConfig(), cfg)
}

func TestLoader_AppliesFileOverDefaults(t *testing.T) {
	loader := newLoader(t, fstest.MapFS{
		"cram.yaml": {Data: []byte(`
version: "1"
endpoint: unix:///run/cram.sock
identity:
  credentialsPath: creds.yaml
output:
  mode: linear
log:
  json: true
request:
  timeout: 3s
`)},
	})

	cfg, err := loader.Load("/home/ada/.config/cram/cram.yaml")
	require.NoError(t, err)

	assert.Equal(t, "unix:///run/cram.sock", cfg.Endpoint)
	assert.Equal(t, "/home/ada/.config/cram/creds.yaml", cfg.CredentialsPath)
	assert.Equal(t, "linear", cfg.OutputMode)
	assert.True(t, cfg.JSONLog)
	assert.Equal(t, 3*time.Second, cfg.RequestTimeout)
	assert.Equal(t, domain.DefaultEndpoint, cfg.Listen)
}

func TestLoader_Errors(t *testing.T) {
	tests := []struct {
		name    string
		content string
		wantErr error
		wantMsg string
	}{
		{
			name:    "malformed yaml",
			content: "endpoint: [",
			wantErr: domain.ErrConfigParseFailed,
		},
		{
			name:    "unknown output mode",
			content: "output:\n  mode: fancy\n",
			wantErr: domain.ErrConfigParseFailed,
			wantMsg: "unknown output mode",
		},
		{
			name:    "negative timeout",
			content: "request:\n  timeout: -1s\n",
			wantErr: domain.ErrConfigParseFailed,
			wantMsg: "positive duration",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			loader := newLoader(t, fstest.MapFS{"cram.yaml": {Data: []byte(tt.content)}})

			cfg, err := loader.Load("/home/ada/.config/cram/cram.yaml")

			require.Error(t, err)
			assert.Nil(t, cfg)
			require.ErrorIs(t, err, tt.wantErr)
			if tt.wantMsg != "" {
				assert.Contains(t, err.Error(), tt.wantMsg)
			}
		})
	}
}

type failingFS struct{}

func (failingFS) ReadFile(string) ([]byte, error) {
	return nil, fs.ErrPermission
}

func TestLoader_ReadFailure(t *testing.T) {
	loader := newLoader(t, nil).WithFS(failingFS{})

	_, err := loader.Load("/etc/cram.yaml")

	require.ErrorIs(t, err, domain.ErrConfigReadFailed)
	assert.False(t, errors.Is(err, domain.ErrConfigParseFailed))
}

func TestLoader_LoadQuiz(t *testing.T) {
	loader := newLoader(t, fstest.MapFS{
		"cells.yaml": {Data: []byte(`
topic: Biology
difficulty: medium
questions:
  - question: What is the powerhouse of the cell?
    options: [Nucleus, Mitochondria, Ribosome]
    correctAnswer: Mitochondria
  - question: Which organelle holds DNA?
    options: [Nucleus, Golgi]
    correctAnswer: Nucleus
    difficulty: easy
`)},
		"typo.yaml": {Data: []byte("topic: x\nquestionz: []\n")},
	})

	quiz, err := loader.LoadQuiz("cells.yaml")
	require.NoError(t, err)

	assert.Equal(t, "Biology", quiz.Topic)
	require.Len(t, quiz.Questions, 2)
	assert.Equal(t, "medium", quiz.Questions[0].Difficulty)
	assert.Equal(t, "easy", quiz.Questions[1].Difficulty)
	assert.Equal(t, "Biology", quiz.Questions[1].Topic)
	assert.Equal(t, []string{"Nucleus", "Mitochondria", "Ribosome"}, quiz.Questions[0].Options)

	_, err = loader.LoadQuiz("typo.yaml")
	require.ErrorIs(t, err, domain.ErrQuizImportFailed)

	_, err = loader.LoadQuiz("missing.yaml")
	require.ErrorIs(t, err, domain.ErrQuizImportFailed)
}
