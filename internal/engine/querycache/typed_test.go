package querycache_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/cram/internal/core/domain"
	"go.trai.ch/cram/internal/engine/querycache"
)

func TestQuery_Typed(t *testing.T) {
	s := querycache.New()
	key := domain.NewQueryKey("flashcards")

	cards, entry := querycache.Query(context.Background(), s, key, func(context.Context) ([]domain.Flashcard, error) {
		return []domain.Flashcard{{ID: "1", Question: "2+2?", Answer: "4"}}, nil
	}, true)

	require.Equal(t, domain.StatusSuccess, entry.Status)
	require.Len(t, cards, 1)
	assert.Equal(t, "4", cards[0].Answer)

	_, ok := querycache.Value[string](entry)
	assert.False(t, ok)
}

func TestQuery_DisabledReturnsZero(t *testing.T) {
	s := querycache.New()

	profile, entry := querycache.Query(context.Background(), s, domain.NewQueryKey("currentUserProfile"),
		func(context.Context) (*domain.UserProfile, error) {
			t.Fatal("disabled query must not fetch")
			return nil, nil
		}, false)

	assert.Nil(t, profile)
	assert.Equal(t, domain.StatusIdle, entry.Status)
}

func TestMutate_Typed(t *testing.T) {
	s := querycache.New()
	rule := domain.NewInvalidationRule("createFlashcard", domain.NewQueryKey("flashcards"))

	res := querycache.Mutate(context.Background(), s, rule, func(context.Context) (string, error) {
		return "card-7", nil
	})
	id, err := res.Get()
	require.NoError(t, err)
	assert.Equal(t, "card-7", id)

	failed := querycache.Mutate(context.Background(), s, rule, func(context.Context) (string, error) {
		return "", domain.NewValidationError("question", "must not be empty")
	})
	assert.False(t, failed.IsOk())
	assert.Equal(t, domain.KindValidationFailed, failed.Kind())
	assert.Empty(t, failed.Value())
}
