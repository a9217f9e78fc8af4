package view_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/cram/internal/core/domain"
	"go.trai.ch/cram/internal/engine/view"
)

func TestDeck(t *testing.T) {
	deck := view.NewDeck([]domain.Flashcard{
		{ID: "1", Question: "q1", Answer: "a1"},
		{ID: "2", Question: "q2", Answer: "a2"},
		{ID: "3", Question: "q3", Answer: "a3"},
	})

	label, text := deck.Face()
	assert.Equal(t, "Question", label)
	assert.Equal(t, "q1", text)
	assert.Equal(t, 1, deck.Position())

	deck.Flip()
	label, text = deck.Face()
	assert.Equal(t, "Answer", label)
	assert.Equal(t, "a1", text)

	deck.Previous()
	assert.False(t, deck.Flipped(), "moving shows the question again")
	card, ok := deck.Current()
	require.True(t, ok)
	assert.Equal(t, "3", card.ID)

	deck.Next()
	deck.Next()
	card, _ = deck.Current()
	assert.Equal(t, "2", card.ID)
	assert.Equal(t, 2, deck.Position())
}

func TestDeck_Empty(t *testing.T) {
	deck := view.NewDeck(nil)
	deck.Next()
	deck.Flip()

	_, ok := deck.Current()
	assert.False(t, ok)
	assert.False(t, deck.Flipped())
	assert.Zero(t, deck.Position())
	assert.Zero(t, deck.Len())
}
