package view_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/cram/internal/core/domain"
	"go.trai.ch/cram/internal/engine/view"
)

func TestSelectView(t *testing.T) {
	full := []domain.StudyNote{{ID: "1"}, {ID: "2"}}

	t.Run("no filter returns full", func(t *testing.T) {
		assert.Equal(t, full, view.SelectView(full, view.Subset[domain.StudyNote]{}))
	})

	t.Run("present filter wins", func(t *testing.T) {
		got := view.SelectView(full, view.Filtered([]domain.StudyNote{{ID: "2"}}))
		require.Len(t, got, 1)
		assert.Equal(t, "2", got[0].ID)
	})

	t.Run("empty present filter is not replaced", func(t *testing.T) {
		got := view.SelectView(full, view.Filtered([]domain.StudyNote{}))
		assert.Empty(t, got)
	})

	t.Run("nil present filter is not replaced", func(t *testing.T) {
		got := view.SelectView(full, view.Filtered[domain.StudyNote](nil))
		assert.Empty(t, got)
	})
}

func TestGroupByTopic(t *testing.T) {
	cards := []domain.Flashcard{
		{ID: "b1", Topic: "B"},
		{ID: "a1", Topic: "A"},
		{ID: "a2", Topic: "A"},
	}

	groups := view.GroupByTopic(cards)

	require.Len(t, groups, 2)
	assert.Equal(t, "A", groups[0].Topic)
	assert.Equal(t, "B", groups[1].Topic)
	require.Len(t, groups[0].Items, 2)
	assert.Equal(t, "a1", groups[0].Items[0].ID)
	assert.Equal(t, "a2", groups[0].Items[1].ID)
	assert.Equal(t, []string{"A", "B"}, view.Topics(cards))
}

func TestGroupByTopic_EveryItemOnce(t *testing.T) {
	notes := []domain.StudyNote{
		{ID: "1", Topic: "physics"},
		{ID: "2", Topic: "biology"},
		{ID: "3", Topic: ""},
		{ID: "4", Topic: "physics"},
		{ID: "5", Topic: "Biology"},
	}

	groups := view.GroupByTopic(notes)

	seen := make(map[string]int)
	var topics []string
	for _, g := range groups {
		topics = append(topics, g.Topic)
		for _, n := range g.Items {
			assert.Equal(t, g.Topic, n.Topic)
			seen[n.ID]++
		}
	}
	assert.Equal(t, []string{"", "Biology", "biology", "physics"}, topics)
	assert.Len(t, seen, len(notes))
	for id, n := range seen {
		assert.Equal(t, 1, n, id)
	}
}

func TestGroupByTopic_Empty(t *testing.T) {
	assert.Empty(t, view.GroupByTopic[domain.Quiz](nil))
}
