package domain_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"go.trai.ch/cram/internal/core/domain"
)

func TestQueryKey_HasPrefix(t *testing.T) {
	key := domain.NewQueryKey("notes", "topic", "math")

	tests := []struct {
		name   string
		prefix domain.QueryKey
		want   bool
	}{
		{name: "empty prefix matches all", prefix: nil, want: true},
		{name: "first part", prefix: domain.NewQueryKey("notes"), want: true},
		{name: "full key", prefix: key, want: true},
		{name: "other root", prefix: domain.NewQueryKey("flashcards"), want: false},
		{name: "partial part is not a prefix", prefix: domain.NewQueryKey("note"), want: false},
		{name: "longer than key", prefix: domain.NewQueryKey("notes", "topic", "math", "x"), want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, key.HasPrefix(tt.prefix))
		})
	}
}

func TestQueryKey_Fingerprint(t *testing.T) {
	a := domain.NewQueryKey("a/b")
	b := domain.NewQueryKey("a", "b")

	assert.Equal(t, a.String(), b.String())
	assert.NotEqual(t, a.Fingerprint(), b.Fingerprint())
	assert.Equal(t, b.Fingerprint(), domain.NewQueryKey("a", "b").Fingerprint())
	assert.NotEqual(t, domain.NewQueryKey("", "x").Fingerprint(), domain.NewQueryKey("x").Fingerprint())
}

func TestQueryKey_ID(t *testing.T) {
	keys := []domain.QueryKey{
		domain.NewQueryKey(),
		domain.NewQueryKey(""),
		domain.NewQueryKey("a/b"),
		domain.NewQueryKey("a", "b"),
		domain.NewQueryKey("1:a"),
		domain.NewQueryKey("", "1:a"),
		domain.NewQueryKey("search", "2:ab"),
		domain.NewQueryKey("search", "2", "ab"),
	}

	seen := make(map[string]domain.QueryKey)
	for _, k := range keys {
		prev, dup := seen[k.ID()]
		assert.False(t, dup, "%q and %q share an ID", prev, k)
		seen[k.ID()] = k
	}
	assert.Equal(t, domain.NewQueryKey("notes", "topic").ID(), domain.NewQueryKey("notes", "topic").ID())
}

func TestQueryKey_Clone(t *testing.T) {
	key := domain.NewQueryKey("files", "id", "1")
	clone := key.Clone()
	clone[2] = "2"

	assert.Equal(t, "1", key[2])
	assert.True(t, key.Equal(domain.NewQueryKey("files", "id", "1")))
	assert.False(t, key.Equal(clone))
	assert.Nil(t, domain.QueryKey(nil).Clone())
}

func TestQueryEntry_Fresh(t *testing.T) {
	assert.False(t, domain.QueryEntry{Status: domain.StatusIdle}.Fresh())
	assert.False(t, domain.QueryEntry{Status: domain.StatusLoading}.Fresh())
	assert.True(t, domain.QueryEntry{Status: domain.StatusSuccess}.Fresh())
	assert.True(t, domain.QueryEntry{Status: domain.StatusError}.Fresh())
	assert.False(t, domain.QueryEntry{Status: domain.StatusSuccess, Stale: true}.Fresh())
	assert.Equal(t, "loading", domain.StatusLoading.String())
}

func TestInvalidationRule_Matches(t *testing.T) {
	rule := domain.NewInvalidationRule("createFlashcard",
		domain.NewQueryKey("flashcards"),
		domain.NewQueryKey("search"),
	)

	assert.True(t, rule.Matches(domain.NewQueryKey("flashcards", "topic", "bio")))
	assert.True(t, rule.Matches(domain.NewQueryKey("search", "cell")))
	assert.False(t, rule.Matches(domain.NewQueryKey("notes")))
	assert.False(t, domain.NewInvalidationRule("noop").Matches(domain.NewQueryKey("notes")))
}
