package watcher_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/cespare/xxhash/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/cram/internal/adapters/watcher"
	"go.trai.ch/cram/internal/core/domain"
)

func TestSum(t *testing.T) {
	path := filepath.Join(t.TempDir(), "lecture.txt")
	content := []byte("mitochondria is the powerhouse of the cell")
	require.NoError(t, os.WriteFile(path, content, 0o600))

	digest, size, err := watcher.Sum(path)
	require.NoError(t, err)
	assert.Equal(t, domain.FormatDigest(xxhash.Sum64(content)), digest)
	assert.Equal(t, int64(len(content)), size)

	_, _, err = watcher.Sum(filepath.Join(t.TempDir(), "missing.txt"))
	require.ErrorIs(t, err, domain.ErrUploadFailed)
}

func TestDigests(t *testing.T) {
	d := watcher.NewDigests()

	assert.True(t, d.Changed("/notes/a.md", "abc"), "unknown paths are always changed")

	d.Record("/notes/a.md", "abc")
	assert.False(t, d.Changed("/notes/a.md", "abc"))
	assert.True(t, d.Changed("/notes/a.md", "def"))
	assert.True(t, d.Changed("/notes/b.md", "abc"))
	assert.Equal(t, 1, d.Len())

	d.Forget("/notes/a.md")
	assert.True(t, d.Changed("/notes/a.md", "abc"))
	assert.Zero(t, d.Len())
}
