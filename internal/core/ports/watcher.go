package ports

import (
	"context"
	"iter"
)

// FileChange reports that a file below a watched directory changed.
type FileChange struct {
	// Path is the absolute path of the file.
	Path string
	// Gone is set when the file was removed or renamed away; otherwise it was created or written.
	Gone bool
}

// DirWatcher follows a directory tree for files to upload again.
type DirWatcher interface {
	// Watch follows dir and every directory created below it until ctx is done or Close is called.
	Watch(ctx context.Context, dir string) error
	// Close ends the watch.
	Close() error
	// Changes yields file changes until the watch ends.
	Changes() iter.Seq[FileChange]
}
