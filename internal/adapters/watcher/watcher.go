// Package watcher reports changed files under a directory so they can be uploaded again.
package watcher

import (
	"context"
	"errors"
	"io/fs"
	"iter"
	"os"
	"path/filepath"
	"strings"

	"github.com/fsnotify/fsnotify"
	"go.trai.ch/cram/internal/core/domain"
	"go.trai.ch/cram/internal/core/ports"
	"go.trai.ch/zerr"
)

var _ ports.DirWatcher = (*Watcher)(nil)

// skipDirectories are never watched.
var skipDirectories = map[string]bool{
	".git":         true,
	".jj":          true,
	"node_modules": true,
}

const changeBuffer = 100

// Watcher implements ports.DirWatcher using fsnotify.
type Watcher struct {
	fsWatcher *fsnotify.Watcher
	logger    ports.Logger
	changes   chan ports.FileChange
}

// NewWatcher creates a new file system watcher.
func NewWatcher(log ports.Logger) (*Watcher, error) {
	w, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, errors.Join(domain.ErrWatchFailed, err)
	}
	return &Watcher{
		fsWatcher: w,
		logger:    log,
		changes:   make(chan ports.FileChange, changeBuffer),
	}, nil
}

// Watch follows root and every directory below it.
func (w *Watcher) Watch(ctx context.Context, root string) error {
	info, err := os.Stat(root)
	if err != nil {
		return errors.Join(domain.ErrWatchFailed, zerr.With(err, "dir", root))
	}
	if !info.IsDir() {
		return errors.Join(domain.ErrWatchFailed, zerr.With(zerr.New("not a directory"), "dir", root))
	}

	for dir := range directories(root) {
		if err := w.fsWatcher.Add(dir); err != nil {
			return errors.Join(domain.ErrWatchFailed, zerr.With(err, "dir", dir))
		}
	}

	go w.forward(ctx)
	return nil
}

// Close ends the watch and releases the underlying notifier.
func (w *Watcher) Close() error {
	return w.fsWatcher.Close()
}

// Changes yields file changes. It ends when the watcher is closed or its context is done.
func (w *Watcher) Changes() iter.Seq[ports.FileChange] {
	return func(yield func(ports.FileChange) bool) {
		for change := range w.changes {
			if !yield(change) {
				return
			}
		}
	}
}

// directories yields root and its subdirectories, skipping ignored and hidden ones.
func directories(root string) iter.Seq[string] {
	return func(yield func(string) bool) {
		_ = filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
			if err != nil {
				return nil //nolint:nilerr // unreadable directories are skipped
			}
			if !d.IsDir() {
				return nil
			}
			if path != root && skip(d.Name()) {
				return fs.SkipDir
			}
			if !yield(path) {
				return filepath.SkipAll
			}
			return nil
		})
	}
}

func skip(name string) bool {
	return skipDirectories[name] || strings.HasPrefix(name, ".")
}

// forward turns fsnotify events into file changes until the watcher closes.
func (w *Watcher) forward(ctx context.Context) {
	defer close(w.changes)

	for {
		select {
		case <-ctx.Done():
			return
		case event, ok := <-w.fsWatcher.Events:
			if !ok {
				return
			}
			change, ok := w.change(event)
			if !ok {
				continue
			}
			select {
			case w.changes <- change:
			case <-ctx.Done():
				return
			}

		case err, ok := <-w.fsWatcher.Errors:
			if !ok {
				return
			}
			w.logger.Warn("watcher: " + err.Error())
		}
	}
}

// change maps event to a file change. Directories are not reported; a new one is watched instead.
func (w *Watcher) change(event fsnotify.Event) (ports.FileChange, bool) {
	if skip(filepath.Base(event.Name)) {
		return ports.FileChange{}, false
	}
	switch {
	case event.Op.Has(fsnotify.Remove), event.Op.Has(fsnotify.Rename):
		return ports.FileChange{Path: event.Name, Gone: true}, true
	case event.Op.Has(fsnotify.Create), event.Op.Has(fsnotify.Write):
		info, err := os.Stat(event.Name)
		if err != nil {
			return ports.FileChange{}, false
		}
		if info.IsDir() {
			for dir := range directories(event.Name) {
				_ = w.fsWatcher.Add(dir)
			}
			return ports.FileChange{}, false
		}
		return ports.FileChange{Path: event.Name}, true
	default:
		return ports.FileChange{}, false
	}
}
