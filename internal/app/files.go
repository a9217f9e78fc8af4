package app

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/charmbracelet/bubbles/progress"
	"github.com/gabriel-vasile/mimetype"
	"go.trai.ch/cram/internal/adapters/detector"
	"go.trai.ch/cram/internal/adapters/watcher"
	"go.trai.ch/cram/internal/core/domain"
	"go.trai.ch/cram/internal/engine/view"
	"go.trai.ch/zerr"
)

// ListFiles prints uploaded files, or only the caller's when mine is set.
func (a *App) ListFiles(ctx context.Context, mine bool) error {
	return a.signedIn(ctx, func(ctx context.Context, w *workspace) error {
		var (
			files []domain.FileMetadata
			entry domain.QueryEntry
		)
		if mine {
			files, entry = w.client.FilesByUser(ctx, w.gate.Principal())
		} else {
			files, entry = w.client.Files(ctx)
		}
		if err := settled(ctx, entry); err != nil {
			return err
		}
		if len(files) == 0 {
			printEmpty(a.out, "files", "")
			return nil
		}

		rows := make([][]string, 0, len(files))
		for _, f := range files {
			rows = append(rows, []string{f.ID, f.Name, f.FileType, view.FileSize(f.Blob.Size), view.Date(f.UploadTime)})
		}
		printTable(a.out, []string{"ID", "NAME", "TYPE", "SIZE", "UPLOADED"}, rows)
		return nil
	})
}

// DeleteFile removes a file reference.
func (a *App) DeleteFile(ctx context.Context, id string) error {
	return a.signedIn(ctx, func(ctx context.Context, w *workspace) error {
		return reported(w.client.DeleteFile(ctx, id).Err())
	})
}

// UploadFiles uploads each path in order and stops at the first failure.
// With watchDir set it then keeps uploading files under that directory whose content changes,
// until ctx is done.
func (a *App) UploadFiles(ctx context.Context, paths []string, watchDir string) error {
	return a.signedIn(ctx, func(ctx context.Context, w *workspace) error {
		for _, p := range paths {
			if err := a.uploadOne(ctx, w, p); err != nil {
				return err
			}
		}
		if watchDir == "" {
			return nil
		}
		return a.watchUploads(ctx, w, watchDir)
	})
}

// uploadOne uploads the file at path unless its content was already uploaded in this run.
func (a *App) uploadOne(ctx context.Context, w *workspace, path string) error {
	abs, err := filepath.Abs(path)
	if err != nil {
		return errors.Join(domain.ErrUploadFailed, zerr.With(err, "path", path))
	}
	info, err := os.Stat(abs)
	if err != nil {
		return errors.Join(domain.ErrUploadFailed, zerr.With(err, "path", path))
	}
	if info.IsDir() {
		return errors.Join(domain.ErrUploadFailed, zerr.With(zerr.New("is a directory"), "path", path))
	}

	digest, size, err := watcher.Sum(abs)
	if err != nil {
		return err
	}
	if !a.digests.Changed(abs, digest) {
		a.logger.Debug("skipping unchanged file " + abs)
		return nil
	}

	fileType := "application/octet-stream"
	if mt, err := mimetype.DetectFile(abs); err == nil {
		fileType = mt.String()
	}

	f, err := os.Open(abs)
	if err != nil {
		return errors.Join(domain.ErrUploadFailed, zerr.With(err, "path", path))
	}
	defer func() { _ = f.Close() }()

	name := filepath.Base(abs)
	stream := w.client.UploadFile(ctx, name, fileType, f, size)
	final := a.followUpload(w.mode, stream.Events())
	if final.Err != nil {
		return reported(final.Err)
	}

	a.digests.Record(abs, digest)
	_, _ = fmt.Fprintf(a.out, "Uploaded %s (%s) as %s\n", name, view.FileSize(size), final.FileID)
	return nil
}

// followUpload drains events until the final one. An interactive terminal gets a progress bar.
func (a *App) followUpload(mode detector.OutputMode, events <-chan domain.UploadEvent) domain.UploadEvent {
	bar := progress.New(progress.WithDefaultGradient(), progress.WithWidth(40))
	var last domain.UploadEvent
	for ev := range events {
		last = ev
		if mode == detector.ModeInteractive {
			_, _ = fmt.Fprintf(a.errOut, "\r%s %s", ev.Name, bar.ViewAs(float64(ev.Percent)/100))
		}
	}
	if mode == detector.ModeInteractive {
		_, _ = fmt.Fprintln(a.errOut)
	}
	return last
}

// watchUploads re-uploads files under dir after their content changes.
// Bursts of events are coalesced by a debouncer; removed files are forgotten so a later
// file at the same path is uploaded again.
func (a *App) watchUploads(ctx context.Context, w *workspace, dir string) error {
	if err := a.watcher.Watch(ctx, dir); err != nil {
		return err
	}
	defer func() { _ = a.watcher.Close() }()

	_, _ = fmt.Fprintf(a.out, "Watching %s for changes. Press Ctrl+C to stop.\n", dir)

	debouncer := watcher.NewDebouncer(watcher.DefaultDebounceWindow, func(paths []string) {
		for _, p := range paths {
			if err := a.uploadOne(ctx, w, p); err != nil && !errors.Is(err, domain.ErrCommandFailed) {
				a.logger.Warn(fmt.Sprintf("upload of %s failed: %v", p, err))
			}
		}
	})
	defer debouncer.Stop()

	for change := range a.watcher.Changes() {
		if change.Gone {
			a.digests.Forget(change.Path)
			continue
		}
		debouncer.Add(change.Path)
	}

	if err := ctx.Err(); err != nil && !errors.Is(err, context.Canceled) {
		return err
	}
	return nil
}
