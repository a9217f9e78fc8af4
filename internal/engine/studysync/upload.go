package studysync

import (
	"context"
	"errors"
	"fmt"
	"io"
	"sync"

	"github.com/cespare/xxhash/v2"
	"go.trai.ch/cram/internal/core/domain"
	"go.trai.ch/zerr"
)

// progressBuffer bounds how many progress events wait for a slow consumer.
const progressBuffer = 16

// ProgressStream delivers the progress of one upload.
//
// Intermediate events may be dropped when the consumer falls behind; the final event is
// always delivered and is the last one before Events is closed.
type ProgressStream struct {
	events chan domain.UploadEvent
	done   chan struct{}

	mu     sync.Mutex
	latest domain.UploadEvent
}

func newProgressStream(name string, total int64) *ProgressStream {
	return &ProgressStream{
		events: make(chan domain.UploadEvent, progressBuffer),
		done:   make(chan struct{}),
		latest: domain.UploadEvent{Name: name, Total: total},
	}
}

// Events returns the event channel. It is closed after the final event.
func (s *ProgressStream) Events() <-chan domain.UploadEvent {
	return s.events
}

// Latest returns the most recent event.
func (s *ProgressStream) Latest() domain.UploadEvent {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.latest
}

// Done is closed once the final event has been emitted.
func (s *ProgressStream) Done() <-chan struct{} {
	return s.done
}

// Wait blocks until the upload finishes or ctx is done and returns the latest event.
func (s *ProgressStream) Wait(ctx context.Context) domain.UploadEvent {
	select {
	case <-s.done:
	case <-ctx.Done():
	}
	return s.Latest()
}

func (s *ProgressStream) progress(sent int64) {
	s.mu.Lock()
	ev := s.latest
	ev.Sent = sent
	ev.Percent = percentOf(sent, ev.Total)
	changed := ev.Percent != s.latest.Percent
	s.latest = ev
	s.mu.Unlock()

	if !changed {
		return
	}
	select {
	case s.events <- ev:
	default:
	}
}

func (s *ProgressStream) finish(fileID string, err error) {
	s.mu.Lock()
	ev := s.latest
	ev.Final = true
	ev.FileID = fileID
	ev.Err = err
	if err == nil {
		ev.Percent = 100
		ev.Sent = max(ev.Sent, ev.Total)
	}
	s.latest = ev
	s.mu.Unlock()

	// Only this goroutine sends, so once a slot is freed the final send cannot block.
	select {
	case s.events <- ev:
	default:
		select {
		case <-s.events:
		default:
		}
		s.events <- ev
	}
	close(s.events)
	close(s.done)
}

// percentOf caps progress at 99 until the upload is confirmed.
func percentOf(sent, total int64) int {
	if total <= 0 {
		return 0
	}
	return min(int(sent*100/total), 99)
}

// countingReader reports bytes read and digests them.
type countingReader struct {
	r      io.Reader
	n      int64
	digest *xxhash.Digest
	report func(int64)
}

func (cr *countingReader) Read(p []byte) (int, error) {
	n, err := cr.r.Read(p)
	if n > 0 {
		cr.n += int64(n)
		_, _ = cr.digest.Write(p[:n])
		cr.report(cr.n)
	}
	return n, err
}

// UploadFile streams content to the backend and then records it under name.
//
// size is the expected length used for percentages; pass 0 when unknown. The returned
// stream always ends with exactly one final event and the outcome is notified once.
func (c *Client) UploadFile(ctx context.Context, name, fileType string, content io.Reader, size int64) *ProgressStream {
	stream := newProgressStream(name, size)

	go func() {
		fileID, err := c.upload(ctx, stream, name, fileType, content)
		if err != nil {
			c.notifier.Failure("Failed to upload file", err)
		} else {
			c.notifier.Success("File uploaded successfully")
		}
		stream.finish(fileID, err)
	}()

	return stream
}

func (c *Client) upload(
	ctx context.Context,
	stream *ProgressStream,
	name, fileType string,
	content io.Reader,
) (string, error) {
	ref := c.saveFileReference(domain.FileInput{Name: name, FileType: fileType})
	if !c.session.Authenticated() {
		return "", errors.Join(domain.ErrTransportUnavailable, domain.ErrNotAuthenticated)
	}
	if err := ref.check(); err != nil {
		return "", err
	}

	ctx, span := c.tracer.Start(c.caller(ctx), "uploadFile")
	defer span.End()
	span.SetAttribute("file.name", name)

	counter := &countingReader{r: content, digest: xxhash.New(), report: stream.progress}
	blob, err := c.backend.UploadBlob(ctx, counter)
	if err != nil {
		span.RecordError(err)
		return "", zerr.With(zerr.Wrap(err, domain.ErrUploadFailed.Error()), "file", name)
	}

	local := domain.FormatDigest(counter.digest.Sum64())
	if blob.Digest != "" && blob.Digest != local {
		err := errors.Join(domain.ErrUploadFailed, fmt.Errorf("digest mismatch: sent %s, stored %s", local, blob.Digest))
		span.RecordError(err)
		return "", err
	}
	if blob.Size == 0 {
		blob.Size = counter.n
	}
	span.SetAttribute("file.size", blob.Size)

	res := executeQuiet(ctx, c, c.saveFileReference(domain.FileInput{Name: name, FileType: fileType, Blob: blob}))
	return res.Get()
}
