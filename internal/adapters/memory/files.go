package memory

import (
	"context"
	"errors"
	"io"
	"slices"

	"github.com/cespare/xxhash/v2"
	"go.trai.ch/cram/internal/core/domain"
	"go.trai.ch/zerr"
)

// ListFiles returns every file reference in upload order.
func (b *Backend) ListFiles(_ context.Context) ([]domain.FileMetadata, error) {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return slices.Clone(b.files), nil
}

// FilesByUser returns the files uploaded by user.
func (b *Backend) FilesByUser(_ context.Context, user domain.Principal) ([]domain.FileMetadata, error) {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return filter(b.files, func(f domain.FileMetadata) bool { return f.UploadedBy == user }), nil
}

// GetFile returns the file reference with id, or nil.
func (b *Backend) GetFile(_ context.Context, id string) (*domain.FileMetadata, error) {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return find(b.files, func(f domain.FileMetadata) bool { return f.ID == id }), nil
}

// UploadBlob stores content and returns its reference.
// The content is read before the store is locked.
func (b *Backend) UploadBlob(ctx context.Context, content io.Reader) (domain.BlobRef, error) {
	if _, ok := domain.CallerFrom(ctx); !ok {
		return domain.BlobRef{}, domain.ErrNotAuthenticated
	}

	data, err := io.ReadAll(io.LimitReader(content, b.maxBlob+1))
	if err != nil {
		return domain.BlobRef{}, errors.Join(domain.ErrUploadFailed, err)
	}
	if int64(len(data)) > b.maxBlob {
		return domain.BlobRef{}, errors.Join(
			domain.ErrUploadFailed,
			zerr.With(zerr.New("blob exceeds the size limit"), "limit", b.maxBlob),
		)
	}

	b.mu.Lock()
	defer b.mu.Unlock()

	if _, err := b.caller(ctx); err != nil {
		return domain.BlobRef{}, err
	}

	ref := domain.BlobRef{
		ID:     b.newID(),
		Size:   int64(len(data)),
		Digest: domain.FormatDigest(xxhash.Sum64(data)),
	}
	b.blobs[ref.ID] = blob{ref: ref, data: data}
	return ref, nil
}

// Blob returns the content of an uploaded blob.
func (b *Backend) Blob(id string) ([]byte, bool) {
	b.mu.RLock()
	defer b.mu.RUnlock()

	stored, ok := b.blobs[id]
	if !ok {
		return nil, false
	}
	return slices.Clone(stored.data), true
}

// SaveFileReference records an uploaded blob under name.
func (b *Backend) SaveFileReference(ctx context.Context, name, fileType string, ref domain.BlobRef) (string, error) {
	b.mu.Lock()
	defer b.mu.Unlock()

	p, err := b.caller(ctx)
	if err != nil {
		return "", err
	}

	stored, ok := b.blobs[ref.ID]
	if !ok {
		return "", notFound("blob", ref.ID)
	}
	if ref.Digest != "" && ref.Digest != stored.ref.Digest {
		return "", domain.NewValidationError("blob.digest", "digest does not match the uploaded content")
	}

	file := domain.FileMetadata{
		ID:         b.newID(),
		Name:       name,
		FileType:   fileType,
		Blob:       stored.ref,
		UploadTime: b.now().UTC(),
		UploadedBy: p,
	}
	b.files = append(b.files, file)
	return file.ID, nil
}

// DeleteFile removes a file reference and its content.
func (b *Backend) DeleteFile(ctx context.Context, id string) error {
	b.mu.Lock()
	defer b.mu.Unlock()

	p, err := b.caller(ctx)
	if err != nil {
		return err
	}

	i := slices.IndexFunc(b.files, func(f domain.FileMetadata) bool { return f.ID == id })
	if i < 0 {
		return notFound("file", id)
	}
	if !b.mayModify(p, b.files[i].UploadedBy) {
		return forbidden("deleting a file", id)
	}

	blobID := b.files[i].Blob.ID
	b.files = slices.Delete(b.files, i, i+1)
	if !slices.ContainsFunc(b.files, func(f domain.FileMetadata) bool { return f.Blob.ID == blobID }) {
		delete(b.blobs, blobID)
	}
	return nil
}
