package watcher

import (
	"errors"
	"io"
	"os"
	"sync"
	"unique"

	"github.com/cespare/xxhash/v2"
	"go.trai.ch/cram/internal/core/domain"
	"go.trai.ch/zerr"
)

// Digests remembers the content digest last uploaded from each path,
// so that saving a file without changing it does not upload it again.
type Digests struct {
	mu   sync.Mutex
	seen map[unique.Handle[string]]string
}

// NewDigests creates an empty digest set.
func NewDigests() *Digests {
	return &Digests{seen: make(map[unique.Handle[string]]string)}
}

// Sum returns the digest and size of the file at path, in the form BlobRef uses.
func Sum(path string) (string, int64, error) {
	f, err := os.Open(path)
	if err != nil {
		return "", 0, errors.Join(domain.ErrUploadFailed, zerr.With(err, "path", path))
	}
	defer func() { _ = f.Close() }()

	h := xxhash.New()
	n, err := io.Copy(h, f)
	if err != nil {
		return "", 0, errors.Join(domain.ErrUploadFailed, zerr.With(err, "path", path))
	}
	return domain.FormatDigest(h.Sum64()), n, nil
}

// Changed reports whether digest differs from the one recorded for path.
func (d *Digests) Changed(path, digest string) bool {
	d.mu.Lock()
	defer d.mu.Unlock()

	prev, ok := d.seen[unique.Make(path)]
	return !ok || prev != digest
}

// Record stores digest as the uploaded content of path.
func (d *Digests) Record(path, digest string) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.seen[unique.Make(path)] = digest
}

// Forget drops path, so its next version is uploaded even if identical.
func (d *Digests) Forget(path string) {
	d.mu.Lock()
	defer d.mu.Unlock()
	delete(d.seen, unique.Make(path))
}

// Len returns the number of recorded paths.
func (d *Digests) Len() int {
	d.mu.Lock()
	defer d.mu.Unlock()
	return len(d.seen)
}
