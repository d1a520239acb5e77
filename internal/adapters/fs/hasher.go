package fs

import (
	"fmt"
	"io"
	"strconv"

	"github.com/cespare/xxhash/v2"
	"github.com/spf13/afero"
	"go.trai.ch/zerr"
)

// Hasher computes content digests of files.
type Hasher struct {
	fs afero.Fs
}

// NewHasher creates a new Hasher.
func NewHasher(fs afero.Fs) *Hasher {
	return &Hasher{fs: fs}
}

// ComputeFileHash computes the XXHash of a file's content.
func (h *Hasher) ComputeFileHash(path string) (uint64, error) {
	f, err := h.fs.Open(path)
	if err != nil {
		return 0, zerr.With(zerr.Wrap(err, "failed to open file"), "path", path)
	}
	defer f.Close() //nolint:errcheck // read-only

	d := xxhash.New()
	if _, err := io.Copy(d, f); err != nil {
		return 0, zerr.With(zerr.Wrap(err, "failed to hash file content"), "path", path)
	}
	return d.Sum64(), nil
}

// FormatDigest renders a digest as 16 hex digits.
func FormatDigest(sum uint64) string {
	return fmt.Sprintf("%016x", sum)
}

// ParseDigest reads a digest rendered by FormatDigest.
func ParseDigest(s string) (uint64, error) {
	return strconv.ParseUint(s, 16, 64)
}
