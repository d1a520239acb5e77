package ports

import (
	"context"
	"io"
	"time"

	"go.trai.ch/reso/internal/core/domain"
)

// ArchiveHeader is the out-of-band metadata of a project archive.
type ArchiveHeader struct {
	Version   string
	CreatedOn time.Time
	Platform  domain.Platform
}

// ArchiveSpec lists what goes into a new archive.
type ArchiveSpec struct {
	Header      ArchiveHeader
	ProjectRoot string
	Descriptor  *domain.Descriptor
}

// ArchiveReader reads a project archive.
type ArchiveReader interface {
	io.Closer
	Header() ArchiveHeader
	// ExtractFiles writes the archived project files under dest.
	ExtractFiles(ctx context.Context, dest string) error
	// LayerPath extracts layer on first use and returns its local path.
	LayerPath(ctx context.Context, layer domain.Layer) (string, error)
}

// ArchiveContainer writes and opens project archives.
//
//go:generate go run go.uber.org/mock/mockgen -source=archive.go -destination=mocks/mock_archive.go -package=mocks
type ArchiveContainer interface {
	Write(ctx context.Context, w io.Writer, spec ArchiveSpec) error
	Open(ctx context.Context, path string) (ArchiveReader, error)
}
