package archive

import (
	"archive/tar"
	"context"
	"io"
	"path/filepath"
	"strings"

	"github.com/cespare/xxhash/v2"
	"github.com/spf13/afero"
	"go.trai.ch/reso/internal/core/domain"
	"go.trai.ch/reso/internal/core/ports"
	"go.trai.ch/zerr"
)

var _ ports.ArchiveReader = (*Reader)(nil)

// Reader gives access to an opened archive. Layers are extracted into a
// private temporary directory on first use and removed by Close.
type Reader struct {
	c       *Container
	path    string
	header  ports.ArchiveHeader
	digests map[string]uint64
	tmp     string
	layers  map[string]string
}

// Header returns the identification header.
func (r *Reader) Header() ports.ArchiveHeader {
	return r.header
}

// ExtractFiles writes the archived project files under dest, verifying each
// against the manifest.
func (r *Reader) ExtractFiles(ctx context.Context, dest string) error {
	return r.c.scan(r.path, func(hdr *tar.Header, body io.Reader) error {
		if err := ctx.Err(); err != nil {
			return err
		}
		rel, ok := strings.CutPrefix(hdr.Name, filesPrefix)
		if !ok || hdr.Typeflag != tar.TypeReg {
			return nil
		}
		if !filepath.IsLocal(rel) {
			return zerr.With(zerr.New("archive member escapes the project folder"), "member", hdr.Name)
		}
		return r.extract(hdr, body, filepath.Join(dest, filepath.FromSlash(rel)))
	})
}

func (r *Reader) extract(hdr *tar.Header, body io.Reader, target string) error {
	fs := r.c.fs
	if err := fs.MkdirAll(filepath.Dir(target), domain.DirPerm); err != nil {
		return zerr.With(zerr.Wrap(err, "failed to create folder"), "path", filepath.Dir(target))
	}
	f, err := fs.OpenFile(target, osCreate, hdr.FileInfo().Mode().Perm())
	if err != nil {
		return zerr.With(zerr.Wrap(err, "failed to create file"), "path", target)
	}
	d := xxhash.New()
	_, copyErr := io.Copy(io.MultiWriter(f, d), body)
	closeErr := f.Close()
	if copyErr != nil {
		return zerr.With(zerr.Wrap(copyErr, "failed to extract archive member"), "member", hdr.Name)
	}
	if closeErr != nil {
		return zerr.With(zerr.Wrap(closeErr, "failed to extract archive member"), "member", hdr.Name)
	}
	if want, ok := r.digests[hdr.Name]; !ok || want != d.Sum64() {
		return zerr.With(zerr.New("archive member is corrupted"), "member", hdr.Name)
	}
	if !hdr.ModTime.IsZero() {
		_ = fs.Chtimes(target, hdr.ModTime, hdr.ModTime)
	}
	r.c.logger.Debug("Extracted " + hdr.Name)
	return nil
}

// LayerPath returns the local path of an archived layer.
func (r *Reader) LayerPath(ctx context.Context, layer domain.Layer) (string, error) {
	if r.layers == nil {
		if err := r.extractLayers(ctx); err != nil {
			return "", err
		}
	}
	p, ok := r.layers[layer.FileName()]
	if !ok {
		return "", zerr.Wrap(domain.ErrArchiveMemberMissing, layersPrefix+layer.FileName())
	}
	return p, nil
}

func (r *Reader) extractLayers(ctx context.Context) error {
	tmp, err := afero.TempDir(r.c.fs, "", "reso-layers-")
	if err != nil {
		return zerr.Wrap(err, "failed to create temporary folder")
	}
	r.tmp = tmp
	layers := make(map[string]string)
	err = r.c.scan(r.path, func(hdr *tar.Header, body io.Reader) error {
		if err := ctx.Err(); err != nil {
			return err
		}
		name, ok := strings.CutPrefix(hdr.Name, layersPrefix)
		if !ok || hdr.Typeflag != tar.TypeReg || !filepath.IsLocal(name) || strings.ContainsRune(name, '/') {
			return nil
		}
		target := filepath.Join(tmp, name)
		if err := r.extract(hdr, body, target); err != nil {
			return err
		}
		layers[name] = target
		return nil
	})
	if err != nil {
		return err
	}
	r.layers = layers
	return nil
}

// Close removes extracted layers.
func (r *Reader) Close() error {
	if r.tmp == "" {
		return nil
	}
	if err := r.c.fs.RemoveAll(r.tmp); err != nil {
		return zerr.With(zerr.Wrap(err, "failed to remove temporary folder"), "path", r.tmp)
	}
	r.tmp = ""
	return nil
}
