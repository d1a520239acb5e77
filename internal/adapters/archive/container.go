// Package archive writes and reads project archives: a gzip-compressed tar
// holding the project files and the descriptor layers of its environment.
//
// Layout:
//
//	pax_global_header   reso_version, created_on, platform, arch
//	MANIFEST            "<xxhash>  <member>" per member
//	files/...           project files
//	layers/<file>       exported descriptor layers
package archive

import (
	"archive/tar"
	"bufio"
	"context"
	"errors"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/klauspost/compress/gzip"
	"github.com/spf13/afero"
	rfs "go.trai.ch/reso/internal/adapters/fs"
	"go.trai.ch/reso/internal/core/domain"
	"go.trai.ch/reso/internal/core/ports"
	"go.trai.ch/zerr"
)

// PAX keys of the identification header.
const (
	KeyVersion   = "reso_version"
	KeyCreatedOn = "created_on"
	KeyPlatform  = "platform"
	KeyArch      = "arch"
)

const (
	globalHeaderName = "pax_global_header"
	manifestName     = "MANIFEST"
	filesPrefix      = domain.ArchiveFilesDir + "/"
	layersPrefix     = "layers/"
)

var _ ports.ArchiveContainer = (*Container)(nil)

// Container creates and opens archives on fs.
type Container struct {
	fs     afero.Fs
	walker *rfs.Walker
	hasher *rfs.Hasher
	logger ports.Logger
}

// NewContainer returns a Container.
func NewContainer(fs afero.Fs, logger ports.Logger) *Container {
	return &Container{
		fs:     fs,
		walker: rfs.NewWalker(fs),
		hasher: rfs.NewHasher(fs),
		logger: logger,
	}
}

type member struct {
	name   string
	source string
	digest uint64
}

// Write streams a new archive to w.
func (c *Container) Write(ctx context.Context, w io.Writer, spec ports.ArchiveSpec) error {
	members, err := c.plan(spec)
	if err != nil {
		return err
	}

	gz := gzip.NewWriter(w)
	tw := tar.NewWriter(gz)

	if err := tw.WriteHeader(&tar.Header{
		Typeflag: tar.TypeXGlobalHeader,
		Name:     globalHeaderName,
		Format:   tar.FormatPAX,
		PAXRecords: map[string]string{
			KeyVersion:   spec.Header.Version,
			KeyCreatedOn: spec.Header.CreatedOn.Format(time.RFC3339),
			KeyPlatform:  spec.Header.Platform.OS,
			KeyArch:      spec.Header.Platform.Arch,
		},
	}); err != nil {
		return zerr.Wrap(err, "failed to write archive header")
	}

	if err := writeBytes(tw, manifestName, []byte(formatManifest(members))); err != nil {
		return err
	}

	for _, m := range members {
		if err := ctx.Err(); err != nil {
			return err
		}
		if err := c.writeFile(tw, m); err != nil {
			return err
		}
	}

	if err := tw.Close(); err != nil {
		return zerr.Wrap(err, "failed to finish archive")
	}
	if err := gz.Close(); err != nil {
		return zerr.Wrap(err, "failed to finish archive")
	}
	return nil
}

// plan lists and digests every member before anything is written, so the
// manifest can lead the stream.
func (c *Container) plan(spec ports.ArchiveSpec) ([]member, error) {
	var members []member
	for rel, err := range c.walker.WalkFiles(spec.ProjectRoot) {
		if err != nil {
			return nil, zerr.With(zerr.Wrap(err, "failed to list project files"), "path", spec.ProjectRoot)
		}
		members = append(members, member{
			name:   filesPrefix + rel,
			source: filepath.Join(spec.ProjectRoot, filepath.FromSlash(rel)),
		})
	}
	if spec.Descriptor != nil {
		for _, layer := range spec.Descriptor.Layers() {
			src, _ := spec.Descriptor.Path(layer)
			members = append(members, member{name: layersPrefix + layer.FileName(), source: src})
		}
	}

	for i := range members {
		sum, err := c.hasher.ComputeFileHash(members[i].source)
		if err != nil {
			return nil, err
		}
		members[i].digest = sum
	}
	return members, nil
}

func (c *Container) writeFile(tw *tar.Writer, m member) error {
	f, err := c.fs.Open(m.source)
	if err != nil {
		return zerr.With(zerr.Wrap(err, "failed to open file"), "path", m.source)
	}
	defer f.Close() //nolint:errcheck // read-only

	info, err := f.Stat()
	if err != nil {
		return zerr.With(zerr.Wrap(err, "failed to stat file"), "path", m.source)
	}
	hdr := &tar.Header{
		Typeflag: tar.TypeReg,
		Name:     m.name,
		Size:     info.Size(),
		Mode:     int64(info.Mode().Perm()),
		ModTime:  info.ModTime(),
		Format:   tar.FormatPAX,
	}
	if err := tw.WriteHeader(hdr); err != nil {
		return zerr.With(zerr.Wrap(err, "failed to write archive member"), "member", m.name)
	}
	if _, err := io.CopyN(tw, f, info.Size()); err != nil {
		return zerr.With(zerr.Wrap(err, "failed to write archive member"), "member", m.name)
	}
	c.logger.Debug("Archived " + m.name)
	return nil
}

func writeBytes(tw *tar.Writer, name string, data []byte) error {
	hdr := &tar.Header{
		Typeflag: tar.TypeReg,
		Name:     name,
		Size:     int64(len(data)),
		Mode:     domain.FilePerm,
		ModTime:  time.Now(),
		Format:   tar.FormatPAX,
	}
	if err := tw.WriteHeader(hdr); err != nil {
		return zerr.With(zerr.Wrap(err, "failed to write archive member"), "member", name)
	}
	if _, err := tw.Write(data); err != nil {
		return zerr.With(zerr.Wrap(err, "failed to write archive member"), "member", name)
	}
	return nil
}

func formatManifest(members []member) string {
	var b strings.Builder
	for _, m := range members {
		b.WriteString(rfs.FormatDigest(m.digest))
		b.WriteString("  ")
		b.WriteString(m.name)
		b.WriteByte('\n')
	}
	return b.String()
}

func parseManifest(r io.Reader) (map[string]uint64, error) {
	digests := make(map[string]uint64)
	sc := bufio.NewScanner(r)
	for sc.Scan() {
		line := sc.Text()
		if line == "" {
			continue
		}
		sum, name, ok := strings.Cut(line, "  ")
		if !ok {
			return nil, zerr.With(zerr.New("malformed archive manifest"), "line", line)
		}
		d, err := rfs.ParseDigest(sum)
		if err != nil {
			return nil, zerr.With(zerr.Wrap(err, "malformed archive manifest"), "line", line)
		}
		digests[name] = d
	}
	return digests, sc.Err()
}

var errStop = errors.New("stop")

// scan calls fn for every entry of the archive at p until fn returns errStop.
func (c *Container) scan(p string, fn func(hdr *tar.Header, r io.Reader) error) error {
	f, err := c.fs.Open(p)
	if err != nil {
		return zerr.With(zerr.Wrap(err, "failed to open archive"), "path", p)
	}
	defer f.Close() //nolint:errcheck // read-only

	gz, err := gzip.NewReader(f)
	if err != nil {
		return zerr.Wrap(domain.ErrNotAnArchive, p)
	}
	defer gz.Close() //nolint:errcheck // read-only

	tr := tar.NewReader(gz)
	for first := true; ; first = false {
		hdr, err := tr.Next()
		if errors.Is(err, io.EOF) {
			return nil
		}
		if err != nil && first {
			return zerr.Wrap(domain.ErrNotAnArchive, p)
		}
		if err != nil {
			return zerr.With(zerr.Wrap(err, "failed to read archive"), "path", p)
		}
		if err := fn(hdr, tr); err != nil {
			if errors.Is(err, errStop) {
				return nil
			}
			return err
		}
	}
}

// Open reads the identification header and the manifest of the archive at
// p without touching the rest of it.
func (c *Container) Open(ctx context.Context, p string) (ports.ArchiveReader, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	r := &Reader{c: c, path: p}
	seen := 0
	err := c.scan(p, func(hdr *tar.Header, body io.Reader) error {
		seen++
		switch seen {
		case 1:
			version, ok := hdr.PAXRecords[KeyVersion]
			if hdr.Typeflag != tar.TypeXGlobalHeader || !ok {
				return zerr.Wrap(domain.ErrNotAnArchive, p)
			}
			created, _ := time.Parse(time.RFC3339, hdr.PAXRecords[KeyCreatedOn])
			r.header = ports.ArchiveHeader{
				Version:   version,
				CreatedOn: created,
				Platform:  domain.Platform{OS: hdr.PAXRecords[KeyPlatform], Arch: hdr.PAXRecords[KeyArch]},
			}
			return nil
		default:
			if hdr.Name != manifestName {
				return zerr.With(zerr.New("archive manifest not found"), "path", p)
			}
			digests, err := parseManifest(body)
			if err != nil {
				return err
			}
			r.digests = digests
			return errStop
		}
	})
	if err != nil {
		return nil, err
	}
	if seen == 0 {
		return nil, zerr.Wrap(domain.ErrNotAnArchive, p)
	}
	if r.digests == nil {
		return nil, zerr.With(zerr.New("archive manifest not found"), "path", p)
	}
	c.logger.Debug("Archive created by reso version " + r.header.Version + " on " + r.header.CreatedOn.String())
	return r, nil
}

const osCreate = os.O_CREATE | os.O_WRONLY | os.O_TRUNC
