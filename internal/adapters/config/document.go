// Package config stores reso's YAML documents: the user-level config and
// remote registry, and the per-project config and remote ledger.
package config

import (
	"errors"
	"fmt"
	iofs "io/fs"
	"os"
	"path/filepath"

	"github.com/spf13/afero"
	"go.trai.ch/reso/internal/core/domain"
	"go.trai.ch/reso/internal/core/ports"
	"go.trai.ch/zerr"
	"gopkg.in/yaml.v3"
)

// DebugAccessEnv enables logging of every config read and write when set.
const DebugAccessEnv = "RESO_DEBUG_CONFIG_ACCESS"

type document struct {
	fs     afero.Fs
	logger ports.Logger
	trace  bool
}

func newDocument(fs afero.Fs, logger ports.Logger) document {
	return document{fs: fs, logger: logger, trace: os.Getenv(DebugAccessEnv) != ""}
}

// read decodes the file at path into v. It reports false when the file does
// not exist, leaving v untouched.
func (d document) read(path string, v any) (bool, error) {
	data, err := afero.ReadFile(d.fs, path)
	if errors.Is(err, iofs.ErrNotExist) {
		return false, nil
	}
	if err != nil {
		return false, zerr.With(zerr.Wrap(err, domain.ErrConfigReadFailed.Error()), "path", path)
	}
	if err := yaml.Unmarshal(data, v); err != nil {
		return false, zerr.With(zerr.Wrap(err, domain.ErrConfigParseFailed.Error()), "path", path)
	}
	if d.trace {
		d.logger.Debug(fmt.Sprintf("Read config %s:\n%s", path, data))
	}
	return true, nil
}

func (d document) write(path string, v any) error {
	data, err := yaml.Marshal(v)
	if err != nil {
		return zerr.With(zerr.Wrap(err, domain.ErrConfigWriteFailed.Error()), "path", path)
	}
	if err := d.fs.MkdirAll(filepath.Dir(path), domain.DirPerm); err != nil {
		return zerr.With(zerr.Wrap(err, domain.ErrConfigWriteFailed.Error()), "path", path)
	}
	if d.trace {
		d.logger.Debug(fmt.Sprintf("Writing new config to %s:\n%s", path, data))
	}
	if err := afero.WriteFile(d.fs, path, data, domain.FilePerm); err != nil {
		return zerr.With(zerr.Wrap(err, domain.ErrConfigWriteFailed.Error()), "path", path)
	}
	return nil
}

func (d document) exists(path string) bool {
	ok, err := afero.Exists(d.fs, path)
	return err == nil && ok
}
