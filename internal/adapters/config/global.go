package config

import (
	_ "embed"
	"path/filepath"

	"github.com/spf13/afero"
	"go.trai.ch/reso/internal/core/domain"
	"go.trai.ch/reso/internal/core/ports"
	"go.trai.ch/zerr"
)

//go:embed default.prf
var defaultProfile []byte

var _ ports.GlobalStore = (*GlobalStore)(nil)

// GlobalStore persists ~/.reso/config.yaml.
type GlobalStore struct {
	doc    document
	home   string
	logger ports.Logger
}

// NewGlobalStore returns a store rooted at the user's home directory.
func NewGlobalStore(fs afero.Fs, home string, logger ports.Logger) *GlobalStore {
	return &GlobalStore{doc: newDocument(fs, logger), home: home, logger: logger}
}

// Home returns the user's home directory.
func (s *GlobalStore) Home() string {
	return s.home
}

// Load reads the global config. A missing file yields the zero config.
func (s *GlobalStore) Load() (domain.GlobalConfig, error) {
	var cfg domain.GlobalConfig
	if _, err := s.doc.read(domain.GlobalConfigPath(s.home), &cfg); err != nil {
		return domain.GlobalConfig{}, err
	}
	return cfg, nil
}

// Save writes the global config.
func (s *GlobalStore) Save(cfg domain.GlobalConfig) error {
	return s.doc.write(domain.GlobalConfigPath(s.home), cfg)
}

// Init creates the default global config and the unison profile. Existing
// files are left untouched.
func (s *GlobalStore) Init() error {
	path := domain.GlobalConfigPath(s.home)
	if !s.doc.exists(path) {
		s.logger.Debug("Creating default configuration file at " + path)
		if err := s.Save(domain.GlobalConfig{AppName: domain.AppName}); err != nil {
			return err
		}
	}

	dir := domain.UnisonConfigDir(s.home)
	prf := filepath.Join(dir, domain.UnisonProfile+".prf")
	if s.doc.exists(prf) {
		return nil
	}
	s.logger.Debug("Creating default unison preferences file " + prf)
	if err := s.doc.fs.MkdirAll(dir, domain.DirPerm); err != nil {
		return zerr.With(zerr.Wrap(err, domain.ErrConfigWriteFailed.Error()), "path", dir)
	}
	if err := afero.WriteFile(s.doc.fs, prf, defaultProfile, domain.FilePerm); err != nil {
		return zerr.With(zerr.Wrap(err, domain.ErrConfigWriteFailed.Error()), "path", prf)
	}
	return nil
}
