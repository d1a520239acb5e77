package config

import (
	"path/filepath"

	"github.com/spf13/afero"
	"go.trai.ch/reso/internal/core/domain"
	"go.trai.ch/reso/internal/core/ports"
	"go.trai.ch/zerr"
)

var _ ports.ProjectStore = (*Projects)(nil)

// Projects finds project roots and persists their config.
type Projects struct {
	doc document
}

// NewProjects returns a project store backed by fs.
func NewProjects(fs afero.Fs, logger ports.Logger) *Projects {
	return &Projects{doc: newDocument(fs, logger)}
}

// Find walks up from dir until it meets a directory holding the init marker.
func (p *Projects) Find(dir string) (domain.Project, error) {
	cur := filepath.Clean(dir)
	for range domain.MaxProjectSearchDepth {
		if p.doc.exists(domain.InitMarkerPath(cur)) {
			return domain.NewProject(cur), nil
		}
		parent := filepath.Dir(cur)
		if parent == cur {
			break
		}
		cur = parent
	}
	return domain.Project{}, zerr.Wrap(domain.ErrNotAProject, "folder '"+dir+"'")
}

// Init creates the metadata directory of a new project and writes cfg.
func (p *Projects) Init(root string, cfg domain.ProjectConfig) (domain.Project, error) {
	marker := domain.InitMarkerPath(root)
	if p.doc.exists(marker) {
		return domain.Project{}, zerr.Wrap(domain.ErrProjectAlreadyInitialized, "folder '"+root+"'")
	}
	project := domain.NewProject(root)
	if err := p.doc.fs.MkdirAll(filepath.Dir(domain.ProjectLedgerPath(root)), domain.DirPerm); err != nil {
		return domain.Project{}, zerr.With(zerr.Wrap(err, "failed to create project folder"), "path", root)
	}
	if err := p.Save(project, cfg); err != nil {
		return domain.Project{}, err
	}
	if err := afero.WriteFile(p.doc.fs, marker, nil, domain.FilePerm); err != nil {
		return domain.Project{}, zerr.With(zerr.Wrap(err, "failed to mark project as initialized"), "path", marker)
	}
	return project, nil
}

// Teardown removes the project metadata directory.
func (p *Projects) Teardown(project domain.Project) error {
	dir := filepath.Join(project.Root, domain.ResoDirName)
	if err := p.doc.fs.RemoveAll(dir); err != nil {
		return zerr.With(zerr.Wrap(err, "failed to remove project metadata"), "path", dir)
	}
	return nil
}

// Load reads the project config. A missing file yields the zero config.
func (p *Projects) Load(project domain.Project) (domain.ProjectConfig, error) {
	var cfg domain.ProjectConfig
	if _, err := p.doc.read(domain.ProjectConfigPath(project.Root), &cfg); err != nil {
		return domain.ProjectConfig{}, err
	}
	return cfg, nil
}

// Save writes the project config.
func (p *Projects) Save(project domain.Project, cfg domain.ProjectConfig) error {
	return p.doc.write(domain.ProjectConfigPath(project.Root), cfg)
}
