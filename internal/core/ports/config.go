package ports

import "go.trai.ch/reso/internal/core/domain"

// RemoteRegistry stores the user's remote connection settings.
//
//go:generate go run go.uber.org/mock/mockgen -source=config.go -destination=mocks/mock_config.go -package=mocks
type RemoteRegistry interface {
	// Resolve returns the named remote. With an empty name it returns the only
	// configured remote, or fails when there are none or several.
	Resolve(name string) (domain.Remote, error)
	List() ([]domain.Remote, error)
	Add(remote domain.Remote) error
	Put(remote domain.Remote) error
	Delete(name string) error
}

// ProjectStore locates projects and persists their config.
type ProjectStore interface {
	// Find walks up from dir to the nearest initialized project.
	Find(dir string) (domain.Project, error)
	// Init creates the project metadata directory and marker in root.
	Init(root string, cfg domain.ProjectConfig) (domain.Project, error)
	// Teardown removes the project metadata directory.
	Teardown(project domain.Project) error
	Load(project domain.Project) (domain.ProjectConfig, error)
	Save(project domain.Project, cfg domain.ProjectConfig) error
}

// GlobalStore persists the user-level config.
type GlobalStore interface {
	Load() (domain.GlobalConfig, error)
	Save(cfg domain.GlobalConfig) error
	// Init writes the default config and sync profile when they are missing.
	Init() error
	// Home returns the user's home directory.
	Home() string
}
