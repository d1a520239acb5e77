package config

import (
	"slices"
	"strings"

	"github.com/spf13/afero"
	"go.trai.ch/reso/internal/core/domain"
	"go.trai.ch/reso/internal/core/ports"
	"go.trai.ch/zerr"
)

var _ ports.RemoteRegistry = (*Registry)(nil)

// Registry is the user's remote database, shared by all projects.
type Registry struct {
	doc  document
	path string
}

// NewRegistry returns the registry stored under home.
func NewRegistry(fs afero.Fs, home string, logger ports.Logger) *Registry {
	return &Registry{doc: newDocument(fs, logger), path: domain.GlobalRemotesPath(home)}
}

func (r *Registry) load() (map[string]domain.Remote, error) {
	db := make(map[string]domain.Remote)
	if _, err := r.doc.read(r.path, &db); err != nil {
		return nil, err
	}
	if db == nil {
		db = make(map[string]domain.Remote)
	}
	return db, nil
}

// List returns every remote sorted by name, with defaults applied.
func (r *Registry) List() ([]domain.Remote, error) {
	db, err := r.load()
	if err != nil {
		return nil, err
	}
	names := make([]string, 0, len(db))
	for name := range db {
		names = append(names, name)
	}
	slices.Sort(names)

	out := make([]domain.Remote, 0, len(names))
	for _, name := range names {
		rem := db[name]
		rem.Name = name
		out = append(out, rem.WithDefaults())
	}
	return out, nil
}

// Resolve returns the named remote. With an empty name the only configured
// remote is selected.
func (r *Registry) Resolve(name string) (domain.Remote, error) {
	remotes, err := r.List()
	if err != nil {
		return domain.Remote{}, err
	}
	if name == "" {
		switch len(remotes) {
		case 0:
			return domain.Remote{}, domain.ErrNoRemotes
		case 1:
			return remotes[0], nil
		default:
			names := make([]string, len(remotes))
			for i, rem := range remotes {
				names[i] = rem.Name
			}
			return domain.Remote{}, zerr.With(
				zerr.Wrap(domain.ErrRemoteUnspecified, "select one with --remote"),
				"remotes", strings.Join(names, ", "))
		}
	}
	for _, rem := range remotes {
		if rem.Name == name {
			return rem, nil
		}
	}
	return domain.Remote{}, zerr.Wrap(domain.ErrRemoteNotFound, "remote '"+name+"'")
}

// Add stores a new remote.
func (r *Registry) Add(remote domain.Remote) error {
	db, err := r.load()
	if err != nil {
		return err
	}
	if _, ok := db[remote.Name]; ok {
		return zerr.Wrap(domain.ErrRemoteExists, "remote '"+remote.Name+"'")
	}
	return r.store(db, remote)
}

// Put replaces the settings of an existing remote.
func (r *Registry) Put(remote domain.Remote) error {
	db, err := r.load()
	if err != nil {
		return err
	}
	if _, ok := db[remote.Name]; !ok {
		return zerr.Wrap(domain.ErrRemoteNotFound, "remote '"+remote.Name+"'")
	}
	return r.store(db, remote)
}

func (r *Registry) store(db map[string]domain.Remote, remote domain.Remote) error {
	remote = remote.WithDefaults()
	if err := remote.Validate(); err != nil {
		return err
	}
	db[remote.Name] = remote
	return r.doc.write(r.path, db)
}

// Delete removes a remote.
func (r *Registry) Delete(name string) error {
	db, err := r.load()
	if err != nil {
		return err
	}
	if _, ok := db[name]; !ok {
		return zerr.Wrap(domain.ErrRemoteNotFound, "remote '"+name+"'")
	}
	delete(db, name)
	return r.doc.write(r.path, db)
}
