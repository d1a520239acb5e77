package config

import (
	"github.com/spf13/afero"
	"go.trai.ch/reso/internal/core/domain"
	"go.trai.ch/reso/internal/core/ports"
)

var (
	_ ports.Ledger        = (*Ledger)(nil)
	_ ports.LedgerFactory = (*Ledgers)(nil)
)

// Ledger stores the RemoteState records of one project in
// <project>/.reso/remotes/remotes.yaml.
type Ledger struct {
	doc     document
	path    string
	project string
	names   domain.NameSource
	logger  ports.Logger
}

func (l *Ledger) load() (map[string]domain.RemoteState, error) {
	records := make(map[string]domain.RemoteState)
	if _, err := l.doc.read(l.path, &records); err != nil {
		return nil, err
	}
	if records == nil {
		records = make(map[string]domain.RemoteState)
	}
	return records, nil
}

// Get returns the record of remote, or nil when there is none.
func (l *Ledger) Get(remote string) (*domain.RemoteState, error) {
	records, err := l.load()
	if err != nil {
		return nil, err
	}
	st, ok := records[remote]
	if !ok {
		return nil, nil
	}
	return &st, nil
}

// Ensure returns the record of remote, generating the environment name and
// the remote project root if either is missing.
func (l *Ledger) Ensure(remote string) (*domain.RemoteState, error) {
	records, err := l.load()
	if err != nil {
		return nil, err
	}
	st := records[remote]
	changed := false
	if st.EnvName == "" {
		st.EnvName = domain.NewEnvName(l.names)
		l.logger.Debug("Remote env name was missing for remote '" + remote + "', generated new name " + st.EnvName)
		changed = true
	}
	if st.FilesPath == "" {
		st.FilesPath = domain.NewFilesPath(l.project, l.names)
		changed = true
	}
	if changed {
		records[remote] = st
		if err := l.doc.write(l.path, records); err != nil {
			return nil, err
		}
	}
	return &st, nil
}

// Upsert merges patch into the record of remote. The merged record must carry
// both identity fields.
func (l *Ledger) Upsert(remote string, patch domain.RemoteStatePatch) (*domain.RemoteState, error) {
	records, err := l.load()
	if err != nil {
		return nil, err
	}
	st := patch.Apply(records[remote])
	if _, err := domain.NewRemoteState(st.EnvName, st.FilesPath); err != nil {
		return nil, err
	}
	records[remote] = st
	if err := l.doc.write(l.path, records); err != nil {
		return nil, err
	}
	return &st, nil
}

// Delete removes the record of remote. Deleting a missing record is a no-op.
func (l *Ledger) Delete(remote string) error {
	records, err := l.load()
	if err != nil {
		return err
	}
	if _, ok := records[remote]; !ok {
		return nil
	}
	delete(records, remote)
	return l.doc.write(l.path, records)
}

// All returns every record.
func (l *Ledger) All() (map[string]domain.RemoteState, error) {
	return l.load()
}

// Ledgers opens project ledgers.
type Ledgers struct {
	fs     afero.Fs
	logger ports.Logger
	names  domain.NameSource
}

// NewLedgers returns a factory generating identifiers from names.
func NewLedgers(fs afero.Fs, logger ports.Logger, names domain.NameSource) *Ledgers {
	return &Ledgers{fs: fs, logger: logger, names: names}
}

// Open returns the ledger of project.
func (f *Ledgers) Open(project domain.Project) ports.Ledger {
	return &Ledger{
		doc:     newDocument(f.fs, f.logger),
		path:    domain.ProjectLedgerPath(project.Root),
		project: project.Name,
		names:   f.names,
		logger:  f.logger,
	}
}
