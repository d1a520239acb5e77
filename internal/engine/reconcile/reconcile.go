// Package reconcile brings remotes and restored projects in line with the
// local project: files first, then the environment.
package reconcile

import (
	"context"
	"fmt"
	"io"
	"path/filepath"
	"strings"
	"time"

	"github.com/spf13/afero"
	"go.trai.ch/reso/internal/build"
	"go.trai.ch/reso/internal/core/domain"
	"go.trai.ch/reso/internal/core/ports"
	"go.trai.ch/reso/internal/engine/envsync"
	"go.trai.ch/reso/internal/engine/restore"
	"go.trai.ch/reso/internal/engine/transport"
	"go.trai.ch/zerr"
)

// Orchestrator is the only component that mutates the ledger and the
// recorded environment identities.
type Orchestrator struct {
	ledgers  ports.LedgerFactory
	projects ports.ProjectStore
	global   ports.GlobalStore
	pm       ports.PackageManager
	exporter ports.Exporter
	archives ports.ArchiveContainer
	files    *transport.Handler
	remote   *envsync.Chain
	restore  *restore.Chain
	fs       afero.Fs
	logger   ports.Logger

	host  domain.Platform
	names domain.NameSource
	now   func() time.Time
}

// New creates an Orchestrator for the host platform.
func New(
	ledgers ports.LedgerFactory,
	projects ports.ProjectStore,
	global ports.GlobalStore,
	pm ports.PackageManager,
	exporter ports.Exporter,
	archives ports.ArchiveContainer,
	files *transport.Handler,
	remote *envsync.Chain,
	restoreChain *restore.Chain,
	fs afero.Fs,
	logger ports.Logger,
) *Orchestrator {
	return &Orchestrator{
		ledgers:  ledgers,
		projects: projects,
		global:   global,
		pm:       pm,
		exporter: exporter,
		archives: archives,
		files:    files,
		remote:   remote,
		restore:  restoreChain,
		fs:       fs,
		logger:   logger,
		host:     domain.HostPlatform(),
		names:    domain.RandomSuffix,
		now:      time.Now,
	}
}

// WithHost overrides the local platform.
func (o *Orchestrator) WithHost(p domain.Platform) *Orchestrator {
	o.host = p
	return o
}

// WithNames overrides the source of generated name suffixes.
func (o *Orchestrator) WithNames(names domain.NameSource) *Orchestrator {
	o.names = names
	return o
}

// WithClock overrides the clock used for sync timestamps.
func (o *Orchestrator) WithClock(now func() time.Time) *Orchestrator {
	o.now = now
	return o
}

// SyncRequest selects what to reconcile on a remote.
type SyncRequest struct {
	Project   domain.Project
	Remote    domain.Remote
	FilesOnly bool
	// EnvName replaces the recorded remote environment when set.
	EnvName string
}

// SyncReport describes a finished sync.
type SyncReport struct {
	State     domain.RemoteState
	Compat    domain.Compatibility
	FilesOnly bool
	Report    domain.ChainReport
	Pip       domain.Attempt
}

// Sync transfers the project files and, unless FilesOnly is set, reconciles
// the remote environment with the local one. The recorded environment is
// never removed; only an environment created by this sync and left unused is.
func (o *Orchestrator) Sync(ctx context.Context, req SyncRequest) (SyncReport, error) {
	ledger := o.ledgers.Open(req.Project)
	report := SyncReport{FilesOnly: req.FilesOnly, Compat: domain.Classify(o.host, req.Remote.Platform())}

	var localEnv domain.Activation
	if !req.FilesOnly {
		env, err := o.localEnv(req.Project)
		if err != nil {
			return report, err
		}
		localEnv = env
	}

	if _, err := ledger.Ensure(req.Remote.Name); err != nil {
		return report, err
	}
	if req.EnvName != "" {
		env, err := domain.ParseActivation(req.EnvName)
		if err != nil {
			return report, err
		}
		directive := env.String()
		if _, err := ledger.Upsert(req.Remote.Name, domain.RemoteStatePatch{EnvName: &directive}); err != nil {
			return report, err
		}
	}

	state, err := o.files.Sync(ctx, transport.Request{Remote: req.Remote, LocalPath: req.Project.Root, Ledger: ledger})
	if err != nil {
		return report, err
	}
	report.State = *state
	if req.FilesOnly {
		return report, nil
	}

	remoteEnv, err := state.Activation()
	if err != nil {
		return report, err
	}

	stager := &layerStager{
		orchestrator: o,
		project:      req.Project,
		remote:       req.Remote,
		ledger:       ledger,
		env:          localEnv,
		filesPath:    state.FilesPath,
	}
	res, err := o.remote.Run(ctx, envsync.Request{
		Remote: req.Remote,
		Env:    remoteEnv,
		Compat: report.Compat,
		Stager: stager,
	})
	report.Report = res.Report
	report.Pip = res.Pip
	if !res.Created.IsZero() && res.Created != res.Env {
		o.discard(ctx, domain.RemoteTarget(req.Remote), res.Created)
	}
	if err != nil {
		return report, err
	}

	now := o.now().UTC()
	patch := domain.RemoteStatePatch{LastEnvSync: &now}
	if res.Env != remoteEnv {
		directive := res.Env.String()
		patch.EnvName = &directive
	}
	updated, err := ledger.Upsert(req.Remote.Name, patch)
	if err != nil {
		return report, err
	}
	report.State = *updated
	return report, nil
}

// SyncFiles transfers the project files only.
func (o *Orchestrator) SyncFiles(ctx context.Context, project domain.Project, remote domain.Remote) (domain.RemoteState, error) {
	report, err := o.Sync(ctx, SyncRequest{Project: project, Remote: remote, FilesOnly: true})
	return report.State, err
}

// RestoreRequest selects an archive and the project it is restored into.
type RestoreRequest struct {
	ArchivePath string
	Project     domain.Project
}

// RestoreReport describes a finished restore.
type RestoreReport struct {
	Header ports.ArchiveHeader
	Compat domain.Compatibility
	Env    domain.Activation
	Report domain.ChainReport
}

// Restore replaces the project files with the archived ones and rebuilds the
// environment under a fresh name. The previous environment is removed only
// once the new one is usable.
func (o *Orchestrator) Restore(ctx context.Context, req RestoreRequest) (RestoreReport, error) {
	reader, err := o.archives.Open(ctx, req.ArchivePath)
	if err != nil {
		return RestoreReport{}, err
	}
	defer func() { _ = reader.Close() }()

	header := reader.Header()
	report := RestoreReport{Header: header, Compat: domain.Classify(header.Platform, o.host)}
	o.logger.Debug(fmt.Sprintf("Archive created with version %s on %s (%s)",
		header.Version, header.CreatedOn.Format(time.RFC3339), header.Platform))

	cfg, err := o.projects.Load(req.Project)
	if err != nil {
		return report, err
	}
	var previous domain.Activation
	if cfg.EnvName != "" {
		if previous, err = domain.ParseActivation(cfg.EnvName); err != nil {
			return report, err
		}
	}

	if err := o.clearProject(req.Project.Root); err != nil {
		return report, err
	}
	if err := reader.ExtractFiles(ctx, req.Project.Root); err != nil {
		return report, err
	}

	name := domain.NewEnvName(o.names)
	for name == previous.Name() {
		name = domain.NewEnvName(o.names)
	}
	fresh := domain.ByName(name)
	local := domain.LocalTarget()

	o.logger.Info(fmt.Sprintf("Creating new environment '%s'", name))
	if err := o.pm.CreateEnv(ctx, local, name); err != nil {
		return report, err
	}

	res, err := o.restore.Run(ctx, restore.Request{
		Compat:   report.Compat,
		Env:      fresh,
		PackRoot: domain.LocalPackRoot(o.global.Home(), name),
		Source:   reader,
	})
	report.Report = res.Report
	if err != nil {
		o.discard(ctx, local, fresh)
		if res.Env != fresh {
			o.discard(ctx, local, res.Env)
		}
		return report, err
	}
	report.Env = res.Env

	usable, err := o.pm.EnvExists(ctx, local, res.Env)
	if err != nil {
		return report, err
	}
	if !usable {
		return report, zerr.Wrap(domain.ErrEnvNotUsable, "env '"+res.Env.String()+"'")
	}

	cfg.EnvName = res.Env.String()
	cfg.OS = o.host.OS
	cfg.Arch = o.host.Arch
	cfg.Version = build.Version
	if err := o.projects.Save(req.Project, cfg); err != nil {
		return report, err
	}

	if res.Env != fresh {
		o.discard(ctx, local, fresh)
	}
	if !previous.IsZero() && previous != res.Env {
		o.discard(ctx, local, previous)
	}
	return report, nil
}

// ArchiveRequest selects the project to archive and where the archive goes.
type ArchiveRequest struct {
	Project domain.Project
	Writer  io.Writer
}

// Archive exports every descriptor layer of the local environment and writes
// the project archive. A layer that fails to export is left out.
func (o *Orchestrator) Archive(ctx context.Context, req ArchiveRequest) (*domain.Descriptor, error) {
	env, err := o.localEnv(req.Project)
	if err != nil {
		return nil, err
	}

	desc := domain.NewDescriptor(env)
	dir := domain.LayerDir(req.Project.Root)
	if err := o.fs.MkdirAll(dir, domain.DirPerm); err != nil {
		return nil, zerr.Wrap(err, "failed to create layer directory")
	}
	for _, layer := range domain.LayerOrder {
		dest := filepath.Join(dir, layer.FileName())
		if err := o.exporter.Export(ctx, env, layer, dest); err != nil {
			o.logger.Warn(fmt.Sprintf("Could not export %s, it will not be part of the archive: %v", layer, err))
			continue
		}
		desc.Set(layer, dest)
	}
	if lock, ok := desc.Path(domain.LayerExplicitLock); ok {
		if data, err := afero.ReadFile(o.fs, lock); err == nil {
			set := domain.PackageSet(domain.ParseExplicitLock(string(data)))
			o.logger.Debug(fmt.Sprintf("Archiving %d packages: %s", len(set), strings.Join(set, " ")))
		}
	}

	spec := ports.ArchiveSpec{
		Header: ports.ArchiveHeader{
			Version:   build.Version,
			CreatedOn: o.now().UTC(),
			Platform:  o.host,
		},
		ProjectRoot: req.Project.Root,
		Descriptor:  desc,
	}
	if err := o.archives.Write(ctx, req.Writer, spec); err != nil {
		return desc, err
	}
	return desc, nil
}

func (o *Orchestrator) localEnv(project domain.Project) (domain.Activation, error) {
	cfg, err := o.projects.Load(project)
	if err != nil {
		return domain.Activation{}, err
	}
	if cfg.EnvName == "" {
		return domain.Activation{}, zerr.Wrap(domain.ErrNoLocalEnv, "project '"+project.Name+"'")
	}
	return domain.ParseActivation(cfg.EnvName)
}

// clearProject removes every non-hidden entry of the project root.
func (o *Orchestrator) clearProject(root string) error {
	entries, err := afero.ReadDir(o.fs, root)
	if err != nil {
		return zerr.Wrap(err, "failed to list project directory")
	}
	for _, e := range entries {
		if strings.HasPrefix(e.Name(), ".") {
			continue
		}
		if err := o.fs.RemoveAll(filepath.Join(root, e.Name())); err != nil {
			return zerr.With(zerr.Wrap(err, "failed to clear project directory"), "path", e.Name())
		}
	}
	return nil
}

func (o *Orchestrator) discard(ctx context.Context, target domain.Target, env domain.Activation) {
	if env.IsZero() {
		return
	}
	o.logger.Debug(fmt.Sprintf("Removing unused environment '%s'", env))
	if err := o.pm.RemoveEnv(ctx, target, env); err != nil {
		o.logger.Warn(fmt.Sprintf("Could not remove environment '%s': %v", env, err))
	}
}

// layerStager exports layers into the project's layer folder and ships them
// with a files sync.
type layerStager struct {
	orchestrator *Orchestrator
	project      domain.Project
	remote       domain.Remote
	ledger       ports.Ledger
	env          domain.Activation
	filesPath    string
}

func (s *layerStager) Stage(ctx context.Context, layer domain.Layer) (envsync.Staged, error) {
	o := s.orchestrator
	dir := domain.LayerDir(s.project.Root)
	if err := o.fs.MkdirAll(dir, domain.DirPerm); err != nil {
		return envsync.Staged{}, zerr.Wrap(err, "failed to create layer directory")
	}
	local := filepath.Join(dir, layer.FileName())
	if err := o.exporter.Export(ctx, s.env, layer, local); err != nil {
		return envsync.Staged{}, err
	}

	staged := envsync.Staged{RemotePath: s.filesPath + "/" + domain.LayerDirName + "/" + layer.FileName()}
	if layer == domain.LayerLeafPackages || layer == domain.LayerPipPackages {
		data, err := afero.ReadFile(o.fs, local)
		if err != nil {
			return envsync.Staged{}, zerr.Wrap(err, "failed to read exported layer")
		}
		staged.Lines = domain.PackageLines(string(data))
		if len(staged.Lines) == 0 {
			return staged, nil
		}
	}

	_, err := o.files.Sync(ctx, transport.Request{Remote: s.remote, LocalPath: s.project.Root, Ledger: s.ledger})
	return staged, err
}
