package app_test

import (
	"context"
	"testing"

	"github.com/spf13/afero"
	"go.trai.ch/reso/internal/app"
	"go.trai.ch/reso/internal/core/domain"
	"go.trai.ch/reso/internal/core/ports/mocks"
	"go.trai.ch/reso/internal/engine/reconcile"
	"go.uber.org/mock/gomock"
)

const workDir = "/work/proj"

type fakeReconciler struct {
	syncs    []reconcile.SyncRequest
	syncErr  error
	state    domain.RemoteState
	restores []reconcile.RestoreRequest
	restored reconcile.RestoreReport
	archive  string
}

func (f *fakeReconciler) Sync(_ context.Context, req reconcile.SyncRequest) (reconcile.SyncReport, error) {
	f.syncs = append(f.syncs, req)
	return reconcile.SyncReport{State: f.state, FilesOnly: req.FilesOnly}, f.syncErr
}

func (f *fakeReconciler) Restore(_ context.Context, req reconcile.RestoreRequest) (reconcile.RestoreReport, error) {
	f.restores = append(f.restores, req)
	return f.restored, nil
}

func (f *fakeReconciler) Archive(_ context.Context, req reconcile.ArchiveRequest) (*domain.Descriptor, error) {
	if _, err := req.Writer.Write([]byte(f.archive)); err != nil {
		return nil, err
	}
	return domain.NewDescriptor(domain.ByName("reso_env_local")), nil
}

type fakeServer struct {
	installed []string
	tested    []string
}

func (f *fakeServer) TestServer(_ context.Context, remote domain.Remote, _ string) error {
	f.tested = append(f.tested, remote.Name)
	return nil
}

func (f *fakeServer) Install(_ context.Context, remote domain.Remote) error {
	f.installed = append(f.installed, remote.Name)
	return nil
}

type harness struct {
	projects  *mocks.MockProjectStore
	global    *mocks.MockGlobalStore
	registry  *mocks.MockRemoteRegistry
	ledgers   *mocks.MockLedgerFactory
	ledger    *mocks.MockLedger
	packages  *mocks.MockPackageManager
	remote    *mocks.MockRemoteExecutor
	checker   *mocks.MockDependencyChecker
	keys      *mocks.MockKeyStore
	scheduler *mocks.MockJobScheduler
	depositor *mocks.MockDepositor
	objects   *mocks.MockObjectStore
	fetcher   *mocks.MockFetcher
	prompter  *mocks.MockPrompter
	rec       *fakeReconciler
	server    *fakeServer
	fs        afero.Fs
	app       *app.App
}

func newHarness(t *testing.T) *harness {
	t.Helper()
	ctrl := gomock.NewController(t)

	log := mocks.NewMockLogger(ctrl)
	log.EXPECT().Debug(gomock.Any()).AnyTimes()
	log.EXPECT().Info(gomock.Any()).AnyTimes()
	log.EXPECT().Warn(gomock.Any()).AnyTimes()
	log.EXPECT().Error(gomock.Any()).AnyTimes()

	h := &harness{
		projects:  mocks.NewMockProjectStore(ctrl),
		global:    mocks.NewMockGlobalStore(ctrl),
		registry:  mocks.NewMockRemoteRegistry(ctrl),
		ledgers:   mocks.NewMockLedgerFactory(ctrl),
		ledger:    mocks.NewMockLedger(ctrl),
		packages:  mocks.NewMockPackageManager(ctrl),
		remote:    mocks.NewMockRemoteExecutor(ctrl),
		checker:   mocks.NewMockDependencyChecker(ctrl),
		keys:      mocks.NewMockKeyStore(ctrl),
		scheduler: mocks.NewMockJobScheduler(ctrl),
		depositor: mocks.NewMockDepositor(ctrl),
		objects:   mocks.NewMockObjectStore(ctrl),
		fetcher:   mocks.NewMockFetcher(ctrl),
		prompter:  mocks.NewMockPrompter(ctrl),
		rec:       &fakeReconciler{},
		server:    &fakeServer{},
		fs:        afero.NewMemMapFs(),
	}
	h.ledgers.EXPECT().Open(gomock.Any()).Return(h.ledger).AnyTimes()

	h.app = app.New(app.Deps{
		Reconciler: h.rec,
		Projects:   h.projects,
		Global:     h.global,
		Registry:   h.registry,
		Ledgers:    h.ledgers,
		Packages:   h.packages,
		Remote:     h.remote,
		Checker:    h.checker,
		Server:     h.server,
		Keys:       h.keys,
		Scheduler:  h.scheduler,
		Watcher:    mocks.NewMockWatcher(ctrl),
		Depositor:  h.depositor,
		Objects:    h.objects,
		Fetcher:    h.fetcher,
		Prompter:   h.prompter,
		FS:         h.fs,
		Logger:     log,
	}).WithDir(workDir).WithNames(func(int) string { return "abcdefgh" })
	return h
}

// inProject makes the working directory a project whose config lives in
// memory. The returned pointer tracks every save.
func (h *harness) inProject(cfg domain.ProjectConfig) (domain.Project, *domain.ProjectConfig) {
	project := domain.NewProject(workDir)
	h.projects.EXPECT().Find(workDir).Return(project, nil).AnyTimes()
	h.storeConfig(project, &cfg)
	return project, &cfg
}

func (h *harness) storeConfig(project domain.Project, cfg *domain.ProjectConfig) {
	h.projects.EXPECT().Load(project).DoAndReturn(func(domain.Project) (domain.ProjectConfig, error) {
		return *cfg, nil
	}).AnyTimes()
	h.projects.EXPECT().Save(project, gomock.Any()).DoAndReturn(func(_ domain.Project, c domain.ProjectConfig) error {
		*cfg = c
		return nil
	}).AnyTimes()
}

func testRemote() domain.Remote {
	return domain.Remote{Name: "hpc", Hostname: "login.example.org", Username: "alice", Port: 22}
}
