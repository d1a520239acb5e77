// Package conda maps environment operations onto conda command lines.
package conda

import (
	"context"
	"strings"

	"go.trai.ch/reso/internal/adapters/shell"
	"go.trai.ch/reso/internal/core/domain"
	"go.trai.ch/reso/internal/core/ports"
)

const envNotFound = "Could not find conda environment"

var _ ports.PackageManager = (*Manager)(nil)

// Manager runs conda on the local machine or on a remote.
type Manager struct {
	local  ports.LocalExecutor
	remote ports.RemoteExecutor
	logger ports.Logger
}

// NewManager returns a Manager using the given executors.
func NewManager(local ports.LocalExecutor, remote ports.RemoteExecutor, logger ports.Logger) *Manager {
	return &Manager{local: local, remote: remote, logger: logger}
}

// base returns the command prefix that makes conda available on target.
func base(target domain.Target) string {
	if target.IsRemote() {
		return target.Remote().CondaLoadCommand + " && conda"
	}
	return "conda"
}

// ActivateCommand returns the command that enters env on target.
func ActivateCommand(target domain.Target, env domain.Activation) string {
	if env.IsPath() {
		return "source " + shell.Quote(env.Path()+"/bin/activate")
	}
	if target.IsRemote() {
		return target.Remote().CondaLoadCommand + " && conda activate " + env.Name()
	}
	// Nested shells can keep a stale environment active, see conda/conda#9392.
	return "conda deactivate && conda activate " + env.Name()
}

func targetFlag(env domain.Activation) string {
	if env.IsPath() {
		return "--prefix " + shell.Quote(env.Path())
	}
	return "--name " + env.Name()
}

func (m *Manager) run(ctx context.Context, target domain.Target, cmd string) (domain.CommandResult, error) {
	if target.IsRemote() {
		return m.remote.Run(ctx, target.Remote(), cmd)
	}
	return m.local.Run(ctx, cmd)
}

// must runs cmd and turns a non-zero exit into a CommandError.
func (m *Manager) must(ctx context.Context, target domain.Target, cmd string) (domain.CommandResult, error) {
	res, err := m.run(ctx, target, cmd)
	if err != nil {
		return res, err
	}
	if !res.Succeeded() {
		return res, domain.NewCommandError(target, cmd, res)
	}
	return res, nil
}

// EnvExists activates env and reports whether that worked.
func (m *Manager) EnvExists(ctx context.Context, target domain.Target, env domain.Activation) (bool, error) {
	cmd := ActivateCommand(target, env)
	res, err := m.run(ctx, target, cmd)
	if err != nil {
		return false, err
	}
	if res.Succeeded() {
		return true, nil
	}
	if strings.Contains(res.Output, envNotFound) {
		return false, nil
	}
	if env.IsPath() && strings.Contains(res.Output, "No such file or directory") {
		return false, nil
	}
	return false, domain.NewCommandError(target, cmd, res)
}

// CreateEnv creates an empty named environment.
func (m *Manager) CreateEnv(ctx context.Context, target domain.Target, name string) error {
	m.logger.Info("Creating conda environment '" + name + "' on " + where(target) + "...")
	_, err := m.must(domain.WithEcho(ctx), target, base(target)+" create -y -n "+name)
	return err
}

// RemoveEnv deletes a named environment, or the directory of a relocated pack.
func (m *Manager) RemoveEnv(ctx context.Context, target domain.Target, env domain.Activation) error {
	cmd := base(target) + " env remove -y --name " + env.Name()
	if env.IsPath() {
		cmd = "rm -rf " + shell.Quote(env.Path())
	}
	_, err := m.must(ctx, target, cmd)
	return err
}

// InstallFile installs a package list file into env.
func (m *Manager) InstallFile(ctx context.Context, target domain.Target, env domain.Activation, file string) error {
	cmd := base(target) + " install -y " + targetFlag(env) + " --file " + shell.Quote(file)
	_, err := m.must(domain.WithEcho(ctx), target, cmd)
	return err
}

// ApplyManifest updates env from an environment YAML file.
func (m *Manager) ApplyManifest(ctx context.Context, target domain.Target, env domain.Activation, file string) error {
	cmd := base(target) + " env update " + targetFlag(env) + " -f " + shell.Quote(file)
	_, err := m.must(domain.WithEcho(ctx), target, cmd)
	return err
}

// Install installs packages into env.
func (m *Manager) Install(ctx context.Context, target domain.Target, env domain.Activation, packages []string) error {
	cmd := base(target) + " install -y " + targetFlag(env) + " " + shell.Join(packages...)
	_, err := m.must(domain.WithEcho(ctx), target, cmd)
	return err
}

// Uninstall removes packages from env.
func (m *Manager) Uninstall(ctx context.Context, target domain.Target, env domain.Activation, packages []string) error {
	cmd := base(target) + " uninstall -y " + targetFlag(env) + " " + shell.Join(packages...)
	_, err := m.must(domain.WithEcho(ctx), target, cmd)
	return err
}

// PipInstall installs a pip requirements file into env.
func (m *Manager) PipInstall(ctx context.Context, target domain.Target, env domain.Activation, file string) error {
	cmd := ActivateCommand(target, env) + " && pip install -r " + shell.Quote(file)
	_, err := m.must(domain.WithEcho(ctx), target, cmd)
	return err
}

// Unpack extracts a conda-pack tarball into dir and fixes up its prefixes.
func (m *Manager) Unpack(ctx context.Context, target domain.Target, pack, dir string) (domain.Activation, error) {
	env := domain.ByPath(dir)
	cmd := "mkdir -p " + shell.Quote(dir) +
		" && tar -xzf " + shell.Quote(pack) + " -C " + shell.Quote(dir) +
		" && " + ActivateCommand(target, env) +
		" && conda-unpack"
	if _, err := m.must(domain.WithEcho(ctx), target, cmd); err != nil {
		return domain.Activation{}, err
	}
	return env, nil
}

// Exec runs cmd inside env. The exit code is reported through the result.
func (m *Manager) Exec(ctx context.Context, target domain.Target, env domain.Activation, cmd string) (domain.CommandResult, error) {
	return m.run(domain.WithEcho(ctx), target, ActivateCommand(target, env)+" && "+cmd)
}

func where(target domain.Target) string {
	if target.IsRemote() {
		return "remote '" + target.Name() + "'"
	}
	return "local machine"
}
