package ports

import (
	"context"

	"go.trai.ch/reso/internal/core/domain"
)

// PackageManager maps environment operations to package manager commands on
// a target. Every method issues exactly one command; a non-zero exit is
// returned as *domain.CommandError carrying the tool output.
//
//go:generate go run go.uber.org/mock/mockgen -source=package_manager.go -destination=mocks/mock_package_manager.go -package=mocks
type PackageManager interface {
	// EnvExists reports whether env can be activated on target.
	EnvExists(ctx context.Context, target domain.Target, env domain.Activation) (bool, error)
	// CreateEnv creates an empty named environment.
	CreateEnv(ctx context.Context, target domain.Target, name string) error
	// RemoveEnv deletes an environment with everything installed in it.
	RemoveEnv(ctx context.Context, target domain.Target, env domain.Activation) error
	// InstallFile installs the package list in file into env.
	InstallFile(ctx context.Context, target domain.Target, env domain.Activation, file string) error
	// ApplyManifest updates env from an environment YAML manifest.
	ApplyManifest(ctx context.Context, target domain.Target, env domain.Activation, file string) error
	// Install installs packages into env.
	Install(ctx context.Context, target domain.Target, env domain.Activation, packages []string) error
	// Uninstall removes packages from env.
	Uninstall(ctx context.Context, target domain.Target, env domain.Activation, packages []string) error
	// PipInstall installs a pip requirements file into env.
	PipInstall(ctx context.Context, target domain.Target, env domain.Activation, file string) error
	// Unpack relocates a portable pack into dir and returns its path activation.
	Unpack(ctx context.Context, target domain.Target, pack, dir string) (domain.Activation, error)
	// Exec runs cmd inside env.
	Exec(ctx context.Context, target domain.Target, env domain.Activation, cmd string) (domain.CommandResult, error)
}

// Exporter writes descriptor layers of a local environment to files.
type Exporter interface {
	// Export writes layer of env to dest. Each call is independent and
	// read-only with respect to the environment's user packages.
	Export(ctx context.Context, env domain.Activation, layer domain.Layer, dest string) error
}
