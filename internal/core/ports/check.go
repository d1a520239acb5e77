package ports

import (
	"context"

	"go.trai.ch/reso/internal/core/domain"
)

// DependencyChecker verifies that the external tools reso drives are
// installed in supported versions.
//
//go:generate go run go.uber.org/mock/mockgen -source=check.go -destination=mocks/mock_check.go -package=mocks
type DependencyChecker interface {
	// CheckLocal fails with domain.ErrMissingDependency or
	// domain.ErrDependencyVersion on the first unusable local tool.
	CheckLocal(ctx context.Context) error
	// CheckRemote returns the tools missing on remote. Version mismatches
	// are returned as errors.
	CheckRemote(ctx context.Context, remote domain.Remote) ([]domain.Tool, error)
	// InstallConda installs miniconda under the remote's conda install path.
	InstallConda(ctx context.Context, remote domain.Remote) error
}
