package ports

import (
	"context"

	"go.trai.ch/reso/internal/core/domain"
)

// LocalExecutor runs shell commands on the local machine.
//
//go:generate go run go.uber.org/mock/mockgen -source=executor.go -destination=mocks/mock_executor.go -package=mocks
type LocalExecutor interface {
	// Run executes cmd in a login shell and waits for it to finish.
	//
	// A non-zero exit code is reported through the result, not the error.
	// The error is non-nil only when the command could not be started or
	// exceeded its timeout.
	Run(ctx context.Context, cmd string) (domain.CommandResult, error)
}

// RemoteExecutor runs shell commands on a remote over SSH.
type RemoteExecutor interface {
	// Run executes cmd in a login shell on the remote, with the same result
	// contract as LocalExecutor.Run. Unreachable hosts yield domain.ErrSSH.
	Run(ctx context.Context, remote domain.Remote, cmd string) (domain.CommandResult, error)
}
