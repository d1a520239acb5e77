package ports

import (
	"context"

	"go.trai.ch/reso/internal/core/domain"
)

// FileSync drives the external bidirectional file sync tool.
//
//go:generate go run go.uber.org/mock/mockgen -source=filesync.go -destination=mocks/mock_filesync.go -package=mocks
type FileSync interface {
	// Prepare creates the remote project root.
	Prepare(ctx context.Context, remote domain.Remote, remotePath string) error
	// Sync runs one sync between localPath and remotePath with extra flags.
	// Tool failures are reported through the result.
	Sync(ctx context.Context, remote domain.Remote, localPath, remotePath string, flags []string) (domain.CommandResult, error)
}

// Prompter asks the user for confirmation.
type Prompter interface {
	Confirm(question string, def bool) (bool, error)
}
