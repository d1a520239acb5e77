package ports

import (
	"context"

	"go.trai.ch/reso/internal/core/domain"
)

// JobOptions are the resource flags of a wrapped job.
type JobOptions struct {
	Partition   string
	NTasks      string
	CPUsPerTask string
	Nodes       string
}

// JobScheduler passes job commands through to the remote batch system.
//
//go:generate go run go.uber.org/mock/mockgen -source=scheduler.go -destination=mocks/mock_scheduler.go -package=mocks
type JobScheduler interface {
	Run(ctx context.Context, remote domain.Remote, state domain.RemoteState, cmd string, opts JobOptions) (string, error)
	Submit(ctx context.Context, remote domain.Remote, state domain.RemoteState, script string) (string, error)
	Cancel(ctx context.Context, remote domain.Remote, jobID string) (string, error)
	Status(ctx context.Context, remote domain.Remote, jobID string) (string, error)
	List(ctx context.Context, remote domain.Remote, allUsers bool) (string, error)
}
