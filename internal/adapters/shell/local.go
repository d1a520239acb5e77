package shell

import (
	"context"
	"os"

	"go.trai.ch/reso/internal/core/domain"
	"go.trai.ch/zerr"
)

// LocalExecutor runs commands in a bash login shell on this machine, so that
// the user's conda initialization is loaded.
type LocalExecutor struct {
	runner *Runner
	getwd  func() (string, error)
}

// NewLocalExecutor creates a LocalExecutor running in the process working
// directory.
func NewLocalExecutor(runner *Runner) *LocalExecutor {
	return &LocalExecutor{runner: runner, getwd: os.Getwd}
}

// WithDir pins the working directory of every command.
func (e *LocalExecutor) WithDir(dir string) *LocalExecutor {
	e.getwd = func() (string, error) { return dir, nil }
	return e
}

// Run executes cmd and returns the output printed between the markers.
func (e *LocalExecutor) Run(ctx context.Context, cmd string) (domain.CommandResult, error) {
	dir, err := e.getwd()
	if err != nil {
		return domain.CommandResult{}, zerr.Wrap(err, "failed to determine working directory")
	}

	res, err := e.runner.Run(ctx, []string{"bash", "-l", "-c", Script(dir, cmd)})
	if err != nil {
		return res, err
	}

	out, err := Trim(res.Output)
	if err != nil {
		return res, err
	}
	res.Output = out
	return res, nil
}
