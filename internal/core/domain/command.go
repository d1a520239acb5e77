package domain

import (
	"context"
	"time"
)

// DefaultCommandTimeout bounds every external command.
const DefaultCommandTimeout = time.Hour

// CommandResult is the outcome of a finished external command. Output holds
// stdout and stderr combined.
type CommandResult struct {
	ExitCode int
	Output   string
}

// Succeeded reports whether the command exited with status zero.
func (r CommandResult) Succeeded() bool {
	return r.ExitCode == 0
}

// Target selects the machine a command runs on.
type Target struct {
	remote *Remote
}

// LocalTarget returns the target for the local machine.
func LocalTarget() Target {
	return Target{}
}

// RemoteTarget returns the target for the given remote.
func RemoteTarget(r Remote) Target {
	return Target{remote: &r}
}

// IsRemote reports whether the target is a remote.
func (t Target) IsRemote() bool {
	return t.remote != nil
}

// Remote returns the remote settings. It is the zero value for local targets.
func (t Target) Remote() Remote {
	if t.remote == nil {
		return Remote{}
	}
	return *t.remote
}

// Scope returns where commands for this target run.
func (t Target) Scope() Scope {
	if t.remote != nil {
		return ScopeRemote
	}
	return ScopeLocal
}

// Name returns the remote name, or an empty string for the local machine.
func (t Target) Name() string {
	if t.remote == nil {
		return ""
	}
	return t.remote.Name
}

type echoKey struct{}

// WithEcho marks commands run with ctx as user-facing: their output is shown
// at info level instead of debug.
func WithEcho(ctx context.Context) context.Context {
	return context.WithValue(ctx, echoKey{}, true)
}

// Echoed reports whether ctx was marked with WithEcho.
func Echoed(ctx context.Context) bool {
	v, _ := ctx.Value(echoKey{}).(bool)
	return v
}
