package domain

import (
	"fmt"
	"strings"
)

// Scope tells where a command ran.
type Scope uint8

const (
	// ScopeLocal is the machine reso runs on.
	ScopeLocal Scope = iota
	// ScopeRemote is an SSH-reachable execution host.
	ScopeRemote
)

// String returns the scope name.
func (s Scope) String() string {
	if s == ScopeRemote {
		return "remote"
	}
	return "local"
}

// CommandError reports an external command that exited non-zero or timed out.
// Its message always carries the command and the tool output verbatim.
type CommandError struct {
	Scope    Scope
	Remote   string
	Command  string
	ExitCode int
	Output   string
	TimedOut bool
}

// NewCommandError builds a CommandError from a finished command.
func NewCommandError(target Target, command string, res CommandResult) *CommandError {
	return &CommandError{
		Scope:    target.Scope(),
		Remote:   target.Name(),
		Command:  command,
		ExitCode: res.ExitCode,
		Output:   res.Output,
	}
}

func (e *CommandError) where() string {
	if e.Scope == ScopeRemote {
		return fmt.Sprintf("remote '%s'", e.Remote)
	}
	return "local machine"
}

// Error implements error.
func (e *CommandError) Error() string {
	if e.TimedOut {
		return fmt.Sprintf("command '%s' timed out on %s:\n\n%s", e.Command, e.where(), e.Output)
	}
	return fmt.Sprintf("command '%s' raised error on %s (exit code %d):\n\n%s",
		e.Command, e.where(), e.ExitCode, strings.TrimRight(e.Output, "\n"))
}

// Unwrap exposes ErrCommandTimeout for timed-out commands.
func (e *CommandError) Unwrap() error {
	if e.TimedOut {
		return ErrCommandTimeout
	}
	return nil
}

// StrategyError is a failure of a single strategy inside a chain.
type StrategyError struct {
	Strategy StrategyID
	Err      error
}

// Error implements error.
func (e *StrategyError) Error() string {
	return fmt.Sprintf("strategy %s failed: %v", e.Strategy, e.Err)
}

// Unwrap returns the underlying failure.
func (e *StrategyError) Unwrap() error {
	return e.Err
}

// TransportCategory classifies file transport failures.
type TransportCategory uint8

const (
	// TransportUnrecognized is any failure without a recovery path.
	TransportUnrecognized TransportCategory = iota
	// TransportArchivesMissing means the sync history is missing on one side.
	TransportArchivesMissing
	// TransportArchivesLocked means another sync holds the history locks.
	TransportArchivesLocked
	// TransportFastcheckRequired means a full content comparison is needed.
	TransportFastcheckRequired
)

// String returns the category name.
func (c TransportCategory) String() string {
	switch c {
	case TransportArchivesMissing:
		return "archives-missing"
	case TransportArchivesLocked:
		return "archives-locked"
	case TransportFastcheckRequired:
		return "fastcheck-required"
	default:
		return "unrecognized"
	}
}

// TransportError is a failed file transport run.
type TransportError struct {
	Category    TransportCategory
	Recoverable bool
	Remote      string
	Output      string
}

// Error implements error.
func (e *TransportError) Error() string {
	return fmt.Sprintf("could not run sync on remote '%s', the error message was:\n\n%s",
		e.Remote, strings.TrimRight(e.Output, "\n"))
}

// ChainError reports an exhausted strategy chain. It wraps the error of the
// last attempted strategy.
type ChainError struct {
	Chain    string
	Attempts []Attempt
	Err      error
}

// Error implements error.
func (e *ChainError) Error() string {
	tried := make([]string, 0, len(e.Attempts))
	for _, a := range e.Attempts {
		tried = append(tried, string(a.Strategy))
	}
	return fmt.Sprintf("%s exhausted all strategies (%s): %v", e.Chain, strings.Join(tried, ", "), e.Err)
}

// Unwrap returns the last strategy's error.
func (e *ChainError) Unwrap() error {
	return e.Err
}
