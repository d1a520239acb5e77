// Package transport runs the bidirectional file sync with a remote and
// recovers from the known transient failures of the sync tool.
package transport

import (
	"context"
	"fmt"
	"regexp"
	"time"

	"go.trai.ch/reso/internal/core/domain"
	"go.trai.ch/reso/internal/core/ports"
	"go.trai.ch/zerr"
)

// Rule maps a failure pattern in the sync tool output to its recovery.
type Rule struct {
	Category domain.TransportCategory
	Pattern  *regexp.Regexp
	// Flags are appended to the retried invocation.
	Flags []string
	// Confirm asks the user before retrying.
	Confirm bool
}

// Rules lists recoverable failures in precedence order.
var Rules = []Rule{
	{
		Category: domain.TransportArchivesMissing,
		Pattern:  regexp.MustCompile(`Archive .* is MISSING`),
		Flags:    []string{"-ignorearchives"},
	},
	{
		Category: domain.TransportArchivesLocked,
		Pattern:  regexp.MustCompile(`the archives are locked`),
		Flags:    []string{"-ignorelocks"},
		Confirm:  true,
	},
	{
		Category: domain.TransportFastcheckRequired,
		Pattern:  regexp.MustCompile(`Try running once with the fastcheck option set to 'no'`),
		Flags:    []string{"-fastcheck", "false"},
	},
}

// Classify returns the first rule matching output.
func Classify(output string) (Rule, bool) {
	for _, r := range Rules {
		if r.Pattern.MatchString(output) {
			return r, true
		}
	}
	return Rule{Category: domain.TransportUnrecognized}, false
}

const lockedNotice = "The sync archives are locked for remote '%s'. This can happen if a previous sync " +
	"was stopped before completion, or if another sync with the remote is in progress. " +
	"Ignoring the locks is unsafe if another sync is still running."

// Request describes one file sync.
type Request struct {
	Remote    domain.Remote
	LocalPath string
	Ledger    ports.Ledger
}

// Handler runs file syncs.
type Handler struct {
	sync     ports.FileSync
	prompter ports.Prompter
	logger   ports.Logger
	now      func() time.Time
}

// NewHandler creates a Handler.
func NewHandler(sync ports.FileSync, prompter ports.Prompter, logger ports.Logger) *Handler {
	return &Handler{sync: sync, prompter: prompter, logger: logger, now: time.Now}
}

// WithClock replaces the clock used for sync timestamps.
func (h *Handler) WithClock(now func() time.Time) *Handler {
	h.now = now
	return h
}

// Sync synchronizes the project files with the remote. A recognized failure
// is retried exactly once with its recovery flags; a failing retry is fatal.
// On success LastFilesSync is recorded in the ledger.
func (h *Handler) Sync(ctx context.Context, req Request) (*domain.RemoteState, error) {
	state, err := req.Ledger.Ensure(req.Remote.Name)
	if err != nil {
		return nil, err
	}

	if err := h.sync.Prepare(ctx, req.Remote, state.FilesPath); err != nil {
		return nil, err
	}

	h.logger.Info(fmt.Sprintf("Syncing files with remote '%s'", req.Remote.Name))
	res, err := h.sync.Sync(ctx, req.Remote, req.LocalPath, state.FilesPath, nil)
	if err != nil {
		return nil, err
	}

	if !res.Succeeded() {
		if err := h.recover(ctx, req, state.FilesPath, res); err != nil {
			return nil, err
		}
	}

	now := h.now().UTC()
	return req.Ledger.Upsert(req.Remote.Name, domain.RemoteStatePatch{LastFilesSync: &now})
}

func (h *Handler) recover(ctx context.Context, req Request, remotePath string, failed domain.CommandResult) error {
	rule, ok := Classify(failed.Output)
	if !ok {
		return fatal(req.Remote, domain.TransportUnrecognized, failed)
	}

	if rule.Confirm {
		h.logger.Info(fmt.Sprintf(lockedNotice, req.Remote.Name))
		yes, err := h.prompter.Confirm("Do you want to continue with the current sync?", true)
		if err != nil {
			return err
		}
		if !yes {
			return zerr.Wrap(domain.ErrSyncDeclined, fmt.Sprintf("remote '%s'", req.Remote.Name))
		}
	} else {
		h.logger.Debug(fmt.Sprintf("Encountered %s sync error, running the sync again with %v", rule.Category, rule.Flags))
	}

	res, err := h.sync.Sync(ctx, req.Remote, req.LocalPath, remotePath, rule.Flags)
	if err != nil {
		return err
	}
	if !res.Succeeded() {
		category, _ := Classify(res.Output)
		return fatal(req.Remote, category.Category, res)
	}
	return nil
}

func fatal(remote domain.Remote, category domain.TransportCategory, res domain.CommandResult) error {
	return &domain.TransportError{
		Category:    category,
		Recoverable: category != domain.TransportUnrecognized,
		Remote:      remote.Name,
		Output:      res.Output,
	}
}
