package shell

import (
	"context"
	"errors"
	"os"
	"os/exec"
	"strconv"
	"strings"

	"go.trai.ch/reso/internal/core/domain"
	"go.trai.ch/reso/internal/core/ports"
	"go.trai.ch/zerr"
)

// sshFailureRules are output fragments meaning the host was never reached.
var sshFailureRules = []string{
	"Could not resolve hostname",
	"Connection refused",
}

// RemoteExecutor runs commands on a remote through the ssh client, inside a
// bash login shell on the remote side.
type RemoteExecutor struct {
	local  ports.LocalExecutor
	global ports.GlobalStore
	logger ports.Logger

	getenv   func(string) string
	lookPath func(string) (string, error)
}

// NewRemoteExecutor creates a RemoteExecutor. The ssh client itself is
// started through local.
func NewRemoteExecutor(local ports.LocalExecutor, global ports.GlobalStore, logger ports.Logger) *RemoteExecutor {
	return &RemoteExecutor{
		local:    local,
		global:   global,
		logger:   logger,
		getenv:   os.Getenv,
		lookPath: exec.LookPath,
	}
}

// Run executes cmd on remote.
func (e *RemoteExecutor) Run(ctx context.Context, remote domain.Remote, cmd string) (domain.CommandResult, error) {
	cfg, err := e.global.Load()
	if err != nil {
		return domain.CommandResult{}, err
	}

	e.logger.Debug("Running on remote '" + remote.Name + "': " + cmd)
	line := Join(e.argv(remote, cfg.SSHKey, cmd)...)
	res, err := e.local.Run(ctx, line)
	if err != nil {
		var cmdErr *domain.CommandError
		if errors.As(err, &cmdErr) {
			cmdErr.Scope = domain.ScopeRemote
			cmdErr.Remote = remote.Name
			cmdErr.Command = cmd
		}
		return res, err
	}

	if !res.Succeeded() {
		for _, rule := range sshFailureRules {
			if strings.Contains(res.Output, rule) {
				return res, zerr.With(zerr.Wrap(domain.ErrSSH, strings.TrimSpace(res.Output)), "remote", remote.Name)
			}
		}
	}
	return res, nil
}

func (e *RemoteExecutor) argv(remote domain.Remote, key, cmd string) []string {
	remote = remote.WithDefaults()
	var argv []string
	if key == "" && e.getenv("SSHPASS") != "" {
		if _, err := e.lookPath("sshpass"); err == nil {
			argv = append(argv, "sshpass", "-e")
		}
	}
	argv = append(argv,
		"ssh", remote.Address(),
		"-p", strconv.Itoa(remote.Port),
		"-o", "ServerAliveInterval="+strconv.Itoa(domain.ServerAliveInterval),
	)
	if key != "" {
		argv = append(argv, "-i", key)
	}
	return append(argv, "bash -l -c "+Quote(cmd))
}
