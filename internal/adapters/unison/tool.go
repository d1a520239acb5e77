// Package unison drives the unison file synchronizer between a project
// directory and its copy on a remote.
package unison

import (
	"context"
	"path/filepath"
	"strconv"
	"strings"

	"go.trai.ch/reso/internal/adapters/shell"
	"go.trai.ch/reso/internal/core/domain"
	"go.trai.ch/reso/internal/core/ports"
)

// InstallerURL is the static unison build installed on remotes.
const InstallerURL = "https://github.com/bcpierce00/unison/releases/download/v2.51.3/unison-v2.51.3+ocaml-4.10.0+x86_64.linux.static.tar.gz"

var _ ports.FileSync = (*Tool)(nil)

// Tool runs unison on the local machine against a remote replica.
type Tool struct {
	local  ports.LocalExecutor
	remote ports.RemoteExecutor
	global ports.GlobalStore
	logger ports.Logger
}

// NewTool returns a Tool.
func NewTool(local ports.LocalExecutor, remote ports.RemoteExecutor, global ports.GlobalStore, logger ports.Logger) *Tool {
	return &Tool{local: local, remote: remote, global: global, logger: logger}
}

// Command returns the unison command line syncing localPath with remotePath.
func (t *Tool) Command(remote domain.Remote, localPath, remotePath string, flags []string) (string, error) {
	cfg, err := t.global.Load()
	if err != nil {
		return "", err
	}

	sshArgs := "-p " + strconv.Itoa(remote.Port)
	if cfg.SSHKey != "" {
		sshArgs += " -i " + cfg.SSHKey
	} else {
		sshArgs += " -o ServerAliveInterval=" + strconv.Itoa(domain.ServerAliveInterval)
	}

	var b strings.Builder
	b.WriteString("export PATH=~/bin:$PATH && export UNISON=")
	b.WriteString(shell.Quote(domain.UnisonConfigDir(t.global.Home())))
	b.WriteString(" && unison ")
	b.WriteString(domain.UnisonProfile)
	b.WriteString(" " + shell.Quote(localPath))
	b.WriteString(" " + shell.Quote("ssh://"+remote.Address()+"/"+remotePath))
	b.WriteString(" -sshargs " + shell.Quote(sshArgs))
	b.WriteString(" -servercmd " + shell.Quote(remote.UnisonPath))
	for _, f := range flags {
		b.WriteString(" " + f)
	}
	return b.String(), nil
}

// Prepare creates the remote project root.
func (t *Tool) Prepare(ctx context.Context, remote domain.Remote, remotePath string) error {
	cmd := "mkdir -p " + shell.Quote(remotePath)
	res, err := t.remote.Run(ctx, remote, cmd)
	if err != nil {
		return err
	}
	if !res.Succeeded() {
		return domain.NewCommandError(domain.RemoteTarget(remote), cmd, res)
	}
	return nil
}

// Sync runs unison once. Unison failures are returned through the result.
func (t *Tool) Sync(ctx context.Context, remote domain.Remote, localPath, remotePath string, flags []string) (domain.CommandResult, error) {
	cmd, err := t.Command(remote, localPath, remotePath, flags)
	if err != nil {
		return domain.CommandResult{}, err
	}
	t.logger.Debug("Syncing " + localPath + " with remote '" + remote.Name + "' at " + remotePath)
	return t.local.Run(ctx, cmd)
}

// TestServer checks that unison can reach its server on remote.
func (t *Tool) TestServer(ctx context.Context, remote domain.Remote, localPath string) error {
	cmd, err := t.Command(remote, localPath, "./"+filepath.Base(localPath), []string{"-testserver"})
	if err != nil {
		return err
	}
	res, err := t.local.Run(ctx, cmd)
	if err != nil {
		return err
	}
	if !res.Succeeded() {
		return &domain.TransportError{Remote: remote.Name, Output: res.Output}
	}
	return nil
}

// Install downloads the static unison build into the remote's ~/bin, where
// the default server command looks for it.
func (t *Tool) Install(ctx context.Context, remote domain.Remote) error {
	cmd := "mkdir -p ~/bin" +
		" && wget " + InstallerURL + " -O ~/bin/unison.tar.gz" +
		" && tar -xzf ~/bin/unison.tar.gz -C ~ bin/unison" +
		" && rm ~/bin/unison.tar.gz"
	res, err := t.remote.Run(domain.WithEcho(ctx), remote, cmd)
	if err != nil {
		return err
	}
	if !res.Succeeded() {
		return domain.NewCommandError(domain.RemoteTarget(remote), cmd, res)
	}
	return nil
}
