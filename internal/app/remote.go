package app

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"go.trai.ch/reso/internal/adapters/shell" //nolint:depguard // Quoting helper
	"go.trai.ch/reso/internal/core/domain"
	"go.trai.ch/zerr"
	"gopkg.in/yaml.v3"
)

// Folders removed from a remote by RemoteRemove.
const (
	remoteProjectsDir = "~/" + domain.RemoteProjectsDirName
	remoteCondaDir    = "~/miniconda"
	remoteUnisonDir   = "~/.unison"
)

// RemoteOptions configuration for the RemoteAdd and RemoteUpdate methods.
// Zero fields of Remote keep their current (or default) value.
type RemoteOptions struct {
	Remote        domain.Remote
	RemoteEnvName string
	RemotePath    string
	NoRemoteSetup bool
	AssumeYes     bool
}

// RemoteAdd registers a new remote, sets up SSH access and checks its
// dependencies. Inside a project the remote also gets a ledger record and,
// unless setup is skipped, its environment.
func (a *App) RemoteAdd(ctx context.Context, opts RemoteOptions) error {
	remote := opts.Remote.WithDefaults()
	if err := remote.Validate(); err != nil {
		return err
	}
	if err := a.Registry.Add(remote); err != nil {
		return err
	}
	a.assumeYes(opts.AssumeYes)

	if !opts.NoRemoteSetup {
		ok, err := a.Prompter.Confirm("Do you want reso to use its own SSH key for accessing the remote?", true)
		if err != nil {
			return err
		}
		if ok {
			if err := a.setupSSH(ctx, remote); err != nil {
				return err
			}
		}
		a.Logger.Info("Running checks on new remote '" + remote.Name + "'...")
		if err := a.checkRemote(ctx, remote, false); err != nil {
			a.Logger.Error(err)
			keep := false
			if !opts.AssumeYes {
				keep, err = a.Prompter.Confirm("Some of the remote checks have failed. "+
					"Do you still want to keep the new remote configuration '"+remote.Name+"'?", false)
				if err != nil {
					return err
				}
			}
			if !keep {
				return a.Registry.Delete(remote.Name)
			}
		}
	}
	a.Logger.Info("Remote " + remote.Name + " added!")

	return a.setupProjectRemote(ctx, remote, opts, !opts.NoRemoteSetup)
}

// RemoteUpdate changes the settings of an existing remote and checks it
// again.
func (a *App) RemoteUpdate(ctx context.Context, opts RemoteOptions) error {
	current, err := a.Registry.Resolve(opts.Remote.Name)
	if err != nil {
		return err
	}
	remote := merge(current, opts.Remote)
	a.Logger.Debug(fmt.Sprintf("The new remote config is: %+v", remote))
	a.assumeYes(opts.AssumeYes)

	a.Logger.Info("Running checks on updated remote '" + remote.Name + "'...")
	if err := a.checkRemote(ctx, remote, false); err != nil {
		return err
	}
	if err := a.setupProjectRemote(ctx, remote, opts, true); err != nil {
		return err
	}
	if err := a.Registry.Put(remote); err != nil {
		return err
	}
	a.Logger.Info("Remote " + remote.Name + " successfully modified!")
	return nil
}

func merge(current, update domain.Remote) domain.Remote {
	set := func(dst *string, v string) {
		if v != "" {
			*dst = v
		}
	}
	set(&current.Hostname, update.Hostname)
	set(&current.Username, update.Username)
	set(&current.Scheduler, update.Scheduler)
	set(&current.CondaLoadCommand, update.CondaLoadCommand)
	set(&current.CondaInstallPath, update.CondaInstallPath)
	set(&current.UnisonPath, update.UnisonPath)
	set(&current.OS, update.OS)
	set(&current.Arch, update.Arch)
	if update.Port != 0 {
		current.Port = update.Port
	}
	return current
}

// setupProjectRemote records the remote in the ledger of the current project
// and optionally creates its environment. Outside a project it does nothing.
func (a *App) setupProjectRemote(ctx context.Context, remote domain.Remote, opts RemoteOptions, createEnv bool) error {
	project, err := a.project()
	if isNotAProject(err) {
		a.Logger.Debug("Command was not executed from a project folder, no project set up was done")
		return nil
	}
	if err != nil {
		return err
	}

	ledger, state, err := a.remoteState(project, remote)
	if err != nil {
		return err
	}
	patch := domain.RemoteStatePatch{}
	if opts.RemoteEnvName != "" {
		env, err := domain.ParseActivation(opts.RemoteEnvName)
		if err != nil {
			return err
		}
		directive := env.String()
		patch.EnvName = &directive
	}
	if opts.RemotePath != "" {
		patch.FilesPath = &opts.RemotePath
	}
	if patch.EnvName != nil || patch.FilesPath != nil {
		if state, err = ledger.Upsert(remote.Name, patch); err != nil {
			return err
		}
	}
	if !createEnv {
		a.Logger.Info("Skipped setup for remote")
		return nil
	}
	return a.ensureRemoteEnv(ctx, remote, state, true)
}

// RemoteRemove drops a remote from the registry. With purge, the synced
// projects and the conda installation on the remote are deleted as well.
func (a *App) RemoteRemove(ctx context.Context, name string, purge bool) error {
	remote, err := a.Registry.Resolve(name)
	if err != nil {
		return err
	}
	if purge {
		for _, dir := range []string{remoteProjectsDir, remoteCondaDir} {
			if err := a.removeRemoteDir(ctx, remote, dir); err != nil {
				return err
			}
		}
	}
	if err := a.removeRemoteDir(ctx, remote, remoteUnisonDir); err != nil {
		a.Logger.Warn(fmt.Sprintf("Could not remove %s folder, the error message was: %v", remoteUnisonDir, err))
	}
	if err := a.Registry.Delete(remote.Name); err != nil {
		return err
	}
	if project, err := a.project(); err == nil {
		if err := a.Ledgers.Open(project).Delete(remote.Name); err != nil {
			return err
		}
	}
	a.Logger.Info("Removed remote '" + remote.Name + "'!")
	return nil
}

// RemoteList writes the configured remotes.
func (a *App) RemoteList(_ context.Context, w io.Writer) error {
	remotes, err := a.Registry.List()
	if err != nil {
		return err
	}
	if len(remotes) == 0 {
		_, err := fmt.Fprintln(w, "No remotes configured.")
		return err
	}
	db := make(map[string]domain.Remote, len(remotes))
	for _, r := range remotes {
		db[r.Name] = r
	}
	data, err := yaml.Marshal(db)
	if err != nil {
		return zerr.Wrap(err, "failed to render remotes")
	}
	_, err = w.Write(data)
	return err
}

// SetupSSH authorizes the reso SSH key on a remote and makes it the key of
// every later connection.
func (a *App) SetupSSH(ctx context.Context, name string) error {
	remote, err := a.Registry.Resolve(name)
	if err != nil {
		return err
	}
	return a.setupSSH(ctx, remote)
}

func (a *App) setupSSH(ctx context.Context, remote domain.Remote) error {
	keyPath := filepath.Join(a.Global.Home(), ".ssh", domain.SSHKeyName)
	host, _ := os.Hostname()
	pub, err := a.Keys.Ensure(keyPath, domain.AppName+"@"+host)
	if err != nil {
		return err
	}

	a.Logger.Info("Will set up now remote '" + remote.Name + "' to accept the new SSH key. " +
		"Please enter your password when prompted")
	cmd := "mkdir -p .ssh && echo " + shell.Quote(pub) + " >> .ssh/authorized_keys"
	res, err := a.Remote.Run(domain.WithEcho(ctx), remote, cmd)
	if err != nil {
		return err
	}
	if !res.Succeeded() {
		return domain.NewCommandError(domain.RemoteTarget(remote), cmd, res)
	}

	cfg, err := a.Global.Load()
	if err != nil {
		return err
	}
	cfg.SSHKey = keyPath
	return a.Global.Save(cfg)
}
