package commands

import (
	"github.com/spf13/cobra"
	"go.trai.ch/reso/internal/app"
	"go.trai.ch/reso/internal/core/domain"
)

func (c *CLI) newRemoteCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "remote",
		Short: "Manage the remote hosts",
	}
	cmd.AddCommand(c.newRemoteAddCmd())
	cmd.AddCommand(c.newRemoteUpdateCmd())
	cmd.AddCommand(c.newRemoteRemoveCmd())
	cmd.AddCommand(c.newRemoteListCmd())
	return cmd
}

func (c *CLI) newRemoteAddCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "add NAME",
		Short: "Add a remote and check its dependencies",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.app.RemoteAdd(cmd.Context(), remoteOptions(cmd, args[0]))
		},
	}
	addRemoteSettingsFlags(cmd)
	cmd.Flags().Bool("no-remote-setup", false, "Skip SSH setup, checks and environment creation")
	_ = cmd.MarkFlagRequired("hostname")
	_ = cmd.MarkFlagRequired("username")
	return cmd
}

func (c *CLI) newRemoteUpdateCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "update NAME",
		Short: "Change the settings of a remote",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.app.RemoteUpdate(cmd.Context(), remoteOptions(cmd, args[0]))
		},
	}
	addRemoteSettingsFlags(cmd)
	return cmd
}

func addRemoteSettingsFlags(cmd *cobra.Command) {
	f := cmd.Flags()
	// -h is taken by help.
	f.StringP("hostname", "H", "", "Hostname of the remote")
	f.StringP("username", "u", "", "User on the remote")
	f.IntP("port", "p", 0, "SSH port of the remote (default 22)")
	f.String("scheduler", "", "Job scheduler of the remote (default slurm)")
	f.String("conda-load-command", "", "Command that makes conda available on the remote")
	f.String("conda-install-path", "", "Folder conda is installed into on the remote")
	f.String("unison-path", "", "Folder of the unison binary on the remote")
	f.String("platform", "", "Operating system of the remote (default linux)")
	f.String("arch", "", "CPU architecture of the remote (default x86_64)")
	f.String("remote-env-name", "", "Conda environment of the current project on the remote")
	f.String("remote-path", "", "Folder of the current project on the remote")
	f.BoolP("yes", "y", false, "Answer every prompt with yes")
}

func remoteOptions(cmd *cobra.Command, name string) app.RemoteOptions {
	f := cmd.Flags()
	r := domain.Remote{Name: name}
	r.Hostname, _ = f.GetString("hostname")
	r.Username, _ = f.GetString("username")
	r.Port, _ = f.GetInt("port")
	r.Scheduler, _ = f.GetString("scheduler")
	r.CondaLoadCommand, _ = f.GetString("conda-load-command")
	r.CondaInstallPath, _ = f.GetString("conda-install-path")
	r.UnisonPath, _ = f.GetString("unison-path")
	r.OS, _ = f.GetString("platform")
	r.Arch, _ = f.GetString("arch")

	opts := app.RemoteOptions{Remote: r}
	opts.RemoteEnvName, _ = f.GetString("remote-env-name")
	opts.RemotePath, _ = f.GetString("remote-path")
	opts.NoRemoteSetup, _ = f.GetBool("no-remote-setup")
	opts.AssumeYes, _ = f.GetBool("yes")
	return opts
}

func (c *CLI) newRemoteRemoveCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "remove NAME",
		Short: "Remove a remote",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			purge, _ := cmd.Flags().GetBool("purge")
			return c.app.RemoteRemove(cmd.Context(), args[0], purge)
		},
	}
	cmd.Flags().Bool("purge", false, "Also delete the synced projects and the conda installation on the remote")
	return cmd
}

func (c *CLI) newRemoteListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List the configured remotes",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return c.app.RemoteList(cmd.Context(), cmd.OutOrStdout())
		},
	}
}
