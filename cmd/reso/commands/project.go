package commands

import (
	"github.com/spf13/cobra"
	"go.trai.ch/reso/internal/app"
)

func (c *CLI) newInitCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "init",
		Short: "Create a project in the current directory",
		Long: "Creates the project configuration folder .reso, then creates or links the local conda " +
			"environment, or restores both from an archive, and prepares every configured remote.",
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			f := cmd.Flags()
			opts := app.InitOptions{}
			opts.EnvName, _ = f.GetString("env-name")
			opts.RemoteEnvName, _ = f.GetString("remote-env-name")
			opts.RemotePath, _ = f.GetString("remote-path")
			opts.Archive = archiveSource(cmd)
			opts.AssumeYes, _ = f.GetBool("yes")
			opts.NoRemoteSetup, _ = f.GetBool("no-remote-setup")
			return c.app.Init(cmd.Context(), opts)
		},
	}
	cmd.Flags().String("env-name", "", "Local conda environment of the project, created if it does not exist")
	cmd.Flags().String("remote-env-name", "", "Conda environment used on remotes, created if it does not exist")
	cmd.Flags().String("remote-path", "", "Project folder on the remotes, created if it does not exist")
	addArchiveSourceFlags(cmd)
	cmd.Flags().BoolP("yes", "y", false, "Answer every prompt with yes")
	cmd.Flags().Bool("no-remote-setup", false, "Skip syncing project files and environment to remotes")
	return cmd
}

func (c *CLI) newTeardownCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "teardown",
		Short: "Remove the project environments and metadata",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			skipLocal, _ := cmd.Flags().GetBool("skip-local")
			skipRemotes, _ := cmd.Flags().GetBool("skip-remotes")
			return c.app.Teardown(cmd.Context(), app.TeardownOptions{
				SkipLocal:   skipLocal,
				SkipRemotes: skipRemotes,
			})
		},
	}
	cmd.Flags().Bool("skip-local", false, "Keep the local environment and project metadata")
	cmd.Flags().Bool("skip-remotes", false, "Keep the remote environments and project folders")
	return cmd
}

func (c *CLI) newCheckCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "check",
		Short: "Check the local and remote dependencies",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			raise, _ := cmd.Flags().GetBool("raise-on-error")
			return c.app.Check(cmd.Context(), app.CheckOptions{RaiseOnError: raise})
		},
	}
	cmd.Flags().Bool("raise-on-error", false, "Fail on missing remote tools instead of offering to install them")
	return cmd
}

func (c *CLI) newInfoCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "info",
		Short: "Show the global and project configuration",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return c.app.Info(cmd.Context(), cmd.OutOrStdout())
		},
	}
}

func (c *CLI) newStatusCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "status",
		Short: "Show the sync state of the project with every remote",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return c.app.Status(cmd.Context(), cmd.OutOrStdout())
		},
	}
}

func (c *CLI) newSetupSSHCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "setup-ssh",
		Short: "Authorize the reso SSH key on a remote",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			remote, _ := cmd.Flags().GetString("remote")
			return c.app.SetupSSH(cmd.Context(), remote)
		},
	}
	addRemoteFlag(cmd)
	return cmd
}

func addRemoteFlag(cmd *cobra.Command) {
	cmd.Flags().StringP("remote", "r", "", "Name of the remote, may be omitted when only one is configured")
}
