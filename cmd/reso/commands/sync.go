package commands

import (
	"strings"
	"time"

	"github.com/spf13/cobra"
	"go.trai.ch/reso/internal/app"
)

func (c *CLI) newSyncCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "sync",
		Short: "Sync the project files, and optionally the environment, with a remote",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			f := cmd.Flags()
			opts := app.SyncOptions{}
			opts.Remote, _ = f.GetString("remote")
			opts.Env, _ = f.GetBool("env")
			opts.EnvName, _ = f.GetString("env-name")
			opts.Watch, _ = f.GetBool("watch")
			opts.Debounce, _ = f.GetDuration("debounce")
			return c.app.Sync(cmd.Context(), opts)
		},
	}
	addRemoteFlag(cmd)
	cmd.Flags().Bool("env", false, "Also bring the remote conda environment in line with the local one")
	cmd.Flags().String("env-name", "", "Use this remote environment from now on")
	cmd.Flags().BoolP("watch", "w", false, "Keep syncing the project files whenever they change")
	cmd.Flags().Duration("debounce", 500*time.Millisecond, "Quiet period before a change is synced in watch mode")
	return cmd
}

func (c *CLI) newRunCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "run COMMAND...",
		Short: "Run a command inside the local project environment",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.app.Run(cmd.Context(), strings.Join(args, " "))
		},
	}
}

func (c *CLI) newInstallCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "install PACKAGE...",
		Short: "Install conda packages locally and on remotes",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.app.Install(cmd.Context(), packageOptions(cmd, args))
		},
	}
	addPackageFlags(cmd)
	return cmd
}

func (c *CLI) newUninstallCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "uninstall PACKAGE...",
		Short: "Uninstall conda packages locally and on remotes",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.app.Uninstall(cmd.Context(), packageOptions(cmd, args))
		},
	}
	addPackageFlags(cmd)
	return cmd
}

func addPackageFlags(cmd *cobra.Command) {
	addRemoteFlag(cmd)
	cmd.Flags().BoolP("all-remotes", "a", false, "Change the environment on every configured remote")
	cmd.MarkFlagsMutuallyExclusive("remote", "all-remotes")
}

func packageOptions(cmd *cobra.Command, packages []string) app.PackageOptions {
	remote, _ := cmd.Flags().GetString("remote")
	all, _ := cmd.Flags().GetBool("all-remotes")
	return app.PackageOptions{Packages: packages, Remote: remote, AllRemotes: all}
}
