// Package commands implements the CLI commands for reso.
package commands

import (
	"context"
	"fmt"
	"io"

	"github.com/spf13/cobra"
	"go.trai.ch/reso/internal/app"
	"go.trai.ch/reso/internal/build"
)

// CLI represents the command line interface for reso.
type CLI struct {
	app     Application
	rootCmd *cobra.Command
}

// Application represents the application logic interface.
type Application interface {
	Setup(ctx context.Context) error
	ConfigureLogging(verbose, json bool)

	Init(ctx context.Context, opts app.InitOptions) error
	Teardown(ctx context.Context, opts app.TeardownOptions) error
	Check(ctx context.Context, opts app.CheckOptions) error
	Info(ctx context.Context, w io.Writer) error
	Status(ctx context.Context, w io.Writer) error
	SetupSSH(ctx context.Context, remote string) error

	RemoteAdd(ctx context.Context, opts app.RemoteOptions) error
	RemoteUpdate(ctx context.Context, opts app.RemoteOptions) error
	RemoteRemove(ctx context.Context, name string, purge bool) error
	RemoteList(ctx context.Context, w io.Writer) error

	Sync(ctx context.Context, opts app.SyncOptions) error
	Run(ctx context.Context, command string) error
	Install(ctx context.Context, opts app.PackageOptions) error
	Uninstall(ctx context.Context, opts app.PackageOptions) error

	JobRun(ctx context.Context, opts app.JobRunOptions) error
	JobSubmit(ctx context.Context, remote, script string) error
	JobCancel(ctx context.Context, remote, jobID string) error
	JobStatus(ctx context.Context, remote, jobID string) error
	JobList(ctx context.Context, remote string, allUsers bool) error

	ArchiveCreate(ctx context.Context, opts app.ArchiveCreateOptions) error
	ArchiveLoad(ctx context.Context, opts app.ArchiveLoadOptions) error
}

// New creates a new CLI instance with the given app.
func New(a Application) *CLI {
	rootCmd := &cobra.Command{
		Use: "reso",
		Short: "Replicate a project and its conda environment to remote hosts " +
			"and restore it from archives",
		SilenceUsage:  true,
		SilenceErrors: true,
		Version:       build.Version,
	}

	rootCmd.SetVersionTemplate(fmt.Sprintf(
		"{{.Name}} version {{.Version}} (commit: %s, date: %s)\n",
		build.Commit,
		build.Date,
	))
	rootCmd.InitDefaultVersionFlag()
	rootCmd.Flags().Lookup("version").Usage = "Print the application version"

	rootCmd.InitDefaultHelpFlag()
	rootCmd.Flags().Lookup("help").Usage = "Show help for command"

	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "Show debug output, including subprocess output")
	rootCmd.PersistentFlags().Bool("json", false, "Write log records as JSON")

	c := &CLI{
		app:     a,
		rootCmd: rootCmd,
	}

	rootCmd.PersistentPreRunE = func(cmd *cobra.Command, _ []string) error {
		verbose, _ := cmd.Flags().GetBool("verbose")
		json, _ := cmd.Flags().GetBool("json")
		c.app.ConfigureLogging(verbose, json)
		return c.app.Setup(cmd.Context())
	}

	rootCmd.AddCommand(c.newInitCmd())
	rootCmd.AddCommand(c.newTeardownCmd())
	rootCmd.AddCommand(c.newCheckCmd())
	rootCmd.AddCommand(c.newInfoCmd())
	rootCmd.AddCommand(c.newStatusCmd())
	rootCmd.AddCommand(c.newSetupSSHCmd())
	rootCmd.AddCommand(c.newRemoteCmd())
	rootCmd.AddCommand(c.newSyncCmd())
	rootCmd.AddCommand(c.newRunCmd())
	rootCmd.AddCommand(c.newInstallCmd())
	rootCmd.AddCommand(c.newUninstallCmd())
	rootCmd.AddCommand(c.newJobCmd())
	rootCmd.AddCommand(c.newArchiveCmd())
	rootCmd.AddCommand(c.newVersionCmd())

	return c
}

// Execute runs the root command with the given context.
func (c *CLI) Execute(ctx context.Context) error {
	c.rootCmd.SetContext(ctx)
	return c.rootCmd.Execute()
}

// SetArgs sets the arguments for the root command. Used for testing.
func (c *CLI) SetArgs(args []string) {
	c.rootCmd.SetArgs(args)
}

// SetOutput sets the output and error streams for the root command. Used for testing.
func (c *CLI) SetOutput(out, err io.Writer) {
	c.rootCmd.SetOut(out)
	c.rootCmd.SetErr(err)
}
