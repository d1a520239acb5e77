package commands

import (
	"strings"

	"github.com/spf13/cobra"
	"go.trai.ch/reso/internal/app"
)

func (c *CLI) newJobCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "job",
		Short: "Run and manage batch jobs on a remote",
	}
	cmd.PersistentFlags().StringP("remote", "r", "", "Name of the remote, may be omitted when only one is configured")
	cmd.AddCommand(c.newJobRunCmd())
	cmd.AddCommand(c.newJobSubmitCmd())
	cmd.AddCommand(c.newJobCancelCmd())
	cmd.AddCommand(c.newJobStatusCmd())
	cmd.AddCommand(c.newJobListCmd())
	return cmd
}

func (c *CLI) newJobRunCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "run COMMAND...",
		Short: "Sync the project, then run a command as a batch job in the remote environment",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			f := cmd.Flags()
			opts := app.JobRunOptions{Command: strings.Join(args, " ")}
			opts.Remote, _ = f.GetString("remote")
			opts.Partition, _ = f.GetString("partition")
			opts.NTasks, _ = f.GetString("ntasks")
			opts.CPUsPerTask, _ = f.GetString("cpus-per-task")
			opts.Nodes, _ = f.GetString("nodes")
			return c.app.JobRun(cmd.Context(), opts)
		},
	}
	cmd.Flags().StringP("partition", "p", "debug-cpu", "Partition to run the job on")
	cmd.Flags().StringP("ntasks", "n", "1", "Number of tasks")
	cmd.Flags().StringP("cpus-per-task", "c", "1", "Number of CPUs per task")
	cmd.Flags().String("nodes", "", "Number of nodes")
	return cmd
}

func (c *CLI) newJobSubmitCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "submit SCRIPT",
		Short: "Submit a batch script of the project",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			remote, _ := cmd.Flags().GetString("remote")
			return c.app.JobSubmit(cmd.Context(), remote, args[0])
		},
	}
}

func (c *CLI) newJobCancelCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "cancel JOB_ID",
		Short: "Cancel a job",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			remote, _ := cmd.Flags().GetString("remote")
			return c.app.JobCancel(cmd.Context(), remote, args[0])
		},
	}
}

func (c *CLI) newJobStatusCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "status JOB_ID",
		Short: "Show the details of a job",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			remote, _ := cmd.Flags().GetString("remote")
			return c.app.JobStatus(cmd.Context(), remote, args[0])
		},
	}
}

func (c *CLI) newJobListCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List the queued and running jobs",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			remote, _ := cmd.Flags().GetString("remote")
			all, _ := cmd.Flags().GetBool("all-users")
			return c.app.JobList(cmd.Context(), remote, all)
		},
	}
	cmd.Flags().BoolP("all-users", "a", false, "List the jobs of every user")
	return cmd
}
