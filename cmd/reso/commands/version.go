package commands

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.trai.ch/reso/internal/build"
)

func (c *CLI) newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the application version",
		// version works without a writable home directory.
		PersistentPreRunE: func(*cobra.Command, []string) error { return nil },
		Run: func(cmd *cobra.Command, _ []string) {
			cmdo := cmd.OutOrStdout()
			_, _ = fmt.Fprintf(cmdo, "reso version %s (commit: %s, date: %s)\n", build.Version, build.Commit, build.Date)
		},
	}
}
