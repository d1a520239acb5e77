package commands

import (
	"os"
	"strings"

	"github.com/spf13/cobra"
	"go.trai.ch/reso/internal/adapters/deposit" //nolint:depguard // Deposit defaults
	"go.trai.ch/reso/internal/app"
	"go.trai.ch/reso/internal/core/ports"
)

func (c *CLI) newArchiveCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "archive",
		Short: "Create and load project archives",
	}
	cmd.AddCommand(c.newArchiveCreateCmd())
	cmd.AddCommand(c.newArchiveLoadCmd())
	return cmd
}

func (c *CLI) newArchiveCreateCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "create",
		Short: "Archive the project files and environment",
		Long: "Writes the project files and every exportable layer of the local environment to an archive, " +
			"stored as a local file, an S3 object or a Yareta deposit.",
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			f := cmd.Flags()
			opts := app.ArchiveCreateOptions{}
			opts.Filename, _ = f.GetString("filename")
			opts.S3URL, _ = f.GetString("s3-url")

			req := ports.DepositRequest{}
			req.BaseURL, _ = f.GetString("base-url")
			req.AccessToken, _ = f.GetString("access-token")
			req.OrgUnitID, _ = f.GetString("organizational-unit-id")
			req.Title, _ = f.GetString("title")
			req.Year, _ = f.GetString("year")
			req.Description, _ = f.GetString("description")
			req.Access, _ = f.GetString("deposit-access")
			req.LicenseID, _ = f.GetString("license-id")
			if kw, _ := f.GetString("keywords"); kw != "" {
				for _, k := range strings.Split(kw, ",") {
					req.Keywords = append(req.Keywords, strings.TrimSpace(k))
				}
			}
			opts.Deposit = req
			return c.app.ArchiveCreate(cmd.Context(), opts)
		},
	}
	f := cmd.Flags()
	f.StringP("filename", "f", "", "Write the archive to this file")
	f.String("s3-url", "", "Upload the archive to this s3://bucket/key")
	f.StringP("organizational-unit-id", "o", os.Getenv(deposit.OrgUnitEnv),
		"Deposit the archive in this Yareta organizational unit")
	f.String("base-url", envOr(deposit.BaseURLEnv, deposit.DefaultBaseURL), "Base url of the Yareta API")
	f.StringP("access-token", "a", os.Getenv(deposit.AccessTokenEnv), "Personal Yareta access token")
	f.StringP("title", "t", "", "Title of the deposit")
	f.String("year", "", "Year of the deposit")
	f.String("description", "", "Description of the deposit")
	f.String("deposit-access", deposit.DefaultAccess, "Access level of the deposit")
	f.String("license-id", deposit.DefaultLicense, "License of the deposit")
	f.String("keywords", "", "Comma-separated keywords of the deposit")
	return cmd
}

func (c *CLI) newArchiveLoadCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "load",
		Short: "Replace the project files and environment with an archive",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			yes, _ := cmd.Flags().GetBool("yes")
			return c.app.ArchiveLoad(cmd.Context(), app.ArchiveLoadOptions{
				Source:    archiveSource(cmd),
				AssumeYes: yes,
			})
		},
	}
	addArchiveSourceFlags(cmd)
	cmd.Flags().BoolP("yes", "y", false, "Load the archive without a confirmation prompt")
	return cmd
}

func addArchiveSourceFlags(cmd *cobra.Command) {
	cmd.Flags().StringP("filename", "f", "", "Load the archive from this file")
	cmd.Flags().StringP("url", "u", "", "Load the archive from this http(s) url")
	cmd.Flags().String("s3-url", "", "Load the archive from this s3://bucket/key")
	cmd.MarkFlagsMutuallyExclusive("filename", "url", "s3-url")
}

func archiveSource(cmd *cobra.Command) app.ArchiveSource {
	var src app.ArchiveSource
	src.Filename, _ = cmd.Flags().GetString("filename")
	src.URL, _ = cmd.Flags().GetString("url")
	src.S3URL, _ = cmd.Flags().GetString("s3-url")
	return src
}

func envOr(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}
