package cli

import (
	"fmt"
	"path/filepath"

	"github.com/alexanderramin/fieldmarks/internal/cli/formatter"
	"github.com/alexanderramin/fieldmarks/internal/manifest"
	"github.com/spf13/cobra"
)

func newAuditCmd(app *App) *cobra.Command {
	var manifestPath, assetsDir string

	cmd := &cobra.Command{
		Use:   "audit",
		Short: "Check which manifest assets exist as PNG files",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if assetsDir == "" {
				assetsDir = filepath.Dir(manifestPath)
			}
			result, err := app.Audit.Audit(cmd.Context(), manifestPath, assetsDir)
			if err != nil {
				return err
			}
			fmt.Fprint(cmd.OutOrStdout(), formatter.FormatAudit(result.Report))
			return nil
		},
	}

	defaultManifest := filepath.Join(app.Config.OutDir, manifest.ManifestFile)
	cmd.Flags().StringVar(&manifestPath, "manifest", defaultManifest, "Path to manifest.json")
	addAssetsDirFlag(cmd.Flags(), &assetsDir, "")

	return cmd
}
