package cli

import (
	"fmt"

	"github.com/alexanderramin/fieldmarks/internal/cli/formatter"
	"github.com/alexanderramin/fieldmarks/internal/diagnostic"
	"github.com/spf13/cobra"
)

func newOverlapsCmd(app *App) *cobra.Command {
	var datasetPath, areaA, areaB string

	cmd := &cobra.Command{
		Use:   "overlaps",
		Short: "List birds with field marks in both of two areas",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			report, err := app.Diagnostics.Overlaps(cmd.Context(), datasetPath, areaA, areaB)
			if err != nil {
				return err
			}
			fmt.Fprint(cmd.OutOrStdout(), formatter.FormatOverlaps(report))
			return nil
		},
	}

	addDatasetFlag(cmd.Flags(), &datasetPath, app.Config.DatasetPath)
	cmd.Flags().StringVar(&areaA, "area-a", diagnostic.DefaultAreaA, "First area")
	cmd.Flags().StringVar(&areaB, "area-b", diagnostic.DefaultAreaB, "Second area")

	return cmd
}
