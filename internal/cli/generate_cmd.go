package cli

import (
	"fmt"

	"github.com/alexanderramin/fieldmarks/internal/cli/formatter"
	"github.com/alexanderramin/fieldmarks/internal/prompt"
	"github.com/alexanderramin/fieldmarks/internal/service"
	"github.com/spf13/cobra"
)

func newGenerateCmd(app *App) *cobra.Command {
	var (
		datasetPath string
		shape       string
		birds       []string
		areas       []string
		outDir      string
		stylePath   string
		dryRun      bool
	)

	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Write manifest.json and prompts.txt for the selected birds",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			if len(birds) == 0 {
				if !app.interactive() {
					return service.ErrNoSubjects
				}
				picked, err := pickBirds(cmd, app, datasetPath)
				if err != nil {
					return err
				}
				birds = picked
			}

			style, err := prompt.LoadStyle(stylePath)
			if err != nil {
				return err
			}

			req := service.GenerateRequest{
				DatasetPath: datasetPath,
				Shape:       shape,
				Birds:       birds,
				Areas:       areas,
				OutDir:      outDir,
				Style:       style,
			}

			var result *service.GenerateResult
			if dryRun {
				result, err = app.Generate.Plan(ctx, req)
			} else {
				result, err = app.Generate.Generate(ctx, req)
			}
			if err != nil {
				return err
			}

			fmt.Fprint(cmd.OutOrStdout(), formatter.FormatGenerate(result.Summary, result.Paths))
			if len(result.Collisions) > 0 {
				fmt.Fprintln(cmd.OutOrStdout(), formatter.Warning("Asset names collide: "+formatter.List(result.Collisions)))
			}
			return nil
		},
	}

	fs := cmd.Flags()
	addDatasetFlag(fs, &datasetPath, app.Config.DatasetPath)
	addShapeFlag(fs, &shape, app.Config.Shape)
	addSelectionFlags(fs, &birds, &areas)
	fs.StringVar(&outDir, "out-dir", app.Config.OutDir, "Output directory")
	addStyleFlag(fs, &stylePath, app.Config.StylePath)
	fs.BoolVar(&dryRun, "dry-run", false, "Plan and print the summary without writing files")

	return cmd
}

func pickBirds(cmd *cobra.Command, app *App, datasetPath string) ([]string, error) {
	names, err := app.Generate.ListBirds(cmd.Context(), datasetPath)
	if err != nil {
		return nil, err
	}
	if len(names) == 0 {
		return nil, fmt.Errorf("dataset %s has no birds", datasetPath)
	}
	pick := app.PickBirds
	if pick == nil {
		pick = runBirdPicker
	}
	picked, err := pick(names)
	if err != nil {
		return nil, err
	}
	if len(picked) == 0 {
		return nil, service.ErrNoSubjects
	}
	return picked, nil
}
