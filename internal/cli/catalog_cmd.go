package cli

import (
	"fmt"
	"path/filepath"

	"github.com/alexanderramin/fieldmarks/internal/cli/formatter"
	"github.com/alexanderramin/fieldmarks/internal/db"
	"github.com/alexanderramin/fieldmarks/internal/manifest"
	"github.com/alexanderramin/fieldmarks/internal/service"
	"github.com/spf13/cobra"
)

// NewSQLiteCatalogOpener opens catalog databases with db.OpenDB.
func NewSQLiteCatalogOpener(observers ...service.UseCaseObserver) CatalogOpener {
	return func(path string) (service.CatalogService, func() error, error) {
		database, err := db.OpenDB(path)
		if err != nil {
			return nil, nil, err
		}
		svc := service.NewCatalogService(db.NewSQLiteUnitOfWork(database), observers...)
		return svc, database.Close, nil
	}
}

func newCatalogCmd(app *App) *cobra.Command {
	var catalogPath string

	cmd := &cobra.Command{
		Use:   "catalog",
		Short: "Track generated assets in a SQLite catalog",
	}
	addCatalogFlag(cmd.PersistentFlags(), &catalogPath, app.Config.CatalogPath)

	cmd.AddCommand(
		newCatalogImportCmd(app, &catalogPath),
		newCatalogStatusCmd(app, &catalogPath),
	)
	return cmd
}

func newCatalogImportCmd(app *App, catalogPath *string) *cobra.Command {
	var manifestPath string

	cmd := &cobra.Command{
		Use:   "import",
		Short: "Record a manifest and its assets in the catalog",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return withCatalog(app, *catalogPath, func(svc service.CatalogService) error {
				result, err := svc.Import(cmd.Context(), manifestPath)
				if err != nil {
					return err
				}
				fmt.Fprint(cmd.OutOrStdout(), formatter.FormatCatalogImport(result.Import, result.AssetCount, result.Replaced))
				return nil
			})
		},
	}

	cmd.Flags().StringVar(&manifestPath, "manifest", filepath.Join(app.Config.OutDir, manifest.ManifestFile), "Path to manifest.json")
	return cmd
}

func newCatalogStatusCmd(app *App, catalogPath *string) *cobra.Command {
	var manifestID, assetsDir string

	cmd := &cobra.Command{
		Use:   "status",
		Short: "Re-audit an assets directory and show catalog counts",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return withCatalog(app, *catalogPath, func(svc service.CatalogService) error {
				status, err := svc.Status(cmd.Context(), manifestID, assetsDir)
				if err != nil {
					return err
				}
				fmt.Fprint(cmd.OutOrStdout(), formatter.FormatCatalogStatus(status.Import, status.Counts))
				return nil
			})
		},
	}

	cmd.Flags().StringVar(&manifestID, "manifest-id", "", "Import to check (default: most recent)")
	addAssetsDirFlag(cmd.Flags(), &assetsDir, app.Config.OutDir)
	return cmd
}

func withCatalog(app *App, path string, fn func(service.CatalogService) error) (err error) {
	if app.OpenCatalog == nil {
		return fmt.Errorf("catalog is not configured")
	}
	svc, closeFn, err := app.OpenCatalog(path)
	if err != nil {
		return fmt.Errorf("opening catalog: %w", err)
	}
	defer func() {
		if cerr := closeFn(); cerr != nil && err == nil {
			err = cerr
		}
	}()
	return fn(svc)
}
