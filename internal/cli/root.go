package cli

import (
	"github.com/alexanderramin/fieldmarks/internal/config"
	"github.com/alexanderramin/fieldmarks/internal/service"
	"github.com/spf13/cobra"
)

// CatalogOpener opens the catalog database at path. The returned func
// releases it.
type CatalogOpener func(path string) (service.CatalogService, func() error, error)

// App holds the configuration and services used by CLI commands.
type App struct {
	Config config.Config

	Generate    service.GenerateService
	Diagnostics service.DiagnosticService
	Audit       service.AuditService

	// OpenCatalog is only called by catalog subcommands, so a generate run
	// never touches the database.
	OpenCatalog CatalogOpener

	// IsInteractive reports whether prompts may be shown. Nil means never.
	IsInteractive func() bool
	// PickBirds asks the user to choose from names. Defaults to a huh form.
	PickBirds func(names []string) ([]string, error)
}

// NewRootCmd creates the top-level "fieldmarks" command and registers all
// subcommands against the provided App.
func NewRootCmd(app *App) *cobra.Command {
	root := &cobra.Command{
		Use:           "fieldmarks",
		Short:         "Plan GUI field-mark assets and their generation prompts",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	root.AddCommand(
		newGenerateCmd(app),
		newOverlapsCmd(app),
		newAuditCmd(app),
		newCatalogCmd(app),
	)

	return root
}

func (a *App) interactive() bool {
	return a.IsInteractive != nil && a.IsInteractive()
}
