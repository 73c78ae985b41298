package main

import (
	"fmt"
	"os"

	"github.com/alexanderramin/fieldmarks/internal/cli"
	"github.com/alexanderramin/fieldmarks/internal/config"
	"github.com/alexanderramin/fieldmarks/internal/service"
	"github.com/mattn/go-isatty"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	cfg := config.LoadConfig()

	logger, err := config.NewLogger(cfg)
	if err != nil {
		return err
	}
	defer func() { _ = logger.Sync() }()

	observer := service.NewZapUseCaseObserver(logger)

	app := &cli.App{
		Config:      cfg,
		Generate:    service.NewGenerateService(logger, observer),
		Diagnostics: service.NewDiagnosticService(observer),
		Audit:       service.NewAuditService(observer),
		OpenCatalog: cli.NewSQLiteCatalogOpener(observer),
	}

	// Detect interactive terminal for the bird picker.
	app.IsInteractive = func() bool {
		return isatty.IsTerminal(os.Stdin.Fd()) || isatty.IsCygwinTerminal(os.Stdin.Fd())
	}

	return cli.NewRootCmd(app).Execute()
}
