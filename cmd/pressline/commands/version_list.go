package commands

import (
	"context"
	"fmt"

	"github.com/alecthomas/kingpin/v2"

	"github.com/makspress/pressline/internal/app/versionlist"
	"github.com/makspress/pressline/internal/printer"
	"github.com/makspress/pressline/internal/storage/sqlite"
)

type VersionListCommand struct {
	Cmd     *kingpin.CmdClause
	rootCmd *RootCommand

	format string
}

// NewVersionListCommand returns the version list command.
func NewVersionListCommand(rootCmd *RootCommand, parent *kingpin.CmdClause) *VersionListCommand {
	c := &VersionListCommand{rootCmd: rootCmd}

	c.Cmd = parent.Command("list", "List manuscript versions, newest first.")
	c.Cmd.Flag("format", "Output format (table, json).").Default("table").EnumVar(&c.format, "table", "json")

	return c
}

func (c VersionListCommand) Name() string { return c.Cmd.FullCommand() }

func (c VersionListCommand) Run(ctx context.Context) error {
	logger := c.rootCmd.Logger

	// Initialize storage (SQLite).
	repo, err := sqlite.NewRepository(ctx, sqlite.RepositoryConfig{
		DBPath: c.rootCmd.DBPath,
		Logger: logger,
	})
	if err != nil {
		return fmt.Errorf("could not create repository: %w", err)
	}
	defer repo.Close()

	// Create list service.
	svc, err := versionlist.NewService(versionlist.ServiceConfig{
		Repository: repo,
		Logger:     logger,
	})
	if err != nil {
		return fmt.Errorf("could not create service: %w", err)
	}

	// Execute list.
	versions, err := svc.Run(ctx)
	if err != nil {
		return fmt.Errorf("could not list versions: %w", err)
	}

	// Print output.
	var p printer.Printer
	switch c.format {
	case "json":
		p = printer.NewJSONPrinter(c.rootCmd.Stdout)
	default: // table
		p = printer.NewTablePrinter(c.rootCmd.Stdout)
	}

	if err := p.PrintVersionList(versions); err != nil {
		return fmt.Errorf("could not print versions: %w", err)
	}

	return nil
}
