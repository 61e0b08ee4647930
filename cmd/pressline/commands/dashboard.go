package commands

import (
	"context"
	"fmt"

	"github.com/alecthomas/kingpin/v2"

	"github.com/makspress/pressline/internal/app/dashboard"
	"github.com/makspress/pressline/internal/model"
	"github.com/makspress/pressline/internal/printer"
	"github.com/makspress/pressline/internal/storage/sqlite"
)

type DashboardCommand struct {
	Cmd     *kingpin.CmdClause
	rootCmd *RootCommand

	search    string
	jobType   string
	stageName string
	sort      string
	format    string
}

// NewDashboardCommand returns the dashboard command.
func NewDashboardCommand(rootCmd *RootCommand, app *kingpin.Application) *DashboardCommand {
	c := &DashboardCommand{rootCmd: rootCmd}

	c.Cmd = app.Command("dashboard", "Show the production board with stage counters and workflow tracks.")
	c.Cmd.Flag("search", "Case-insensitive substring match on id, client and title.").Short('s').StringVar(&c.search)
	c.Cmd.Flag("type", "Filter rows by job type.").Default(model.FilterAll).StringVar(&c.jobType)
	c.Cmd.Flag("stage", "Filter rows by stage name.").Default(model.FilterAll).StringVar(&c.stageName)
	c.Cmd.Flag("sort", "Sort order (newest, oldest).").Default("newest").EnumVar(&c.sort, "newest", "oldest")
	c.Cmd.Flag("format", "Output format (table, json).").Default("table").EnumVar(&c.format, "table", "json")

	return c
}

func (c DashboardCommand) Name() string { return c.Cmd.FullCommand() }

func (c DashboardCommand) Run(ctx context.Context) error {
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

	engine, err := c.rootCmd.Engine(ctx)
	if err != nil {
		return err
	}

	// Create dashboard service.
	svc, err := dashboard.NewService(dashboard.ServiceConfig{
		Repository: repo,
		Engine:     engine,
		Logger:     logger,
	})
	if err != nil {
		return fmt.Errorf("could not create service: %w", err)
	}

	// Execute dashboard projection.
	d, err := svc.Run(ctx, dashboard.Request{Filter: model.JobFilter{
		Search:    c.search,
		Type:      c.jobType,
		StageName: c.stageName,
		Sort:      parseSortOrder(c.sort),
	}})
	if err != nil {
		return fmt.Errorf("could not build dashboard: %w", err)
	}

	// Print output.
	var p printer.Printer
	switch c.format {
	case "json":
		p = printer.NewJSONPrinter(c.rootCmd.Stdout)
	default: // table
		p = printer.NewTablePrinter(c.rootCmd.Stdout)
	}

	if err := p.PrintDashboard(*d); err != nil {
		return fmt.Errorf("could not print dashboard: %w", err)
	}

	return nil
}
