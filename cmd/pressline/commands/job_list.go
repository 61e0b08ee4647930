package commands

import (
	"context"
	"fmt"

	"github.com/alecthomas/kingpin/v2"

	"github.com/makspress/pressline/internal/app/joblist"
	"github.com/makspress/pressline/internal/model"
	"github.com/makspress/pressline/internal/printer"
	"github.com/makspress/pressline/internal/storage/sqlite"
)

type JobListCommand struct {
	Cmd     *kingpin.CmdClause
	rootCmd *RootCommand

	search    string
	jobType   string
	stageName string
	sort      string
	format    string
}

// NewJobListCommand returns the job list command.
func NewJobListCommand(rootCmd *RootCommand, parent *kingpin.CmdClause) *JobListCommand {
	c := &JobListCommand{rootCmd: rootCmd}

	c.Cmd = parent.Command("list", "List print jobs.")
	c.Cmd.Flag("search", "Case-insensitive substring match on id, client and title.").Short('s').StringVar(&c.search)
	c.Cmd.Flag("type", "Filter by job type.").Default(model.FilterAll).StringVar(&c.jobType)
	c.Cmd.Flag("stage", "Filter by stage name.").Default(model.FilterAll).StringVar(&c.stageName)
	c.Cmd.Flag("sort", "Sort order (newest, oldest).").Default("newest").EnumVar(&c.sort, "newest", "oldest")
	c.Cmd.Flag("format", "Output format (table, json).").Default("table").EnumVar(&c.format, "table", "json")

	return c
}

func (c JobListCommand) Name() string { return c.Cmd.FullCommand() }

func (c JobListCommand) Run(ctx context.Context) error {
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

	// Create list service.
	svc, err := joblist.NewService(joblist.ServiceConfig{
		Repository: repo,
		Engine:     engine,
		Logger:     logger,
	})
	if err != nil {
		return fmt.Errorf("could not create service: %w", err)
	}

	// Execute list.
	jobs, err := svc.Run(ctx, joblist.Request{Filter: model.JobFilter{
		Search:    c.search,
		Type:      c.jobType,
		StageName: c.stageName,
		Sort:      parseSortOrder(c.sort),
	}})
	if err != nil {
		return fmt.Errorf("could not list jobs: %w", err)
	}

	// Print output.
	var p printer.Printer
	switch c.format {
	case "json":
		p = printer.NewJSONPrinter(c.rootCmd.Stdout)
	default: // table
		p = printer.NewTablePrinter(c.rootCmd.Stdout)
	}

	if err := p.PrintJobList(jobs); err != nil {
		return fmt.Errorf("could not print list: %w", err)
	}

	return nil
}
