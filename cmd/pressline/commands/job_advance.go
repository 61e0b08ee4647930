package commands

import (
	"context"
	"fmt"

	"github.com/alecthomas/kingpin/v2"

	"github.com/makspress/pressline/internal/app/jobadvance"
	"github.com/makspress/pressline/internal/storage/sqlite"
	"github.com/makspress/pressline/internal/ui"
	"github.com/makspress/pressline/internal/workflow"
)

type JobAdvanceCommand struct {
	Cmd     *kingpin.CmdClause
	rootCmd *RootCommand

	jobID string
}

// NewJobAdvanceCommand returns the job advance command.
func NewJobAdvanceCommand(rootCmd *RootCommand, parent *kingpin.CmdClause) *JobAdvanceCommand {
	c := &JobAdvanceCommand{rootCmd: rootCmd}

	c.Cmd = parent.Command("advance", "Advance a job one step through the workflow.")
	c.Cmd.Arg("job-id", "Job ID.").Required().StringVar(&c.jobID)

	return c
}

func (c JobAdvanceCommand) Name() string { return c.Cmd.FullCommand() }

func (c JobAdvanceCommand) Run(ctx context.Context) error {
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

	// Create advance service.
	svc, err := jobadvance.NewService(jobadvance.ServiceConfig{
		Repository: repo,
		Engine:     engine,
		Logger:     logger,
	})
	if err != nil {
		return fmt.Errorf("could not create service: %w", err)
	}

	// Execute advance.
	resp, err := svc.Run(ctx, jobadvance.Request{JobID: c.jobID})
	if err != nil {
		return fmt.Errorf("could not advance job: %w", err)
	}

	notifier := c.rootCmd.Notifier()
	switch resp.Event.Kind {
	case workflow.EventMilestoneReached:
		notifier.Notify(ui.Notification{
			Title:   "Milestone reached",
			Message: fmt.Sprintf("%s finished the workflow at %s", resp.Job.ID, resp.Event.StageName),
			Variant: ui.VariantSuccess,
		})
	case workflow.EventStageAdvanced:
		notifier.Notify(ui.Notification{
			Title:   "Stage advanced",
			Message: fmt.Sprintf("%s moved to %s", resp.Job.ID, resp.Event.StageName),
			Variant: ui.VariantSuccess,
		})
	default:
		notifier.Notify(ui.Notification{
			Title:   "Sub-step completed",
			Message: fmt.Sprintf("%s is now at %s / %s", resp.Job.ID, resp.Event.StageName, resp.Event.SubStepLabel),
			Variant: ui.VariantSuccess,
		})
	}

	return nil
}
