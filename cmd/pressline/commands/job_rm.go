package commands

import (
	"context"
	"fmt"

	"github.com/alecthomas/kingpin/v2"

	"github.com/makspress/pressline/internal/app/jobremove"
	"github.com/makspress/pressline/internal/storage/sqlite"
	"github.com/makspress/pressline/internal/ui"
)

type JobRmCommand struct {
	Cmd     *kingpin.CmdClause
	rootCmd *RootCommand

	jobID string
}

// NewJobRmCommand returns the job rm command.
func NewJobRmCommand(rootCmd *RootCommand, parent *kingpin.CmdClause) *JobRmCommand {
	c := &JobRmCommand{rootCmd: rootCmd}

	c.Cmd = parent.Command("rm", "Remove a print job.")
	c.Cmd.Arg("job-id", "Job ID.").Required().StringVar(&c.jobID)

	return c
}

func (c JobRmCommand) Name() string { return c.Cmd.FullCommand() }

func (c JobRmCommand) Run(ctx context.Context) error {
	logger := c.rootCmd.Logger

	// Ask before destroying anything.
	ok, err := c.rootCmd.Confirmer().Confirm(ctx, ui.ConfirmRequest{
		Title:       "Delete job",
		Message:     fmt.Sprintf("Job %s and its progress will be permanently removed.", c.jobID),
		ConfirmText: "Delete",
	})
	if err != nil {
		return fmt.Errorf("could not confirm removal: %w", err)
	}
	if !ok {
		c.rootCmd.Notifier().Notify(ui.Notification{
			Title:   "Removal cancelled",
			Message: fmt.Sprintf("Job %s was kept.", c.jobID),
			Variant: ui.VariantWarning,
		})
		return nil
	}

	// Initialize storage (SQLite).
	repo, err := sqlite.NewRepository(ctx, sqlite.RepositoryConfig{
		DBPath: c.rootCmd.DBPath,
		Logger: logger,
	})
	if err != nil {
		return fmt.Errorf("could not create repository: %w", err)
	}
	defer repo.Close()

	// Create remove service.
	svc, err := jobremove.NewService(jobremove.ServiceConfig{
		Repository: repo,
		Logger:     logger,
	})
	if err != nil {
		return fmt.Errorf("could not create service: %w", err)
	}

	// Execute remove.
	removed, err := svc.Run(ctx, jobremove.Request{JobID: c.jobID})
	if err != nil {
		return fmt.Errorf("could not remove job: %w", err)
	}

	c.rootCmd.Notifier().Notify(ui.Notification{
		Title:   "Job removed",
		Message: fmt.Sprintf("%s (%s) was deleted.", removed.ID, removed.Title),
		Variant: ui.VariantSuccess,
	})

	return nil
}
