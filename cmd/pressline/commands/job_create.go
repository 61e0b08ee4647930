package commands

import (
	"context"
	"fmt"

	"github.com/alecthomas/kingpin/v2"

	"github.com/makspress/pressline/internal/app/jobcreate"
	"github.com/makspress/pressline/internal/model"
	"github.com/makspress/pressline/internal/storage/sqlite"
	"github.com/makspress/pressline/internal/ui"
)

type JobCreateCommand struct {
	Cmd     *kingpin.CmdClause
	rootCmd *RootCommand

	client   string
	title    string
	jobType  string
	quantity int
	priority string
}

// NewJobCreateCommand returns the job create command.
func NewJobCreateCommand(rootCmd *RootCommand, parent *kingpin.CmdClause) *JobCreateCommand {
	c := &JobCreateCommand{rootCmd: rootCmd}

	c.Cmd = parent.Command("create", "Create a new print job.")
	c.Cmd.Flag("client", "Client name.").Short('c').Required().StringVar(&c.client)
	c.Cmd.Flag("title", "Job title.").Short('t').Required().StringVar(&c.title)
	c.Cmd.Flag("type", "Job type (Academic, Trade, Promotional, Other).").Default(string(model.JobTypeOther)).StringVar(&c.jobType)
	c.Cmd.Flag("quantity", "Number of copies.").Default("1").IntVar(&c.quantity)
	c.Cmd.Flag("priority", "Job priority (Normal, Urgent).").Default(string(model.PriorityNormal)).StringVar(&c.priority)

	return c
}

func (c JobCreateCommand) Name() string { return c.Cmd.FullCommand() }

func (c JobCreateCommand) Run(ctx context.Context) error {
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

	// Create service.
	svc, err := jobcreate.NewService(jobcreate.ServiceConfig{
		Repository: repo,
		Logger:     logger,
	})
	if err != nil {
		return fmt.Errorf("could not create service: %w", err)
	}

	// Execute create.
	job, err := svc.Run(ctx, jobcreate.Request{Config: model.JobConfig{
		Client:   c.client,
		Title:    c.title,
		Type:     model.ParseJobType(c.jobType),
		Quantity: c.quantity,
		Priority: model.ParsePriority(c.priority),
	}})
	if err != nil {
		return fmt.Errorf("could not create job: %w", err)
	}

	c.rootCmd.Notifier().Notify(ui.Notification{
		Title:   "Job created",
		Message: fmt.Sprintf("%s for %s (%s)", job.ID, job.Client, job.Title),
		Variant: ui.VariantSuccess,
	})

	return nil
}
