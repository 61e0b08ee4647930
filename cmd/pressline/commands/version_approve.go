package commands

import (
	"context"
	"fmt"

	"github.com/alecthomas/kingpin/v2"

	"github.com/makspress/pressline/internal/app/versionapprove"
	"github.com/makspress/pressline/internal/storage/sqlite"
	"github.com/makspress/pressline/internal/ui"
)

type VersionApproveCommand struct {
	Cmd     *kingpin.CmdClause
	rootCmd *RootCommand

	versionID string
}

// NewVersionApproveCommand returns the version approve command.
func NewVersionApproveCommand(rootCmd *RootCommand, parent *kingpin.CmdClause) *VersionApproveCommand {
	c := &VersionApproveCommand{rootCmd: rootCmd}

	c.Cmd = parent.Command("approve", "Approve a manuscript version.")
	c.Cmd.Arg("version-id", "Manuscript version ID.").Required().StringVar(&c.versionID)

	return c
}

func (c VersionApproveCommand) Name() string { return c.Cmd.FullCommand() }

func (c VersionApproveCommand) Run(ctx context.Context) error {
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

	// Create approve service.
	svc, err := versionapprove.NewService(versionapprove.ServiceConfig{
		Repository: repo,
		Logger:     logger,
	})
	if err != nil {
		return fmt.Errorf("could not create service: %w", err)
	}

	// Execute approve.
	version, err := svc.Run(ctx, versionapprove.Request{VersionID: c.versionID})
	if err != nil {
		return fmt.Errorf("could not approve version: %w", err)
	}

	c.rootCmd.Notifier().Notify(ui.Notification{
		Title:   "Version approved",
		Message: fmt.Sprintf("%s (%s) is now approved.", version.ID, version.FileName),
		Variant: ui.VariantSuccess,
	})

	return nil
}
