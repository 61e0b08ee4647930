package commands

import (
	"context"
	"fmt"

	"github.com/alecthomas/kingpin/v2"

	"github.com/makspress/pressline/internal/app/versionremove"
	"github.com/makspress/pressline/internal/storage/sqlite"
	"github.com/makspress/pressline/internal/ui"
)

type VersionRmCommand struct {
	Cmd     *kingpin.CmdClause
	rootCmd *RootCommand

	versionID string
	all       bool
}

// NewVersionRmCommand returns the version rm command.
func NewVersionRmCommand(rootCmd *RootCommand, parent *kingpin.CmdClause) *VersionRmCommand {
	c := &VersionRmCommand{rootCmd: rootCmd}

	c.Cmd = parent.Command("rm", "Remove a manuscript version or clear the whole history.")
	c.Cmd.Arg("version-id", "Manuscript version ID.").StringVar(&c.versionID)
	c.Cmd.Flag("all", "Clear the whole version history.").BoolVar(&c.all)

	return c
}

func (c VersionRmCommand) Name() string { return c.Cmd.FullCommand() }

func (c VersionRmCommand) Run(ctx context.Context) error {
	logger := c.rootCmd.Logger

	title := "Delete version"
	message := fmt.Sprintf("Version %s will be permanently removed.", c.versionID)
	if c.all {
		title = "Clear version history"
		message = "All manuscript versions will be permanently removed."
	}

	// Ask before destroying anything.
	ok, err := c.rootCmd.Confirmer().Confirm(ctx, ui.ConfirmRequest{
		Title:       title,
		Message:     message,
		ConfirmText: "Delete",
	})
	if err != nil {
		return fmt.Errorf("could not confirm removal: %w", err)
	}
	if !ok {
		c.rootCmd.Notifier().Notify(ui.Notification{
			Title:   "Removal cancelled",
			Message: "The version history was kept.",
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
	svc, err := versionremove.NewService(versionremove.ServiceConfig{
		Repository: repo,
		Logger:     logger,
	})
	if err != nil {
		return fmt.Errorf("could not create service: %w", err)
	}

	// Execute remove.
	if err := svc.Run(ctx, versionremove.Request{VersionID: c.versionID, All: c.all}); err != nil {
		return fmt.Errorf("could not remove version: %w", err)
	}

	msg := fmt.Sprintf("Version %s was deleted.", c.versionID)
	if c.all {
		msg = "The whole version history was cleared."
	}
	c.rootCmd.Notifier().Notify(ui.Notification{
		Title:   "Version removed",
		Message: msg,
		Variant: ui.VariantSuccess,
	})

	return nil
}
