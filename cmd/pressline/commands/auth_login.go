package commands

import (
	"context"
	"fmt"

	"github.com/alecthomas/kingpin/v2"

	"github.com/makspress/pressline/internal/app/login"
	"github.com/makspress/pressline/internal/storage/sqlite"
	"github.com/makspress/pressline/internal/ui"
)

type AuthLoginCommand struct {
	Cmd     *kingpin.CmdClause
	rootCmd *RootCommand

	email    string
	password string
}

// NewAuthLoginCommand returns the auth login command.
func NewAuthLoginCommand(rootCmd *RootCommand, parent *kingpin.CmdClause) *AuthLoginCommand {
	c := &AuthLoginCommand{rootCmd: rootCmd}

	c.Cmd = parent.Command("login", "Check credentials against the user store.")
	c.Cmd.Flag("email", "Email address.").Short('e').Required().StringVar(&c.email)
	c.Cmd.Flag("password", "Password.").Short('p').Required().StringVar(&c.password)

	return c
}

func (c AuthLoginCommand) Name() string { return c.Cmd.FullCommand() }

func (c AuthLoginCommand) Run(ctx context.Context) error {
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

	// Create login service.
	svc, err := login.NewService(login.ServiceConfig{
		Repository: repo,
		Logger:     logger,
	})
	if err != nil {
		return fmt.Errorf("could not create service: %w", err)
	}

	// Execute login.
	user, err := svc.Run(ctx, login.Request{
		Email:    c.email,
		Password: c.password,
	})
	if err != nil {
		return fmt.Errorf("could not log in: %w", err)
	}

	c.rootCmd.Notifier().Notify(ui.Notification{
		Title:   "Logged in",
		Message: fmt.Sprintf("Welcome back, %s!", user.Name),
		Variant: ui.VariantSuccess,
	})

	return nil
}
