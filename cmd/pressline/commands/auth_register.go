package commands

import (
	"context"
	"fmt"

	"github.com/alecthomas/kingpin/v2"

	"github.com/makspress/pressline/internal/app/register"
	"github.com/makspress/pressline/internal/storage/sqlite"
	"github.com/makspress/pressline/internal/ui"
)

type AuthRegisterCommand struct {
	Cmd     *kingpin.CmdClause
	rootCmd *RootCommand

	name     string
	email    string
	password string
}

// NewAuthRegisterCommand returns the auth register command.
func NewAuthRegisterCommand(rootCmd *RootCommand, parent *kingpin.CmdClause) *AuthRegisterCommand {
	c := &AuthRegisterCommand{rootCmd: rootCmd}

	c.Cmd = parent.Command("register", "Register a new user.")
	c.Cmd.Flag("name", "Full name.").Short('n').Required().StringVar(&c.name)
	c.Cmd.Flag("email", "Email address, used as the account key.").Short('e').Required().StringVar(&c.email)
	c.Cmd.Flag("password", "Password.").Short('p').Required().StringVar(&c.password)

	return c
}

func (c AuthRegisterCommand) Name() string { return c.Cmd.FullCommand() }

func (c AuthRegisterCommand) Run(ctx context.Context) error {
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

	// Create register service.
	svc, err := register.NewService(register.ServiceConfig{
		Repository: repo,
		Logger:     logger,
	})
	if err != nil {
		return fmt.Errorf("could not create service: %w", err)
	}

	// Execute register.
	user, err := svc.Run(ctx, register.Request{
		Name:     c.name,
		Email:    c.email,
		Password: c.password,
	})
	if err != nil {
		return fmt.Errorf("could not register user: %w", err)
	}

	c.rootCmd.Notifier().Notify(ui.Notification{
		Title:   "Account created",
		Message: fmt.Sprintf("Welcome, %s! You can now log in as %s.", user.Name, user.Email),
		Variant: ui.VariantSuccess,
	})

	return nil
}
