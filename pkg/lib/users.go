package lib

import (
	"context"
	"fmt"

	"github.com/makspress/pressline/internal/app/login"
	"github.com/makspress/pressline/internal/app/register"
)

// Register creates a new account keyed by email.
func (c *Client) Register(ctx context.Context, name, email, password string) (*User, error) {
	svc, err := register.NewService(register.ServiceConfig{
		Repository: c.users,
		Logger:     c.logger,
	})
	if err != nil {
		return nil, fmt.Errorf("could not create service: %w", err)
	}

	user, err := svc.Run(ctx, register.Request{
		Name:     name,
		Email:    email,
		Password: password,
	})
	if err != nil {
		return nil, mapError(err)
	}

	result := fromInternalUser(*user)
	return &result, nil
}

// Login checks the credentials and returns the matching account. Unknown
// emails and wrong passwords both fail with [ErrNotValid], so the SDK cannot
// be used to enumerate accounts.
func (c *Client) Login(ctx context.Context, email, password string) (*User, error) {
	svc, err := login.NewService(login.ServiceConfig{
		Repository: c.users,
		Logger:     c.logger,
	})
	if err != nil {
		return nil, fmt.Errorf("could not create service: %w", err)
	}

	user, err := svc.Run(ctx, login.Request{Email: email, Password: password})
	if err != nil {
		return nil, mapError(err)
	}

	result := fromInternalUser(*user)
	return &result, nil
}
