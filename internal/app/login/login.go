package login

import (
	"context"
	"errors"
	"fmt"

	"github.com/makspress/pressline/internal/log"
	"github.com/makspress/pressline/internal/model"
	"github.com/makspress/pressline/internal/storage"
)

// ServiceConfig is the configuration for the login service.
type ServiceConfig struct {
	Repository storage.UserRepository
	Logger     log.Logger
}

func (c *ServiceConfig) defaults() error {
	if c.Repository == nil {
		return fmt.Errorf("repository is required")
	}
	if c.Logger == nil {
		c.Logger = log.Noop
	}
	c.Logger = c.Logger.WithValues(log.Kv{"svc": "app.Login"})
	return nil
}

// Service checks credentials against the user store. Comparison is exact
// string equality, matching the original system's plaintext model.
type Service struct {
	repo   storage.UserRepository
	logger log.Logger
}

// NewService creates a new login service.
func NewService(cfg ServiceConfig) (*Service, error) {
	if err := cfg.defaults(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	return &Service{
		repo:   cfg.Repository,
		logger: cfg.Logger,
	}, nil
}

// Request represents the login request parameters.
type Request struct {
	Email    string
	Password string
}

// Run validates the credentials and returns the matching user. Unknown
// users and wrong passwords both fail with the same error so the CLI can't
// be used to enumerate accounts.
func (s *Service) Run(ctx context.Context, req Request) (*model.User, error) {
	if req.Email == "" || req.Password == "" {
		return nil, fmt.Errorf("email and password are required: %w", model.ErrNotValid)
	}

	user, err := s.repo.GetUserByEmail(ctx, req.Email)
	if err != nil {
		if errors.Is(err, model.ErrNotFound) {
			return nil, fmt.Errorf("invalid credentials: %w", model.ErrNotValid)
		}
		return nil, fmt.Errorf("could not look up user: %w", err)
	}

	if user.Password != req.Password {
		return nil, fmt.Errorf("invalid credentials: %w", model.ErrNotValid)
	}

	s.logger.Infof("User logged in: %s", user.Email)

	return user, nil
}
