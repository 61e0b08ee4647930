package register

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/makspress/pressline/internal/log"
	"github.com/makspress/pressline/internal/model"
	"github.com/makspress/pressline/internal/storage"
)

// ServiceConfig is the configuration for the register service.
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
	c.Logger = c.Logger.WithValues(log.Kv{"svc": "app.Register"})
	return nil
}

// Service handles user registration.
type Service struct {
	repo   storage.UserRepository
	logger log.Logger
}

// NewService creates a new register service.
func NewService(cfg ServiceConfig) (*Service, error) {
	if err := cfg.defaults(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	return &Service{
		repo:   cfg.Repository,
		logger: cfg.Logger,
	}, nil
}

// Request represents the registration request parameters.
type Request struct {
	Name     string
	Email    string
	Password string
}

// Run registers a new user keyed by email.
func (s *Service) Run(ctx context.Context, req Request) (*model.User, error) {
	user := model.User{
		Name:      req.Name,
		Email:     req.Email,
		Password:  req.Password,
		CreatedAt: time.Now().UTC(),
	}
	if err := user.Validate(); err != nil {
		return nil, fmt.Errorf("invalid user: %w", err)
	}

	// Check email uniqueness.
	_, err := s.repo.GetUserByEmail(ctx, user.Email)
	if err == nil {
		return nil, fmt.Errorf("user %q already exists: %w", user.Email, model.ErrAlreadyExists)
	}
	if !errors.Is(err, model.ErrNotFound) {
		return nil, fmt.Errorf("could not check email uniqueness: %w", err)
	}

	if err := s.repo.CreateUser(ctx, user); err != nil {
		return nil, fmt.Errorf("could not save user: %w", err)
	}

	s.logger.Infof("Registered user: %s", user.Email)

	return &user, nil
}
