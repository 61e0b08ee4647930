package versionapprove

import (
	"context"
	"fmt"

	"github.com/makspress/pressline/internal/log"
	"github.com/makspress/pressline/internal/model"
	"github.com/makspress/pressline/internal/storage"
)

// ServiceConfig is the configuration for the version approve service.
type ServiceConfig struct {
	Repository storage.ManuscriptRepository
	Logger     log.Logger
}

func (c *ServiceConfig) defaults() error {
	if c.Repository == nil {
		return fmt.Errorf("repository is required")
	}
	if c.Logger == nil {
		c.Logger = log.Noop
	}
	c.Logger = c.Logger.WithValues(log.Kv{"svc": "app.VersionApprove"})
	return nil
}

// Service approves manuscript versions.
type Service struct {
	repo   storage.ManuscriptRepository
	logger log.Logger
}

// NewService creates a new version approve service.
func NewService(cfg ServiceConfig) (*Service, error) {
	if err := cfg.defaults(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	return &Service{
		repo:   cfg.Repository,
		logger: cfg.Logger,
	}, nil
}

// Request represents the approve request parameters.
type Request struct {
	VersionID string
}

// Run marks the manuscript version as approved.
func (s *Service) Run(ctx context.Context, req Request) (*model.ManuscriptVersion, error) {
	if req.VersionID == "" {
		return nil, fmt.Errorf("version id is required: %w", model.ErrNotValid)
	}

	version, err := s.repo.ApproveVersion(ctx, req.VersionID)
	if err != nil {
		return nil, fmt.Errorf("could not approve manuscript version: %w", err)
	}

	s.logger.Infof("Approved manuscript version: %s", version.ID)
	return version, nil
}
