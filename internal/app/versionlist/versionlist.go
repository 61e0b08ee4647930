package versionlist

import (
	"context"
	"fmt"

	"github.com/makspress/pressline/internal/log"
	"github.com/makspress/pressline/internal/model"
	"github.com/makspress/pressline/internal/storage"
)

// ServiceConfig is the configuration for the version list service.
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
	c.Logger = c.Logger.WithValues(log.Kv{"svc": "app.VersionList"})
	return nil
}

// Service lists the manuscript version history.
type Service struct {
	repo   storage.ManuscriptRepository
	logger log.Logger
}

// NewService creates a new version list service.
func NewService(cfg ServiceConfig) (*Service, error) {
	if err := cfg.defaults(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	return &Service{
		repo:   cfg.Repository,
		logger: cfg.Logger,
	}, nil
}

// Run returns all manuscript versions, newest first.
func (s *Service) Run(ctx context.Context) ([]model.ManuscriptVersion, error) {
	versions, err := s.repo.ListVersions(ctx)
	if err != nil {
		return nil, fmt.Errorf("could not list manuscript versions: %w", err)
	}

	s.logger.Debugf("found %d manuscript versions", len(versions))
	return versions, nil
}
