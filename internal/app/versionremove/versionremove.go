package versionremove

import (
	"context"
	"fmt"

	"github.com/makspress/pressline/internal/log"
	"github.com/makspress/pressline/internal/model"
	"github.com/makspress/pressline/internal/storage"
)

// ServiceConfig is the configuration for the version remove service.
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
	c.Logger = c.Logger.WithValues(log.Kv{"svc": "app.VersionRemove"})
	return nil
}

// Service removes single manuscript versions or clears the whole history.
type Service struct {
	repo   storage.ManuscriptRepository
	logger log.Logger
}

// NewService creates a new version remove service.
func NewService(cfg ServiceConfig) (*Service, error) {
	if err := cfg.defaults(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	return &Service{
		repo:   cfg.Repository,
		logger: cfg.Logger,
	}, nil
}

// Request represents the remove request parameters.
type Request struct {
	// VersionID selects a single version. Ignored when All is set.
	VersionID string
	// All clears the whole history.
	All bool
}

// Run removes one version or the whole history.
func (s *Service) Run(ctx context.Context, req Request) error {
	if req.All {
		if err := s.repo.ClearVersions(ctx); err != nil {
			return fmt.Errorf("could not clear manuscript versions: %w", err)
		}
		s.logger.Infof("Cleared manuscript version history")
		return nil
	}

	if req.VersionID == "" {
		return fmt.Errorf("version id is required: %w", model.ErrNotValid)
	}

	if err := s.repo.DeleteVersion(ctx, req.VersionID); err != nil {
		return fmt.Errorf("could not delete manuscript version: %w", err)
	}

	s.logger.Infof("Deleted manuscript version: %s", req.VersionID)
	return nil
}
