package jobremove

import (
	"context"
	"fmt"

	"github.com/makspress/pressline/internal/log"
	"github.com/makspress/pressline/internal/model"
	"github.com/makspress/pressline/internal/storage"
)

// ServiceConfig is the configuration for the job remove service.
type ServiceConfig struct {
	Repository storage.JobRepository
	Logger     log.Logger
}

func (c *ServiceConfig) defaults() error {
	if c.Repository == nil {
		return fmt.Errorf("repository is required")
	}
	if c.Logger == nil {
		c.Logger = log.Noop
	}
	c.Logger = c.Logger.WithValues(log.Kv{"svc": "app.JobRemove"})
	return nil
}

// Service removes jobs from the store.
type Service struct {
	repo   storage.JobRepository
	logger log.Logger
}

// NewService creates a new job remove service.
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
	JobID string
}

// Run removes the job with the given ID. The position is resolved against a
// fresh snapshot right before removal, so stale positions held across a
// confirmation can never delete the wrong job.
func (s *Service) Run(ctx context.Context, req Request) (*model.PrintJob, error) {
	if req.JobID == "" {
		return nil, fmt.Errorf("job id is required: %w", model.ErrNotValid)
	}

	jobs, err := s.repo.ListJobs(ctx)
	if err != nil {
		return nil, fmt.Errorf("could not list jobs: %w", err)
	}

	position := -1
	for i, job := range jobs {
		if job.ID == req.JobID {
			position = i
			break
		}
	}
	if position < 0 {
		return nil, fmt.Errorf("job %s: %w", req.JobID, model.ErrNotFound)
	}

	removed, err := s.repo.RemoveJobAt(ctx, position)
	if err != nil {
		return nil, fmt.Errorf("could not remove job: %w", err)
	}

	s.logger.Infof("Removed job: %s", removed.ID)

	return removed, nil
}
