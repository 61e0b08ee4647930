package jobadvance

import (
	"context"
	"fmt"

	"github.com/makspress/pressline/internal/log"
	"github.com/makspress/pressline/internal/model"
	"github.com/makspress/pressline/internal/storage"
	"github.com/makspress/pressline/internal/workflow"
)

// ServiceConfig is the configuration for the job advance service.
type ServiceConfig struct {
	Repository storage.JobRepository
	Engine     *workflow.Engine
	Logger     log.Logger
}

func (c *ServiceConfig) defaults() error {
	if c.Repository == nil {
		return fmt.Errorf("repository is required")
	}
	if c.Engine == nil {
		return fmt.Errorf("workflow engine is required")
	}
	if c.Logger == nil {
		c.Logger = log.Noop
	}
	c.Logger = c.Logger.WithValues(log.Kv{"svc": "app.JobAdvance"})
	return nil
}

// Service moves a job to its next sub-step, stage or terminal milestone.
type Service struct {
	repo   storage.JobRepository
	engine *workflow.Engine
	logger log.Logger
}

// NewService creates a new job advance service.
func NewService(cfg ServiceConfig) (*Service, error) {
	if err := cfg.defaults(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	return &Service{
		repo:   cfg.Repository,
		engine: cfg.Engine,
		logger: cfg.Logger,
	}, nil
}

// Request represents the advance request parameters.
type Request struct {
	JobID string
}

// Response is the advanced job with the transition that happened.
type Response struct {
	Job   model.PrintJob
	Event workflow.Event
}

// Run advances the job with the given ID by one step.
func (s *Service) Run(ctx context.Context, req Request) (*Response, error) {
	if req.JobID == "" {
		return nil, fmt.Errorf("job id is required: %w", model.ErrNotValid)
	}

	var event workflow.Event
	job, err := s.repo.UpdateJob(ctx, req.JobID, func(j model.PrintJob) (model.PrintJob, error) {
		advanced, ev := s.engine.Advance(j)
		event = ev
		return advanced, nil
	})
	if err != nil {
		return nil, fmt.Errorf("could not advance job: %w", err)
	}

	s.logger.Infof("Advanced job %s: %s (%s)", job.ID, event.Kind, event.StageName)

	return &Response{Job: *job, Event: event}, nil
}
