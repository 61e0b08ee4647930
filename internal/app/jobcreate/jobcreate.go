package jobcreate

import (
	"context"
	"crypto/rand"
	"fmt"
	"time"

	"github.com/oklog/ulid/v2"

	"github.com/makspress/pressline/internal/log"
	"github.com/makspress/pressline/internal/model"
	"github.com/makspress/pressline/internal/storage"
)

// ServiceConfig is the configuration for the job create service.
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
	c.Logger = c.Logger.WithValues(log.Kv{"svc": "app.JobCreate"})
	return nil
}

// Service handles print job creation business logic.
type Service struct {
	repo   storage.JobRepository
	logger log.Logger
}

// NewService creates a new job create service.
func NewService(cfg ServiceConfig) (*Service, error) {
	if err := cfg.defaults(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	return &Service{
		repo:   cfg.Repository,
		logger: cfg.Logger,
	}, nil
}

// Request represents the job creation request parameters.
type Request struct {
	Config model.JobConfig
}

// Run creates a new print job at the head of the pipeline.
func (s *Service) Run(ctx context.Context, req Request) (*model.PrintJob, error) {
	if err := req.Config.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	now := time.Now().UTC()
	job := model.PrintJob{
		ID:        "JOB-" + ulid.MustNew(ulid.Timestamp(now), rand.Reader).String(),
		Client:    req.Config.Client,
		Title:     req.Config.Title,
		Type:      req.Config.Type,
		Quantity:  req.Config.Quantity,
		Priority:  req.Config.Priority,
		Stage:     0,
		SubStep:   0,
		CreatedAt: now,
	}

	if err := s.repo.InsertJob(ctx, job); err != nil {
		return nil, fmt.Errorf("could not save job: %w", err)
	}

	s.logger.Infof("Created job: %s (%s)", job.ID, job.Client)

	return &job, nil
}
