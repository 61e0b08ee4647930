package memory

import (
	"context"
	"fmt"
	"sync"

	"github.com/makspress/pressline/internal/log"
	"github.com/makspress/pressline/internal/model"
)

// RepositoryConfig is the configuration for the memory repository.
type RepositoryConfig struct {
	Logger log.Logger
}

func (c *RepositoryConfig) defaults() error {
	if c.Logger == nil {
		c.Logger = log.Noop
	}
	c.Logger = c.Logger.WithValues(log.Kv{"svc": "storage.Memory"})
	return nil
}

// Repository is an in-memory implementation of storage.JobRepository. Jobs
// live only for the lifetime of the process, matching the session-only job
// list of the original dashboard. Storage order is insertion order with the
// newest job first.
type Repository struct {
	jobs   []model.PrintJob
	mu     sync.RWMutex
	logger log.Logger
}

// NewRepository creates a new memory repository.
func NewRepository(cfg RepositoryConfig) (*Repository, error) {
	if err := cfg.defaults(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	return &Repository{
		jobs:   []model.PrintJob{},
		logger: cfg.Logger,
	}, nil
}

// InsertJob adds a job at the head of the storage order.
func (r *Repository) InsertJob(ctx context.Context, job model.PrintJob) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, existing := range r.jobs {
		if existing.ID == job.ID {
			return fmt.Errorf("job with id %s: %w", job.ID, model.ErrAlreadyExists)
		}
	}

	r.jobs = append([]model.PrintJob{job}, r.jobs...)
	r.logger.Debugf("Inserted job in repository: %s", job.ID)

	return nil
}

// GetJob retrieves a job by ID.
func (r *Repository) GetJob(ctx context.Context, id string) (*model.PrintJob, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, job := range r.jobs {
		if job.ID == id {
			// Return a copy.
			jobCopy := job
			return &jobCopy, nil
		}
	}

	return nil, fmt.Errorf("job %s: %w", id, model.ErrNotFound)
}

// ListJobs returns a snapshot of all jobs in storage order.
func (r *Repository) ListJobs(ctx context.Context) ([]model.PrintJob, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	jobs := make([]model.PrintJob, len(r.jobs))
	copy(jobs, r.jobs)

	return jobs, nil
}

// RemoveJobAt removes and returns the job at the given position.
func (r *Repository) RemoveJobAt(ctx context.Context, position int) (*model.PrintJob, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if position < 0 || position >= len(r.jobs) {
		return nil, fmt.Errorf("job position %d: %w", position, model.ErrOutOfRange)
	}

	removed := r.jobs[position]
	r.jobs = append(r.jobs[:position], r.jobs[position+1:]...)
	r.logger.Debugf("Removed job from repository: %s", removed.ID)

	return &removed, nil
}

// UpdateJob applies fn to the job with the given ID in place.
func (r *Repository) UpdateJob(ctx context.Context, id string, fn func(model.PrintJob) (model.PrintJob, error)) (*model.PrintJob, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for i, job := range r.jobs {
		if job.ID != id {
			continue
		}

		updated, err := fn(job)
		if err != nil {
			return nil, fmt.Errorf("could not update job %s: %w", id, err)
		}
		// The ID is stable for the job's lifetime.
		updated.ID = job.ID

		r.jobs[i] = updated
		r.logger.Debugf("Updated job in repository: %s", id)

		updatedCopy := updated
		return &updatedCopy, nil
	}

	return nil, fmt.Errorf("job %s: %w", id, model.ErrNotFound)
}
