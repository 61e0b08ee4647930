package joblist

import (
	"context"
	"fmt"
	"sort"
	"strings"

	"github.com/makspress/pressline/internal/log"
	"github.com/makspress/pressline/internal/model"
	"github.com/makspress/pressline/internal/storage"
	"github.com/makspress/pressline/internal/workflow"
)

// ServiceConfig is the configuration for the job list service.
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
	c.Logger = c.Logger.WithValues(log.Kv{"svc": "app.JobList"})
	return nil
}

// Service derives the visible, ordered subset of the job store from a
// filter. It never mutates the store.
type Service struct {
	repo   storage.JobRepository
	engine *workflow.Engine
	logger log.Logger
}

// NewService creates a new job list service.
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

// Request represents the list request parameters.
type Request struct {
	Filter model.JobFilter
}

// Run returns the filtered and sorted view of the job store, each entry
// carrying its position in the storage order.
func (s *Service) Run(ctx context.Context, req Request) ([]model.PositionedJob, error) {
	jobs, err := s.repo.ListJobs(ctx)
	if err != nil {
		return nil, fmt.Errorf("could not list jobs: %w", err)
	}

	view := Apply(jobs, req.Filter, s.engine)

	s.logger.Debugf("Filtered %d of %d jobs", len(view), len(jobs))
	return view, nil
}

// Apply filters and sorts a job snapshot. Exposed as a pure function so the
// dashboard can reuse it on an already-taken snapshot.
func Apply(jobs []model.PrintJob, filter model.JobFilter, engine *workflow.Engine) []model.PositionedJob {
	catalog := engine.Catalog()

	// Resolve the stage name filter to a canonical index. Names that don't
	// resolve disable stage filtering instead of matching nothing.
	stageIndex := -1
	if filter.StageName != "" && filter.StageName != model.FilterAll {
		if idx, err := catalog.StageIndex(filter.StageName); err == nil {
			stageIndex = idx
		}
	}

	search := strings.ToLower(strings.TrimSpace(filter.Search))
	typeFilter := filter.Type != "" && filter.Type != model.FilterAll

	view := []model.PositionedJob{}
	for i, job := range jobs {
		job = engine.Normalize(job)

		if typeFilter && string(job.Type) != filter.Type {
			continue
		}
		if stageIndex >= 0 && job.Stage != stageIndex {
			continue
		}
		if search != "" {
			hay := strings.ToLower(job.ID + " " + job.Client + " " + job.Title)
			if !strings.Contains(hay, search) {
				continue
			}
		}

		view = append(view, model.PositionedJob{Position: i, Job: job})
	}

	// Stable sort: ties keep storage order.
	oldestFirst := filter.Sort == model.SortOldest
	sort.SliceStable(view, func(a, b int) bool {
		ta, tb := view[a].Job.CreatedAt, view[b].Job.CreatedAt
		if oldestFirst {
			return ta.Before(tb)
		}
		return tb.Before(ta)
	})

	return view
}
