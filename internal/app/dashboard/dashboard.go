package dashboard

import (
	"context"
	"fmt"

	"github.com/makspress/pressline/internal/app/joblist"
	"github.com/makspress/pressline/internal/log"
	"github.com/makspress/pressline/internal/model"
	"github.com/makspress/pressline/internal/storage"
	"github.com/makspress/pressline/internal/workflow"
)

// Stage indexes the aggregate counters are pinned to.
const (
	prepressStage = 1
	printingStage = 2
)

// Counters are the dashboard aggregates, always computed over the unfiltered
// job set.
type Counters struct {
	TotalJobs int
	Prepress  int
	Printing  int
	Dispatch  int
}

// Row is one dashboard table row: a positioned job annotated with its
// workflow progress.
type Row struct {
	Position      int
	Job           model.PrintJob
	StageName     string
	BadgeCategory string
	// StageStates has one marker per catalog stage.
	StageStates []model.StepState
	// SubStepLabels/SubStepStates describe the active stage's sub-steps,
	// empty when the stage has none.
	SubStepLabels []string
	SubStepStates []model.StepState
	Completed     bool
}

// Dashboard is the full data projection of the job store for rendering.
type Dashboard struct {
	Counters   Counters
	StageNames []string
	Rows       []Row
}

// ServiceConfig is the configuration for the dashboard service.
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
	c.Logger = c.Logger.WithValues(log.Kv{"svc": "app.Dashboard"})
	return nil
}

// Service projects the job store into the dashboard view. The projection is
// pure data shaping: rendering it twice on unchanged state yields identical
// output.
type Service struct {
	repo   storage.JobRepository
	engine *workflow.Engine
	logger log.Logger
}

// NewService creates a new dashboard service.
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

// Request represents the dashboard request parameters.
type Request struct {
	Filter model.JobFilter
}

// Run builds the dashboard projection for the given filter.
func (s *Service) Run(ctx context.Context, req Request) (*Dashboard, error) {
	jobs, err := s.repo.ListJobs(ctx)
	if err != nil {
		return nil, fmt.Errorf("could not list jobs: %w", err)
	}

	catalog := s.engine.Catalog()

	// Counters ignore the active filters on purpose.
	counters := Counters{TotalJobs: len(jobs)}
	for _, job := range jobs {
		job = s.engine.Normalize(job)
		switch job.Stage {
		case prepressStage:
			counters.Prepress++
		case printingStage:
			counters.Printing++
		}
		if job.Stage == catalog.LastStage() {
			counters.Dispatch++
		}
	}

	view := joblist.Apply(jobs, req.Filter, s.engine)

	rows := make([]Row, 0, len(view))
	for _, pj := range view {
		stageName, err := catalog.StageName(pj.Job.Stage)
		if err != nil {
			return nil, fmt.Errorf("could not resolve stage name: %w", err)
		}
		subSteps, err := catalog.SubSteps(pj.Job.Stage)
		if err != nil {
			return nil, fmt.Errorf("could not resolve sub-steps: %w", err)
		}

		rows = append(rows, Row{
			Position:      pj.Position,
			Job:           pj.Job,
			StageName:     stageName,
			BadgeCategory: pj.Job.Type.BadgeCategory(),
			StageStates:   s.engine.StageStates(pj.Job),
			SubStepLabels: subSteps,
			SubStepStates: s.engine.SubStepStates(pj.Job),
			Completed:     s.engine.Completed(pj.Job),
		})
	}

	s.logger.Debugf("Built dashboard: %d rows of %d jobs", len(rows), len(jobs))

	return &Dashboard{
		Counters:   counters,
		StageNames: catalog.StageNames(),
		Rows:       rows,
	}, nil
}
