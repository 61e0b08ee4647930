package lib

import (
	"context"
	"fmt"

	"github.com/makspress/pressline/internal/app/dashboard"
	"github.com/makspress/pressline/internal/app/jobadvance"
	"github.com/makspress/pressline/internal/app/jobcreate"
	"github.com/makspress/pressline/internal/app/joblist"
	"github.com/makspress/pressline/internal/app/jobremove"
)

// CreateJob creates a new print job at the first stage of the workflow.
//
// Client and Title are required; everything else falls back to defaults.
func (c *Client) CreateJob(ctx context.Context, opts CreateJobOpts) (*Job, error) {
	svc, err := jobcreate.NewService(jobcreate.ServiceConfig{
		Repository: c.jobs,
		Logger:     c.logger,
	})
	if err != nil {
		return nil, fmt.Errorf("could not create service: %w", err)
	}

	job, err := svc.Run(ctx, jobcreate.Request{Config: toInternalJobConfig(opts)})
	if err != nil {
		return nil, mapError(err)
	}

	result := fromInternalJob(*job)
	return &result, nil
}

// ListJobs returns the filtered, ordered view of the board.
//
// Pass nil opts to list every job newest first.
func (c *Client) ListJobs(ctx context.Context, opts *ListJobsOpts) ([]Job, error) {
	svc, err := joblist.NewService(joblist.ServiceConfig{
		Repository: c.jobs,
		Engine:     c.engine,
		Logger:     c.logger,
	})
	if err != nil {
		return nil, fmt.Errorf("could not create service: %w", err)
	}

	view, err := svc.Run(ctx, joblist.Request{Filter: toInternalFilter(opts)})
	if err != nil {
		return nil, mapError(err)
	}

	jobs := make([]Job, len(view))
	for i, pj := range view {
		jobs[i] = fromInternalJob(pj.Job)
	}
	return jobs, nil
}

// AdvanceJob moves the job one step forward: to the next sub-step, the next
// stage, or (at the terminal stage) nowhere while reporting the milestone.
func (c *Client) AdvanceJob(ctx context.Context, jobID string) (*AdvanceResult, error) {
	svc, err := jobadvance.NewService(jobadvance.ServiceConfig{
		Repository: c.jobs,
		Engine:     c.engine,
		Logger:     c.logger,
	})
	if err != nil {
		return nil, fmt.Errorf("could not create service: %w", err)
	}

	resp, err := svc.Run(ctx, jobadvance.Request{JobID: jobID})
	if err != nil {
		return nil, mapError(err)
	}

	return &AdvanceResult{
		Job:     fromInternalJob(resp.Job),
		Kind:    fromInternalEventKind(resp.Event.Kind),
		Stage:   resp.Event.StageName,
		SubStep: resp.Event.SubStepLabel,
	}, nil
}

// RemoveJob deletes the job with the given ID and returns its last state.
func (c *Client) RemoveJob(ctx context.Context, jobID string) (*Job, error) {
	svc, err := jobremove.NewService(jobremove.ServiceConfig{
		Repository: c.jobs,
		Logger:     c.logger,
	})
	if err != nil {
		return nil, fmt.Errorf("could not create service: %w", err)
	}

	removed, err := svc.Run(ctx, jobremove.Request{JobID: jobID})
	if err != nil {
		return nil, mapError(err)
	}

	result := fromInternalJob(*removed)
	return &result, nil
}

// Dashboard returns the full board projection: counters over the whole store
// plus one annotated row per visible job.
//
// Pass nil opts for the unfiltered board.
func (c *Client) Dashboard(ctx context.Context, opts *ListJobsOpts) (*Dashboard, error) {
	svc, err := dashboard.NewService(dashboard.ServiceConfig{
		Repository: c.jobs,
		Engine:     c.engine,
		Logger:     c.logger,
	})
	if err != nil {
		return nil, fmt.Errorf("could not create service: %w", err)
	}

	d, err := svc.Run(ctx, dashboard.Request{Filter: toInternalFilter(opts)})
	if err != nil {
		return nil, mapError(err)
	}

	board := &Dashboard{
		Counters: Counters{
			TotalJobs: d.Counters.TotalJobs,
			Prepress:  d.Counters.Prepress,
			Printing:  d.Counters.Printing,
			Dispatch:  d.Counters.Dispatch,
		},
		StageNames: d.StageNames,
		Rows:       make([]Row, len(d.Rows)),
	}

	for i, row := range d.Rows {
		board.Rows[i] = Row{
			Job:           fromInternalJob(row.Job),
			Stage:         row.StageName,
			BadgeCategory: row.BadgeCategory,
			StageStates:   fromInternalStepStates(row.StageStates),
			SubStepLabels: row.SubStepLabels,
			SubStepStates: fromInternalStepStates(row.SubStepStates),
			Completed:     row.Completed,
		}
	}

	return board, nil
}
