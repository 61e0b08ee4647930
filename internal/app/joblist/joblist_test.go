package joblist_test

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/makspress/pressline/internal/app/joblist"
	"github.com/makspress/pressline/internal/log"
	"github.com/makspress/pressline/internal/model"
	"github.com/makspress/pressline/internal/storage/storagemock"
	"github.com/makspress/pressline/internal/workflow"
)

func testEngine(t *testing.T) *workflow.Engine {
	t.Helper()
	e, err := workflow.NewEngine(workflow.EngineConfig{Catalog: model.DefaultStageCatalog()})
	require.NoError(t, err)
	return e
}

// Storage-ordered snapshot, newest first: JOB-3, JOB-2, JOB-1.
func testJobs() []model.PrintJob {
	base := time.Date(2026, 2, 10, 9, 0, 0, 0, time.UTC)
	return []model.PrintJob{
		{ID: "JOB-3", Client: "Hachette", Title: "City Maps", Type: model.JobTypePromotional, Stage: 4, CreatedAt: base.Add(2 * time.Minute)},
		{ID: "JOB-2", Client: "Penguin Random House", Title: "Le Comte de Monte Cristo", Type: model.JobTypeTrade, Stage: 1, CreatedAt: base.Add(time.Minute)},
		{ID: "JOB-1", Client: "Oxford Press", Title: "Advanced Calculus", Type: model.JobTypeAcademic, Stage: 2, CreatedAt: base},
	}
}

func ids(view []model.PositionedJob) []string {
	out := make([]string, len(view))
	for i, pj := range view {
		out[i] = pj.Job.ID
	}
	return out
}

func TestNewService(t *testing.T) {
	tests := map[string]struct {
		config func() joblist.ServiceConfig
		expErr bool
	}{
		"valid config should create service": {
			config: func() joblist.ServiceConfig {
				return joblist.ServiceConfig{
					Repository: &storagemock.MockJobRepository{},
					Engine:     testEngine(t),
					Logger:     log.Noop,
				}
			},
		},
		"missing repository should fail": {
			config: func() joblist.ServiceConfig {
				return joblist.ServiceConfig{Engine: testEngine(t)}
			},
			expErr: true,
		},
		"missing engine should fail": {
			config: func() joblist.ServiceConfig {
				return joblist.ServiceConfig{Repository: &storagemock.MockJobRepository{}}
			},
			expErr: true,
		},
	}

	for name, test := range tests {
		t.Run(name, func(t *testing.T) {
			svc, err := joblist.NewService(test.config())

			if test.expErr {
				require.Error(t, err)
				require.Nil(t, svc)
			} else {
				require.NoError(t, err)
				require.NotNil(t, svc)
			}
		})
	}
}

func TestServiceRun(t *testing.T) {
	tests := map[string]struct {
		filter model.JobFilter
		expIDs []string
	}{
		"identity filter returns all jobs newest first": {
			filter: model.JobFilter{Type: model.FilterAll, StageName: model.FilterAll},
			expIDs: []string{"JOB-3", "JOB-2", "JOB-1"},
		},
		"oldest sort reverses distinct creation times": {
			filter: model.JobFilter{Sort: model.SortOldest},
			expIDs: []string{"JOB-1", "JOB-2", "JOB-3"},
		},
		"type filter keeps exact matches only": {
			filter: model.JobFilter{Type: string(model.JobTypeTrade)},
			expIDs: []string{"JOB-2"},
		},
		"stage filter resolves the stage name": {
			filter: model.JobFilter{StageName: "Printing"},
			expIDs: []string{"JOB-1"},
		},
		"unresolvable stage name disables stage filtering": {
			filter: model.JobFilter{StageName: "Gold Leafing"},
			expIDs: []string{"JOB-3", "JOB-2", "JOB-1"},
		},
		"search matches id case-insensitively": {
			filter: model.JobFilter{Search: "job-2"},
			expIDs: []string{"JOB-2"},
		},
		"search matches client substring": {
			filter: model.JobFilter{Search: "penguin"},
			expIDs: []string{"JOB-2"},
		},
		"search matches title substring": {
			filter: model.JobFilter{Search: "calculus"},
			expIDs: []string{"JOB-1"},
		},
		"filters combine": {
			filter: model.JobFilter{Search: "monte", Type: string(model.JobTypeTrade), StageName: "Prepress"},
			expIDs: []string{"JOB-2"},
		},
		"no match yields an empty view": {
			filter: model.JobFilter{Search: "zeppelin"},
			expIDs: []string{},
		},
	}

	for name, test := range tests {
		t.Run(name, func(t *testing.T) {
			m := &storagemock.MockJobRepository{}
			m.On("ListJobs", mock.Anything).Once().Return(testJobs(), nil)

			svc, err := joblist.NewService(joblist.ServiceConfig{
				Repository: m,
				Engine:     testEngine(t),
				Logger:     log.Noop,
			})
			require.NoError(t, err)

			view, err := svc.Run(context.Background(), joblist.Request{Filter: test.filter})
			require.NoError(t, err)
			assert.Equal(t, test.expIDs, ids(view))

			m.AssertExpectations(t)
		})
	}
}

func TestServiceRunPositions(t *testing.T) {
	m := &storagemock.MockJobRepository{}
	m.On("ListJobs", mock.Anything).Once().Return(testJobs(), nil)

	svc, err := joblist.NewService(joblist.ServiceConfig{
		Repository: m,
		Engine:     testEngine(t),
		Logger:     log.Noop,
	})
	require.NoError(t, err)

	// Oldest-first view still carries storage positions.
	view, err := svc.Run(context.Background(), joblist.Request{
		Filter: model.JobFilter{Sort: model.SortOldest},
	})
	require.NoError(t, err)
	require.Len(t, view, 3)
	assert.Equal(t, 2, view[0].Position)
	assert.Equal(t, 1, view[1].Position)
	assert.Equal(t, 0, view[2].Position)
}

func TestServiceRunStableSortTies(t *testing.T) {
	// All jobs share a creation time, the storage order must win.
	createdAt := time.Date(2026, 2, 10, 9, 0, 0, 0, time.UTC)
	jobs := []model.PrintJob{
		{ID: "JOB-3", CreatedAt: createdAt},
		{ID: "JOB-2", CreatedAt: createdAt},
		{ID: "JOB-1", CreatedAt: createdAt},
	}

	for _, order := range []model.SortOrder{model.SortNewest, model.SortOldest} {
		t.Run(string(order), func(t *testing.T) {
			m := &storagemock.MockJobRepository{}
			m.On("ListJobs", mock.Anything).Once().Return(jobs, nil)

			svc, err := joblist.NewService(joblist.ServiceConfig{
				Repository: m,
				Engine:     testEngine(t),
				Logger:     log.Noop,
			})
			require.NoError(t, err)

			view, err := svc.Run(context.Background(), joblist.Request{
				Filter: model.JobFilter{Sort: order},
			})
			require.NoError(t, err)
			assert.Equal(t, []string{"JOB-3", "JOB-2", "JOB-1"}, ids(view))
		})
	}
}

func TestServiceRunNormalizesCorruptState(t *testing.T) {
	// A job restored with an out-of-range stage still renders, clamped.
	jobs := []model.PrintJob{{ID: "JOB-1", Stage: 99, SubStep: -4, CreatedAt: time.Now().UTC()}}

	m := &storagemock.MockJobRepository{}
	m.On("ListJobs", mock.Anything).Once().Return(jobs, nil)

	svc, err := joblist.NewService(joblist.ServiceConfig{
		Repository: m,
		Engine:     testEngine(t),
		Logger:     log.Noop,
	})
	require.NoError(t, err)

	view, err := svc.Run(context.Background(), joblist.Request{})
	require.NoError(t, err)
	require.Len(t, view, 1)
	assert.Equal(t, 4, view[0].Job.Stage)
	assert.Equal(t, 0, view[0].Job.SubStep)
}

func TestServiceRunRepositoryError(t *testing.T) {
	m := &storagemock.MockJobRepository{}
	m.On("ListJobs", mock.Anything).Once().Return(nil, fmt.Errorf("database error"))

	svc, err := joblist.NewService(joblist.ServiceConfig{
		Repository: m,
		Engine:     testEngine(t),
		Logger:     log.Noop,
	})
	require.NoError(t, err)

	_, err = svc.Run(context.Background(), joblist.Request{})
	require.Error(t, err)

	m.AssertExpectations(t)
}
