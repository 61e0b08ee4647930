package dashboard_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/makspress/pressline/internal/app/dashboard"
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

func testJobs() []model.PrintJob {
	base := time.Date(2026, 2, 10, 9, 0, 0, 0, time.UTC)
	return []model.PrintJob{
		{ID: "JOB-4", Client: "Hachette", Title: "City Maps", Type: model.JobTypePromotional, Stage: 4, CreatedAt: base.Add(3 * time.Minute)},
		{ID: "JOB-3", Client: "Faber", Title: "Poems", Type: model.JobTypeTrade, Stage: 2, SubStep: 1, CreatedAt: base.Add(2 * time.Minute)},
		{ID: "JOB-2", Client: "Penguin Random House", Title: "Le Comte de Monte Cristo", Type: model.JobTypeTrade, Stage: 1, CreatedAt: base.Add(time.Minute)},
		{ID: "JOB-1", Client: "Oxford Press", Title: "Advanced Calculus", Type: model.JobTypeAcademic, Stage: 2, CreatedAt: base},
	}
}

func newService(t *testing.T, jobs []model.PrintJob) *dashboard.Service {
	t.Helper()

	m := &storagemock.MockJobRepository{}
	m.On("ListJobs", mock.Anything).Return(jobs, nil)

	svc, err := dashboard.NewService(dashboard.ServiceConfig{
		Repository: m,
		Engine:     testEngine(t),
		Logger:     log.Noop,
	})
	require.NoError(t, err)
	return svc
}

func TestServiceRunCounters(t *testing.T) {
	svc := newService(t, testJobs())

	d, err := svc.Run(context.Background(), dashboard.Request{})
	require.NoError(t, err)

	assert.Equal(t, 4, d.Counters.TotalJobs)
	assert.Equal(t, 1, d.Counters.Prepress)
	assert.Equal(t, 2, d.Counters.Printing)
	assert.Equal(t, 1, d.Counters.Dispatch)
}

func TestServiceRunCountersIgnoreFilters(t *testing.T) {
	svc := newService(t, testJobs())

	// A filter that narrows the rows to a single job.
	d, err := svc.Run(context.Background(), dashboard.Request{
		Filter: model.JobFilter{Type: string(model.JobTypeAcademic)},
	})
	require.NoError(t, err)

	require.Len(t, d.Rows, 1)
	assert.Equal(t, "JOB-1", d.Rows[0].Job.ID)

	// Counters still reflect the whole store.
	assert.Equal(t, 4, d.Counters.TotalJobs)
	assert.Equal(t, 1, d.Counters.Prepress)
	assert.Equal(t, 2, d.Counters.Printing)
	assert.Equal(t, 1, d.Counters.Dispatch)
}

func TestServiceRunRows(t *testing.T) {
	svc := newService(t, testJobs())

	d, err := svc.Run(context.Background(), dashboard.Request{})
	require.NoError(t, err)
	require.Len(t, d.Rows, 4)

	assert.Equal(t, []string{"Manuscript", "Prepress", "Printing", "Binding", "Dispatch"}, d.StageNames)

	// JOB-3 is mid-Printing at its second sub-step.
	row := d.Rows[1]
	assert.Equal(t, "JOB-3", row.Job.ID)
	assert.Equal(t, "Printing", row.StageName)
	assert.Equal(t, "trade", row.BadgeCategory)
	assert.Equal(t, []model.StepState{
		model.StepCompleted, model.StepCompleted, model.StepActive, model.StepPending, model.StepPending,
	}, row.StageStates)
	assert.Equal(t, []string{"Setup", "Press Run"}, row.SubStepLabels)
	assert.Equal(t, []model.StepState{model.StepCompleted, model.StepActive}, row.SubStepStates)
	assert.False(t, row.Completed)

	// JOB-4 sits at the terminal Dispatch stage, which has no sub-steps.
	row = d.Rows[0]
	assert.Equal(t, "JOB-4", row.Job.ID)
	assert.Equal(t, "Dispatch", row.StageName)
	assert.Empty(t, row.SubStepLabels)
	assert.True(t, row.Completed)
}

func TestServiceRunIsIdempotent(t *testing.T) {
	svc := newService(t, testJobs())
	req := dashboard.Request{Filter: model.JobFilter{Search: "job"}}

	first, err := svc.Run(context.Background(), req)
	require.NoError(t, err)
	second, err := svc.Run(context.Background(), req)
	require.NoError(t, err)

	assert.Equal(t, first, second)
}

func TestServiceRunEmptyStore(t *testing.T) {
	svc := newService(t, []model.PrintJob{})

	d, err := svc.Run(context.Background(), dashboard.Request{})
	require.NoError(t, err)

	// An empty projection is valid output, not an error.
	assert.Equal(t, dashboard.Counters{}, d.Counters)
	assert.Empty(t, d.Rows)
}
