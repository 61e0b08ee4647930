package memory_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/makspress/pressline/internal/model"
	"github.com/makspress/pressline/internal/storage/memory"
)

func jobFixture(id, client string) model.PrintJob {
	return model.PrintJob{
		ID:        id,
		Client:    client,
		Title:     "Advanced Calculus",
		Type:      model.JobTypeAcademic,
		Quantity:  2000,
		Priority:  model.PriorityNormal,
		CreatedAt: time.Date(2026, 2, 10, 9, 0, 0, 0, time.UTC),
	}
}

func newRepo(t *testing.T) *memory.Repository {
	t.Helper()
	repo, err := memory.NewRepository(memory.RepositoryConfig{})
	require.NoError(t, err)
	return repo
}

func TestRepositoryInsertOrder(t *testing.T) {
	ctx := context.Background()
	repo := newRepo(t)

	require.NoError(t, repo.InsertJob(ctx, jobFixture("JOB-1", "Oxford Press")))
	require.NoError(t, repo.InsertJob(ctx, jobFixture("JOB-2", "Penguin")))
	require.NoError(t, repo.InsertJob(ctx, jobFixture("JOB-3", "Hachette")))

	jobs, err := repo.ListJobs(ctx)
	require.NoError(t, err)
	require.Len(t, jobs, 3)

	// Newest insert sits physically first.
	assert.Equal(t, "JOB-3", jobs[0].ID)
	assert.Equal(t, "JOB-2", jobs[1].ID)
	assert.Equal(t, "JOB-1", jobs[2].ID)
}

func TestRepositoryDuplicateID(t *testing.T) {
	ctx := context.Background()
	repo := newRepo(t)

	require.NoError(t, repo.InsertJob(ctx, jobFixture("JOB-1", "Oxford Press")))

	err := repo.InsertJob(ctx, jobFixture("JOB-1", "Penguin"))
	require.Error(t, err)
	assert.True(t, errors.Is(err, model.ErrAlreadyExists))

	// Store unchanged.
	jobs, err := repo.ListJobs(ctx)
	require.NoError(t, err)
	assert.Len(t, jobs, 1)
	assert.Equal(t, "Oxford Press", jobs[0].Client)
}

func TestRepositoryRemoveJobAt(t *testing.T) {
	ctx := context.Background()

	tests := map[string]struct {
		position  int
		expErr    error
		expID     string
		expRemain []string
	}{
		"removing the head job": {
			position: 0, expID: "JOB-2", expRemain: []string{"JOB-1"},
		},
		"removing the tail job": {
			position: 1, expID: "JOB-1", expRemain: []string{"JOB-2"},
		},
		"negative position fails": {
			position: -1, expErr: model.ErrOutOfRange,
		},
		"position past the end fails": {
			position: 2, expErr: model.ErrOutOfRange,
		},
	}

	for name, test := range tests {
		t.Run(name, func(t *testing.T) {
			repo := newRepo(t)
			require.NoError(t, repo.InsertJob(ctx, jobFixture("JOB-1", "Oxford Press")))
			require.NoError(t, repo.InsertJob(ctx, jobFixture("JOB-2", "Penguin")))

			removed, err := repo.RemoveJobAt(ctx, test.position)

			if test.expErr != nil {
				require.Error(t, err)
				assert.True(t, errors.Is(err, test.expErr))
				jobs, err := repo.ListJobs(ctx)
				require.NoError(t, err)
				assert.Len(t, jobs, 2)
				return
			}

			require.NoError(t, err)
			assert.Equal(t, test.expID, removed.ID)

			jobs, err := repo.ListJobs(ctx)
			require.NoError(t, err)
			ids := make([]string, len(jobs))
			for i, j := range jobs {
				ids[i] = j.ID
			}
			assert.Equal(t, test.expRemain, ids)
		})
	}
}

func TestRepositoryUpdateJob(t *testing.T) {
	ctx := context.Background()
	repo := newRepo(t)

	require.NoError(t, repo.InsertJob(ctx, jobFixture("JOB-1", "Oxford Press")))

	updated, err := repo.UpdateJob(ctx, "JOB-1", func(j model.PrintJob) (model.PrintJob, error) {
		j.Stage = 2
		j.SubStep = 1
		return j, nil
	})
	require.NoError(t, err)
	assert.Equal(t, 2, updated.Stage)
	assert.Equal(t, 1, updated.SubStep)

	got, err := repo.GetJob(ctx, "JOB-1")
	require.NoError(t, err)
	assert.Equal(t, 2, got.Stage)

	// Unknown ID.
	_, err = repo.UpdateJob(ctx, "JOB-404", func(j model.PrintJob) (model.PrintJob, error) { return j, nil })
	require.Error(t, err)
	assert.True(t, errors.Is(err, model.ErrNotFound))

	// Transform errors propagate without mutating.
	_, err = repo.UpdateJob(ctx, "JOB-1", func(j model.PrintJob) (model.PrintJob, error) {
		return j, errors.New("boom")
	})
	require.Error(t, err)
	got, err = repo.GetJob(ctx, "JOB-1")
	require.NoError(t, err)
	assert.Equal(t, 2, got.Stage)
}

func TestRepositorySnapshotIsACopy(t *testing.T) {
	ctx := context.Background()
	repo := newRepo(t)

	require.NoError(t, repo.InsertJob(ctx, jobFixture("JOB-1", "Oxford Press")))

	jobs, err := repo.ListJobs(ctx)
	require.NoError(t, err)
	jobs[0].Client = "Mutated"

	fresh, err := repo.ListJobs(ctx)
	require.NoError(t, err)
	assert.Equal(t, "Oxford Press", fresh[0].Client)
}

func TestRepositoryGetJobNotFound(t *testing.T) {
	repo := newRepo(t)

	_, err := repo.GetJob(context.Background(), "JOB-404")
	require.Error(t, err)
	assert.True(t, errors.Is(err, model.ErrNotFound))
}
