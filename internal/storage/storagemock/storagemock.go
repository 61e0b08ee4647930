// Package storagemock contains testify mocks for the storage repositories.
package storagemock

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/makspress/pressline/internal/model"
)

// MockJobRepository is a mock implementation of storage.JobRepository.
type MockJobRepository struct {
	mock.Mock
}

func (m *MockJobRepository) InsertJob(ctx context.Context, job model.PrintJob) error {
	args := m.Called(ctx, job)
	return args.Error(0)
}

func (m *MockJobRepository) GetJob(ctx context.Context, id string) (*model.PrintJob, error) {
	args := m.Called(ctx, id)
	job, _ := args.Get(0).(*model.PrintJob)
	return job, args.Error(1)
}

func (m *MockJobRepository) ListJobs(ctx context.Context) ([]model.PrintJob, error) {
	args := m.Called(ctx)
	jobs, _ := args.Get(0).([]model.PrintJob)
	return jobs, args.Error(1)
}

func (m *MockJobRepository) RemoveJobAt(ctx context.Context, position int) (*model.PrintJob, error) {
	args := m.Called(ctx, position)
	job, _ := args.Get(0).(*model.PrintJob)
	return job, args.Error(1)
}

func (m *MockJobRepository) UpdateJob(ctx context.Context, id string, fn func(model.PrintJob) (model.PrintJob, error)) (*model.PrintJob, error) {
	args := m.Called(ctx, id, fn)
	job, _ := args.Get(0).(*model.PrintJob)
	return job, args.Error(1)
}

// MockUserRepository is a mock implementation of storage.UserRepository.
type MockUserRepository struct {
	mock.Mock
}

func (m *MockUserRepository) CreateUser(ctx context.Context, user model.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}

func (m *MockUserRepository) GetUserByEmail(ctx context.Context, email string) (*model.User, error) {
	args := m.Called(ctx, email)
	user, _ := args.Get(0).(*model.User)
	return user, args.Error(1)
}

// MockManuscriptRepository is a mock implementation of storage.ManuscriptRepository.
type MockManuscriptRepository struct {
	mock.Mock
}

func (m *MockManuscriptRepository) InsertVersion(ctx context.Context, version model.ManuscriptVersion) error {
	args := m.Called(ctx, version)
	return args.Error(0)
}

func (m *MockManuscriptRepository) ListVersions(ctx context.Context) ([]model.ManuscriptVersion, error) {
	args := m.Called(ctx)
	versions, _ := args.Get(0).([]model.ManuscriptVersion)
	return versions, args.Error(1)
}

func (m *MockManuscriptRepository) ApproveVersion(ctx context.Context, id string) (*model.ManuscriptVersion, error) {
	args := m.Called(ctx, id)
	version, _ := args.Get(0).(*model.ManuscriptVersion)
	return version, args.Error(1)
}

func (m *MockManuscriptRepository) DeleteVersion(ctx context.Context, id string) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockManuscriptRepository) ClearVersions(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}
