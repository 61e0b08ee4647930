package storage

import (
	"context"

	"github.com/makspress/pressline/internal/model"
)

// JobRepository is the interface for the ordered job store. Positions refer
// to the current storage order, newest jobs sit physically first.
type JobRepository interface {
	// InsertJob adds a job at the head of the storage order. It fails with
	// model.ErrAlreadyExists on ID collision, leaving the store unchanged.
	InsertJob(ctx context.Context, job model.PrintJob) error
	// GetJob retrieves a job by ID.
	GetJob(ctx context.Context, id string) (*model.PrintJob, error)
	// ListJobs returns a snapshot of all jobs in storage order. The caller
	// owns the returned slice.
	ListJobs(ctx context.Context) ([]model.PrintJob, error)
	// RemoveJobAt removes and returns the job at the given position of the
	// current storage order. It fails with model.ErrOutOfRange when the
	// position is invalid.
	RemoveJobAt(ctx context.Context, position int) (*model.PrintJob, error)
	// UpdateJob applies fn to the job with the given ID in place and returns
	// the updated job. It fails with model.ErrNotFound when no such job
	// exists.
	UpdateJob(ctx context.Context, id string, fn func(model.PrintJob) (model.PrintJob, error)) (*model.PrintJob, error)
}

// UserRepository is the interface for credential persistence, keyed by email.
type UserRepository interface {
	CreateUser(ctx context.Context, user model.User) error
	GetUserByEmail(ctx context.Context, email string) (*model.User, error)
}

// ManuscriptRepository is the interface for the manuscript version history.
type ManuscriptRepository interface {
	// InsertVersion adds a version entry at the head of the history.
	InsertVersion(ctx context.Context, version model.ManuscriptVersion) error
	// ListVersions returns all version entries, newest first.
	ListVersions(ctx context.Context) ([]model.ManuscriptVersion, error)
	// ApproveVersion marks the version with the given ID as approved.
	ApproveVersion(ctx context.Context, id string) (*model.ManuscriptVersion, error)
	// DeleteVersion removes the version with the given ID.
	DeleteVersion(ctx context.Context, id string) error
	// ClearVersions removes the whole version history.
	ClearVersions(ctx context.Context) error
}
