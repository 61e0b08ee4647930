package memory

import (
	"context"
	"fmt"
	"sort"
	"sync"

	"github.com/makspress/pressline/internal/model"
)

// ManuscriptRepository is an in-memory implementation of
// storage.ManuscriptRepository.
type ManuscriptRepository struct {
	versions []model.ManuscriptVersion
	mu       sync.RWMutex
}

// NewManuscriptRepository creates a new memory manuscript repository.
func NewManuscriptRepository() *ManuscriptRepository {
	return &ManuscriptRepository{versions: []model.ManuscriptVersion{}}
}

// InsertVersion stores a new manuscript version.
func (r *ManuscriptRepository) InsertVersion(ctx context.Context, version model.ManuscriptVersion) error {
	if err := version.Validate(); err != nil {
		return fmt.Errorf("invalid version: %w", err)
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	for _, existing := range r.versions {
		if existing.ID == version.ID {
			return fmt.Errorf("version %s: %w", version.ID, model.ErrAlreadyExists)
		}
	}

	r.versions = append(r.versions, version)
	return nil
}

// ListVersions returns all versions, newest first.
func (r *ManuscriptRepository) ListVersions(ctx context.Context) ([]model.ManuscriptVersion, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	versions := make([]model.ManuscriptVersion, len(r.versions))
	copy(versions, r.versions)

	sort.SliceStable(versions, func(i, j int) bool {
		return versions[i].CreatedAt.After(versions[j].CreatedAt)
	})

	return versions, nil
}

// ApproveVersion marks the version as approved and returns it.
func (r *ManuscriptRepository) ApproveVersion(ctx context.Context, id string) (*model.ManuscriptVersion, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for i, version := range r.versions {
		if version.ID != id {
			continue
		}

		r.versions[i].Status = model.ManuscriptStatusApproved
		approved := r.versions[i]
		return &approved, nil
	}

	return nil, fmt.Errorf("version %s: %w", id, model.ErrNotFound)
}

// DeleteVersion removes a single version.
func (r *ManuscriptRepository) DeleteVersion(ctx context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for i, version := range r.versions {
		if version.ID == id {
			r.versions = append(r.versions[:i], r.versions[i+1:]...)
			return nil
		}
	}

	return fmt.Errorf("version %s: %w", id, model.ErrNotFound)
}

// ClearVersions removes the whole version history.
func (r *ManuscriptRepository) ClearVersions(ctx context.Context) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.versions = []model.ManuscriptVersion{}
	return nil
}
