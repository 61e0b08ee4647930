package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/makspress/pressline/internal/model"
)

const versionColumns = `id, role, status, note, file_name, file_size, file_type, created_at`

// InsertVersion adds a manuscript version entry.
func (r *Repository) InsertVersion(ctx context.Context, version model.ManuscriptVersion) error {
	if err := version.Validate(); err != nil {
		return fmt.Errorf("invalid manuscript version: %w", err)
	}

	query := `
		INSERT INTO manuscript_versions (id, role, status, note, file_name, file_size, file_type, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)
	`

	_, err := r.db.ExecContext(
		ctx,
		query,
		version.ID,
		version.Role,
		version.Status,
		version.Note,
		version.FileName,
		version.FileSizeBytes,
		version.FileType,
		version.CreatedAt.Unix(),
	)
	if err != nil {
		if strings.Contains(err.Error(), "UNIQUE constraint failed: manuscript_versions.") {
			return fmt.Errorf("manuscript version %s: %w", version.ID, model.ErrAlreadyExists)
		}
		return fmt.Errorf("could not insert manuscript version: %w", err)
	}

	r.logger.Debugf("Created manuscript version in repository: %s", version.ID)
	return nil
}

// ListVersions returns all manuscript versions, newest first.
func (r *Repository) ListVersions(ctx context.Context) ([]model.ManuscriptVersion, error) {
	query := `SELECT ` + versionColumns + ` FROM manuscript_versions ORDER BY created_at DESC, id DESC`

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("could not query manuscript versions: %w", err)
	}
	defer rows.Close()

	versions := []model.ManuscriptVersion{}
	for rows.Next() {
		var v model.ManuscriptVersion
		var createdAt int64
		err := rows.Scan(&v.ID, &v.Role, &v.Status, &v.Note, &v.FileName, &v.FileSizeBytes, &v.FileType, &createdAt)
		if err != nil {
			return nil, fmt.Errorf("could not scan row: %w", err)
		}
		v.CreatedAt = time.Unix(createdAt, 0).UTC()
		versions = append(versions, v)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating rows: %w", err)
	}

	return versions, nil
}

// ApproveVersion marks the version with the given ID as approved.
func (r *Repository) ApproveVersion(ctx context.Context, id string) (*model.ManuscriptVersion, error) {
	result, err := r.db.ExecContext(
		ctx,
		`UPDATE manuscript_versions SET status = ? WHERE id = ?`,
		model.ManuscriptStatusApproved,
		id,
	)
	if err != nil {
		return nil, fmt.Errorf("could not update manuscript version: %w", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return nil, fmt.Errorf("could not get affected rows: %w", err)
	}
	if affected == 0 {
		return nil, fmt.Errorf("manuscript version %s: %w", id, model.ErrNotFound)
	}

	query := `SELECT ` + versionColumns + ` FROM manuscript_versions WHERE id = ?`
	var v model.ManuscriptVersion
	var createdAt int64
	err = r.db.QueryRowContext(ctx, query, id).Scan(&v.ID, &v.Role, &v.Status, &v.Note, &v.FileName, &v.FileSizeBytes, &v.FileType, &createdAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("manuscript version %s: %w", id, model.ErrNotFound)
		}
		return nil, fmt.Errorf("could not query manuscript version: %w", err)
	}
	v.CreatedAt = time.Unix(createdAt, 0).UTC()

	r.logger.Debugf("Approved manuscript version: %s", id)
	return &v, nil
}

// DeleteVersion removes the version with the given ID.
func (r *Repository) DeleteVersion(ctx context.Context, id string) error {
	result, err := r.db.ExecContext(ctx, `DELETE FROM manuscript_versions WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("could not delete manuscript version: %w", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("could not get affected rows: %w", err)
	}
	if affected == 0 {
		return fmt.Errorf("manuscript version %s: %w", id, model.ErrNotFound)
	}

	r.logger.Debugf("Deleted manuscript version: %s", id)
	return nil
}

// ClearVersions removes the whole version history.
func (r *Repository) ClearVersions(ctx context.Context) error {
	if _, err := r.db.ExecContext(ctx, `DELETE FROM manuscript_versions`); err != nil {
		return fmt.Errorf("could not clear manuscript versions: %w", err)
	}

	r.logger.Debugf("Cleared manuscript version history")
	return nil
}
