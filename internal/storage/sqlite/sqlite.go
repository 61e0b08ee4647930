package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	_ "modernc.org/sqlite"

	"github.com/makspress/pressline/internal/log"
	"github.com/makspress/pressline/internal/model"
	"github.com/makspress/pressline/internal/storage/sqlite/migrations"
)

// RepositoryConfig is the configuration for the SQLite repository.
type RepositoryConfig struct {
	DBPath string
	Logger log.Logger
}

func (c *RepositoryConfig) defaults() error {
	if c.DBPath == "" {
		return fmt.Errorf("db path is required")
	}
	if c.Logger == nil {
		c.Logger = log.Noop
	}
	c.Logger = c.Logger.WithValues(log.Kv{"svc": "storage.SQLite"})
	return nil
}

// Repository is a SQLite implementation of the job, user and manuscript
// repositories. It is the durable analog of the original browser's
// localStorage, a single local file per user.
type Repository struct {
	db     *sql.DB
	logger log.Logger
}

// NewRepository creates a new SQLite repository.
func NewRepository(ctx context.Context, cfg RepositoryConfig) (*Repository, error) {
	if err := cfg.defaults(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	dir := filepath.Dir(cfg.DBPath)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("could not create db directory: %w", err)
	}

	dsn := fmt.Sprintf("%s?_pragma=foreign_keys(1)&_pragma=journal_mode(WAL)", cfg.DBPath)
	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("could not open database: %w", err)
	}

	migrator, err := migrations.NewMigrator(db, cfg.Logger)
	if err != nil {
		db.Close()
		return nil, fmt.Errorf("could not create migrator: %w", err)
	}
	if err := migrator.Up(ctx); err != nil {
		db.Close()
		return nil, fmt.Errorf("could not run migrations: %w", err)
	}

	cfg.Logger.Debugf("SQLite repository initialized at %s", cfg.DBPath)

	return &Repository{db: db, logger: cfg.Logger}, nil
}

// Close closes the database connection.
func (r *Repository) Close() error { return r.db.Close() }

// DB returns the underlying database handle.
func (r *Repository) DB() *sql.DB { return r.db }

const jobColumns = `id, client, title, type, quantity, priority, stage, substep, created_at`

// InsertJob adds a job at the head of the storage order.
func (r *Repository) InsertJob(ctx context.Context, job model.PrintJob) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("could not begin transaction: %w", err)
	}
	defer tx.Rollback()

	// Head insert: the newest job gets the highest sequence number.
	var maxSeq int64
	if err := tx.QueryRowContext(ctx, `SELECT COALESCE(MAX(seq), 0) FROM jobs`).Scan(&maxSeq); err != nil {
		return fmt.Errorf("could not get max sequence: %w", err)
	}

	query := `
		INSERT INTO jobs (id, client, title, type, quantity, priority, stage, substep, seq, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
	`
	_, err = tx.ExecContext(
		ctx,
		query,
		job.ID,
		job.Client,
		job.Title,
		job.Type,
		job.Quantity,
		job.Priority,
		job.Stage,
		job.SubStep,
		maxSeq+1,
		job.CreatedAt.Unix(),
	)
	if err != nil {
		if strings.Contains(err.Error(), "UNIQUE constraint failed: jobs.") {
			return fmt.Errorf("job with id %s: %w", job.ID, model.ErrAlreadyExists)
		}
		return fmt.Errorf("could not insert job: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("could not commit transaction: %w", err)
	}

	r.logger.Debugf("Inserted job in repository: %s", job.ID)
	return nil
}

// GetJob retrieves a job by ID.
func (r *Repository) GetJob(ctx context.Context, id string) (*model.PrintJob, error) {
	query := `SELECT ` + jobColumns + ` FROM jobs WHERE id = ?`

	job, err := scanJob(r.db.QueryRowContext(ctx, query, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("job %s: %w", id, model.ErrNotFound)
		}
		return nil, fmt.Errorf("could not query job: %w", err)
	}

	return job, nil
}

// ListJobs returns all jobs in storage order, newest first.
func (r *Repository) ListJobs(ctx context.Context) ([]model.PrintJob, error) {
	query := `SELECT ` + jobColumns + ` FROM jobs ORDER BY seq DESC`

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("could not query jobs: %w", err)
	}
	defer rows.Close()

	jobs := []model.PrintJob{}
	for rows.Next() {
		job, err := scanJob(rows)
		if err != nil {
			return nil, fmt.Errorf("could not scan row: %w", err)
		}
		jobs = append(jobs, *job)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating rows: %w", err)
	}

	return jobs, nil
}

// RemoveJobAt removes and returns the job at the given position of the
// current storage order.
func (r *Repository) RemoveJobAt(ctx context.Context, position int) (*model.PrintJob, error) {
	if position < 0 {
		return nil, fmt.Errorf("job position %d: %w", position, model.ErrOutOfRange)
	}

	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("could not begin transaction: %w", err)
	}
	defer tx.Rollback()

	query := `SELECT ` + jobColumns + ` FROM jobs ORDER BY seq DESC LIMIT 1 OFFSET ?`
	job, err := scanJob(tx.QueryRowContext(ctx, query, position))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("job position %d: %w", position, model.ErrOutOfRange)
		}
		return nil, fmt.Errorf("could not query job: %w", err)
	}

	if _, err := tx.ExecContext(ctx, `DELETE FROM jobs WHERE id = ?`, job.ID); err != nil {
		return nil, fmt.Errorf("could not delete job: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("could not commit transaction: %w", err)
	}

	r.logger.Debugf("Removed job from repository: %s", job.ID)
	return job, nil
}

// UpdateJob applies fn to the job with the given ID in place.
func (r *Repository) UpdateJob(ctx context.Context, id string, fn func(model.PrintJob) (model.PrintJob, error)) (*model.PrintJob, error) {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("could not begin transaction: %w", err)
	}
	defer tx.Rollback()

	query := `SELECT ` + jobColumns + ` FROM jobs WHERE id = ?`
	job, err := scanJob(tx.QueryRowContext(ctx, query, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("job %s: %w", id, model.ErrNotFound)
		}
		return nil, fmt.Errorf("could not query job: %w", err)
	}

	updated, err := fn(*job)
	if err != nil {
		return nil, fmt.Errorf("could not update job %s: %w", id, err)
	}
	// The ID is stable for the job's lifetime.
	updated.ID = job.ID

	updateQuery := `
		UPDATE jobs
		SET client = ?, title = ?, type = ?, quantity = ?, priority = ?, stage = ?, substep = ?, created_at = ?
		WHERE id = ?
	`
	_, err = tx.ExecContext(
		ctx,
		updateQuery,
		updated.Client,
		updated.Title,
		updated.Type,
		updated.Quantity,
		updated.Priority,
		updated.Stage,
		updated.SubStep,
		updated.CreatedAt.Unix(),
		updated.ID,
	)
	if err != nil {
		return nil, fmt.Errorf("could not update job: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("could not commit transaction: %w", err)
	}

	r.logger.Debugf("Updated job in repository: %s", id)
	return &updated, nil
}

// rowScanner abstracts sql.Row and sql.Rows for scanning.
type rowScanner interface {
	Scan(dest ...any) error
}

func scanJob(row rowScanner) (*model.PrintJob, error) {
	var job model.PrintJob
	var createdAt int64

	err := row.Scan(
		&job.ID,
		&job.Client,
		&job.Title,
		&job.Type,
		&job.Quantity,
		&job.Priority,
		&job.Stage,
		&job.SubStep,
		&createdAt,
	)
	if err != nil {
		return nil, err
	}

	job.CreatedAt = time.Unix(createdAt, 0).UTC()
	return &job, nil
}
