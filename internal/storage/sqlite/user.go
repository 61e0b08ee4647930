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

// CreateUser stores a new user record keyed by email.
func (r *Repository) CreateUser(ctx context.Context, user model.User) error {
	query := `
		INSERT INTO users (email, name, password, created_at)
		VALUES (?, ?, ?, ?)
	`

	_, err := r.db.ExecContext(ctx, query, user.Email, user.Name, user.Password, user.CreatedAt.Unix())
	if err != nil {
		if strings.Contains(err.Error(), "UNIQUE constraint failed: users.") {
			return fmt.Errorf("user %s: %w", user.Email, model.ErrAlreadyExists)
		}
		return fmt.Errorf("could not insert user: %w", err)
	}

	r.logger.Debugf("Created user in repository: %s", user.Email)
	return nil
}

// GetUserByEmail retrieves a user by email.
func (r *Repository) GetUserByEmail(ctx context.Context, email string) (*model.User, error) {
	query := `SELECT email, name, password, created_at FROM users WHERE email = ?`

	var user model.User
	var createdAt int64

	err := r.db.QueryRowContext(ctx, query, email).Scan(&user.Email, &user.Name, &user.Password, &createdAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("user %s: %w", email, model.ErrNotFound)
		}
		return nil, fmt.Errorf("could not query user: %w", err)
	}

	user.CreatedAt = time.Unix(createdAt, 0).UTC()
	return &user, nil
}
