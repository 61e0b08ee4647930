package memory

import (
	"context"
	"fmt"
	"sync"

	"github.com/makspress/pressline/internal/model"
)

// UserRepository is an in-memory implementation of storage.UserRepository,
// keyed by email.
type UserRepository struct {
	users map[string]model.User
	mu    sync.RWMutex
}

// NewUserRepository creates a new memory user repository.
func NewUserRepository() *UserRepository {
	return &UserRepository{users: map[string]model.User{}}
}

// CreateUser stores a new user.
func (r *UserRepository) CreateUser(ctx context.Context, user model.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.users[user.Email]; ok {
		return fmt.Errorf("user %s: %w", user.Email, model.ErrAlreadyExists)
	}

	r.users[user.Email] = user
	return nil
}

// GetUserByEmail retrieves a user by email.
func (r *UserRepository) GetUserByEmail(ctx context.Context, email string) (*model.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	user, ok := r.users[email]
	if !ok {
		return nil, fmt.Errorf("user %s: %w", email, model.ErrNotFound)
	}

	userCopy := user
	return &userCopy, nil
}
