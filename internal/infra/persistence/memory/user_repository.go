// Package memory provides in-memory repository implementations used by tests
// and local development. Uniqueness constraints mirror the database schema.
package memory

import (
	"context"
	"sync"
	"time"

	"marketplace/internal/domain/entity"
	"marketplace/internal/domain/repository"
)

var _ repository.UserRepository = (*UserRepository)(nil)

// UserRepository is a thread-safe in-memory implementation of repository.UserRepository.
type UserRepository struct {
	mu       sync.RWMutex
	users    map[entity.ID]*entity.User
	emailIDs map[string]entity.ID
}

// NewUserRepository creates an empty in-memory user store.
func NewUserRepository() *UserRepository {
	return &UserRepository{
		users:    make(map[entity.ID]*entity.User),
		emailIDs: make(map[string]entity.ID),
	}
}

// FindByID retrieves a single user by their typed account identifier.
func (repo *UserRepository) FindByID(_ context.Context, id entity.ID) (*entity.User, error) {
	repo.mu.RLock()
	defer repo.mu.RUnlock()

	user, ok := repo.users[id]
	if !ok {
		return nil, repository.ErrUserNotFound
	}
	clone := *user

	return &clone, nil
}

// FindByEmail retrieves a single user by their email address.
func (repo *UserRepository) FindByEmail(_ context.Context, email string) (*entity.User, error) {
	repo.mu.RLock()
	defer repo.mu.RUnlock()

	id, ok := repo.emailIDs[email]
	if !ok {
		return nil, repository.ErrUserNotFound
	}
	clone := *repo.users[id]

	return &clone, nil
}

// ExistsByEmail reports whether an account with the email is registered.
func (repo *UserRepository) ExistsByEmail(_ context.Context, email string) (bool, error) {
	repo.mu.RLock()
	defer repo.mu.RUnlock()

	_, ok := repo.emailIDs[email]

	return ok, nil
}

// Create persists a new user, enforcing email uniqueness atomically under the lock.
func (repo *UserRepository) Create(_ context.Context, user *entity.User) error {
	repo.mu.Lock()
	defer repo.mu.Unlock()

	if _, taken := repo.emailIDs[user.EmailAddress]; taken {
		return repository.ErrDuplicateEmail
	}

	now := time.Now()
	user.CreatedAt = now
	user.UpdatedAt = now

	clone := *user
	repo.users[user.ID] = &clone
	repo.emailIDs[user.EmailAddress] = user.ID

	return nil
}

// Len reports the number of stored accounts.
func (repo *UserRepository) Len() int {
	repo.mu.RLock()
	defer repo.mu.RUnlock()

	return len(repo.users)
}
