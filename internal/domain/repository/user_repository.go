// Package repository defines the interfaces for the persistence layer.
// These interfaces act as a contract between the domain/application layers and the infrastructure layer.
package repository

import (
	"context"
	"errors"

	"marketplace/internal/domain/entity"
)

// ErrUserNotFound is a domain-specific error returned when a user is not found.
var ErrUserNotFound = errors.New("user not found")

// ErrDuplicateEmail is returned by Create when the email address is already
// registered. Uniqueness is enforced by the store itself, so the insert is
// the atomic conditional operation rather than a prior existence check.
var ErrDuplicateEmail = errors.New("email address already registered")

// UserRepository defines the standard operations for account persistence.
// The application layer depends on this interface, not the concrete implementation.
type UserRepository interface {
	// FindByID retrieves a single user by their typed account identifier.
	FindByID(ctx context.Context, id entity.ID) (*entity.User, error)

	// FindByEmail retrieves a single user by their email address.
	FindByEmail(ctx context.Context, email string) (*entity.User, error)

	// ExistsByEmail reports whether an account with the email is registered.
	ExistsByEmail(ctx context.Context, email string) (bool, error)

	// Create persists a new user entity. Returns ErrDuplicateEmail when the
	// email address is already taken.
	Create(ctx context.Context, user *entity.User) error
}
