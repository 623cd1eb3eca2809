package repository

import (
	"context"
	"errors"

	"marketplace/internal/domain/entity"
)

// ErrProductNotFound is a domain-specific error returned when a product is not found.
var ErrProductNotFound = errors.New("product not found")

// ErrDuplicateName is returned by Create when the product name is already in
// use. As with emails, the unique constraint lives in the store.
var ErrDuplicateName = errors.New("product name already in use")

// ProductRepository defines the standard operations for product persistence.
type ProductRepository interface {
	// FindByID retrieves a single product by its typed identifier.
	FindByID(ctx context.Context, id entity.ID) (*entity.Product, error)

	// ExistsByName reports whether a product with the name exists.
	ExistsByName(ctx context.Context, name string) (bool, error)

	// Create persists a new product entity. Returns ErrDuplicateName when the
	// name is already taken.
	Create(ctx context.Context, product *entity.Product) error

	// Update modifies an existing product entity in the storage.
	Update(ctx context.Context, product *entity.Product) error
}
