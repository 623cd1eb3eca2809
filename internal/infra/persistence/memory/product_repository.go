package memory

import (
	"context"
	"sync"
	"time"

	"marketplace/internal/domain/entity"
	"marketplace/internal/domain/repository"
)

var _ repository.ProductRepository = (*ProductRepository)(nil)

// ProductRepository is a thread-safe in-memory implementation of repository.ProductRepository.
type ProductRepository struct {
	mu       sync.RWMutex
	products map[entity.ID]*entity.Product
	nameIDs  map[string]entity.ID
}

// NewProductRepository creates an empty in-memory product store.
func NewProductRepository() *ProductRepository {
	return &ProductRepository{
		products: make(map[entity.ID]*entity.Product),
		nameIDs:  make(map[string]entity.ID),
	}
}

// FindByID retrieves a single product by its typed identifier.
func (repo *ProductRepository) FindByID(_ context.Context, id entity.ID) (*entity.Product, error) {
	repo.mu.RLock()
	defer repo.mu.RUnlock()

	product, ok := repo.products[id]
	if !ok {
		return nil, repository.ErrProductNotFound
	}
	clone := *product

	return &clone, nil
}

// ExistsByName reports whether a product with the name exists.
func (repo *ProductRepository) ExistsByName(_ context.Context, name string) (bool, error) {
	repo.mu.RLock()
	defer repo.mu.RUnlock()

	_, ok := repo.nameIDs[name]

	return ok, nil
}

// Create persists a new product, enforcing name uniqueness atomically under the lock.
func (repo *ProductRepository) Create(_ context.Context, product *entity.Product) error {
	repo.mu.Lock()
	defer repo.mu.Unlock()

	if _, taken := repo.nameIDs[product.Name]; taken {
		return repository.ErrDuplicateName
	}

	now := time.Now()
	product.CreatedAt = now
	product.UpdatedAt = now

	clone := *product
	repo.products[product.ID] = &clone
	repo.nameIDs[product.Name] = product.ID

	return nil
}

// Update modifies an existing product in place.
func (repo *ProductRepository) Update(_ context.Context, product *entity.Product) error {
	repo.mu.Lock()
	defer repo.mu.Unlock()

	current, ok := repo.products[product.ID]
	if !ok {
		return repository.ErrProductNotFound
	}

	if product.Name != current.Name {
		if owner, taken := repo.nameIDs[product.Name]; taken && owner != product.ID {
			return repository.ErrDuplicateName
		}
		delete(repo.nameIDs, current.Name)
		repo.nameIDs[product.Name] = product.ID
	}

	product.CreatedAt = current.CreatedAt
	product.UpdatedAt = time.Now()

	clone := *product
	repo.products[product.ID] = &clone

	return nil
}
