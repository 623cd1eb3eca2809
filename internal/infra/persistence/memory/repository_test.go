package memory

import (
	"context"
	"sync"
	"testing"

	"marketplace/internal/domain/entity"
	"marketplace/internal/domain/repository"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUserRepository(t *testing.T) {
	t.Parallel()

	ctx := context.Background()

	t.Run("stores and finds users by id and email", func(t *testing.T) {
		t.Parallel()

		repo := NewUserRepository()
		user := &entity.User{
			ID:           entity.NewID(entity.EntityTypeAccount),
			EmailAddress: "alice@example.com",
			PasswordHash: "$2a$10$digest",
		}
		require.NoError(t, repo.Create(ctx, user))
		assert.False(t, user.CreatedAt.IsZero())

		byID, err := repo.FindByID(ctx, user.ID)
		require.NoError(t, err)
		assert.Equal(t, "alice@example.com", byID.EmailAddress)

		byEmail, err := repo.FindByEmail(ctx, "alice@example.com")
		require.NoError(t, err)
		assert.Equal(t, user.ID, byEmail.ID)

		exists, err := repo.ExistsByEmail(ctx, "alice@example.com")
		require.NoError(t, err)
		assert.True(t, exists)
	})

	t.Run("rejects duplicate emails", func(t *testing.T) {
		t.Parallel()

		repo := NewUserRepository()
		require.NoError(t, repo.Create(ctx, &entity.User{
			ID:           entity.NewID(entity.EntityTypeAccount),
			EmailAddress: "alice@example.com",
		}))

		err := repo.Create(ctx, &entity.User{
			ID:           entity.NewID(entity.EntityTypeAccount),
			EmailAddress: "alice@example.com",
		})
		assert.ErrorIs(t, err, repository.ErrDuplicateEmail)
		assert.Equal(t, 1, repo.Len())
	})

	t.Run("reports missing users", func(t *testing.T) {
		t.Parallel()

		repo := NewUserRepository()

		_, err := repo.FindByID(ctx, entity.NewID(entity.EntityTypeAccount))
		assert.ErrorIs(t, err, repository.ErrUserNotFound)

		_, err = repo.FindByEmail(ctx, "ghost@example.com")
		assert.ErrorIs(t, err, repository.ErrUserNotFound)
	})

	t.Run("keeps a single winner under concurrent duplicate creates", func(t *testing.T) {
		t.Parallel()

		repo := NewUserRepository()
		var wg sync.WaitGroup
		for range 16 {
			wg.Add(1)
			go func() {
				defer wg.Done()
				_ = repo.Create(ctx, &entity.User{
					ID:           entity.NewID(entity.EntityTypeAccount),
					EmailAddress: "alice@example.com",
				})
			}()
		}
		wg.Wait()

		assert.Equal(t, 1, repo.Len())
	})
}

func TestProductRepository(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	ownerID := entity.NewID(entity.EntityTypeAccount)

	newProduct := func(name string) *entity.Product {
		return &entity.Product{
			ID:      entity.NewID(entity.EntityTypeProduct),
			Name:    name,
			OwnerID: ownerID,
		}
	}

	t.Run("rejects duplicate names on create", func(t *testing.T) {
		t.Parallel()

		repo := NewProductRepository()
		require.NoError(t, repo.Create(ctx, newProduct("Teapot")))

		err := repo.Create(ctx, newProduct("Teapot"))
		assert.ErrorIs(t, err, repository.ErrDuplicateName)
	})

	t.Run("re-indexes the name on update", func(t *testing.T) {
		t.Parallel()

		repo := NewProductRepository()
		product := newProduct("Teapot")
		require.NoError(t, repo.Create(ctx, product))

		product.Name = "Kettle"
		require.NoError(t, repo.Update(ctx, product))

		exists, err := repo.ExistsByName(ctx, "Teapot")
		require.NoError(t, err)
		assert.False(t, exists)

		exists, err = repo.ExistsByName(ctx, "Kettle")
		require.NoError(t, err)
		assert.True(t, exists)
	})

	t.Run("rejects renaming onto a taken name", func(t *testing.T) {
		t.Parallel()

		repo := NewProductRepository()
		require.NoError(t, repo.Create(ctx, newProduct("Teapot")))
		product := newProduct("Kettle")
		require.NoError(t, repo.Create(ctx, product))

		product.Name = "Teapot"
		assert.ErrorIs(t, repo.Update(ctx, product), repository.ErrDuplicateName)
	})

	t.Run("preserves the creation time across updates", func(t *testing.T) {
		t.Parallel()

		repo := NewProductRepository()
		product := newProduct("Teapot")
		require.NoError(t, repo.Create(ctx, product))
		createdAt := product.CreatedAt

		product.Description = "Ceramic, 1L"
		require.NoError(t, repo.Update(ctx, product))

		stored, err := repo.FindByID(ctx, product.ID)
		require.NoError(t, err)
		assert.Equal(t, createdAt, stored.CreatedAt)
	})

	t.Run("refreshes the update time on the passed entity", func(t *testing.T) {
		t.Parallel()

		repo := NewProductRepository()
		product := newProduct("Teapot")
		require.NoError(t, repo.Create(ctx, product))

		product.Description = "Ceramic, 1L"
		require.NoError(t, repo.Update(ctx, product))

		stored, err := repo.FindByID(ctx, product.ID)
		require.NoError(t, err)
		assert.Equal(t, stored.UpdatedAt, product.UpdatedAt)
		assert.False(t, product.UpdatedAt.Before(product.CreatedAt))
	})

	t.Run("reports updates to missing products", func(t *testing.T) {
		t.Parallel()

		repo := NewProductRepository()
		assert.ErrorIs(t, repo.Update(ctx, newProduct("Ghost")), repository.ErrProductNotFound)
	})
}
