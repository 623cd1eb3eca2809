package usecase

import (
	"context"

	"marketplace/internal/domain/entity"
)

// CreateProductInput defines the data required to create a product.
type CreateProductInput struct {
	Name        string `json:"name" validate:"required"`
	Description string `json:"description"`
}

// UpdateProductBody carries the mutable product fields of an update.
// Empty fields are left unchanged.
type UpdateProductBody struct {
	Name        string `json:"name"`
	Description string `json:"description"`
}

// UpdateProductInput identifies the product to update and the new field values.
type UpdateProductInput struct {
	ID   string            `json:"id" validate:"required"`
	Body UpdateProductBody `json:"body"`
}

// ProductUsecase defines the interface for product-related business operations.
type ProductUsecase interface {
	// CreateProduct persists a new product. The caller identifier is recorded
	// as the owner when present; creation itself does not require an
	// authenticated caller.
	CreateProduct(ctx context.Context, callerID entity.ID, input *CreateProductInput) (*entity.Product, error)

	// UpdateProduct applies the update body to an existing product. It
	// requires an authenticated caller who owns the product.
	UpdateProduct(ctx context.Context, callerID entity.ID, input *UpdateProductInput) (*entity.Product, error)
}
