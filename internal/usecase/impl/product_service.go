package impl

import (
	"context"
	"log/slog"

	"marketplace/internal/domain/entity"
	domainerrors "marketplace/internal/domain/errors"
	"marketplace/internal/domain/repository"
	"marketplace/internal/usecase"

	"github.com/go-playground/validator/v10"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// productService implements the ProductUsecase interface.
type productService struct {
	productRepo repository.ProductRepository
	validate    *validator.Validate
	logger      *slog.Logger
}

// ProductServiceParams holds dependencies for productService, injected by Fx.
type ProductServiceParams struct {
	fx.In

	ProductRepo repository.ProductRepository
	Logger      *slog.Logger
}

// NewProductService is the constructor for productService.
func NewProductService(params ProductServiceParams) usecase.ProductUsecase {
	return &productService{
		productRepo: params.ProductRepo,
		validate:    validator.New(),
		logger:      params.Logger,
	}
}

// CreateProduct persists a new product under a freshly generated identifier.
// An authenticated caller becomes the owner; anonymous creation is allowed
// and leaves the owner unset.
func (srv *productService) CreateProduct(ctx context.Context, callerID entity.ID, input *usecase.CreateProductInput) (*entity.Product, error) {
	if err := srv.validate.Struct(input); err != nil {
		return nil, domainerrors.ErrValidationFailed.WrapMessage(err.Error())
	}

	srv.logger.Debug("Creating product", slog.String("name", input.Name))

	productID := entity.NewID(entity.EntityTypeProduct)

	taken, err := srv.productRepo.ExistsByName(ctx, input.Name)
	if err != nil {
		return nil, errors.Wrap(err, "failed to check product name existence")
	}
	if taken {
		srv.logger.Warn("Product creation rejected, name already used", slog.String("name", input.Name))

		return nil, domainerrors.ErrDuplicateName
	}

	newProduct := &entity.Product{
		ID:          productID,
		Name:        input.Name,
		Description: input.Description,
		OwnerID:     callerID,
	}

	if err := srv.productRepo.Create(ctx, newProduct); err != nil {
		if errors.Is(err, repository.ErrDuplicateName) {
			return nil, domainerrors.ErrDuplicateName
		}

		return nil, errors.Wrap(err, "failed to create product")
	}

	srv.logger.Info("Product created", slog.String("productID", newProduct.ID.String()))

	return newProduct, nil
}

// UpdateProduct applies the update body to an existing product. Only the
// owning account may mutate a product; non-empty body fields replace the
// stored values.
func (srv *productService) UpdateProduct(ctx context.Context, callerID entity.ID, input *usecase.UpdateProductInput) (*entity.Product, error) {
	if callerID.IsZero() {
		return nil, domainerrors.ErrInvalidAuthHeader
	}
	if err := srv.validate.Struct(input); err != nil {
		return nil, domainerrors.ErrValidationFailed.WrapMessage(err.Error())
	}

	srv.logger.Debug("Updating product", slog.String("productID", input.ID), slog.String("callerID", callerID.String()))

	product, err := srv.productRepo.FindByID(ctx, entity.ID(input.ID))
	if err != nil {
		if errors.Is(err, repository.ErrProductNotFound) {
			return nil, domainerrors.ErrProductNotFound
		}

		return nil, errors.Wrap(err, "failed to find product by id")
	}

	if product.OwnerID != callerID {
		srv.logger.Warn("Product update rejected, caller is not the owner",
			slog.String("productID", product.ID.String()),
			slog.String("callerID", callerID.String()),
		)

		return nil, domainerrors.ErrNotOwner
	}

	if input.Body.Name != "" {
		product.Name = input.Body.Name
	}
	if input.Body.Description != "" {
		product.Description = input.Body.Description
	}

	if err := srv.productRepo.Update(ctx, product); err != nil {
		if errors.Is(err, repository.ErrDuplicateName) {
			return nil, domainerrors.ErrDuplicateName
		}

		return nil, errors.Wrap(err, "failed to update product")
	}

	srv.logger.Info("Product updated", slog.String("productID", product.ID.String()))

	return product, nil
}
