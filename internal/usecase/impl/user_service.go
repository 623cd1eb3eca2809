// Package impl contains the implementation of the application's business logic.
package impl

import (
	"context"
	"log/slog"

	"marketplace/internal/domain/entity"
	domainerrors "marketplace/internal/domain/errors"
	"marketplace/internal/domain/repository"
	"marketplace/internal/domain/service"
	"marketplace/internal/usecase"

	"github.com/go-playground/validator/v10"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// userService implements the UserUsecase interface.
type userService struct {
	userRepo     repository.UserRepository
	hasher       service.PasswordHasher
	tokenService service.TokenService
	validate     *validator.Validate
	logger       *slog.Logger
}

// UserServiceParams holds dependencies for userService, injected by Fx.
type UserServiceParams struct {
	fx.In

	UserRepo     repository.UserRepository
	Hasher       service.PasswordHasher
	TokenService service.TokenService
	Logger       *slog.Logger
}

// NewUserService is the constructor for userService. It receives all dependencies as interfaces.
func NewUserService(params UserServiceParams) usecase.UserUsecase {
	return &userService{
		userRepo:     params.UserRepo,
		hasher:       params.Hasher,
		tokenService: params.TokenService,
		validate:     validator.New(),
		logger:       params.Logger,
	}
}

// SignUp orchestrates the account registration flow: validate the input,
// reject registered emails, hash the password, persist the account, and
// issue a session token bound to the new account identifier.
func (srv *userService) SignUp(ctx context.Context, input *usecase.SignUpInput) (*usecase.AuthOutput, error) {
	if err := srv.validate.Struct(input); err != nil {
		return nil, domainerrors.ErrValidationFailed.WrapMessage(err.Error())
	}

	srv.logger.Debug("Starting sign-up", slog.String("email", input.EmailAddress))

	accountID := entity.NewID(entity.EntityTypeAccount)

	taken, err := srv.userRepo.ExistsByEmail(ctx, input.EmailAddress)
	if err != nil {
		return nil, errors.Wrap(err, "failed to check email existence")
	}
	if taken {
		srv.logger.Warn("Sign-up rejected, email already used", slog.String("email", input.EmailAddress))

		return nil, domainerrors.ErrDuplicateEmail
	}

	passwordHash, err := srv.hasher.Hash(input.Password)
	if err != nil {
		return nil, errors.Wrap(err, "failed to hash password during sign-up")
	}

	newUser := &entity.User{
		ID:           accountID,
		EmailAddress: input.EmailAddress,
		Firstname:    input.Firstname,
		Lastname:     input.Lastname,
		PasswordHash: passwordHash,
	}

	if err := srv.userRepo.Create(ctx, newUser); err != nil {
		// The store's unique constraint closes the race between the existence
		// check above and this insert.
		if errors.Is(err, repository.ErrDuplicateEmail) {
			return nil, domainerrors.ErrDuplicateEmail
		}

		return nil, errors.Wrap(err, "failed to create user during sign-up")
	}

	token, err := srv.tokenService.Issue(newUser.ID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to issue token during sign-up")
	}

	srv.logger.Info("Account registered", slog.String("accountID", newUser.ID.String()))

	return &usecase.AuthOutput{Token: token}, nil
}

// Authenticate verifies the credentials against the stored digest and issues
// a fresh session token on success.
func (srv *userService) Authenticate(ctx context.Context, input *usecase.AuthenticateInput) (*usecase.AuthOutput, error) {
	if err := srv.validate.Struct(input); err != nil {
		return nil, domainerrors.ErrValidationFailed.WrapMessage(err.Error())
	}

	srv.logger.Debug("Starting authentication", slog.String("email", input.EmailAddress))

	foundUser, err := srv.userRepo.FindByEmail(ctx, input.EmailAddress)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			srv.logger.Warn("Authentication for unknown email", slog.String("email", input.EmailAddress))

			return nil, domainerrors.ErrUserNotFound
		}

		return nil, errors.Wrap(err, "failed to find user by email")
	}

	if !srv.hasher.Check(input.Password, foundUser.PasswordHash) {
		srv.logger.Warn("Authentication password mismatch", slog.String("accountID", foundUser.ID.String()))

		return nil, domainerrors.ErrUnauthorized
	}

	token, err := srv.tokenService.Issue(foundUser.ID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to issue token during authentication")
	}

	srv.logger.Debug("Account authenticated", slog.String("accountID", foundUser.ID.String()))

	return &usecase.AuthOutput{Token: token}, nil
}
