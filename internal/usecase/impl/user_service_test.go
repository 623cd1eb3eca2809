package impl

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"marketplace/internal/domain/entity"
	domainerrors "marketplace/internal/domain/errors"
	"marketplace/internal/domain/repository"
	mockrepo "marketplace/internal/mocks/repository"
	mocksvc "marketplace/internal/mocks/service"
	"marketplace/internal/usecase"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newTestLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func newUserService(userRepo *mockrepo.UserRepository, hasher *mocksvc.PasswordHasher, tokenService *mocksvc.TokenService) usecase.UserUsecase {
	return NewUserService(UserServiceParams{
		UserRepo:     userRepo,
		Hasher:       hasher,
		TokenService: tokenService,
		Logger:       newTestLogger(),
	})
}

func validSignUpInput() *usecase.SignUpInput {
	return &usecase.SignUpInput{
		EmailAddress: "alice@example.com",
		Firstname:    "Alice",
		Lastname:     "Cooper",
		Password:     "s3cret-pass",
	}
}

func TestUserService_SignUp(t *testing.T) {
	t.Parallel()

	ctx := context.Background()

	t.Run("registers the account and returns a token", func(t *testing.T) {
		t.Parallel()

		userRepo := new(mockrepo.UserRepository)
		hasher := new(mocksvc.PasswordHasher)
		tokenService := new(mocksvc.TokenService)
		svc := newUserService(userRepo, hasher, tokenService)

		userRepo.On("ExistsByEmail", ctx, "alice@example.com").Return(false, nil)
		hasher.On("Hash", "s3cret-pass").Return("$2a$10$digest", nil)
		userRepo.On("Create", ctx, mock.AnythingOfType("*entity.User")).Run(func(args mock.Arguments) {
			created := args.Get(1).(*entity.User)
			assert.Equal(t, entity.EntityTypeAccount, created.ID.Type())
			assert.Equal(t, "alice@example.com", created.EmailAddress)
			assert.Equal(t, "$2a$10$digest", created.PasswordHash)
		}).Return(nil)
		tokenService.On("Issue", mock.AnythingOfType("entity.ID")).Return("signed.jwt.token", nil)

		out, err := svc.SignUp(ctx, validSignUpInput())
		require.NoError(t, err)
		assert.Equal(t, "signed.jwt.token", out.Token)

		userRepo.AssertExpectations(t)
		hasher.AssertExpectations(t)
		tokenService.AssertExpectations(t)
	})

	t.Run("rejects an already used email", func(t *testing.T) {
		t.Parallel()

		userRepo := new(mockrepo.UserRepository)
		svc := newUserService(userRepo, new(mocksvc.PasswordHasher), new(mocksvc.TokenService))

		userRepo.On("ExistsByEmail", ctx, "alice@example.com").Return(true, nil)

		out, err := svc.SignUp(ctx, validSignUpInput())
		assert.Nil(t, out)
		assert.ErrorIs(t, err, domainerrors.ErrDuplicateEmail)
		userRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
	})

	t.Run("maps a duplicate key on insert to the duplicate email error", func(t *testing.T) {
		t.Parallel()

		userRepo := new(mockrepo.UserRepository)
		hasher := new(mocksvc.PasswordHasher)
		svc := newUserService(userRepo, hasher, new(mocksvc.TokenService))

		userRepo.On("ExistsByEmail", ctx, "alice@example.com").Return(false, nil)
		hasher.On("Hash", "s3cret-pass").Return("$2a$10$digest", nil)
		userRepo.On("Create", ctx, mock.AnythingOfType("*entity.User")).Return(repository.ErrDuplicateEmail)

		out, err := svc.SignUp(ctx, validSignUpInput())
		assert.Nil(t, out)
		assert.ErrorIs(t, err, domainerrors.ErrDuplicateEmail)
	})

	t.Run("rejects an invalid email address", func(t *testing.T) {
		t.Parallel()

		svc := newUserService(new(mockrepo.UserRepository), new(mocksvc.PasswordHasher), new(mocksvc.TokenService))

		input := validSignUpInput()
		input.EmailAddress = "not-an-email"

		out, err := svc.SignUp(ctx, input)
		assert.Nil(t, out)

		var appErr domainerrors.AppError
		require.ErrorAs(t, err, &appErr)
		assert.Equal(t, domainerrors.ErrValidationFailed.ErrorCode(), appErr.ErrorCode())
	})

	t.Run("propagates repository failures", func(t *testing.T) {
		t.Parallel()

		userRepo := new(mockrepo.UserRepository)
		svc := newUserService(userRepo, new(mocksvc.PasswordHasher), new(mocksvc.TokenService))

		userRepo.On("ExistsByEmail", ctx, "alice@example.com").Return(false, errors.New("connection reset"))

		out, err := svc.SignUp(ctx, validSignUpInput())
		assert.Nil(t, out)
		assert.ErrorContains(t, err, "failed to check email existence")
	})
}

func TestUserService_Authenticate(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	storedUser := &entity.User{
		ID:           entity.NewID(entity.EntityTypeAccount),
		EmailAddress: "alice@example.com",
		PasswordHash: "$2a$10$digest",
	}

	t.Run("issues a token for valid credentials", func(t *testing.T) {
		t.Parallel()

		userRepo := new(mockrepo.UserRepository)
		hasher := new(mocksvc.PasswordHasher)
		tokenService := new(mocksvc.TokenService)
		svc := newUserService(userRepo, hasher, tokenService)

		userRepo.On("FindByEmail", ctx, "alice@example.com").Return(storedUser, nil)
		hasher.On("Check", "s3cret-pass", "$2a$10$digest").Return(true)
		tokenService.On("Issue", storedUser.ID).Return("signed.jwt.token", nil)

		out, err := svc.Authenticate(ctx, &usecase.AuthenticateInput{
			EmailAddress: "alice@example.com",
			Password:     "s3cret-pass",
		})
		require.NoError(t, err)
		assert.Equal(t, "signed.jwt.token", out.Token)
	})

	t.Run("reports unknown emails as user not found", func(t *testing.T) {
		t.Parallel()

		userRepo := new(mockrepo.UserRepository)
		svc := newUserService(userRepo, new(mocksvc.PasswordHasher), new(mocksvc.TokenService))

		userRepo.On("FindByEmail", ctx, "ghost@example.com").Return(nil, repository.ErrUserNotFound)

		out, err := svc.Authenticate(ctx, &usecase.AuthenticateInput{
			EmailAddress: "ghost@example.com",
			Password:     "whatever-pass",
		})
		assert.Nil(t, out)
		assert.ErrorIs(t, err, domainerrors.ErrUserNotFound)
	})

	t.Run("rejects a wrong password as unauthorized", func(t *testing.T) {
		t.Parallel()

		userRepo := new(mockrepo.UserRepository)
		hasher := new(mocksvc.PasswordHasher)
		tokenService := new(mocksvc.TokenService)
		svc := newUserService(userRepo, hasher, tokenService)

		userRepo.On("FindByEmail", ctx, "alice@example.com").Return(storedUser, nil)
		hasher.On("Check", "wrong-pass", "$2a$10$digest").Return(false)

		out, err := svc.Authenticate(ctx, &usecase.AuthenticateInput{
			EmailAddress: "alice@example.com",
			Password:     "wrong-pass",
		})
		assert.Nil(t, out)
		assert.ErrorIs(t, err, domainerrors.ErrUnauthorized)
		tokenService.AssertNotCalled(t, "Issue", mock.Anything)
	})
}
