// Package usecase contains the application-specific business rules.
// It orchestrates the domain layer to perform tasks.
package usecase

import "context"

// --- Input DTOs ---

// SignUpInput defines the data required to register a new account.
type SignUpInput struct {
	EmailAddress string `json:"emailAddress" validate:"required,email"`
	Firstname    string `json:"firstname" validate:"required"`
	Lastname     string `json:"lastname" validate:"required"`
	Password     string `json:"password" validate:"required"`
}

// AuthenticateInput defines the data required to authenticate an account.
type AuthenticateInput struct {
	EmailAddress string `json:"emailAddress" validate:"required,email"`
	Password     string `json:"password" validate:"required"`
}

// --- Output DTOs ---

// AuthOutput carries the signed session token returned by signUp and authenticate.
type AuthOutput struct {
	Token string `json:"token"`
}

// UserUsecase defines the interface for account-related business operations.
// This is the contract that the delivery layer depends on.
type UserUsecase interface {
	// SignUp registers a new account and issues a session token for it.
	SignUp(ctx context.Context, input *SignUpInput) (*AuthOutput, error)

	// Authenticate verifies credentials and issues a session token.
	Authenticate(ctx context.Context, input *AuthenticateInput) (*AuthOutput, error)
}
