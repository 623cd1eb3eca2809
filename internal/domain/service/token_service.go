package service

import (
	"github.com/golang-jwt/jwt/v5"

	"marketplace/internal/domain/entity"
)

// Claims defines the custom claims carried by a session token.
// The account identifier travels in the "id" claim.
type Claims struct {
	AccountID entity.ID `json:"id"`
	jwt.RegisteredClaims
}

// TokenService defines the interface for issuing and validating session tokens.
// Tokens are stateless assertions of the account identifier; they expire after
// a configured offset and are never revoked server-side.
type TokenService interface {
	// Issue signs a new session token for the given account.
	Issue(accountID entity.ID) (string, error)

	// Validate checks a token string and returns its claims.
	Validate(tokenString string) (*Claims, error)
}
