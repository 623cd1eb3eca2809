package auth

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/pkg/errors"

	"marketplace/config"
	"marketplace/internal/domain/entity"
	"marketplace/internal/domain/service"
)

// jwtService is a concrete implementation of the TokenService interface using
// HS256-signed JWTs with {id, iss, exp} claims.
type jwtService struct {
	secret    string
	issuer    string
	expiresIn time.Duration
}

// NewJWTService is the constructor for jwtService. The signing secret, issuer
// and expiry offset come from an explicit configuration section instead of
// ambient global state.
func NewJWTService(cfg *config.Config) (service.TokenService, error) {
	if cfg.Token == nil || cfg.Token.Secret == "" {
		return nil, errors.New("token secret must be provided")
	}
	if cfg.Token.ExpiresIn <= 0 {
		return nil, errors.New("token expiry must be positive")
	}

	return &jwtService{
		secret:    cfg.Token.Secret,
		issuer:    cfg.Token.Issuer,
		expiresIn: cfg.Token.ExpiresIn,
	}, nil
}

// Issue signs a new session token binding the account identifier.
// Expiration is current time plus the configured offset; signing failures
// propagate unwrapped semantics to the caller.
func (s *jwtService) Issue(accountID entity.ID) (string, error) {
	now := time.Now()
	claims := service.Claims{
		AccountID: accountID,
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    s.issuer,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(s.expiresIn)),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte(s.secret))
	if err != nil {
		return "", errors.Wrap(err, "failed to sign session token")
	}

	return signed, nil
}

// Validate parses a token string and returns its claims.
func (s *jwtService) Validate(tokenString string) (*service.Claims, error) {
	claims := &service.Claims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (any, error) {
		// Ensure the signing method is what we expect.
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, jwt.ErrSignatureInvalid
		}

		return []byte(s.secret), nil
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to parse session token")
	}
	if !token.Valid {
		return nil, errors.New("invalid session token")
	}

	return claims, nil
}
