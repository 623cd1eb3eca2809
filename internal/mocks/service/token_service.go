package service

import (
	"marketplace/internal/domain/entity"
	domainservice "marketplace/internal/domain/service"

	"github.com/stretchr/testify/mock"
)

// TokenService is a mock implementation of service.TokenService.
type TokenService struct {
	mock.Mock
}

func (m *TokenService) Issue(accountID entity.ID) (string, error) {
	args := m.Called(accountID)

	return args.String(0), args.Error(1)
}

func (m *TokenService) Validate(tokenString string) (*domainservice.Claims, error) {
	args := m.Called(tokenString)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).(*domainservice.Claims), args.Error(1)
}
