package mocks

import (
	"context"

	"item_simulator/domain"
	"item_simulator/internal/service/middleware"

	"github.com/stretchr/testify/mock"
)

type MockAuthUsecase struct {
	mock.Mock
}

func (m *MockAuthUsecase) SignUp(ctx context.Context, username string, password string, confirmPassword string) (string, error) {
	args := m.Called(ctx, username, password, confirmPassword)
	return args.String(0), args.Error(1)
}

func (m *MockAuthUsecase) SignIn(ctx context.Context, username string, password string) (string, string, error) {
	args := m.Called(ctx, username, password)
	return args.String(0), args.String(1), args.Error(2)
}

type MockAccountRepository struct {
	mock.Mock
}

func (m *MockAccountRepository) CreateAccount(ctx context.Context, username string, passwordHash string, refreshToken string) (*domain.Account, error) {
	args := m.Called(ctx, username, passwordHash, refreshToken)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Account), args.Error(1)
}

func (m *MockAccountRepository) GetAccountByUsername(ctx context.Context, username string) (*domain.Account, error) {
	args := m.Called(ctx, username)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Account), args.Error(1)
}

func (m *MockAccountRepository) UpdateRefreshToken(ctx context.Context, username string, refreshToken string) error {
	args := m.Called(ctx, username, refreshToken)
	return args.Error(0)
}

func (m *MockAccountRepository) LoadRefreshTokens(ctx context.Context) (map[string]string, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(map[string]string), args.Error(1)
}

type MockJwtTokenService struct {
	mock.Mock
}

func (m *MockJwtTokenService) Create(username string) (string, error) {
	args := m.Called(username)
	return args.String(0), args.Error(1)
}

func (m *MockJwtTokenService) Validate(tokenString string) (*middleware.JwtClaims, error) {
	args := m.Called(tokenString)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*middleware.JwtClaims), args.Error(1)
}

func (m *MockJwtTokenService) DecodeUnverified(tokenString string) (*middleware.JwtClaims, error) {
	args := m.Called(tokenString)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*middleware.JwtClaims), args.Error(1)
}
