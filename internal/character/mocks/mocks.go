package mocks

import (
	"context"

	"item_simulator/domain"
	"item_simulator/internal/service/middleware"

	"github.com/stretchr/testify/mock"
)

type MockCharacterUsecase struct {
	mock.Mock
}

func (m *MockCharacterUsecase) CreateCharacter(ctx context.Context, username string, req domain.CreateCharacterRequest) (*domain.CreateCharacterResponse, error) {
	args := m.Called(ctx, username, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.CreateCharacterResponse), args.Error(1)
}

func (m *MockCharacterUsecase) DeleteCharacter(ctx context.Context, username string, characterID int) error {
	args := m.Called(ctx, username, characterID)
	return args.Error(0)
}

func (m *MockCharacterUsecase) GetCharacterDetail(ctx context.Context, viewer string, characterID int) (*domain.CharacterDetailResponse, error) {
	args := m.Called(ctx, viewer, characterID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.CharacterDetailResponse), args.Error(1)
}

func (m *MockCharacterUsecase) EarnMoney(ctx context.Context, username string, characterID int) (int, error) {
	args := m.Called(ctx, username, characterID)
	return args.Int(0), args.Error(1)
}

type MockCharacterRepository struct {
	mock.Mock
}

func (m *MockCharacterRepository) CreateCharacter(ctx context.Context, username string, name string, stats domain.Stats, money int) (*domain.Character, *domain.CharacterStats, error) {
	args := m.Called(ctx, username, name, stats, money)
	if args.Get(0) == nil {
		return nil, nil, args.Error(2)
	}
	return args.Get(0).(*domain.Character), args.Get(1).(*domain.CharacterStats), args.Error(2)
}

func (m *MockCharacterRepository) DeleteCharacter(ctx context.Context, username string, characterID int) error {
	args := m.Called(ctx, username, characterID)
	return args.Error(0)
}

func (m *MockCharacterRepository) GetCharacterDetail(ctx context.Context, characterID int) (*domain.Character, *domain.CharacterStats, string, error) {
	args := m.Called(ctx, characterID)
	if args.Get(0) == nil {
		return nil, nil, "", args.Error(3)
	}
	return args.Get(0).(*domain.Character), args.Get(1).(*domain.CharacterStats), args.String(2), args.Error(3)
}

func (m *MockCharacterRepository) EarnMoney(ctx context.Context, username string, characterID int, amount int) (int, error) {
	args := m.Called(ctx, username, characterID, amount)
	return args.Int(0), args.Error(1)
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
