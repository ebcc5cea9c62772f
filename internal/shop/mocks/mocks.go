package mocks

import (
	"context"

	"item_simulator/domain"

	"github.com/stretchr/testify/mock"
)

type MockShopUsecase struct {
	mock.Mock
}

func (m *MockShopUsecase) BuyItems(ctx context.Context, username string, characterID int, lines []domain.BuyOrderLine) error {
	args := m.Called(ctx, username, characterID, lines)
	return args.Error(0)
}

func (m *MockShopUsecase) SellItem(ctx context.Context, username string, characterID int, itemID int, count int) (*domain.SellResultResponse, error) {
	args := m.Called(ctx, username, characterID, itemID, count)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.SellResultResponse), args.Error(1)
}

type MockShopRepository struct {
	mock.Mock
}

func (m *MockShopRepository) BuyItems(ctx context.Context, username string, characterID int, lines []domain.BuyOrderLine) error {
	args := m.Called(ctx, username, characterID, lines)
	return args.Error(0)
}

func (m *MockShopRepository) SellItem(ctx context.Context, username string, characterID int, itemID int, count int) (*domain.SellResultResponse, error) {
	args := m.Called(ctx, username, characterID, itemID, count)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.SellResultResponse), args.Error(1)
}
