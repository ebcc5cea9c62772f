package mocks

import (
	"context"

	"item_simulator/domain"

	"github.com/stretchr/testify/mock"
)

type MockInventoryUsecase struct {
	mock.Mock
}

func (m *MockInventoryUsecase) ListInventory(ctx context.Context, username string, characterID int) ([]domain.InventoryItemResponse, error) {
	args := m.Called(ctx, username, characterID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.InventoryItemResponse), args.Error(1)
}

func (m *MockInventoryUsecase) ListEquipped(ctx context.Context, characterID int) ([]domain.EquippedItemResponse, error) {
	args := m.Called(ctx, characterID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.EquippedItemResponse), args.Error(1)
}

func (m *MockInventoryUsecase) EquipItem(ctx context.Context, username string, characterID int, itemID int) (*domain.EquipResponse, error) {
	args := m.Called(ctx, username, characterID, itemID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.EquipResponse), args.Error(1)
}

func (m *MockInventoryUsecase) UnequipItem(ctx context.Context, username string, characterID int, itemID int) (*domain.EquipResponse, error) {
	args := m.Called(ctx, username, characterID, itemID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.EquipResponse), args.Error(1)
}

type MockInventoryRepository struct {
	mock.Mock
}

func (m *MockInventoryRepository) ListInventory(ctx context.Context, username string, characterID int) ([]domain.InventoryItemResponse, error) {
	args := m.Called(ctx, username, characterID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.InventoryItemResponse), args.Error(1)
}

func (m *MockInventoryRepository) ListEquipped(ctx context.Context, characterID int) ([]domain.EquippedItemResponse, error) {
	args := m.Called(ctx, characterID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.EquippedItemResponse), args.Error(1)
}

func (m *MockInventoryRepository) EquipItem(ctx context.Context, username string, characterID int, itemID int) (*domain.EquipResponse, error) {
	args := m.Called(ctx, username, characterID, itemID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.EquipResponse), args.Error(1)
}

func (m *MockInventoryRepository) UnequipItem(ctx context.Context, username string, characterID int, itemID int) (*domain.EquipResponse, error) {
	args := m.Called(ctx, username, characterID, itemID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.EquipResponse), args.Error(1)
}
