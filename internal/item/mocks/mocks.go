package mocks

import (
	"context"

	"item_simulator/domain"

	"github.com/stretchr/testify/mock"
)

type MockItemUsecase struct {
	mock.Mock
}

func (m *MockItemUsecase) CreateItem(ctx context.Context, req domain.CreateItemRequest) (*domain.Item, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Item), args.Error(1)
}

func (m *MockItemUsecase) UpdateItem(ctx context.Context, itemID int, req domain.UpdateItemRequest) (*domain.Item, error) {
	args := m.Called(ctx, itemID, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Item), args.Error(1)
}

func (m *MockItemUsecase) ListItems(ctx context.Context) ([]domain.ItemSummary, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.ItemSummary), args.Error(1)
}

func (m *MockItemUsecase) GetItemDetail(ctx context.Context, itemID int) (*domain.ItemDetailResponse, error) {
	args := m.Called(ctx, itemID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.ItemDetailResponse), args.Error(1)
}

type MockItemRepository struct {
	mock.Mock
}

func (m *MockItemRepository) CreateItem(ctx context.Context, name string, stats domain.Stats, price int) (*domain.Item, error) {
	args := m.Called(ctx, name, stats, price)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Item), args.Error(1)
}

func (m *MockItemRepository) UpdateItem(ctx context.Context, itemID int, name string, stats domain.Stats) (*domain.Item, error) {
	args := m.Called(ctx, itemID, name, stats)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Item), args.Error(1)
}

func (m *MockItemRepository) ListItems(ctx context.Context) ([]domain.ItemSummary, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.ItemSummary), args.Error(1)
}

func (m *MockItemRepository) GetItemDetail(ctx context.Context, itemID int) (*domain.ItemDetailResponse, error) {
	args := m.Called(ctx, itemID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.ItemDetailResponse), args.Error(1)
}
