package usecase

import (
	"context"
	"net/http"
	"testing"

	"item_simulator/domain"
	"item_simulator/internal/item/mocks"
	"item_simulator/internal/service/logger"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestCreateItem(t *testing.T) {
	logger.AccessLogger = zap.NewNop()
	ctx := context.Background()

	t.Run("Success", func(t *testing.T) {
		repo := new(mocks.MockItemRepository)
		uc := NewItemUsecase(repo)

		stats := domain.Stats{Power: 10, Health: 50}
		repo.On("CreateItem", ctx, "Iron Sword", stats, 300).
			Return(&domain.Item{ID: 5, Name: "Iron Sword", Price: 300}, nil)

		item, err := uc.CreateItem(ctx, domain.CreateItemRequest{Name: "Iron Sword", Stats: stats, Price: 300})
		require.NoError(t, err)
		assert.Equal(t, 5, item.ID)
		repo.AssertExpectations(t)
	})

	t.Run("Fail - Empty Name", func(t *testing.T) {
		uc := NewItemUsecase(new(mocks.MockItemRepository))

		_, err := uc.CreateItem(ctx, domain.CreateItemRequest{Name: "", Price: 300})
		var domainErr *domain.Error
		require.ErrorAs(t, err, &domainErr)
		assert.Equal(t, http.StatusUnprocessableEntity, domainErr.Code)
		assert.Equal(t, "invalid item name", domainErr.Message)
	})

	t.Run("Fail - Negative Price", func(t *testing.T) {
		uc := NewItemUsecase(new(mocks.MockItemRepository))

		_, err := uc.CreateItem(ctx, domain.CreateItemRequest{Name: "Iron Sword", Price: -1})
		var domainErr *domain.Error
		require.ErrorAs(t, err, &domainErr)
		assert.Equal(t, http.StatusUnprocessableEntity, domainErr.Code)
		assert.Equal(t, "price must not be negative", domainErr.Message)
	})
}

func TestUpdateItem(t *testing.T) {
	logger.AccessLogger = zap.NewNop()
	ctx := context.Background()

	t.Run("Success", func(t *testing.T) {
		repo := new(mocks.MockItemRepository)
		uc := NewItemUsecase(repo)

		stats := domain.Stats{Power: 15, Health: 60}
		repo.On("UpdateItem", ctx, 5, "Steel Sword", stats).
			Return(&domain.Item{ID: 5, Name: "Steel Sword", Price: 300}, nil)

		item, err := uc.UpdateItem(ctx, 5, domain.UpdateItemRequest{Name: "Steel Sword", Stats: stats})
		require.NoError(t, err)
		assert.Equal(t, "Steel Sword", item.Name)
	})

	t.Run("Fail - Unknown Item", func(t *testing.T) {
		repo := new(mocks.MockItemRepository)
		uc := NewItemUsecase(repo)

		repo.On("UpdateItem", ctx, 99, "Steel Sword", domain.Stats{}).
			Return(nil, domain.NewError(http.StatusNotFound, "item does not exist"))

		_, err := uc.UpdateItem(ctx, 99, domain.UpdateItemRequest{Name: "Steel Sword"})
		var domainErr *domain.Error
		require.ErrorAs(t, err, &domainErr)
		assert.Equal(t, http.StatusNotFound, domainErr.Code)
	})
}

func TestListItems(t *testing.T) {
	logger.AccessLogger = zap.NewNop()
	ctx := context.Background()

	repo := new(mocks.MockItemRepository)
	uc := NewItemUsecase(repo)

	repo.On("ListItems", ctx).Return([]domain.ItemSummary{
		{ItemID: 5, Name: "Iron Sword", Price: 300},
		{ItemID: 6, Name: "Oak Shield", Price: 800},
	}, nil)

	items, err := uc.ListItems(ctx)
	require.NoError(t, err)
	assert.Len(t, items, 2)
}
