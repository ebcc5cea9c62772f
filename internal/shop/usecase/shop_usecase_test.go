package usecase

import (
	"context"
	"net/http"
	"testing"

	"item_simulator/domain"
	"item_simulator/internal/service/logger"
	"item_simulator/internal/shop/mocks"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestBuyItemsValidation(t *testing.T) {
	logger.AccessLogger = zap.NewNop()
	ctx := context.Background()

	t.Run("Success", func(t *testing.T) {
		repo := new(mocks.MockShopRepository)
		uc := NewShopUsecase(repo)

		lines := []domain.BuyOrderLine{{ItemName: "Iron Sword", Count: 2}}
		repo.On("BuyItems", ctx, "alice1", 1, lines).Return(nil)

		err := uc.BuyItems(ctx, "alice1", 1, lines)
		require.NoError(t, err)
		repo.AssertExpectations(t)
	})

	t.Run("Fail - Empty Order", func(t *testing.T) {
		uc := NewShopUsecase(new(mocks.MockShopRepository))

		err := uc.BuyItems(ctx, "alice1", 1, nil)
		var domainErr *domain.Error
		require.ErrorAs(t, err, &domainErr)
		assert.Equal(t, http.StatusUnprocessableEntity, domainErr.Code)
	})

	t.Run("Fail - Missing Item Name", func(t *testing.T) {
		uc := NewShopUsecase(new(mocks.MockShopRepository))

		err := uc.BuyItems(ctx, "alice1", 1, []domain.BuyOrderLine{{ItemName: "", Count: 1}})
		var domainErr *domain.Error
		require.ErrorAs(t, err, &domainErr)
		assert.Equal(t, http.StatusUnprocessableEntity, domainErr.Code)
		assert.Equal(t, "item_code is required", domainErr.Message)
	})

	t.Run("Fail - Zero Count", func(t *testing.T) {
		uc := NewShopUsecase(new(mocks.MockShopRepository))

		err := uc.BuyItems(ctx, "alice1", 1, []domain.BuyOrderLine{{ItemName: "Iron Sword", Count: 0}})
		var domainErr *domain.Error
		require.ErrorAs(t, err, &domainErr)
		assert.Equal(t, http.StatusUnprocessableEntity, domainErr.Code)
		assert.Equal(t, "count must be positive", domainErr.Message)
	})
}

func TestSellItemValidation(t *testing.T) {
	logger.AccessLogger = zap.NewNop()
	ctx := context.Background()

	t.Run("Success", func(t *testing.T) {
		repo := new(mocks.MockShopRepository)
		uc := NewShopUsecase(repo)

		repo.On("SellItem", ctx, "alice1", 1, 5, 2).
			Return(&domain.SellResultResponse{ItemName: "Iron Sword", Sold: 2, Money: 10360}, nil)

		result, err := uc.SellItem(ctx, "alice1", 1, 5, 2)
		require.NoError(t, err)
		assert.Equal(t, 2, result.Sold)
		repo.AssertExpectations(t)
	})

	t.Run("Fail - Non-Positive Count", func(t *testing.T) {
		uc := NewShopUsecase(new(mocks.MockShopRepository))

		_, err := uc.SellItem(ctx, "alice1", 1, 5, 0)
		var domainErr *domain.Error
		require.ErrorAs(t, err, &domainErr)
		assert.Equal(t, http.StatusUnprocessableEntity, domainErr.Code)
		assert.Equal(t, "count must be positive", domainErr.Message)
	})
}
