package usecase

import (
	"context"
	"net/http"

	"item_simulator/domain"
	"item_simulator/internal/service/logger"
	"item_simulator/internal/service/middleware"

	"go.uber.org/zap"
)

type ShopUsecase interface {
	BuyItems(ctx context.Context, username string, characterID int, lines []domain.BuyOrderLine) error
	SellItem(ctx context.Context, username string, characterID int, itemID int, count int) (*domain.SellResultResponse, error)
}

type shopUsecase struct {
	shopRepository domain.ShopRepository
}

func NewShopUsecase(shopRepository domain.ShopRepository) ShopUsecase {
	return &shopUsecase{
		shopRepository: shopRepository,
	}
}

func (uc *shopUsecase) BuyItems(ctx context.Context, username string, characterID int, lines []domain.BuyOrderLine) error {
	requestID := middleware.GetRequestID(ctx)

	if len(lines) == 0 {
		logger.AccessLogger.Warn("Empty buy order", zap.String("request_id", requestID))
		return domain.NewError(http.StatusUnprocessableEntity, "order must contain at least one item")
	}
	for _, line := range lines {
		if line.ItemName == "" {
			logger.AccessLogger.Warn("Missing item name in buy order", zap.String("request_id", requestID))
			return domain.NewError(http.StatusUnprocessableEntity, "item_code is required")
		}
		if line.Count <= 0 {
			logger.AccessLogger.Warn("Non-positive count in buy order", zap.String("request_id", requestID), zap.Int("count", line.Count))
			return domain.NewError(http.StatusUnprocessableEntity, "count must be positive")
		}
	}

	return uc.shopRepository.BuyItems(ctx, username, characterID, lines)
}

func (uc *shopUsecase) SellItem(ctx context.Context, username string, characterID int, itemID int, count int) (*domain.SellResultResponse, error) {
	requestID := middleware.GetRequestID(ctx)

	if count <= 0 {
		logger.AccessLogger.Warn("Non-positive sell count", zap.String("request_id", requestID), zap.Int("count", count))
		return nil, domain.NewError(http.StatusUnprocessableEntity, "count must be positive")
	}

	return uc.shopRepository.SellItem(ctx, username, characterID, itemID, count)
}
