package usecase

import (
	"context"
	"net/http"

	"item_simulator/domain"
	"item_simulator/internal/service/logger"
	"item_simulator/internal/service/middleware"

	"go.uber.org/zap"
)

type ItemUsecase interface {
	CreateItem(ctx context.Context, req domain.CreateItemRequest) (*domain.Item, error)
	UpdateItem(ctx context.Context, itemID int, req domain.UpdateItemRequest) (*domain.Item, error)
	ListItems(ctx context.Context) ([]domain.ItemSummary, error)
	GetItemDetail(ctx context.Context, itemID int) (*domain.ItemDetailResponse, error)
}

const maxNameLen = 255

type itemUsecase struct {
	itemRepository domain.ItemRepository
}

func NewItemUsecase(itemRepository domain.ItemRepository) ItemUsecase {
	return &itemUsecase{
		itemRepository: itemRepository,
	}
}

func (uc *itemUsecase) CreateItem(ctx context.Context, req domain.CreateItemRequest) (*domain.Item, error) {
	requestID := middleware.GetRequestID(ctx)

	if req.Name == "" || len(req.Name) > maxNameLen {
		logger.AccessLogger.Warn("Invalid item name", zap.String("request_id", requestID))
		return nil, domain.NewError(http.StatusUnprocessableEntity, "invalid item name")
	}
	if req.Price < 0 {
		logger.AccessLogger.Warn("Negative item price", zap.String("request_id", requestID))
		return nil, domain.NewError(http.StatusUnprocessableEntity, "price must not be negative")
	}

	return uc.itemRepository.CreateItem(ctx, req.Name, req.Stats, req.Price)
}

func (uc *itemUsecase) UpdateItem(ctx context.Context, itemID int, req domain.UpdateItemRequest) (*domain.Item, error) {
	requestID := middleware.GetRequestID(ctx)

	if req.Name == "" || len(req.Name) > maxNameLen {
		logger.AccessLogger.Warn("Invalid item name", zap.String("request_id", requestID))
		return nil, domain.NewError(http.StatusUnprocessableEntity, "invalid item name")
	}

	return uc.itemRepository.UpdateItem(ctx, itemID, req.Name, req.Stats)
}

func (uc *itemUsecase) ListItems(ctx context.Context) ([]domain.ItemSummary, error) {
	return uc.itemRepository.ListItems(ctx)
}

func (uc *itemUsecase) GetItemDetail(ctx context.Context, itemID int) (*domain.ItemDetailResponse, error) {
	return uc.itemRepository.GetItemDetail(ctx, itemID)
}
