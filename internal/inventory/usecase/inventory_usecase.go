package usecase

import (
	"context"

	"item_simulator/domain"
)

type InventoryUsecase interface {
	ListInventory(ctx context.Context, username string, characterID int) ([]domain.InventoryItemResponse, error)
	ListEquipped(ctx context.Context, characterID int) ([]domain.EquippedItemResponse, error)
	EquipItem(ctx context.Context, username string, characterID int, itemID int) (*domain.EquipResponse, error)
	UnequipItem(ctx context.Context, username string, characterID int, itemID int) (*domain.EquipResponse, error)
}

type inventoryUsecase struct {
	inventoryRepository domain.InventoryRepository
}

func NewInventoryUsecase(inventoryRepository domain.InventoryRepository) InventoryUsecase {
	return &inventoryUsecase{
		inventoryRepository: inventoryRepository,
	}
}

func (uc *inventoryUsecase) ListInventory(ctx context.Context, username string, characterID int) ([]domain.InventoryItemResponse, error) {
	return uc.inventoryRepository.ListInventory(ctx, username, characterID)
}

func (uc *inventoryUsecase) ListEquipped(ctx context.Context, characterID int) ([]domain.EquippedItemResponse, error) {
	return uc.inventoryRepository.ListEquipped(ctx, characterID)
}

func (uc *inventoryUsecase) EquipItem(ctx context.Context, username string, characterID int, itemID int) (*domain.EquipResponse, error) {
	return uc.inventoryRepository.EquipItem(ctx, username, characterID, itemID)
}

func (uc *inventoryUsecase) UnequipItem(ctx context.Context, username string, characterID int, itemID int) (*domain.EquipResponse, error) {
	return uc.inventoryRepository.UnequipItem(ctx, username, characterID, itemID)
}
