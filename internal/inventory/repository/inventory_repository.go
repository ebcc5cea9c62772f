package repository

import (
	"context"
	"errors"
	"net/http"

	"item_simulator/domain"
	"item_simulator/internal/service/logger"
	"item_simulator/internal/service/middleware"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

type inventoryRepository struct {
	db *gorm.DB
}

func NewInventoryRepository(db *gorm.DB) domain.InventoryRepository {
	return &inventoryRepository{
		db: db,
	}
}

// ownedCharacter resolves the caller's character inside tx. Missing
// account or character map to 404, foreign ownership to 409.
func (r *inventoryRepository) ownedCharacter(tx *gorm.DB, requestID string, username string, characterID int) (*domain.Character, error) {
	var account domain.Account
	if err := tx.Where("username = ?", username).First(&account).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			logger.DBLogger.Warn("Account not found", zap.String("request_id", requestID), zap.String("username", username))
			return nil, domain.NewError(http.StatusNotFound, "account does not exist")
		}
		logger.DBLogger.Error("Failed to fetch account", zap.String("request_id", requestID), zap.Error(err))
		return nil, errors.New("failed to fetch account")
	}

	var character domain.Character
	if err := tx.Where("id = ?", characterID).First(&character).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			logger.DBLogger.Warn("Character not found", zap.String("request_id", requestID), zap.Int("character_id", characterID))
			return nil, domain.NewError(http.StatusNotFound, "character does not exist")
		}
		logger.DBLogger.Error("Failed to fetch character", zap.String("request_id", requestID), zap.Error(err))
		return nil, errors.New("failed to fetch character")
	}

	if character.AccountID != account.ID {
		logger.DBLogger.Warn("Character owned by another account", zap.String("request_id", requestID), zap.Int("character_id", characterID))
		return nil, domain.NewError(http.StatusConflict, "character belongs to another account")
	}
	return &character, nil
}

func (r *inventoryRepository) ListInventory(ctx context.Context, username string, characterID int) ([]domain.InventoryItemResponse, error) {
	requestID := middleware.GetRequestID(ctx)
	logger.DBLogger.Info("ListInventory called", zap.String("request_id", requestID), zap.String("username", username), zap.Int("character_id", characterID))

	var rows []domain.InventoryItemResponse
	if err := r.db.Transaction(func(tx *gorm.DB) error {
		if _, err := r.ownedCharacter(tx, requestID, username, characterID); err != nil {
			return err
		}

		if err := tx.
			Table("inventory_entries").
			Select("inventory_entries.item_id AS item_code, items.name AS item_name, inventory_entries.count").
			Joins("JOIN items ON items.id = inventory_entries.item_id").
			Where("inventory_entries.character_id = ?", characterID).
			Scan(&rows).Error; err != nil {
			logger.DBLogger.Error("Failed to fetch inventory", zap.String("request_id", requestID), zap.Error(err))
			return errors.New("failed to fetch inventory")
		}
		return nil
	}); err != nil {
		return nil, err
	}

	if rows == nil {
		rows = make([]domain.InventoryItemResponse, 0)
	}
	return rows, nil
}

func (r *inventoryRepository) ListEquipped(ctx context.Context, characterID int) ([]domain.EquippedItemResponse, error) {
	requestID := middleware.GetRequestID(ctx)
	logger.DBLogger.Info("ListEquipped called", zap.String("request_id", requestID), zap.Int("character_id", characterID))

	var rows []domain.EquippedItemResponse
	if err := r.db.Transaction(func(tx *gorm.DB) error {
		var character domain.Character
		if err := tx.Where("id = ?", characterID).First(&character).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				logger.DBLogger.Warn("Character not found", zap.String("request_id", requestID), zap.Int("character_id", characterID))
				return domain.NewError(http.StatusNotFound, "character does not exist")
			}
			logger.DBLogger.Error("Failed to fetch character", zap.String("request_id", requestID), zap.Error(err))
			return errors.New("failed to fetch character")
		}

		if err := tx.
			Table("equipped_entries").
			Select("equipped_entries.item_id AS item_id, items.name AS item_name").
			Joins("JOIN items ON items.id = equipped_entries.item_id").
			Where("equipped_entries.character_id = ?", characterID).
			Scan(&rows).Error; err != nil {
			logger.DBLogger.Error("Failed to fetch equipped items", zap.String("request_id", requestID), zap.Error(err))
			return errors.New("failed to fetch equipped items")
		}
		return nil
	}); err != nil {
		return nil, err
	}

	if rows == nil {
		rows = make([]domain.EquippedItemResponse, 0)
	}
	return rows, nil
}

// EquipItem moves one copy of the item from the inventory to the
// equipped set and applies the item's stat deltas, all in one
// transaction. Stats are re-read inside the transaction so concurrent
// requests against the same character cannot act on stale values.
func (r *inventoryRepository) EquipItem(ctx context.Context, username string, characterID int, itemID int) (*domain.EquipResponse, error) {
	requestID := middleware.GetRequestID(ctx)
	logger.DBLogger.Info("EquipItem called", zap.String("request_id", requestID), zap.String("username", username), zap.Int("character_id", characterID), zap.Int("item_id", itemID))

	var response domain.EquipResponse
	if err := r.db.Transaction(func(tx *gorm.DB) error {
		if _, err := r.ownedCharacter(tx, requestID, username, characterID); err != nil {
			return err
		}

		var stats domain.CharacterStats
		if err := tx.Where("character_id = ?", characterID).First(&stats).Error; err != nil {
			logger.DBLogger.Error("Failed to fetch character stats", zap.String("request_id", requestID), zap.Error(err))
			return errors.New("failed to fetch character stats")
		}

		var entry domain.InventoryEntry
		if err := tx.Where("character_id = ? AND item_id = ?", characterID, itemID).First(&entry).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				logger.DBLogger.Warn("Item not in inventory", zap.String("request_id", requestID), zap.Int("item_id", itemID))
				return domain.NewError(http.StatusConflict, "item is not in the inventory")
			}
			logger.DBLogger.Error("Failed to fetch inventory entry", zap.String("request_id", requestID), zap.Error(err))
			return errors.New("failed to fetch inventory entry")
		}

		var equipped domain.EquippedEntry
		err := tx.Where("character_id = ? AND item_id = ?", characterID, itemID).First(&equipped).Error
		if err == nil {
			logger.DBLogger.Warn("Item already equipped", zap.String("request_id", requestID), zap.Int("item_id", itemID))
			return domain.NewError(http.StatusConflict, "item is already equipped")
		}
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			logger.DBLogger.Error("Failed to fetch equipped entry", zap.String("request_id", requestID), zap.Error(err))
			return errors.New("failed to fetch equipped entry")
		}

		var item domain.Item
		if err := tx.Where("id = ?", itemID).First(&item).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				logger.DBLogger.Warn("Item not found", zap.String("request_id", requestID), zap.Int("item_id", itemID))
				return domain.NewError(http.StatusNotFound, "item does not exist")
			}
			logger.DBLogger.Error("Failed to fetch item", zap.String("request_id", requestID), zap.Error(err))
			return errors.New("failed to fetch item")
		}

		var itemStats domain.ItemStats
		if err := tx.Where("item_id = ?", itemID).First(&itemStats).Error; err != nil {
			logger.DBLogger.Error("Failed to fetch item stats", zap.String("request_id", requestID), zap.Error(err))
			return errors.New("failed to fetch item stats")
		}

		if entry.Count >= 2 {
			if err := tx.Model(&domain.InventoryEntry{}).Where("id = ?", entry.ID).Update("count", entry.Count-1).Error; err != nil {
				logger.DBLogger.Error("Failed to update inventory entry", zap.String("request_id", requestID), zap.Error(err))
				return errors.New("failed to update inventory entry")
			}
		} else {
			if err := tx.Delete(&entry).Error; err != nil {
				logger.DBLogger.Error("Failed to delete inventory entry", zap.String("request_id", requestID), zap.Error(err))
				return errors.New("failed to delete inventory entry")
			}
		}

		if err := tx.Create(&domain.EquippedEntry{CharacterID: characterID, ItemID: itemID}).Error; err != nil {
			logger.DBLogger.Error("Failed to create equipped entry", zap.String("request_id", requestID), zap.Error(err))
			return errors.New("failed to create equipped entry")
		}

		before := domain.Stats{Power: stats.Power, Health: stats.Health}
		after := domain.Stats{Power: before.Power + itemStats.Power, Health: before.Health + itemStats.Health}
		if err := tx.Model(&domain.CharacterStats{}).Where("character_id = ?", characterID).
			Updates(map[string]interface{}{"health": after.Health, "power": after.Power}).Error; err != nil {
			logger.DBLogger.Error("Failed to update character stats", zap.String("request_id", requestID), zap.Error(err))
			return errors.New("failed to update character stats")
		}

		response = domain.EquipResponse{
			Before:   before,
			ItemName: item.Name,
			After:    after,
		}
		return nil
	}); err != nil {
		return nil, err
	}

	logger.DBLogger.Info("Successfully equipped item", zap.String("request_id", requestID), zap.Int("character_id", characterID), zap.Int("item_id", itemID))
	return &response, nil
}

// UnequipItem is the exact inverse of EquipItem: it removes the
// equipped entry, subtracts the stat deltas and returns the copy to
// the inventory.
func (r *inventoryRepository) UnequipItem(ctx context.Context, username string, characterID int, itemID int) (*domain.EquipResponse, error) {
	requestID := middleware.GetRequestID(ctx)
	logger.DBLogger.Info("UnequipItem called", zap.String("request_id", requestID), zap.String("username", username), zap.Int("character_id", characterID), zap.Int("item_id", itemID))

	var response domain.EquipResponse
	if err := r.db.Transaction(func(tx *gorm.DB) error {
		if _, err := r.ownedCharacter(tx, requestID, username, characterID); err != nil {
			return err
		}

		var stats domain.CharacterStats
		if err := tx.Where("character_id = ?", characterID).First(&stats).Error; err != nil {
			logger.DBLogger.Error("Failed to fetch character stats", zap.String("request_id", requestID), zap.Error(err))
			return errors.New("failed to fetch character stats")
		}

		var equipped domain.EquippedEntry
		if err := tx.Where("character_id = ? AND item_id = ?", characterID, itemID).First(&equipped).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				logger.DBLogger.Warn("Item not equipped", zap.String("request_id", requestID), zap.Int("item_id", itemID))
				return domain.NewError(http.StatusConflict, "item is not equipped")
			}
			logger.DBLogger.Error("Failed to fetch equipped entry", zap.String("request_id", requestID), zap.Error(err))
			return errors.New("failed to fetch equipped entry")
		}

		var item domain.Item
		if err := tx.Where("id = ?", itemID).First(&item).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				logger.DBLogger.Warn("Item not found", zap.String("request_id", requestID), zap.Int("item_id", itemID))
				return domain.NewError(http.StatusNotFound, "item does not exist")
			}
			logger.DBLogger.Error("Failed to fetch item", zap.String("request_id", requestID), zap.Error(err))
			return errors.New("failed to fetch item")
		}

		var itemStats domain.ItemStats
		if err := tx.Where("item_id = ?", itemID).First(&itemStats).Error; err != nil {
			logger.DBLogger.Error("Failed to fetch item stats", zap.String("request_id", requestID), zap.Error(err))
			return errors.New("failed to fetch item stats")
		}

		if err := tx.Delete(&equipped).Error; err != nil {
			logger.DBLogger.Error("Failed to delete equipped entry", zap.String("request_id", requestID), zap.Error(err))
			return errors.New("failed to delete equipped entry")
		}

		var entry domain.InventoryEntry
		err := tx.Where("character_id = ? AND item_id = ?", characterID, itemID).First(&entry).Error
		switch {
		case err == nil:
			if updateErr := tx.Model(&domain.InventoryEntry{}).Where("id = ?", entry.ID).Update("count", entry.Count+1).Error; updateErr != nil {
				logger.DBLogger.Error("Failed to update inventory entry", zap.String("request_id", requestID), zap.Error(updateErr))
				return errors.New("failed to update inventory entry")
			}
		case errors.Is(err, gorm.ErrRecordNotFound):
			if createErr := tx.Create(&domain.InventoryEntry{CharacterID: characterID, ItemID: itemID, Count: 1}).Error; createErr != nil {
				logger.DBLogger.Error("Failed to create inventory entry", zap.String("request_id", requestID), zap.Error(createErr))
				return errors.New("failed to create inventory entry")
			}
		default:
			logger.DBLogger.Error("Failed to fetch inventory entry", zap.String("request_id", requestID), zap.Error(err))
			return errors.New("failed to fetch inventory entry")
		}

		before := domain.Stats{Power: stats.Power, Health: stats.Health}
		after := domain.Stats{Power: before.Power - itemStats.Power, Health: before.Health - itemStats.Health}
		if err := tx.Model(&domain.CharacterStats{}).Where("character_id = ?", characterID).
			Updates(map[string]interface{}{"health": after.Health, "power": after.Power}).Error; err != nil {
			logger.DBLogger.Error("Failed to update character stats", zap.String("request_id", requestID), zap.Error(err))
			return errors.New("failed to update character stats")
		}

		response = domain.EquipResponse{
			Before:   before,
			ItemName: item.Name,
			After:    after,
		}
		return nil
	}); err != nil {
		return nil, err
	}

	logger.DBLogger.Info("Successfully unequipped item", zap.String("request_id", requestID), zap.Int("character_id", characterID), zap.Int("item_id", itemID))
	return &response, nil
}
