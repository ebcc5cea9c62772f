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

// Resale returns 60% of the purchase price, rounded down.
const resalePercent = 60

type shopRepository struct {
	db *gorm.DB
}

func NewShopRepository(db *gorm.DB) domain.ShopRepository {
	return &shopRepository{
		db: db,
	}
}

func (r *shopRepository) ownedCharacter(tx *gorm.DB, requestID string, username string, characterID int) (*domain.Character, error) {
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

// BuyItems applies the order lines one at a time inside a single
// transaction. The balance is re-read before every line so each
// affordability check sees the debit left by the previous line; any
// failing line rolls the whole order back.
func (r *shopRepository) BuyItems(ctx context.Context, username string, characterID int, lines []domain.BuyOrderLine) error {
	requestID := middleware.GetRequestID(ctx)
	logger.DBLogger.Info("BuyItems called", zap.String("request_id", requestID), zap.String("username", username), zap.Int("character_id", characterID), zap.Int("lines", len(lines)))

	if err := r.db.Transaction(func(tx *gorm.DB) error {
		if _, err := r.ownedCharacter(tx, requestID, username, characterID); err != nil {
			return err
		}

		for _, line := range lines {
			var item domain.Item
			if err := tx.Where("name = ?", line.ItemName).First(&item).Error; err != nil {
				if errors.Is(err, gorm.ErrRecordNotFound) {
					logger.DBLogger.Warn("Item not found", zap.String("request_id", requestID), zap.String("item_name", line.ItemName))
					return domain.NewError(http.StatusNotFound, "item does not exist")
				}
				logger.DBLogger.Error("Failed to fetch item", zap.String("request_id", requestID), zap.Error(err))
				return errors.New("failed to fetch item")
			}

			var character domain.Character
			if err := tx.Where("id = ?", characterID).First(&character).Error; err != nil {
				logger.DBLogger.Error("Failed to fetch character", zap.String("request_id", requestID), zap.Error(err))
				return errors.New("failed to fetch character")
			}

			cost := item.Price * line.Count
			if character.Money < cost {
				logger.DBLogger.Warn("Insufficient balance", zap.String("request_id", requestID), zap.Int("balance", character.Money), zap.Int("cost", cost))
				return domain.NewError(http.StatusConflict, "not enough money")
			}

			if err := tx.Exec(
				`INSERT INTO inventory_entries (character_id, item_id, count) VALUES (?, ?, ?) `+
					`ON CONFLICT (character_id, item_id) DO UPDATE SET count = inventory_entries.count + EXCLUDED.count`,
				characterID, item.ID, line.Count,
			).Error; err != nil {
				logger.DBLogger.Error("Failed to upsert inventory entry", zap.String("request_id", requestID), zap.Error(err))
				return errors.New("failed to upsert inventory entry")
			}

			if err := tx.Model(&domain.Character{}).Where("id = ?", characterID).Update("money", character.Money-cost).Error; err != nil {
				logger.DBLogger.Error("Failed to update character money", zap.String("request_id", requestID), zap.Error(err))
				return errors.New("failed to update character money")
			}
		}
		return nil
	}); err != nil {
		return err
	}

	logger.DBLogger.Info("Successfully bought items", zap.String("request_id", requestID), zap.Int("character_id", characterID))
	return nil
}

// SellItem clamps the requested count to what the character actually
// holds, credits 60% of the price per copy and removes the copies from
// the inventory.
func (r *shopRepository) SellItem(ctx context.Context, username string, characterID int, itemID int, count int) (*domain.SellResultResponse, error) {
	requestID := middleware.GetRequestID(ctx)
	logger.DBLogger.Info("SellItem called", zap.String("request_id", requestID), zap.String("username", username), zap.Int("character_id", characterID), zap.Int("item_id", itemID), zap.Int("count", count))

	var result domain.SellResultResponse
	if err := r.db.Transaction(func(tx *gorm.DB) error {
		character, err := r.ownedCharacter(tx, requestID, username, characterID)
		if err != nil {
			return err
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

		var item domain.Item
		if err := tx.Where("id = ?", itemID).First(&item).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				logger.DBLogger.Warn("Item not found", zap.String("request_id", requestID), zap.Int("item_id", itemID))
				return domain.NewError(http.StatusNotFound, "item does not exist")
			}
			logger.DBLogger.Error("Failed to fetch item", zap.String("request_id", requestID), zap.Error(err))
			return errors.New("failed to fetch item")
		}

		sold := count
		if sold > entry.Count {
			sold = entry.Count
		}

		if entry.Count > sold {
			if err := tx.Model(&domain.InventoryEntry{}).Where("id = ?", entry.ID).Update("count", entry.Count-sold).Error; err != nil {
				logger.DBLogger.Error("Failed to update inventory entry", zap.String("request_id", requestID), zap.Error(err))
				return errors.New("failed to update inventory entry")
			}
		} else {
			if err := tx.Delete(&entry).Error; err != nil {
				logger.DBLogger.Error("Failed to delete inventory entry", zap.String("request_id", requestID), zap.Error(err))
				return errors.New("failed to delete inventory entry")
			}
		}

		money := character.Money + item.Price*resalePercent*sold/100
		if err := tx.Model(&domain.Character{}).Where("id = ?", characterID).Update("money", money).Error; err != nil {
			logger.DBLogger.Error("Failed to update character money", zap.String("request_id", requestID), zap.Error(err))
			return errors.New("failed to update character money")
		}

		result = domain.SellResultResponse{
			ItemName: item.Name,
			Sold:     sold,
			Money:    money,
		}
		return nil
	}); err != nil {
		return nil, err
	}

	logger.DBLogger.Info("Successfully sold items", zap.String("request_id", requestID), zap.Int("character_id", characterID), zap.Int("sold", result.Sold))
	return &result, nil
}
