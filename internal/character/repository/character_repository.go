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

type characterRepository struct {
	db *gorm.DB
}

func NewCharacterRepository(db *gorm.DB) domain.CharacterRepository {
	return &characterRepository{
		db: db,
	}
}

func (r *characterRepository) CreateCharacter(ctx context.Context, username string, name string, stats domain.Stats, money int) (*domain.Character, *domain.CharacterStats, error) {
	requestID := middleware.GetRequestID(ctx)
	logger.DBLogger.Info("CreateCharacter called", zap.String("request_id", requestID), zap.String("username", username), zap.String("name", name))

	var character domain.Character
	var characterStats domain.CharacterStats
	if err := r.db.Transaction(func(tx *gorm.DB) error {
		var account domain.Account
		if err := tx.Where("username = ?", username).First(&account).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				logger.DBLogger.Warn("Account not found", zap.String("request_id", requestID), zap.String("username", username))
				return domain.NewError(http.StatusNotFound, "account does not exist")
			}
			logger.DBLogger.Error("Failed to fetch account", zap.String("request_id", requestID), zap.Error(err))
			return errors.New("failed to fetch account")
		}

		var existing domain.Character
		err := tx.Where("name = ?", name).First(&existing).Error
		if err == nil {
			logger.DBLogger.Warn("Character name already taken", zap.String("request_id", requestID), zap.String("name", name))
			return domain.NewError(http.StatusConflict, "character name already exists")
		}
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			logger.DBLogger.Error("Failed to check character name", zap.String("request_id", requestID), zap.Error(err))
			return errors.New("failed to check character name")
		}

		character = domain.Character{
			AccountID: account.ID,
			Name:      name,
			Money:     money,
		}
		if err := tx.Create(&character).Error; err != nil {
			logger.DBLogger.Error("Failed to create character", zap.String("request_id", requestID), zap.Error(err))
			return errors.New("failed to create character")
		}

		characterStats = domain.CharacterStats{
			CharacterID: character.ID,
			Power:       stats.Power,
			Health:      stats.Health,
		}
		if err := tx.Create(&characterStats).Error; err != nil {
			logger.DBLogger.Error("Failed to create character stats", zap.String("request_id", requestID), zap.Error(err))
			return errors.New("failed to create character stats")
		}
		return nil
	}); err != nil {
		return nil, nil, err
	}

	logger.DBLogger.Info("Successfully created character", zap.String("request_id", requestID), zap.String("name", name))
	return &character, &characterStats, nil
}

func (r *characterRepository) DeleteCharacter(ctx context.Context, username string, characterID int) error {
	requestID := middleware.GetRequestID(ctx)
	logger.DBLogger.Info("DeleteCharacter called", zap.String("request_id", requestID), zap.String("username", username), zap.Int("character_id", characterID))

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

		var account domain.Account
		if err := tx.Where("username = ?", username).First(&account).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				logger.DBLogger.Warn("Account not found", zap.String("request_id", requestID), zap.String("username", username))
				return domain.NewError(http.StatusNotFound, "account does not exist")
			}
			logger.DBLogger.Error("Failed to fetch account", zap.String("request_id", requestID), zap.Error(err))
			return errors.New("failed to fetch account")
		}

		if character.AccountID != account.ID {
			logger.DBLogger.Warn("Character owned by another account", zap.String("request_id", requestID), zap.Int("character_id", characterID))
			return domain.NewError(http.StatusConflict, "cannot delete another account's character")
		}

		if err := tx.Where("character_id = ?", characterID).Delete(&domain.EquippedEntry{}).Error; err != nil {
			logger.DBLogger.Error("Failed to delete equipped entries", zap.String("request_id", requestID), zap.Error(err))
			return errors.New("failed to delete equipped entries")
		}
		if err := tx.Where("character_id = ?", characterID).Delete(&domain.InventoryEntry{}).Error; err != nil {
			logger.DBLogger.Error("Failed to delete inventory entries", zap.String("request_id", requestID), zap.Error(err))
			return errors.New("failed to delete inventory entries")
		}
		if err := tx.Where("character_id = ?", characterID).Delete(&domain.CharacterStats{}).Error; err != nil {
			logger.DBLogger.Error("Failed to delete character stats", zap.String("request_id", requestID), zap.Error(err))
			return errors.New("failed to delete character stats")
		}
		if err := tx.Delete(&character).Error; err != nil {
			logger.DBLogger.Error("Failed to delete character", zap.String("request_id", requestID), zap.Error(err))
			return errors.New("failed to delete character")
		}
		return nil
	}); err != nil {
		return err
	}

	logger.DBLogger.Info("Successfully deleted character", zap.String("request_id", requestID), zap.Int("character_id", characterID))
	return nil
}

// GetCharacterDetail returns the character, its stats and the owning
// account's username so the usecase can decide whether to expose the
// money balance.
func (r *characterRepository) GetCharacterDetail(ctx context.Context, characterID int) (*domain.Character, *domain.CharacterStats, string, error) {
	requestID := middleware.GetRequestID(ctx)
	logger.DBLogger.Info("GetCharacterDetail called", zap.String("request_id", requestID), zap.Int("character_id", characterID))

	var character domain.Character
	if err := r.db.Where("id = ?", characterID).First(&character).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			logger.DBLogger.Warn("Character not found", zap.String("request_id", requestID), zap.Int("character_id", characterID))
			return nil, nil, "", domain.NewError(http.StatusNotFound, "character does not exist")
		}
		logger.DBLogger.Error("Failed to fetch character", zap.String("request_id", requestID), zap.Error(err))
		return nil, nil, "", errors.New("failed to fetch character")
	}

	var stats domain.CharacterStats
	if err := r.db.Where("character_id = ?", characterID).First(&stats).Error; err != nil {
		logger.DBLogger.Error("Failed to fetch character stats", zap.String("request_id", requestID), zap.Error(err))
		return nil, nil, "", errors.New("failed to fetch character stats")
	}

	var account domain.Account
	if err := r.db.Where("id = ?", character.AccountID).First(&account).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			logger.DBLogger.Warn("Owner account not found", zap.String("request_id", requestID), zap.Int("account_id", character.AccountID))
			return nil, nil, "", domain.NewError(http.StatusNotFound, "account does not exist")
		}
		logger.DBLogger.Error("Failed to fetch account", zap.String("request_id", requestID), zap.Error(err))
		return nil, nil, "", errors.New("failed to fetch account")
	}

	return &character, &stats, account.Username, nil
}

func (r *characterRepository) EarnMoney(ctx context.Context, username string, characterID int, amount int) (int, error) {
	requestID := middleware.GetRequestID(ctx)
	logger.DBLogger.Info("EarnMoney called", zap.String("request_id", requestID), zap.String("username", username), zap.Int("character_id", characterID))

	var updatedMoney int
	if err := r.db.Transaction(func(tx *gorm.DB) error {
		var account domain.Account
		if err := tx.Where("username = ?", username).First(&account).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				logger.DBLogger.Warn("Account not found", zap.String("request_id", requestID), zap.String("username", username))
				return domain.NewError(http.StatusNotFound, "account does not exist")
			}
			logger.DBLogger.Error("Failed to fetch account", zap.String("request_id", requestID), zap.Error(err))
			return errors.New("failed to fetch account")
		}

		var character domain.Character
		if err := tx.Where("id = ?", characterID).First(&character).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				logger.DBLogger.Warn("Character not found", zap.String("request_id", requestID), zap.Int("character_id", characterID))
				return domain.NewError(http.StatusNotFound, "character does not exist")
			}
			logger.DBLogger.Error("Failed to fetch character", zap.String("request_id", requestID), zap.Error(err))
			return errors.New("failed to fetch character")
		}

		if character.AccountID != account.ID {
			logger.DBLogger.Warn("Character owned by another account", zap.String("request_id", requestID), zap.Int("character_id", characterID))
			return domain.NewError(http.StatusConflict, "character belongs to another account")
		}

		updatedMoney = character.Money + amount
		if err := tx.Model(&domain.Character{}).Where("id = ?", characterID).Update("money", updatedMoney).Error; err != nil {
			logger.DBLogger.Error("Failed to update character money", zap.String("request_id", requestID), zap.Error(err))
			return errors.New("failed to update character money")
		}
		return nil
	}); err != nil {
		return 0, err
	}

	logger.DBLogger.Info("Successfully earned money", zap.String("request_id", requestID), zap.Int("character_id", characterID), zap.Int("money", updatedMoney))
	return updatedMoney, nil
}
