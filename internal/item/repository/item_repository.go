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

type itemRepository struct {
	db *gorm.DB
}

func NewItemRepository(db *gorm.DB) domain.ItemRepository {
	return &itemRepository{
		db: db,
	}
}

func (r *itemRepository) CreateItem(ctx context.Context, name string, stats domain.Stats, price int) (*domain.Item, error) {
	requestID := middleware.GetRequestID(ctx)
	logger.DBLogger.Info("CreateItem called", zap.String("request_id", requestID), zap.String("name", name))

	var item domain.Item
	if err := r.db.Transaction(func(tx *gorm.DB) error {
		var existing domain.Item
		err := tx.Where("name = ?", name).First(&existing).Error
		if err == nil {
			logger.DBLogger.Warn("Item name already taken", zap.String("request_id", requestID), zap.String("name", name))
			return domain.NewError(http.StatusConflict, "item already exists")
		}
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			logger.DBLogger.Error("Failed to check item name", zap.String("request_id", requestID), zap.Error(err))
			return errors.New("failed to check item name")
		}

		item = domain.Item{
			Name:  name,
			Price: price,
		}
		if err := tx.Create(&item).Error; err != nil {
			logger.DBLogger.Error("Failed to create item", zap.String("request_id", requestID), zap.Error(err))
			return errors.New("failed to create item")
		}

		itemStats := domain.ItemStats{
			ItemID: item.ID,
			Power:  stats.Power,
			Health: stats.Health,
		}
		if err := tx.Create(&itemStats).Error; err != nil {
			logger.DBLogger.Error("Failed to create item stats", zap.String("request_id", requestID), zap.Error(err))
			return errors.New("failed to create item stats")
		}
		return nil
	}); err != nil {
		return nil, err
	}

	logger.DBLogger.Info("Successfully created item", zap.String("request_id", requestID), zap.String("name", name))
	return &item, nil
}

// UpdateItem changes the name and stats only. Price is immutable once
// the item exists, the shop depends on it staying put.
func (r *itemRepository) UpdateItem(ctx context.Context, itemID int, name string, stats domain.Stats) (*domain.Item, error) {
	requestID := middleware.GetRequestID(ctx)
	logger.DBLogger.Info("UpdateItem called", zap.String("request_id", requestID), zap.Int("item_id", itemID))

	var item domain.Item
	if err := r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("id = ?", itemID).First(&item).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				logger.DBLogger.Warn("Item not found", zap.String("request_id", requestID), zap.Int("item_id", itemID))
				return domain.NewError(http.StatusNotFound, "item does not exist")
			}
			logger.DBLogger.Error("Failed to fetch item", zap.String("request_id", requestID), zap.Error(err))
			return errors.New("failed to fetch item")
		}

		if name != item.Name {
			var existing domain.Item
			err := tx.Where("name = ?", name).First(&existing).Error
			if err == nil {
				logger.DBLogger.Warn("Item name already taken", zap.String("request_id", requestID), zap.String("name", name))
				return domain.NewError(http.StatusConflict, "item already exists")
			}
			if !errors.Is(err, gorm.ErrRecordNotFound) {
				logger.DBLogger.Error("Failed to check item name", zap.String("request_id", requestID), zap.Error(err))
				return errors.New("failed to check item name")
			}
		}

		if err := tx.Model(&domain.Item{}).Where("id = ?", itemID).Update("name", name).Error; err != nil {
			logger.DBLogger.Error("Failed to update item", zap.String("request_id", requestID), zap.Error(err))
			return errors.New("failed to update item")
		}
		if err := tx.Model(&domain.ItemStats{}).Where("item_id = ?", itemID).
			Updates(map[string]interface{}{"health": stats.Health, "power": stats.Power}).Error; err != nil {
			logger.DBLogger.Error("Failed to update item stats", zap.String("request_id", requestID), zap.Error(err))
			return errors.New("failed to update item stats")
		}

		item.Name = name
		return nil
	}); err != nil {
		return nil, err
	}

	logger.DBLogger.Info("Successfully updated item", zap.String("request_id", requestID), zap.Int("item_id", itemID))
	return &item, nil
}

func (r *itemRepository) ListItems(ctx context.Context) ([]domain.ItemSummary, error) {
	requestID := middleware.GetRequestID(ctx)
	logger.DBLogger.Info("ListItems called", zap.String("request_id", requestID))

	var rows []domain.ItemSummary
	if err := r.db.
		Table("items").
		Select("items.id AS item_id, items.name, items.price").
		Scan(&rows).Error; err != nil {
		logger.DBLogger.Error("Failed to fetch items", zap.String("request_id", requestID), zap.Error(err))
		return nil, errors.New("failed to fetch items")
	}

	if rows == nil {
		rows = make([]domain.ItemSummary, 0)
	}
	return rows, nil
}

func (r *itemRepository) GetItemDetail(ctx context.Context, itemID int) (*domain.ItemDetailResponse, error) {
	requestID := middleware.GetRequestID(ctx)
	logger.DBLogger.Info("GetItemDetail called", zap.String("request_id", requestID), zap.Int("item_id", itemID))

	var item domain.Item
	if err := r.db.Where("id = ?", itemID).First(&item).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			logger.DBLogger.Warn("Item not found", zap.String("request_id", requestID), zap.Int("item_id", itemID))
			return nil, domain.NewError(http.StatusNotFound, "item does not exist")
		}
		logger.DBLogger.Error("Failed to fetch item", zap.String("request_id", requestID), zap.Error(err))
		return nil, errors.New("failed to fetch item")
	}

	var stats domain.ItemStats
	if err := r.db.Where("item_id = ?", itemID).First(&stats).Error; err != nil {
		logger.DBLogger.Error("Failed to fetch item stats", zap.String("request_id", requestID), zap.Error(err))
		return nil, errors.New("failed to fetch item stats")
	}

	return &domain.ItemDetailResponse{
		ItemID: item.ID,
		Name:   item.Name,
		Stats:  domain.Stats{Power: stats.Power, Health: stats.Health},
		Price:  item.Price,
	}, nil
}
