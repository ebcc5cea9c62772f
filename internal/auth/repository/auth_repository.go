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

type authRepository struct {
	db *gorm.DB
}

func NewAuthRepository(db *gorm.DB) domain.AccountRepository {
	return &authRepository{
		db: db,
	}
}

func (r *authRepository) CreateAccount(ctx context.Context, username string, passwordHash string, refreshToken string) (*domain.Account, error) {
	requestID := middleware.GetRequestID(ctx)
	logger.DBLogger.Info("CreateAccount called", zap.String("request_id", requestID), zap.String("username", username))

	var account domain.Account
	if err := r.db.Transaction(func(tx *gorm.DB) error {
		var existing domain.Account
		err := tx.Where("username = ?", username).First(&existing).Error
		if err == nil {
			logger.DBLogger.Warn("Username already taken", zap.String("request_id", requestID), zap.String("username", username))
			return domain.NewError(http.StatusConflict, "userName already exists")
		}
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			logger.DBLogger.Error("Failed to check username", zap.String("request_id", requestID), zap.Error(err))
			return errors.New("failed to check username")
		}

		account = domain.Account{
			Username:     username,
			Password:     passwordHash,
			RefreshToken: refreshToken,
		}
		if err := tx.Create(&account).Error; err != nil {
			logger.DBLogger.Error("Failed to create account", zap.String("request_id", requestID), zap.Error(err))
			return errors.New("failed to create account")
		}
		return nil
	}); err != nil {
		return nil, err
	}

	logger.DBLogger.Info("Successfully created account", zap.String("request_id", requestID), zap.String("username", username))
	return &account, nil
}

func (r *authRepository) GetAccountByUsername(ctx context.Context, username string) (*domain.Account, error) {
	requestID := middleware.GetRequestID(ctx)
	logger.DBLogger.Info("GetAccountByUsername called", zap.String("request_id", requestID), zap.String("username", username))

	var account domain.Account
	if err := r.db.Where("username = ?", username).First(&account).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			logger.DBLogger.Warn("Account not found", zap.String("request_id", requestID), zap.String("username", username))
			return nil, domain.NewError(http.StatusUnauthorized, "account does not exist")
		}
		logger.DBLogger.Error("Failed to fetch account", zap.String("request_id", requestID), zap.Error(err))
		return nil, errors.New("failed to fetch account")
	}
	return &account, nil
}

func (r *authRepository) UpdateRefreshToken(ctx context.Context, username string, refreshToken string) error {
	requestID := middleware.GetRequestID(ctx)
	logger.DBLogger.Info("UpdateRefreshToken called", zap.String("request_id", requestID), zap.String("username", username))

	if err := r.db.Model(&domain.Account{}).Where("username = ?", username).Update("refresh_token", refreshToken).Error; err != nil {
		logger.DBLogger.Error("Failed to update refresh token", zap.String("request_id", requestID), zap.Error(err))
		return errors.New("failed to update refresh token")
	}
	return nil
}

// LoadRefreshTokens reads every account's persisted refresh token to
// seed the session registry at startup.
func (r *authRepository) LoadRefreshTokens(ctx context.Context) (map[string]string, error) {
	var accounts []domain.Account
	if err := r.db.Where("refresh_token <> ''").Find(&accounts).Error; err != nil {
		logger.DBLogger.Error("Failed to load refresh tokens", zap.Error(err))
		return nil, errors.New("failed to load refresh tokens")
	}

	tokens := make(map[string]string, len(accounts))
	for _, account := range accounts {
		tokens[account.Username] = account.RefreshToken
	}
	return tokens, nil
}
