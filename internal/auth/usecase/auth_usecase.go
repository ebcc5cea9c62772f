package usecase

import (
	"context"
	"errors"
	"net/http"

	"item_simulator/domain"
	"item_simulator/internal/service/logger"
	"item_simulator/internal/service/middleware"
	"item_simulator/internal/service/session"
	"item_simulator/internal/service/validation"

	"go.uber.org/zap"
)

type AuthUsecase interface {
	SignUp(ctx context.Context, username string, password string, confirmPassword string) (string, error)
	SignIn(ctx context.Context, username string, password string) (string, string, error)
}

type authUsecase struct {
	accountRepository domain.AccountRepository
	accessToken       middleware.JwtTokenService
	refreshToken      middleware.JwtTokenService
	sessions          *session.Registry
}

func NewAuthUsecase(accountRepository domain.AccountRepository, accessToken middleware.JwtTokenService, refreshToken middleware.JwtTokenService, sessions *session.Registry) AuthUsecase {
	return &authUsecase{
		accountRepository: accountRepository,
		accessToken:       accessToken,
		refreshToken:      refreshToken,
		sessions:          sessions,
	}
}

const maxCredentialLen = 100

// SignUp registers an account and returns the refresh token issued for
// it. The token is persisted with the account and mirrored into the
// session registry.
func (uc *authUsecase) SignUp(ctx context.Context, username string, password string, confirmPassword string) (string, error) {
	requestID := middleware.GetRequestID(ctx)

	if len(username) > maxCredentialLen || len(password) > maxCredentialLen {
		logger.AccessLogger.Warn("Input exceeds character limit", zap.String("request_id", requestID))
		return "", domain.NewError(http.StatusUnprocessableEntity, "input exceeds character limit")
	}
	if !validation.ValidateUsername(username) {
		logger.AccessLogger.Warn("Invalid username format", zap.String("request_id", requestID))
		return "", domain.NewError(http.StatusUnprocessableEntity, "userName must combine letters and digits")
	}
	if !validation.ValidatePassword(password) {
		logger.AccessLogger.Warn("Password too short", zap.String("request_id", requestID))
		return "", domain.NewError(http.StatusUnprocessableEntity, "password must be at least 6 characters")
	}
	if password != confirmPassword {
		logger.AccessLogger.Warn("Password confirmation mismatch", zap.String("request_id", requestID))
		return "", domain.NewError(http.StatusUnprocessableEntity, "password confirmation does not match")
	}

	passwordHash, err := middleware.HashPassword(password)
	if err != nil {
		logger.AccessLogger.Error("Failed to hash password", zap.String("request_id", requestID), zap.Error(err))
		return "", errors.New("failed to hash password")
	}

	refreshToken, err := uc.refreshToken.Create(username)
	if err != nil {
		logger.AccessLogger.Error("Failed to create refresh token", zap.String("request_id", requestID), zap.Error(err))
		return "", errors.New("failed to create refresh token")
	}

	if _, err := uc.accountRepository.CreateAccount(ctx, username, passwordHash, refreshToken); err != nil {
		return "", err
	}

	uc.sessions.Put(username, refreshToken)
	return refreshToken, nil
}

// SignIn verifies credentials and returns (access token, refresh
// token). A fresh refresh token is persisted and registered on every
// successful login.
func (uc *authUsecase) SignIn(ctx context.Context, username string, password string) (string, string, error) {
	requestID := middleware.GetRequestID(ctx)

	account, err := uc.accountRepository.GetAccountByUsername(ctx, username)
	if err != nil {
		return "", "", err
	}

	if !middleware.CheckPassword(account.Password, password) {
		logger.AccessLogger.Warn("Password mismatch", zap.String("request_id", requestID), zap.String("username", username))
		return "", "", domain.NewError(http.StatusUnauthorized, "password does not match")
	}

	refreshToken, err := uc.refreshToken.Create(username)
	if err != nil {
		logger.AccessLogger.Error("Failed to create refresh token", zap.String("request_id", requestID), zap.Error(err))
		return "", "", errors.New("failed to create refresh token")
	}
	if err := uc.accountRepository.UpdateRefreshToken(ctx, username, refreshToken); err != nil {
		return "", "", err
	}
	uc.sessions.Put(username, refreshToken)

	accessToken, err := uc.accessToken.Create(username)
	if err != nil {
		logger.AccessLogger.Error("Failed to create access token", zap.String("request_id", requestID), zap.Error(err))
		return "", "", errors.New("failed to create access token")
	}

	return accessToken, refreshToken, nil
}
