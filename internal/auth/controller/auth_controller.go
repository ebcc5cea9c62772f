package controller

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"item_simulator/domain"
	"item_simulator/internal/auth/usecase"
	"item_simulator/internal/service/logger"
	"item_simulator/internal/service/middleware"

	"github.com/microcosm-cc/bluemonday"
	"go.uber.org/zap"
)

type AuthHandler struct {
	usecase usecase.AuthUsecase
}

func NewAuthHandler(usecase usecase.AuthUsecase) *AuthHandler {
	return &AuthHandler{
		usecase: usecase,
	}
}

func (h *AuthHandler) SignUp(w http.ResponseWriter, r *http.Request) {
	start := time.Now()
	requestID := middleware.GetRequestID(r.Context())
	ctx, cancel := middleware.WithTimeout(r.Context())
	sanitizer := bluemonday.UGCPolicy()
	defer cancel()

	logger.AccessLogger.Info("Received SignUp request",
		zap.String("request_id", requestID),
		zap.String("method", r.Method),
		zap.String("url", r.URL.String()),
	)

	var req domain.SignUpRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		logger.AccessLogger.Error("Failed to decode request body",
			zap.String("request_id", requestID),
			zap.Error(err),
		)
		h.handleError(w, domain.NewError(http.StatusUnprocessableEntity, "invalid request body"), requestID)
		return
	}
	req.Username = sanitizer.Sanitize(req.Username)

	refreshToken, err := h.usecase.SignUp(ctx, req.Username, req.Password, req.ConfirmPassword)
	if err != nil {
		h.handleError(w, err, requestID)
		return
	}

	http.SetCookie(w, &http.Cookie{
		Name:     "refreshToken",
		Value:    refreshToken,
		Path:     "/",
		HttpOnly: true,
	})

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	if err := json.NewEncoder(w).Encode(map[string]string{"message": "sign-up completed"}); err != nil {
		logger.AccessLogger.Error("Failed to encode response",
			zap.String("request_id", requestID),
			zap.Error(err),
		)
		return
	}

	duration := time.Since(start)
	logger.AccessLogger.Info("Completed SignUp request",
		zap.String("request_id", requestID),
		zap.Duration("duration", duration),
		zap.Int("status", http.StatusCreated),
	)
}

func (h *AuthHandler) SignIn(w http.ResponseWriter, r *http.Request) {
	start := time.Now()
	requestID := middleware.GetRequestID(r.Context())
	ctx, cancel := middleware.WithTimeout(r.Context())
	sanitizer := bluemonday.UGCPolicy()
	defer cancel()

	logger.AccessLogger.Info("Received SignIn request",
		zap.String("request_id", requestID),
		zap.String("method", r.Method),
		zap.String("url", r.URL.String()),
	)

	var req domain.SignInRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		logger.AccessLogger.Error("Failed to decode request body",
			zap.String("request_id", requestID),
			zap.Error(err),
		)
		h.handleError(w, domain.NewError(http.StatusUnprocessableEntity, "invalid request body"), requestID)
		return
	}
	req.Username = sanitizer.Sanitize(req.Username)

	accessToken, refreshToken, err := h.usecase.SignIn(ctx, req.Username, req.Password)
	if err != nil {
		h.handleError(w, err, requestID)
		return
	}

	http.SetCookie(w, &http.Cookie{
		Name:     "refreshToken",
		Value:    refreshToken,
		Path:     "/",
		HttpOnly: true,
	})

	w.Header().Set("Authorization", "Bearer "+accessToken)
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	if err := json.NewEncoder(w).Encode(map[string]string{"message": "sign-in completed"}); err != nil {
		logger.AccessLogger.Error("Failed to encode response",
			zap.String("request_id", requestID),
			zap.Error(err),
		)
		return
	}

	duration := time.Since(start)
	logger.AccessLogger.Info("Completed SignIn request",
		zap.String("request_id", requestID),
		zap.Duration("duration", duration),
		zap.Int("status", http.StatusCreated),
	)
}

func (h *AuthHandler) handleError(w http.ResponseWriter, err error, requestID string) {
	logger.AccessLogger.Error("Handling error",
		zap.String("request_id", requestID),
		zap.Error(err),
	)

	w.Header().Set("Content-Type", "application/json")

	var domainErr *domain.Error
	if errors.As(err, &domainErr) {
		w.WriteHeader(domainErr.Code)
		if jsonErr := json.NewEncoder(w).Encode(map[string]string{"message": domainErr.Message}); jsonErr != nil {
			logger.AccessLogger.Error("Failed to encode error response",
				zap.String("request_id", requestID),
				zap.Error(jsonErr),
			)
		}
		return
	}

	w.WriteHeader(http.StatusInternalServerError)
	if jsonErr := json.NewEncoder(w).Encode(map[string]string{"errorMessage": "internal server error"}); jsonErr != nil {
		logger.AccessLogger.Error("Failed to encode error response",
			zap.String("request_id", requestID),
			zap.Error(jsonErr),
		)
	}
}
