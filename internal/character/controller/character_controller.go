package controller

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"strings"
	"time"

	"item_simulator/domain"
	"item_simulator/internal/character/usecase"
	"item_simulator/internal/service/logger"
	"item_simulator/internal/service/middleware"

	"github.com/gorilla/mux"
	"github.com/microcosm-cc/bluemonday"
	"go.uber.org/zap"
)

type CharacterHandler struct {
	usecase     usecase.CharacterUsecase
	accessToken middleware.JwtTokenService
}

func NewCharacterHandler(usecase usecase.CharacterUsecase, accessToken middleware.JwtTokenService) *CharacterHandler {
	return &CharacterHandler{
		usecase:     usecase,
		accessToken: accessToken,
	}
}

func (h *CharacterHandler) CreateCharacter(w http.ResponseWriter, r *http.Request) {
	start := time.Now()
	requestID := middleware.GetRequestID(r.Context())
	ctx, cancel := middleware.WithTimeout(r.Context())
	sanitizer := bluemonday.UGCPolicy()
	defer cancel()

	logger.AccessLogger.Info("Received CreateCharacter request",
		zap.String("request_id", requestID),
		zap.String("method", r.Method),
		zap.String("url", r.URL.String()),
	)

	username, ok := middleware.GetIdentity(ctx)
	if !ok {
		h.handleError(w, domain.ErrUnauthenticated, requestID)
		return
	}

	var req domain.CreateCharacterRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.handleError(w, domain.NewError(http.StatusUnprocessableEntity, "invalid request body"), requestID)
		return
	}
	req.Name = sanitizer.Sanitize(req.Name)

	response, err := h.usecase.CreateCharacter(ctx, username, req)
	if err != nil {
		h.handleError(w, err, requestID)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	if err := json.NewEncoder(w).Encode(response); err != nil {
		h.handleError(w, err, requestID)
		return
	}

	duration := time.Since(start)
	logger.AccessLogger.Info("Completed CreateCharacter request",
		zap.String("request_id", requestID),
		zap.Duration("duration", duration),
		zap.Int("status", http.StatusCreated),
	)
}

func (h *CharacterHandler) DeleteCharacter(w http.ResponseWriter, r *http.Request) {
	start := time.Now()
	requestID := middleware.GetRequestID(r.Context())
	ctx, cancel := middleware.WithTimeout(r.Context())
	defer cancel()

	logger.AccessLogger.Info("Received DeleteCharacter request",
		zap.String("request_id", requestID),
		zap.String("method", r.Method),
		zap.String("url", r.URL.String()),
	)

	username, ok := middleware.GetIdentity(ctx)
	if !ok {
		h.handleError(w, domain.ErrUnauthenticated, requestID)
		return
	}

	characterID, err := strconv.Atoi(mux.Vars(r)["characterId"])
	if err != nil {
		h.handleError(w, domain.NewError(http.StatusUnprocessableEntity, "invalid characterId"), requestID)
		return
	}

	if err := h.usecase.DeleteCharacter(ctx, username, characterID); err != nil {
		h.handleError(w, err, requestID)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	if err := json.NewEncoder(w).Encode(map[string]string{"message": "character deleted"}); err != nil {
		h.handleError(w, err, requestID)
		return
	}

	duration := time.Since(start)
	logger.AccessLogger.Info("Completed DeleteCharacter request",
		zap.String("request_id", requestID),
		zap.Duration("duration", duration),
		zap.Int("status", http.StatusCreated),
	)
}

func (h *CharacterHandler) GetCharacterDetail(w http.ResponseWriter, r *http.Request) {
	start := time.Now()
	requestID := middleware.GetRequestID(r.Context())
	ctx, cancel := middleware.WithTimeout(r.Context())
	defer cancel()

	logger.AccessLogger.Info("Received GetCharacterDetail request",
		zap.String("request_id", requestID),
		zap.String("method", r.Method),
		zap.String("url", r.URL.String()),
	)

	characterID, err := strconv.Atoi(mux.Vars(r)["characterId"])
	if err != nil {
		h.handleError(w, domain.NewError(http.StatusUnprocessableEntity, "invalid characterId"), requestID)
		return
	}

	response, err := h.usecase.GetCharacterDetail(ctx, h.optionalViewer(r), characterID)
	if err != nil {
		h.handleError(w, err, requestID)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	if err := json.NewEncoder(w).Encode(response); err != nil {
		h.handleError(w, err, requestID)
		return
	}

	duration := time.Since(start)
	logger.AccessLogger.Info("Completed GetCharacterDetail request",
		zap.String("request_id", requestID),
		zap.Duration("duration", duration),
		zap.Int("status", http.StatusOK),
	)
}

func (h *CharacterHandler) EarnMoney(w http.ResponseWriter, r *http.Request) {
	start := time.Now()
	requestID := middleware.GetRequestID(r.Context())
	ctx, cancel := middleware.WithTimeout(r.Context())
	defer cancel()

	logger.AccessLogger.Info("Received EarnMoney request",
		zap.String("request_id", requestID),
		zap.String("method", r.Method),
		zap.String("url", r.URL.String()),
	)

	username, ok := middleware.GetIdentity(ctx)
	if !ok {
		h.handleError(w, domain.ErrUnauthenticated, requestID)
		return
	}

	characterID, err := strconv.Atoi(mux.Vars(r)["characterId"])
	if err != nil {
		h.handleError(w, domain.NewError(http.StatusUnprocessableEntity, "invalid characterId"), requestID)
		return
	}

	money, err := h.usecase.EarnMoney(ctx, username, characterID)
	if err != nil {
		h.handleError(w, err, requestID)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	if err := json.NewEncoder(w).Encode(map[string]string{
		"message": fmt.Sprintf("earned 100 money, current balance: %d", money),
	}); err != nil {
		h.handleError(w, err, requestID)
		return
	}

	duration := time.Since(start)
	logger.AccessLogger.Info("Completed EarnMoney request",
		zap.String("request_id", requestID),
		zap.Duration("duration", duration),
		zap.Int("status", http.StatusOK),
	)
}

// optionalViewer extracts the identity from a bearer token when one is
// supplied. Any invalid or expired token is treated as anonymous, the
// route stays public either way.
func (h *CharacterHandler) optionalViewer(r *http.Request) string {
	authHeader := r.Header.Get("Authorization")
	tokenString, ok := strings.CutPrefix(authHeader, "Bearer ")
	if !ok {
		return ""
	}
	claims, err := h.accessToken.Validate(tokenString)
	if err != nil {
		return ""
	}
	return claims.Username
}

func (h *CharacterHandler) handleError(w http.ResponseWriter, err error, requestID string) {
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
