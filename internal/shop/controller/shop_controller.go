package controller

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"time"

	"item_simulator/domain"
	"item_simulator/internal/service/logger"
	"item_simulator/internal/service/middleware"
	"item_simulator/internal/shop/usecase"

	"github.com/gorilla/mux"
	"go.uber.org/zap"
)

type ShopHandler struct {
	usecase usecase.ShopUsecase
}

func NewShopHandler(usecase usecase.ShopUsecase) *ShopHandler {
	return &ShopHandler{
		usecase: usecase,
	}
}

func (h *ShopHandler) BuyItems(w http.ResponseWriter, r *http.Request) {
	start := time.Now()
	requestID := middleware.GetRequestID(r.Context())
	ctx, cancel := middleware.WithTimeout(r.Context())
	defer cancel()

	logger.AccessLogger.Info("Received BuyItems request",
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

	var lines []domain.BuyOrderLine
	if err := json.NewDecoder(r.Body).Decode(&lines); err != nil {
		h.handleError(w, domain.NewError(http.StatusUnprocessableEntity, "invalid request body"), requestID)
		return
	}

	if err := h.usecase.BuyItems(ctx, username, characterID, lines); err != nil {
		h.handleError(w, err, requestID)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	if err := json.NewEncoder(w).Encode(map[string]string{"message": "purchase completed"}); err != nil {
		h.handleError(w, err, requestID)
		return
	}

	duration := time.Since(start)
	logger.AccessLogger.Info("Completed BuyItems request",
		zap.String("request_id", requestID),
		zap.Duration("duration", duration),
		zap.Int("status", http.StatusOK),
	)
}

func (h *ShopHandler) SellItem(w http.ResponseWriter, r *http.Request) {
	start := time.Now()
	requestID := middleware.GetRequestID(r.Context())
	ctx, cancel := middleware.WithTimeout(r.Context())
	defer cancel()

	logger.AccessLogger.Info("Received SellItem request",
		zap.String("request_id", requestID),
		zap.String("method", r.Method),
		zap.String("url", r.URL.String()),
	)

	username, ok := middleware.GetIdentity(ctx)
	if !ok {
		h.handleError(w, domain.ErrUnauthenticated, requestID)
		return
	}

	vars := mux.Vars(r)
	characterID, err := strconv.Atoi(vars["characterId"])
	if err != nil {
		h.handleError(w, domain.NewError(http.StatusUnprocessableEntity, "invalid characterId"), requestID)
		return
	}
	itemID, err := strconv.Atoi(vars["item"])
	if err != nil {
		h.handleError(w, domain.NewError(http.StatusUnprocessableEntity, "invalid itemId"), requestID)
		return
	}
	count, err := strconv.Atoi(vars["count"])
	if err != nil {
		h.handleError(w, domain.NewError(http.StatusUnprocessableEntity, "invalid count"), requestID)
		return
	}

	result, err := h.usecase.SellItem(ctx, username, characterID, itemID, count)
	if err != nil {
		h.handleError(w, err, requestID)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	if err := json.NewEncoder(w).Encode(result); err != nil {
		h.handleError(w, err, requestID)
		return
	}

	duration := time.Since(start)
	logger.AccessLogger.Info("Completed SellItem request",
		zap.String("request_id", requestID),
		zap.Duration("duration", duration),
		zap.Int("status", http.StatusOK),
	)
}

func (h *ShopHandler) handleError(w http.ResponseWriter, err error, requestID string) {
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
