package controller

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"time"

	"item_simulator/domain"
	"item_simulator/internal/inventory/usecase"
	"item_simulator/internal/service/logger"
	"item_simulator/internal/service/middleware"

	"github.com/gorilla/mux"
	"go.uber.org/zap"
)

type InventoryHandler struct {
	usecase usecase.InventoryUsecase
}

func NewInventoryHandler(usecase usecase.InventoryUsecase) *InventoryHandler {
	return &InventoryHandler{
		usecase: usecase,
	}
}

func (h *InventoryHandler) ListInventory(w http.ResponseWriter, r *http.Request) {
	start := time.Now()
	requestID := middleware.GetRequestID(r.Context())
	ctx, cancel := middleware.WithTimeout(r.Context())
	defer cancel()

	logger.AccessLogger.Info("Received ListInventory request",
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

	items, err := h.usecase.ListInventory(ctx, username, characterID)
	if err != nil {
		h.handleError(w, err, requestID)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	if err := json.NewEncoder(w).Encode(items); err != nil {
		h.handleError(w, err, requestID)
		return
	}

	duration := time.Since(start)
	logger.AccessLogger.Info("Completed ListInventory request",
		zap.String("request_id", requestID),
		zap.Duration("duration", duration),
		zap.Int("status", http.StatusOK),
	)
}

func (h *InventoryHandler) ListEquipped(w http.ResponseWriter, r *http.Request) {
	start := time.Now()
	requestID := middleware.GetRequestID(r.Context())
	ctx, cancel := middleware.WithTimeout(r.Context())
	defer cancel()

	logger.AccessLogger.Info("Received ListEquipped request",
		zap.String("request_id", requestID),
		zap.String("method", r.Method),
		zap.String("url", r.URL.String()),
	)

	characterID, err := strconv.Atoi(mux.Vars(r)["characterId"])
	if err != nil {
		h.handleError(w, domain.NewError(http.StatusUnprocessableEntity, "invalid characterId"), requestID)
		return
	}

	items, err := h.usecase.ListEquipped(ctx, characterID)
	if err != nil {
		h.handleError(w, err, requestID)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	if err := json.NewEncoder(w).Encode(items); err != nil {
		h.handleError(w, err, requestID)
		return
	}

	duration := time.Since(start)
	logger.AccessLogger.Info("Completed ListEquipped request",
		zap.String("request_id", requestID),
		zap.Duration("duration", duration),
		zap.Int("status", http.StatusOK),
	)
}

func (h *InventoryHandler) EquipItem(w http.ResponseWriter, r *http.Request) {
	start := time.Now()
	requestID := middleware.GetRequestID(r.Context())
	ctx, cancel := middleware.WithTimeout(r.Context())
	defer cancel()

	logger.AccessLogger.Info("Received EquipItem request",
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

	var req domain.EquipRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.handleError(w, domain.NewError(http.StatusUnprocessableEntity, "invalid request body"), requestID)
		return
	}
	if req.ItemID <= 0 {
		h.handleError(w, domain.NewError(http.StatusUnprocessableEntity, "invalid itemId"), requestID)
		return
	}

	response, err := h.usecase.EquipItem(ctx, username, characterID, req.ItemID)
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
	logger.AccessLogger.Info("Completed EquipItem request",
		zap.String("request_id", requestID),
		zap.Duration("duration", duration),
		zap.Int("status", http.StatusOK),
	)
}

func (h *InventoryHandler) UnequipItem(w http.ResponseWriter, r *http.Request) {
	start := time.Now()
	requestID := middleware.GetRequestID(r.Context())
	ctx, cancel := middleware.WithTimeout(r.Context())
	defer cancel()

	logger.AccessLogger.Info("Received UnequipItem request",
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

	var req domain.EquipRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.handleError(w, domain.NewError(http.StatusUnprocessableEntity, "invalid request body"), requestID)
		return
	}
	if req.ItemID <= 0 {
		h.handleError(w, domain.NewError(http.StatusUnprocessableEntity, "invalid itemId"), requestID)
		return
	}

	response, err := h.usecase.UnequipItem(ctx, username, characterID, req.ItemID)
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
	logger.AccessLogger.Info("Completed UnequipItem request",
		zap.String("request_id", requestID),
		zap.Duration("duration", duration),
		zap.Int("status", http.StatusOK),
	)
}

func (h *InventoryHandler) handleError(w http.ResponseWriter, err error, requestID string) {
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
