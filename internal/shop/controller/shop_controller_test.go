package controller

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"item_simulator/domain"
	"item_simulator/internal/service/logger"
	"item_simulator/internal/service/middleware"
	"item_simulator/internal/shop/mocks"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestBuyItemsHandler(t *testing.T) {
	logger.AccessLogger = zap.NewNop()

	t.Run("Success", func(t *testing.T) {
		usecase := new(mocks.MockShopUsecase)
		handler := NewShopHandler(usecase)

		lines := []domain.BuyOrderLine{
			{ItemName: "sword", Count: 2},
			{ItemName: "shield", Count: 1},
		}
		usecase.On("BuyItems", mock.Anything, "alice1", 1, lines).Return(nil)

		body, _ := json.Marshal(lines)
		req := httptest.NewRequest("POST", "/api/shop/buy/1", bytes.NewReader(body))
		req = req.WithContext(middleware.WithIdentity(req.Context(), "alice1"))
		req = mux.SetURLVars(req, map[string]string{"characterId": "1"})
		rec := httptest.NewRecorder()

		handler.BuyItems(rec, req)

		assert.Equal(t, http.StatusOK, rec.Code)

		var response map[string]string
		require.NoError(t, json.NewDecoder(rec.Body).Decode(&response))
		assert.Equal(t, "purchase completed", response["message"])

		usecase.AssertExpectations(t)
	})

	t.Run("Fail - No Identity", func(t *testing.T) {
		handler := NewShopHandler(new(mocks.MockShopUsecase))

		body, _ := json.Marshal([]domain.BuyOrderLine{{ItemName: "sword", Count: 1}})
		req := httptest.NewRequest("POST", "/api/shop/buy/1", bytes.NewReader(body))
		req = mux.SetURLVars(req, map[string]string{"characterId": "1"})
		rec := httptest.NewRecorder()

		handler.BuyItems(rec, req)

		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})

	t.Run("Fail - Bad CharacterId", func(t *testing.T) {
		handler := NewShopHandler(new(mocks.MockShopUsecase))

		req := httptest.NewRequest("POST", "/api/shop/buy/abc", bytes.NewReader([]byte(`[]`)))
		req = req.WithContext(middleware.WithIdentity(req.Context(), "alice1"))
		req = mux.SetURLVars(req, map[string]string{"characterId": "abc"})
		rec := httptest.NewRecorder()

		handler.BuyItems(rec, req)

		assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
		var response map[string]string
		require.NoError(t, json.NewDecoder(rec.Body).Decode(&response))
		assert.Equal(t, "invalid characterId", response["message"])
	})

	t.Run("Fail - Invalid Body", func(t *testing.T) {
		handler := NewShopHandler(new(mocks.MockShopUsecase))

		req := httptest.NewRequest("POST", "/api/shop/buy/1", bytes.NewReader([]byte("not json")))
		req = req.WithContext(middleware.WithIdentity(req.Context(), "alice1"))
		req = mux.SetURLVars(req, map[string]string{"characterId": "1"})
		rec := httptest.NewRecorder()

		handler.BuyItems(rec, req)

		assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
	})

	t.Run("Fail - Not Enough Money", func(t *testing.T) {
		usecase := new(mocks.MockShopUsecase)
		handler := NewShopHandler(usecase)

		usecase.On("BuyItems", mock.Anything, "alice1", 1, mock.Anything).
			Return(domain.NewError(http.StatusConflict, "not enough money"))

		body, _ := json.Marshal([]domain.BuyOrderLine{{ItemName: "sword", Count: 100}})
		req := httptest.NewRequest("POST", "/api/shop/buy/1", bytes.NewReader(body))
		req = req.WithContext(middleware.WithIdentity(req.Context(), "alice1"))
		req = mux.SetURLVars(req, map[string]string{"characterId": "1"})
		rec := httptest.NewRecorder()

		handler.BuyItems(rec, req)

		assert.Equal(t, http.StatusConflict, rec.Code)
		var response map[string]string
		require.NoError(t, json.NewDecoder(rec.Body).Decode(&response))
		assert.Equal(t, "not enough money", response["message"])
	})
}

func TestSellItemHandler(t *testing.T) {
	logger.AccessLogger = zap.NewNop()

	t.Run("Success", func(t *testing.T) {
		usecase := new(mocks.MockShopUsecase)
		handler := NewShopHandler(usecase)

		usecase.On("SellItem", mock.Anything, "alice1", 1, 5, 2).
			Return(&domain.SellResultResponse{ItemName: "sword", Sold: 2, Money: 10360}, nil)

		req := httptest.NewRequest("DELETE", "/api/shop/sell/1/5/2", nil)
		req = req.WithContext(middleware.WithIdentity(req.Context(), "alice1"))
		req = mux.SetURLVars(req, map[string]string{"characterId": "1", "item": "5", "count": "2"})
		rec := httptest.NewRecorder()

		handler.SellItem(rec, req)

		assert.Equal(t, http.StatusOK, rec.Code)

		var response map[string]interface{}
		require.NoError(t, json.NewDecoder(rec.Body).Decode(&response))
		assert.Equal(t, "sword", response["itemName"])
		assert.Equal(t, float64(2), response["soldCount"])
		assert.Equal(t, float64(10360), response["money"])

		usecase.AssertExpectations(t)
	})

	t.Run("Fail - No Identity", func(t *testing.T) {
		handler := NewShopHandler(new(mocks.MockShopUsecase))

		req := httptest.NewRequest("DELETE", "/api/shop/sell/1/5/2", nil)
		req = mux.SetURLVars(req, map[string]string{"characterId": "1", "item": "5", "count": "2"})
		rec := httptest.NewRecorder()

		handler.SellItem(rec, req)

		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})

	t.Run("Fail - Bad Count", func(t *testing.T) {
		handler := NewShopHandler(new(mocks.MockShopUsecase))

		req := httptest.NewRequest("DELETE", "/api/shop/sell/1/5/many", nil)
		req = req.WithContext(middleware.WithIdentity(req.Context(), "alice1"))
		req = mux.SetURLVars(req, map[string]string{"characterId": "1", "item": "5", "count": "many"})
		rec := httptest.NewRecorder()

		handler.SellItem(rec, req)

		assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
		var response map[string]string
		require.NoError(t, json.NewDecoder(rec.Body).Decode(&response))
		assert.Equal(t, "invalid count", response["message"])
	})

	t.Run("Fail - Item Not In Inventory", func(t *testing.T) {
		usecase := new(mocks.MockShopUsecase)
		handler := NewShopHandler(usecase)

		usecase.On("SellItem", mock.Anything, "alice1", 1, 5, 2).
			Return(nil, domain.NewError(http.StatusConflict, "item is not in the inventory"))

		req := httptest.NewRequest("DELETE", "/api/shop/sell/1/5/2", nil)
		req = req.WithContext(middleware.WithIdentity(req.Context(), "alice1"))
		req = mux.SetURLVars(req, map[string]string{"characterId": "1", "item": "5", "count": "2"})
		rec := httptest.NewRecorder()

		handler.SellItem(rec, req)

		assert.Equal(t, http.StatusConflict, rec.Code)
		var response map[string]string
		require.NoError(t, json.NewDecoder(rec.Body).Decode(&response))
		assert.Equal(t, "item is not in the inventory", response["message"])
	})
}
