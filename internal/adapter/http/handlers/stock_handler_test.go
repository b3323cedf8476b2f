package handlers

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"oficina_xyz/internal/adapter/http/handlers/mocks"
	"oficina_xyz/internal/domain/entities"
	"oficina_xyz/internal/usecase"

	"github.com/gin-gonic/gin"
	"go.uber.org/mock/gomock"
)

func TestStockHandler_MoveStock(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("insufficient stock maps to 409", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIStockUseCase(ctrl)
		h := NewStockHandler(uc)

		uc.EXPECT().MoveStock(gomock.Any(), testTenant, "item-1", entities.MovementSaida, 5, "venda").
			Return(entities.StockItem{}, usecase.ErrInsufficientStock)

		r := gin.New()
		r.POST("/v1/stock/:id/movements", withTenant(testTenant), h.MoveStock)

		req := httptest.NewRequest(http.MethodPost, "/v1/stock/item-1/movements",
			bytes.NewBufferString(`{"direction":"saida","quantity":5,"reason":"venda"}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusConflict {
			t.Fatalf("expected 409, got %d", w.Code)
		}
	})

	t.Run("success returns updated item", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIStockUseCase(ctrl)
		h := NewStockHandler(uc)

		uc.EXPECT().MoveStock(gomock.Any(), testTenant, "item-1", entities.MovementEntrada, 10, "compra").
			Return(entities.StockItem{ID: "item-1", Quantity: 13, MinQuantity: 5}, nil)

		r := gin.New()
		r.POST("/v1/stock/:id/movements", withTenant(testTenant), h.MoveStock)

		req := httptest.NewRequest(http.MethodPost, "/v1/stock/item-1/movements",
			bytes.NewBufferString(`{"direction":"ENTRADA","quantity":10,"reason":"compra"}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d (%s)", w.Code, w.Body.String())
		}
		var resp struct {
			Quantity int  `json:"quantity"`
			LowStock bool `json:"low_stock"`
		}
		if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
			t.Fatalf("invalid body: %v", err)
		}
		if resp.Quantity != 13 || resp.LowStock {
			t.Fatalf("unexpected body: %s", w.Body.String())
		}
	})
}

func TestStockHandler_ListLowStock(t *testing.T) {
	gin.SetMode(gin.TestMode)

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	uc := mocks.NewMockIStockUseCase(ctrl)
	h := NewStockHandler(uc)

	uc.EXPECT().ListLowStock(gomock.Any(), testTenant).Return([]entities.StockItem{
		{ID: "a", Quantity: 1, MinQuantity: 5},
	}, nil)

	r := gin.New()
	r.GET("/v1/stock/low", withTenant(testTenant), h.ListLowStock)

	req := httptest.NewRequest(http.MethodGet, "/v1/stock/low", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	var resp []struct {
		ID       string `json:"id"`
		LowStock bool   `json:"low_stock"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid body: %v", err)
	}
	if len(resp) != 1 || !resp[0].LowStock {
		t.Fatalf("unexpected body: %s", w.Body.String())
	}
}

func TestStockHandler_CreateItem(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("missing required fields", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIStockUseCase(ctrl)
		h := NewStockHandler(uc)

		r := gin.New()
		r.POST("/v1/stock", withTenant(testTenant), h.CreateItem)

		req := httptest.NewRequest(http.MethodPost, "/v1/stock", bytes.NewBufferString(`{"category":"filtros"}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("created", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIStockUseCase(ctrl)
		h := NewStockHandler(uc)

		uc.EXPECT().CreateItem(gomock.Any(), testTenant, gomock.Any()).DoAndReturn(
			func(_ any, _ any, item entities.StockItem) (entities.StockItem, error) {
				item.ID = "item-1"
				return item, nil
			})

		r := gin.New()
		r.POST("/v1/stock", withTenant(testTenant), h.CreateItem)

		req := httptest.NewRequest(http.MethodPost, "/v1/stock",
			bytes.NewBufferString(`{"code":"FLT-01","name":"Filtro de oleo","quantity":10,"min_quantity":3,"sale_price":30}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusCreated {
			t.Fatalf("expected 201, got %d (%s)", w.Code, w.Body.String())
		}
	})
}
