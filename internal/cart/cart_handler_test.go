package cart_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"github.com/savindushenal/menuvibe-api/internal/cart"
	mock "github.com/savindushenal/menuvibe-api/internal/mock/cart"
)

func setupCartRouter(svc cart.Service) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	cart.RegisterRoutes(r.Group("/api/v1"), cart.NewHandler(svc))
	return r
}

func TestCartHandler_Detail(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc := mock.NewMockService(ctrl)
	router := setupCartRouter(svc)
	restaurantID := uuid.New()

	t.Run("success", func(t *testing.T) {
		svc.EXPECT().
			Detail(gomock.Any(), restaurantID, "sess-1").
			Return(cart.CartResponse{
				Lines: []cart.LineResponse{},
				Count: 0,
				Total: decimal.Zero,
			}, nil)

		req := httptest.NewRequest(http.MethodGet, "/api/v1/restaurants/"+restaurantID.String()+"/cart", nil)
		req.Header.Set("X-Session-ID", "sess-1")
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
	})

	t.Run("missing_session_header", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/api/v1/restaurants/"+restaurantID.String()+"/cart", nil)
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("invalid_restaurant_id", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/api/v1/restaurants/not-a-uuid/cart", nil)
		req.Header.Set("X-Session-ID", "sess-1")
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}

func TestCartHandler_AddItem(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc := mock.NewMockService(ctrl)
	router := setupCartRouter(svc)
	restaurantID := uuid.New()
	itemID := uuid.NewString()

	t.Run("success", func(t *testing.T) {
		svc.EXPECT().
			AddItem(gomock.Any(), restaurantID, "sess-1", cart.AddItemRequest{
				ItemID:   itemID,
				Quantity: 2,
			}).
			Return(cart.CartResponse{Count: 2}, nil)

		body, _ := json.Marshal(cart.AddItemRequest{ItemID: itemID, Quantity: 2})
		req := httptest.NewRequest(http.MethodPost, "/api/v1/restaurants/"+restaurantID.String()+"/cart/lines", bytes.NewReader(body))
		req.Header.Set("X-Session-ID", "sess-1")
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusCreated, w.Code)
	})

	t.Run("unavailable_item_conflicts", func(t *testing.T) {
		svc.EXPECT().
			AddItem(gomock.Any(), restaurantID, "sess-1", gomock.Any()).
			Return(cart.CartResponse{}, cart.ErrItemUnavailable)

		body, _ := json.Marshal(cart.AddItemRequest{ItemID: itemID, Quantity: 1})
		req := httptest.NewRequest(http.MethodPost, "/api/v1/restaurants/"+restaurantID.String()+"/cart/lines", bytes.NewReader(body))
		req.Header.Set("X-Session-ID", "sess-1")
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusConflict, w.Code)
	})

	t.Run("malformed_body", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodPost, "/api/v1/restaurants/"+restaurantID.String()+"/cart/lines", bytes.NewReader([]byte("{")))
		req.Header.Set("X-Session-ID", "sess-1")
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}

func TestCartHandler_UpdateQuantity(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc := mock.NewMockService(ctrl)
	router := setupCartRouter(svc)
	restaurantID := uuid.New()
	lineKey := uuid.NewString() + "|Large|extra-cheese"

	svc.EXPECT().
		UpdateQuantity(gomock.Any(), restaurantID, "sess-1", lineKey, cart.UpdateQuantityRequest{Quantity: 4}).
		Return(cart.CartResponse{Count: 4}, nil)

	body, _ := json.Marshal(cart.UpdateQuantityRequest{Quantity: 4})
	req := httptest.NewRequest(http.MethodPatch, "/api/v1/restaurants/"+restaurantID.String()+"/cart/lines/"+lineKey, bytes.NewReader(body))
	req.Header.Set("X-Session-ID", "sess-1")
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
}

func TestCartHandler_Clear(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc := mock.NewMockService(ctrl)
	router := setupCartRouter(svc)
	restaurantID := uuid.New()

	svc.EXPECT().Clear(gomock.Any(), restaurantID, "sess-1").Return(nil)

	req := httptest.NewRequest(http.MethodDelete, "/api/v1/restaurants/"+restaurantID.String()+"/cart", nil)
	req.Header.Set("X-Session-ID", "sess-1")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
}
