package order_test

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

	ordermock "github.com/savindushenal/menuvibe-api/internal/mock/order"
	"github.com/savindushenal/menuvibe-api/internal/order"
)

func setupOrderRouter(t *testing.T) (*ordermock.MockService, *gin.Engine) {
	ctrl := gomock.NewController(t)
	svc := ordermock.NewMockService(ctrl)

	gin.SetMode(gin.TestMode)
	r := gin.New()
	handler := order.NewHandler(svc)

	// Handlers are exercised directly. Route middleware (session, rate
	// limits, idempotency) has its own tests.
	g := r.Group("/api/v1")
	g.Use(func(c *gin.Context) {
		if sid := c.GetHeader("X-Session-ID"); sid != "" {
			c.Set("session_id", sid)
		}
	})
	g.POST("/restaurants/:restaurantId/orders", handler.Checkout)
	g.GET("/restaurants/:restaurantId/orders", handler.List)
	g.GET("/restaurants/:restaurantId/orders/:orderId", handler.Detail)
	g.PATCH("/restaurants/:restaurantId/orders/:orderId/cancel", handler.Cancel)
	g.PATCH("/dashboard/restaurants/:restaurantId/orders/:orderId/status", handler.UpdateStatus)

	return svc, r
}

func TestOrderHandler_Checkout(t *testing.T) {
	restaurantID := uuid.New()

	t.Run("success", func(t *testing.T) {
		svc, router := setupOrderRouter(t)

		svc.EXPECT().
			Checkout(gomock.Any(), restaurantID, "sess-1", order.CheckoutRequest{CustomerName: "Savi"}).
			Return(order.OrderResponse{
				ID:          uuid.NewString(),
				OrderNumber: "MV-1756400000-AB12",
				Status:      order.StatusPending,
				Total:       decimal.NewFromInt(7620),
			}, nil)

		body, _ := json.Marshal(order.CheckoutRequest{CustomerName: "Savi"})
		req := httptest.NewRequest(http.MethodPost, "/api/v1/restaurants/"+restaurantID.String()+"/orders", bytes.NewReader(body))
		req.Header.Set("X-Session-ID", "sess-1")
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusCreated, w.Code)
		assert.Contains(t, w.Body.String(), "MV-1756400000-AB12")
	})

	t.Run("empty_cart", func(t *testing.T) {
		svc, router := setupOrderRouter(t)

		svc.EXPECT().
			Checkout(gomock.Any(), restaurantID, "sess-1", gomock.Any()).
			Return(order.OrderResponse{}, order.ErrCartEmpty)

		req := httptest.NewRequest(http.MethodPost, "/api/v1/restaurants/"+restaurantID.String()+"/orders", bytes.NewReader([]byte("{}")))
		req.Header.Set("X-Session-ID", "sess-1")
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("invalid_restaurant_id", func(t *testing.T) {
		_, router := setupOrderRouter(t)

		req := httptest.NewRequest(http.MethodPost, "/api/v1/restaurants/nope/orders", bytes.NewReader([]byte("{}")))
		req.Header.Set("X-Session-ID", "sess-1")
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}

func TestOrderHandler_Detail(t *testing.T) {
	restaurantID := uuid.New()
	orderID := uuid.New()

	t.Run("success", func(t *testing.T) {
		svc, router := setupOrderRouter(t)

		svc.EXPECT().
			Detail(gomock.Any(), restaurantID, orderID, "sess-1").
			Return(order.OrderResponse{ID: orderID.String(), Status: order.StatusReady}, nil)

		req := httptest.NewRequest(http.MethodGet, "/api/v1/restaurants/"+restaurantID.String()+"/orders/"+orderID.String(), nil)
		req.Header.Set("X-Session-ID", "sess-1")
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
	})

	t.Run("foreign_order_forbidden", func(t *testing.T) {
		svc, router := setupOrderRouter(t)

		svc.EXPECT().
			Detail(gomock.Any(), restaurantID, orderID, "sess-1").
			Return(order.OrderResponse{}, order.ErrNotOrderOwner)

		req := httptest.NewRequest(http.MethodGet, "/api/v1/restaurants/"+restaurantID.String()+"/orders/"+orderID.String(), nil)
		req.Header.Set("X-Session-ID", "sess-1")
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusForbidden, w.Code)
	})
}

func TestOrderHandler_UpdateStatus(t *testing.T) {
	restaurantID := uuid.New()
	orderID := uuid.New()

	t.Run("success", func(t *testing.T) {
		svc, router := setupOrderRouter(t)

		svc.EXPECT().
			UpdateStatus(gomock.Any(), restaurantID, orderID, order.StatusPreparing).
			Return(order.OrderResponse{ID: orderID.String(), Status: order.StatusPreparing}, nil)

		body, _ := json.Marshal(order.UpdateStatusRequest{Status: order.StatusPreparing})
		req := httptest.NewRequest(http.MethodPatch, "/api/v1/dashboard/restaurants/"+restaurantID.String()+"/orders/"+orderID.String()+"/status", bytes.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
	})

	t.Run("bad_transition_conflicts", func(t *testing.T) {
		svc, router := setupOrderRouter(t)

		svc.EXPECT().
			UpdateStatus(gomock.Any(), restaurantID, orderID, order.StatusCompleted).
			Return(order.OrderResponse{}, order.ErrInvalidStatusTransition)

		body, _ := json.Marshal(order.UpdateStatusRequest{Status: order.StatusCompleted})
		req := httptest.NewRequest(http.MethodPatch, "/api/v1/dashboard/restaurants/"+restaurantID.String()+"/orders/"+orderID.String()+"/status", bytes.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusConflict, w.Code)
	})
}
