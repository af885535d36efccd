package consumer

import (
	"context"
	"encoding/json"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/savindushenal/menuvibe-api/internal/cart"
)

type clearCartPayload struct {
	RestaurantID string `json:"restaurant_id"`
	SessionID    string `json:"session_id"`
	OrderID      string `json:"order_id"`
}

func handleClearCart(ctx context.Context, payload []byte, cartService cart.Service, logger *zap.Logger) error {
	var data clearCartPayload
	if err := json.Unmarshal(payload, &data); err != nil {
		return err
	}

	restaurantID, err := uuid.Parse(data.RestaurantID)
	if err != nil {
		return err
	}

	logger.Info("clearing cart after checkout",
		zap.String("restaurant_id", data.RestaurantID),
		zap.String("session_id", data.SessionID),
		zap.String("order_id", data.OrderID))

	return cartService.Clear(ctx, restaurantID, data.SessionID)
}
