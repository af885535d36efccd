package cart

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

// DefaultTTL bounds how long an untouched session cart survives in redis.
const DefaultTTL = 24 * time.Hour

//go:generate mockgen -source=cart_store.go -destination=../mock/cart/cart_store_mock.go -package=mock
type Store interface {
	Load(ctx context.Context, restaurantID uuid.UUID, sessionID string) (Cart, error)
	Save(ctx context.Context, restaurantID uuid.UUID, sessionID string, c Cart) error
	Clear(ctx context.Context, restaurantID uuid.UUID, sessionID string) error
}

type redisStore struct {
	rdb *redis.Client
	ttl time.Duration
}

func NewRedisStore(rdb *redis.Client, ttl time.Duration) Store {
	if ttl <= 0 {
		ttl = DefaultTTL
	}
	return &redisStore{rdb: rdb, ttl: ttl}
}

func cartKey(restaurantID uuid.UUID, sessionID string) string {
	return fmt.Sprintf("cart:%s:%s", restaurantID, sessionID)
}

func (s *redisStore) Load(ctx context.Context, restaurantID uuid.UUID, sessionID string) (Cart, error) {
	raw, err := s.rdb.Get(ctx, cartKey(restaurantID, sessionID)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return Cart{}, nil
		}
		return Cart{}, fmt.Errorf("load cart: %w", err)
	}

	var c Cart
	if err := json.Unmarshal(raw, &c); err != nil {
		return Cart{}, fmt.Errorf("decode cart: %w", err)
	}
	return c, nil
}

func (s *redisStore) Save(ctx context.Context, restaurantID uuid.UUID, sessionID string, c Cart) error {
	if len(c.Lines) == 0 {
		return s.Clear(ctx, restaurantID, sessionID)
	}

	raw, err := json.Marshal(c)
	if err != nil {
		return fmt.Errorf("encode cart: %w", err)
	}
	if err := s.rdb.Set(ctx, cartKey(restaurantID, sessionID), raw, s.ttl).Err(); err != nil {
		return fmt.Errorf("save cart: %w", err)
	}
	return nil
}

func (s *redisStore) Clear(ctx context.Context, restaurantID uuid.UUID, sessionID string) error {
	if err := s.rdb.Del(ctx, cartKey(restaurantID, sessionID)).Err(); err != nil {
		return fmt.Errorf("clear cart: %w", err)
	}
	return nil
}
