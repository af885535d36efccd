package middleware

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"

	"github.com/savindushenal/menuvibe-api/internal/pkg/apperror"
	"github.com/savindushenal/menuvibe-api/internal/pkg/response"
)

const idempotencyTTL = 24 * time.Hour

// Idempotency guards mutating endpoints whose success cannot be verified by
// the caller, checkout above all: a retry while the first submission is
// outstanding (or already succeeded) must not create a second order.
// The client sends an Idempotency-Key header; the first request claims the
// key in redis, replays are rejected with 409.
func Idempotency(rdb *redis.Client) gin.HandlerFunc {
	return func(c *gin.Context) {
		key := c.GetHeader("Idempotency-Key")
		if key == "" {
			response.Error(c, http.StatusBadRequest, apperror.CodeInvalidInput, "Idempotency-Key header is required", nil)
			c.Abort()
			return
		}

		claimed, err := rdb.SetNX(c, "idem:"+key, time.Now().Unix(), idempotencyTTL).Result()
		if err != nil {
			// Redis being down must not block checkout entirely; fall
			// through and rely on the client-side submit guard.
			c.Next()
			return
		}
		if !claimed {
			response.Error(c, http.StatusConflict, apperror.CodeConflict, "Duplicate submission", nil)
			c.Abort()
			return
		}

		c.Next()

		// A failed request releases the key so the user can retry with the
		// same one (the cart is left intact on failure).
		if c.Writer.Status() >= http.StatusBadRequest {
			_ = rdb.Del(c, "idem:"+key).Err()
		}
	}
}
