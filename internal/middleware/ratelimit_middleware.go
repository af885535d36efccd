package middleware

import (
	"net/http"
	"sync"

	"github.com/gin-gonic/gin"
	"golang.org/x/time/rate"

	"github.com/savindushenal/menuvibe-api/internal/pkg/response"
)

// limiterPool keeps one token bucket per key. Entries are never evicted;
// key cardinality is bounded by active users/IPs and the buckets are tiny.
type limiterPool struct {
	mu       sync.Mutex
	limiters map[string]*rate.Limiter
	rps      rate.Limit
	burst    int
}

func newLimiterPool(rps float64, burst int) *limiterPool {
	return &limiterPool{
		limiters: make(map[string]*rate.Limiter),
		rps:      rate.Limit(rps),
		burst:    burst,
	}
}

func (p *limiterPool) get(key string) *rate.Limiter {
	p.mu.Lock()
	defer p.mu.Unlock()
	l, ok := p.limiters[key]
	if !ok {
		l = rate.NewLimiter(p.rps, p.burst)
		p.limiters[key] = l
	}
	return l
}

func rateLimit(pool *limiterPool, keyFn func(*gin.Context) string) gin.HandlerFunc {
	return func(c *gin.Context) {
		if !pool.get(keyFn(c)).Allow() {
			response.Error(c, http.StatusTooManyRequests, "RATE_LIMITED", "Too many requests", nil)
			c.Abort()
			return
		}
		c.Next()
	}
}

// RateLimitByUser limits by authenticated user id, falling back to the
// storefront session id for anonymous customers.
func RateLimitByUser(rps float64, burst int) gin.HandlerFunc {
	pool := newLimiterPool(rps, burst)
	return rateLimit(pool, func(c *gin.Context) string {
		if uid := c.GetString("user_id_validated"); uid != "" {
			return uid
		}
		if sid := c.GetHeader("X-Session-ID"); sid != "" {
			return sid
		}
		return c.ClientIP()
	})
}

// RateLimitByIP limits unauthenticated traffic by client address.
func RateLimitByIP(rps float64, burst int) gin.HandlerFunc {
	pool := newLimiterPool(rps, burst)
	return rateLimit(pool, func(c *gin.Context) string {
		return c.ClientIP()
	})
}
