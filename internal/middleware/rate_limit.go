package middleware

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/hashicorp/golang-lru/v2/expirable"
	"golang.org/x/time/rate"

	"a2a-orchestrator/pkg/response"
)

// RateLimitConfig tunes the per-client token bucket.
type RateLimitConfig struct {
	RequestsPerSecond float64
	Burst             int
	// ClientTTL is how long an idle client keeps its bucket.
	ClientTTL time.Duration
	// MaxClients bounds the number of tracked buckets.
	MaxClients int
}

func (c RateLimitConfig) withDefaults() RateLimitConfig {
	if c.RequestsPerSecond <= 0 {
		c.RequestsPerSecond = 5
	}
	if c.Burst <= 0 {
		c.Burst = 10
	}
	if c.ClientTTL <= 0 {
		c.ClientTTL = 10 * time.Minute
	}
	if c.MaxClients <= 0 {
		c.MaxClients = 10000
	}
	return c
}

// rateLimiter keeps one token bucket per client key in a bounded,
// expiring cache so idle clients do not leak memory.
type rateLimiter struct {
	cfg     RateLimitConfig
	buckets *expirable.LRU[string, *rate.Limiter]
}

func newRateLimiter(cfg RateLimitConfig) *rateLimiter {
	cfg = cfg.withDefaults()
	return &rateLimiter{
		cfg:     cfg,
		buckets: expirable.NewLRU[string, *rate.Limiter](cfg.MaxClients, nil, cfg.ClientTTL),
	}
}

func (rl *rateLimiter) allow(key string) bool {
	limiter, ok := rl.buckets.Get(key)
	if !ok {
		limiter = rate.NewLimiter(rate.Limit(rl.cfg.RequestsPerSecond), rl.cfg.Burst)
		rl.buckets.Add(key, limiter)
	}
	return limiter.Allow()
}

// RateLimit throttles requests per client. The key is the session id
// when the body carries one, falling back to the client IP, so one
// noisy conversation cannot starve the rest.
func (mw Middleware) RateLimit() gin.HandlerFunc {
	return func(c *gin.Context) {
		key := c.GetHeader("X-Session-ID")
		if key == "" {
			key = c.ClientIP()
		}

		if !mw.limiter.allow(key) {
			mw.l.Warnf(c.Request.Context(), "rate limit exceeded for %s", key)
			response.TooManyRequests(c)
			c.Abort()
			return
		}

		c.Next()
	}
}
