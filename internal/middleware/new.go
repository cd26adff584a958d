package middleware

import (
	"a2a-orchestrator/pkg/log"
)

type Middleware struct {
	l       log.Logger
	limiter *rateLimiter
}

func New(l log.Logger, rateCfg RateLimitConfig) Middleware {
	return Middleware{
		l:       l,
		limiter: newRateLimiter(rateCfg),
	}
}
