package middleware

import (
	"smartfactory-assistant/pkg/log"
)

type Middleware struct {
	l       log.Logger
	limiter *rateLimiter
}

// New creates the middleware set. perMinute <= 0 disables rate limiting.
func New(l log.Logger, perMinute int) Middleware {
	m := Middleware{l: l}
	if perMinute > 0 {
		m.limiter = newRateLimiter(perMinute)
	}
	return m
}
