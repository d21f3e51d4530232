package middleware

import (
	"calendar-assistant/pkg/log"
)

// Config holds middleware settings.
type Config struct {
	// RequestsPerMin is the sustained per-caller rate; zero disables limiting.
	RequestsPerMin int
}

type Middleware struct {
	l       log.Logger
	limiter *rateLimiter
}

func New(l log.Logger, cfg Config) Middleware {
	mw := Middleware{l: l}
	if cfg.RequestsPerMin > 0 {
		mw.limiter = newRateLimiter(cfg.RequestsPerMin)
	}
	return mw
}
