package gateway

import (
	"sync"
	"time"

	"github.com/eleven-am/metric-frames/internal/shared"
	"github.com/labstack/echo/v4"
	"golang.org/x/time/rate"
)

type RateLimiterConfig struct {
	RequestsPerSecond float64
	Burst             int
	CleanupInterval   time.Duration
}

func DefaultRateLimiterConfig() RateLimiterConfig {
	return RateLimiterConfig{
		RequestsPerSecond: 0,
		Burst:             20,
		CleanupInterval:   5 * time.Minute,
	}
}

func (c RateLimiterConfig) Enabled() bool {
	return c.RequestsPerSecond > 0
}

type visitor struct {
	limiter  *rate.Limiter
	lastSeen time.Time
}

// rateLimiterStore keeps one token bucket per client and forgets clients
// idle for longer than the cleanup interval.
type rateLimiterStore struct {
	visitors    map[string]*visitor
	mu          sync.Mutex
	config      RateLimiterConfig
	lastCleanup time.Time
	now         func() time.Time
}

func newRateLimiterStore(cfg RateLimiterConfig) *rateLimiterStore {
	if cfg.Burst < 1 {
		cfg.Burst = 1
	}
	if cfg.CleanupInterval <= 0 {
		cfg.CleanupInterval = 5 * time.Minute
	}
	return &rateLimiterStore{
		visitors: make(map[string]*visitor),
		config:   cfg,
		now:      time.Now,
	}
}

func (s *rateLimiterStore) getLimiter(key string) *rate.Limiter {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := s.now()
	if now.Sub(s.lastCleanup) >= s.config.CleanupInterval {
		s.cleanup(now)
	}

	v, exists := s.visitors[key]
	if !exists {
		v = &visitor{limiter: rate.NewLimiter(rate.Limit(s.config.RequestsPerSecond), s.config.Burst)}
		s.visitors[key] = v
	}
	v.lastSeen = now
	return v.limiter
}

func (s *rateLimiterStore) cleanup(now time.Time) {
	for key, v := range s.visitors {
		if now.Sub(v.lastSeen) >= s.config.CleanupInterval {
			delete(s.visitors, key)
		}
	}
	s.lastCleanup = now
}

func (s *rateLimiterStore) size() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.visitors)
}

// RateLimiter throttles requests per client IP. A zero rate disables it.
func RateLimiter(cfg RateLimiterConfig) echo.MiddlewareFunc {
	if !cfg.Enabled() {
		return func(next echo.HandlerFunc) echo.HandlerFunc {
			return next
		}
	}

	store := newRateLimiterStore(cfg)

	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			if !store.getLimiter(c.RealIP()).Allow() {
				return shared.TooManyRequests("Too many requests")
			}
			return next(c)
		}
	}
}
