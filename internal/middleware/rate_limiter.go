package middleware

import (
	"context"
	"strings"
	"sync"
	"time"

	"expense-bot/internal/errors"
	"expense-bot/internal/handlers"

	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"
	"golang.org/x/time/rate"
)

const (
	defaultRequestsPerSecond = 5
	defaultBurstSize         = 10
	visitorTTL               = 3 * time.Minute
	visitorSweepInterval     = time.Minute
)

// RateLimiterConfig configures the per-IP limiter
type RateLimiterConfig struct {
	RequestsPerSecond int
	Burst             int
	// Skipper bypasses the limiter, e.g. for the Telegram webhook whose
	// traffic comes from a handful of Telegram addresses.
	Skipper echomw.Skipper
}

type visitor struct {
	limiter  *rate.Limiter
	lastSeen time.Time
}

// visitorStore keeps one token bucket per client IP
type visitorStore struct {
	mu       sync.Mutex
	visitors map[string]*visitor
	rps      rate.Limit
	burst    int
	now      func() time.Time
}

func newVisitorStore(rps, burst int) *visitorStore {
	if rps <= 0 {
		rps = defaultRequestsPerSecond
	}
	if burst <= 0 {
		burst = defaultBurstSize
	}
	return &visitorStore{
		visitors: make(map[string]*visitor),
		rps:      rate.Limit(rps),
		burst:    burst,
		now:      time.Now,
	}
}

func (s *visitorStore) get(ip string) *rate.Limiter {
	s.mu.Lock()
	defer s.mu.Unlock()

	v, exists := s.visitors[ip]
	if !exists {
		v = &visitor{limiter: rate.NewLimiter(s.rps, s.burst)}
		s.visitors[ip] = v
	}
	v.lastSeen = s.now()
	return v.limiter
}

// evict drops visitors idle for longer than ttl and returns how many remain
func (s *visitorStore) evict(ttl time.Duration) int {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := s.now()
	for ip, v := range s.visitors {
		if now.Sub(v.lastSeen) > ttl {
			delete(s.visitors, ip)
		}
	}
	return len(s.visitors)
}

func (s *visitorStore) sweep(ctx context.Context) {
	ticker := time.NewTicker(visitorSweepInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			s.evict(visitorTTL)
		}
	}
}

// RateLimiter limits requests per client IP. Idle visitors are evicted until
// ctx is cancelled.
func RateLimiter(ctx context.Context, cfg RateLimiterConfig) echo.MiddlewareFunc {
	store := newVisitorStore(cfg.RequestsPerSecond, cfg.Burst)
	go store.sweep(ctx)

	return rateLimit(store, cfg.Skipper)
}

func rateLimit(store *visitorStore, skipper echomw.Skipper) echo.MiddlewareFunc {
	if skipper == nil {
		skipper = echomw.DefaultSkipper
	}

	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			if skipper(c) {
				return next(c)
			}

			if !store.get(getIP(c)).Allow() {
				return handlers.SendError(c, errors.SystemRateLimitExceeded)
			}

			return next(c)
		}
	}
}

// getIP prefers the first X-Forwarded-For hop, as set by the fronting proxy
func getIP(c echo.Context) string {
	if xff := c.Request().Header.Get(echo.HeaderXForwardedFor); xff != "" {
		first, _, _ := strings.Cut(xff, ",")
		return strings.TrimSpace(first)
	}

	if xri := c.Request().Header.Get(echo.HeaderXRealIP); xri != "" {
		return xri
	}

	return c.RealIP()
}
