package http

import (
	"context"
	"log/slog"
	"net/http"
	"strconv"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
	"golang.org/x/time/rate"

	apperrors "github.com/allisson/jsondocs/internal/errors"
	"github.com/allisson/jsondocs/internal/httputil"
)

const (
	limiterCleanupInterval = 5 * time.Minute
	limiterIdleTTL         = time.Hour
)

// limiterStore keeps one token bucket per key and evicts idle buckets.
type limiterStore struct {
	limiters sync.Map // key -> *limiterEntry
	rps      float64
	burst    int
}

type limiterEntry struct {
	limiter    *rate.Limiter
	mu         sync.Mutex
	lastAccess time.Time
}

// newLimiterStore starts the eviction loop, which stops when ctx is done.
func newLimiterStore(ctx context.Context, rps float64, burst int) *limiterStore {
	s := &limiterStore{rps: rps, burst: burst}
	go s.cleanupStale(ctx, limiterCleanupInterval, limiterIdleTTL)
	return s
}

func (s *limiterStore) get(key string) *rate.Limiter {
	now := time.Now()

	val, _ := s.limiters.LoadOrStore(key, &limiterEntry{
		limiter:    rate.NewLimiter(rate.Limit(s.rps), s.burst),
		lastAccess: now,
	})
	entry := val.(*limiterEntry)

	entry.mu.Lock()
	entry.lastAccess = now
	entry.mu.Unlock()

	return entry.limiter
}

func (s *limiterStore) cleanupStale(ctx context.Context, interval, ttl time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			s.evictIdle(time.Now().Add(-ttl))
		}
	}
}

func (s *limiterStore) evictIdle(threshold time.Time) {
	s.limiters.Range(func(key, value any) bool {
		entry := value.(*limiterEntry)
		entry.mu.Lock()
		idle := entry.lastAccess.Before(threshold)
		entry.mu.Unlock()

		if idle {
			s.limiters.Delete(key)
		}
		return true
	})
}

// allow reports whether the request may proceed; otherwise it writes a 429 with Retry-After.
func (s *limiterStore) allow(c *gin.Context, key, message string, logger *slog.Logger) bool {
	limiter := s.get(key)
	if limiter.Allow() {
		return true
	}

	reservation := limiter.Reserve()
	retryAfter := int(reservation.Delay().Seconds())
	reservation.Cancel()
	if retryAfter < 1 {
		retryAfter = 1
	}

	logger.Debug("rate limit exceeded", slog.String("key", key), slog.Int("retry_after", retryAfter))

	c.Header("Retry-After", strconv.Itoa(retryAfter))
	c.AbortWithStatusJSON(http.StatusTooManyRequests, httputil.ErrorResponse{
		Error:   "rate_limit_exceeded",
		Message: message,
	})
	return false
}

// RateLimitMiddleware limits authenticated requests per user.
// It must run after an authentication middleware.
func RateLimitMiddleware(ctx context.Context, rps float64, burst int, logger *slog.Logger) gin.HandlerFunc {
	store := newLimiterStore(ctx, rps, burst)

	return func(c *gin.Context) {
		principal, ok := GetPrincipal(c.Request.Context())
		if !ok {
			logger.Error("rate limit middleware: no authenticated principal in context")
			httputil.HandleErrorGin(c, apperrors.ErrUnauthorized, logger)
			c.Abort()
			return
		}

		if store.allow(c, principal.User.ID.String(), "Too many requests. Please retry after the specified delay.", logger) {
			c.Next()
		}
	}
}

// ReaderRateLimitMiddleware limits read routes open to anonymous clients. Authenticated
// requests share the per-user bucket key, anonymous ones are keyed by client IP.
func ReaderRateLimitMiddleware(ctx context.Context, rps float64, burst int, logger *slog.Logger) gin.HandlerFunc {
	store := newLimiterStore(ctx, rps, burst)

	return func(c *gin.Context) {
		key := "ip:" + c.ClientIP()
		if principal, ok := GetPrincipal(c.Request.Context()); ok {
			key = principal.User.ID.String()
		}
		if store.allow(c, key, "Too many requests. Please retry after the specified delay.", logger) {
			c.Next()
		}
	}
}

// TokenRateLimitMiddleware limits unauthenticated token requests per client IP.
func TokenRateLimitMiddleware(ctx context.Context, rps float64, burst int, logger *slog.Logger) gin.HandlerFunc {
	store := newLimiterStore(ctx, rps, burst)

	return func(c *gin.Context) {
		if store.allow(c, c.ClientIP(), "Too many token requests from this IP. Please retry after the specified delay.", logger) {
			c.Next()
		}
	}
}
