package httpapi

import (
	"fmt"
	"net/http"
	"sync"
	"time"

	"github.com/checkball/checkball/internal/usecase"
)

// RateLimiter tracks request counts per client IP in fixed one-minute
// windows. Each route gets its own limiter so a chatty scores widget
// cannot starve the cheaper endpoints.
type RateLimiter struct {
	limit  int
	window time.Duration
	now    func() time.Time

	mu      sync.Mutex
	buckets map[string]*rateBucket
}

type rateBucket struct {
	windowStart time.Time
	count       int
}

func NewRateLimiter(limitPerMinute int) *RateLimiter {
	return &RateLimiter{
		limit:   limitPerMinute,
		window:  time.Minute,
		now:     time.Now,
		buckets: make(map[string]*rateBucket),
	}
}

// Allow consumes one slot for the client and reports whether the request
// may proceed in the current window.
func (l *RateLimiter) Allow(clientID string) bool {
	if l == nil || l.limit <= 0 {
		return true
	}
	if clientID == "" {
		clientID = "unknown"
	}

	now := l.now()

	l.mu.Lock()
	defer l.mu.Unlock()

	bucket, ok := l.buckets[clientID]
	if !ok || now.Sub(bucket.windowStart) >= l.window {
		l.pruneLocked(now)
		l.buckets[clientID] = &rateBucket{windowStart: now, count: 1}
		return true
	}
	if bucket.count >= l.limit {
		return false
	}
	bucket.count++
	return true
}

// pruneLocked drops buckets whose window has lapsed. Called with the
// mutex held, only on the bucket-creation path to keep the hot path flat.
func (l *RateLimiter) pruneLocked(now time.Time) {
	for key, bucket := range l.buckets {
		if now.Sub(bucket.windowStart) >= l.window {
			delete(l.buckets, key)
		}
	}
}

func RateLimit(limiter *RateLimiter, next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ctx, span := startSpan(r.Context(), "httpapi.RateLimit")
		defer span.End()

		clientIP, ok := clientIPFromContext(ctx)
		if !ok {
			clientIP = resolveClientIP(r)
		}

		if !limiter.Allow(clientIP) {
			writeError(ctx, w, fmt.Errorf("%w: try again in a minute", usecase.ErrRateLimited))
			return
		}

		next.ServeHTTP(w, r.WithContext(ctx))
	})
}
