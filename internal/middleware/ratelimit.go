package middleware

import (
	"net"
	"net/http"
	"strconv"
	"sync"
	"time"

	"github.com/blue-screen-of-app/internal/httputil"
)

// RateLimiter implements per-client fixed window rate limiting.
type RateLimiter struct {
	mu          sync.Mutex
	counters    map[string]*window
	max         int
	period      time.Duration
	lastCleanup time.Time
}

type window struct {
	count    int
	resetAt  time.Time
	lastSeen time.Time
}

const (
	cleanupInterval    = 5 * time.Minute
	expiredWindowGrace = 10 * time.Minute
)

// NewRateLimiter creates an in-memory limiter allowing max requests per period.
func NewRateLimiter(max int, period time.Duration) *RateLimiter {
	if max <= 0 {
		max = 100
	}
	if period <= 0 {
		period = 15 * time.Minute
	}
	return &RateLimiter{
		counters:    make(map[string]*window),
		max:         max,
		period:      period,
		lastCleanup: time.Now(),
	}
}

// Allow checks if the client is within its rate limit.
// Returns (allowed, remaining, resetAt).
func (rl *RateLimiter) Allow(key string) (bool, int, time.Time) {
	rl.mu.Lock()
	defer rl.mu.Unlock()

	now := time.Now()
	defer rl.cleanupLocked(now)

	w, exists := rl.counters[key]
	if !exists || now.After(w.resetAt) {
		resetAt := now.Add(rl.period)
		rl.counters[key] = &window{count: 1, resetAt: resetAt, lastSeen: now}
		return true, rl.max - 1, resetAt
	}

	w.lastSeen = now
	if w.count >= rl.max {
		return false, 0, w.resetAt
	}

	w.count++
	return true, rl.max - w.count, w.resetAt
}

// RateLimit returns middleware that enforces per-client rate limits.
func RateLimit(rl *RateLimiter) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			allowed, remaining, resetAt := rl.Allow(clientKey(r))

			w.Header().Set("X-RateLimit-Limit", strconv.Itoa(rl.max))
			w.Header().Set("X-RateLimit-Remaining", strconv.Itoa(remaining))
			w.Header().Set("X-RateLimit-Reset", strconv.FormatInt(resetAt.Unix(), 10))

			if !allowed {
				w.Header().Set("Retry-After", strconv.Itoa(int(time.Until(resetAt).Seconds())+1))
				httputil.RespondError(w, http.StatusTooManyRequests, "rate_limited", "Too many requests, please try again later")
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}

func (rl *RateLimiter) cleanupLocked(now time.Time) {
	if now.Sub(rl.lastCleanup) < cleanupInterval {
		return
	}

	for key, w := range rl.counters {
		if now.After(w.resetAt.Add(expiredWindowGrace)) {
			delete(rl.counters, key)
		}
	}

	rl.lastCleanup = now
}

// clientKey identifies the caller by IP. RemoteAddr is expected to have been
// rewritten by chi's RealIP when running behind a proxy.
func clientKey(r *http.Request) string {
	host := r.RemoteAddr
	if parsedHost, _, err := net.SplitHostPort(r.RemoteAddr); err == nil {
		host = parsedHost
	}
	if host == "" {
		host = "unknown"
	}
	return host
}
