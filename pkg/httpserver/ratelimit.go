package httpserver

import (
	"log/slog"
	"math"
	"net/http"
	"strconv"
	"sync"
	"time"
)

// Buckets idle for longer than this are dropped.
const staleBucketAfter = time.Hour

type bucket struct {
	tokens     int
	lastRefill time.Time
	lastAccess time.Time
}

// limiter is an in-memory token bucket per client key.
type limiter struct {
	capacity int
	interval time.Duration // one token is added per interval

	mu        sync.Mutex
	buckets   map[string]*bucket
	lastSweep time.Time
}

// newLimiter allows perMinute requests per client with bursts up to burst.
// A burst <= 0 defaults to perMinute.
func newLimiter(perMinute, burst int) *limiter {
	if burst <= 0 {
		burst = perMinute
	}
	return &limiter{
		capacity:  burst,
		interval:  max(time.Minute/time.Duration(perMinute), time.Microsecond),
		buckets:   make(map[string]*bucket),
		lastSweep: time.Now(),
	}
}

// take consumes one token for key. It reports whether the request is allowed,
// the tokens left and when the next token is added.
func (l *limiter) take(key string) (bool, int, time.Time) {
	l.mu.Lock()
	defer l.mu.Unlock()

	now := time.Now()
	if now.Sub(l.lastSweep) > staleBucketAfter {
		for k, b := range l.buckets {
			if now.Sub(b.lastAccess) > staleBucketAfter {
				delete(l.buckets, k)
			}
		}
		l.lastSweep = now
	}

	b, ok := l.buckets[key]
	if !ok {
		b = &bucket{tokens: l.capacity, lastRefill: now}
		l.buckets[key] = b
	}
	b.lastAccess = now

	// cap before multiplying so long idle periods cannot overflow
	intervals := min(int64(now.Sub(b.lastRefill)/l.interval), int64(l.capacity))
	if intervals > 0 {
		b.tokens = min(b.tokens+int(intervals), l.capacity)
		b.lastRefill = b.lastRefill.Add(time.Duration(intervals) * l.interval)
		if b.tokens == l.capacity {
			b.lastRefill = now
		}
	}

	resetAt := b.lastRefill.Add(l.interval)
	if b.tokens < 1 {
		return false, 0, resetAt
	}
	b.tokens--
	return true, b.tokens, resetAt
}

func (l *limiter) middleware(log *slog.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ip := ClientIP(r)
			allowed, remaining, resetAt := l.take(ip)

			w.Header().Set("X-RateLimit-Limit", strconv.Itoa(l.capacity))
			w.Header().Set("X-RateLimit-Remaining", strconv.Itoa(remaining))
			w.Header().Set("X-RateLimit-Reset", strconv.FormatInt(resetAt.Unix(), 10))

			if !allowed {
				retryAfter := max(int(math.Ceil(time.Until(resetAt).Seconds())), 1)
				w.Header().Set("Retry-After", strconv.Itoa(retryAfter))
				log.WarnContext(r.Context(), "rate limit exceeded", slog.String("client_ip", ip))
				writeError(w, http.StatusTooManyRequests, "too many requests")
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}

// WithRateLimit limits validation requests per client IP to perMinute, with
// bursts up to burst. A perMinute <= 0 disables the limit.
func WithRateLimit(perMinute, burst int) HandlerOption {
	return func(h *handler) {
		if perMinute <= 0 {
			h.limiter = nil
			return
		}
		h.limiter = newLimiter(perMinute, burst)
	}
}
