package middleware

import (
	"net"
	"net/http"
	"strconv"
	"sync"
	"time"

	"go.uber.org/zap"

	"lyricsapi/internal/lib/logger/utils"
	"lyricsapi/internal/lib/response"
)

const RateLimitMessage = "Too many requests from this IP, please try again later."

type windowCounter struct {
	start time.Time
	count int
}

// RateLimiter is a fixed-window counter per client key. A client's window
// opens on its first request and resets once the window has elapsed.
type RateLimiter struct {
	window time.Duration
	limit  int
	now    func() time.Time

	mu        sync.Mutex
	clients   map[string]*windowCounter
	lastSweep time.Time
}

func NewRateLimiter(window time.Duration, limit int) *RateLimiter {
	return &RateLimiter{
		window:  window,
		limit:   limit,
		now:     time.Now,
		clients: make(map[string]*windowCounter),
	}
}

// Allow counts one request for key and reports whether it is within the
// limit, how many requests remain and when the window resets.
func (rl *RateLimiter) Allow(key string) (bool, int, time.Time) {
	now := rl.now()

	rl.mu.Lock()
	defer rl.mu.Unlock()

	if now.Sub(rl.lastSweep) >= rl.window {
		rl.sweep(now)
	}

	c, ok := rl.clients[key]
	if !ok || now.Sub(c.start) >= rl.window {
		c = &windowCounter{start: now}
		rl.clients[key] = c
	}
	c.count++

	remaining := rl.limit - c.count
	if remaining < 0 {
		remaining = 0
	}
	return c.count <= rl.limit, remaining, c.start.Add(rl.window)
}

// sweep drops counters whose window has closed. Callers hold rl.mu.
func (rl *RateLimiter) sweep(now time.Time) {
	for key, c := range rl.clients {
		if now.Sub(c.start) >= rl.window {
			delete(rl.clients, key)
		}
	}
	rl.lastSweep = now
}

// RateLimit rejects requests over the limiter's cap with 429 before they
// reach any handler. Clients are keyed by remote IP.
func RateLimit(limiter *RateLimiter) Middleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if limiter == nil {
				next.ServeHTTP(w, r)
				return
			}

			ip := clientIP(r)
			allowed, remaining, reset := limiter.Allow(ip)

			h := w.Header()
			h.Set("X-RateLimit-Limit", strconv.Itoa(limiter.limit))
			h.Set("X-RateLimit-Remaining", strconv.Itoa(remaining))
			h.Set("X-RateLimit-Reset", strconv.FormatInt(reset.Unix(), 10))

			if !allowed {
				retryAfter := int(reset.Sub(limiter.now()).Seconds())
				if retryAfter < 1 {
					retryAfter = 1
				}
				h.Set("Retry-After", strconv.Itoa(retryAfter))
				utils.Logger.Warn("rate limit exceeded", zap.String("ip", ip), zap.String("path", r.URL.Path))
				response.Text(w, http.StatusTooManyRequests, RateLimitMessage)
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}

func clientIP(r *http.Request) string {
	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}
	return host
}
