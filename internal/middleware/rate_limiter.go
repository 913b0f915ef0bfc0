package middleware

import (
	"net/http"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"

	"github.com/Retrend821/inventory-saas-sub000/internal/apierror"
)

// Fixed-window limiter keyed by client IP. Counters live in process memory,
// which is enough for a single-instance deployment; a shared Redis counter
// would be needed before scaling out.

type limiterWindow struct {
	mu    sync.Mutex
	count int
	until time.Time
}

type ipLimiter struct {
	mu      sync.Mutex
	windows map[string]*limiterWindow
	limit   int
	period  time.Duration
}

func newIPLimiter(limit int, period time.Duration) *ipLimiter {
	l := &ipLimiter{
		windows: make(map[string]*limiterWindow),
		limit:   limit,
		period:  period,
	}
	go l.purgeLoop()
	return l
}

// allow counts one request and reports whether the IP is still under the
// limit, along with when its current window closes.
func (l *ipLimiter) allow(ip string) (bool, time.Time) {
	l.mu.Lock()
	w, ok := l.windows[ip]
	if !ok {
		w = &limiterWindow{}
		l.windows[ip] = w
	}
	l.mu.Unlock()

	w.mu.Lock()
	defer w.mu.Unlock()

	now := time.Now()
	if now.After(w.until) {
		w.count = 0
		w.until = now.Add(l.period)
	}
	w.count++
	return w.count <= l.limit, w.until
}

// purgeLoop drops expired windows so IPs that never return do not
// accumulate forever.
func (l *ipLimiter) purgeLoop() {
	ticker := time.NewTicker(5 * time.Minute)
	defer ticker.Stop()

	for range ticker.C {
		now := time.Now()
		purged := 0

		l.mu.Lock()
		for ip, w := range l.windows {
			w.mu.Lock()
			if now.After(w.until) {
				delete(l.windows, ip)
				purged++
			}
			w.mu.Unlock()
		}
		remaining := len(l.windows)
		l.mu.Unlock()

		if purged > 0 {
			log.Debug().
				Int("purged", purged).
				Int("remaining", remaining).
				Msg("rate limiter windows purged")
		}
	}
}

var loginLimiter = newIPLimiter(20, time.Minute)

// LoginRateLimiter caps login attempts at 20 per minute per IP so bcrypt
// verification cannot be used to hammer the CPU.
func LoginRateLimiter() gin.HandlerFunc {
	return func(c *gin.Context) {
		if ok, _ := loginLimiter.allow(c.ClientIP()); !ok {
			c.AbortWithStatusJSON(http.StatusTooManyRequests, apierror.New("ログイン試行回数が多すぎます。1分後にお試しください。"))
			return
		}
		c.Next()
	}
}

// RateLimiter builds a per-IP limiter for the general API surface.
func RateLimiter(limit int, window time.Duration) gin.HandlerFunc {
	l := newIPLimiter(limit, window)
	return func(c *gin.Context) {
		ok, until := l.allow(c.ClientIP())
		if !ok {
			c.Header("Retry-After", until.Format(time.RFC1123))
			c.AbortWithStatusJSON(http.StatusTooManyRequests, apierror.New("リクエストが多すぎます。しばらくしてからお試しください。"))
			return
		}
		c.Next()
	}
}
