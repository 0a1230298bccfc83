package middleware

import (
	"math"
	"net/http"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"golang.org/x/time/rate"

	"github.com/oksasatya/shopcart-api/pkg/response"
)

type localEntry struct {
	limiter    *rate.Limiter
	lastAccess time.Time
}

// LocalLimiter is an in-process token bucket per key, used when redis is not configured.
// Limits only hold per process.
type LocalLimiter struct {
	rate       rate.Limit
	burst      int
	idle       time.Duration
	retryAfter int

	mu        sync.Mutex
	entries   map[string]*localEntry
	lastSweep time.Time
	now       func() time.Time
}

// NewLocalLimiter allows limit requests per window with a burst of limit.
func NewLocalLimiter(limit int, window time.Duration) *LocalLimiter {
	return &LocalLimiter{
		rate:       rate.Limit(float64(limit) / window.Seconds()),
		burst:      limit,
		idle:       2 * window,
		retryAfter: int(math.Ceil(window.Seconds() / float64(limit))),
		entries:    make(map[string]*localEntry),
		now:        time.Now,
	}
}

func (l *LocalLimiter) allow(key string) bool {
	l.mu.Lock()
	defer l.mu.Unlock()
	now := l.now()
	if now.Sub(l.lastSweep) > l.idle {
		for k, e := range l.entries {
			if now.Sub(e.lastAccess) > l.idle {
				delete(l.entries, k)
			}
		}
		l.lastSweep = now
	}
	e, ok := l.entries[key]
	if !ok {
		e = &localEntry{limiter: rate.NewLimiter(l.rate, l.burst)}
		l.entries[key] = e
	}
	e.lastAccess = now
	return e.limiter.AllowN(now, 1)
}

// Len reports how many keys are tracked.
func (l *LocalLimiter) Len() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return len(l.entries)
}

// LocalRateLimit applies l per key. A nil limiter disables it.
func LocalRateLimit(l *LocalLimiter, keyFn KeyFunc, allow AllowFunc) gin.HandlerFunc {
	if l == nil || keyFn == nil {
		return func(c *gin.Context) { c.Next() }
	}
	retryAfter := strconv.Itoa(l.retryAfter)
	return func(c *gin.Context) {
		if (allow != nil && allow(c)) || strings.EqualFold(c.Request.Method, http.MethodOptions) {
			c.Next()
			return
		}
		if !l.allow(keyFn(c)) {
			c.Header("Retry-After", retryAfter)
			response.Error(c, http.StatusTooManyRequests, "rate limit exceeded")
			return
		}
		c.Next()
	}
}

// Limit returns the redis-backed limiter when rdb is set and an in-process one otherwise.
func Limit(rdb *redis.Client, limit int, window time.Duration, keyFn KeyFunc, allow AllowFunc) gin.HandlerFunc {
	if rdb != nil {
		return RateLimit(rdb, limit, window, keyFn, allow)
	}
	if limit <= 0 || window <= 0 {
		return func(c *gin.Context) { c.Next() }
	}
	return LocalRateLimit(NewLocalLimiter(limit, window), keyFn, allow)
}
