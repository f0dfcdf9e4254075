package middlewares

import (
	"net/http"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
	"golang.org/x/time/rate"
)

type visitor struct {
	limiter  *rate.Limiter
	lastSeen time.Time
}

type ipLimiter struct {
	mu        sync.Mutex
	visitors  map[string]*visitor
	limit     rate.Limit
	burst     int
	ttl       time.Duration
	lastSweep time.Time
}

func (l *ipLimiter) get(ip string) *rate.Limiter {
	l.mu.Lock()
	defer l.mu.Unlock()

	now := time.Now()
	l.sweep(now)

	v, ok := l.visitors[ip]
	if !ok {
		v = &visitor{limiter: rate.NewLimiter(l.limit, l.burst)}
		l.visitors[ip] = v
	}
	v.lastSeen = now
	return v.limiter
}

// sweep drops clients idle longer than the ttl so the map stays bounded by
// the number of recently active IPs. Caller holds the lock.
func (l *ipLimiter) sweep(now time.Time) {
	if now.Sub(l.lastSweep) < l.ttl {
		return
	}
	for ip, v := range l.visitors {
		if now.Sub(v.lastSeen) > l.ttl {
			delete(l.visitors, ip)
		}
	}
	l.lastSweep = now
}

// RateLimit allows maxRequests per client IP over the given window, with a
// burst of the full window quota. An evicted client comes back with a fresh
// bucket, which only ever errs in the client's favor.
func RateLimit(maxRequests int, window time.Duration) gin.HandlerFunc {
	l := &ipLimiter{
		visitors:  make(map[string]*visitor),
		limit:     rate.Limit(float64(maxRequests) / window.Seconds()),
		burst:     maxRequests,
		ttl:       window,
		lastSweep: time.Now(),
	}

	return func(c *gin.Context) {
		if !l.get(c.ClientIP()).Allow() {
			c.AbortWithStatusJSON(http.StatusTooManyRequests, gin.H{"error": "Rate limit exceeded"})
			return
		}
		c.Next()
	}
}
