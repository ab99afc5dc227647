package middleware

import (
	"net/http"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"golang.org/x/time/rate"
)

// ipLimiters hands out one token bucket per client address.
type ipLimiters struct {
	mu      sync.Mutex
	buckets map[string]*rate.Limiter
}

func newIPLimiters() *ipLimiters {
	return &ipLimiters{buckets: make(map[string]*rate.Limiter)}
}

func (l *ipLimiters) bucket(ip string) *rate.Limiter {
	l.mu.Lock()
	defer l.mu.Unlock()
	b, ok := l.buckets[ip]
	if !ok {
		// 60 requests per minute per client. Matching calls fan out to
		// external backends, so the edge stays conservative.
		b = rate.NewLimiter(rate.Every(time.Minute/60), 60)
		l.buckets[ip] = b
	}
	return b
}

// RateLimitMiddleware rejects clients that exceed the per-IP budget.
func RateLimitMiddleware() gin.HandlerFunc {
	limiters := newIPLimiters()
	return func(c *gin.Context) {
		ip := clientIP(c)
		if !limiters.bucket(ip).Allow() {
			zap.L().Warn("Rate limit exceeded", zap.String("ip", ip))
			c.AbortWithStatusJSON(http.StatusTooManyRequests, gin.H{"error": "Rate limit exceeded. Try again later."})
			return
		}
		c.Next()
	}
}
