package middleware

import (
	"fmt"
	"net/http"
	"strings"
	"sync"
	"time"
	"tzconv/internal/config"
	"tzconv/internal/models"

	"github.com/gin-gonic/gin"
	"golang.org/x/time/rate"
)

// RateLimiter implements per-client rate limiting using token buckets
type RateLimiter struct {
	limiters map[string]*rate.Limiter
	mu       sync.RWMutex
	rate     rate.Limit
	burst    int
	cleanup  time.Duration
	window   int // Store window size for header calculations
	requests int // Store total requests for header calculations
	stop     chan struct{}
	stopOnce sync.Once
}

// NewRateLimiter creates a new rate limiter middleware
func NewRateLimiter(cfg *config.Config) *RateLimiter {
	return newRateLimiter(cfg, time.Hour)
}

func newRateLimiter(cfg *config.Config, cleanup time.Duration) *RateLimiter {
	requests := cfg.RateLimit.Requests
	if requests <= 0 {
		requests = 1
	}
	window := cfg.RateLimit.Window
	if window <= 0 {
		window = 1
	}
	burst := cfg.RateLimit.Burst
	if burst <= 0 {
		burst = requests
	}

	limiter := &RateLimiter{
		limiters: make(map[string]*rate.Limiter),
		rate:     rate.Every(time.Duration(window) * time.Second / time.Duration(requests)),
		burst:    burst,
		cleanup:  cleanup,
		window:   window,
		requests: requests,
		stop:     make(chan struct{}),
	}

	go limiter.cleanupRoutine()

	return limiter
}

// Stop ends the cleanup routine
func (rl *RateLimiter) Stop() {
	rl.stopOnce.Do(func() { close(rl.stop) })
}

// getLimiter returns a rate limiter for the given key
func (rl *RateLimiter) getLimiter(key string) *rate.Limiter {
	rl.mu.RLock()
	limiter, exists := rl.limiters[key]
	rl.mu.RUnlock()

	if exists {
		return limiter
	}

	rl.mu.Lock()
	defer rl.mu.Unlock()

	// Double check after acquiring write lock
	if limiter, exists = rl.limiters[key]; exists {
		return limiter
	}

	limiter = rate.NewLimiter(rl.rate, rl.burst)
	rl.limiters[key] = limiter
	return limiter
}

// size returns the number of tracked clients
func (rl *RateLimiter) size() int {
	rl.mu.RLock()
	defer rl.mu.RUnlock()
	return len(rl.limiters)
}

// cleanupRoutine periodically drops all limiters so idle clients don't accumulate
func (rl *RateLimiter) cleanupRoutine() {
	ticker := time.NewTicker(rl.cleanup)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			rl.mu.Lock()
			rl.limiters = make(map[string]*rate.Limiter)
			rl.mu.Unlock()
		case <-rl.stop:
			return
		}
	}
}

// Middleware returns a Gin middleware function that implements rate limiting
func (rl *RateLimiter) Middleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		// Skip rate limiting for Swagger documentation
		if strings.HasPrefix(c.Request.URL.Path, "/swagger/") {
			c.Next()
			return
		}

		limiter := rl.getLimiter(c.ClientIP())

		now := time.Now()
		r := limiter.ReserveN(now, 1)
		if !r.OK() || r.DelayFrom(now) > 0 {
			retry := time.Duration(rl.window) * time.Second
			if r.OK() {
				retry = r.DelayFrom(now)
				r.CancelAt(now)
			}
			seconds := int(retry.Round(time.Second) / time.Second)
			if seconds < 1 {
				seconds = 1
			}

			c.Header("X-RateLimit-Limit", fmt.Sprintf("%d", rl.requests))
			c.Header("X-RateLimit-Remaining", "0")
			c.Header("X-RateLimit-Reset", fmt.Sprintf("%d", now.Add(retry).Unix()))
			c.Header("Retry-After", fmt.Sprintf("%d", seconds))
			c.AbortWithStatusJSON(http.StatusTooManyRequests, models.ErrorResponse{Error: "rate limit exceeded"})
			return
		}

		remaining := int(limiter.TokensAt(now))
		if remaining < 0 {
			remaining = 0
		}
		if remaining > rl.requests {
			remaining = rl.requests
		}

		c.Header("X-RateLimit-Limit", fmt.Sprintf("%d", rl.requests))
		c.Header("X-RateLimit-Remaining", fmt.Sprintf("%d", remaining))
		c.Header("X-RateLimit-Reset", fmt.Sprintf("%d", now.Add(time.Duration(rl.window)*time.Second).Unix()))

		c.Next()
	}
}
