package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"
	"tzconv/internal/config"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func rateLimitConfig(requests, window, burst int) *config.Config {
	cfg := &config.Config{}
	cfg.RateLimit.Requests = requests
	cfg.RateLimit.Window = window
	cfg.RateLimit.Burst = burst
	return cfg
}

func TestRateLimiter(t *testing.T) {
	gin.SetMode(gin.TestMode)

	tests := []struct {
		name          string
		config        *config.Config
		expectedCodes []int
		timeBetween   time.Duration
		clientIP      string
	}{
		{
			name:          "Normal usage - under limit",
			config:        rateLimitConfig(10, 1, 10),
			expectedCodes: []int{200, 200, 200},
			timeBetween:   10 * time.Millisecond,
			clientIP:      "192.168.1.1",
		},
		{
			name:          "At rate limit",
			config:        rateLimitConfig(2, 1, 2),
			expectedCodes: []int{200, 200},
			timeBetween:   10 * time.Millisecond,
			clientIP:      "192.168.1.2",
		},
		{
			name:          "Exceeds rate limit",
			config:        rateLimitConfig(2, 1, 2),
			expectedCodes: []int{200, 200, 429},
			timeBetween:   10 * time.Millisecond,
			clientIP:      "192.168.1.3",
		},
		{
			name:          "Burst defaults to requests",
			config:        rateLimitConfig(1, 60, 0),
			expectedCodes: []int{200, 429},
			clientIP:      "192.168.1.4",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			limiter := NewRateLimiter(tt.config)
			defer limiter.Stop()

			router := gin.New()
			router.Use(limiter.Middleware())
			router.GET("/test", func(c *gin.Context) {
				c.Status(http.StatusOK)
			})

			for i, want := range tt.expectedCodes {
				req := httptest.NewRequest(http.MethodGet, "/test", nil)
				req.Header.Set("X-Forwarded-For", tt.clientIP)
				w := httptest.NewRecorder()
				router.ServeHTTP(w, req)

				assert.Equal(t, want, w.Code, "request %d", i+1)
				if want == http.StatusTooManyRequests {
					assert.NotEmpty(t, w.Header().Get("Retry-After"))
					assert.Equal(t, "0", w.Header().Get("X-RateLimit-Remaining"))
				} else {
					assert.NotEmpty(t, w.Header().Get("X-RateLimit-Limit"))
				}

				time.Sleep(tt.timeBetween)
			}
		})
	}
}

func TestRateLimiter_SeparateClients(t *testing.T) {
	gin.SetMode(gin.TestMode)

	limiter := NewRateLimiter(rateLimitConfig(1, 60, 1))
	defer limiter.Stop()

	router := gin.New()
	router.Use(limiter.Middleware())
	router.GET("/test", func(c *gin.Context) {
		c.Status(http.StatusOK)
	})

	for _, ip := range []string{"10.0.0.1", "10.0.0.2"} {
		req := httptest.NewRequest(http.MethodGet, "/test", nil)
		req.Header.Set("X-Forwarded-For", ip)
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)
		assert.Equal(t, http.StatusOK, w.Code, ip)
	}
}

func TestRateLimiter_SkipsSwagger(t *testing.T) {
	gin.SetMode(gin.TestMode)

	limiter := NewRateLimiter(rateLimitConfig(1, 60, 1))
	defer limiter.Stop()

	router := gin.New()
	router.Use(limiter.Middleware())
	router.GET("/swagger/*any", func(c *gin.Context) {
		c.Status(http.StatusOK)
	})

	for i := 0; i < 3; i++ {
		w := httptest.NewRecorder()
		router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/swagger/index.html", nil))
		assert.Equal(t, http.StatusOK, w.Code)
	}
}

func TestRateLimiterCleanup(t *testing.T) {
	limiter := newRateLimiter(rateLimitConfig(10, 1, 10), 100*time.Millisecond)
	defer limiter.Stop()

	ips := []string{"192.168.1.1", "192.168.1.2", "192.168.1.3"}
	for _, ip := range ips {
		limiter.getLimiter(ip)
	}
	assert.Equal(t, len(ips), limiter.size(), "Expected limiters to be created")

	assert.Eventually(t, func() bool {
		return limiter.size() == 0
	}, time.Second, 20*time.Millisecond, "Expected limiters to be cleaned up")
}
