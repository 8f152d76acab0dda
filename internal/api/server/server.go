// Package server provides the HTTP server implementation
package server

// @title           tzconv API
// @version         1.0
// @description     Converts times of day between a fixed set of timezones.
// @x-skip-model-definitions true
//
// @description.markdown
// All API endpoints are subject to rate limiting:
// * Default rate: 1000 requests per 60 seconds
// * Burst allowance: 50 requests
// * Rate limits are applied per IP address
//
// When rate limit is exceeded:
// * Status code 429 (Too Many Requests) is returned
// * Headers:
//   - X-RateLimit-Limit: Maximum requests allowed
//   - X-RateLimit-Reset: Unix timestamp when the rate limit resets
//   - Retry-After: Seconds to wait before retrying
//
// @host            localhost:8080
// @BasePath        /api/v1
//
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Bearer token authentication
//
// @response 429 {object} models.ErrorResponse "Rate limit exceeded"

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"time"
	"tzconv/internal/api/middleware"
	"tzconv/internal/api/routes"
	"tzconv/internal/config"

	"github.com/sirupsen/logrus"
)

// ShutdownTimeout bounds how long outstanding requests get on shutdown
const ShutdownTimeout = 5 * time.Second

// Server represents the HTTP server
type Server struct {
	cfg     *config.Config
	log     logrus.FieldLogger
	srv     *http.Server
	limiter *middleware.RateLimiter
}

// New creates a new server instance
func New(cfg *config.Config, deps routes.Dependencies) (*Server, error) {
	// Convert port string to int
	port, err := strconv.Atoi(cfg.API.Port)
	if err != nil {
		return nil, fmt.Errorf("invalid port number: %w", err)
	}

	router, limiter := routes.SetupRoutes(cfg, deps)

	return &Server{
		cfg: cfg,
		log: deps.Log,
		srv: &http.Server{
			Addr:              fmt.Sprintf(":%d", port),
			Handler:           router,
			ReadHeaderTimeout: 10 * time.Second,
		},
		limiter: limiter,
	}, nil
}

// Handler returns the server's router
func (s *Server) Handler() http.Handler {
	return s.srv.Handler
}

// Start serves requests until Shutdown is called
func (s *Server) Start() error {
	s.log.WithField("addr", s.srv.Addr).Info("Starting server")
	if err := s.srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return fmt.Errorf("failed to start server: %w", err)
	}
	return nil
}

// Shutdown gives outstanding requests ShutdownTimeout to complete
func (s *Server) Shutdown(ctx context.Context) error {
	defer s.limiter.Stop()

	ctx, cancel := context.WithTimeout(ctx, ShutdownTimeout)
	defer cancel()

	s.log.Info("Shutting down server")
	if err := s.srv.Shutdown(ctx); err != nil {
		return fmt.Errorf("server forced to shutdown: %w", err)
	}
	return nil
}
