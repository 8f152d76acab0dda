package server_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"tzconv/internal/api/routes"
	"tzconv/internal/api/server"
	"tzconv/internal/config"
	"tzconv/internal/testutil"
	"tzconv/internal/validation"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew(t *testing.T) {
	gin.SetMode(gin.TestMode)
	validation.Initialize()
	log, _ := testutil.NewTestLogger()

	t.Run("InvalidPort", func(t *testing.T) {
		cfg := &config.Config{API: config.APIConfig{Port: "http"}}
		_, err := server.New(cfg, routes.Dependencies{Log: log})
		assert.ErrorContains(t, err, "invalid port number")
	})

	t.Run("ServesRoutes", func(t *testing.T) {
		cfg := &config.Config{API: config.APIConfig{Port: "0"}}
		cfg.RateLimit.Requests = 100
		cfg.RateLimit.Window = 60

		srv, err := server.New(cfg, routes.Dependencies{Log: log})
		require.NoError(t, err)

		w := httptest.NewRecorder()
		req, _ := http.NewRequest("GET", "/api/v1/health", nil)
		srv.Handler().ServeHTTP(w, req)
		assert.Equal(t, http.StatusOK, w.Code)

		// Shutting down a server that never started is a no-op
		require.NoError(t, srv.Shutdown(context.Background()))
	})
}
