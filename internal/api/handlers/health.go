package handlers

import (
	"context"
	"net/http"
	"time"
	"tzconv/internal/models"

	"github.com/gin-gonic/gin"
)

// Pinger reports whether a dependency is reachable
type Pinger interface {
	Ping(ctx context.Context) error
}

// HealthHandler reports service health
type HealthHandler struct {
	history Pinger
}

// NewHealthHandler creates a new HealthHandler. history may be nil when history is disabled.
func NewHealthHandler(history Pinger) *HealthHandler {
	return &HealthHandler{history: history}
}

// Health godoc
// @Summary Health check
// @Description Returns the health status of the API and its dependencies
// @Tags health
// @Produce json
// @Success 200 {object} models.HealthResponse
// @Failure 503 {object} models.ErrorResponse "Service unavailable"
// @Router /health [get]
func (h *HealthHandler) Health(c *gin.Context) {
	resp := models.HealthResponse{
		Status: "healthy",
		Time:   time.Now().UTC(),
	}

	if h.history != nil {
		ctx, cancel := context.WithTimeout(c.Request.Context(), 2*time.Second)
		defer cancel()

		if err := h.history.Ping(ctx); err != nil {
			c.JSON(http.StatusServiceUnavailable, models.ErrorResponse{Error: "database connection failed"})
			return
		}
		resp.History = "enabled"
	}

	c.JSON(http.StatusOK, resp)
}
