package handlers_test

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"tzconv/internal/api/handlers"
	"tzconv/internal/models"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
)

type fakePinger struct {
	err error
}

func (p fakePinger) Ping(context.Context) error { return p.err }

func TestHealthHandler_Health(t *testing.T) {
	gin.SetMode(gin.TestMode)

	tests := []struct {
		name        string
		pinger      handlers.Pinger
		wantStatus  int
		wantHistory string
		wantErr     bool
	}{
		{
			name:       "Success_HistoryDisabled",
			pinger:     nil,
			wantStatus: http.StatusOK,
		},
		{
			name:        "Success_HistoryEnabled",
			pinger:      fakePinger{},
			wantStatus:  http.StatusOK,
			wantHistory: "enabled",
		},
		{
			name:       "Error_DatabaseDown",
			pinger:     fakePinger{err: errors.New("connection refused")},
			wantStatus: http.StatusServiceUnavailable,
			wantErr:    true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			handler := handlers.NewHealthHandler(tt.pinger)

			router := gin.New()
			router.GET("/health", handler.Health)

			w := httptest.NewRecorder()
			req, _ := http.NewRequest("GET", "/health", nil)
			router.ServeHTTP(w, req)

			require.Equal(t, tt.wantStatus, w.Code)

			if tt.wantErr {
				var errResp models.ErrorResponse
				err := json.Unmarshal(w.Body.Bytes(), &errResp)
				require.NoError(t, err)
				require.Equal(t, "database connection failed", errResp.Error)
			} else {
				var resp models.HealthResponse
				err := json.Unmarshal(w.Body.Bytes(), &resp)
				require.NoError(t, err)
				require.Equal(t, "healthy", resp.Status)
				require.Equal(t, tt.wantHistory, resp.History)
			}
		})
	}
}
