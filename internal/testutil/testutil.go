// Package testutil provides utilities for testing
package testutil

import (
	"context"
	"database/sql"
	"testing"
	"time"
	"tzconv/internal/auth"
	"tzconv/internal/config"
	"tzconv/internal/models"
	"tzconv/internal/repository"
	"tzconv/internal/repository/postgres"
	"tzconv/internal/testutil/db"
	"tzconv/internal/validation"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
	"github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/require"
)

// LoadTestConfig loads the test configuration
func LoadTestConfig(t *testing.T) *config.Config {
	t.Helper()
	return db.LoadTestConfig(t)
}

// NewTestLogger returns a logger whose entries are captured by the returned hook
func NewTestLogger() (*logrus.Logger, *test.Hook) {
	return test.NewNullLogger()
}

// TestContext holds common test dependencies
type TestContext struct {
	T                 *testing.T
	DB                *sql.DB
	Config            *config.Config
	ConversionLogRepo repository.ConversionLogRepository
	AuthService       *auth.Service
}

// NewTestContext creates a new test context backed by the test database
func NewTestContext(t *testing.T) *TestContext {
	t.Helper()

	// Set Gin to test mode
	gin.SetMode(gin.TestMode)
	validation.Initialize()

	cfg := LoadTestConfig(t)
	testDB := db.SetupTestDB(t, &cfg.Database)

	tc := &TestContext{
		T:                 t,
		DB:                testDB,
		Config:            cfg,
		ConversionLogRepo: postgres.NewConversionLogRepository(testDB),
		AuthService:       auth.NewService(cfg.Auth.JWTSecret),
	}

	t.Cleanup(func() {
		tc.cleanup()
	})

	return tc
}

// cleanup performs necessary cleanup after tests
func (tc *TestContext) cleanup() {
	if tc.DB != nil {
		if err := db.CleanupTestDB(tc.DB); err != nil {
			tc.T.Errorf("Failed to cleanup test database: %v", err)
		}
		tc.DB.Close()
	}
}

// CreateTestConversionLog records a conversion and returns it
func (tc *TestContext) CreateTestConversionLog(source, target, input, output string) *models.ConversionLog {
	tc.T.Helper()

	log, err := tc.ConversionLogRepo.Create(context.Background(), &models.CreateConversionLogRequest{
		SourceZone: source,
		TargetZone: target,
		InputTime:  input,
		OutputTime: output,
		ClientIP:   "127.0.0.1",
		UserAgent:  "test-agent",
	})
	require.NoError(tc.T, err, "Failed to create test conversion log")
	return log
}

// AgeConversionLog moves a record's creation time into the past
func (tc *TestContext) AgeConversionLog(log *models.ConversionLog, age time.Duration) {
	tc.T.Helper()
	_, err := tc.DB.Exec(`UPDATE conversion_logs SET created_at = $1 WHERE id = $2`, time.Now().UTC().Add(-age), log.ID)
	require.NoError(tc.T, err, "Failed to age conversion log")
}

// GetTestJWT generates a JWT token for testing
func (tc *TestContext) GetTestJWT(isAdmin bool) string {
	tc.T.Helper()
	token, err := tc.AuthService.GenerateToken("test-operator", isAdmin, time.Hour)
	require.NoError(tc.T, err, "Failed to generate test JWT")
	return token
}
