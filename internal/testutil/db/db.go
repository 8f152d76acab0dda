// Package db provides database utilities for testing
package db

import (
	"database/sql"
	"fmt"
	"testing"
	"tzconv/internal/config"
	"tzconv/internal/database"

	"github.com/stretchr/testify/require"
)

// CleanupTestDB removes the history schema along with its migration bookkeeping
func CleanupTestDB(db *sql.DB) error {
	if _, err := db.Exec(`DROP TABLE IF EXISTS conversion_logs, schema_migrations CASCADE`); err != nil {
		return fmt.Errorf("failed to drop tables: %w", err)
	}
	return nil
}

// SetupTestDB returns a freshly migrated test database.
// The test is skipped when the database configured in .env.test is unreachable.
func SetupTestDB(t *testing.T, cfg *config.DatabaseConfig) *sql.DB {
	t.Helper()

	db, err := database.Connect(*cfg)
	require.NoError(t, err, "Failed to open test database")

	if err := db.Ping(); err != nil {
		db.Close()
		t.Skipf("test database unavailable: %v", err)
	}

	require.NoError(t, CleanupTestDB(db), "Failed to reset test database")
	require.NoError(t, database.Migrate(db, cfg.MigrationsPath), "Failed to run migrations")

	return db
}
