// Package database opens the conversion history store and keeps its schema current
package database

import (
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"tzconv/internal/config"

	"github.com/golang-migrate/migrate/v4"
	"github.com/golang-migrate/migrate/v4/database/postgres"
	_ "github.com/golang-migrate/migrate/v4/source/file"
	_ "github.com/lib/pq"
)

// DSN returns the lib/pq key/value connection string for cfg
func DSN(cfg config.DatabaseConfig) string {
	return fmt.Sprintf("host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		cfg.Host, cfg.Port, cfg.User, cfg.Password, cfg.DBName, cfg.SSLMode)
}

// Connect opens a lib/pq connection pool for cfg
func Connect(cfg config.DatabaseConfig) (*sql.DB, error) {
	return sql.Open("postgres", DSN(cfg))
}

// SourceURL resolves the migrations directory into a file:// source URL
func SourceURL(migrationsPath string) (string, error) {
	abs, err := filepath.Abs(migrationsPath)
	if err != nil {
		return "", fmt.Errorf("failed to resolve migrations path: %w", err)
	}
	if info, err := os.Stat(abs); err != nil || !info.IsDir() {
		return "", fmt.Errorf("migrations directory does not exist: %s", abs)
	}
	return "file://" + filepath.ToSlash(abs), nil
}

// Migrate applies all pending migrations over db
func Migrate(db *sql.DB, migrationsPath string) error {
	source, err := SourceURL(migrationsPath)
	if err != nil {
		return err
	}

	driver, err := postgres.WithInstance(db, &postgres.Config{})
	if err != nil {
		return fmt.Errorf("failed to create migration driver: %w", err)
	}

	m, err := migrate.NewWithDatabaseInstance(source, "postgres", driver)
	if err != nil {
		return fmt.Errorf("failed to create migration instance: %w", err)
	}

	if err := m.Up(); err != nil && !errors.Is(err, migrate.ErrNoChange) {
		return fmt.Errorf("failed to run migrations: %w", err)
	}
	return nil
}

// SetupDatabase connects, verifies the connection and migrates the schema
func SetupDatabase(cfg config.DatabaseConfig) (*sql.DB, error) {
	db, err := Connect(cfg)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	if err := Migrate(db, cfg.MigrationsPath); err != nil {
		db.Close()
		return nil, err
	}

	return db, nil
}
