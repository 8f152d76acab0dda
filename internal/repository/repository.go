// Package repository defines the storage contracts for conversion history
package repository

import (
	"context"
	"database/sql"
)

// Repository represents the base repository interface
type Repository interface {
	// Ping checks that the backing store is reachable
	Ping(ctx context.Context) error
	DB() *sql.DB
}

// BaseRepository provides common functionality for all repositories
type BaseRepository struct {
	db *sql.DB
}

// NewBaseRepository creates a new base repository
func NewBaseRepository(db *sql.DB) BaseRepository {
	return BaseRepository{db: db}
}

// DB returns the database connection
func (r *BaseRepository) DB() *sql.DB {
	return r.db
}

// Ping implements the Repository interface
func (r *BaseRepository) Ping(ctx context.Context) error {
	return r.db.PingContext(ctx)
}
