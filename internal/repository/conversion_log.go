package repository

import (
	"context"
	"time"
	"tzconv/internal/models"

	"github.com/google/uuid"
)

// ConversionLogRepository defines the interface for conversion history operations
type ConversionLogRepository interface {
	Repository
	Create(ctx context.Context, log *models.CreateConversionLogRequest) (*models.ConversionLog, error)
	GetByID(ctx context.Context, id uuid.UUID) (*models.ConversionLog, error)
	List(ctx context.Context, filter ConversionLogFilter) ([]models.ConversionLog, error)
	CleanupOld(ctx context.Context, olderThan time.Duration) (int64, error)
}

// ConversionLogFilter defines the filter options for listing conversions
type ConversionLogFilter struct {
	SourceZones   []string   // Filter by source zone names
	TargetZones   []string   // Filter by target zone names
	ClientIP      *string    // Filter by client IP
	CreatedBefore *time.Time // Filter by creation time
	CreatedAfter  *time.Time // Filter by creation time
	OrderBy       string     // Field to order by
	OrderDesc     bool       // Order descending
	Limit         *int       // Limit results
	Offset        *int       // Offset results
}

// OrderableColumns lists the columns ConversionLogFilter.OrderBy accepts
var OrderableColumns = map[string]bool{
	"created_at":  true,
	"source_zone": true,
	"target_zone": true,
	"input_time":  true,
}
