// Package history records API conversions and prunes old records on a schedule
package history

import (
	"context"
	"fmt"
	"tzconv/internal/models"
	"tzconv/internal/repository"
)

// Entry is one conversion to be recorded
type Entry struct {
	Source    string
	Target    string
	Input     string
	Output    string
	ClientIP  string
	UserAgent string
}

// Recorder stores conversions
type Recorder interface {
	Record(ctx context.Context, e Entry) error
	Enabled() bool
}

// NopRecorder discards every entry; used when history is disabled
type NopRecorder struct{}

func (NopRecorder) Record(context.Context, Entry) error { return nil }
func (NopRecorder) Enabled() bool                       { return false }

// RepositoryRecorder stores entries through a ConversionLogRepository
type RepositoryRecorder struct {
	repo repository.ConversionLogRepository
}

// NewRepositoryRecorder creates a recorder backed by repo
func NewRepositoryRecorder(repo repository.ConversionLogRepository) *RepositoryRecorder {
	return &RepositoryRecorder{repo: repo}
}

// Record implements Recorder
func (r *RepositoryRecorder) Record(ctx context.Context, e Entry) error {
	_, err := r.repo.Create(ctx, &models.CreateConversionLogRequest{
		SourceZone: e.Source,
		TargetZone: e.Target,
		InputTime:  e.Input,
		OutputTime: e.Output,
		ClientIP:   e.ClientIP,
		UserAgent:  e.UserAgent,
	})
	if err != nil {
		return fmt.Errorf("failed to record conversion: %w", err)
	}
	return nil
}

// Enabled implements Recorder
func (r *RepositoryRecorder) Enabled() bool { return true }
