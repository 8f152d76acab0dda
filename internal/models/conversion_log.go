package models

import (
	"time"

	"github.com/google/uuid"
)

// ConversionLog represents a recorded conversion
type ConversionLog struct {
	ID         uuid.UUID `json:"id" db:"id"`
	SourceZone string    `json:"source_zone" db:"source_zone"`
	TargetZone string    `json:"target_zone" db:"target_zone"`
	InputTime  string    `json:"input_time" db:"input_time"`
	OutputTime string    `json:"output_time" db:"output_time"`
	ClientIP   string    `json:"client_ip" db:"client_ip"`
	UserAgent  string    `json:"user_agent" db:"user_agent"`
	CreatedAt  time.Time `json:"created_at" db:"created_at"`
}

// CreateConversionLogRequest represents the request to record a conversion
type CreateConversionLogRequest struct {
	SourceZone string
	TargetZone string
	InputTime  string
	OutputTime string
	ClientIP   string
	UserAgent  string
}
