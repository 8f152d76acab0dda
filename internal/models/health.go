package models

import "time"

// HealthResponse represents the response from the health check endpoint
type HealthResponse struct {
	Status  string    `json:"status" example:"healthy"`
	History string    `json:"history,omitempty" example:"enabled"`
	Time    time.Time `json:"time" example:"2024-03-20T13:00:00Z"`
}
