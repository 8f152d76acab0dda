package models

import "tzconv/internal/timezone"

// Zone represents a supported timezone and its fixed offset
type Zone struct {
	Name        string  `json:"name" example:"ACWST"`
	Offset      string  `json:"offset" example:"+08:45"`
	OffsetHours float64 `json:"offset_hours" example:"8.75"`
}

// NewZone builds the API representation of z
func NewZone(z timezone.Zone) Zone {
	return Zone{
		Name:        z.String(),
		Offset:      z.Offset().String(),
		OffsetHours: z.Offset().Hours(),
	}
}
