package domain

import (
	"time"

	"github.com/google/uuid"
)

// Service represents a catalog item, read-only for this service.
// Price is the authoritative amount copied into bookings at creation time.
type Service struct {
	ID              uuid.UUID
	Name            string
	Description     *string
	Price           float64
	DurationMinutes int
	CreatedAt       time.Time
	UpdatedAt       time.Time
}
