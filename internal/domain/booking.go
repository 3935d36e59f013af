package domain

import (
	"time"

	"github.com/google/uuid"

	"github.com/homeshine/HSB-BookingService/pkg/types"
)

// BookingStatus represents the status of a booking
type BookingStatus string

// A booking is created directly in the confirmed state; there is no
// pending/cancelled lifecycle in this service.
const (
	StatusConfirmed BookingStatus = "confirmed"
)

// Booking represents a confirmed service booking.
// TotalAmount is always the catalog price resolved at creation time,
// never a client-supplied value.
type Booking struct {
	ID          uuid.UUID
	CustomerID  uuid.UUID
	ServiceID   uuid.UUID
	BookingDate time.Time
	BookingTime types.TimeString
	TotalAmount float64
	Status      BookingStatus

	// Denormalized for history and notifications
	ServiceName string
	Notes       *string

	CreatedAt time.Time
	UpdatedAt time.Time
}

// IsConfirmed returns true if the booking is in the confirmed state
func (b *Booking) IsConfirmed() bool {
	return b.Status == StatusConfirmed
}
