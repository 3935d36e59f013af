package get_customer_bookings

import (
	"context"

	"github.com/google/uuid"

	"github.com/homeshine/HSB-BookingService/internal/service/bookings/models"
)

type BookingService interface {
	GetCustomerBookings(ctx context.Context, customerID uuid.UUID) (*models.BookingListResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
