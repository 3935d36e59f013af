package submit_booking

import (
	"context"

	createBooking "github.com/homeshine/HSB-BookingService/internal/usecase/create_booking"
)

// BookingCreator интерфейс серверной транзакции создания бронирования
type BookingCreator interface {
	Execute(ctx context.Context, req *createBooking.Request) (*createBooking.Response, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
