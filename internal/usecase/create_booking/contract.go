package create_booking

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/homeshine/HSB-BookingService/internal/domain"
	"github.com/homeshine/HSB-BookingService/internal/integrations/mailer"
)

// CustomerRepository интерфейс репозитория клиентов
type CustomerRepository interface {
	Upsert(ctx context.Context, customer *domain.Customer) (*domain.Customer, error)
}

// ServiceRepository интерфейс репозитория каталога услуг
type ServiceRepository interface {
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Service, error)
}

// BookingRepository интерфейс репозитория бронирований
type BookingRepository interface {
	Create(ctx context.Context, booking *domain.Booking) (*domain.Booking, error)
}

// MailerClient интерфейс клиента почтового сервиса
type MailerClient interface {
	SendBookingConfirmation(ctx context.Context, req *mailer.SendConfirmationRequest) error
}

// TransactionManager интерфейс для управления транзакциями
type TransactionManager interface {
	DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error
}

// TimeProvider интерфейс для получения текущего времени (для тестирования)
type TimeProvider interface {
	Now() time.Time
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// RealTimeProvider реальный провайдер времени для production
type RealTimeProvider struct{}

// Now возвращает текущее время
func (p *RealTimeProvider) Now() time.Time {
	return time.Now()
}
