package create_booking

import (
	"time"

	"github.com/google/uuid"

	"github.com/homeshine/HSB-BookingService/internal/domain"
	createBooking "github.com/homeshine/HSB-BookingService/internal/usecase/create_booking"
	"github.com/homeshine/HSB-BookingService/pkg/types"
)

// CreateBookingRequest HTTP request model.
// Цена намеренно отсутствует: стоимость всегда берется из каталога на сервере.
type CreateBookingRequest struct {
	ServiceID   string  `json:"serviceId"`
	BookingDate string  `json:"bookingDate"` // "2025-10-15"
	BookingTime string  `json:"bookingTime"` // "10:00"
	Address     string  `json:"address"`
	Name        string  `json:"name"`
	Phone       string  `json:"phone"`
	Notes       *string `json:"notes,omitempty"`
}

// BookingResponse HTTP response model
type BookingResponse struct {
	ID               uuid.UUID `json:"id"`
	CustomerID       uuid.UUID `json:"customerId"`
	ServiceID        uuid.UUID `json:"serviceId"`
	BookingDate      string    `json:"bookingDate"`
	BookingTime      string    `json:"bookingTime"`
	TotalAmount      float64   `json:"totalAmount"`
	Status           string    `json:"status"`
	ServiceName      string    `json:"serviceName"`
	Notes            *string   `json:"notes,omitempty"`
	NotificationSent bool      `json:"notificationSent"`
	CreatedAt        string    `json:"createdAt"`
}

// ToUseCaseRequest конвертирует HTTP запрос в модель use case
func (r *CreateBookingRequest) ToUseCaseRequest() (*createBooking.Request, error) {
	serviceID, err := uuid.Parse(r.ServiceID)
	if err != nil {
		return nil, errInvalidServiceID
	}

	// Парсим дату
	bookingDate, err := time.Parse(domain.DateFormat, r.BookingDate)
	if err != nil {
		return nil, errInvalidDate
	}

	// Парсим время
	bookingTime, err := types.NewTimeStringFromString(r.BookingTime)
	if err != nil {
		return nil, errInvalidTime
	}

	return &createBooking.Request{
		ServiceID: serviceID,
		Date:      bookingDate,
		StartTime: bookingTime,
		Address:   r.Address,
		Name:      r.Name,
		Phone:     r.Phone,
		Notes:     r.Notes,
	}, nil
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *createBooking.Response) *BookingResponse {
	return &BookingResponse{
		ID:               resp.BookingID,
		CustomerID:       resp.CustomerID,
		ServiceID:        resp.ServiceID,
		BookingDate:      resp.BookingDate.Format(domain.DateFormat),
		BookingTime:      resp.StartTime.String(),
		TotalAmount:      resp.TotalAmount,
		Status:           resp.Status,
		ServiceName:      resp.ServiceName,
		Notes:            resp.Notes,
		NotificationSent: resp.NotificationSent,
		CreatedAt:        resp.CreatedAt.Format(time.RFC3339),
	}
}
