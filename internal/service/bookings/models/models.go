package models

import (
	"time"

	"github.com/google/uuid"

	"github.com/homeshine/HSB-BookingService/internal/domain"
)

// Response модели

// BookingResponse ответ с данными бронирования
type BookingResponse struct {
	ID          uuid.UUID `json:"id"`
	CustomerID  uuid.UUID `json:"customerId"`
	ServiceID   uuid.UUID `json:"serviceId"`
	BookingDate string    `json:"bookingDate"` // "2025-10-15"
	BookingTime string    `json:"bookingTime"` // "10:00"
	TotalAmount float64   `json:"totalAmount"`
	Status      string    `json:"status"`

	// Денормализованные данные
	ServiceName string  `json:"serviceName"`
	Notes       *string `json:"notes,omitempty"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// BookingListResponse ответ со списком бронирований
type BookingListResponse struct {
	Bookings []BookingResponse `json:"bookings"`
}

// Методы конвертации

// FromDomainBooking конвертирует domain модель в DTO
func FromDomainBooking(b *domain.Booking) *BookingResponse {
	if b == nil {
		return nil
	}

	return &BookingResponse{
		ID:          b.ID,
		CustomerID:  b.CustomerID,
		ServiceID:   b.ServiceID,
		BookingDate: b.BookingDate.Format(domain.DateFormat),
		BookingTime: b.BookingTime.String(),
		TotalAmount: b.TotalAmount,
		Status:      string(b.Status),
		ServiceName: b.ServiceName,
		Notes:       b.Notes,
		CreatedAt:   b.CreatedAt,
		UpdatedAt:   b.UpdatedAt,
	}
}

// FromDomainBookingList конвертирует список domain моделей в DTO
func FromDomainBookingList(bookings []*domain.Booking) *BookingListResponse {
	if bookings == nil {
		return &BookingListResponse{
			Bookings: []BookingResponse{},
		}
	}

	resp := &BookingListResponse{
		Bookings: make([]BookingResponse, len(bookings)),
	}

	for i, booking := range bookings {
		if bookingResp := FromDomainBooking(booking); bookingResp != nil {
			resp.Bookings[i] = *bookingResp
		}
	}

	return resp
}
