package create_booking

import (
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/homeshine/HSB-BookingService/internal/domain"
)

// validateRequest валидирует входные данные запроса
func validateRequest(req *Request) error {
	if req.ServiceID == uuid.Nil {
		return fmt.Errorf("%w: serviceID is required", ErrInvalidInput)
	}

	if req.Date.IsZero() {
		return fmt.Errorf("%w: date is required", ErrInvalidInput)
	}

	if req.StartTime.IsZero() {
		return fmt.Errorf("%w: startTime is required", ErrInvalidInput)
	}

	if err := req.StartTime.Validate(); err != nil {
		return fmt.Errorf("%w: invalid startTime format: %v", ErrInvalidInput, err)
	}

	if !domain.IsValidTimeSlot(req.StartTime) {
		return fmt.Errorf("%w: startTime %s is not a bookable slot", ErrInvalidInput, req.StartTime)
	}

	if req.Address == "" {
		return fmt.Errorf("%w: address is required", ErrInvalidInput)
	}
	if len(req.Address) > domain.MaxAddressLength {
		return fmt.Errorf("%w: address is too long", ErrInvalidInput)
	}

	if req.Name == "" {
		return fmt.Errorf("%w: name is required", ErrInvalidInput)
	}
	if len(req.Name) > domain.MaxNameLength {
		return fmt.Errorf("%w: name is too long", ErrInvalidInput)
	}

	if req.Phone == "" {
		return fmt.Errorf("%w: phone is required", ErrInvalidInput)
	}
	if len(req.Phone) > domain.MaxPhoneLength {
		return fmt.Errorf("%w: phone is too long", ErrInvalidInput)
	}

	if req.Notes != nil && len(*req.Notes) > domain.MaxNotesLength {
		return fmt.Errorf("%w: notes are too long", ErrInvalidInput)
	}

	return nil
}

// validateDate проверяет, что дата бронирования не в прошлом
func validateDate(bookingDate time.Time, now time.Time) error {
	// Обнуляем время, чтобы сравнивать только даты
	dateOnly := time.Date(bookingDate.Year(), bookingDate.Month(), bookingDate.Day(), 0, 0, 0, 0, bookingDate.Location())
	nowOnly := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())

	if dateOnly.Before(nowOnly) {
		return ErrDateInPast
	}
	return nil
}
