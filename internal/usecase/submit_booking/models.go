package submit_booking

import "github.com/google/uuid"

// Status состояние отправки, видимое презентационному слою
type Status string

const (
	StatusIdle       Status = "idle"
	StatusSubmitting Status = "submitting"
	StatusSuccess    Status = "success"
	StatusFailure    Status = "failure"
)

// Outcome тегированный результат отправки — единственный интерфейс,
// который нужен презентационному слою от этого ядра
type Outcome struct {
	Status    Status
	BookingID uuid.UUID // заполнен при Status == StatusSuccess
	Reason    string    // человекочитаемая причина при Status == StatusFailure

	// DeliveryWarning true, когда бронирование создано, но письмо-подтверждение
	// отправить не удалось (вторичная пометка при успехе)
	DeliveryWarning bool
}

// Result результат успешной отправки
type Result struct {
	BookingID        uuid.UUID
	CustomerID       uuid.UUID
	TotalAmount      float64
	NotificationSent bool
}
