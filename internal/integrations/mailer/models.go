package mailer

import "github.com/google/uuid"

// SendConfirmationRequest запрос на отправку письма-подтверждения бронирования.
// Рендеринг содержимого письма — на стороне почтового сервиса,
// сюда передаются только идентификатор бронирования и получатель.
type SendConfirmationRequest struct {
	BookingID     uuid.UUID `json:"booking_id"`
	CustomerEmail string    `json:"customer_email"`
	CustomerName  string    `json:"customer_name"`
}

// ErrorResponse модель ошибки от почтового сервиса
type ErrorResponse struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}
