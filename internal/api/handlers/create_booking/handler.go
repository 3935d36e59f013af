package create_booking

import (
	"errors"
	"net/http"

	"github.com/homeshine/HSB-BookingService/internal/api/handlers"
	createBooking "github.com/homeshine/HSB-BookingService/internal/usecase/create_booking"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
	msgInvalidServiceID   = "некорректный ID услуги"
	msgInvalidDate        = "некорректный формат даты бронирования, ожидается YYYY-MM-DD"
	msgInvalidTime        = "некорректный формат времени начала, ожидается HH:MM"
	msgServiceNotFound    = "услуга не найдена"
	msgInvalidInput       = "некорректные данные бронирования"
	msgDateInPast         = "дата бронирования уже прошла"
)

var (
	errInvalidServiceID = errors.New("invalid service id")
	errInvalidDate      = errors.New("invalid booking date")
	errInvalidTime      = errors.New("invalid booking time")
)

type Handler struct {
	useCase CreateBookingUseCase
	logger  Logger
}

func NewHandler(useCase CreateBookingUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/bookings
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req CreateBookingRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /bookings - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	// Конвертируем HTTP запрос в модель use case (с парсингом даты и времени)
	useCaseReq, err := req.ToUseCaseRequest()
	if err != nil {
		h.logger.Warn("POST /bookings - Failed to parse request: %v", err)
		switch {
		case errors.Is(err, errInvalidServiceID):
			handlers.RespondBadRequest(w, msgInvalidServiceID)
		case errors.Is(err, errInvalidTime):
			handlers.RespondBadRequest(w, msgInvalidTime)
		default:
			handlers.RespondBadRequest(w, msgInvalidDate)
		}
		return
	}

	// Вызываем use case
	result, err := h.useCase.Execute(r.Context(), useCaseReq)
	if err != nil {
		switch {
		case errors.Is(err, createBooking.ErrServiceNotFound):
			h.logger.Warn("POST /bookings - Service not found: service_id=%s", req.ServiceID)
			handlers.RespondNotFound(w, msgServiceNotFound)

		case errors.Is(err, createBooking.ErrDateInPast):
			h.logger.Warn("POST /bookings - Date in past: date=%s", req.BookingDate)
			handlers.RespondBadRequest(w, msgDateInPast)

		case errors.Is(err, createBooking.ErrInvalidInput):
			h.logger.Warn("POST /bookings - Invalid input: %v", err)
			handlers.RespondBadRequest(w, msgInvalidInput)

		default:
			h.logger.Error("POST /bookings - Failed to create booking: service_id=%s, error=%v",
				req.ServiceID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	// Формируем HTTP ответ
	response := FromUseCaseResponse(result)

	h.logger.Info("POST /bookings - Booking created successfully: booking_id=%s, customer_id=%s, notification_sent=%t",
		result.BookingID, result.CustomerID, result.NotificationSent)
	handlers.RespondJSON(w, http.StatusCreated, response)
}
