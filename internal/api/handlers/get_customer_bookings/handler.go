package get_customer_bookings

import (
	"net/http"

	"github.com/google/uuid"
	"github.com/gorilla/mux"

	"github.com/homeshine/HSB-BookingService/internal/api/handlers"
)

const (
	msgInvalidCustomerID = "некорректный ID клиента"
)

type Handler struct {
	service BookingService
	logger  Logger
}

func NewHandler(service BookingService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /api/v1/customers/{customerId}/bookings
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	// Извлекаем customerId из URL
	vars := mux.Vars(r)
	customerIDStr := vars["customerId"]

	customerID, err := uuid.Parse(customerIDStr)
	if err != nil {
		h.logger.Warn("GET /customers/{customerId}/bookings - Invalid customer ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidCustomerID)
		return
	}

	// Получаем историю бронирований клиента
	result, err := h.service.GetCustomerBookings(r.Context(), customerID)
	if err != nil {
		h.logger.Error("GET /customers/{customerId}/bookings - Failed to get bookings: customer_id=%s, error=%v",
			customerID, err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("GET /customers/{customerId}/bookings - Bookings retrieved successfully: customer_id=%s, count=%d",
		customerID, len(result.Bookings))
	handlers.RespondJSON(w, http.StatusOK, result)
}
