package submit_booking

import (
	"context"
	"errors"
	"sync"

	"github.com/homeshine/HSB-BookingService/internal/flow"
	createBooking "github.com/homeshine/HSB-BookingService/internal/usecase/create_booking"
)

// Человекочитаемые причины отказа для презентационного слоя
const (
	msgNoServiceSelected = "сначала выберите услугу"
	msgIncompleteDraft   = "заполните все обязательные поля формы"
	msgInvalidDraft      = "проверьте правильность даты и времени"
	msgCustomerUpsert    = "не удалось сохранить профиль клиента, попробуйте еще раз"
	msgServiceNotFound   = "выбранная услуга больше недоступна"
	msgServiceLookup     = "не удалось получить данные услуги, попробуйте еще раз"
	msgBookingCreate     = "не удалось создать бронирование, попробуйте еще раз"
	msgInternal          = "внутренняя ошибка, попробуйте еще раз"
)

// UseCase оркестратор отправки бронирования.
//
// Сериализует отправки одной сессии: пока флаг in-flight поднят, повторный
// Submit отклоняется без обращения к серверной транзакции. При успехе форма
// переводится в Success и черновик очищается; при ошибке черновик остается
// нетронутым для исправления и повторной отправки.
type UseCase struct {
	creator BookingCreator
	logger  Logger

	mu       sync.Mutex
	inFlight bool
	outcome  Outcome
}

// NewUseCase создает новый экземпляр оркестратора
func NewUseCase(creator BookingCreator, logger Logger) *UseCase {
	return &UseCase{
		creator: creator,
		logger:  logger,
		outcome: Outcome{Status: StatusIdle},
	}
}

// Submit выполняет отправку финализированной формы.
// Ровно один вызов серверной транзакции на одну успешную постановку in-flight.
func (uc *UseCase) Submit(ctx context.Context, f *flow.Flow) (*Result, error) {
	uc.mu.Lock()
	if uc.inFlight {
		uc.mu.Unlock()
		uc.logger.Warn("SubmitBooking: rejected, submission already in flight")
		return nil, ErrSubmissionInFlight
	}
	uc.inFlight = true
	uc.outcome = Outcome{Status: StatusSubmitting}
	uc.mu.Unlock()

	defer func() {
		uc.mu.Lock()
		uc.inFlight = false
		uc.mu.Unlock()
	}()

	// Финализация черновика: валидация всех шагов и выбранной услуги
	payload, err := f.SubmissionPayload()
	if err != nil {
		uc.logger.Warn("SubmitBooking: payload rejected: %v", err)
		uc.setFailure(flowReason(err))
		return nil, err
	}

	resp, err := uc.creator.Execute(ctx, &createBooking.Request{
		ServiceID: payload.Service.ID,
		Date:      payload.Date,
		StartTime: payload.Time,
		Address:   payload.Address,
		Name:      payload.Name,
		Phone:     payload.Phone,
		Notes:     payload.Notes,
	})
	if err != nil {
		uc.logger.Error("SubmitBooking: creation failed: %v", err)
		// Черновик не трогаем: пользователь исправляет данные и повторяет
		uc.setFailure(creationReason(err))
		return nil, err
	}

	// Бронирование долговечно: форма завершается независимо от судьбы письма
	if err := f.Complete(); err != nil {
		uc.logger.Error("SubmitBooking: failed to complete flow: %v", err)
	}

	uc.mu.Lock()
	uc.outcome = Outcome{
		Status:          StatusSuccess,
		BookingID:       resp.BookingID,
		DeliveryWarning: !resp.NotificationSent,
	}
	uc.mu.Unlock()

	uc.logger.Info("SubmitBooking: booking id=%s created, notification_sent=%t",
		resp.BookingID, resp.NotificationSent)

	return &Result{
		BookingID:        resp.BookingID,
		CustomerID:       resp.CustomerID,
		TotalAmount:      resp.TotalAmount,
		NotificationSent: resp.NotificationSent,
	}, nil
}

// InFlight сообщает, выполняется ли отправка в данный момент
func (uc *UseCase) InFlight() bool {
	uc.mu.Lock()
	defer uc.mu.Unlock()
	return uc.inFlight
}

// Outcome возвращает снимок текущего результата отправки
func (uc *UseCase) Outcome() Outcome {
	uc.mu.Lock()
	defer uc.mu.Unlock()
	return uc.outcome
}

func (uc *UseCase) setFailure(reason string) {
	uc.mu.Lock()
	uc.outcome = Outcome{Status: StatusFailure, Reason: reason}
	uc.mu.Unlock()
}

// flowReason сопоставляет ошибку формы с причиной для пользователя
func flowReason(err error) string {
	switch {
	case errors.Is(err, flow.ErrNoServiceSelected):
		return msgNoServiceSelected
	case errors.Is(err, flow.ErrStepIncomplete):
		return msgIncompleteDraft
	case errors.Is(err, flow.ErrInvalidDate), errors.Is(err, flow.ErrInvalidTimeSlot):
		return msgInvalidDraft
	default:
		return msgInternal
	}
}

// creationReason сопоставляет первый отказавший этап транзакции
// с причиной для пользователя
func creationReason(err error) string {
	switch {
	case errors.Is(err, createBooking.ErrCustomerUpsert):
		return msgCustomerUpsert
	case errors.Is(err, createBooking.ErrServiceNotFound):
		return msgServiceNotFound
	case errors.Is(err, createBooking.ErrServiceLookup):
		return msgServiceLookup
	case errors.Is(err, createBooking.ErrBookingCreate):
		return msgBookingCreate
	case errors.Is(err, createBooking.ErrInvalidInput), errors.Is(err, createBooking.ErrDateInPast):
		return msgInvalidDraft
	default:
		return msgInternal
	}
}
