package create_booking

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/homeshine/HSB-BookingService/internal/domain"
	serviceRepo "github.com/homeshine/HSB-BookingService/internal/infra/storage/service"
	"github.com/homeshine/HSB-BookingService/internal/integrations/mailer"
)

// UseCase use case создания бронирования.
//
// Последовательность этапов (строго по порядку, без параллелизма —
// каждый этап зависит от идентификаторов предыдущего):
//  1. Upsert клиента по телефону — идемпотентный, выполняется вне транзакции:
//     строка клиента, оставшаяся от прерванной попытки, безвредна при повторе.
//  2. Получение авторитетной цены услуги из каталога.
//  3. Вставка бронирования с полученной ценой. Точка долговечности.
//     Этапы 2-3 выполняются в одной сериализуемой транзакции: при ошибке
//     чтения каталога строка бронирования не появляется.
//  4. Отправка письма-подтверждения — best-effort: ошибка или таймаут
//     понижаются до предупреждения в успешном ответе, ретраев нет.
type UseCase struct {
	customerRepo  CustomerRepository
	serviceRepo   ServiceRepository
	bookingRepo   BookingRepository
	mailerClient  MailerClient
	txManager     TransactionManager
	timeProvider  TimeProvider
	notifyTimeout time.Duration
	logger        Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	customerRepo CustomerRepository,
	serviceRepo ServiceRepository,
	bookingRepo BookingRepository,
	mailerClient MailerClient,
	txManager TransactionManager,
	notifyTimeout time.Duration,
	logger Logger,
) *UseCase {
	return &UseCase{
		customerRepo:  customerRepo,
		serviceRepo:   serviceRepo,
		bookingRepo:   bookingRepo,
		mailerClient:  mailerClient,
		txManager:     txManager,
		timeProvider:  &RealTimeProvider{},
		notifyTimeout: notifyTimeout,
		logger:        logger,
	}
}

// Execute выполняет use case создания бронирования
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("CreateBooking: service=%s, date=%s, time=%s, phone=%s",
		req.ServiceID, req.Date.Format(domain.DateFormat), req.StartTime, req.Phone)

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("CreateBooking: validation failed: %v", err)
		return nil, err
	}

	if err := validateDate(req.Date, uc.timeProvider.Now()); err != nil {
		uc.logger.Warn("CreateBooking: date validation failed: %v", err)
		return nil, err
	}

	// 2. Идемпотентный upsert клиента по телефону.
	// Выполняется до транзакции бронирования: при откате последующих этапов
	// строка клиента может остаться — это допустимо, upsert безвреден при повторе.
	customer, err := uc.customerRepo.Upsert(ctx, &domain.Customer{
		Name:    req.Name,
		Email:   domain.PlaceholderEmail(req.Phone),
		Phone:   req.Phone,
		Address: req.Address,
	})
	if err != nil {
		uc.logger.Error("CreateBooking: customer upsert failed for phone=%s: %v", req.Phone, err)
		return nil, fmt.Errorf("%w: %v", ErrCustomerUpsert, err)
	}

	uc.logger.Info("CreateBooking: customer upserted id=%s, phone=%s", customer.ID, customer.Phone)

	// Переменная для хранения результата
	var result *domain.Booking

	// 3. Получение цены и вставка бронирования в одной сериализуемой транзакции
	err = uc.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		// 3.1. Авторитетная цена услуги на момент бронирования
		svc, err := uc.serviceRepo.GetByID(txCtx, req.ServiceID)
		if err != nil {
			if errors.Is(err, serviceRepo.ErrServiceNotFound) {
				uc.logger.Warn("CreateBooking: service id=%s not found", req.ServiceID)
				return ErrServiceNotFound
			}
			uc.logger.Error("CreateBooking: failed to get service id=%s: %v", req.ServiceID, err)
			return fmt.Errorf("%w: %v", ErrServiceLookup, err)
		}

		// 3.2. Создаем бронирование. Цена — только из каталога.
		booking := &domain.Booking{
			CustomerID:  customer.ID,
			ServiceID:   svc.ID,
			BookingDate: req.Date,
			BookingTime: req.StartTime,
			TotalAmount: svc.Price,
			Status:      domain.StatusConfirmed,
			ServiceName: svc.Name,
			Notes:       req.Notes,
		}

		created, err := uc.bookingRepo.Create(txCtx, booking)
		if err != nil {
			uc.logger.Error("CreateBooking: failed to create booking: %v", err)
			return fmt.Errorf("%w: %v", ErrBookingCreate, err)
		}

		result = created
		return nil
	})

	if err != nil {
		return nil, err
	}

	uc.logger.Info("CreateBooking: successfully created booking id=%s, total=%.2f", result.ID, result.TotalAmount)

	// 4. Best-effort отправка подтверждения. Бронирование уже долговечно:
	// любая ошибка здесь понижается до предупреждения в успешном ответе.
	notificationSent := uc.sendConfirmation(ctx, result, customer)

	return &Response{
		BookingID:        result.ID,
		CustomerID:       customer.ID,
		ServiceID:        result.ServiceID,
		BookingDate:      result.BookingDate,
		StartTime:        result.BookingTime,
		TotalAmount:      result.TotalAmount,
		Status:           string(result.Status),
		ServiceName:      result.ServiceName,
		Notes:            result.Notes,
		NotificationSent: notificationSent,
		CreatedAt:        result.CreatedAt,
	}, nil
}

// sendConfirmation выполняет одну попытку отправки письма-подтверждения.
// Контекст отвязан от отмены запроса и ограничен notifyTimeout: зависший
// почтовый сервис не задерживает ответ об успехе дольше этой границы.
func (uc *UseCase) sendConfirmation(ctx context.Context, booking *domain.Booking, customer *domain.Customer) bool {
	notifyCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), uc.notifyTimeout)
	defer cancel()

	err := uc.mailerClient.SendBookingConfirmation(notifyCtx, &mailer.SendConfirmationRequest{
		BookingID:     booking.ID,
		CustomerEmail: customer.Email,
		CustomerName:  customer.Name,
	})
	if err != nil {
		uc.logger.Error("CreateBooking: confirmation email failed for booking id=%s: %v", booking.ID, err)
		return false
	}

	return true
}
