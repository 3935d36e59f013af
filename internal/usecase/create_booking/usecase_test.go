package create_booking

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/homeshine/HSB-BookingService/internal/domain"
	serviceRepo "github.com/homeshine/HSB-BookingService/internal/infra/storage/service"
	"github.com/homeshine/HSB-BookingService/internal/integrations/mailer"
	"github.com/homeshine/HSB-BookingService/pkg/ptr"
)

// --- Mocks ---

type mockCustomerRepo struct {
	upsertFn func(ctx context.Context, c *domain.Customer) (*domain.Customer, error)
	calls    int
}

func (m *mockCustomerRepo) Upsert(ctx context.Context, c *domain.Customer) (*domain.Customer, error) {
	m.calls++
	return m.upsertFn(ctx, c)
}

type mockServiceRepo struct {
	getByIDFn func(ctx context.Context, id uuid.UUID) (*domain.Service, error)
	calls     int
}

func (m *mockServiceRepo) GetByID(ctx context.Context, id uuid.UUID) (*domain.Service, error) {
	m.calls++
	return m.getByIDFn(ctx, id)
}

type mockBookingRepo struct {
	createFn func(ctx context.Context, b *domain.Booking) (*domain.Booking, error)
	calls    int
}

func (m *mockBookingRepo) Create(ctx context.Context, b *domain.Booking) (*domain.Booking, error) {
	m.calls++
	return m.createFn(ctx, b)
}

type mockMailer struct {
	sendFn func(ctx context.Context, req *mailer.SendConfirmationRequest) error
	calls  int
	last   *mailer.SendConfirmationRequest
}

func (m *mockMailer) SendBookingConfirmation(ctx context.Context, req *mailer.SendConfirmationRequest) error {
	m.calls++
	m.last = req
	if m.sendFn != nil {
		return m.sendFn(ctx, req)
	}
	return nil
}

// passthroughTxManager выполняет fn без реальной транзакции
type passthroughTxManager struct{}

func (passthroughTxManager) DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}

type fixedTimeProvider struct{ now time.Time }

func (p fixedTimeProvider) Now() time.Time { return p.now }

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

// --- Fixtures ---

var svcID = uuid.MustParse("6ba7b810-9dad-11d1-80b4-00c04fd430c8")

func catalogService() *domain.Service {
	return &domain.Service{
		ID:              svcID,
		Name:            "Deep Cleaning",
		Price:           150,
		DurationMinutes: 60,
	}
}

func validRequest() *Request {
	return &Request{
		ServiceID: svcID,
		Date:      time.Date(2025, 3, 10, 0, 0, 0, 0, time.UTC),
		StartTime: "10:00",
		Address:   "12 Nile St",
		Name:      "Amr",
		Phone:     "0100000000",
	}
}

type deps struct {
	customers *mockCustomerRepo
	services  *mockServiceRepo
	bookings  *mockBookingRepo
	mail      *mockMailer
}

func newTestUseCase(t *testing.T) (*UseCase, *deps) {
	t.Helper()

	d := &deps{
		customers: &mockCustomerRepo{
			upsertFn: func(ctx context.Context, c *domain.Customer) (*domain.Customer, error) {
				c.ID = uuid.MustParse("11111111-1111-1111-1111-111111111111")
				return c, nil
			},
		},
		services: &mockServiceRepo{
			getByIDFn: func(ctx context.Context, id uuid.UUID) (*domain.Service, error) {
				return catalogService(), nil
			},
		},
		bookings: &mockBookingRepo{
			createFn: func(ctx context.Context, b *domain.Booking) (*domain.Booking, error) {
				b.ID = uuid.MustParse("22222222-2222-2222-2222-222222222222")
				b.CreatedAt = time.Now()
				return b, nil
			},
		},
		mail: &mockMailer{},
	}

	uc := NewUseCase(d.customers, d.services, d.bookings, d.mail, passthroughTxManager{}, time.Second, nopLogger{})
	uc.timeProvider = fixedTimeProvider{now: time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)}

	return uc, d
}

// --- Tests ---

func TestExecute_Success(t *testing.T) {
	uc, d := newTestUseCase(t)

	resp, err := uc.Execute(context.Background(), validRequest())
	require.NoError(t, err)

	assert.Equal(t, "confirmed", resp.Status)
	assert.Equal(t, float64(150), resp.TotalAmount)
	assert.Equal(t, "Deep Cleaning", resp.ServiceName)
	assert.True(t, resp.NotificationSent)
	assert.Equal(t, 1, d.customers.calls)
	assert.Equal(t, 1, d.bookings.calls)
	assert.Equal(t, 1, d.mail.calls)
}

func TestExecute_TotalAmountAlwaysFromCatalog(t *testing.T) {
	uc, d := newTestUseCase(t)

	var created *domain.Booking
	d.bookings.createFn = func(ctx context.Context, b *domain.Booking) (*domain.Booking, error) {
		b.ID = uuid.New()
		created = b
		return b, nil
	}

	// В запросе нет поля цены: лишние поля JSON отбрасываются на границе API,
	// поэтому подмененная клиентом цена до usecase не доходит в принципе.
	_, err := uc.Execute(context.Background(), validRequest())
	require.NoError(t, err)

	require.NotNil(t, created)
	assert.Equal(t, catalogService().Price, created.TotalAmount)
}

func TestExecute_PlaceholderEmailDerivedFromPhone(t *testing.T) {
	uc, d := newTestUseCase(t)

	var upserted *domain.Customer
	d.customers.upsertFn = func(ctx context.Context, c *domain.Customer) (*domain.Customer, error) {
		c.ID = uuid.New()
		upserted = c
		return c, nil
	}

	_, err := uc.Execute(context.Background(), validRequest())
	require.NoError(t, err)

	require.NotNil(t, upserted)
	assert.Equal(t, "0100000000@bookings.local", upserted.Email)
	assert.Equal(t, "Amr", upserted.Name)
	assert.Equal(t, "12 Nile St", upserted.Address)
}

func TestExecute_ValidationFailures(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(r *Request)
	}{
		{"missing service", func(r *Request) { r.ServiceID = uuid.Nil }},
		{"zero date", func(r *Request) { r.Date = time.Time{} }},
		{"empty time", func(r *Request) { r.StartTime = "" }},
		{"malformed time", func(r *Request) { r.StartTime = "25:99" }},
		{"not a slot", func(r *Request) { r.StartTime = "10:30" }},
		{"empty address", func(r *Request) { r.Address = "" }},
		{"empty name", func(r *Request) { r.Name = "" }},
		{"empty phone", func(r *Request) { r.Phone = "" }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			uc, d := newTestUseCase(t)
			req := validRequest()
			tt.mutate(req)

			_, err := uc.Execute(context.Background(), req)
			assert.ErrorIs(t, err, ErrInvalidInput)
			// Валидация не доходит до сервера
			assert.Zero(t, d.customers.calls)
			assert.Zero(t, d.bookings.calls)
		})
	}
}

func TestExecute_DateInPast(t *testing.T) {
	uc, d := newTestUseCase(t)

	req := validRequest()
	req.Date = time.Date(2025, 2, 1, 0, 0, 0, 0, time.UTC)

	_, err := uc.Execute(context.Background(), req)
	assert.ErrorIs(t, err, ErrDateInPast)
	assert.Zero(t, d.customers.calls)
}

func TestExecute_CustomerUpsertFails(t *testing.T) {
	uc, d := newTestUseCase(t)
	d.customers.upsertFn = func(ctx context.Context, c *domain.Customer) (*domain.Customer, error) {
		return nil, errors.New("connection refused")
	}

	_, err := uc.Execute(context.Background(), validRequest())
	assert.ErrorIs(t, err, ErrCustomerUpsert)
	// Последующие этапы не выполняются
	assert.Zero(t, d.services.calls)
	assert.Zero(t, d.bookings.calls)
	assert.Zero(t, d.mail.calls)
}

func TestExecute_ServiceNotFound(t *testing.T) {
	uc, d := newTestUseCase(t)
	d.services.getByIDFn = func(ctx context.Context, id uuid.UUID) (*domain.Service, error) {
		return nil, serviceRepo.ErrServiceNotFound
	}

	_, err := uc.Execute(context.Background(), validRequest())
	assert.ErrorIs(t, err, ErrServiceNotFound)
	// Бронирование не создается без цены из каталога
	assert.Zero(t, d.bookings.calls)
	assert.Zero(t, d.mail.calls)
}

func TestExecute_ServiceLookupError(t *testing.T) {
	uc, d := newTestUseCase(t)
	d.services.getByIDFn = func(ctx context.Context, id uuid.UUID) (*domain.Service, error) {
		return nil, errors.New("timeout")
	}

	_, err := uc.Execute(context.Background(), validRequest())
	assert.ErrorIs(t, err, ErrServiceLookup)
	assert.Zero(t, d.bookings.calls)
}

func TestExecute_BookingCreateFails(t *testing.T) {
	uc, d := newTestUseCase(t)
	d.bookings.createFn = func(ctx context.Context, b *domain.Booking) (*domain.Booking, error) {
		return nil, errors.New("constraint violation")
	}

	_, err := uc.Execute(context.Background(), validRequest())
	assert.ErrorIs(t, err, ErrBookingCreate)
	assert.Zero(t, d.mail.calls)
}

func TestExecute_NotificationFailureIsNonFatal(t *testing.T) {
	uc, d := newTestUseCase(t)
	d.mail.sendFn = func(ctx context.Context, req *mailer.SendConfirmationRequest) error {
		return mailer.ErrSendFailed
	}

	resp, err := uc.Execute(context.Background(), validRequest())
	require.NoError(t, err)

	// Бронирование создано, предупреждение о доставке выставлено
	assert.False(t, resp.NotificationSent)
	assert.Equal(t, 1, d.bookings.calls)
}

func TestExecute_NotificationRecipient(t *testing.T) {
	uc, d := newTestUseCase(t)

	resp, err := uc.Execute(context.Background(), validRequest())
	require.NoError(t, err)

	require.NotNil(t, d.mail.last)
	assert.Equal(t, resp.BookingID, d.mail.last.BookingID)
	assert.Equal(t, "0100000000@bookings.local", d.mail.last.CustomerEmail)
	assert.Equal(t, "Amr", d.mail.last.CustomerName)
}

func TestExecute_RepeatedPhoneUpsertsSameCustomer(t *testing.T) {
	uc, d := newTestUseCase(t)

	customerID := uuid.MustParse("11111111-1111-1111-1111-111111111111")
	seen := map[string]int{}
	d.customers.upsertFn = func(ctx context.Context, c *domain.Customer) (*domain.Customer, error) {
		seen[c.Phone]++
		c.ID = customerID // БД возвращает ту же строку по телефону
		return c, nil
	}

	first, err := uc.Execute(context.Background(), validRequest())
	require.NoError(t, err)

	second, err := uc.Execute(context.Background(), validRequest())
	require.NoError(t, err)

	// Один клиент, два бронирования
	assert.Equal(t, first.CustomerID, second.CustomerID)
	assert.Equal(t, 1, len(seen))
	assert.Equal(t, 2, d.bookings.calls)
}

func TestExecute_Scenario(t *testing.T) {
	uc, _ := newTestUseCase(t)

	req := &Request{
		ServiceID: svcID,
		Date:      time.Date(2025, 3, 10, 0, 0, 0, 0, time.UTC),
		StartTime: "10:00",
		Address:   "12 Nile St",
		Name:      "Amr",
		Phone:     "0100000000",
		Notes:     ptr.Ptr("ring twice"),
	}

	resp, err := uc.Execute(context.Background(), req)
	require.NoError(t, err)

	assert.Equal(t, float64(150), resp.TotalAmount)
	assert.Equal(t, "confirmed", resp.Status)
	assert.Equal(t, "2025-03-10", resp.BookingDate.Format(domain.DateFormat))
	assert.Equal(t, "10:00", resp.StartTime.String())
	require.NotNil(t, resp.Notes)
	assert.Equal(t, "ring twice", *resp.Notes)
}
