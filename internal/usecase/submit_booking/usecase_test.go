package submit_booking

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/homeshine/HSB-BookingService/internal/domain"
	"github.com/homeshine/HSB-BookingService/internal/flow"
	createBooking "github.com/homeshine/HSB-BookingService/internal/usecase/create_booking"
)

// --- Mocks ---

type mockCreator struct {
	executeFn func(ctx context.Context, req *createBooking.Request) (*createBooking.Response, error)

	mu    sync.Mutex
	calls int
}

func (m *mockCreator) Execute(ctx context.Context, req *createBooking.Request) (*createBooking.Response, error) {
	m.mu.Lock()
	m.calls++
	m.mu.Unlock()
	return m.executeFn(ctx, req)
}

func (m *mockCreator) callCount() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.calls
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

// --- Fixtures ---

func successResponse() *createBooking.Response {
	return &createBooking.Response{
		BookingID:        uuid.MustParse("22222222-2222-2222-2222-222222222222"),
		CustomerID:       uuid.MustParse("11111111-1111-1111-1111-111111111111"),
		TotalAmount:      150,
		Status:           "confirmed",
		NotificationSent: true,
	}
}

func readyFlow(t *testing.T) *flow.Flow {
	t.Helper()

	f := flow.New()
	f.SelectService(&domain.Service{
		ID:              uuid.New(),
		Name:            "Deep Cleaning",
		Price:           150,
		DurationMinutes: 60,
	})

	require.NoError(t, f.SetField(flow.FieldDate, "2025-03-10"))
	require.NoError(t, f.SetField(flow.FieldTime, "10:00"))
	require.NoError(t, f.Advance())
	require.NoError(t, f.SetField(flow.FieldAddress, "12 Nile St"))
	require.NoError(t, f.Advance())
	require.NoError(t, f.SetField(flow.FieldName, "Amr"))
	require.NoError(t, f.SetField(flow.FieldPhone, "0100000000"))
	require.NoError(t, f.Advance())

	return f
}

// --- Tests ---

func TestSubmit_Success(t *testing.T) {
	creator := &mockCreator{
		executeFn: func(ctx context.Context, req *createBooking.Request) (*createBooking.Response, error) {
			return successResponse(), nil
		},
	}
	uc := NewUseCase(creator, nopLogger{})
	f := readyFlow(t)

	result, err := uc.Submit(context.Background(), f)
	require.NoError(t, err)

	assert.Equal(t, successResponse().BookingID, result.BookingID)
	assert.True(t, result.NotificationSent)

	// Форма завершена, черновик очищен
	assert.Equal(t, flow.StateSuccess, f.State())
	assert.True(t, f.Draft().IsEmpty())

	outcome := uc.Outcome()
	assert.Equal(t, StatusSuccess, outcome.Status)
	assert.Equal(t, successResponse().BookingID, outcome.BookingID)
	assert.False(t, outcome.DeliveryWarning)
	assert.False(t, uc.InFlight())
}

func TestSubmit_DoubleSubmitWhileInFlight(t *testing.T) {
	started := make(chan struct{})
	release := make(chan struct{})

	creator := &mockCreator{
		executeFn: func(ctx context.Context, req *createBooking.Request) (*createBooking.Response, error) {
			close(started)
			<-release
			return successResponse(), nil
		},
	}
	uc := NewUseCase(creator, nopLogger{})
	f := readyFlow(t)

	var wg sync.WaitGroup
	wg.Add(1)
	go func() {
		defer wg.Done()
		_, err := uc.Submit(context.Background(), f)
		assert.NoError(t, err)
	}()

	// Дожидаемся, пока первая отправка займет флаг in-flight
	<-started
	assert.True(t, uc.InFlight())
	assert.Equal(t, StatusSubmitting, uc.Outcome().Status)

	// Повторный тап по кнопке подтверждения
	_, err := uc.Submit(context.Background(), f)
	assert.ErrorIs(t, err, ErrSubmissionInFlight)

	close(release)
	wg.Wait()

	// Ровно один вызов серверной транзакции
	assert.Equal(t, 1, creator.callCount())
	assert.Equal(t, StatusSuccess, uc.Outcome().Status)
}

func TestSubmit_FailureKeepsDraft(t *testing.T) {
	creator := &mockCreator{
		executeFn: func(ctx context.Context, req *createBooking.Request) (*createBooking.Response, error) {
			return nil, createBooking.ErrBookingCreate
		},
	}
	uc := NewUseCase(creator, nopLogger{})
	f := readyFlow(t)

	_, err := uc.Submit(context.Background(), f)
	assert.ErrorIs(t, err, createBooking.ErrBookingCreate)

	// Черновик нетронут, форма осталась на финальном шаге
	assert.Equal(t, flow.StateInProgress, f.State())
	assert.Equal(t, "12 Nile St", f.Draft().Address)

	outcome := uc.Outcome()
	assert.Equal(t, StatusFailure, outcome.Status)
	assert.Equal(t, msgBookingCreate, outcome.Reason)
	assert.False(t, uc.InFlight())

	// Повторная отправка после снятия флага разрешена
	creator.executeFn = func(ctx context.Context, req *createBooking.Request) (*createBooking.Response, error) {
		return successResponse(), nil
	}
	_, err = uc.Submit(context.Background(), f)
	assert.NoError(t, err)
}

func TestSubmit_FailureReasonPerStage(t *testing.T) {
	tests := []struct {
		name   string
		err    error
		reason string
	}{
		{"customer upsert", createBooking.ErrCustomerUpsert, msgCustomerUpsert},
		{"service not found", createBooking.ErrServiceNotFound, msgServiceNotFound},
		{"service lookup", createBooking.ErrServiceLookup, msgServiceLookup},
		{"booking insert", createBooking.ErrBookingCreate, msgBookingCreate},
		{"unknown", errors.New("boom"), msgInternal},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			creator := &mockCreator{
				executeFn: func(ctx context.Context, req *createBooking.Request) (*createBooking.Response, error) {
					return nil, tt.err
				},
			}
			uc := NewUseCase(creator, nopLogger{})

			_, err := uc.Submit(context.Background(), readyFlow(t))
			assert.Error(t, err)
			assert.Equal(t, tt.reason, uc.Outcome().Reason)
		})
	}
}

func TestSubmit_NoServiceSelected(t *testing.T) {
	creator := &mockCreator{
		executeFn: func(ctx context.Context, req *createBooking.Request) (*createBooking.Response, error) {
			return successResponse(), nil
		},
	}
	uc := NewUseCase(creator, nopLogger{})

	f := flow.New() // услуга не выбрана

	_, err := uc.Submit(context.Background(), f)
	assert.ErrorIs(t, err, flow.ErrNoServiceSelected)

	// Серверная транзакция не вызывалась, состояние формы не изменилось
	assert.Zero(t, creator.callCount())
	assert.Equal(t, flow.StateInProgress, f.State())
	assert.Equal(t, msgNoServiceSelected, uc.Outcome().Reason)
}

func TestSubmit_DeliveryWarning(t *testing.T) {
	creator := &mockCreator{
		executeFn: func(ctx context.Context, req *createBooking.Request) (*createBooking.Response, error) {
			resp := successResponse()
			resp.NotificationSent = false
			return resp, nil
		},
	}
	uc := NewUseCase(creator, nopLogger{})

	result, err := uc.Submit(context.Background(), readyFlow(t))
	require.NoError(t, err)

	// Успех с вторичной пометкой о задержке подтверждения
	assert.False(t, result.NotificationSent)
	outcome := uc.Outcome()
	assert.Equal(t, StatusSuccess, outcome.Status)
	assert.True(t, outcome.DeliveryWarning)
}

func TestSubmit_PassesFinalizedPayload(t *testing.T) {
	var got *createBooking.Request
	creator := &mockCreator{
		executeFn: func(ctx context.Context, req *createBooking.Request) (*createBooking.Response, error) {
			got = req
			return successResponse(), nil
		},
	}
	uc := NewUseCase(creator, nopLogger{})
	f := readyFlow(t)
	serviceID := f.Service().ID

	_, err := uc.Submit(context.Background(), f)
	require.NoError(t, err)

	require.NotNil(t, got)
	assert.Equal(t, serviceID, got.ServiceID)
	assert.Equal(t, time.Date(2025, 3, 10, 0, 0, 0, 0, time.UTC), got.Date)
	assert.Equal(t, "10:00", got.StartTime.String())
	assert.Equal(t, "Amr", got.Name)
	assert.Equal(t, "0100000000", got.Phone)
}
