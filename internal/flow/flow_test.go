package flow

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/homeshine/HSB-BookingService/internal/domain"
)

func cleaningService() *domain.Service {
	return &domain.Service{
		ID:              uuid.New(),
		Name:            "Deep Cleaning",
		Price:           150,
		DurationMinutes: 60,
	}
}

func readyFlow(t *testing.T) *Flow {
	t.Helper()

	f := New()
	f.SelectService(cleaningService())

	require.NoError(t, f.SetField(FieldDate, "2025-03-10"))
	require.NoError(t, f.SetField(FieldTime, "10:00"))
	require.NoError(t, f.Advance())
	require.NoError(t, f.SetField(FieldAddress, "12 Nile St"))
	require.NoError(t, f.Advance())
	require.NoError(t, f.SetField(FieldName, "Amr"))
	require.NoError(t, f.SetField(FieldPhone, "0100000000"))
	require.NoError(t, f.Advance())
	require.Equal(t, StepReview, f.CurrentStep())

	return f
}

func TestAdvance_RequiresCurrentStepFields(t *testing.T) {
	tests := []struct {
		name   string
		fields map[Field]string
		ok     bool
	}{
		{"empty draft", nil, false},
		{"date only", map[Field]string{FieldDate: "2025-03-10"}, false},
		{"time only", map[Field]string{FieldTime: "10:00"}, false},
		{"date and time", map[Field]string{FieldDate: "2025-03-10", FieldTime: "10:00"}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := New()
			f.SelectService(cleaningService())
			for field, value := range tt.fields {
				require.NoError(t, f.SetField(field, value))
			}

			err := f.Advance()
			if tt.ok {
				assert.NoError(t, err)
				assert.Equal(t, StepLocation, f.CurrentStep())
			} else {
				assert.ErrorIs(t, err, ErrStepIncomplete)
				// Состояние не изменилось
				assert.Equal(t, StepDateTime, f.CurrentStep())
			}
		})
	}
}

func TestAdvance_LaterStepsValidateOwnFields(t *testing.T) {
	f := New()
	f.SelectService(cleaningService())
	require.NoError(t, f.SetField(FieldDate, "2025-03-10"))
	require.NoError(t, f.SetField(FieldTime, "10:00"))
	require.NoError(t, f.Advance())

	// Шаг Location без адреса
	err := f.Advance()
	assert.ErrorIs(t, err, ErrStepIncomplete)
	assert.Equal(t, StepLocation, f.CurrentStep())

	require.NoError(t, f.SetField(FieldAddress, "12 Nile St"))
	require.NoError(t, f.Advance())

	// Шаг Contact: имя без телефона недостаточно
	require.NoError(t, f.SetField(FieldName, "Amr"))
	err = f.Advance()
	assert.ErrorIs(t, err, ErrStepIncomplete)
	assert.Equal(t, StepContact, f.CurrentStep())
}

func TestAdvance_NoOpAtFinalStep(t *testing.T) {
	f := readyFlow(t)

	assert.NoError(t, f.Advance())
	assert.Equal(t, StepReview, f.CurrentStep())
}

func TestRetreat_NoOpAtFirstStep(t *testing.T) {
	f := New()
	f.SelectService(cleaningService())

	assert.NoError(t, f.Retreat())
	assert.Equal(t, StepDateTime, f.CurrentStep())
}

func TestRetreat_MovesBackWithoutValidation(t *testing.T) {
	f := readyFlow(t)

	require.NoError(t, f.Retreat())
	assert.Equal(t, StepContact, f.CurrentStep())
}

func TestTransitions_DisabledWithoutService(t *testing.T) {
	f := New()
	require.NoError(t, f.SetField(FieldDate, "2025-03-10"))
	require.NoError(t, f.SetField(FieldTime, "10:00"))

	assert.ErrorIs(t, f.Advance(), ErrNoServiceSelected)
	assert.ErrorIs(t, f.Retreat(), ErrNoServiceSelected)

	_, err := f.SubmissionPayload()
	assert.ErrorIs(t, err, ErrNoServiceSelected)
}

func TestSetField_UnknownField(t *testing.T) {
	f := New()
	assert.ErrorIs(t, f.SetField("payment", "cash"), ErrUnknownField)
}

func TestSubmissionPayload_OnlyAtReviewStep(t *testing.T) {
	f := New()
	f.SelectService(cleaningService())

	_, err := f.SubmissionPayload()
	assert.ErrorIs(t, err, ErrNotAtReviewStep)
}

func TestSubmissionPayload_ValidatesDateAndSlot(t *testing.T) {
	f := readyFlow(t)
	require.NoError(t, f.SetField(FieldDate, "10.03.2025"))

	_, err := f.SubmissionPayload()
	assert.ErrorIs(t, err, ErrInvalidDate)

	require.NoError(t, f.SetField(FieldDate, "2025-03-10"))
	require.NoError(t, f.SetField(FieldTime, "10:30"))

	_, err = f.SubmissionPayload()
	assert.ErrorIs(t, err, ErrInvalidTimeSlot)
}

func TestSubmissionPayload_Complete(t *testing.T) {
	f := readyFlow(t)
	require.NoError(t, f.SetField(FieldNotes, "second floor"))

	payload, err := f.SubmissionPayload()
	require.NoError(t, err)

	assert.Equal(t, "Deep Cleaning", payload.Service.Name)
	assert.Equal(t, "2025-03-10", payload.Date.Format(domain.DateFormat))
	assert.Equal(t, "10:00", payload.Time.String())
	assert.Equal(t, "12 Nile St", payload.Address)
	assert.Equal(t, "Amr", payload.Name)
	assert.Equal(t, "0100000000", payload.Phone)
	require.NotNil(t, payload.Notes)
	assert.Equal(t, "second floor", *payload.Notes)
}

func TestSubmissionPayload_EmptyNotesOmitted(t *testing.T) {
	f := readyFlow(t)

	payload, err := f.SubmissionPayload()
	require.NoError(t, err)
	assert.Nil(t, payload.Notes)
}

func TestComplete_ClearsDraftAndLocksFlow(t *testing.T) {
	f := readyFlow(t)

	require.NoError(t, f.Complete())
	assert.Equal(t, StateSuccess, f.State())
	assert.True(t, f.Draft().IsEmpty())

	// Из Success переходы запрещены
	assert.ErrorIs(t, f.Advance(), ErrFlowCompleted)
	assert.ErrorIs(t, f.Retreat(), ErrFlowCompleted)
	assert.ErrorIs(t, f.SetField(FieldName, "x"), ErrFlowCompleted)
	assert.ErrorIs(t, f.Complete(), ErrFlowCompleted)
}

func TestReset_ReopensEmptyFlow(t *testing.T) {
	f := readyFlow(t)
	require.NoError(t, f.Complete())

	f.Reset()

	assert.Equal(t, StateInProgress, f.State())
	assert.Equal(t, StepDateTime, f.CurrentStep())
	assert.True(t, f.Draft().IsEmpty())
	// Выбор услуги принадлежит вышестоящему слою и переживает Reset
	assert.NotNil(t, f.Service())
}

func TestSummary_DerivedFromCurrentState(t *testing.T) {
	f := New()

	s := f.Summary()
	assert.False(t, s.HasService)
	assert.Zero(t, s.Total)

	f.SelectService(cleaningService())
	require.NoError(t, f.SetField(FieldDate, "2025-03-10"))
	require.NoError(t, f.SetField(FieldAddress, "12 Nile St"))

	s = f.Summary()
	assert.True(t, s.HasService)
	assert.Equal(t, "Deep Cleaning", s.ServiceName)
	assert.Equal(t, float64(150), s.Total)
	assert.Equal(t, "2025-03-10", s.Date)
	assert.Equal(t, "12 Nile St", s.Address)

	// Сводка пересчитывается после каждой мутации
	require.NoError(t, f.SetField(FieldAddress, "5 Tahrir Sq"))
	assert.Equal(t, "5 Tahrir Sq", f.Summary().Address)
}
