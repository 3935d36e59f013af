package flow

import (
	"fmt"
	"time"

	"github.com/homeshine/HSB-BookingService/internal/domain"
	"github.com/homeshine/HSB-BookingService/pkg/types"
)

// Step номер шага формы бронирования
type Step int

// Шаги формы в фиксированном порядке. Review — финальный шаг,
// с которого выполняется отправка.
const (
	StepDateTime Step = iota + 1
	StepLocation
	StepContact
	StepReview
)

const (
	firstStep = StepDateTime
	finalStep = StepReview
)

// Title возвращает человекочитаемое название шага
func (s Step) Title() string {
	switch s {
	case StepDateTime:
		return "Date & Time"
	case StepLocation:
		return "Location"
	case StepContact:
		return "Contact Info"
	case StepReview:
		return "Review"
	default:
		return fmt.Sprintf("Step %d", int(s))
	}
}

// Field ключ поля черновика бронирования
type Field string

const (
	FieldDate    Field = "date"
	FieldTime    Field = "time"
	FieldAddress Field = "address"
	FieldName    Field = "name"
	FieldPhone   Field = "phone"
	FieldNotes   Field = "notes"
)

// State состояние формы, отдаваемое презентационному слою
type State string

const (
	StateInProgress State = "in_progress"
	StateSuccess    State = "success"
)

// Flow машина состояний пошаговой формы бронирования.
// Владеет черновиком одной сессии; параллельное редактирование
// одного черновика не поддерживается (одна активная сессия — один Flow).
type Flow struct {
	service *domain.Service
	draft   domain.BookingDraft
	current Step
	success bool
}

// New создает форму с пустым черновиком на первом шаге, без выбранной услуги
func New() *Flow {
	return &Flow{current: firstStep}
}

// SelectService задает выбранную услугу. Пока услуга не выбрана,
// все переходы формы возвращают ErrNoServiceSelected.
func (f *Flow) SelectService(svc *domain.Service) {
	f.service = svc
}

// Service возвращает выбранную услугу (nil, если не выбрана)
func (f *Flow) Service() *domain.Service {
	return f.service
}

// CurrentStep возвращает текущий шаг формы
func (f *Flow) CurrentStep() Step {
	return f.current
}

// State возвращает состояние формы
func (f *Flow) State() State {
	if f.success {
		return StateSuccess
	}
	return StateInProgress
}

// Draft возвращает копию текущего черновика
func (f *Flow) Draft() domain.BookingDraft {
	return f.draft
}

// SetField записывает значение поля черновика.
// Значение не валидируется — проверка выполняется только при Advance
// и при сборке payload на отправке.
func (f *Flow) SetField(field Field, value string) error {
	if f.success {
		return ErrFlowCompleted
	}

	switch field {
	case FieldDate:
		f.draft.Date = value
	case FieldTime:
		f.draft.Time = value
	case FieldAddress:
		f.draft.Address = value
	case FieldName:
		f.draft.Name = value
	case FieldPhone:
		f.draft.Phone = value
	case FieldNotes:
		f.draft.Notes = value
	default:
		return fmt.Errorf("%w: %q", ErrUnknownField, field)
	}

	return nil
}

// Advance переходит к следующему шагу, если обязательные поля текущего
// шага заполнены. На финальном шаге — no-op.
func (f *Flow) Advance() error {
	if f.success {
		return ErrFlowCompleted
	}
	if f.service == nil {
		return ErrNoServiceSelected
	}

	if err := f.validateStep(f.current); err != nil {
		return err
	}

	if f.current < finalStep {
		f.current++
	}

	return nil
}

// Retreat возвращается на предыдущий шаг. На первом шаге — no-op.
// Из состояния Success переход запрещен.
func (f *Flow) Retreat() error {
	if f.success {
		return ErrFlowCompleted
	}
	if f.service == nil {
		return ErrNoServiceSelected
	}

	if f.current > firstStep {
		f.current--
	}

	return nil
}

// Payload финализированные данные формы для отправки
type Payload struct {
	Service *domain.Service
	Date    time.Time
	Time    types.TimeString
	Address string
	Name    string
	Phone   string
	Notes   *string
}

// SubmissionPayload собирает финализированный payload. Доступно только на
// финальном шаге; перед сборкой повторно валидируются все шаги, формат даты
// и принадлежность времени фиксированному набору слотов.
func (f *Flow) SubmissionPayload() (*Payload, error) {
	if f.success {
		return nil, ErrFlowCompleted
	}
	if f.service == nil {
		return nil, ErrNoServiceSelected
	}
	if f.current != finalStep {
		return nil, ErrNotAtReviewStep
	}

	for step := firstStep; step < finalStep; step++ {
		if err := f.validateStep(step); err != nil {
			return nil, err
		}
	}

	date, err := time.Parse(domain.DateFormat, f.draft.Date)
	if err != nil {
		return nil, fmt.Errorf("%w: %q", ErrInvalidDate, f.draft.Date)
	}

	slot, err := types.NewTimeStringFromString(f.draft.Time)
	if err != nil {
		return nil, fmt.Errorf("%w: %q", ErrInvalidTimeSlot, f.draft.Time)
	}
	if !domain.IsValidTimeSlot(slot) {
		return nil, fmt.Errorf("%w: %q", ErrInvalidTimeSlot, f.draft.Time)
	}

	var notes *string
	if f.draft.Notes != "" {
		n := f.draft.Notes
		notes = &n
	}

	return &Payload{
		Service: f.service,
		Date:    date,
		Time:    slot,
		Address: f.draft.Address,
		Name:    f.draft.Name,
		Phone:   f.draft.Phone,
		Notes:   notes,
	}, nil
}

// Complete переводит форму в терминальное состояние Success и очищает
// черновик. Вызывается оркестратором после успешной отправки.
func (f *Flow) Complete() error {
	if f.success {
		return ErrFlowCompleted
	}
	if f.current != finalStep {
		return ErrNotAtReviewStep
	}

	f.draft = domain.BookingDraft{}
	f.success = true

	return nil
}

// Reset открывает форму заново: пустой черновик, первый шаг.
// Выбор услуги принадлежит вышестоящему слою и сохраняется.
func (f *Flow) Reset() {
	f.draft = domain.BookingDraft{}
	f.current = firstStep
	f.success = false
}

// validateStep проверяет обязательные поля одного шага
func (f *Flow) validateStep(step Step) error {
	switch step {
	case StepDateTime:
		if f.draft.Date == "" || f.draft.Time == "" {
			return fmt.Errorf("%w: date and time are required", ErrStepIncomplete)
		}
	case StepLocation:
		if f.draft.Address == "" {
			return fmt.Errorf("%w: address is required", ErrStepIncomplete)
		}
	case StepContact:
		if f.draft.Name == "" || f.draft.Phone == "" {
			return fmt.Errorf("%w: name and phone are required", ErrStepIncomplete)
		}
	case StepReview:
		// Шаг подтверждения собственных обязательных полей не имеет
	}
	return nil
}
