package flow

import "errors"

var (
	// ErrNoServiceSelected возвращается при любом переходе, пока услуга не выбрана.
	// Это guard-состояние формы, а не отдельный шаг.
	ErrNoServiceSelected = errors.New("flow: no service selected")

	// ErrStepIncomplete возвращается, когда обязательные поля текущего шага не заполнены
	ErrStepIncomplete = errors.New("flow: required fields for current step are empty")

	// ErrNotAtReviewStep возвращается при попытке собрать payload не на финальном шаге
	ErrNotAtReviewStep = errors.New("flow: submission is only allowed at the review step")

	// ErrFlowCompleted возвращается при переходах из терминального состояния Success
	ErrFlowCompleted = errors.New("flow: flow already completed")

	// ErrUnknownField возвращается при попытке записать неизвестное поле черновика
	ErrUnknownField = errors.New("flow: unknown draft field")

	// ErrInvalidDate возвращается при отправке, если дата не в формате YYYY-MM-DD
	ErrInvalidDate = errors.New("flow: invalid date format, expected YYYY-MM-DD")

	// ErrInvalidTimeSlot возвращается при отправке, если время не из фиксированного набора слотов
	ErrInvalidTimeSlot = errors.New("flow: time is not one of the bookable slots")
)
