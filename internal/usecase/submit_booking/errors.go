package submit_booking

import "errors"

var (
	// ErrSubmissionInFlight возвращается при повторной отправке, пока
	// предыдущая еще выполняется. Гарантия "не более одной отправки
	// одновременно" для одной сессии: двойной клик не создает два бронирования.
	ErrSubmissionInFlight = errors.New("submit_booking: submission already in flight")
)
