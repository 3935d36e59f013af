package mailer

import "errors"

var (
	// ErrSendFailed возвращается, когда почтовый сервис отклонил отправку
	ErrSendFailed = errors.New("mailer client: send failed")

	// ErrInternal возвращается при внутренних ошибках клиента
	ErrInternal = errors.New("mailer client: internal error")

	// ErrInvalidResponse возвращается при некорректном ответе от сервиса
	ErrInvalidResponse = errors.New("mailer client: invalid response")
)
