package create_booking

import "errors"

var (
	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("create_booking: invalid input data")

	// ErrDateInPast возвращается, когда дата бронирования уже прошла
	ErrDateInPast = errors.New("create_booking: booking date is in the past")

	// ErrCustomerUpsert возвращается при ошибке создания/обновления профиля клиента.
	// Бронирование и уведомление при этом не выполняются.
	ErrCustomerUpsert = errors.New("create_booking: customer profile creation failed")

	// ErrServiceNotFound возвращается, когда услуга не найдена в каталоге
	ErrServiceNotFound = errors.New("create_booking: service not found")

	// ErrServiceLookup возвращается при ошибке получения услуги из каталога
	ErrServiceLookup = errors.New("create_booking: service lookup failed")

	// ErrBookingCreate возвращается при ошибке создания бронирования
	ErrBookingCreate = errors.New("create_booking: booking creation failed")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("create_booking: internal error")
)
