package create_booking

import (
	"time"

	"github.com/google/uuid"

	"github.com/homeshine/HSB-BookingService/pkg/types"
)

// Request модель запроса на создание бронирования.
// Цена в запросе отсутствует намеренно: total_amount всегда берется
// из каталога на момент бронирования, клиентским данным не доверяем.
type Request struct {
	ServiceID uuid.UUID        // ID услуги из каталога
	Date      time.Time        // Дата бронирования (без времени)
	StartTime types.TimeString // Время слота (например, "10:00")
	Address   string           // Адрес оказания услуги
	Name      string           // Имя клиента
	Phone     string           // Телефон клиента (естественный ключ)
	Notes     *string          // Дополнительные заметки (опционально)
}

// Response модель ответа с созданным бронированием
type Response struct {
	BookingID   uuid.UUID        // ID созданного бронирования
	CustomerID  uuid.UUID        // ID клиента (созданного или обновленного)
	ServiceID   uuid.UUID        // ID услуги
	BookingDate time.Time        // Дата бронирования
	StartTime   types.TimeString // Время слота
	TotalAmount float64          // Итоговая сумма (цена из каталога)
	Status      string           // Статус бронирования
	ServiceName string           // Название услуги
	Notes       *string          // Заметки

	// NotificationSent false означает, что бронирование создано,
	// но письмо-подтверждение отправить не удалось
	NotificationSent bool

	CreatedAt time.Time // Время создания
}
