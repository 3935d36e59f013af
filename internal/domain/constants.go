package domain

import "github.com/homeshine/HSB-BookingService/pkg/types"

// Time format constants
const (
	TimeFormat = "15:04"      // HH:MM
	DateFormat = "2006-01-02" // YYYY-MM-DD
)

// Business validation constants
const (
	MaxNotesLength   = 500
	MaxNameLength    = 200
	MaxAddressLength = 500
	MaxPhoneLength   = 20
)

// TimeSlots фиксированный набор слотов, доступных для бронирования.
// Слоты едины для всех услуг; проверки пересечений по слотам нет.
var TimeSlots = []types.TimeString{
	"08:00", "09:00", "10:00", "11:00", "12:00",
	"13:00", "14:00", "15:00", "16:00", "17:00",
}

// IsValidTimeSlot reports whether t is one of the bookable slots
func IsValidTimeSlot(t types.TimeString) bool {
	for _, slot := range TimeSlots {
		if slot == t {
			return true
		}
	}
	return false
}
