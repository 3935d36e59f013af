package domain

import (
	"fmt"
	"time"

	"github.com/google/uuid"
)

// Customer is a server-owned identity keyed by phone number.
// Re-submitting with the same phone must not create a second row:
// the storage layer upserts, updating name and address in place.
type Customer struct {
	ID        uuid.UUID
	Name      string
	Email     string
	Phone     string
	Address   string
	CreatedAt time.Time
	UpdatedAt time.Time
}

// placeholderEmailDomain домен для синтезированных email адресов
const placeholderEmailDomain = "bookings.local"

// PlaceholderEmail derives a contact email from the phone number.
// The form does not collect an email, but the customer row and the
// confirmation mail both need a recipient; the value carries no meaning
// beyond uniqueness per phone.
func PlaceholderEmail(phone string) string {
	return fmt.Sprintf("%s@%s", phone, placeholderEmailDomain)
}
