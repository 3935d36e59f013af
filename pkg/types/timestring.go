package types

import (
	"database/sql/driver"
	"errors"
	"fmt"
	"time"
)

// timeFormat is the wire and storage format for TimeString values.
const timeFormat = "15:04"

// ErrInvalidTimeString is returned when a value cannot be parsed as HH:MM.
var ErrInvalidTimeString = errors.New("types: invalid time string format, expected HH:MM")

// TimeString represents a time of day in "HH:MM" format.
// It is used for booking slot times, where only hours and minutes matter
// and values must survive a round-trip through JSON and Postgres unchanged.
type TimeString string

// NewTimeString creates a TimeString from the time part of t.
func NewTimeString(t time.Time) TimeString {
	return TimeString(t.Format(timeFormat))
}

// NewTimeStringFromString parses s as "HH:MM" and returns a TimeString.
func NewTimeStringFromString(s string) (TimeString, error) {
	if _, err := time.Parse(timeFormat, s); err != nil {
		return "", fmt.Errorf("%w: %q", ErrInvalidTimeString, s)
	}
	return TimeString(s), nil
}

// String returns the "HH:MM" representation.
func (t TimeString) String() string {
	return string(t)
}

// IsZero returns true if the value is empty.
func (t TimeString) IsZero() bool {
	return t == ""
}

// Validate checks that the value is a well-formed "HH:MM" time.
func (t TimeString) Validate() error {
	if _, err := time.Parse(timeFormat, string(t)); err != nil {
		return fmt.Errorf("%w: %q", ErrInvalidTimeString, string(t))
	}
	return nil
}

// AddMinutes returns a new TimeString shifted forward by the given number
// of minutes. The result wraps around midnight.
func (t TimeString) AddMinutes(minutes int) (TimeString, error) {
	parsed, err := time.Parse(timeFormat, string(t))
	if err != nil {
		return "", fmt.Errorf("%w: %q", ErrInvalidTimeString, string(t))
	}
	return TimeString(parsed.Add(time.Duration(minutes) * time.Minute).Format(timeFormat)), nil
}

// IsBefore reports whether t is strictly earlier in the day than other.
// Lexicographic comparison is correct for zero-padded "HH:MM" values.
func (t TimeString) IsBefore(other TimeString) bool {
	return string(t) < string(other)
}

// IsAfter reports whether t is strictly later in the day than other.
func (t TimeString) IsAfter(other TimeString) bool {
	return string(t) > string(other)
}

// Scan implements sql.Scanner. Postgres TIME columns arrive either as
// strings or as time.Time depending on the driver path.
func (t *TimeString) Scan(src interface{}) error {
	switch v := src.(type) {
	case nil:
		*t = ""
		return nil
	case string:
		return t.scanString(v)
	case []byte:
		return t.scanString(string(v))
	case time.Time:
		*t = NewTimeString(v)
		return nil
	default:
		return fmt.Errorf("types: cannot scan %T into TimeString", src)
	}
}

func (t *TimeString) scanString(s string) error {
	// TIME columns come back as "HH:MM:SS"; keep only hours and minutes.
	if len(s) > len(timeFormat) {
		s = s[:len(timeFormat)]
	}
	parsed, err := NewTimeStringFromString(s)
	if err != nil {
		return err
	}
	*t = parsed
	return nil
}

// Value implements driver.Valuer.
func (t TimeString) Value() (driver.Value, error) {
	if t.IsZero() {
		return nil, nil
	}
	if err := t.Validate(); err != nil {
		return nil, err
	}
	return string(t), nil
}
