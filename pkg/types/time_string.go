package types

import (
	"database/sql/driver"
	"errors"
	"fmt"
	"time"
)

// Формат времени HH:MM (24 часа)
const timeFormat = "15:04"

var (
	// ErrInvalidTimeFormat возвращается при некорректном формате времени
	ErrInvalidTimeFormat = errors.New("types: invalid time string format, expected HH:MM")

	// ErrTimeOutOfRange возвращается, когда результат арифметики выходит за пределы суток
	ErrTimeOutOfRange = errors.New("types: time is out of day range")
)

// TimeString время дня в формате "HH:MM" (без даты и таймзоны)
// Используется для границ слотов и бронирований
type TimeString string

// NewTimeString создает TimeString из time.Time (отбрасывает дату и секунды)
func NewTimeString(t time.Time) TimeString {
	return TimeString(t.Format(timeFormat))
}

// NewTimeStringFromString создает TimeString из строки с валидацией формата
func NewTimeStringFromString(s string) (TimeString, error) {
	ts := TimeString(s)
	if err := ts.Validate(); err != nil {
		return "", err
	}
	return ts, nil
}

// Validate проверяет, что строка является корректным временем HH:MM
func (t TimeString) Validate() error {
	if _, err := time.Parse(timeFormat, string(t)); err != nil {
		return fmt.Errorf("%w: %q", ErrInvalidTimeFormat, string(t))
	}
	return nil
}

// IsZero проверяет, что значение не задано
func (t TimeString) IsZero() bool {
	return t == ""
}

// String возвращает строковое представление "HH:MM"
func (t TimeString) String() string {
	return string(t)
}

// Hour возвращает часы (0-23)
func (t TimeString) Hour() int {
	parsed, err := time.Parse(timeFormat, string(t))
	if err != nil {
		return 0
	}
	return parsed.Hour()
}

// Minute возвращает минуты (0-59)
func (t TimeString) Minute() int {
	parsed, err := time.Parse(timeFormat, string(t))
	if err != nil {
		return 0
	}
	return parsed.Minute()
}

// TotalMinutes возвращает количество минут с начала суток
func (t TimeString) TotalMinutes() int {
	return t.Hour()*60 + t.Minute()
}

// IsBefore проверяет, что время строго раньше other
func (t TimeString) IsBefore(other TimeString) bool {
	return t.TotalMinutes() < other.TotalMinutes()
}

// IsAfter проверяет, что время строго позже other
func (t TimeString) IsAfter(other TimeString) bool {
	return t.TotalMinutes() > other.TotalMinutes()
}

// Equal проверяет равенство двух времен
func (t TimeString) Equal(other TimeString) bool {
	return t.TotalMinutes() == other.TotalMinutes()
}

// AddMinutes возвращает время, сдвинутое на minutes вперед (или назад при
// отрицательном значении), не выходя за пределы суток
func (t TimeString) AddMinutes(minutes int) (TimeString, error) {
	total := t.TotalMinutes() + minutes
	if total < 0 || total >= 24*60 {
		return "", fmt.Errorf("%w: %s %+d min", ErrTimeOutOfRange, t, minutes)
	}
	return TimeString(fmt.Sprintf("%02d:%02d", total/60, total%60)), nil
}

// MinutesBetween возвращает количество минут от t до other (other - t)
func (t TimeString) MinutesBetween(other TimeString) int {
	return other.TotalMinutes() - t.TotalMinutes()
}

// Scan реализует sql.Scanner (поддерживает TEXT и TIME колонки)
func (t *TimeString) Scan(value interface{}) error {
	switch v := value.(type) {
	case string:
		*t = truncateSeconds(v)
	case []byte:
		*t = truncateSeconds(string(v))
	case time.Time:
		*t = NewTimeString(v)
	case nil:
		*t = ""
	default:
		return fmt.Errorf("%w: cannot scan %T", ErrInvalidTimeFormat, value)
	}
	return nil
}

// Value реализует driver.Valuer
func (t TimeString) Value() (driver.Value, error) {
	return string(t), nil
}

// truncateSeconds обрезает "HH:MM:SS" до "HH:MM" (Postgres TIME возвращает секунды)
func truncateSeconds(s string) TimeString {
	if len(s) > 5 {
		return TimeString(s[:5])
	}
	return TimeString(s)
}
