package weekclock

import "time"

// Clock источник текущего времени
// Внедряется явно, чтобы сервис был детерминированным в тестах
type Clock interface {
	Now() time.Time
}

// SystemClock реальные часы для production
type SystemClock struct{}

// Now возвращает текущее время
func (SystemClock) Now() time.Time {
	return time.Now()
}
