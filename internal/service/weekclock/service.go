package weekclock

import (
	"time"

	"github.com/m04kA/SMC-InterviewPlanning/internal/domain"
)

// Service сервис для вычисления номеров недель и дат по ним
// Все вычисления привязаны к ISO неделям и текущему моменту часов
type Service struct {
	clock Clock
}

// NewService создает новый экземпляр сервиса
func NewService(clock Clock) *Service {
	return &Service{clock: clock}
}

// CurrentWeekNumber возвращает ISO номер текущей недели
func (s *Service) CurrentWeekNumber() int {
	_, week := s.clock.Now().ISOWeek()
	return week
}

// NextWeekNumber возвращает номер следующей недели с переходом 52 -> 1
func (s *Service) NextWeekNumber() int {
	return domain.NextWeekOf(s.CurrentWeekNumber())
}

// DateFor возвращает календарную дату для пары (номер недели, день недели)
// Неделя берется относительно "сейчас": якорь - понедельник текущей ISO
// недели, сдвинутый на разницу номеров недель. Номера недель, далекие от
// текущей, интерпретируются в рамках того же недельного года
func (s *Service) DateFor(weekNum int, day domain.Weekday) time.Time {
	now := s.clock.Now()
	monday := mondayOfWeek(now)

	shiftWeeks := weekNum - s.CurrentWeekNumber()
	dayOffset := int(day.ToTimeWeekday() - time.Monday)

	return monday.AddDate(0, 0, shiftWeeks*7+dayOffset)
}

// mondayOfWeek возвращает понедельник ISO недели, содержащей date
func mondayOfWeek(date time.Time) time.Time {
	day := time.Date(date.Year(), date.Month(), date.Day(), 0, 0, 0, 0, date.Location())

	offset := int(day.Weekday() - time.Monday)
	if offset < 0 {
		offset += 7 // воскресенье
	}
	return day.AddDate(0, 0, -offset)
}
