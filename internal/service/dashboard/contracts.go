package dashboard

import (
	"context"
	"time"

	"github.com/m04kA/SMC-InterviewPlanning/internal/domain"
)

// InterviewerSlotRepository интерфейс репозитория слотов интервьюеров
type InterviewerSlotRepository interface {
	GetByWeek(ctx context.Context, weekNum int) ([]*domain.InterviewerSlot, error)
}

// CandidateSlotRepository интерфейс репозитория слотов кандидатов
type CandidateSlotRepository interface {
	GetByDateRange(ctx context.Context, start, end time.Time) ([]*domain.CandidateSlot, error)
}

// BookingRepository интерфейс репозитория бронирований
type BookingRepository interface {
	GetByInterviewerSlotIDs(ctx context.Context, slotIDs []int64) ([]*domain.Booking, error)
}

// WeekClock интерфейс для перевода пары (неделя, день) в календарную дату
type WeekClock interface {
	CurrentWeekNumber() int
	NextWeekNumber() int
	DateFor(weekNum int, day domain.Weekday) time.Time
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
