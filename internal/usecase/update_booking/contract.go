package update_booking

import (
	"context"

	"github.com/m04kA/SMC-InterviewPlanning/internal/domain"
	"github.com/m04kA/SMC-InterviewPlanning/pkg/types"
)

// InterviewerSlotRepository интерфейс репозитория слотов интервьюеров
type InterviewerSlotRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.InterviewerSlot, error)
}

// CandidateSlotRepository интерфейс репозитория слотов кандидатов
type CandidateSlotRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.CandidateSlot, error)
}

// BookingRepository интерфейс репозитория бронирований
type BookingRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.Booking, error)
	GetByInterviewerSlotID(ctx context.Context, slotID int64) ([]*domain.Booking, error)
	GetByCandidateSlotID(ctx context.Context, slotID int64) ([]*domain.Booking, error)
	CountByInterviewerAndWeek(ctx context.Context, email string, weekNum int) (int, error)
	Update(ctx context.Context, booking *domain.Booking) (*domain.Booking, error)
}

// LimitRepository интерфейс репозитория недельных лимитов
type LimitRepository interface {
	GetByEmailAndWeek(ctx context.Context, email string, weekNum int) (*domain.BookingLimit, error)
}

// WeekClock интерфейс для получения номера текущей недели
type WeekClock interface {
	CurrentWeekNumber() int
}

// BoundaryValidator интерфейс валидатора границ бронирования
type BoundaryValidator interface {
	ValidateBookingBoundaries(start, end types.TimeString) error
}

// TransactionManager интерфейс для управления транзакциями
type TransactionManager interface {
	DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
