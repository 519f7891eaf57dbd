package interviewerslots

import (
	"context"

	"github.com/m04kA/SMC-InterviewPlanning/internal/domain"
	"github.com/m04kA/SMC-InterviewPlanning/pkg/types"
)

// SlotRepository интерфейс репозитория слотов интервьюеров
type SlotRepository interface {
	Create(ctx context.Context, slot *domain.InterviewerSlot) (*domain.InterviewerSlot, error)
	GetByID(ctx context.Context, id int64) (*domain.InterviewerSlot, error)
	GetByEmailAndWeek(ctx context.Context, email string, weekNum int) ([]*domain.InterviewerSlot, error)
	Update(ctx context.Context, slot *domain.InterviewerSlot) (*domain.InterviewerSlot, error)
}

// BookingRepository интерфейс репозитория бронирований
type BookingRepository interface {
	GetByInterviewerSlotIDs(ctx context.Context, slotIDs []int64) ([]*domain.Booking, error)
}

// LimitRepository интерфейс репозитория недельных лимитов
type LimitRepository interface {
	Upsert(ctx context.Context, limit *domain.BookingLimit) (*domain.BookingLimit, error)
}

// WeekClock интерфейс для получения номеров текущей и следующей недели
type WeekClock interface {
	CurrentWeekNumber() int
	NextWeekNumber() int
}

// BoundaryValidator интерфейс валидатора границ слотов
type BoundaryValidator interface {
	ValidateSlotBoundaries(from, to types.TimeString) error
	InterviewDuration() int
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
