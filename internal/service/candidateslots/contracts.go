package candidateslots

import (
	"context"
	"time"

	"github.com/m04kA/SMC-InterviewPlanning/internal/domain"
	"github.com/m04kA/SMC-InterviewPlanning/pkg/types"
)

// SlotRepository интерфейс репозитория слотов кандидатов
type SlotRepository interface {
	Create(ctx context.Context, slot *domain.CandidateSlot) (*domain.CandidateSlot, error)
	GetByID(ctx context.Context, id int64) (*domain.CandidateSlot, error)
	GetByEmail(ctx context.Context, email string) ([]*domain.CandidateSlot, error)
	GetByEmailAndDate(ctx context.Context, email string, date time.Time) ([]*domain.CandidateSlot, error)
	Update(ctx context.Context, slot *domain.CandidateSlot) (*domain.CandidateSlot, error)
}

// BoundaryValidator интерфейс валидатора границ слотов
type BoundaryValidator interface {
	ValidateSlotBoundaries(from, to types.TimeString) error
}

// TransactionManager интерфейс для управления транзакциями
type TransactionManager interface {
	DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error
}

// Clock источник текущего времени (для тестирования)
type Clock interface {
	Now() time.Time
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
