package bookinglimit

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/Masterminds/squirrel"

	"github.com/m04kA/SMC-InterviewPlanning/internal/domain"
	"github.com/m04kA/SMC-InterviewPlanning/pkg/psqlbuilder"
	"github.com/m04kA/SMC-InterviewPlanning/pkg/txmanager"
)

// Repository репозиторий для работы с недельными лимитами бронирований
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория лимитов
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// GetByEmailAndWeek получает лимит интервьюера на неделю
func (r *Repository) GetByEmailAndWeek(ctx context.Context, email string, weekNum int) (*domain.BookingLimit, error) {
	executor := txmanager.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(
		"id",
		"interviewer_email",
		"week_num",
		"max_bookings",
		"created_at",
		"updated_at",
	).
		From("booking_limits").
		Where(squirrel.Eq{"interviewer_email": email, "week_num": weekNum}).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetByEmailAndWeek - build select query: %v", ErrBuildQuery, err)
	}

	var limit domain.BookingLimit
	var createdAt, updatedAt sql.NullTime

	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&limit.ID,
		&limit.InterviewerEmail,
		&limit.WeekNum,
		&limit.MaxBookings,
		&createdAt,
		&updatedAt,
	)

	if err == sql.ErrNoRows {
		return nil, ErrLimitNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetByEmailAndWeek - scan limit: %v", ErrScanRow, err)
	}

	limit.CreatedAt = createdAt.Time
	limit.UpdatedAt = updatedAt.Time

	return &limit, nil
}

// Upsert создает лимит или обновляет значение существующего
// Уникальность пары (interviewer_email, week_num) гарантируется схемой
func (r *Repository) Upsert(ctx context.Context, limit *domain.BookingLimit) (*domain.BookingLimit, error) {
	executor := txmanager.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert("booking_limits").
		Columns("interviewer_email", "week_num", "max_bookings").
		Values(limit.InterviewerEmail, limit.WeekNum, limit.MaxBookings).
		Suffix("ON CONFLICT (interviewer_email, week_num) DO UPDATE SET max_bookings = EXCLUDED.max_bookings, updated_at = NOW()").
		Suffix("RETURNING id, created_at, updated_at").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: Upsert - build insert query: %v", ErrBuildQuery, err)
	}

	var createdAt, updatedAt sql.NullTime
	err = executor.QueryRowContext(ctx, query, args...).Scan(&limit.ID, &createdAt, &updatedAt)
	if err != nil {
		return nil, fmt.Errorf("%w: Upsert - execute insert: %v", ErrExecQuery, err)
	}

	limit.CreatedAt = createdAt.Time
	limit.UpdatedAt = updatedAt.Time

	return limit, nil
}
