package booking

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/lib/pq"

	"github.com/m04kA/SMC-InterviewPlanning/internal/domain"
	"github.com/m04kA/SMC-InterviewPlanning/pkg/psqlbuilder"
	"github.com/m04kA/SMC-InterviewPlanning/pkg/txmanager"
)

var bookingColumns = []string{
	"id",
	"interviewer_slot_id",
	"candidate_slot_id",
	"start_time",
	"end_time",
	"subject",
	"description",
	"created_at",
	"updated_at",
}

// Repository репозиторий для работы с бронированиями интервью
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория бронирований
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// Create создает новое бронирование
func (r *Repository) Create(ctx context.Context, booking *domain.Booking) (*domain.Booking, error) {
	executor := txmanager.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert("bookings").
		Columns(
			"interviewer_slot_id",
			"candidate_slot_id",
			"start_time",
			"end_time",
			"subject",
			"description",
		).
		Values(
			booking.InterviewerSlotID,
			booking.CandidateSlotID,
			booking.StartTime,
			booking.EndTime,
			booking.Subject,
			booking.Description,
		).
		Suffix("RETURNING id, created_at, updated_at").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: Create - build insert query: %v", ErrBuildQuery, err)
	}

	var createdAt, updatedAt sql.NullTime
	err = executor.QueryRowContext(ctx, query, args...).Scan(&booking.ID, &createdAt, &updatedAt)
	if err != nil {
		// Уникальность (slot_id, start_time, end_time) закрывает гонку
		// check-then-act на уровне БД
		var pqErr *pq.Error
		if errors.As(err, &pqErr) && pqErr.Code.Name() == "unique_violation" {
			return nil, fmt.Errorf("%w: Create - duplicate range: %v", ErrBookingAlreadyExists, err)
		}
		return nil, fmt.Errorf("%w: Create - execute insert: %v", ErrExecQuery, err)
	}

	booking.CreatedAt = createdAt.Time
	booking.UpdatedAt = updatedAt.Time

	return booking, nil
}

// GetByID получает бронирование по ID
func (r *Repository) GetByID(ctx context.Context, id int64) (*domain.Booking, error) {
	executor := txmanager.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(bookingColumns...).
		From("bookings").
		Where(squirrel.Eq{"id": id}).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - build select query: %v", ErrBuildQuery, err)
	}

	row := executor.QueryRowContext(ctx, query, args...)
	booking, err := scanBookingRow(row)
	if err == sql.ErrNoRows {
		return nil, ErrBookingNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - scan booking: %v", ErrScanRow, err)
	}

	return booking, nil
}

// GetByInterviewerSlotID получает бронирования, привязанные к слоту интервьюера
// Внутри транзакции блокирует строки (FOR UPDATE) для проверки пересечений
func (r *Repository) GetByInterviewerSlotID(ctx context.Context, slotID int64) ([]*domain.Booking, error) {
	return r.queryLocked(ctx, "GetByInterviewerSlotID", squirrel.Eq{"interviewer_slot_id": slotID})
}

// GetByCandidateSlotID получает бронирования, привязанные к слоту кандидата
// Внутри транзакции блокирует строки (FOR UPDATE) для проверки пересечений
func (r *Repository) GetByCandidateSlotID(ctx context.Context, slotID int64) ([]*domain.Booking, error) {
	return r.queryLocked(ctx, "GetByCandidateSlotID", squirrel.Eq{"candidate_slot_id": slotID})
}

// GetByInterviewerSlotIDs получает бронирования для набора слотов интервьюеров
// Используется при построении дашборда недели
func (r *Repository) GetByInterviewerSlotIDs(ctx context.Context, slotIDs []int64) ([]*domain.Booking, error) {
	if len(slotIDs) == 0 {
		return []*domain.Booking{}, nil
	}

	executor := txmanager.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(bookingColumns...).
		From("bookings").
		Where(squirrel.Eq{"interviewer_slot_id": slotIDs}).
		OrderBy("start_time ASC").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetByInterviewerSlotIDs - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: GetByInterviewerSlotIDs - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	return scanBookings(rows)
}

// CountByInterviewerAndWeek считает бронирования интервьюера, чьи слоты
// относятся к неделе weekNum. Используется при проверке недельного лимита
func (r *Repository) CountByInterviewerAndWeek(ctx context.Context, email string, weekNum int) (int, error) {
	executor := txmanager.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select("COUNT(b.id)").
		From("bookings b").
		Join("interviewer_slots s ON s.id = b.interviewer_slot_id").
		Where(squirrel.Eq{"s.email": email, "s.week_num": weekNum}).
		ToSql()

	if err != nil {
		return 0, fmt.Errorf("%w: CountByInterviewerAndWeek - build select query: %v", ErrBuildQuery, err)
	}

	var count int
	if err := executor.QueryRowContext(ctx, query, args...).Scan(&count); err != nil {
		return 0, fmt.Errorf("%w: CountByInterviewerAndWeek - scan count: %v", ErrScanRow, err)
	}

	return count, nil
}

// Update обновляет привязки, границы и описание существующего бронирования
func (r *Repository) Update(ctx context.Context, booking *domain.Booking) (*domain.Booking, error) {
	executor := txmanager.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update("bookings").
		Set("interviewer_slot_id", booking.InterviewerSlotID).
		Set("candidate_slot_id", booking.CandidateSlotID).
		Set("start_time", booking.StartTime).
		Set("end_time", booking.EndTime).
		Set("subject", booking.Subject).
		Set("description", booking.Description).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": booking.ID}).
		Suffix("RETURNING updated_at").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: Update - build update query: %v", ErrBuildQuery, err)
	}

	var updatedAt sql.NullTime
	err = executor.QueryRowContext(ctx, query, args...).Scan(&updatedAt)
	if err == sql.ErrNoRows {
		return nil, ErrBookingNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: Update - execute update: %v", ErrExecQuery, err)
	}

	booking.UpdatedAt = updatedAt.Time

	return booking, nil
}

func (r *Repository) queryLocked(ctx context.Context, op string, cond squirrel.Sqlizer) ([]*domain.Booking, error) {
	executor := txmanager.GetExecutor(ctx, r.db)

	selectBuilder := psqlbuilder.Select(bookingColumns...).
		From("bookings").
		Where(cond).
		OrderBy("start_time ASC")

	if txmanager.IsInTransaction(ctx) {
		selectBuilder = selectBuilder.Suffix("FOR UPDATE")
	}

	query, args, err := selectBuilder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: %s - build select query: %v", ErrBuildQuery, op, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: %s - execute query: %v", ErrExecQuery, op, err)
	}
	defer rows.Close()

	return scanBookings(rows)
}

type rowScanner interface {
	Scan(dest ...interface{}) error
}

func scanBookingRow(row rowScanner) (*domain.Booking, error) {
	var booking domain.Booking
	var createdAt, updatedAt sql.NullTime

	err := row.Scan(
		&booking.ID,
		&booking.InterviewerSlotID,
		&booking.CandidateSlotID,
		&booking.StartTime,
		&booking.EndTime,
		&booking.Subject,
		&booking.Description,
		&createdAt,
		&updatedAt,
	)
	if err != nil {
		return nil, err
	}

	booking.CreatedAt = createdAt.Time
	booking.UpdatedAt = updatedAt.Time

	return &booking, nil
}

func scanBookings(rows *sql.Rows) ([]*domain.Booking, error) {
	bookings := make([]*domain.Booking, 0)

	for rows.Next() {
		booking, err := scanBookingRow(rows)
		if err != nil {
			return nil, fmt.Errorf("%w: scan booking: %v", ErrScanRow, err)
		}
		bookings = append(bookings, booking)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: rows error: %v", ErrScanRow, err)
	}

	return bookings, nil
}
