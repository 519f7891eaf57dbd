package interviewerslot

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/Masterminds/squirrel"

	"github.com/m04kA/SMC-InterviewPlanning/internal/domain"
	"github.com/m04kA/SMC-InterviewPlanning/pkg/psqlbuilder"
	"github.com/m04kA/SMC-InterviewPlanning/pkg/txmanager"
)

var slotColumns = []string{
	"id",
	"email",
	"week_num",
	"day_of_week",
	"time_from",
	"time_to",
	"status",
	"created_at",
	"updated_at",
}

// Repository репозиторий для работы со слотами интервьюеров
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория слотов интервьюеров
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// Create создает новый слот интервьюера
func (r *Repository) Create(ctx context.Context, slot *domain.InterviewerSlot) (*domain.InterviewerSlot, error) {
	executor := txmanager.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert("interviewer_slots").
		Columns("email", "week_num", "day_of_week", "time_from", "time_to", "status").
		Values(slot.Email, slot.WeekNum, slot.DayOfWeek, slot.From, slot.To, slot.Status).
		Suffix("RETURNING id, created_at, updated_at").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: Create - build insert query: %v", ErrBuildQuery, err)
	}

	var createdAt, updatedAt sql.NullTime
	err = executor.QueryRowContext(ctx, query, args...).Scan(&slot.ID, &createdAt, &updatedAt)
	if err != nil {
		return nil, fmt.Errorf("%w: Create - execute insert: %v", ErrExecQuery, err)
	}

	slot.CreatedAt = createdAt.Time
	slot.UpdatedAt = updatedAt.Time

	return slot, nil
}

// GetByID получает слот интервьюера по ID
func (r *Repository) GetByID(ctx context.Context, id int64) (*domain.InterviewerSlot, error) {
	executor := txmanager.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(slotColumns...).
		From("interviewer_slots").
		Where(squirrel.Eq{"id": id}).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - build select query: %v", ErrBuildQuery, err)
	}

	row := executor.QueryRowContext(ctx, query, args...)
	slot, err := scanSlotRow(row)
	if err == sql.ErrNoRows {
		return nil, ErrSlotNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - scan slot: %v", ErrScanRow, err)
	}

	return slot, nil
}

// GetByEmailAndWeek получает слоты интервьюера на неделю
// Внутри транзакции блокирует строки (FOR UPDATE) для проверки пересечений
func (r *Repository) GetByEmailAndWeek(ctx context.Context, email string, weekNum int) ([]*domain.InterviewerSlot, error) {
	executor := txmanager.GetExecutor(ctx, r.db)

	selectBuilder := psqlbuilder.Select(slotColumns...).
		From("interviewer_slots").
		Where(squirrel.Eq{"email": email, "week_num": weekNum}).
		OrderBy("day_of_week ASC, time_from ASC")

	if txmanager.IsInTransaction(ctx) {
		selectBuilder = selectBuilder.Suffix("FOR UPDATE")
	}

	query, args, err := selectBuilder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetByEmailAndWeek - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: GetByEmailAndWeek - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	return scanSlots(rows)
}

// GetByWeek получает слоты всех интервьюеров на неделю
// Используется при построении дашборда недели
func (r *Repository) GetByWeek(ctx context.Context, weekNum int) ([]*domain.InterviewerSlot, error) {
	executor := txmanager.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(slotColumns...).
		From("interviewer_slots").
		Where(squirrel.Eq{"week_num": weekNum}).
		OrderBy("email ASC, day_of_week ASC, time_from ASC").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetByWeek - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: GetByWeek - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	return scanSlots(rows)
}

// Update обновляет неделю, день, границы и статус существующего слота
func (r *Repository) Update(ctx context.Context, slot *domain.InterviewerSlot) (*domain.InterviewerSlot, error) {
	executor := txmanager.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update("interviewer_slots").
		Set("week_num", slot.WeekNum).
		Set("day_of_week", slot.DayOfWeek).
		Set("time_from", slot.From).
		Set("time_to", slot.To).
		Set("status", slot.Status).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": slot.ID}).
		Suffix("RETURNING updated_at").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: Update - build update query: %v", ErrBuildQuery, err)
	}

	var updatedAt sql.NullTime
	err = executor.QueryRowContext(ctx, query, args...).Scan(&updatedAt)
	if err == sql.ErrNoRows {
		return nil, ErrSlotNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: Update - execute update: %v", ErrExecQuery, err)
	}

	slot.UpdatedAt = updatedAt.Time

	return slot, nil
}

type rowScanner interface {
	Scan(dest ...interface{}) error
}

func scanSlotRow(row rowScanner) (*domain.InterviewerSlot, error) {
	var slot domain.InterviewerSlot
	var createdAt, updatedAt sql.NullTime

	err := row.Scan(
		&slot.ID,
		&slot.Email,
		&slot.WeekNum,
		&slot.DayOfWeek,
		&slot.From,
		&slot.To,
		&slot.Status,
		&createdAt,
		&updatedAt,
	)
	if err != nil {
		return nil, err
	}

	slot.CreatedAt = createdAt.Time
	slot.UpdatedAt = updatedAt.Time

	return &slot, nil
}

func scanSlots(rows *sql.Rows) ([]*domain.InterviewerSlot, error) {
	slots := make([]*domain.InterviewerSlot, 0)

	for rows.Next() {
		slot, err := scanSlotRow(rows)
		if err != nil {
			return nil, fmt.Errorf("%w: scan slot: %v", ErrScanRow, err)
		}
		slots = append(slots, slot)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: rows error: %v", ErrScanRow, err)
	}

	return slots, nil
}
