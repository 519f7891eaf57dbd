package candidateslot

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"

	"github.com/m04kA/SMC-InterviewPlanning/internal/domain"
	"github.com/m04kA/SMC-InterviewPlanning/pkg/psqlbuilder"
	"github.com/m04kA/SMC-InterviewPlanning/pkg/txmanager"
)

var slotColumns = []string{
	"id",
	"email",
	"slot_date",
	"time_from",
	"time_to",
	"status",
	"created_at",
	"updated_at",
}

// Repository репозиторий для работы со слотами кандидатов
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория слотов кандидатов
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// Create создает новый слот кандидата
func (r *Repository) Create(ctx context.Context, slot *domain.CandidateSlot) (*domain.CandidateSlot, error) {
	executor := txmanager.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert("candidate_slots").
		Columns("email", "slot_date", "time_from", "time_to", "status").
		Values(slot.Email, slot.Date, slot.From, slot.To, slot.Status).
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

// GetByID получает слот кандидата по ID
func (r *Repository) GetByID(ctx context.Context, id int64) (*domain.CandidateSlot, error) {
	executor := txmanager.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(slotColumns...).
		From("candidate_slots").
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

// GetByEmail получает все слоты кандидата
func (r *Repository) GetByEmail(ctx context.Context, email string) ([]*domain.CandidateSlot, error) {
	return r.query(ctx, "GetByEmail", squirrel.Eq{"email": email})
}

// GetByEmailAndDate получает слоты кандидата на конкретную дату
// Внутри транзакции блокирует строки (FOR UPDATE) для проверки пересечений
func (r *Repository) GetByEmailAndDate(ctx context.Context, email string, date time.Time) ([]*domain.CandidateSlot, error) {
	executor := txmanager.GetExecutor(ctx, r.db)

	selectBuilder := psqlbuilder.Select(slotColumns...).
		From("candidate_slots").
		Where(squirrel.Eq{"email": email, "slot_date": date}).
		OrderBy("time_from ASC")

	if txmanager.IsInTransaction(ctx) {
		selectBuilder = selectBuilder.Suffix("FOR UPDATE")
	}

	query, args, err := selectBuilder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetByEmailAndDate - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: GetByEmailAndDate - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	return scanSlots(rows)
}

// GetByDateRange получает слоты всех кандидатов в интервале дат [start, end]
// Используется при построении дашборда недели
func (r *Repository) GetByDateRange(ctx context.Context, start, end time.Time) ([]*domain.CandidateSlot, error) {
	return r.query(ctx, "GetByDateRange",
		squirrel.GtOrEq{"slot_date": start},
		squirrel.LtOrEq{"slot_date": end},
	)
}

// Update обновляет дату, границы и статус существующего слота
func (r *Repository) Update(ctx context.Context, slot *domain.CandidateSlot) (*domain.CandidateSlot, error) {
	executor := txmanager.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update("candidate_slots").
		Set("slot_date", slot.Date).
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

func (r *Repository) query(ctx context.Context, op string, conds ...squirrel.Sqlizer) ([]*domain.CandidateSlot, error) {
	executor := txmanager.GetExecutor(ctx, r.db)

	selectBuilder := psqlbuilder.Select(slotColumns...).
		From("candidate_slots").
		OrderBy("slot_date ASC, time_from ASC")

	for _, cond := range conds {
		selectBuilder = selectBuilder.Where(cond)
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

	return scanSlots(rows)
}

type rowScanner interface {
	Scan(dest ...interface{}) error
}

func scanSlotRow(row rowScanner) (*domain.CandidateSlot, error) {
	var slot domain.CandidateSlot
	var createdAt, updatedAt sql.NullTime

	err := row.Scan(
		&slot.ID,
		&slot.Email,
		&slot.Date,
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

func scanSlots(rows *sql.Rows) ([]*domain.CandidateSlot, error) {
	slots := make([]*domain.CandidateSlot, 0)

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
