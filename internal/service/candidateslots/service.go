package candidateslots

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/m04kA/SMC-InterviewPlanning/internal/domain"
	slotRepo "github.com/m04kA/SMC-InterviewPlanning/internal/infra/storage/candidateslot"
	"github.com/m04kA/SMC-InterviewPlanning/internal/service/candidateslots/models"
	"github.com/m04kA/SMC-InterviewPlanning/internal/service/timeslot"
	"github.com/m04kA/SMC-InterviewPlanning/pkg/types"
)

// Service сервис для работы со слотами доступности кандидатов
type Service struct {
	slotRepo  SlotRepository
	validator BoundaryValidator
	txManager TransactionManager
	clock     Clock
	logger    Logger
}

// NewService создает новый экземпляр сервиса слотов кандидатов
func NewService(
	slotRepo SlotRepository,
	validator BoundaryValidator,
	txManager TransactionManager,
	clock Clock,
	logger Logger,
) *Service {
	return &Service{
		slotRepo:  slotRepo,
		validator: validator,
		txManager: txManager,
		clock:     clock,
		logger:    logger,
	}
}

// Create создает слот доступности кандидата
// Проверка пересечений и вставка выполняются в сериализуемой транзакции,
// чтобы два конкурентных запроса не создали пересекающиеся слоты
func (s *Service) Create(ctx context.Context, req *models.CreateSlotRequest) (*models.SlotResponse, error) {
	s.logger.Info("Create: candidate=%s, date=%s, from=%s, to=%s",
		req.Email, req.Date.Format(domain.DateFormat), req.From, req.To)

	if err := s.validateRequest(req.Email, req.Date, req.From, req.To); err != nil {
		s.logger.Warn("Create: validation failed for candidate=%s: %v", req.Email, err)
		return nil, err
	}

	var result *domain.CandidateSlot

	err := s.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		if err := s.checkOverlap(txCtx, req.Email, req.Date, req.From, req.To, 0); err != nil {
			return err
		}

		created, err := s.slotRepo.Create(txCtx, &domain.CandidateSlot{
			Email:  req.Email,
			Date:   req.Date,
			From:   req.From,
			To:     req.To,
			Status: domain.StatusNew,
		})
		if err != nil {
			s.logger.Error("Create: failed to create slot for candidate=%s: %v", req.Email, err)
			return fmt.Errorf("%w: Create - repository error: %v", ErrInternal, err)
		}

		result = created
		return nil
	})

	if err != nil {
		return nil, err
	}

	s.logger.Info("Create: successfully created slot id=%d for candidate=%s", result.ID, req.Email)
	return models.FromDomainSlot(result), nil
}

// Update обновляет слот доступности кандидата
// Слот можно менять только его владельцу; пересечения проверяются без учета
// самого обновляемого слота
func (s *Service) Update(ctx context.Context, id int64, req *models.UpdateSlotRequest) (*models.SlotResponse, error) {
	s.logger.Info("Update: slot id=%d, candidate=%s, date=%s, from=%s, to=%s",
		id, req.Email, req.Date.Format(domain.DateFormat), req.From, req.To)

	if err := s.validateRequest(req.Email, req.Date, req.From, req.To); err != nil {
		s.logger.Warn("Update: validation failed for slot id=%d: %v", id, err)
		return nil, err
	}

	var result *domain.CandidateSlot

	err := s.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		slot, err := s.slotRepo.GetByID(txCtx, id)
		if err != nil {
			if errors.Is(err, slotRepo.ErrSlotNotFound) {
				s.logger.Warn("Update: slot id=%d not found", id)
				return ErrSlotNotFound
			}
			s.logger.Error("Update: repository error for slot id=%d: %v", id, err)
			return fmt.Errorf("%w: Update - repository error: %v", ErrInternal, err)
		}

		// Чужой слот для кандидата неотличим от несуществующего
		if slot.Email != req.Email {
			s.logger.Warn("Update: slot id=%d does not belong to candidate=%s", id, req.Email)
			return ErrSlotNotFound
		}

		if err := s.checkOverlap(txCtx, slot.Email, req.Date, req.From, req.To, id); err != nil {
			return err
		}

		slot.Date = req.Date
		slot.From = req.From
		slot.To = req.To
		slot.Status = domain.StatusChanged

		updated, err := s.slotRepo.Update(txCtx, slot)
		if err != nil {
			s.logger.Error("Update: failed to update slot id=%d: %v", id, err)
			return fmt.Errorf("%w: Update - repository error: %v", ErrInternal, err)
		}

		result = updated
		return nil
	})

	if err != nil {
		return nil, err
	}

	s.logger.Info("Update: successfully updated slot id=%d", id)
	return models.FromDomainSlot(result), nil
}

// List возвращает все слоты кандидата
func (s *Service) List(ctx context.Context, email string) (*models.SlotListResponse, error) {
	s.logger.Info("List: fetching slots for candidate=%s", email)

	slots, err := s.slotRepo.GetByEmail(ctx, email)
	if err != nil {
		s.logger.Error("List: repository error for candidate=%s: %v", email, err)
		return nil, fmt.Errorf("%w: List - repository error: %v", ErrInternal, err)
	}

	return models.FromDomainSlotList(slots), nil
}

// validateRequest проверяет дату и границы слота
// Дата должна быть рабочим днем и не в прошлом; границы проверяет валидатор
func (s *Service) validateRequest(email string, date time.Time, from, to types.TimeString) error {
	if email == "" {
		return fmt.Errorf("%w: email is required", ErrInvalidInput)
	}
	if date.IsZero() {
		return fmt.Errorf("%w: date is required", ErrInvalidInput)
	}

	if !domain.IsWorkingDay(date) || isDateInPast(date, s.clock.Now()) {
		return fmt.Errorf("%w: %s", ErrInvalidDayOfWeek, date.Format(domain.DateFormat))
	}

	return s.validator.ValidateSlotBoundaries(from, to)
}

func (s *Service) checkOverlap(ctx context.Context, email string, date time.Time, from, to types.TimeString, excludeID int64) error {
	existing, err := s.slotRepo.GetByEmailAndDate(ctx, email, date)
	if err != nil {
		s.logger.Error("checkOverlap: repository error for candidate=%s: %v", email, err)
		return fmt.Errorf("%w: checkOverlap - repository error: %v", ErrInternal, err)
	}

	if conflict := timeslot.FindCandidateConflict(existing, from, to, excludeID); conflict != nil {
		s.logger.Warn("checkOverlap: slot [%s - %s] overlaps slot id=%d for candidate=%s",
			from, to, conflict.ID, email)
		return fmt.Errorf("%w: conflicts with slot id=%d", timeslot.ErrSlotOverlapping, conflict.ID)
	}

	return nil
}

// isDateInPast проверяет, что дата раньше сегодняшнего дня
func isDateInPast(date, now time.Time) bool {
	dateOnly := time.Date(date.Year(), date.Month(), date.Day(), 0, 0, 0, 0, date.Location())
	nowOnly := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	return dateOnly.Before(nowOnly)
}
