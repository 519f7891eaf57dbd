package interviewerslots

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/SMC-InterviewPlanning/internal/domain"
	slotRepo "github.com/m04kA/SMC-InterviewPlanning/internal/infra/storage/interviewerslot"
	"github.com/m04kA/SMC-InterviewPlanning/internal/service/interviewerslots/models"
	"github.com/m04kA/SMC-InterviewPlanning/internal/service/timeslot"
	"github.com/m04kA/SMC-InterviewPlanning/pkg/types"
)

// Service сервис для работы со слотами интервьюеров и недельными лимитами
type Service struct {
	slotRepo    SlotRepository
	bookingRepo BookingRepository
	limitRepo   LimitRepository
	weekClock   WeekClock
	validator   BoundaryValidator
	txManager   TransactionManager
	logger      Logger
}

// NewService создает новый экземпляр сервиса слотов интервьюеров
func NewService(
	slotRepo SlotRepository,
	bookingRepo BookingRepository,
	limitRepo LimitRepository,
	weekClock WeekClock,
	validator BoundaryValidator,
	txManager TransactionManager,
	logger Logger,
) *Service {
	return &Service{
		slotRepo:    slotRepo,
		bookingRepo: bookingRepo,
		limitRepo:   limitRepo,
		weekClock:   weekClock,
		validator:   validator,
		txManager:   txManager,
		logger:      logger,
	}
}

// Create создает слот интервьюера на следующую неделю
// Интервьюер заранее открывает окна только на следующую неделю; при
// пропущенном To конец слота равен началу плюс длительность интервью
func (s *Service) Create(ctx context.Context, req *models.CreateSlotRequest) (*models.SlotResponse, error) {
	s.logger.Info("Create: interviewer=%s, week=%d, day=%s, from=%s",
		req.Email, req.WeekNum, req.DayOfWeek, req.From)

	if req.Email == "" {
		return nil, fmt.Errorf("%w: email is required", ErrInvalidInput)
	}
	if _, err := domain.ParseWeekday(string(req.DayOfWeek)); err != nil {
		return nil, fmt.Errorf("%w: day of week %q", ErrInvalidInput, req.DayOfWeek)
	}

	nextWeek := s.weekClock.NextWeekNumber()
	if req.WeekNum != nextWeek {
		s.logger.Warn("Create: week=%d rejected for interviewer=%s, only week=%d is open",
			req.WeekNum, req.Email, nextWeek)
		return nil, fmt.Errorf("%w: week %d, expected %d", ErrWeekNumberNotAllowed, req.WeekNum, nextWeek)
	}

	to, err := s.resolveTo(req.From, req.To)
	if err != nil {
		return nil, err
	}

	if err := s.validator.ValidateSlotBoundaries(req.From, to); err != nil {
		s.logger.Warn("Create: validation failed for interviewer=%s: %v", req.Email, err)
		return nil, err
	}

	var result *domain.InterviewerSlot

	err = s.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		existing, err := s.slotRepo.GetByEmailAndWeek(txCtx, req.Email, req.WeekNum)
		if err != nil {
			s.logger.Error("Create: repository error for interviewer=%s: %v", req.Email, err)
			return fmt.Errorf("%w: Create - repository error: %v", ErrInternal, err)
		}

		sameDay := filterByDay(existing, req.DayOfWeek)
		if conflict := timeslot.FindInterviewerConflict(sameDay, req.From, to, 0); conflict != nil {
			s.logger.Warn("Create: slot [%s - %s] overlaps slot id=%d for interviewer=%s",
				req.From, to, conflict.ID, req.Email)
			return fmt.Errorf("%w: conflicts with slot id=%d", timeslot.ErrSlotOverlapping, conflict.ID)
		}

		created, err := s.slotRepo.Create(txCtx, &domain.InterviewerSlot{
			Email:     req.Email,
			WeekNum:   req.WeekNum,
			DayOfWeek: req.DayOfWeek,
			From:      req.From,
			To:        to,
			Status:    domain.StatusNew,
		})
		if err != nil {
			s.logger.Error("Create: failed to create slot for interviewer=%s: %v", req.Email, err)
			return fmt.Errorf("%w: Create - repository error: %v", ErrInternal, err)
		}

		result = created
		return nil
	})

	if err != nil {
		return nil, err
	}

	s.logger.Info("Create: successfully created slot id=%d for interviewer=%s", result.ID, req.Email)
	return models.FromDomainSlot(result), nil
}

// Update обновляет слот интервьюера
// Интервьюеру доступна только следующая неделя, координатору — текущая и
// следующая. Чужой слот неотличим от несуществующего; вокруг остальных
// слотов действует 30-минутный буфер
func (s *Service) Update(ctx context.Context, id int64, req *models.UpdateSlotRequest) (*models.SlotResponse, error) {
	s.logger.Info("Update: slot id=%d, interviewer=%s, role=%s, week=%d, day=%s, from=%s, to=%s",
		id, req.Email, req.Role, req.WeekNum, req.DayOfWeek, req.From, req.To)

	if req.Email == "" {
		return nil, fmt.Errorf("%w: email is required", ErrInvalidInput)
	}
	if _, err := domain.ParseWeekday(string(req.DayOfWeek)); err != nil {
		return nil, fmt.Errorf("%w: day of week %q", ErrInvalidInput, req.DayOfWeek)
	}

	currentWeek := s.weekClock.CurrentWeekNumber()
	nextWeek := s.weekClock.NextWeekNumber()
	if !domain.WeekAllowed(req.Role, req.WeekNum, currentWeek, nextWeek) {
		s.logger.Warn("Update: week=%d rejected for role=%s (current=%d, next=%d)",
			req.WeekNum, req.Role, currentWeek, nextWeek)
		return nil, fmt.Errorf("%w: week %d is not open for role %s", ErrWeekNumberNotAllowed, req.WeekNum, req.Role)
	}

	if err := s.validator.ValidateSlotBoundaries(req.From, req.To); err != nil {
		s.logger.Warn("Update: validation failed for slot id=%d: %v", id, err)
		return nil, err
	}

	var result *domain.InterviewerSlot

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

		// Чужой слот для интервьюера неотличим от несуществующего;
		// координатор меняет слоты любого интервьюера
		if req.Role == domain.RoleInterviewer && slot.Email != req.Email {
			s.logger.Warn("Update: slot id=%d does not belong to interviewer=%s", id, req.Email)
			return ErrSlotNotFound
		}

		existing, err := s.slotRepo.GetByEmailAndWeek(txCtx, slot.Email, req.WeekNum)
		if err != nil {
			s.logger.Error("Update: repository error for interviewer=%s: %v", slot.Email, err)
			return fmt.Errorf("%w: Update - repository error: %v", ErrInternal, err)
		}

		sameDay := filterByDay(existing, req.DayOfWeek)
		if conflict := timeslot.FindInterviewerConflictWithBuffer(sameDay, req.From, req.To, id); conflict != nil {
			s.logger.Warn("Update: slot [%s - %s] violates buffer around slot id=%d for interviewer=%s",
				req.From, req.To, conflict.ID, slot.Email)
			return fmt.Errorf("%w: conflicts with slot id=%d", timeslot.ErrSlotOverlapping, conflict.ID)
		}

		slot.WeekNum = req.WeekNum
		slot.DayOfWeek = req.DayOfWeek
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

// List возвращает слоты интервьюера на текущую или следующую неделю
// вместе с привязанными к ним бронированиями
func (s *Service) List(ctx context.Context, email string, weekNum int) (*models.SlotListResponse, error) {
	s.logger.Info("List: interviewer=%s, week=%d", email, weekNum)

	currentWeek := s.weekClock.CurrentWeekNumber()
	nextWeek := s.weekClock.NextWeekNumber()
	if weekNum != currentWeek && weekNum != nextWeek {
		s.logger.Warn("List: week=%d rejected (current=%d, next=%d)", weekNum, currentWeek, nextWeek)
		return nil, fmt.Errorf("%w: week %d", ErrWeekNumberNotAllowed, weekNum)
	}

	slots, err := s.slotRepo.GetByEmailAndWeek(ctx, email, weekNum)
	if err != nil {
		s.logger.Error("List: repository error for interviewer=%s: %v", email, err)
		return nil, fmt.Errorf("%w: List - repository error: %v", ErrInternal, err)
	}

	slotIDs := make([]int64, 0, len(slots))
	for _, slot := range slots {
		slotIDs = append(slotIDs, slot.ID)
	}

	var bookings []*domain.Booking
	if len(slotIDs) > 0 {
		bookings, err = s.bookingRepo.GetByInterviewerSlotIDs(ctx, slotIDs)
		if err != nil {
			s.logger.Error("List: failed to fetch bookings for interviewer=%s: %v", email, err)
			return nil, fmt.Errorf("%w: List - repository error: %v", ErrInternal, err)
		}
	}

	bookingsBySlot := make(map[int64][]models.BookingResponse, len(slots))
	for _, b := range bookings {
		bookingsBySlot[b.InterviewerSlotID] = append(bookingsBySlot[b.InterviewerSlotID], models.FromDomainBooking(b))
	}

	resp := &models.SlotListResponse{
		WeekNum: weekNum,
		Slots:   make([]models.SlotWithBookings, 0, len(slots)),
	}
	for _, slot := range slots {
		resp.Slots = append(resp.Slots, models.SlotWithBookings{
			SlotResponse: *models.FromDomainSlot(slot),
			Bookings:     bookingsBySlot[slot.ID],
		})
	}

	return resp, nil
}

// SetLimit устанавливает максимум бронирований интервьюера на следующую неделю
// Повторный вызов перезаписывает прежнее значение
func (s *Service) SetLimit(ctx context.Context, req *models.SetLimitRequest) (*models.LimitResponse, error) {
	s.logger.Info("SetLimit: interviewer=%s, maxBookings=%d", req.Email, req.MaxBookings)

	if req.Email == "" {
		return nil, fmt.Errorf("%w: email is required", ErrInvalidInput)
	}
	if req.MaxBookings < 0 {
		s.logger.Warn("SetLimit: negative limit %d rejected for interviewer=%s", req.MaxBookings, req.Email)
		return nil, fmt.Errorf("%w: %d", ErrInvalidLimit, req.MaxBookings)
	}

	limit, err := s.limitRepo.Upsert(ctx, &domain.BookingLimit{
		InterviewerEmail: req.Email,
		WeekNum:          s.weekClock.NextWeekNumber(),
		MaxBookings:      req.MaxBookings,
	})
	if err != nil {
		s.logger.Error("SetLimit: repository error for interviewer=%s: %v", req.Email, err)
		return nil, fmt.Errorf("%w: SetLimit - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("SetLimit: limit=%d set for interviewer=%s on week=%d",
		limit.MaxBookings, limit.InterviewerEmail, limit.WeekNum)
	return models.FromDomainLimit(limit), nil
}

// resolveTo возвращает конец слота: явный To либо From плюс длительность интервью
func (s *Service) resolveTo(from types.TimeString, to *types.TimeString) (types.TimeString, error) {
	if to != nil {
		return *to, nil
	}

	resolved, err := from.AddMinutes(s.validator.InterviewDuration())
	if err != nil {
		return "", fmt.Errorf("%w: cannot derive slot end from %s: %v", ErrInvalidInput, from, err)
	}
	return resolved, nil
}

func filterByDay(slots []*domain.InterviewerSlot, day domain.Weekday) []*domain.InterviewerSlot {
	filtered := make([]*domain.InterviewerSlot, 0, len(slots))
	for _, slot := range slots {
		if slot.DayOfWeek == day {
			filtered = append(filtered, slot)
		}
	}
	return filtered
}
