package update_booking

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/SMC-InterviewPlanning/internal/domain"
	bookingRepo "github.com/m04kA/SMC-InterviewPlanning/internal/infra/storage/booking"
	limitRepoPkg "github.com/m04kA/SMC-InterviewPlanning/internal/infra/storage/bookinglimit"
	candidateRepo "github.com/m04kA/SMC-InterviewPlanning/internal/infra/storage/candidateslot"
	interviewerRepo "github.com/m04kA/SMC-InterviewPlanning/internal/infra/storage/interviewerslot"
)

// UseCase use case для обновления бронирования интервью
type UseCase struct {
	interviewerSlotRepo InterviewerSlotRepository
	candidateSlotRepo   CandidateSlotRepository
	bookingRepo         BookingRepository
	limitRepo           LimitRepository
	weekClock           WeekClock
	validator           BoundaryValidator
	txManager           TransactionManager
	logger              Logger

	maxSubjectLen     int
	maxDescriptionLen int
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	interviewerSlotRepo InterviewerSlotRepository,
	candidateSlotRepo CandidateSlotRepository,
	bookingRepo BookingRepository,
	limitRepo LimitRepository,
	weekClock WeekClock,
	validator BoundaryValidator,
	txManager TransactionManager,
	logger Logger,
	maxSubjectLen int,
	maxDescriptionLen int,
) *UseCase {
	return &UseCase{
		interviewerSlotRepo: interviewerSlotRepo,
		candidateSlotRepo:   candidateSlotRepo,
		bookingRepo:         bookingRepo,
		limitRepo:           limitRepo,
		weekClock:           weekClock,
		validator:           validator,
		txManager:           txManager,
		logger:              logger,
		maxSubjectLen:       maxSubjectLen,
		maxDescriptionLen:   maxDescriptionLen,
	}
}

// Execute выполняет use case обновления бронирования
// Прогоняет проверки создания, исключая само обновляемое бронирование;
// перенос строже создания: новый интервал не должен пересекаться с
// соседними бронированиями. Частичное применение изменений невозможно
func (uc *UseCase) Execute(ctx context.Context, id int64, req *Request) (*Response, error) {
	uc.logger.Info("UpdateBooking: id=%d, interviewerSlot=%d, candidateSlot=%d, time=[%s - %s]",
		id, req.InterviewerSlotID, req.CandidateSlotID, req.StartTime, req.EndTime)

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("UpdateBooking: validation failed: %v", err)
		return nil, err
	}

	// Переменная для хранения результата
	var result *domain.Booking

	err := uc.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		// 2. Получаем обновляемое бронирование
		booking, err := uc.bookingRepo.GetByID(txCtx, id)
		if err != nil {
			if errors.Is(err, bookingRepo.ErrBookingNotFound) {
				uc.logger.Warn("UpdateBooking: booking id=%d not found", id)
				return ErrBookingNotFound
			}
			uc.logger.Error("UpdateBooking: failed to get booking id=%d: %v", id, err)
			return fmt.Errorf("%w: failed to get booking: %v", ErrInternal, err)
		}

		// 3. Получаем оба слота
		interviewerSlot, err := uc.interviewerSlotRepo.GetByID(txCtx, req.InterviewerSlotID)
		if err != nil {
			if errors.Is(err, interviewerRepo.ErrSlotNotFound) {
				uc.logger.Warn("UpdateBooking: interviewer slot id=%d not found", req.InterviewerSlotID)
				return ErrInterviewerSlotNotFound
			}
			uc.logger.Error("UpdateBooking: failed to get interviewer slot id=%d: %v", req.InterviewerSlotID, err)
			return fmt.Errorf("%w: failed to get interviewer slot: %v", ErrInternal, err)
		}

		candidateSlot, err := uc.candidateSlotRepo.GetByID(txCtx, req.CandidateSlotID)
		if err != nil {
			if errors.Is(err, candidateRepo.ErrSlotNotFound) {
				uc.logger.Warn("UpdateBooking: candidate slot id=%d not found", req.CandidateSlotID)
				return ErrCandidateSlotNotFound
			}
			uc.logger.Error("UpdateBooking: failed to get candidate slot id=%d: %v", req.CandidateSlotID, err)
			return fmt.Errorf("%w: failed to get candidate slot: %v", ErrInternal, err)
		}

		// 4. Лимит проверяем только при переносе на слот другого интервьюера:
		// существующее бронирование в своем счетчике уже учтено
		if booking.InterviewerSlotID != req.InterviewerSlotID {
			if err := uc.checkWeeklyLimit(txCtx, interviewerSlot.Email); err != nil {
				return err
			}
		}

		// 5. Проверяем, что новый интервал не пересекается с другими
		// бронированиями на обоих слотах
		if err := uc.checkIntersectingRange(txCtx, req, booking.ID); err != nil {
			return err
		}

		// 6. Валидируем границы: округление, порядок, точная длительность,
		// рабочие часы
		if err := uc.validator.ValidateBookingBoundaries(req.StartTime, req.EndTime); err != nil {
			uc.logger.Warn("UpdateBooking: boundary validation failed: %v", err)
			return err
		}

		// 7. Интервал должен целиком лежать внутри обоих слотов
		if err := validateInsideSlots(req, interviewerSlot, candidateSlot); err != nil {
			uc.logger.Warn("UpdateBooking: %v", err)
			return err
		}

		// 8. Проверяем длину темы и описания
		if err := validateSubjectAndDescription(req.Subject, req.Description, uc.maxSubjectLen, uc.maxDescriptionLen); err != nil {
			uc.logger.Warn("UpdateBooking: %v", err)
			return err
		}

		// 9. Сохраняем обновленное бронирование
		booking.InterviewerSlotID = req.InterviewerSlotID
		booking.CandidateSlotID = req.CandidateSlotID
		booking.StartTime = req.StartTime
		booking.EndTime = req.EndTime
		booking.Subject = req.Subject
		booking.Description = req.Description

		updated, err := uc.bookingRepo.Update(txCtx, booking)
		if err != nil {
			uc.logger.Error("UpdateBooking: failed to update booking id=%d: %v", id, err)
			return fmt.Errorf("%w: failed to update booking: %v", ErrInternal, err)
		}

		result = updated
		return nil
	})

	if err != nil {
		return nil, err
	}

	uc.logger.Info("UpdateBooking: successfully updated booking id=%d", id)
	return toResponse(result), nil
}

// checkWeeklyLimit сравнивает число бронирований интервьюера на текущей
// неделе с установленным лимитом. Отсутствие лимита означает, что
// ограничения нет
func (uc *UseCase) checkWeeklyLimit(ctx context.Context, interviewerEmail string) error {
	currentWeek := uc.weekClock.CurrentWeekNumber()

	limit, err := uc.limitRepo.GetByEmailAndWeek(ctx, interviewerEmail, currentWeek)
	if err != nil {
		if errors.Is(err, limitRepoPkg.ErrLimitNotFound) {
			return nil
		}
		uc.logger.Error("UpdateBooking: failed to get limit for interviewer=%s: %v", interviewerEmail, err)
		return fmt.Errorf("%w: failed to get booking limit: %v", ErrInternal, err)
	}

	count, err := uc.bookingRepo.CountByInterviewerAndWeek(ctx, interviewerEmail, currentWeek)
	if err != nil {
		uc.logger.Error("UpdateBooking: failed to count bookings for interviewer=%s: %v", interviewerEmail, err)
		return fmt.Errorf("%w: failed to count bookings: %v", ErrInternal, err)
	}

	if count >= limit.MaxBookings {
		uc.logger.Warn("UpdateBooking: interviewer=%s reached weekly limit %d/%d",
			interviewerEmail, count, limit.MaxBookings)
		return fmt.Errorf("%w: %d of %d on week %d", ErrBookingLimitExceeded, count, limit.MaxBookings, currentWeek)
	}

	return nil
}

// checkIntersectingRange ищет на обоих слотах другое бронирование,
// пересекающееся с новым интервалом. При создании достаточно запрета
// точного дубля, при переносе пересечение с соседями недопустимо
func (uc *UseCase) checkIntersectingRange(ctx context.Context, req *Request, excludeID int64) error {
	interviewerBookings, err := uc.bookingRepo.GetByInterviewerSlotID(ctx, req.InterviewerSlotID)
	if err != nil {
		uc.logger.Error("UpdateBooking: failed to get bookings for interviewer slot id=%d: %v", req.InterviewerSlotID, err)
		return fmt.Errorf("%w: failed to get bookings: %v", ErrInternal, err)
	}

	if conflict := findIntersecting(interviewerBookings, req, excludeID); conflict != nil {
		uc.logger.Warn("UpdateBooking: interviewer slot id=%d has booking id=%d intersecting [%s - %s]",
			req.InterviewerSlotID, conflict.ID, req.StartTime, req.EndTime)
		return fmt.Errorf("%w: intersects booking id=%d", ErrBookingAlreadyExists, conflict.ID)
	}

	candidateBookings, err := uc.bookingRepo.GetByCandidateSlotID(ctx, req.CandidateSlotID)
	if err != nil {
		uc.logger.Error("UpdateBooking: failed to get bookings for candidate slot id=%d: %v", req.CandidateSlotID, err)
		return fmt.Errorf("%w: failed to get bookings: %v", ErrInternal, err)
	}

	if conflict := findIntersecting(candidateBookings, req, excludeID); conflict != nil {
		uc.logger.Warn("UpdateBooking: candidate slot id=%d has booking id=%d intersecting [%s - %s]",
			req.CandidateSlotID, conflict.ID, req.StartTime, req.EndTime)
		return fmt.Errorf("%w: intersects booking id=%d", ErrBookingAlreadyExists, conflict.ID)
	}

	return nil
}
