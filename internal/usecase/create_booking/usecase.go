package create_booking

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

// UseCase use case для создания бронирования интервью
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

// Execute выполняет use case создания бронирования
// Все проверки и вставка идут в сериализуемой транзакции, чтобы два
// конкурентных бронирования одного слота не прошли валидацию одновременно
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("CreateBooking: interviewerSlot=%d, candidateSlot=%d, time=[%s - %s]",
		req.InterviewerSlotID, req.CandidateSlotID, req.StartTime, req.EndTime)

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("CreateBooking: validation failed: %v", err)
		return nil, err
	}

	// Переменная для хранения результата
	var result *domain.Booking

	err := uc.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		// 2. Получаем оба слота
		interviewerSlot, err := uc.interviewerSlotRepo.GetByID(txCtx, req.InterviewerSlotID)
		if err != nil {
			if errors.Is(err, interviewerRepo.ErrSlotNotFound) {
				uc.logger.Warn("CreateBooking: interviewer slot id=%d not found", req.InterviewerSlotID)
				return ErrInterviewerSlotNotFound
			}
			uc.logger.Error("CreateBooking: failed to get interviewer slot id=%d: %v", req.InterviewerSlotID, err)
			return fmt.Errorf("%w: failed to get interviewer slot: %v", ErrInternal, err)
		}

		candidateSlot, err := uc.candidateSlotRepo.GetByID(txCtx, req.CandidateSlotID)
		if err != nil {
			if errors.Is(err, candidateRepo.ErrSlotNotFound) {
				uc.logger.Warn("CreateBooking: candidate slot id=%d not found", req.CandidateSlotID)
				return ErrCandidateSlotNotFound
			}
			uc.logger.Error("CreateBooking: failed to get candidate slot id=%d: %v", req.CandidateSlotID, err)
			return fmt.Errorf("%w: failed to get candidate slot: %v", ErrInternal, err)
		}

		// 3. Проверяем недельный лимит интервьюера
		if err := uc.checkWeeklyLimit(txCtx, interviewerSlot.Email); err != nil {
			return err
		}

		// 4. Проверяем, что на слотах нет бронирования с таким же интервалом
		if err := uc.checkDuplicateRange(txCtx, req, 0); err != nil {
			return err
		}

		// 5. Валидируем границы: округление, порядок, точная длительность,
		// рабочие часы
		if err := uc.validator.ValidateBookingBoundaries(req.StartTime, req.EndTime); err != nil {
			uc.logger.Warn("CreateBooking: boundary validation failed: %v", err)
			return err
		}

		// 6. Интервал должен целиком лежать внутри обоих слотов
		if err := validateInsideSlots(req, interviewerSlot, candidateSlot); err != nil {
			uc.logger.Warn("CreateBooking: %v", err)
			return err
		}

		// 7. Проверяем длину темы и описания
		if err := validateSubjectAndDescription(req.Subject, req.Description, uc.maxSubjectLen, uc.maxDescriptionLen); err != nil {
			uc.logger.Warn("CreateBooking: %v", err)
			return err
		}

		// 8. Сохраняем бронирование
		created, err := uc.bookingRepo.Create(txCtx, &domain.Booking{
			InterviewerSlotID: req.InterviewerSlotID,
			CandidateSlotID:   req.CandidateSlotID,
			StartTime:         req.StartTime,
			EndTime:           req.EndTime,
			Subject:           req.Subject,
			Description:       req.Description,
		})
		if err != nil {
			if errors.Is(err, bookingRepo.ErrBookingAlreadyExists) {
				uc.logger.Warn("CreateBooking: duplicate booking range [%s - %s]", req.StartTime, req.EndTime)
				return ErrBookingAlreadyExists
			}
			uc.logger.Error("CreateBooking: failed to create booking: %v", err)
			return fmt.Errorf("%w: failed to create booking: %v", ErrInternal, err)
		}

		result = created
		return nil
	})

	if err != nil {
		return nil, err
	}

	uc.logger.Info("CreateBooking: successfully created booking id=%d", result.ID)
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
		uc.logger.Error("CreateBooking: failed to get limit for interviewer=%s: %v", interviewerEmail, err)
		return fmt.Errorf("%w: failed to get booking limit: %v", ErrInternal, err)
	}

	count, err := uc.bookingRepo.CountByInterviewerAndWeek(ctx, interviewerEmail, currentWeek)
	if err != nil {
		uc.logger.Error("CreateBooking: failed to count bookings for interviewer=%s: %v", interviewerEmail, err)
		return fmt.Errorf("%w: failed to count bookings: %v", ErrInternal, err)
	}

	if count >= limit.MaxBookings {
		uc.logger.Warn("CreateBooking: interviewer=%s reached weekly limit %d/%d",
			interviewerEmail, count, limit.MaxBookings)
		return fmt.Errorf("%w: %d of %d on week %d", ErrBookingLimitExceeded, count, limit.MaxBookings, currentWeek)
	}

	return nil
}

// checkDuplicateRange ищет на обоих слотах бронирование с точно таким же
// интервалом. Бронирование с id == excludeID не учитывается
func (uc *UseCase) checkDuplicateRange(ctx context.Context, req *Request, excludeID int64) error {
	interviewerBookings, err := uc.bookingRepo.GetByInterviewerSlotID(ctx, req.InterviewerSlotID)
	if err != nil {
		uc.logger.Error("CreateBooking: failed to get bookings for interviewer slot id=%d: %v", req.InterviewerSlotID, err)
		return fmt.Errorf("%w: failed to get bookings: %v", ErrInternal, err)
	}

	if dup := findSameRange(interviewerBookings, req, excludeID); dup != nil {
		uc.logger.Warn("CreateBooking: interviewer slot id=%d already has booking id=%d with range [%s - %s]",
			req.InterviewerSlotID, dup.ID, req.StartTime, req.EndTime)
		return fmt.Errorf("%w: booking id=%d", ErrBookingAlreadyExists, dup.ID)
	}

	candidateBookings, err := uc.bookingRepo.GetByCandidateSlotID(ctx, req.CandidateSlotID)
	if err != nil {
		uc.logger.Error("CreateBooking: failed to get bookings for candidate slot id=%d: %v", req.CandidateSlotID, err)
		return fmt.Errorf("%w: failed to get bookings: %v", ErrInternal, err)
	}

	if dup := findSameRange(candidateBookings, req, excludeID); dup != nil {
		uc.logger.Warn("CreateBooking: candidate slot id=%d already has booking id=%d with range [%s - %s]",
			req.CandidateSlotID, dup.ID, req.StartTime, req.EndTime)
		return fmt.Errorf("%w: booking id=%d", ErrBookingAlreadyExists, dup.ID)
	}

	return nil
}
