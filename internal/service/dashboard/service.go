package dashboard

import (
	"context"
	"fmt"

	"github.com/m04kA/SMC-InterviewPlanning/internal/domain"
	"github.com/m04kA/SMC-InterviewPlanning/internal/service/dashboard/models"
)

// Service собирает недельный дашборд для координатора
type Service struct {
	interviewerSlotRepo InterviewerSlotRepository
	candidateSlotRepo   CandidateSlotRepository
	bookingRepo         BookingRepository
	weekClock           WeekClock
	logger              Logger
}

// NewService создает новый экземпляр сервиса дашборда
func NewService(
	interviewerSlotRepo InterviewerSlotRepository,
	candidateSlotRepo CandidateSlotRepository,
	bookingRepo BookingRepository,
	weekClock WeekClock,
	logger Logger,
) *Service {
	return &Service{
		interviewerSlotRepo: interviewerSlotRepo,
		candidateSlotRepo:   candidateSlotRepo,
		bookingRepo:         bookingRepo,
		weekClock:           weekClock,
		logger:              logger,
	}
}

// GetWeek возвращает дашборд на текущую или следующую неделю: на каждый
// рабочий день — слоты интервьюеров с идентификаторами бронирований,
// слоты кандидатов и отдельная карта бронирований по id
func (s *Service) GetWeek(ctx context.Context, weekNum int) (*models.DashboardResponse, error) {
	s.logger.Info("GetWeek: building dashboard for week=%d", weekNum)

	currentWeek := s.weekClock.CurrentWeekNumber()
	nextWeek := s.weekClock.NextWeekNumber()
	if weekNum != currentWeek && weekNum != nextWeek {
		s.logger.Warn("GetWeek: week=%d rejected (current=%d, next=%d)", weekNum, currentWeek, nextWeek)
		return nil, fmt.Errorf("%w: week %d", ErrWeekNumberNotAllowed, weekNum)
	}

	interviewerSlots, err := s.interviewerSlotRepo.GetByWeek(ctx, weekNum)
	if err != nil {
		s.logger.Error("GetWeek: failed to fetch interviewer slots for week=%d: %v", weekNum, err)
		return nil, fmt.Errorf("%w: GetWeek - repository error: %v", ErrInternal, err)
	}

	weekStart := s.weekClock.DateFor(weekNum, domain.Monday)
	weekEnd := s.weekClock.DateFor(weekNum, domain.Friday)

	candidateSlots, err := s.candidateSlotRepo.GetByDateRange(ctx, weekStart, weekEnd)
	if err != nil {
		s.logger.Error("GetWeek: failed to fetch candidate slots for week=%d: %v", weekNum, err)
		return nil, fmt.Errorf("%w: GetWeek - repository error: %v", ErrInternal, err)
	}

	slotIDs := make([]int64, 0, len(interviewerSlots))
	for _, slot := range interviewerSlots {
		slotIDs = append(slotIDs, slot.ID)
	}

	var bookings []*domain.Booking
	if len(slotIDs) > 0 {
		bookings, err = s.bookingRepo.GetByInterviewerSlotIDs(ctx, slotIDs)
		if err != nil {
			s.logger.Error("GetWeek: failed to fetch bookings for week=%d: %v", weekNum, err)
			return nil, fmt.Errorf("%w: GetWeek - repository error: %v", ErrInternal, err)
		}
	}

	bookingIDsBySlot := make(map[int64][]int64, len(interviewerSlots))
	bookingsByID := make(map[int64]models.BookingView, len(bookings))
	for _, b := range bookings {
		bookingIDsBySlot[b.InterviewerSlotID] = append(bookingIDsBySlot[b.InterviewerSlotID], b.ID)
		bookingsByID[b.ID] = models.FromDomainBooking(b)
	}

	interviewerByDay := make(map[domain.Weekday][]models.InterviewerSlotView)
	for _, slot := range interviewerSlots {
		interviewerByDay[slot.DayOfWeek] = append(interviewerByDay[slot.DayOfWeek],
			models.FromDomainInterviewerSlot(slot, bookingIDsBySlot[slot.ID]))
	}

	candidateByDay := make(map[domain.Weekday][]models.CandidateSlotView)
	for _, slot := range candidateSlots {
		day, err := domain.WeekdayFromDate(slot.Date)
		if err != nil {
			// Выходные в хранилище не попадают, но пропуск безопаснее падения
			s.logger.Warn("GetWeek: candidate slot id=%d falls on a weekend, skipped", slot.ID)
			continue
		}
		candidateByDay[day] = append(candidateByDay[day], models.FromDomainCandidateSlot(slot))
	}

	resp := &models.DashboardResponse{
		WeekNum:  weekNum,
		Days:     make([]models.DayDashboard, 0, len(domain.Weekdays())),
		Bookings: bookingsByID,
	}

	for _, day := range domain.Weekdays() {
		interviewer := interviewerByDay[day]
		if interviewer == nil {
			interviewer = []models.InterviewerSlotView{}
		}
		candidate := candidateByDay[day]
		if candidate == nil {
			candidate = []models.CandidateSlotView{}
		}

		resp.Days = append(resp.Days, models.DayDashboard{
			DayOfWeek:        string(day),
			Date:             s.weekClock.DateFor(weekNum, day).Format(domain.DateFormat),
			InterviewerSlots: interviewer,
			CandidateSlots:   candidate,
		})
	}

	return resp, nil
}
