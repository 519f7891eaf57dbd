package create_booking

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-InterviewPlanning/internal/domain"
	limitRepoPkg "github.com/m04kA/SMC-InterviewPlanning/internal/infra/storage/bookinglimit"
	candidateRepo "github.com/m04kA/SMC-InterviewPlanning/internal/infra/storage/candidateslot"
	interviewerRepo "github.com/m04kA/SMC-InterviewPlanning/internal/infra/storage/interviewerslot"
	"github.com/m04kA/SMC-InterviewPlanning/internal/service/timeslot"
)

// Тестовые фейки

type fakeInterviewerSlotRepo struct {
	getByIDFn func(ctx context.Context, id int64) (*domain.InterviewerSlot, error)
}

func (f *fakeInterviewerSlotRepo) GetByID(ctx context.Context, id int64) (*domain.InterviewerSlot, error) {
	return f.getByIDFn(ctx, id)
}

type fakeCandidateSlotRepo struct {
	getByIDFn func(ctx context.Context, id int64) (*domain.CandidateSlot, error)
}

func (f *fakeCandidateSlotRepo) GetByID(ctx context.Context, id int64) (*domain.CandidateSlot, error) {
	return f.getByIDFn(ctx, id)
}

type fakeBookingRepo struct {
	createFn                    func(ctx context.Context, booking *domain.Booking) (*domain.Booking, error)
	getByInterviewerSlotIDFn    func(ctx context.Context, slotID int64) ([]*domain.Booking, error)
	getByCandidateSlotIDFn      func(ctx context.Context, slotID int64) ([]*domain.Booking, error)
	countByInterviewerAndWeekFn func(ctx context.Context, email string, weekNum int) (int, error)
}

func (f *fakeBookingRepo) Create(ctx context.Context, booking *domain.Booking) (*domain.Booking, error) {
	return f.createFn(ctx, booking)
}

func (f *fakeBookingRepo) GetByInterviewerSlotID(ctx context.Context, slotID int64) ([]*domain.Booking, error) {
	if f.getByInterviewerSlotIDFn == nil {
		return nil, nil
	}
	return f.getByInterviewerSlotIDFn(ctx, slotID)
}

func (f *fakeBookingRepo) GetByCandidateSlotID(ctx context.Context, slotID int64) ([]*domain.Booking, error) {
	if f.getByCandidateSlotIDFn == nil {
		return nil, nil
	}
	return f.getByCandidateSlotIDFn(ctx, slotID)
}

func (f *fakeBookingRepo) CountByInterviewerAndWeek(ctx context.Context, email string, weekNum int) (int, error) {
	return f.countByInterviewerAndWeekFn(ctx, email, weekNum)
}

type fakeLimitRepo struct {
	getByEmailAndWeekFn func(ctx context.Context, email string, weekNum int) (*domain.BookingLimit, error)
}

func (f *fakeLimitRepo) GetByEmailAndWeek(ctx context.Context, email string, weekNum int) (*domain.BookingLimit, error) {
	return f.getByEmailAndWeekFn(ctx, email, weekNum)
}

type fakeWeekClock struct{}

func (fakeWeekClock) CurrentWeekNumber() int { return 50 }

type fakeTxManager struct{}

func (fakeTxManager) DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}

type nopLogger struct{}

func (nopLogger) Info(format string, v ...interface{})  {}
func (nopLogger) Warn(format string, v ...interface{})  {}
func (nopLogger) Error(format string, v ...interface{}) {}

// Слоты по умолчанию: интервьюер 10:00-11:30, кандидат 09:00-13:00

func defaultInterviewerSlot() *domain.InterviewerSlot {
	return &domain.InterviewerSlot{
		ID:        1,
		Email:     "interviewer@example.com",
		WeekNum:   50,
		DayOfWeek: domain.Friday,
		From:      "10:00",
		To:        "11:30",
		Status:    domain.StatusNew,
	}
}

func defaultCandidateSlot() *domain.CandidateSlot {
	return &domain.CandidateSlot{
		ID:     2,
		Email:  "candidate@example.com",
		Date:   time.Date(2022, 12, 16, 0, 0, 0, 0, time.UTC),
		From:   "09:00",
		To:     "13:00",
		Status: domain.StatusNew,
	}
}

type fakes struct {
	interviewerSlotRepo *fakeInterviewerSlotRepo
	candidateSlotRepo   *fakeCandidateSlotRepo
	bookingRepo         *fakeBookingRepo
	limitRepo           *fakeLimitRepo
}

func defaultFakes() fakes {
	return fakes{
		interviewerSlotRepo: &fakeInterviewerSlotRepo{
			getByIDFn: func(ctx context.Context, id int64) (*domain.InterviewerSlot, error) {
				return defaultInterviewerSlot(), nil
			},
		},
		candidateSlotRepo: &fakeCandidateSlotRepo{
			getByIDFn: func(ctx context.Context, id int64) (*domain.CandidateSlot, error) {
				return defaultCandidateSlot(), nil
			},
		},
		bookingRepo: &fakeBookingRepo{
			createFn: func(ctx context.Context, booking *domain.Booking) (*domain.Booking, error) {
				booking.ID = 100
				return booking, nil
			},
		},
		limitRepo: &fakeLimitRepo{
			getByEmailAndWeekFn: func(ctx context.Context, email string, weekNum int) (*domain.BookingLimit, error) {
				return nil, limitRepoPkg.ErrLimitNotFound
			},
		},
	}
}

func newTestUseCase(f fakes) *UseCase {
	return NewUseCase(
		f.interviewerSlotRepo,
		f.candidateSlotRepo,
		f.bookingRepo,
		f.limitRepo,
		fakeWeekClock{},
		timeslot.NewValidator(90, "08:00", "22:00"),
		fakeTxManager{},
		nopLogger{},
		100,
		500,
	)
}

func defaultRequest() *Request {
	return &Request{
		InterviewerSlotID: 1,
		CandidateSlotID:   2,
		StartTime:         "10:00",
		EndTime:           "11:30",
		Subject:           "Go interview",
		Description:       "Backend position",
	}
}

func TestUseCase_Execute(t *testing.T) {
	uc := newTestUseCase(defaultFakes())

	resp, err := uc.Execute(context.Background(), defaultRequest())

	require.NoError(t, err)
	assert.Equal(t, int64(100), resp.ID)
	assert.Equal(t, int64(1), resp.InterviewerSlotID)
	assert.Equal(t, int64(2), resp.CandidateSlotID)
}

func TestUseCase_Execute_InterviewerSlotNotFound(t *testing.T) {
	f := defaultFakes()
	f.interviewerSlotRepo.getByIDFn = func(ctx context.Context, id int64) (*domain.InterviewerSlot, error) {
		return nil, interviewerRepo.ErrSlotNotFound
	}
	uc := newTestUseCase(f)

	_, err := uc.Execute(context.Background(), defaultRequest())

	assert.ErrorIs(t, err, ErrInterviewerSlotNotFound)
}

func TestUseCase_Execute_CandidateSlotNotFound(t *testing.T) {
	f := defaultFakes()
	f.candidateSlotRepo.getByIDFn = func(ctx context.Context, id int64) (*domain.CandidateSlot, error) {
		return nil, candidateRepo.ErrSlotNotFound
	}
	uc := newTestUseCase(f)

	_, err := uc.Execute(context.Background(), defaultRequest())

	assert.ErrorIs(t, err, ErrCandidateSlotNotFound)
}

func TestUseCase_Execute_WeeklyLimitExceeded(t *testing.T) {
	f := defaultFakes()
	f.limitRepo.getByEmailAndWeekFn = func(ctx context.Context, email string, weekNum int) (*domain.BookingLimit, error) {
		return &domain.BookingLimit{InterviewerEmail: email, WeekNum: weekNum, MaxBookings: 2}, nil
	}
	f.bookingRepo.countByInterviewerAndWeekFn = func(ctx context.Context, email string, weekNum int) (int, error) {
		return 2, nil
	}
	uc := newTestUseCase(f)

	_, err := uc.Execute(context.Background(), defaultRequest())

	assert.ErrorIs(t, err, ErrBookingLimitExceeded)
}

func TestUseCase_Execute_UnderWeeklyLimit(t *testing.T) {
	f := defaultFakes()
	f.limitRepo.getByEmailAndWeekFn = func(ctx context.Context, email string, weekNum int) (*domain.BookingLimit, error) {
		return &domain.BookingLimit{InterviewerEmail: email, WeekNum: weekNum, MaxBookings: 2}, nil
	}
	f.bookingRepo.countByInterviewerAndWeekFn = func(ctx context.Context, email string, weekNum int) (int, error) {
		return 1, nil
	}
	uc := newTestUseCase(f)

	_, err := uc.Execute(context.Background(), defaultRequest())

	assert.NoError(t, err)
}

func TestUseCase_Execute_DuplicateRange(t *testing.T) {
	f := defaultFakes()
	f.bookingRepo.getByInterviewerSlotIDFn = func(ctx context.Context, slotID int64) ([]*domain.Booking, error) {
		return []*domain.Booking{
			{ID: 99, InterviewerSlotID: slotID, StartTime: "10:00", EndTime: "11:30"},
		}, nil
	}
	uc := newTestUseCase(f)

	_, err := uc.Execute(context.Background(), defaultRequest())

	assert.ErrorIs(t, err, ErrBookingAlreadyExists)
}

func TestUseCase_Execute_OutOfSlotRange(t *testing.T) {
	uc := newTestUseCase(defaultFakes())

	// Интервал 12:00-13:30 лежит вне слота интервьюера 10:00-11:30
	req := defaultRequest()
	req.StartTime = "12:00"
	req.EndTime = "13:30"

	_, err := uc.Execute(context.Background(), req)

	assert.ErrorIs(t, err, ErrOutOfSlotRange)
}

func TestUseCase_Execute_WrongDuration(t *testing.T) {
	uc := newTestUseCase(defaultFakes())

	// Интервью длится ровно полтора часа
	req := defaultRequest()
	req.EndTime = "11:00"

	_, err := uc.Execute(context.Background(), req)

	assert.ErrorIs(t, err, timeslot.ErrInvalidBoundaries)
}

func TestUseCase_Execute_SubjectTooLong(t *testing.T) {
	uc := newTestUseCase(defaultFakes())

	req := defaultRequest()
	req.Subject = strings.Repeat("a", 101)

	_, err := uc.Execute(context.Background(), req)

	assert.ErrorIs(t, err, ErrValidationFailed)
}

func TestUseCase_Execute_InvalidInput(t *testing.T) {
	uc := newTestUseCase(defaultFakes())

	tests := []struct {
		name   string
		mutate func(req *Request)
	}{
		{name: "zero interviewer slot id", mutate: func(req *Request) { req.InterviewerSlotID = 0 }},
		{name: "zero candidate slot id", mutate: func(req *Request) { req.CandidateSlotID = 0 }},
		{name: "empty start time", mutate: func(req *Request) { req.StartTime = "" }},
		{name: "malformed end time", mutate: func(req *Request) { req.EndTime = "25:00" }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := defaultRequest()
			tt.mutate(req)

			_, err := uc.Execute(context.Background(), req)

			assert.ErrorIs(t, err, ErrInvalidInput)
		})
	}
}
