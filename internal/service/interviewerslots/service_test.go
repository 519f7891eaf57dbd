package interviewerslots

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-InterviewPlanning/internal/domain"
	"github.com/m04kA/SMC-InterviewPlanning/internal/service/interviewerslots/models"
	"github.com/m04kA/SMC-InterviewPlanning/internal/service/timeslot"
	"github.com/m04kA/SMC-InterviewPlanning/pkg/ptr"
	"github.com/m04kA/SMC-InterviewPlanning/pkg/types"
)

// Тестовые фейки

type fakeSlotRepo struct {
	createFn            func(ctx context.Context, slot *domain.InterviewerSlot) (*domain.InterviewerSlot, error)
	getByIDFn           func(ctx context.Context, id int64) (*domain.InterviewerSlot, error)
	getByEmailAndWeekFn func(ctx context.Context, email string, weekNum int) ([]*domain.InterviewerSlot, error)
	updateFn            func(ctx context.Context, slot *domain.InterviewerSlot) (*domain.InterviewerSlot, error)
}

func (f *fakeSlotRepo) Create(ctx context.Context, slot *domain.InterviewerSlot) (*domain.InterviewerSlot, error) {
	return f.createFn(ctx, slot)
}

func (f *fakeSlotRepo) GetByID(ctx context.Context, id int64) (*domain.InterviewerSlot, error) {
	return f.getByIDFn(ctx, id)
}

func (f *fakeSlotRepo) GetByEmailAndWeek(ctx context.Context, email string, weekNum int) ([]*domain.InterviewerSlot, error) {
	return f.getByEmailAndWeekFn(ctx, email, weekNum)
}

func (f *fakeSlotRepo) Update(ctx context.Context, slot *domain.InterviewerSlot) (*domain.InterviewerSlot, error) {
	return f.updateFn(ctx, slot)
}

type fakeBookingRepo struct {
	getByInterviewerSlotIDsFn func(ctx context.Context, slotIDs []int64) ([]*domain.Booking, error)
}

func (f *fakeBookingRepo) GetByInterviewerSlotIDs(ctx context.Context, slotIDs []int64) ([]*domain.Booking, error) {
	return f.getByInterviewerSlotIDsFn(ctx, slotIDs)
}

type fakeLimitRepo struct {
	upsertFn func(ctx context.Context, limit *domain.BookingLimit) (*domain.BookingLimit, error)
}

func (f *fakeLimitRepo) Upsert(ctx context.Context, limit *domain.BookingLimit) (*domain.BookingLimit, error) {
	return f.upsertFn(ctx, limit)
}

// fakeWeekClock фиксирует текущую неделю 50
type fakeWeekClock struct{}

func (fakeWeekClock) CurrentWeekNumber() int { return 50 }
func (fakeWeekClock) NextWeekNumber() int    { return 51 }

type fakeTxManager struct{}

func (fakeTxManager) DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}

type nopLogger struct{}

func (nopLogger) Info(format string, v ...interface{})  {}
func (nopLogger) Warn(format string, v ...interface{})  {}
func (nopLogger) Error(format string, v ...interface{}) {}

func newTestService(slotRepo *fakeSlotRepo, bookingRepo *fakeBookingRepo, limitRepo *fakeLimitRepo) *Service {
	return NewService(
		slotRepo,
		bookingRepo,
		limitRepo,
		fakeWeekClock{},
		timeslot.NewValidator(90, "08:00", "22:00"),
		fakeTxManager{},
		nopLogger{},
	)
}

func TestService_Create(t *testing.T) {
	repo := &fakeSlotRepo{
		getByEmailAndWeekFn: func(ctx context.Context, email string, weekNum int) ([]*domain.InterviewerSlot, error) {
			return nil, nil
		},
		createFn: func(ctx context.Context, slot *domain.InterviewerSlot) (*domain.InterviewerSlot, error) {
			slot.ID = 1
			return slot, nil
		},
	}
	svc := newTestService(repo, &fakeBookingRepo{}, &fakeLimitRepo{})

	resp, err := svc.Create(context.Background(), &models.CreateSlotRequest{
		Email:     "interviewer@example.com",
		WeekNum:   51,
		DayOfWeek: domain.Monday,
		From:      "09:00",
		To:        ptr.Ptr(types.TimeString("17:00")),
	})

	require.NoError(t, err)
	assert.Equal(t, int64(1), resp.ID)
	assert.Equal(t, 51, resp.WeekNum)
	assert.Equal(t, "NEW", resp.Status)
}

func TestService_Create_DefaultsToInterviewDuration(t *testing.T) {
	repo := &fakeSlotRepo{
		getByEmailAndWeekFn: func(ctx context.Context, email string, weekNum int) ([]*domain.InterviewerSlot, error) {
			return nil, nil
		},
		createFn: func(ctx context.Context, slot *domain.InterviewerSlot) (*domain.InterviewerSlot, error) {
			slot.ID = 2
			return slot, nil
		},
	}
	svc := newTestService(repo, &fakeBookingRepo{}, &fakeLimitRepo{})

	// Без to конец слота равен from + длительность интервью
	resp, err := svc.Create(context.Background(), &models.CreateSlotRequest{
		Email:     "interviewer@example.com",
		WeekNum:   51,
		DayOfWeek: domain.Tuesday,
		From:      "10:00",
	})

	require.NoError(t, err)
	assert.Equal(t, "11:30", resp.To)
}

func TestService_Create_CurrentWeekRejected(t *testing.T) {
	svc := newTestService(&fakeSlotRepo{}, &fakeBookingRepo{}, &fakeLimitRepo{})

	_, err := svc.Create(context.Background(), &models.CreateSlotRequest{
		Email:     "interviewer@example.com",
		WeekNum:   50,
		DayOfWeek: domain.Monday,
		From:      "09:00",
		To:        ptr.Ptr(types.TimeString("17:00")),
	})

	assert.ErrorIs(t, err, ErrWeekNumberNotAllowed)
}

func TestService_Create_TouchingBoundariesAllowed(t *testing.T) {
	repo := &fakeSlotRepo{
		getByEmailAndWeekFn: func(ctx context.Context, email string, weekNum int) ([]*domain.InterviewerSlot, error) {
			return []*domain.InterviewerSlot{
				{ID: 1, Email: email, WeekNum: weekNum, DayOfWeek: domain.Monday, From: "09:00", To: "12:00", Status: domain.StatusNew},
			}, nil
		},
		createFn: func(ctx context.Context, slot *domain.InterviewerSlot) (*domain.InterviewerSlot, error) {
			slot.ID = 2
			return slot, nil
		},
	}
	svc := newTestService(repo, &fakeBookingRepo{}, &fakeLimitRepo{})

	// При создании соприкосновение границ допустимо
	_, err := svc.Create(context.Background(), &models.CreateSlotRequest{
		Email:     "interviewer@example.com",
		WeekNum:   51,
		DayOfWeek: domain.Monday,
		From:      "12:00",
		To:        ptr.Ptr(types.TimeString("14:00")),
	})

	assert.NoError(t, err)
}

func TestService_Create_IntersectionRejected(t *testing.T) {
	repo := &fakeSlotRepo{
		getByEmailAndWeekFn: func(ctx context.Context, email string, weekNum int) ([]*domain.InterviewerSlot, error) {
			return []*domain.InterviewerSlot{
				{ID: 1, Email: email, WeekNum: weekNum, DayOfWeek: domain.Monday, From: "09:00", To: "12:00", Status: domain.StatusNew},
			}, nil
		},
	}
	svc := newTestService(repo, &fakeBookingRepo{}, &fakeLimitRepo{})

	_, err := svc.Create(context.Background(), &models.CreateSlotRequest{
		Email:     "interviewer@example.com",
		WeekNum:   51,
		DayOfWeek: domain.Monday,
		From:      "11:00",
		To:        ptr.Ptr(types.TimeString("13:00")),
	})

	assert.ErrorIs(t, err, timeslot.ErrSlotOverlapping)
}

func TestService_Update_WeekRulesByRole(t *testing.T) {
	tests := []struct {
		name    string
		role    domain.Role
		weekNum int
		wantErr bool
	}{
		{name: "interviewer next week", role: domain.RoleInterviewer, weekNum: 51},
		{name: "interviewer current week", role: domain.RoleInterviewer, weekNum: 50, wantErr: true},
		{name: "coordinator current week", role: domain.RoleCoordinator, weekNum: 50},
		{name: "coordinator next week", role: domain.RoleCoordinator, weekNum: 51},
		{name: "coordinator past week", role: domain.RoleCoordinator, weekNum: 49, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			existing := &domain.InterviewerSlot{
				ID:        3,
				Email:     "interviewer@example.com",
				WeekNum:   tt.weekNum,
				DayOfWeek: domain.Monday,
				From:      "09:00",
				To:        "17:00",
				Status:    domain.StatusNew,
			}
			repo := &fakeSlotRepo{
				getByIDFn: func(ctx context.Context, id int64) (*domain.InterviewerSlot, error) {
					return existing, nil
				},
				getByEmailAndWeekFn: func(ctx context.Context, email string, weekNum int) ([]*domain.InterviewerSlot, error) {
					return []*domain.InterviewerSlot{existing}, nil
				},
				updateFn: func(ctx context.Context, slot *domain.InterviewerSlot) (*domain.InterviewerSlot, error) {
					return slot, nil
				},
			}
			svc := newTestService(repo, &fakeBookingRepo{}, &fakeLimitRepo{})

			_, err := svc.Update(context.Background(), 3, &models.UpdateSlotRequest{
				Email:     "interviewer@example.com",
				Role:      tt.role,
				WeekNum:   tt.weekNum,
				DayOfWeek: domain.Monday,
				From:      "10:00",
				To:        "16:00",
			})

			if tt.wantErr {
				assert.ErrorIs(t, err, ErrWeekNumberNotAllowed)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestService_Update_AdjacencyBufferEnforced(t *testing.T) {
	existing := &domain.InterviewerSlot{
		ID:        3,
		Email:     "interviewer@example.com",
		WeekNum:   51,
		DayOfWeek: domain.Monday,
		From:      "09:00",
		To:        "10:30",
		Status:    domain.StatusNew,
	}
	neighbour := &domain.InterviewerSlot{
		ID:        4,
		Email:     "interviewer@example.com",
		WeekNum:   51,
		DayOfWeek: domain.Monday,
		From:      "13:00",
		To:        "15:00",
		Status:    domain.StatusNew,
	}
	repo := &fakeSlotRepo{
		getByIDFn: func(ctx context.Context, id int64) (*domain.InterviewerSlot, error) {
			return existing, nil
		},
		getByEmailAndWeekFn: func(ctx context.Context, email string, weekNum int) ([]*domain.InterviewerSlot, error) {
			return []*domain.InterviewerSlot{existing, neighbour}, nil
		},
	}
	svc := newTestService(repo, &fakeBookingRepo{}, &fakeLimitRepo{})

	// Новый конец примыкает к соседнему слоту ближе, чем на 30 минут
	_, err := svc.Update(context.Background(), 3, &models.UpdateSlotRequest{
		Email:     "interviewer@example.com",
		Role:      domain.RoleInterviewer,
		WeekNum:   51,
		DayOfWeek: domain.Monday,
		From:      "11:00",
		To:        "13:00",
	})

	assert.ErrorIs(t, err, timeslot.ErrSlotOverlapping)
}

func TestService_Update_ForeignSlotLooksNotFound(t *testing.T) {
	repo := &fakeSlotRepo{
		getByIDFn: func(ctx context.Context, id int64) (*domain.InterviewerSlot, error) {
			return &domain.InterviewerSlot{
				ID:        3,
				Email:     "other@example.com",
				WeekNum:   51,
				DayOfWeek: domain.Monday,
				From:      "09:00",
				To:        "17:00",
			}, nil
		},
	}
	svc := newTestService(repo, &fakeBookingRepo{}, &fakeLimitRepo{})

	_, err := svc.Update(context.Background(), 3, &models.UpdateSlotRequest{
		Email:     "interviewer@example.com",
		Role:      domain.RoleInterviewer,
		WeekNum:   51,
		DayOfWeek: domain.Monday,
		From:      "10:00",
		To:        "16:00",
	})

	assert.ErrorIs(t, err, ErrSlotNotFound)
}

func TestService_List(t *testing.T) {
	repo := &fakeSlotRepo{
		getByEmailAndWeekFn: func(ctx context.Context, email string, weekNum int) ([]*domain.InterviewerSlot, error) {
			return []*domain.InterviewerSlot{
				{ID: 1, Email: email, WeekNum: weekNum, DayOfWeek: domain.Monday, From: "09:00", To: "17:00", Status: domain.StatusNew},
			}, nil
		},
	}
	bookingRepo := &fakeBookingRepo{
		getByInterviewerSlotIDsFn: func(ctx context.Context, slotIDs []int64) ([]*domain.Booking, error) {
			return []*domain.Booking{
				{ID: 10, InterviewerSlotID: 1, CandidateSlotID: 2, StartTime: "10:00", EndTime: "11:30", Subject: "Go interview"},
			}, nil
		},
	}
	svc := newTestService(repo, bookingRepo, &fakeLimitRepo{})

	resp, err := svc.List(context.Background(), "interviewer@example.com", 50)

	require.NoError(t, err)
	require.Len(t, resp.Slots, 1)
	require.Len(t, resp.Slots[0].Bookings, 1)
	assert.Equal(t, int64(10), resp.Slots[0].Bookings[0].ID)
}

func TestService_List_InvalidWeek(t *testing.T) {
	svc := newTestService(&fakeSlotRepo{}, &fakeBookingRepo{}, &fakeLimitRepo{})

	_, err := svc.List(context.Background(), "interviewer@example.com", 49)

	assert.ErrorIs(t, err, ErrWeekNumberNotAllowed)
}

func TestService_SetLimit(t *testing.T) {
	limitRepo := &fakeLimitRepo{
		upsertFn: func(ctx context.Context, limit *domain.BookingLimit) (*domain.BookingLimit, error) {
			limit.ID = 1
			return limit, nil
		},
	}
	svc := newTestService(&fakeSlotRepo{}, &fakeBookingRepo{}, limitRepo)

	resp, err := svc.SetLimit(context.Background(), &models.SetLimitRequest{
		Email:       "interviewer@example.com",
		MaxBookings: 5,
	})

	require.NoError(t, err)
	// Лимит всегда ставится на следующую неделю
	assert.Equal(t, 51, resp.WeekNum)
	assert.Equal(t, 5, resp.MaxBookings)
}

func TestService_SetLimit_NegativeRejected(t *testing.T) {
	svc := newTestService(&fakeSlotRepo{}, &fakeBookingRepo{}, &fakeLimitRepo{})

	_, err := svc.SetLimit(context.Background(), &models.SetLimitRequest{
		Email:       "interviewer@example.com",
		MaxBookings: -1,
	})

	assert.ErrorIs(t, err, ErrInvalidLimit)
}
