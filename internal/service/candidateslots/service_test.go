package candidateslots

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-InterviewPlanning/internal/domain"
	slotRepo "github.com/m04kA/SMC-InterviewPlanning/internal/infra/storage/candidateslot"
	"github.com/m04kA/SMC-InterviewPlanning/internal/service/candidateslots/models"
	"github.com/m04kA/SMC-InterviewPlanning/internal/service/timeslot"
)

// Тестовые фейки

type fakeSlotRepo struct {
	createFn            func(ctx context.Context, slot *domain.CandidateSlot) (*domain.CandidateSlot, error)
	getByIDFn           func(ctx context.Context, id int64) (*domain.CandidateSlot, error)
	getByEmailFn        func(ctx context.Context, email string) ([]*domain.CandidateSlot, error)
	getByEmailAndDateFn func(ctx context.Context, email string, date time.Time) ([]*domain.CandidateSlot, error)
	updateFn            func(ctx context.Context, slot *domain.CandidateSlot) (*domain.CandidateSlot, error)
}

func (f *fakeSlotRepo) Create(ctx context.Context, slot *domain.CandidateSlot) (*domain.CandidateSlot, error) {
	return f.createFn(ctx, slot)
}

func (f *fakeSlotRepo) GetByID(ctx context.Context, id int64) (*domain.CandidateSlot, error) {
	return f.getByIDFn(ctx, id)
}

func (f *fakeSlotRepo) GetByEmail(ctx context.Context, email string) ([]*domain.CandidateSlot, error) {
	return f.getByEmailFn(ctx, email)
}

func (f *fakeSlotRepo) GetByEmailAndDate(ctx context.Context, email string, date time.Time) ([]*domain.CandidateSlot, error) {
	return f.getByEmailAndDateFn(ctx, email, date)
}

func (f *fakeSlotRepo) Update(ctx context.Context, slot *domain.CandidateSlot) (*domain.CandidateSlot, error) {
	return f.updateFn(ctx, slot)
}

// fakeTxManager выполняет функцию без настоящей транзакции
type fakeTxManager struct{}

func (fakeTxManager) DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}

type fakeClock struct {
	now time.Time
}

func (f fakeClock) Now() time.Time {
	return f.now
}

type nopLogger struct{}

func (nopLogger) Info(format string, v ...interface{})  {}
func (nopLogger) Warn(format string, v ...interface{})  {}
func (nopLogger) Error(format string, v ...interface{}) {}

func newTestService(repo *fakeSlotRepo) *Service {
	return NewService(
		repo,
		timeslot.NewValidator(90, "08:00", "22:00"),
		fakeTxManager{},
		fakeClock{now: time.Date(2022, 12, 12, 10, 0, 0, 0, time.UTC)},
		nopLogger{},
	)
}

func TestService_Create(t *testing.T) {
	repo := &fakeSlotRepo{
		getByEmailAndDateFn: func(ctx context.Context, email string, date time.Time) ([]*domain.CandidateSlot, error) {
			return nil, nil
		},
		createFn: func(ctx context.Context, slot *domain.CandidateSlot) (*domain.CandidateSlot, error) {
			slot.ID = 1
			return slot, nil
		},
	}
	svc := newTestService(repo)

	// 2022-12-16 пятница
	resp, err := svc.Create(context.Background(), &models.CreateSlotRequest{
		Email: "candidate@example.com",
		Date:  time.Date(2022, 12, 16, 0, 0, 0, 0, time.UTC),
		From:  "09:00",
		To:    "17:00",
	})

	require.NoError(t, err)
	assert.Equal(t, int64(1), resp.ID)
	assert.Equal(t, "NEW", resp.Status)
	assert.Equal(t, "2022-12-16", resp.Date)
}

func TestService_Create_SaturdayRejected(t *testing.T) {
	svc := newTestService(&fakeSlotRepo{})

	// 2022-12-10 суббота
	_, err := svc.Create(context.Background(), &models.CreateSlotRequest{
		Email: "candidate@example.com",
		Date:  time.Date(2022, 12, 10, 0, 0, 0, 0, time.UTC),
		From:  "09:00",
		To:    "17:00",
	})

	assert.ErrorIs(t, err, ErrInvalidDayOfWeek)
}

func TestService_Create_PastDateRejected(t *testing.T) {
	svc := newTestService(&fakeSlotRepo{})

	// Пятница на прошлой неделе
	_, err := svc.Create(context.Background(), &models.CreateSlotRequest{
		Email: "candidate@example.com",
		Date:  time.Date(2022, 12, 9, 0, 0, 0, 0, time.UTC),
		From:  "09:00",
		To:    "17:00",
	})

	assert.ErrorIs(t, err, ErrInvalidDayOfWeek)
}

func TestService_Create_UnroundedMinutesRejected(t *testing.T) {
	svc := newTestService(&fakeSlotRepo{})

	_, err := svc.Create(context.Background(), &models.CreateSlotRequest{
		Email: "candidate@example.com",
		Date:  time.Date(2022, 12, 16, 0, 0, 0, 0, time.UTC),
		From:  "09:02",
		To:    "17:00",
	})

	assert.ErrorIs(t, err, timeslot.ErrInvalidBoundaries)
}

func TestService_Create_OverlapRejected(t *testing.T) {
	repo := &fakeSlotRepo{
		getByEmailAndDateFn: func(ctx context.Context, email string, date time.Time) ([]*domain.CandidateSlot, error) {
			return []*domain.CandidateSlot{
				{ID: 5, Email: email, From: "10:00", To: "12:00", Status: domain.StatusNew},
			}, nil
		},
	}
	svc := newTestService(repo)

	// Соприкосновение границ для кандидата тоже конфликт
	_, err := svc.Create(context.Background(), &models.CreateSlotRequest{
		Email: "candidate@example.com",
		Date:  time.Date(2022, 12, 16, 0, 0, 0, 0, time.UTC),
		From:  "12:00",
		To:    "14:00",
	})

	assert.ErrorIs(t, err, timeslot.ErrSlotOverlapping)
}

func TestService_Update(t *testing.T) {
	existing := &domain.CandidateSlot{
		ID:     3,
		Email:  "candidate@example.com",
		Date:   time.Date(2022, 12, 16, 0, 0, 0, 0, time.UTC),
		From:   "09:00",
		To:     "17:00",
		Status: domain.StatusNew,
	}

	repo := &fakeSlotRepo{
		getByIDFn: func(ctx context.Context, id int64) (*domain.CandidateSlot, error) {
			return existing, nil
		},
		getByEmailAndDateFn: func(ctx context.Context, email string, date time.Time) ([]*domain.CandidateSlot, error) {
			return []*domain.CandidateSlot{existing}, nil
		},
		updateFn: func(ctx context.Context, slot *domain.CandidateSlot) (*domain.CandidateSlot, error) {
			return slot, nil
		},
	}
	svc := newTestService(repo)

	// Пересечение только с самим собой не конфликт
	resp, err := svc.Update(context.Background(), 3, &models.UpdateSlotRequest{
		Email: "candidate@example.com",
		Date:  time.Date(2022, 12, 16, 0, 0, 0, 0, time.UTC),
		From:  "10:00",
		To:    "16:00",
	})

	require.NoError(t, err)
	assert.Equal(t, "CHANGED", resp.Status)
	assert.Equal(t, "10:00", resp.From)
}

func TestService_Update_ForeignSlotLooksNotFound(t *testing.T) {
	repo := &fakeSlotRepo{
		getByIDFn: func(ctx context.Context, id int64) (*domain.CandidateSlot, error) {
			return &domain.CandidateSlot{
				ID:    3,
				Email: "other@example.com",
				Date:  time.Date(2022, 12, 16, 0, 0, 0, 0, time.UTC),
				From:  "09:00",
				To:    "17:00",
			}, nil
		},
	}
	svc := newTestService(repo)

	_, err := svc.Update(context.Background(), 3, &models.UpdateSlotRequest{
		Email: "candidate@example.com",
		Date:  time.Date(2022, 12, 16, 0, 0, 0, 0, time.UTC),
		From:  "10:00",
		To:    "16:00",
	})

	assert.ErrorIs(t, err, ErrSlotNotFound)
}

func TestService_Update_MissingSlot(t *testing.T) {
	repo := &fakeSlotRepo{
		getByIDFn: func(ctx context.Context, id int64) (*domain.CandidateSlot, error) {
			return nil, slotRepo.ErrSlotNotFound
		},
	}
	svc := newTestService(repo)

	_, err := svc.Update(context.Background(), 42, &models.UpdateSlotRequest{
		Email: "candidate@example.com",
		Date:  time.Date(2022, 12, 16, 0, 0, 0, 0, time.UTC),
		From:  "10:00",
		To:    "16:00",
	})

	assert.ErrorIs(t, err, ErrSlotNotFound)
}

func TestService_List(t *testing.T) {
	repo := &fakeSlotRepo{
		getByEmailFn: func(ctx context.Context, email string) ([]*domain.CandidateSlot, error) {
			return []*domain.CandidateSlot{
				{ID: 1, Email: email, Date: time.Date(2022, 12, 16, 0, 0, 0, 0, time.UTC), From: "09:00", To: "17:00", Status: domain.StatusNew},
				{ID: 2, Email: email, Date: time.Date(2022, 12, 15, 0, 0, 0, 0, time.UTC), From: "10:00", To: "11:30", Status: domain.StatusChanged},
			}, nil
		},
	}
	svc := newTestService(repo)

	resp, err := svc.List(context.Background(), "candidate@example.com")

	require.NoError(t, err)
	require.Len(t, resp.Slots, 2)
	assert.Equal(t, int64(1), resp.Slots[0].ID)
}
