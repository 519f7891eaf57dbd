package get_interviewer_slots

import (
	"context"

	"github.com/m04kA/SMC-InterviewPlanning/internal/service/interviewerslots/models"
)

type InterviewerSlotsService interface {
	List(ctx context.Context, email string, weekNum int) (*models.SlotListResponse, error)
}

type WeekClock interface {
	CurrentWeekNumber() int
	NextWeekNumber() int
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
