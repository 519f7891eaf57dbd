package update_interviewer_slot

import (
	"context"

	"github.com/m04kA/SMC-InterviewPlanning/internal/service/interviewerslots/models"
)

type InterviewerSlotsService interface {
	Update(ctx context.Context, id int64, req *models.UpdateSlotRequest) (*models.SlotResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
