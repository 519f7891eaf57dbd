package create_interviewer_slot

import (
	"context"

	"github.com/m04kA/SMC-InterviewPlanning/internal/service/interviewerslots/models"
)

type InterviewerSlotsService interface {
	Create(ctx context.Context, req *models.CreateSlotRequest) (*models.SlotResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
