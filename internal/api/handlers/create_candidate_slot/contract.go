package create_candidate_slot

import (
	"context"

	"github.com/m04kA/SMC-InterviewPlanning/internal/service/candidateslots/models"
)

type CandidateSlotsService interface {
	Create(ctx context.Context, req *models.CreateSlotRequest) (*models.SlotResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
