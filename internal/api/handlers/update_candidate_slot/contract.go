package update_candidate_slot

import (
	"context"

	"github.com/m04kA/SMC-InterviewPlanning/internal/service/candidateslots/models"
)

type CandidateSlotsService interface {
	Update(ctx context.Context, id int64, req *models.UpdateSlotRequest) (*models.SlotResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
