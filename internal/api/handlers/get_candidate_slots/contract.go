package get_candidate_slots

import (
	"context"

	"github.com/m04kA/SMC-InterviewPlanning/internal/service/candidateslots/models"
)

type CandidateSlotsService interface {
	List(ctx context.Context, email string) (*models.SlotListResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
