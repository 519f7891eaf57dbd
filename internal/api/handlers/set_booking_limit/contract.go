package set_booking_limit

import (
	"context"

	"github.com/m04kA/SMC-InterviewPlanning/internal/service/interviewerslots/models"
)

type InterviewerSlotsService interface {
	SetLimit(ctx context.Context, req *models.SetLimitRequest) (*models.LimitResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
