package get_dashboard

import (
	"context"

	"github.com/m04kA/SMC-InterviewPlanning/internal/service/dashboard/models"
)

type DashboardService interface {
	GetWeek(ctx context.Context, weekNum int) (*models.DashboardResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
