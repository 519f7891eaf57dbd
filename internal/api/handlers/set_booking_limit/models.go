package set_booking_limit

import (
	"github.com/m04kA/SMC-InterviewPlanning/internal/service/interviewerslots/models"
)

// SetLimitRequest HTTP request model
type SetLimitRequest struct {
	MaxBookings int `json:"maxBookings"`
}

// ToServiceRequest конвертирует HTTP запрос в модель сервиса
func (r *SetLimitRequest) ToServiceRequest(email string) *models.SetLimitRequest {
	return &models.SetLimitRequest{
		Email:       email,
		MaxBookings: r.MaxBookings,
	}
}
