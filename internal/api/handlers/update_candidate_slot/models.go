package update_candidate_slot

import (
	"time"

	"github.com/m04kA/SMC-InterviewPlanning/internal/domain"
	"github.com/m04kA/SMC-InterviewPlanning/internal/service/candidateslots/models"
	"github.com/m04kA/SMC-InterviewPlanning/pkg/types"
)

// UpdateSlotRequest HTTP request model
type UpdateSlotRequest struct {
	Date string `json:"date"` // "2022-12-16"
	From string `json:"from"` // "09:00"
	To   string `json:"to"`   // "17:00"
}

// ToServiceRequest конвертирует HTTP запрос в модель сервиса
func (r *UpdateSlotRequest) ToServiceRequest(email string) (*models.UpdateSlotRequest, error) {
	date, err := time.Parse(domain.DateFormat, r.Date)
	if err != nil {
		return nil, err
	}

	from, err := types.NewTimeStringFromString(r.From)
	if err != nil {
		return nil, err
	}

	to, err := types.NewTimeStringFromString(r.To)
	if err != nil {
		return nil, err
	}

	return &models.UpdateSlotRequest{
		Email: email,
		Date:  date,
		From:  from,
		To:    to,
	}, nil
}
