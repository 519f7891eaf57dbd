package update_interviewer_slot

import (
	"github.com/m04kA/SMC-InterviewPlanning/internal/domain"
	"github.com/m04kA/SMC-InterviewPlanning/internal/service/interviewerslots/models"
	"github.com/m04kA/SMC-InterviewPlanning/pkg/types"
)

// UpdateSlotRequest HTTP request model
type UpdateSlotRequest struct {
	WeekNum   int    `json:"weekNum"`
	DayOfWeek string `json:"dayOfWeek"` // "Mon".."Fri"
	From      string `json:"from"`      // "09:00"
	To        string `json:"to"`        // "17:00"
}

// ToServiceRequest конвертирует HTTP запрос в модель сервиса
func (r *UpdateSlotRequest) ToServiceRequest(email string, role domain.Role) (*models.UpdateSlotRequest, error) {
	day, err := domain.ParseWeekday(r.DayOfWeek)
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
		Email:     email,
		Role:      role,
		WeekNum:   r.WeekNum,
		DayOfWeek: day,
		From:      from,
		To:        to,
	}, nil
}
