package create_interviewer_slot

import (
	"github.com/m04kA/SMC-InterviewPlanning/internal/domain"
	"github.com/m04kA/SMC-InterviewPlanning/internal/service/interviewerslots/models"
	"github.com/m04kA/SMC-InterviewPlanning/pkg/ptr"
	"github.com/m04kA/SMC-InterviewPlanning/pkg/types"
)

// CreateSlotRequest HTTP request model
// To опционально: при пропуске конец слота выводится из длительности интервью
type CreateSlotRequest struct {
	WeekNum   int     `json:"weekNum"`
	DayOfWeek string  `json:"dayOfWeek"` // "Mon".."Fri"
	From      string  `json:"from"`      // "09:00"
	To        *string `json:"to,omitempty"`
}

// ToServiceRequest конвертирует HTTP запрос в модель сервиса
func (r *CreateSlotRequest) ToServiceRequest(email string) (*models.CreateSlotRequest, error) {
	day, err := domain.ParseWeekday(r.DayOfWeek)
	if err != nil {
		return nil, err
	}

	from, err := types.NewTimeStringFromString(r.From)
	if err != nil {
		return nil, err
	}

	var to *types.TimeString
	if r.To != nil {
		parsed, err := types.NewTimeStringFromString(*r.To)
		if err != nil {
			return nil, err
		}
		to = ptr.Ptr(parsed)
	}

	return &models.CreateSlotRequest{
		Email:     email,
		WeekNum:   r.WeekNum,
		DayOfWeek: day,
		From:      from,
		To:        to,
	}, nil
}
