package update_booking

import (
	"time"

	updateBooking "github.com/m04kA/SMC-InterviewPlanning/internal/usecase/update_booking"
	"github.com/m04kA/SMC-InterviewPlanning/pkg/types"
)

// UpdateBookingRequest HTTP request model
type UpdateBookingRequest struct {
	InterviewerSlotID int64  `json:"interviewerSlotId"`
	CandidateSlotID   int64  `json:"candidateSlotId"`
	StartTime         string `json:"startTime"` // "10:00"
	EndTime           string `json:"endTime"`   // "11:30"
	Subject           string `json:"subject"`
	Description       string `json:"description"`
}

// BookingResponse HTTP response model
type BookingResponse struct {
	ID                int64  `json:"id"`
	InterviewerSlotID int64  `json:"interviewerSlotId"`
	CandidateSlotID   int64  `json:"candidateSlotId"`
	StartTime         string `json:"startTime"`
	EndTime           string `json:"endTime"`
	Subject           string `json:"subject"`
	Description       string `json:"description"`
	CreatedAt         string `json:"createdAt"`
	UpdatedAt         string `json:"updatedAt"`
}

// ToUseCaseRequest конвертирует HTTP запрос в модель use case
func (r *UpdateBookingRequest) ToUseCaseRequest() (*updateBooking.Request, error) {
	startTime, err := types.NewTimeStringFromString(r.StartTime)
	if err != nil {
		return nil, err
	}

	endTime, err := types.NewTimeStringFromString(r.EndTime)
	if err != nil {
		return nil, err
	}

	return &updateBooking.Request{
		InterviewerSlotID: r.InterviewerSlotID,
		CandidateSlotID:   r.CandidateSlotID,
		StartTime:         startTime,
		EndTime:           endTime,
		Subject:           r.Subject,
		Description:       r.Description,
	}, nil
}

// FromUseCaseResponse конвертирует ответ use case в HTTP модель
func FromUseCaseResponse(resp *updateBooking.Response) *BookingResponse {
	return &BookingResponse{
		ID:                resp.ID,
		InterviewerSlotID: resp.InterviewerSlotID,
		CandidateSlotID:   resp.CandidateSlotID,
		StartTime:         resp.StartTime.String(),
		EndTime:           resp.EndTime.String(),
		Subject:           resp.Subject,
		Description:       resp.Description,
		CreatedAt:         resp.CreatedAt.Format(time.RFC3339),
		UpdatedAt:         resp.UpdatedAt.Format(time.RFC3339),
	}
}
