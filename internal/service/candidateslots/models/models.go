package models

import (
	"time"

	"github.com/m04kA/SMC-InterviewPlanning/internal/domain"
	"github.com/m04kA/SMC-InterviewPlanning/pkg/types"
)

// Request модели

// CreateSlotRequest запрос на создание слота кандидата
type CreateSlotRequest struct {
	Email string
	Date  time.Time
	From  types.TimeString
	To    types.TimeString
}

// UpdateSlotRequest запрос на обновление слота кандидата
type UpdateSlotRequest struct {
	Email string
	Date  time.Time
	From  types.TimeString
	To    types.TimeString
}

// Response модели

// SlotResponse ответ с данными слота кандидата
type SlotResponse struct {
	ID     int64  `json:"id"`
	Email  string `json:"email"`
	Date   string `json:"date"` // "2022-12-16"
	From   string `json:"from"` // "09:00"
	To     string `json:"to"`   // "17:00"
	Status string `json:"status"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// SlotListResponse ответ со списком слотов кандидата
type SlotListResponse struct {
	Slots []SlotResponse `json:"slots"`
}

// FromDomainSlot конвертирует domain модель в DTO
func FromDomainSlot(s *domain.CandidateSlot) *SlotResponse {
	if s == nil {
		return nil
	}

	return &SlotResponse{
		ID:        s.ID,
		Email:     s.Email,
		Date:      s.Date.Format(domain.DateFormat),
		From:      s.From.String(),
		To:        s.To.String(),
		Status:    string(s.Status),
		CreatedAt: s.CreatedAt,
		UpdatedAt: s.UpdatedAt,
	}
}

// FromDomainSlotList конвертирует список domain моделей в DTO
func FromDomainSlotList(slots []*domain.CandidateSlot) *SlotListResponse {
	resp := &SlotListResponse{
		Slots: make([]SlotResponse, 0, len(slots)),
	}

	for _, slot := range slots {
		if slotResp := FromDomainSlot(slot); slotResp != nil {
			resp.Slots = append(resp.Slots, *slotResp)
		}
	}

	return resp
}
