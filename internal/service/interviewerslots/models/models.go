package models

import (
	"time"

	"github.com/m04kA/SMC-InterviewPlanning/internal/domain"
	"github.com/m04kA/SMC-InterviewPlanning/pkg/types"
)

// Request модели

// CreateSlotRequest запрос на создание слота интервьюера
// To опционально: при nil конец слота равен началу плюс длительность интервью
type CreateSlotRequest struct {
	Email     string
	WeekNum   int
	DayOfWeek domain.Weekday
	From      types.TimeString
	To        *types.TimeString
}

// UpdateSlotRequest запрос на обновление слота интервьюера
// Role определяет множество недель, которые можно менять
type UpdateSlotRequest struct {
	Email     string
	Role      domain.Role
	WeekNum   int
	DayOfWeek domain.Weekday
	From      types.TimeString
	To        types.TimeString
}

// SetLimitRequest запрос на установку недельного лимита бронирований
// Лимит всегда устанавливается на следующую неделю
type SetLimitRequest struct {
	Email       string
	MaxBookings int
}

// Response модели

// SlotResponse ответ с данными слота интервьюера
type SlotResponse struct {
	ID        int64  `json:"id"`
	Email     string `json:"email"`
	WeekNum   int    `json:"weekNum"`
	DayOfWeek string `json:"dayOfWeek"` // "Mon".."Fri"
	From      string `json:"from"`      // "09:00"
	To        string `json:"to"`        // "17:00"
	Status    string `json:"status"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// BookingResponse бронирование, привязанное к слоту интервьюера
type BookingResponse struct {
	ID              int64  `json:"id"`
	CandidateSlotID int64  `json:"candidateSlotId"`
	StartTime       string `json:"startTime"`
	EndTime         string `json:"endTime"`
	Subject         string `json:"subject"`
	Description     string `json:"description"`
}

// SlotWithBookings слот интервьюера вместе с его бронированиями
type SlotWithBookings struct {
	SlotResponse
	Bookings []BookingResponse `json:"bookings"`
}

// SlotListResponse ответ со списком слотов интервьюера на неделю
type SlotListResponse struct {
	WeekNum int                `json:"weekNum"`
	Slots   []SlotWithBookings `json:"slots"`
}

// LimitResponse ответ с установленным лимитом
type LimitResponse struct {
	InterviewerEmail string `json:"interviewerEmail"`
	WeekNum          int    `json:"weekNum"`
	MaxBookings      int    `json:"maxBookings"`
}

// Конвертация

// FromDomainSlot конвертирует domain модель в DTO
func FromDomainSlot(s *domain.InterviewerSlot) *SlotResponse {
	if s == nil {
		return nil
	}

	return &SlotResponse{
		ID:        s.ID,
		Email:     s.Email,
		WeekNum:   s.WeekNum,
		DayOfWeek: string(s.DayOfWeek),
		From:      s.From.String(),
		To:        s.To.String(),
		Status:    string(s.Status),
		CreatedAt: s.CreatedAt,
		UpdatedAt: s.UpdatedAt,
	}
}

// FromDomainBooking конвертирует бронирование в DTO слота интервьюера
func FromDomainBooking(b *domain.Booking) BookingResponse {
	return BookingResponse{
		ID:              b.ID,
		CandidateSlotID: b.CandidateSlotID,
		StartTime:       b.StartTime.String(),
		EndTime:         b.EndTime.String(),
		Subject:         b.Subject,
		Description:     b.Description,
	}
}

// FromDomainLimit конвертирует лимит в DTO
func FromDomainLimit(l *domain.BookingLimit) *LimitResponse {
	return &LimitResponse{
		InterviewerEmail: l.InterviewerEmail,
		WeekNum:          l.WeekNum,
		MaxBookings:      l.MaxBookings,
	}
}
