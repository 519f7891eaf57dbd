package models

import (
	"github.com/m04kA/SMC-InterviewPlanning/internal/domain"
)

// InterviewerSlotView слот интервьюера на дашборде
// Bookings содержит только идентификаторы, детали лежат в DashboardResponse.Bookings
type InterviewerSlotView struct {
	ID       int64   `json:"id"`
	Email    string  `json:"email"`
	From     string  `json:"from"`
	To       string  `json:"to"`
	Status   string  `json:"status"`
	Bookings []int64 `json:"bookings"`
}

// CandidateSlotView слот кандидата на дашборде
type CandidateSlotView struct {
	ID     int64  `json:"id"`
	Email  string `json:"email"`
	From   string `json:"from"`
	To     string `json:"to"`
	Status string `json:"status"`
}

// BookingView детали бронирования на дашборде
type BookingView struct {
	ID                int64  `json:"id"`
	InterviewerSlotID int64  `json:"interviewerSlotId"`
	CandidateSlotID   int64  `json:"candidateSlotId"`
	StartTime         string `json:"startTime"`
	EndTime           string `json:"endTime"`
	Subject           string `json:"subject"`
	Description       string `json:"description"`
}

// DayDashboard срез одного рабочего дня недели
type DayDashboard struct {
	DayOfWeek        string                `json:"dayOfWeek"` // "Mon".."Fri"
	Date             string                `json:"date"`      // "2022-12-16"
	InterviewerSlots []InterviewerSlotView `json:"interviewerSlots"`
	CandidateSlots   []CandidateSlotView   `json:"candidateSlots"`
}

// DashboardResponse дашборд координатора на одну неделю
type DashboardResponse struct {
	WeekNum  int                   `json:"weekNum"`
	Days     []DayDashboard        `json:"days"`
	Bookings map[int64]BookingView `json:"bookings"`
}

// FromDomainInterviewerSlot конвертирует слот интервьюера в представление дашборда
func FromDomainInterviewerSlot(s *domain.InterviewerSlot, bookingIDs []int64) InterviewerSlotView {
	if bookingIDs == nil {
		bookingIDs = []int64{}
	}
	return InterviewerSlotView{
		ID:       s.ID,
		Email:    s.Email,
		From:     s.From.String(),
		To:       s.To.String(),
		Status:   string(s.Status),
		Bookings: bookingIDs,
	}
}

// FromDomainCandidateSlot конвертирует слот кандидата в представление дашборда
func FromDomainCandidateSlot(s *domain.CandidateSlot) CandidateSlotView {
	return CandidateSlotView{
		ID:     s.ID,
		Email:  s.Email,
		From:   s.From.String(),
		To:     s.To.String(),
		Status: string(s.Status),
	}
}

// FromDomainBooking конвертирует бронирование в представление дашборда
func FromDomainBooking(b *domain.Booking) BookingView {
	return BookingView{
		ID:                b.ID,
		InterviewerSlotID: b.InterviewerSlotID,
		CandidateSlotID:   b.CandidateSlotID,
		StartTime:         b.StartTime.String(),
		EndTime:           b.EndTime.String(),
		Subject:           b.Subject,
		Description:       b.Description,
	}
}
