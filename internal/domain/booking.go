package domain

import (
	"time"

	"github.com/m04kA/SMC-InterviewPlanning/pkg/types"
)

// Booking is a scheduled interview binding one candidate slot
// to one interviewer slot
type Booking struct {
	ID                int64
	InterviewerSlotID int64
	CandidateSlotID   int64
	StartTime         types.TimeString
	EndTime           types.TimeString
	Subject           string
	Description       string

	CreatedAt time.Time
	UpdatedAt time.Time
}

// DurationMinutes returns the length of the booking in minutes
func (b *Booking) DurationMinutes() int {
	return b.StartTime.MinutesBetween(b.EndTime)
}

// HasSameRange returns true if the booking occupies exactly [start, end]
func (b *Booking) HasSameRange(start, end types.TimeString) bool {
	return b.StartTime.Equal(start) && b.EndTime.Equal(end)
}

// Intersects returns true if the booking shares any point with [start, end],
// boundaries included
func (b *Booking) Intersects(start, end types.TimeString) bool {
	return !b.EndTime.IsBefore(start) && !b.StartTime.IsAfter(end)
}

// BookingLimit is a per-interviewer weekly cap on the number of bookings
type BookingLimit struct {
	ID               int64
	InterviewerEmail string
	WeekNum          int
	MaxBookings      int

	CreatedAt time.Time
	UpdatedAt time.Time
}
