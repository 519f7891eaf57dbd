package domain

import (
	"time"

	"github.com/m04kA/SMC-InterviewPlanning/pkg/types"
)

// SlotStatus represents the lifecycle status of a time slot
type SlotStatus string

const (
	StatusNew       SlotStatus = "NEW"
	StatusChanged   SlotStatus = "CHANGED"
	StatusPreBooked SlotStatus = "PRE_BOOKED"
	StatusBooked    SlotStatus = "BOOKED"
	StatusDeleted   SlotStatus = "DELETED"
)

// CandidateSlot is an availability window declared by a candidate
// for a concrete calendar date
type CandidateSlot struct {
	ID     int64
	Email  string
	Date   time.Time
	From   types.TimeString
	To     types.TimeString
	Status SlotStatus

	CreatedAt time.Time
	UpdatedAt time.Time
}

// DurationMinutes returns the length of the slot in minutes
func (s *CandidateSlot) DurationMinutes() int {
	return s.From.MinutesBetween(s.To)
}

// Covers returns true if [start, end] lies fully inside the slot boundaries
func (s *CandidateSlot) Covers(start, end types.TimeString) bool {
	return !start.IsBefore(s.From) && !end.IsAfter(s.To)
}

// IsDeleted returns true if the slot has been soft-deleted
func (s *CandidateSlot) IsDeleted() bool {
	return s.Status == StatusDeleted
}

// InterviewerSlot is an availability window declared by an interviewer
// for a (week number, weekday) pair
type InterviewerSlot struct {
	ID        int64
	Email     string
	WeekNum   int
	DayOfWeek Weekday
	From      types.TimeString
	To        types.TimeString
	Status    SlotStatus

	CreatedAt time.Time
	UpdatedAt time.Time
}

// DurationMinutes returns the length of the slot in minutes
func (s *InterviewerSlot) DurationMinutes() int {
	return s.From.MinutesBetween(s.To)
}

// Covers returns true if [start, end] lies fully inside the slot boundaries
func (s *InterviewerSlot) Covers(start, end types.TimeString) bool {
	return !start.IsBefore(s.From) && !end.IsAfter(s.To)
}

// IsDeleted returns true if the slot has been soft-deleted
func (s *InterviewerSlot) IsDeleted() bool {
	return s.Status == StatusDeleted
}
