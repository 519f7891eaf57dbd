package timeslot

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/m04kA/SMC-InterviewPlanning/internal/domain"
	"github.com/m04kA/SMC-InterviewPlanning/pkg/types"
)

func candidateSlot(id int64, from, to types.TimeString) *domain.CandidateSlot {
	return &domain.CandidateSlot{ID: id, From: from, To: to, Status: domain.StatusNew}
}

func interviewerSlot(id int64, from, to types.TimeString) *domain.InterviewerSlot {
	return &domain.InterviewerSlot{ID: id, From: from, To: to, Status: domain.StatusNew}
}

func TestFindCandidateConflict(t *testing.T) {
	existing := []*domain.CandidateSlot{candidateSlot(1, "10:00", "12:00")}

	tests := []struct {
		name     string
		from     types.TimeString
		to       types.TimeString
		conflict bool
	}{
		{name: "inside", from: "10:30", to: "11:30", conflict: true},
		{name: "covers", from: "09:00", to: "13:00", conflict: true},
		{name: "partial left", from: "09:00", to: "10:30", conflict: true},
		{name: "partial right", from: "11:30", to: "13:00", conflict: true},
		// Для кандидата соприкосновение границ тоже конфликт
		{name: "touching left boundary", from: "08:00", to: "10:00", conflict: true},
		{name: "touching right boundary", from: "12:00", to: "14:00", conflict: true},
		{name: "fully before", from: "08:00", to: "09:30", conflict: false},
		{name: "fully after", from: "12:30", to: "14:00", conflict: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := FindCandidateConflict(existing, tt.from, tt.to, 0)
			if tt.conflict {
				assert.NotNil(t, got)
			} else {
				assert.Nil(t, got)
			}
		})
	}
}

func TestFindCandidateConflict_ExcludesSelf(t *testing.T) {
	existing := []*domain.CandidateSlot{candidateSlot(7, "10:00", "12:00")}

	// Перепроверка слота против самого себя не должна давать конфликт
	assert.Nil(t, FindCandidateConflict(existing, "10:00", "12:00", 7))
}

func TestFindCandidateConflict_SkipsDeleted(t *testing.T) {
	deleted := candidateSlot(3, "10:00", "12:00")
	deleted.Status = domain.StatusDeleted

	assert.Nil(t, FindCandidateConflict([]*domain.CandidateSlot{deleted}, "10:30", "11:30", 0))
}

func TestFindInterviewerConflict(t *testing.T) {
	existing := []*domain.InterviewerSlot{interviewerSlot(1, "10:00", "12:00")}

	tests := []struct {
		name     string
		from     types.TimeString
		to       types.TimeString
		conflict bool
	}{
		{name: "inside", from: "10:30", to: "11:30", conflict: true},
		{name: "covers", from: "09:00", to: "13:00", conflict: true},
		// Для создания слота интервьюера соприкосновение допустимо
		{name: "touching left boundary", from: "08:00", to: "10:00", conflict: false},
		{name: "touching right boundary", from: "12:00", to: "14:00", conflict: false},
		{name: "fully before", from: "08:00", to: "09:30", conflict: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := FindInterviewerConflict(existing, tt.from, tt.to, 0)
			if tt.conflict {
				assert.NotNil(t, got)
			} else {
				assert.Nil(t, got)
			}
		})
	}
}

func TestFindInterviewerConflict_Symmetry(t *testing.T) {
	// A пересекается с B тогда и только тогда, когда B пересекается с A
	pairs := []struct {
		aFrom, aTo types.TimeString
		bFrom, bTo types.TimeString
	}{
		{"10:00", "12:00", "11:00", "13:00"},
		{"10:00", "12:00", "12:00", "14:00"},
		{"10:00", "11:30", "13:00", "14:30"},
		{"09:00", "15:00", "10:00", "11:00"},
	}

	for _, p := range pairs {
		aConflictsB := FindInterviewerConflict(
			[]*domain.InterviewerSlot{interviewerSlot(1, p.bFrom, p.bTo)}, p.aFrom, p.aTo, 0) != nil
		bConflictsA := FindInterviewerConflict(
			[]*domain.InterviewerSlot{interviewerSlot(2, p.aFrom, p.aTo)}, p.bFrom, p.bTo, 0) != nil

		assert.Equal(t, aConflictsB, bConflictsA,
			"asymmetric overlap for [%s-%s] vs [%s-%s]", p.aFrom, p.aTo, p.bFrom, p.bTo)
	}
}

func TestFindInterviewerConflictWithBuffer(t *testing.T) {
	existing := []*domain.InterviewerSlot{interviewerSlot(1, "10:00", "12:00")}

	tests := []struct {
		name     string
		from     types.TimeString
		to       types.TimeString
		conflict bool
	}{
		{name: "same range", from: "10:00", to: "12:00", conflict: true},
		{name: "inside", from: "10:30", to: "11:30", conflict: true},
		// Буфер 30 минут вокруг существующего слота
		{name: "ends at boundary", from: "08:00", to: "10:00", conflict: true},
		{name: "starts at boundary", from: "12:00", to: "14:00", conflict: true},
		{name: "ends 30 min before", from: "08:00", to: "09:30", conflict: false},
		{name: "starts 30 min after", from: "12:30", to: "14:00", conflict: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := FindInterviewerConflictWithBuffer(existing, tt.from, tt.to, 0)
			if tt.conflict {
				assert.NotNil(t, got)
			} else {
				assert.Nil(t, got)
			}
		})
	}
}

func TestFindInterviewerConflictWithBuffer_ExcludesSelf(t *testing.T) {
	existing := []*domain.InterviewerSlot{interviewerSlot(5, "10:00", "12:00")}

	assert.Nil(t, FindInterviewerConflictWithBuffer(existing, "10:00", "12:00", 5))
}
