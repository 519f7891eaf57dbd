package timeslot

import (
	"github.com/m04kA/SMC-InterviewPlanning/internal/domain"
	"github.com/m04kA/SMC-InterviewPlanning/pkg/types"
)

// Правила пересечения различаются по виду слота:
//   - слоты кандидата: соприкосновение границ тоже считается конфликтом;
//   - создание слота интервьюера: конфликт только при настоящем пересечении
//     интервалов, соприкосновение допустимо;
//   - обновление слота интервьюера: вокруг существующих слотов действует
//     буфер в 30 минут.
// Это осознанно разные правила, см. DESIGN.md.

// FindCandidateConflict возвращает первый слот кандидата, конфликтующий с
// [from, to], или nil. Слот с id == excludeID пропускается (обновление самого
// себя конфликтом не является)
func FindCandidateConflict(existing []*domain.CandidateSlot, from, to types.TimeString, excludeID int64) *domain.CandidateSlot {
	for _, slot := range existing {
		if slot.ID == excludeID || slot.IsDeleted() {
			continue
		}
		if !to.IsBefore(slot.From) && !from.IsAfter(slot.To) {
			return slot
		}
	}
	return nil
}

// FindInterviewerConflict возвращает первый слот интервьюера, интервал
// которого действительно пересекается с [from, to], или nil
func FindInterviewerConflict(existing []*domain.InterviewerSlot, from, to types.TimeString, excludeID int64) *domain.InterviewerSlot {
	for _, slot := range existing {
		if slot.ID == excludeID || slot.IsDeleted() {
			continue
		}
		if from.IsBefore(slot.To) && to.IsAfter(slot.From) {
			return slot
		}
	}
	return nil
}

// FindInterviewerConflictWithBuffer возвращает первый слот интервьюера,
// нарушающий 30-минутный буфер вокруг [from, to], или nil
// Используется при обновлении слота интервьюера
func FindInterviewerConflictWithBuffer(existing []*domain.InterviewerSlot, from, to types.TimeString, excludeID int64) *domain.InterviewerSlot {
	fromMin := from.TotalMinutes()
	toMin := to.TotalMinutes()

	for _, slot := range existing {
		if slot.ID == excludeID || slot.IsDeleted() {
			continue
		}

		slotFrom := slot.From.TotalMinutes()
		slotTo := slot.To.TotalMinutes()

		// Интервал, расширенный буфером с обеих сторон, не должен
		// пересекаться с существующим слотом
		if fromMin < slotTo+domain.AdjacencyBufferMinutes &&
			toMin > slotFrom-domain.AdjacencyBufferMinutes {
			return slot
		}
	}
	return nil
}
