package timeslot

import (
	"fmt"

	"github.com/m04kA/SMC-InterviewPlanning/internal/domain"
	"github.com/m04kA/SMC-InterviewPlanning/pkg/types"
)

// Validator проверяет границы временных слотов и бронирований
// Правила: минуты кратны 30, from < to, длительность не меньше длительности
// интервью (для бронирования - ровно равна ей), границы внутри рабочих часов
type Validator struct {
	interviewDuration int
	workingHoursFrom  types.TimeString
	workingHoursTo    types.TimeString
}

// NewValidator создает валидатор с правилами из конфигурации
func NewValidator(interviewDurationMinutes int, workingHoursFrom, workingHoursTo types.TimeString) *Validator {
	return &Validator{
		interviewDuration: interviewDurationMinutes,
		workingHoursFrom:  workingHoursFrom,
		workingHoursTo:    workingHoursTo,
	}
}

// InterviewDuration возвращает настроенную длительность интервью в минутах
func (v *Validator) InterviewDuration() int {
	return v.interviewDuration
}

// ValidateSlotBoundaries проверяет границы слота доступности
func (v *Validator) ValidateSlotBoundaries(from, to types.TimeString) error {
	if err := from.Validate(); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidBoundaries, err)
	}
	if err := to.Validate(); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidBoundaries, err)
	}

	if from.Minute()%domain.SlotStepMinutes != 0 || to.Minute()%domain.SlotStepMinutes != 0 {
		return fmt.Errorf("%w: minutes should be rounded to :00 or :30", ErrInvalidBoundaries)
	}

	if !from.IsBefore(to) {
		return fmt.Errorf("%w: from %s is not before to %s", ErrInvalidBoundaries, from, to)
	}

	if from.MinutesBetween(to) < v.interviewDuration {
		return fmt.Errorf("%w: range cannot be shorter than interview duration %d min",
			ErrInvalidBoundaries, v.interviewDuration)
	}

	if from.IsBefore(v.workingHoursFrom) || to.IsAfter(v.workingHoursTo) {
		return fmt.Errorf("%w: range violates working hours [%s - %s]",
			ErrInvalidBoundaries, v.workingHoursFrom, v.workingHoursTo)
	}

	return nil
}

// ValidateBookingBoundaries проверяет границы бронирования
// Помимо правил слота требует, чтобы длительность была ровно равна
// длительности интервью
func (v *Validator) ValidateBookingBoundaries(start, end types.TimeString) error {
	if err := v.ValidateSlotBoundaries(start, end); err != nil {
		return err
	}

	if start.MinutesBetween(end) != v.interviewDuration {
		return fmt.Errorf("%w: range should be equal to interview duration %d min",
			ErrInvalidBoundaries, v.interviewDuration)
	}

	return nil
}
