package create_booking

import (
	"fmt"

	"github.com/m04kA/SMC-InterviewPlanning/internal/domain"
)

// validateRequest валидирует входные данные запроса
func validateRequest(req *Request) error {
	if req.InterviewerSlotID <= 0 {
		return fmt.Errorf("%w: interviewerSlotID must be positive", ErrInvalidInput)
	}

	if req.CandidateSlotID <= 0 {
		return fmt.Errorf("%w: candidateSlotID must be positive", ErrInvalidInput)
	}

	if req.StartTime.IsZero() {
		return fmt.Errorf("%w: startTime is required", ErrInvalidInput)
	}

	if req.EndTime.IsZero() {
		return fmt.Errorf("%w: endTime is required", ErrInvalidInput)
	}

	if err := req.StartTime.Validate(); err != nil {
		return fmt.Errorf("%w: invalid startTime format: %v", ErrInvalidInput, err)
	}

	if err := req.EndTime.Validate(); err != nil {
		return fmt.Errorf("%w: invalid endTime format: %v", ErrInvalidInput, err)
	}

	return nil
}

// validateSubjectAndDescription проверяет длину темы и описания
func validateSubjectAndDescription(subject, description string, maxSubjectLen, maxDescriptionLen int) error {
	if len(subject) > maxSubjectLen {
		return fmt.Errorf("%w: subject exceeds %d characters", ErrValidationFailed, maxSubjectLen)
	}

	if len(description) > maxDescriptionLen {
		return fmt.Errorf("%w: description exceeds %d characters", ErrValidationFailed, maxDescriptionLen)
	}

	return nil
}

// validateInsideSlots проверяет, что интервал бронирования целиком лежит
// внутри обоих слотов
func validateInsideSlots(req *Request, interviewerSlot *domain.InterviewerSlot, candidateSlot *domain.CandidateSlot) error {
	if !interviewerSlot.Covers(req.StartTime, req.EndTime) {
		return fmt.Errorf("%w: [%s - %s] is outside interviewer slot [%s - %s]",
			ErrOutOfSlotRange, req.StartTime, req.EndTime, interviewerSlot.From, interviewerSlot.To)
	}

	if !candidateSlot.Covers(req.StartTime, req.EndTime) {
		return fmt.Errorf("%w: [%s - %s] is outside candidate slot [%s - %s]",
			ErrOutOfSlotRange, req.StartTime, req.EndTime, candidateSlot.From, candidateSlot.To)
	}

	return nil
}

// findSameRange возвращает бронирование с точно таким же интервалом или nil
// Бронирование с id == excludeID пропускается
func findSameRange(bookings []*domain.Booking, req *Request, excludeID int64) *domain.Booking {
	for _, b := range bookings {
		if b.ID == excludeID {
			continue
		}
		if b.HasSameRange(req.StartTime, req.EndTime) {
			return b
		}
	}
	return nil
}
