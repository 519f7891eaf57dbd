package update_booking

import "errors"

var (
	// ErrBookingNotFound возвращается, когда бронирование не найдено
	ErrBookingNotFound = errors.New("update_booking: booking not found")

	// ErrInterviewerSlotNotFound возвращается, когда слот интервьюера не найден
	ErrInterviewerSlotNotFound = errors.New("update_booking: interviewer slot not found")

	// ErrCandidateSlotNotFound возвращается, когда слот кандидата не найден
	ErrCandidateSlotNotFound = errors.New("update_booking: candidate slot not found")

	// ErrBookingLimitExceeded возвращается, когда у интервьюера исчерпан
	// недельный лимит бронирований
	ErrBookingLimitExceeded = errors.New("update_booking: cannot update booking due to limit")

	// ErrBookingAlreadyExists возвращается, когда на одном из слотов уже есть
	// другое бронирование, пересекающееся с новым интервалом
	ErrBookingAlreadyExists = errors.New("update_booking: booking with such range already exists")

	// ErrOutOfSlotRange возвращается, когда интервал бронирования выходит
	// за границы одного из слотов
	ErrOutOfSlotRange = errors.New("update_booking: booking is out of slot range")

	// ErrValidationFailed возвращается при превышении максимальной длины
	// темы или описания
	ErrValidationFailed = errors.New("update_booking: validation failed")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("update_booking: invalid input data")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("update_booking: internal error")
)
