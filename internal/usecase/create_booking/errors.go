package create_booking

import "errors"

var (
	// ErrInterviewerSlotNotFound возвращается, когда слот интервьюера не найден
	ErrInterviewerSlotNotFound = errors.New("create_booking: interviewer slot not found")

	// ErrCandidateSlotNotFound возвращается, когда слот кандидата не найден
	ErrCandidateSlotNotFound = errors.New("create_booking: candidate slot not found")

	// ErrBookingLimitExceeded возвращается, когда у интервьюера исчерпан
	// недельный лимит бронирований
	ErrBookingLimitExceeded = errors.New("create_booking: cannot create new booking due to limit")

	// ErrBookingAlreadyExists возвращается, когда на одном из слотов уже есть
	// бронирование с таким же интервалом
	ErrBookingAlreadyExists = errors.New("create_booking: booking with such range already exists")

	// ErrOutOfSlotRange возвращается, когда интервал бронирования выходит
	// за границы одного из слотов
	ErrOutOfSlotRange = errors.New("create_booking: booking is out of slot range")

	// ErrValidationFailed возвращается при превышении максимальной длины
	// темы или описания
	ErrValidationFailed = errors.New("create_booking: validation failed")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("create_booking: invalid input data")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("create_booking: internal error")
)
