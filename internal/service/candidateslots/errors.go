package candidateslots

import "errors"

var (
	// ErrSlotNotFound возвращается, когда слот кандидата не найден
	ErrSlotNotFound = errors.New("candidateslots: slot not found")

	// ErrInvalidDayOfWeek возвращается, когда дата слота выпадает на выходной
	// или находится в прошлом
	ErrInvalidDayOfWeek = errors.New("candidateslots: date is in the past or not a working day")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("candidateslots: invalid input data")

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = errors.New("candidateslots: internal error")
)
