package interviewerslots

import "errors"

var (
	// ErrSlotNotFound возвращается, когда слот интервьюера не найден
	// или принадлежит другому интервьюеру
	ErrSlotNotFound = errors.New("interviewerslots: slot not found")

	// ErrWeekNumberNotAllowed возвращается, когда номер недели вне множества,
	// разрешенного для действующей роли
	ErrWeekNumberNotAllowed = errors.New("interviewerslots: week number is not acceptable")

	// ErrInvalidLimit возвращается при попытке установить отрицательный лимит
	ErrInvalidLimit = errors.New("interviewerslots: invalid booking limit")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("interviewerslots: invalid input data")

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = errors.New("interviewerslots: internal error")
)
