package dashboard

import "errors"

var (
	// ErrWeekNumberNotAllowed возвращается для недели вне пары текущая/следующая
	ErrWeekNumberNotAllowed = errors.New("dashboard: week number is not acceptable")

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = errors.New("dashboard: internal error")
)
