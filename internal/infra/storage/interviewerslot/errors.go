package interviewerslot

import "errors"

var (
	// ErrSlotNotFound возвращается, когда слот интервьюера не найден
	ErrSlotNotFound = errors.New("interviewerslot.repository: slot not found")

	// ErrBuildQuery возвращается при ошибке построения SQL запроса
	ErrBuildQuery = errors.New("interviewerslot.repository: failed to build query")

	// ErrExecQuery возвращается при ошибке выполнения SQL запроса
	ErrExecQuery = errors.New("interviewerslot.repository: failed to execute query")

	// ErrScanRow возвращается при ошибке сканирования результата запроса
	ErrScanRow = errors.New("interviewerslot.repository: failed to scan row")
)
