package candidateslot

import "errors"

var (
	// ErrSlotNotFound возвращается, когда слот кандидата не найден
	ErrSlotNotFound = errors.New("candidateslot.repository: slot not found")

	// ErrBuildQuery возвращается при ошибке построения SQL запроса
	ErrBuildQuery = errors.New("candidateslot.repository: failed to build query")

	// ErrExecQuery возвращается при ошибке выполнения SQL запроса
	ErrExecQuery = errors.New("candidateslot.repository: failed to execute query")

	// ErrScanRow возвращается при ошибке сканирования результата запроса
	ErrScanRow = errors.New("candidateslot.repository: failed to scan row")
)
