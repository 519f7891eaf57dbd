package bookinglimit

import "errors"

var (
	// ErrLimitNotFound возвращается, когда лимит для интервьюера и недели не задан
	ErrLimitNotFound = errors.New("bookinglimit.repository: limit not found")

	// ErrBuildQuery возвращается при ошибке построения SQL запроса
	ErrBuildQuery = errors.New("bookinglimit.repository: failed to build query")

	// ErrExecQuery возвращается при ошибке выполнения SQL запроса
	ErrExecQuery = errors.New("bookinglimit.repository: failed to execute query")

	// ErrScanRow возвращается при ошибке сканирования результата запроса
	ErrScanRow = errors.New("bookinglimit.repository: failed to scan row")
)
