package spirit

import "errors"

var (
	// ErrSpiritNotFound возвращается, когда дух не найден
	ErrSpiritNotFound = errors.New("spirit.repository: spirit not found")

	// ErrBuildQuery возвращается при ошибке построения SQL запроса
	ErrBuildQuery = errors.New("spirit.repository: failed to build query")

	// ErrScanRow возвращается при ошибке сканирования результата запроса
	ErrScanRow = errors.New("spirit.repository: failed to scan row")
)
