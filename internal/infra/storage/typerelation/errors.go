package typerelation

import "errors"

var (
	// ErrRelationNotFound возвращается, когда правило совместимости не найдено
	// ни в прямом, ни в обратном направлении. Это не ошибка для вызывающего
	// слоя: отсутствие правила трактуется как allow
	ErrRelationNotFound = errors.New("typerelation.repository: relation not found")

	// ErrBuildQuery возвращается при ошибке построения SQL запроса
	ErrBuildQuery = errors.New("typerelation.repository: failed to build query")

	// ErrExecQuery возвращается при ошибке выполнения SQL запроса
	ErrExecQuery = errors.New("typerelation.repository: failed to execute query")

	// ErrScanRow возвращается при ошибке сканирования результата запроса
	ErrScanRow = errors.New("typerelation.repository: failed to scan row")
)
