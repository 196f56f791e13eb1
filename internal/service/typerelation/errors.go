package typerelation

import "errors"

var (
	// ErrRelationNotFound возвращается, когда правило совместимости не найдено
	ErrRelationNotFound = errors.New("typerelation service: relation not found")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("typerelation service: invalid input data")

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = errors.New("typerelation service: internal error")
)
