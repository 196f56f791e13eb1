package banquet

import "errors"

var (
	// ErrTableNotFound возвращается, когда стол не найден
	ErrTableNotFound = errors.New("banquet service: table not found")

	// ErrSeatNotFound возвращается, когда место не найдено
	ErrSeatNotFound = errors.New("banquet service: seat not found")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("banquet service: invalid input data")

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = errors.New("banquet service: internal error")
)
