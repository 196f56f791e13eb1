package banquet

import (
	"context"

	"github.com/tak4ma/VMS-BanquetService/internal/domain"
)

// BanquetRepository интерфейс репозитория столов и мест
type BanquetRepository interface {
	ListWithSeats(ctx context.Context) ([]*domain.BanquetTable, error)
	Create(ctx context.Context, capacity int, state bool) (*domain.BanquetTable, error)
	GetByID(ctx context.Context, id int64) (*domain.BanquetTable, error)
	UpdateState(ctx context.Context, id int64, state bool) error
	Delete(ctx context.Context, id int64) error
	ListSeats(ctx context.Context, tableID *int64) ([]*domain.BanquetSeat, error)
	GetSeatByID(ctx context.Context, id int64) (*domain.BanquetSeat, error)
}

// TransactionManager интерфейс менеджера транзакций
// Создание стола пишет в две таблицы (стол + места), удаление стирает из двух
type TransactionManager interface {
	DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
