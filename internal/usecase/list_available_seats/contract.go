package list_available_seats

import (
	"context"
	"time"

	"github.com/tak4ma/VMS-BanquetService/internal/domain"
)

// BanquetRepository интерфейс репозитория столов и мест
type BanquetRepository interface {
	// ListWithSeats возвращает все столы вместе с местами
	ListWithSeats(ctx context.Context) ([]*domain.BanquetTable, error)
}

// ReservationRepository интерфейс репозитория броней
type ReservationRepository interface {
	// FindOverlapping возвращает занятость мест в окне [windowStart, windowEnd)
	FindOverlapping(ctx context.Context, seatIDs []int64, windowStart, windowEnd time.Time) (map[int64]*domain.SeatOccupancy, error)
}

// SpiritRepository интерфейс репозитория духов
type SpiritRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.Spirit, error)
}

// RelationResolver возвращает класс совместимости между двумя типами духов
// Поиск симметричный, отсутствие правила означает allow
type RelationResolver interface {
	RelationBetween(ctx context.Context, typeA, typeB int64) (domain.RelationType, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
