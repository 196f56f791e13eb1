package get_available_time_slots

import (
	"context"
	"time"

	"github.com/tak4ma/VMS-BanquetService/internal/usecase/list_available_seats"
)

// AvailabilityProvider интерфейс расчета доступности мест для одного окна времени
type AvailabilityProvider interface {
	Execute(ctx context.Context, req *list_available_seats.Request) (*list_available_seats.Response, error)
}

// TimeProvider интерфейс для получения текущего времени (для тестирования)
type TimeProvider interface {
	Now() time.Time
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// RealTimeProvider реальный провайдер времени для production
type RealTimeProvider struct{}

// Now возвращает текущее время
func (p *RealTimeProvider) Now() time.Time {
	return time.Now()
}
