package list_available_seats

import (
	"context"

	listAvailableSeats "github.com/tak4ma/VMS-BanquetService/internal/usecase/list_available_seats"
)

type ListAvailableSeatsUseCase interface {
	Execute(ctx context.Context, req *listAvailableSeats.Request) (*listAvailableSeats.Response, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
