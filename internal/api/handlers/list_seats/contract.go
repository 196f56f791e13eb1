package list_seats

import (
	"context"

	"github.com/tak4ma/VMS-BanquetService/internal/service/banquet/models"
)

type BanquetService interface {
	ListSeats(ctx context.Context, tableID *int64) (*models.SeatListResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
