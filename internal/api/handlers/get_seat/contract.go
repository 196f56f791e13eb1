package get_seat

import (
	"context"

	"github.com/tak4ma/VMS-BanquetService/internal/service/banquet/models"
)

type BanquetService interface {
	GetSeat(ctx context.Context, id int64) (*models.SeatResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
