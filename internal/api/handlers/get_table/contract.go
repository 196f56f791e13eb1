package get_table

import (
	"context"

	"github.com/tak4ma/VMS-BanquetService/internal/service/banquet/models"
)

type BanquetService interface {
	GetTable(ctx context.Context, id int64) (*models.TableResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
