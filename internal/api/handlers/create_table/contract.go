package create_table

import (
	"context"

	"github.com/tak4ma/VMS-BanquetService/internal/service/banquet/models"
)

type BanquetService interface {
	CreateTable(ctx context.Context, req *models.CreateTableRequest) (*models.TableResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
