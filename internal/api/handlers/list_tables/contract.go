package list_tables

import (
	"context"

	"github.com/tak4ma/VMS-BanquetService/internal/service/banquet/models"
)

type BanquetService interface {
	ListTables(ctx context.Context) (*models.TableListResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
