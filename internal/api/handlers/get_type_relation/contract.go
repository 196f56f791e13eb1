package get_type_relation

import (
	"context"

	"github.com/tak4ma/VMS-BanquetService/internal/service/typerelation/models"
)

type TypeRelationService interface {
	GetByID(ctx context.Context, id int64) (*models.TypeRelationResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
