package update_type_relation

import (
	"context"

	"github.com/tak4ma/VMS-BanquetService/internal/service/typerelation/models"
)

type TypeRelationService interface {
	Update(ctx context.Context, id int64, req *models.UpdateTypeRelationRequest) (*models.TypeRelationResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
