package create_type_relation

import (
	"context"

	"github.com/tak4ma/VMS-BanquetService/internal/service/typerelation/models"
)

type TypeRelationService interface {
	Create(ctx context.Context, req *models.CreateTypeRelationRequest) (*models.TypeRelationResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
