package list_type_relations

import (
	"context"

	"github.com/tak4ma/VMS-BanquetService/internal/service/typerelation/models"
)

type TypeRelationService interface {
	List(ctx context.Context) (*models.TypeRelationListResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
