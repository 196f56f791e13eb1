package typerelation

import (
	"context"

	"github.com/tak4ma/VMS-BanquetService/internal/domain"
)

// TypeRelationRepository интерфейс репозитория правил совместимости
type TypeRelationRepository interface {
	Create(ctx context.Context, rel *domain.TypeRelation) (*domain.TypeRelation, error)
	List(ctx context.Context) ([]*domain.TypeRelation, error)
	GetByID(ctx context.Context, id int64) (*domain.TypeRelation, error)
	Update(ctx context.Context, rel *domain.TypeRelation) error
	Delete(ctx context.Context, id int64) error
	GetBetween(ctx context.Context, sourceTypeID, targetTypeID int64) (*domain.TypeRelation, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
