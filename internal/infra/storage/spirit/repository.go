package spirit

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/Masterminds/squirrel"

	"github.com/tak4ma/VMS-BanquetService/internal/domain"
	"github.com/tak4ma/VMS-BanquetService/pkg/dbmetrics"
	"github.com/tak4ma/VMS-BanquetService/pkg/psqlbuilder"
)

// Repository read-only репозиторий духов
// Полноценный CRUD духов живет в другом контуре; движку доступности
// нужен только поиск по ID ради типа запрашивающего гостя
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория духов
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// GetByID получает духа по ID
func (r *Repository) GetByID(ctx context.Context, id int64) (*domain.Spirit, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(
		"id",
		"name",
		"type_id",
		"active",
	).
		From("spirits").
		Where(squirrel.Eq{"id": id}).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - build select query: %v", ErrBuildQuery, err)
	}

	var s domain.Spirit
	err = executor.QueryRowContext(ctx, query, args...).Scan(&s.ID, &s.Name, &s.TypeID, &s.Active)
	if err == sql.ErrNoRows {
		return nil, ErrSpiritNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - scan spirit: %v", ErrScanRow, err)
	}

	return &s, nil
}
