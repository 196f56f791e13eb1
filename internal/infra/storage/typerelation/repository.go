package typerelation

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/Masterminds/squirrel"

	"github.com/tak4ma/VMS-BanquetService/internal/domain"
	"github.com/tak4ma/VMS-BanquetService/pkg/dbmetrics"
	"github.com/tak4ma/VMS-BanquetService/pkg/psqlbuilder"
)

var relationColumns = []string{
	"id",
	"source_type_id",
	"target_type_id",
	"relation",
}

// Repository репозиторий правил совместимости типов духов
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория правил совместимости
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// Create создает правило совместимости
func (r *Repository) Create(ctx context.Context, rel *domain.TypeRelation) (*domain.TypeRelation, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert("type_relations").
		Columns("source_type_id", "target_type_id", "relation").
		Values(rel.SourceTypeID, rel.TargetTypeID, rel.Relation).
		Suffix("RETURNING id").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: Create - build insert query: %v", ErrBuildQuery, err)
	}

	if err := executor.QueryRowContext(ctx, query, args...).Scan(&rel.ID); err != nil {
		return nil, fmt.Errorf("%w: Create - execute insert: %v", ErrExecQuery, err)
	}

	return rel, nil
}

// List возвращает все правила совместимости
func (r *Repository) List(ctx context.Context) ([]*domain.TypeRelation, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(relationColumns...).
		From("type_relations").
		OrderBy("id ASC").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: List - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: List - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	relations := make([]*domain.TypeRelation, 0)
	for rows.Next() {
		var rel domain.TypeRelation
		if err := rows.Scan(&rel.ID, &rel.SourceTypeID, &rel.TargetTypeID, &rel.Relation); err != nil {
			return nil, fmt.Errorf("%w: List - scan relation: %v", ErrScanRow, err)
		}
		relations = append(relations, &rel)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: List - rows error: %v", ErrScanRow, err)
	}

	return relations, nil
}

// GetByID получает правило совместимости по ID
func (r *Repository) GetByID(ctx context.Context, id int64) (*domain.TypeRelation, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(relationColumns...).
		From("type_relations").
		Where(squirrel.Eq{"id": id}).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - build select query: %v", ErrBuildQuery, err)
	}

	var rel domain.TypeRelation
	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&rel.ID, &rel.SourceTypeID, &rel.TargetTypeID, &rel.Relation,
	)
	if err == sql.ErrNoRows {
		return nil, ErrRelationNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - scan relation: %v", ErrScanRow, err)
	}

	return &rel, nil
}

// Update обновляет правило совместимости
func (r *Repository) Update(ctx context.Context, rel *domain.TypeRelation) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update("type_relations").
		Set("source_type_id", rel.SourceTypeID).
		Set("target_type_id", rel.TargetTypeID).
		Set("relation", rel.Relation).
		Where(squirrel.Eq{"id": rel.ID}).
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: Update - build update query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: Update - execute update: %v", ErrExecQuery, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: Update - get rows affected: %v", ErrExecQuery, err)
	}
	if rowsAffected == 0 {
		return ErrRelationNotFound
	}

	return nil
}

// Delete удаляет правило совместимости
func (r *Repository) Delete(ctx context.Context, id int64) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Delete("type_relations").
		Where(squirrel.Eq{"id": id}).
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: Delete - build delete query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: Delete - execute delete: %v", ErrExecQuery, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: Delete - get rows affected: %v", ErrExecQuery, err)
	}
	if rowsAffected == 0 {
		return ErrRelationNotFound
	}

	return nil
}

// GetBetween ищет правило между двумя типами: сначала точную пару
// (source, target), затем обратную (target, source). Если не найдено ни
// одной строки, возвращает ErrRelationNotFound
func (r *Repository) GetBetween(ctx context.Context, sourceTypeID, targetTypeID int64) (*domain.TypeRelation, error) {
	rel, err := r.getByPair(ctx, sourceTypeID, targetTypeID)
	if err == nil {
		return rel, nil
	}
	if err != ErrRelationNotFound {
		return nil, err
	}

	return r.getByPair(ctx, targetTypeID, sourceTypeID)
}

func (r *Repository) getByPair(ctx context.Context, sourceTypeID, targetTypeID int64) (*domain.TypeRelation, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(relationColumns...).
		From("type_relations").
		Where(squirrel.Eq{
			"source_type_id": sourceTypeID,
			"target_type_id": targetTypeID,
		}).
		OrderBy("id ASC").
		Limit(1).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: getByPair - build select query: %v", ErrBuildQuery, err)
	}

	var rel domain.TypeRelation
	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&rel.ID, &rel.SourceTypeID, &rel.TargetTypeID, &rel.Relation,
	)
	if err == sql.ErrNoRows {
		return nil, ErrRelationNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: getByPair - scan relation: %v", ErrScanRow, err)
	}

	return &rel, nil
}
