package banquet

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/Masterminds/squirrel"

	"github.com/tak4ma/VMS-BanquetService/internal/domain"
	"github.com/tak4ma/VMS-BanquetService/pkg/dbmetrics"
	"github.com/tak4ma/VMS-BanquetService/pkg/psqlbuilder"
)

// Repository репозиторий столов и мест банкетного зала
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория банкетного зала
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// ListWithSeats возвращает все столы вместе с их местами
// Места каждого стола отсортированы по seat_number по возрастанию
func (r *Repository) ListWithSeats(ctx context.Context) ([]*domain.BanquetTable, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(
		"id",
		"capacity",
		"state",
		"created_at",
		"updated_at",
	).
		From("banquet_tables").
		OrderBy("id ASC").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: ListWithSeats - build tables query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: ListWithSeats - execute tables query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	tables := make([]*domain.BanquetTable, 0)
	byID := make(map[int64]*domain.BanquetTable)

	for rows.Next() {
		var t domain.BanquetTable
		var createdAt, updatedAt sql.NullTime
		if err := rows.Scan(&t.ID, &t.Capacity, &t.State, &createdAt, &updatedAt); err != nil {
			return nil, fmt.Errorf("%w: ListWithSeats - scan table: %v", ErrScanRow, err)
		}
		t.CreatedAt = createdAt.Time
		t.UpdatedAt = updatedAt.Time
		t.Seats = make([]domain.BanquetSeat, 0, t.Capacity)
		tables = append(tables, &t)
		byID[t.ID] = &t
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: ListWithSeats - tables rows error: %v", ErrScanRow, err)
	}

	if len(tables) == 0 {
		return tables, nil
	}

	seats, err := r.querySeats(ctx, executor, nil)
	if err != nil {
		return nil, err
	}
	for _, s := range seats {
		if t, ok := byID[s.TableID]; ok {
			t.Seats = append(t.Seats, *s)
		}
	}

	return tables, nil
}

// Create создает стол и автоматически создает места 1..capacity
// Обе вставки должны выполняться в одной транзакции (через context)
func (r *Repository) Create(ctx context.Context, capacity int, state bool) (*domain.BanquetTable, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert("banquet_tables").
		Columns("capacity", "state").
		Values(capacity, state).
		Suffix("RETURNING id, created_at, updated_at").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: Create - build insert query: %v", ErrBuildQuery, err)
	}

	table := domain.BanquetTable{
		Capacity: capacity,
		State:    state,
	}

	var createdAt, updatedAt sql.NullTime
	err = executor.QueryRowContext(ctx, query, args...).Scan(&table.ID, &createdAt, &updatedAt)
	if err != nil {
		return nil, fmt.Errorf("%w: Create - execute insert: %v", ErrExecQuery, err)
	}
	table.CreatedAt = createdAt.Time
	table.UpdatedAt = updatedAt.Time

	if capacity <= 0 {
		table.Seats = []domain.BanquetSeat{}
		return &table, nil
	}

	insertSeats := psqlbuilder.Insert("banquet_seats").
		Columns("table_id", "seat_number")
	for n := 1; n <= capacity; n++ {
		insertSeats = insertSeats.Values(table.ID, n)
	}

	query, args, err = insertSeats.
		Suffix("RETURNING id, table_id, seat_number").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: Create - build seats insert query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: Create - execute seats insert: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	table.Seats = make([]domain.BanquetSeat, 0, capacity)
	for rows.Next() {
		var s domain.BanquetSeat
		if err := rows.Scan(&s.ID, &s.TableID, &s.SeatNumber); err != nil {
			return nil, fmt.Errorf("%w: Create - scan seat: %v", ErrScanRow, err)
		}
		table.Seats = append(table.Seats, s)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: Create - seats rows error: %v", ErrScanRow, err)
	}

	return &table, nil
}

// GetByID получает стол по ID вместе с местами
func (r *Repository) GetByID(ctx context.Context, id int64) (*domain.BanquetTable, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(
		"id",
		"capacity",
		"state",
		"created_at",
		"updated_at",
	).
		From("banquet_tables").
		Where(squirrel.Eq{"id": id}).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - build select query: %v", ErrBuildQuery, err)
	}

	var t domain.BanquetTable
	var createdAt, updatedAt sql.NullTime

	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&t.ID, &t.Capacity, &t.State, &createdAt, &updatedAt,
	)
	if err == sql.ErrNoRows {
		return nil, ErrTableNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - scan table: %v", ErrScanRow, err)
	}
	t.CreatedAt = createdAt.Time
	t.UpdatedAt = updatedAt.Time

	seats, err := r.querySeats(ctx, executor, &id)
	if err != nil {
		return nil, err
	}
	t.Seats = make([]domain.BanquetSeat, 0, len(seats))
	for _, s := range seats {
		t.Seats = append(t.Seats, *s)
	}

	return &t, nil
}

// UpdateState обновляет состояние стола (в строю / выведен из обслуживания)
func (r *Repository) UpdateState(ctx context.Context, id int64, state bool) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update("banquet_tables").
		Set("state", state).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": id}).
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: UpdateState - build update query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: UpdateState - execute update: %v", ErrExecQuery, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: UpdateState - get rows affected: %v", ErrExecQuery, err)
	}
	if rowsAffected == 0 {
		return ErrTableNotFound
	}

	return nil
}

// Delete удаляет стол вместе с его местами
// Места удаляются явно, чтобы не зависеть от каскада в схеме
func (r *Repository) Delete(ctx context.Context, id int64) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Delete("banquet_seats").
		Where(squirrel.Eq{"table_id": id}).
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: Delete - build seats delete query: %v", ErrBuildQuery, err)
	}

	if _, err := executor.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("%w: Delete - execute seats delete: %v", ErrExecQuery, err)
	}

	query, args, err = psqlbuilder.Delete("banquet_tables").
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: Delete - build table delete query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: Delete - execute table delete: %v", ErrExecQuery, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: Delete - get rows affected: %v", ErrExecQuery, err)
	}
	if rowsAffected == 0 {
		return ErrTableNotFound
	}

	return nil
}

// ListSeats возвращает места, опционально отфильтрованные по столу
func (r *Repository) ListSeats(ctx context.Context, tableID *int64) ([]*domain.BanquetSeat, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)
	return r.querySeats(ctx, executor, tableID)
}

// GetSeatByID получает место по ID
func (r *Repository) GetSeatByID(ctx context.Context, id int64) (*domain.BanquetSeat, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(
		"id",
		"table_id",
		"seat_number",
	).
		From("banquet_seats").
		Where(squirrel.Eq{"id": id}).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetSeatByID - build select query: %v", ErrBuildQuery, err)
	}

	var s domain.BanquetSeat
	err = executor.QueryRowContext(ctx, query, args...).Scan(&s.ID, &s.TableID, &s.SeatNumber)
	if err == sql.ErrNoRows {
		return nil, ErrSeatNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetSeatByID - scan seat: %v", ErrScanRow, err)
	}

	return &s, nil
}

// querySeats общий запрос мест; tableID == nil означает все места
func (r *Repository) querySeats(ctx context.Context, executor DBExecutor, tableID *int64) ([]*domain.BanquetSeat, error) {
	selectBuilder := psqlbuilder.Select(
		"id",
		"table_id",
		"seat_number",
	).
		From("banquet_seats").
		OrderBy("table_id ASC, seat_number ASC")

	if tableID != nil {
		selectBuilder = selectBuilder.Where(squirrel.Eq{"table_id": *tableID})
	}

	query, args, err := selectBuilder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: querySeats - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: querySeats - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	seats := make([]*domain.BanquetSeat, 0)
	for rows.Next() {
		var s domain.BanquetSeat
		if err := rows.Scan(&s.ID, &s.TableID, &s.SeatNumber); err != nil {
			return nil, fmt.Errorf("%w: querySeats - scan seat: %v", ErrScanRow, err)
		}
		seats = append(seats, &s)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: querySeats - rows error: %v", ErrScanRow, err)
	}

	return seats, nil
}
