package reservation

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"

	"github.com/tak4ma/VMS-BanquetService/internal/domain"
	"github.com/tak4ma/VMS-BanquetService/pkg/dbmetrics"
	"github.com/tak4ma/VMS-BanquetService/pkg/psqlbuilder"
)

// Repository read-only репозиторий броней для расчета доступности
// Брони создаются и изменяются другим контуром, здесь только выборка пересечений
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория броней
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// FindOverlapping возвращает занятость мест в окне [windowStart, windowEnd)
// одним пакетным запросом: для каждого места с хотя бы одной пересекающейся
// бронью берется первая найденная вместе с духом-гостем и его типом.
//
// Пересечение строгое (полуоткрытые интервалы): бронь, заканчивающаяся ровно
// в windowStart или начинающаяся ровно в windowEnd, НЕ пересекает окно.
// Детерминизм выбора "первой" брони обеспечивает ORDER BY start_time, id.
//
// Пустой список мест не порождает запроса к БД
func (r *Repository) FindOverlapping(ctx context.Context, seatIDs []int64, windowStart, windowEnd time.Time) (map[int64]*domain.SeatOccupancy, error) {
	occupancy := make(map[int64]*domain.SeatOccupancy)
	if len(seatIDs) == 0 {
		return occupancy, nil
	}

	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(
		"r.id",
		"r.seat_id",
		"s.id",
		"s.name",
		"s.type_id",
		"s.active",
		"st.id",
		"st.name",
		"st.kanji",
		"st.danger_score",
	).
		From("reservations r").
		LeftJoin("venue_accounts va ON va.id = r.account_id").
		LeftJoin("spirits s ON s.id = va.spirit_id").
		LeftJoin("spirit_types st ON st.id = s.type_id").
		Where(squirrel.Eq{"r.seat_id": seatIDs}).
		Where(squirrel.Lt{"r.start_time": windowEnd}).
		Where(squirrel.Gt{"r.end_time": windowStart}).
		OrderBy("r.start_time ASC, r.id ASC").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: FindOverlapping - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: FindOverlapping - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	for rows.Next() {
		var (
			reservationID int64
			seatID        int64

			spiritID     sql.NullInt64
			spiritName   sql.NullString
			spiritTypeID sql.NullInt64
			spiritActive sql.NullBool

			typeID      sql.NullInt64
			typeName    sql.NullString
			typeKanji   sql.NullString
			dangerScore sql.NullInt64
		)

		err := rows.Scan(
			&reservationID,
			&seatID,
			&spiritID,
			&spiritName,
			&spiritTypeID,
			&spiritActive,
			&typeID,
			&typeName,
			&typeKanji,
			&dangerScore,
		)
		if err != nil {
			return nil, fmt.Errorf("%w: FindOverlapping - scan row: %v", ErrScanRow, err)
		}

		// Первая бронь по месту выигрывает (строки уже отсортированы)
		if _, ok := occupancy[seatID]; ok {
			continue
		}

		occ := &domain.SeatOccupancy{ReservationID: reservationID}

		if spiritID.Valid {
			occ.Spirit = &domain.Spirit{
				ID:     spiritID.Int64,
				Name:   spiritName.String,
				TypeID: spiritTypeID.Int64,
				Active: spiritActive.Bool,
			}
		}
		if typeID.Valid {
			occ.Type = &domain.SpiritType{
				ID:          typeID.Int64,
				Name:        typeName.String,
				Kanji:       typeKanji.String,
				DangerScore: int(dangerScore.Int64),
			}
		}

		occupancy[seatID] = occ
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: FindOverlapping - rows error: %v", ErrScanRow, err)
	}

	return occupancy, nil
}
