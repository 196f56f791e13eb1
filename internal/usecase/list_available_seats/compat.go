package list_available_seats

import (
	"context"
	"fmt"
	"sort"

	"github.com/tak4ma/VMS-BanquetService/internal/domain"
)

// buildTableAvailability строит представление доступности одного стола
//
// Правила совместимости применяются к отсортированной по seat_number
// последовательности мест, соседство циклическое: за последним местом
// снова идет первое
//   - forbidden: недоступен весь стол, все его места
//   - separation: недоступны само место и его непосредственные соседи
//     (предыдущее и следующее по кругу)
//   - allow: недоступно только само занятое место
func (uc *UseCase) buildTableAvailability(
	ctx context.Context,
	requesterTypeID int64,
	table *domain.BanquetTable,
	occupancy map[int64]*domain.SeatOccupancy,
) (*TableAvailability, error) {
	seats := make([]domain.BanquetSeat, len(table.Seats))
	copy(seats, table.Seats)
	sort.Slice(seats, func(i, j int) bool {
		return seats[i].SeatNumber < seats[j].SeatNumber
	})

	ta := &TableAvailability{
		ID:        table.ID,
		Capacity:  table.Capacity,
		State:     table.State,
		Available: true,
		Seats:     make([]SeatAvailability, len(seats)),
		Occupies:  []Occupant{},
	}

	n := len(seats)
	unavailable := make([]bool, n)

	for i, seat := range seats {
		ta.Seats[i] = SeatAvailability{
			ID:         seat.ID,
			SeatNumber: seat.SeatNumber,
			Available:  true,
		}

		occ, occupied := occupancy[seat.ID]
		if !occupied {
			continue
		}

		reservationID := occ.ReservationID
		ta.Seats[i].ReservationID = &reservationID
		unavailable[i] = true

		if occ.Spirit != nil {
			ta.Occupies = append(ta.Occupies, Occupant{
				Spirit: *occ.Spirit,
				Type:   occ.Type,
			})
		}

		// Без типа гостя правило совместимости вычислить нельзя:
		// ограничение не накладывается
		if occ.Spirit == nil {
			continue
		}

		relation, err := uc.relations.RelationBetween(ctx, requesterTypeID, occ.Spirit.TypeID)
		if err != nil {
			uc.logger.Error("ListAvailableSeats: failed to resolve relation between types %d and %d: %v",
				requesterTypeID, occ.Spirit.TypeID, err)
			return nil, fmt.Errorf("%w: failed to resolve type relation: %v", ErrInternal, err)
		}

		switch relation {
		case domain.RelationForbidden:
			ta.Available = false

		case domain.RelationSeparation:
			// Циклические соседи через модульную арифметику
			// На столе из одного места prev == next == i, правило
			// применяется один раз
			prev := (i - 1 + n) % n
			next := (i + 1) % n
			unavailable[prev] = true
			unavailable[next] = true
		}
	}

	// forbidden закрывает стол целиком
	if !ta.Available {
		for i := range unavailable {
			unavailable[i] = true
		}
	}

	for i := range ta.Seats {
		if unavailable[i] {
			ta.Seats[i].Available = false
		}
	}

	return ta, nil
}
