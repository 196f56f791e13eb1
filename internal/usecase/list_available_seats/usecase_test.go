package list_available_seats

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tak4ma/VMS-BanquetService/internal/domain"
	spiritRepo "github.com/tak4ma/VMS-BanquetService/internal/infra/storage/spirit"
)

type fakeBanquetRepo struct {
	tables []*domain.BanquetTable
}

func (f *fakeBanquetRepo) ListWithSeats(_ context.Context) ([]*domain.BanquetTable, error) {
	return f.tables, nil
}

type fakeReservationRepo struct {
	occupancy map[int64]*domain.SeatOccupancy

	calls       int
	lastSeatIDs []int64
}

func (f *fakeReservationRepo) FindOverlapping(_ context.Context, seatIDs []int64, _, _ time.Time) (map[int64]*domain.SeatOccupancy, error) {
	f.calls++
	f.lastSeatIDs = seatIDs
	if len(seatIDs) == 0 {
		return map[int64]*domain.SeatOccupancy{}, nil
	}
	return f.occupancy, nil
}

type fakeSpiritRepo struct {
	spirits map[int64]*domain.Spirit
}

func (f *fakeSpiritRepo) GetByID(_ context.Context, id int64) (*domain.Spirit, error) {
	s, ok := f.spirits[id]
	if !ok {
		return nil, spiritRepo.ErrSpiritNotFound
	}
	return s, nil
}

type typePair struct {
	a int64
	b int64
}

type fakeRelations struct {
	rules map[typePair]domain.RelationType
}

func (f *fakeRelations) RelationBetween(_ context.Context, typeA, typeB int64) (domain.RelationType, error) {
	if rel, ok := f.rules[typePair{typeA, typeB}]; ok {
		return rel, nil
	}
	if rel, ok := f.rules[typePair{typeB, typeA}]; ok {
		return rel, nil
	}
	return domain.RelationAllow, nil
}

type noopLogger struct{}

func (noopLogger) Info(string, ...interface{})  {}
func (noopLogger) Warn(string, ...interface{})  {}
func (noopLogger) Error(string, ...interface{}) {}

// table создает стол с последовательными ID мест, начиная с seatBaseID+1
func table(id int64, seatBaseID int64, capacity int) *domain.BanquetTable {
	seats := make([]domain.BanquetSeat, capacity)
	for i := 0; i < capacity; i++ {
		seats[i] = domain.BanquetSeat{
			ID:         seatBaseID + int64(i) + 1,
			TableID:    id,
			SeatNumber: i + 1,
		}
	}
	return &domain.BanquetTable{ID: id, Capacity: capacity, State: true, Seats: seats}
}

func occupant(reservationID, spiritID, typeID int64) *domain.SeatOccupancy {
	return &domain.SeatOccupancy{
		ReservationID: reservationID,
		Spirit:        &domain.Spirit{ID: spiritID, Name: "guest", TypeID: typeID, Active: true},
		Type:          &domain.SpiritType{ID: typeID, Name: "type"},
	}
}

func newUseCase(
	tables []*domain.BanquetTable,
	occupancy map[int64]*domain.SeatOccupancy,
	rules map[typePair]domain.RelationType,
) (*UseCase, *fakeReservationRepo) {
	reservations := &fakeReservationRepo{occupancy: occupancy}
	uc := NewUseCase(
		&fakeBanquetRepo{tables: tables},
		reservations,
		&fakeSpiritRepo{spirits: map[int64]*domain.Spirit{
			1: {ID: 1, Name: "requester", TypeID: 100, Active: true},
		}},
		&fakeRelations{rules: rules},
		noopLogger{},
	)
	return uc, reservations
}

func seatByNumber(t *testing.T, ta TableAvailability, number int) SeatAvailability {
	t.Helper()
	for _, s := range ta.Seats {
		if s.SeatNumber == number {
			return s
		}
	}
	t.Fatalf("seat %d not found", number)
	return SeatAvailability{}
}

func at(hour int) time.Time {
	return time.Date(2026, 5, 1, hour, 0, 0, 0, time.UTC)
}

func TestExecute_UnknownSpiritReturnsEmptyResult(t *testing.T) {
	uc, reservations := newUseCase([]*domain.BanquetTable{table(1, 0, 4)}, nil, nil)

	resp, err := uc.Execute(context.Background(), &Request{SpiritID: 999, StartTime: at(10)})
	require.NoError(t, err)

	assert.Empty(t, resp.Tables)
	assert.Equal(t, 0, reservations.calls, "no overlap query for unknown spirit")
}

func TestExecute_WindowIsOneHour(t *testing.T) {
	uc, _ := newUseCase([]*domain.BanquetTable{table(1, 0, 2)}, nil, nil)

	resp, err := uc.Execute(context.Background(), &Request{SpiritID: 1, StartTime: at(10)})
	require.NoError(t, err)

	assert.Equal(t, at(10), resp.StartTime)
	assert.Equal(t, at(11), resp.EndTime)
}

func TestExecute_BatchesOverlapQueryAcrossTables(t *testing.T) {
	tables := []*domain.BanquetTable{table(1, 0, 2), table(2, 10, 3)}
	uc, reservations := newUseCase(tables, nil, nil)

	_, err := uc.Execute(context.Background(), &Request{SpiritID: 1, StartTime: at(10)})
	require.NoError(t, err)

	assert.Equal(t, 1, reservations.calls, "one batched query for all seats")
	assert.ElementsMatch(t, []int64{1, 2, 11, 12, 13}, reservations.lastSeatIDs)
}

func TestExecute_OccupiedSeatUnavailableWithReservationID(t *testing.T) {
	uc, _ := newUseCase(
		[]*domain.BanquetTable{table(1, 0, 4)},
		map[int64]*domain.SeatOccupancy{2: occupant(77, 5, 200)},
		nil, // нет правил: allow по умолчанию
	)

	resp, err := uc.Execute(context.Background(), &Request{SpiritID: 1, StartTime: at(10)})
	require.NoError(t, err)
	require.Len(t, resp.Tables, 1)

	ta := resp.Tables[0]
	assert.True(t, ta.Available)

	occupied := seatByNumber(t, ta, 2)
	assert.False(t, occupied.Available)
	require.NotNil(t, occupied.ReservationID)
	assert.Equal(t, int64(77), *occupied.ReservationID)

	for _, number := range []int{1, 3, 4} {
		assert.True(t, seatByNumber(t, ta, number).Available, "seat %d stays free under allow", number)
	}

	require.Len(t, ta.Occupies, 1)
	assert.Equal(t, int64(5), ta.Occupies[0].Spirit.ID)
	require.NotNil(t, ta.Occupies[0].Type)
	assert.Equal(t, int64(200), ta.Occupies[0].Type.ID)
}

func TestExecute_ForbiddenClosesWholeTable(t *testing.T) {
	uc, _ := newUseCase(
		[]*domain.BanquetTable{table(1, 0, 4)},
		map[int64]*domain.SeatOccupancy{2: occupant(77, 5, 200)},
		map[typePair]domain.RelationType{{100, 200}: domain.RelationForbidden},
	)

	resp, err := uc.Execute(context.Background(), &Request{SpiritID: 1, StartTime: at(10)})
	require.NoError(t, err)
	require.Len(t, resp.Tables, 1)

	ta := resp.Tables[0]
	assert.False(t, ta.Available)
	for _, s := range ta.Seats {
		assert.False(t, s.Available, "seat %d must be unavailable on a forbidden table", s.SeatNumber)
	}
}

func TestExecute_SeparationMarksImmediateNeighborsOnly(t *testing.T) {
	uc, _ := newUseCase(
		[]*domain.BanquetTable{table(1, 0, 4)},
		map[int64]*domain.SeatOccupancy{2: occupant(77, 5, 200)},
		map[typePair]domain.RelationType{{100, 200}: domain.RelationSeparation},
	)

	resp, err := uc.Execute(context.Background(), &Request{SpiritID: 1, StartTime: at(10)})
	require.NoError(t, err)
	require.Len(t, resp.Tables, 1)

	ta := resp.Tables[0]
	assert.True(t, ta.Available, "separation does not close the table")
	assert.False(t, seatByNumber(t, ta, 1).Available, "previous neighbor")
	assert.False(t, seatByNumber(t, ta, 2).Available, "occupied seat")
	assert.False(t, seatByNumber(t, ta, 3).Available, "next neighbor")
	assert.True(t, seatByNumber(t, ta, 4).Available, "opposite seat stays free")
}

func TestExecute_SeparationWrapsCircularly(t *testing.T) {
	// Занято место 1: "предыдущим" соседом по кругу является последнее место
	uc, _ := newUseCase(
		[]*domain.BanquetTable{table(1, 0, 4)},
		map[int64]*domain.SeatOccupancy{1: occupant(77, 5, 200)},
		map[typePair]domain.RelationType{{100, 200}: domain.RelationSeparation},
	)

	resp, err := uc.Execute(context.Background(), &Request{SpiritID: 1, StartTime: at(10)})
	require.NoError(t, err)

	ta := resp.Tables[0]
	assert.False(t, seatByNumber(t, ta, 4).Available, "previous wraps to the last seat")
	assert.False(t, seatByNumber(t, ta, 1).Available)
	assert.False(t, seatByNumber(t, ta, 2).Available)
	assert.True(t, seatByNumber(t, ta, 3).Available)
}

func TestExecute_SingleSeatTableSeparationAppliesOnce(t *testing.T) {
	uc, _ := newUseCase(
		[]*domain.BanquetTable{table(1, 0, 1)},
		map[int64]*domain.SeatOccupancy{1: occupant(77, 5, 200)},
		map[typePair]domain.RelationType{{100, 200}: domain.RelationSeparation},
	)

	resp, err := uc.Execute(context.Background(), &Request{SpiritID: 1, StartTime: at(10)})
	require.NoError(t, err)

	ta := resp.Tables[0]
	assert.True(t, ta.Available)
	require.Len(t, ta.Seats, 1)
	assert.False(t, ta.Seats[0].Available)
}

func TestExecute_TwoSeatTableSeparation(t *testing.T) {
	// Сценарий из двух мест: сосед одновременно и "предыдущий", и "следующий",
	// поэтому separation на S1 закрывает и S2
	uc, _ := newUseCase(
		[]*domain.BanquetTable{table(1, 0, 2)},
		map[int64]*domain.SeatOccupancy{1: occupant(77, 5, 200)},
		map[typePair]domain.RelationType{{100, 200}: domain.RelationSeparation},
	)

	resp, err := uc.Execute(context.Background(), &Request{SpiritID: 1, StartTime: at(10)})
	require.NoError(t, err)
	require.Len(t, resp.Tables, 1)

	ta := resp.Tables[0]
	assert.True(t, ta.Available)
	assert.False(t, seatByNumber(t, ta, 1).Available)
	assert.False(t, seatByNumber(t, ta, 2).Available)
	assert.False(t, ta.HasFreeSeat())
}

func TestExecute_ZeroSeatTable(t *testing.T) {
	empty := &domain.BanquetTable{ID: 1, Capacity: 0, State: true, Seats: nil}
	uc, reservations := newUseCase([]*domain.BanquetTable{empty}, nil, nil)

	resp, err := uc.Execute(context.Background(), &Request{SpiritID: 1, StartTime: at(10)})
	require.NoError(t, err)
	require.Len(t, resp.Tables, 1)

	ta := resp.Tables[0]
	assert.Empty(t, ta.Seats)
	assert.Empty(t, ta.Occupies)
	assert.True(t, ta.Available)
	assert.False(t, ta.HasFreeSeat())
	assert.Empty(t, reservations.lastSeatIDs)
}

func TestExecute_OccupantWithoutSpiritImposesNoRestrictions(t *testing.T) {
	// Бронь есть, но духа по счету восстановить не удалось:
	// место занято, правила совместимости не применяются
	uc, _ := newUseCase(
		[]*domain.BanquetTable{table(1, 0, 3)},
		map[int64]*domain.SeatOccupancy{2: {ReservationID: 88}},
		map[typePair]domain.RelationType{{100, 200}: domain.RelationForbidden},
	)

	resp, err := uc.Execute(context.Background(), &Request{SpiritID: 1, StartTime: at(10)})
	require.NoError(t, err)

	ta := resp.Tables[0]
	assert.True(t, ta.Available)
	assert.False(t, seatByNumber(t, ta, 2).Available)
	assert.True(t, seatByNumber(t, ta, 1).Available)
	assert.True(t, seatByNumber(t, ta, 3).Available)
	assert.Empty(t, ta.Occupies)
}

func TestExecute_SeatsSortedBySeatNumber(t *testing.T) {
	// Репозиторий может вернуть места в произвольном порядке,
	// соседство должно считаться по seat_number
	shuffled := &domain.BanquetTable{
		ID: 1, Capacity: 3, State: true,
		Seats: []domain.BanquetSeat{
			{ID: 3, TableID: 1, SeatNumber: 3},
			{ID: 1, TableID: 1, SeatNumber: 1},
			{ID: 2, TableID: 1, SeatNumber: 2},
		},
	}
	uc, _ := newUseCase(
		[]*domain.BanquetTable{shuffled},
		map[int64]*domain.SeatOccupancy{2: occupant(77, 5, 200)},
		map[typePair]domain.RelationType{{100, 200}: domain.RelationSeparation},
	)

	resp, err := uc.Execute(context.Background(), &Request{SpiritID: 1, StartTime: at(10)})
	require.NoError(t, err)

	ta := resp.Tables[0]
	require.Len(t, ta.Seats, 3)
	for i, s := range ta.Seats {
		assert.Equal(t, i+1, s.SeatNumber, "seats ordered by seat number")
		assert.False(t, s.Available, "all three seats fall under separation on a 3-seat ring")
	}
}

func TestExecute_ValidatesInput(t *testing.T) {
	uc, _ := newUseCase(nil, nil, nil)

	_, err := uc.Execute(context.Background(), &Request{SpiritID: 0, StartTime: at(10)})
	assert.ErrorIs(t, err, ErrInvalidInput)

	_, err = uc.Execute(context.Background(), &Request{SpiritID: 1})
	assert.ErrorIs(t, err, ErrInvalidInput)
}
