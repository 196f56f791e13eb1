package banquet

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tak4ma/VMS-BanquetService/internal/domain"
	banquetRepo "github.com/tak4ma/VMS-BanquetService/internal/infra/storage/banquet"
	"github.com/tak4ma/VMS-BanquetService/internal/service/banquet/models"
	"github.com/tak4ma/VMS-BanquetService/pkg/ptr"
)

type fakeBanquetRepo struct {
	tables map[int64]*domain.BanquetTable
	nextID int64
}

func newFakeBanquetRepo() *fakeBanquetRepo {
	return &fakeBanquetRepo{tables: map[int64]*domain.BanquetTable{}, nextID: 1}
}

func (f *fakeBanquetRepo) ListWithSeats(_ context.Context) ([]*domain.BanquetTable, error) {
	out := make([]*domain.BanquetTable, 0, len(f.tables))
	for _, t := range f.tables {
		out = append(out, t)
	}
	return out, nil
}

func (f *fakeBanquetRepo) Create(_ context.Context, capacity int, state bool) (*domain.BanquetTable, error) {
	id := f.nextID
	f.nextID++

	seats := make([]domain.BanquetSeat, capacity)
	for i := 0; i < capacity; i++ {
		seats[i] = domain.BanquetSeat{ID: id*100 + int64(i) + 1, TableID: id, SeatNumber: i + 1}
	}
	table := &domain.BanquetTable{
		ID: id, Capacity: capacity, State: state, Seats: seats,
		CreatedAt: time.Now(), UpdatedAt: time.Now(),
	}
	f.tables[id] = table
	return table, nil
}

func (f *fakeBanquetRepo) GetByID(_ context.Context, id int64) (*domain.BanquetTable, error) {
	t, ok := f.tables[id]
	if !ok {
		return nil, banquetRepo.ErrTableNotFound
	}
	return t, nil
}

func (f *fakeBanquetRepo) UpdateState(_ context.Context, id int64, state bool) error {
	t, ok := f.tables[id]
	if !ok {
		return banquetRepo.ErrTableNotFound
	}
	t.State = state
	return nil
}

func (f *fakeBanquetRepo) Delete(_ context.Context, id int64) error {
	if _, ok := f.tables[id]; !ok {
		return banquetRepo.ErrTableNotFound
	}
	delete(f.tables, id)
	return nil
}

func (f *fakeBanquetRepo) ListSeats(_ context.Context, tableID *int64) ([]*domain.BanquetSeat, error) {
	out := make([]*domain.BanquetSeat, 0)
	for _, t := range f.tables {
		if tableID != nil && t.ID != *tableID {
			continue
		}
		for i := range t.Seats {
			out = append(out, &t.Seats[i])
		}
	}
	return out, nil
}

func (f *fakeBanquetRepo) GetSeatByID(_ context.Context, id int64) (*domain.BanquetSeat, error) {
	for _, t := range f.tables {
		for i := range t.Seats {
			if t.Seats[i].ID == id {
				return &t.Seats[i], nil
			}
		}
	}
	return nil, banquetRepo.ErrSeatNotFound
}

type fakeTxManager struct {
	calls int
}

func (f *fakeTxManager) DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error {
	f.calls++
	return fn(ctx)
}

type noopLogger struct{}

func (noopLogger) Info(string, ...interface{})  {}
func (noopLogger) Warn(string, ...interface{})  {}
func (noopLogger) Error(string, ...interface{}) {}

func TestCreateTable_DefaultCapacity(t *testing.T) {
	repo := newFakeBanquetRepo()
	tx := &fakeTxManager{}
	svc := NewService(repo, tx, noopLogger{})

	table, err := svc.CreateTable(context.Background(), &models.CreateTableRequest{})
	require.NoError(t, err)

	assert.Equal(t, domain.DefaultTableCapacity, table.Capacity)
	assert.True(t, table.State)
	assert.Len(t, table.AvailableSeats, domain.DefaultTableCapacity)
	assert.Equal(t, 1, tx.calls, "create runs inside a transaction")

	for i, seat := range table.AvailableSeats {
		assert.Equal(t, i+1, seat.SeatNumber)
	}
}

func TestCreateTable_RejectsCapacityOutOfRange(t *testing.T) {
	svc := NewService(newFakeBanquetRepo(), &fakeTxManager{}, noopLogger{})

	_, err := svc.CreateTable(context.Background(), &models.CreateTableRequest{Capacity: ptr.Ptr(0)})
	assert.ErrorIs(t, err, ErrInvalidInput)

	_, err = svc.CreateTable(context.Background(), &models.CreateTableRequest{Capacity: ptr.Ptr(domain.MaxTableCapacity + 1)})
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestUpdateTable_StateOnly(t *testing.T) {
	repo := newFakeBanquetRepo()
	svc := NewService(repo, &fakeTxManager{}, noopLogger{})

	created, err := svc.CreateTable(context.Background(), &models.CreateTableRequest{Capacity: ptr.Ptr(4)})
	require.NoError(t, err)

	updated, err := svc.UpdateTable(context.Background(), created.ID, &models.UpdateTableRequest{State: ptr.Ptr(false)})
	require.NoError(t, err)
	assert.False(t, updated.State)
	assert.Equal(t, 4, updated.Capacity)

	_, err = svc.UpdateTable(context.Background(), created.ID, &models.UpdateTableRequest{})
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestDeleteTable_NotFound(t *testing.T) {
	svc := NewService(newFakeBanquetRepo(), &fakeTxManager{}, noopLogger{})

	err := svc.DeleteTable(context.Background(), 42)
	assert.ErrorIs(t, err, ErrTableNotFound)
}

func TestListSeats_FilterByTable(t *testing.T) {
	repo := newFakeBanquetRepo()
	svc := NewService(repo, &fakeTxManager{}, noopLogger{})

	first, err := svc.CreateTable(context.Background(), &models.CreateTableRequest{Capacity: ptr.Ptr(2)})
	require.NoError(t, err)
	_, err = svc.CreateTable(context.Background(), &models.CreateTableRequest{Capacity: ptr.Ptr(3)})
	require.NoError(t, err)

	all, err := svc.ListSeats(context.Background(), nil)
	require.NoError(t, err)
	assert.Equal(t, 5, all.Total)

	filtered, err := svc.ListSeats(context.Background(), &first.ID)
	require.NoError(t, err)
	assert.Equal(t, 2, filtered.Total)
	for _, seat := range filtered.Seats {
		assert.Equal(t, first.ID, seat.TableID)
	}
}
