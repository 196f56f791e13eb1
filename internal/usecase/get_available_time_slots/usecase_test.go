package get_available_time_slots

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tak4ma/VMS-BanquetService/internal/domain"
	"github.com/tak4ma/VMS-BanquetService/internal/usecase/list_available_seats"
)

type fixedTime struct {
	now time.Time
}

func (f fixedTime) Now() time.Time { return f.now }

// fakeAvailability отвечает "занято" для окон из busy, иначе "свободно"
type fakeAvailability struct {
	busy map[time.Time]bool

	calls []time.Time
	err   error
}

func (f *fakeAvailability) Execute(_ context.Context, req *list_available_seats.Request) (*list_available_seats.Response, error) {
	f.calls = append(f.calls, req.StartTime)
	if f.err != nil {
		return nil, f.err
	}

	resp := &list_available_seats.Response{
		SpiritID:  req.SpiritID,
		StartTime: req.StartTime,
		EndTime:   req.StartTime.Add(domain.SlotDuration),
	}
	if !f.busy[req.StartTime] {
		resp.Tables = []list_available_seats.TableAvailability{{
			ID: 1, Capacity: 1, State: true, Available: true,
			Seats: []list_available_seats.SeatAvailability{{ID: 1, SeatNumber: 1, Available: true}},
		}}
	}
	return resp, nil
}

type noopLogger struct{}

func (noopLogger) Info(string, ...interface{})  {}
func (noopLogger) Warn(string, ...interface{})  {}
func (noopLogger) Error(string, ...interface{}) {}

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func newUseCase(availability *fakeAvailability, now time.Time) *UseCase {
	return NewUseCase(availability, noopLogger{}).WithTimeProvider(fixedTime{now: now})
}

func TestExecute_FutureDateReturnsFullGrid(t *testing.T) {
	availability := &fakeAvailability{}
	uc := newUseCase(availability, time.Date(2026, 5, 10, 12, 0, 0, 0, time.UTC))

	resp, err := uc.Execute(context.Background(), &Request{SpiritID: 1, Date: date(2026, 5, 20)})
	require.NoError(t, err)

	assert.Equal(t, domain.TimeSlots, resp.Slots)
	assert.Len(t, availability.calls, len(domain.TimeSlots))
}

func TestExecute_SlotWindowsAreVenueLocal(t *testing.T) {
	// "09:00 AM" по часам заведения (UTC-5) соответствует 14:00 UTC
	availability := &fakeAvailability{}
	uc := newUseCase(availability, time.Date(2026, 5, 10, 12, 0, 0, 0, time.UTC))

	_, err := uc.Execute(context.Background(), &Request{SpiritID: 1, Date: date(2026, 5, 20)})
	require.NoError(t, err)

	require.NotEmpty(t, availability.calls)
	assert.Equal(t, time.Date(2026, 5, 20, 14, 0, 0, 0, time.UTC), availability.calls[0])
	assert.Equal(t, time.UTC, availability.calls[0].Location())
}

func TestExecute_PastDateReturnsEmptyWithoutQueries(t *testing.T) {
	availability := &fakeAvailability{}
	uc := newUseCase(availability, time.Date(2026, 5, 10, 12, 0, 0, 0, time.UTC))

	resp, err := uc.Execute(context.Background(), &Request{SpiritID: 1, Date: date(2026, 5, 9)})
	require.NoError(t, err)

	assert.Empty(t, resp.Slots)
	assert.Empty(t, availability.calls, "no availability checks for a past date")
}

func TestExecute_TodayExcludesElapsedSlots(t *testing.T) {
	// 16:30 UTC = 11:30 по часам заведения: окна "09:00 AM" и "10:00 AM"
	// уже закончились, "11:00 AM" еще идет и остается в сетке
	availability := &fakeAvailability{}
	uc := newUseCase(availability, time.Date(2026, 5, 10, 16, 30, 0, 0, time.UTC))

	resp, err := uc.Execute(context.Background(), &Request{SpiritID: 1, Date: date(2026, 5, 10)})
	require.NoError(t, err)

	require.NotEmpty(t, resp.Slots)
	assert.Equal(t, "11:00 AM", resp.Slots[0])
	assert.Len(t, resp.Slots, len(domain.TimeSlots)-2)
}

func TestExecute_VenueDayLagsUTC(t *testing.T) {
	// 03:00 UTC 10 мая = 22:00 9 мая по часам заведения:
	// 10 мая для заведения еще завтра, сетка полная;
	// 9 мая - сегодня, но все окна уже закончились
	availability := &fakeAvailability{}
	uc := newUseCase(availability, time.Date(2026, 5, 10, 3, 0, 0, 0, time.UTC))

	resp, err := uc.Execute(context.Background(), &Request{SpiritID: 1, Date: date(2026, 5, 10)})
	require.NoError(t, err)
	assert.Equal(t, domain.TimeSlots, resp.Slots)

	availability.calls = nil
	resp, err = uc.Execute(context.Background(), &Request{SpiritID: 1, Date: date(2026, 5, 9)})
	require.NoError(t, err)
	assert.Empty(t, resp.Slots)
	assert.Empty(t, availability.calls)
}

func TestExecute_BusySlotsDroppedOrderPreserved(t *testing.T) {
	day := date(2026, 5, 20)
	busyAt := func(label string) time.Time {
		start, _, err := slotWindow(day, label)
		require.NoError(t, err)
		return start
	}
	availability := &fakeAvailability{busy: map[time.Time]bool{
		busyAt("10:00 AM"): true,
		busyAt("01:00 PM"): true,
	}}
	uc := newUseCase(availability, time.Date(2026, 5, 10, 12, 0, 0, 0, time.UTC))

	resp, err := uc.Execute(context.Background(), &Request{SpiritID: 1, Date: day})
	require.NoError(t, err)

	assert.NotContains(t, resp.Slots, "10:00 AM")
	assert.NotContains(t, resp.Slots, "01:00 PM")
	assert.Len(t, resp.Slots, len(domain.TimeSlots)-2)

	// Порядок оставшихся меток совпадает с порядком сетки
	want := make([]string, 0, len(domain.TimeSlots)-2)
	for _, label := range domain.TimeSlots {
		if label != "10:00 AM" && label != "01:00 PM" {
			want = append(want, label)
		}
	}
	assert.Equal(t, want, resp.Slots)
}

func TestExecute_NoFreeSeatsAnywhere(t *testing.T) {
	day := date(2026, 5, 20)
	busy := make(map[time.Time]bool, len(domain.TimeSlots))
	for _, label := range domain.TimeSlots {
		start, _, err := slotWindow(day, label)
		require.NoError(t, err)
		busy[start] = true
	}
	availability := &fakeAvailability{busy: busy}
	uc := newUseCase(availability, time.Date(2026, 5, 10, 12, 0, 0, 0, time.UTC))

	resp, err := uc.Execute(context.Background(), &Request{SpiritID: 1, Date: day})
	require.NoError(t, err)

	assert.NotNil(t, resp.Slots)
	assert.Empty(t, resp.Slots)
}

func TestExecute_AvailabilityErrorWrapped(t *testing.T) {
	availability := &fakeAvailability{err: assert.AnError}
	uc := newUseCase(availability, time.Date(2026, 5, 10, 12, 0, 0, 0, time.UTC))

	_, err := uc.Execute(context.Background(), &Request{SpiritID: 1, Date: date(2026, 5, 20)})
	assert.ErrorIs(t, err, ErrInternal)
}

func TestExecute_ValidatesInput(t *testing.T) {
	uc := newUseCase(&fakeAvailability{}, time.Date(2026, 5, 10, 12, 0, 0, 0, time.UTC))

	_, err := uc.Execute(context.Background(), &Request{SpiritID: 0, Date: date(2026, 5, 20)})
	assert.ErrorIs(t, err, ErrInvalidInput)

	_, err = uc.Execute(context.Background(), &Request{SpiritID: 1})
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestSlotWindow(t *testing.T) {
	start, end, err := slotWindow(date(2026, 5, 20), "09:00 PM")
	require.NoError(t, err)

	assert.Equal(t, time.Date(2026, 5, 21, 2, 0, 0, 0, time.UTC), start)
	assert.Equal(t, time.Date(2026, 5, 21, 3, 0, 0, 0, time.UTC), end)
}
