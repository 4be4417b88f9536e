package rooms

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rusunawa-id/booking-service/internal/domain"
	roomRepo "github.com/rusunawa-id/booking-service/internal/infra/storage/room"
)

type fakeRooms struct {
	blackouts []time.Time
	typesErr  error
}

func (f *fakeRooms) GetByID(_ context.Context, id int64) (*domain.Room, error) {
	if id != 3 {
		return nil, roomRepo.ErrRoomNotFound
	}
	return &domain.Room{ID: 3, Name: "A-101", Rate: decimal.NewFromInt(50000)}, nil
}

func (f *fakeRooms) GetRentalTypes(_ context.Context) ([]domain.RentalType, error) {
	return []domain.RentalType{{ID: 1, Name: domain.RentalDaily}, {ID: 2, Name: domain.RentalMonthly}}, f.typesErr
}

func (f *fakeRooms) GetUnavailableDates(_ context.Context, _ int64, _, _ time.Time) ([]time.Time, error) {
	return f.blackouts, nil
}

type fakeBookings struct {
	bookings []domain.Booking
	err      error
}

func (f *fakeBookings) GetActiveByRoom(_ context.Context, _ int64, _, _ time.Time) ([]domain.Booking, error) {
	return f.bookings, f.err
}

// readOnlyTx выполняет fn без БД; beginErr имитирует ошибку открытия транзакции
type readOnlyTx struct {
	beginErr error
	calls    int
}

func (f *readOnlyTx) DoReadOnly(ctx context.Context, fn func(ctx context.Context) error) error {
	f.calls++
	if f.beginErr != nil {
		return f.beginErr
	}
	return fn(ctx)
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestGetRentalTypes(t *testing.T) {
	svc := NewService(&fakeRooms{}, &fakeBookings{}, &readOnlyTx{}, nopLogger{})

	resp, err := svc.GetRentalTypes(context.Background())

	require.NoError(t, err)
	require.Len(t, resp.RentalTypes, 2)
	assert.Equal(t, "bulanan", resp.RentalTypes[1].Name)

	_, err = NewService(&fakeRooms{typesErr: errors.New("down")}, &fakeBookings{}, &readOnlyTx{}, nopLogger{}).GetRentalTypes(context.Background())
	assert.ErrorIs(t, err, ErrInternal)
}

func TestGetAvailability(t *testing.T) {
	rooms := &fakeRooms{blackouts: []time.Time{date(2025, 3, 2)}}
	bookings := &fakeBookings{bookings: []domain.Booking{{
		ID: 1, RoomID: 3, Status: domain.StatusApproved,
		CheckInDate: date(2025, 3, 4), CheckOutDate: date(2025, 3, 6),
	}}}
	tx := &readOnlyTx{}
	svc := NewService(rooms, bookings, tx, nopLogger{})

	resp, err := svc.GetAvailability(context.Background(), 3, date(2025, 3, 1), date(2025, 3, 7))

	require.NoError(t, err)
	require.Len(t, resp.Days, 6)
	got := make([]bool, len(resp.Days))
	for i, d := range resp.Days {
		got[i] = d.IsAvailable
	}
	// 1 свободно, 2 закрыто, 3 свободно, 4-5 заняты, 6 свободно (выезд 6-го)
	assert.Equal(t, []bool{true, false, true, false, false, true}, got)
	assert.Equal(t, "2025-03-01", resp.Days[0].Date)
	assert.Equal(t, 1, tx.calls)
}

func TestGetAvailability_ReadFailures(t *testing.T) {
	_, err := NewService(&fakeRooms{}, &fakeBookings{}, &readOnlyTx{beginErr: errors.New("begin failed")}, nopLogger{}).
		GetAvailability(context.Background(), 3, date(2025, 3, 1), date(2025, 3, 5))
	assert.ErrorIs(t, err, ErrInternal)

	_, err = NewService(&fakeRooms{}, &fakeBookings{err: errors.New("timeout")}, &readOnlyTx{}, nopLogger{}).
		GetAvailability(context.Background(), 3, date(2025, 3, 1), date(2025, 3, 5))
	assert.ErrorIs(t, err, ErrInternal)
	assert.NotErrorIs(t, err, ErrRoomNotFound)
}

func TestGetAvailability_InvalidRange(t *testing.T) {
	svc := NewService(&fakeRooms{}, &fakeBookings{}, &readOnlyTx{}, nopLogger{})

	_, err := svc.GetAvailability(context.Background(), 3, date(2025, 3, 5), date(2025, 3, 1))
	assert.ErrorIs(t, err, ErrInvalidRange)

	_, err = svc.GetAvailability(context.Background(), 3, date(2025, 1, 1), date(2026, 6, 1))
	assert.ErrorIs(t, err, ErrInvalidRange)

	_, err = svc.GetAvailability(context.Background(), 9, date(2025, 3, 1), date(2025, 3, 5))
	assert.ErrorIs(t, err, ErrRoomNotFound)
}
