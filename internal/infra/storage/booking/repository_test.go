package booking

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rusunawa-id/booking-service/internal/domain"
	"github.com/rusunawa-id/booking-service/pkg/dbmetrics"
)

func newMock(t *testing.T) (*Repository, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })
	return NewRepository(db), mock
}

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func bookingRows() *sqlmock.Rows {
	return sqlmock.NewRows(bookingColumns)
}

func TestCreate(t *testing.T) {
	repo, mock := newMock(t)
	now := time.Now()
	months := 2

	mock.ExpectQuery("INSERT INTO bookings").
		WillReturnRows(sqlmock.NewRows([]string{"id", "created_at", "updated_at"}).AddRow(int64(42), now, now))

	created, err := repo.Create(context.Background(), &domain.Booking{
		TenantID:     7,
		RoomID:       3,
		RentalTypeID: 2,
		CheckInDate:  date(2025, 1, 15),
		CheckOutDate: date(2025, 3, 15),
		Status:       domain.StatusPending,
		TotalAmount:  decimal.NewFromInt(5000000),
		MonthsToRent: &months,
	})

	require.NoError(t, err)
	assert.Equal(t, int64(42), created.ID)
	assert.Equal(t, now, created.CreatedAt)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCreate_ExecError(t *testing.T) {
	repo, mock := newMock(t)

	mock.ExpectQuery("INSERT INTO bookings").WillReturnError(errors.New("connection reset"))

	_, err := repo.Create(context.Background(), &domain.Booking{Status: domain.StatusPending})

	assert.ErrorIs(t, err, ErrExecQuery)
}

func TestGetByID(t *testing.T) {
	repo, mock := newMock(t)
	now := time.Now()

	mock.ExpectQuery(`SELECT (.+) FROM bookings WHERE id = \$1`).
		WithArgs(int64(5)).
		WillReturnRows(bookingRows().AddRow(
			int64(5), int64(7), int64(3), int64(1),
			date(2025, 3, 1), date(2025, 3, 5),
			"approved", "200000.00", nil, now, now,
		))

	b, err := repo.GetByID(context.Background(), 5)

	require.NoError(t, err)
	assert.Equal(t, domain.StatusApproved, b.Status)
	assert.True(t, b.TotalAmount.Equal(decimal.NewFromInt(200000)))
	assert.Nil(t, b.MonthsToRent)
	assert.Equal(t, date(2025, 3, 5), b.CheckOutDate)
}

func TestGetByID_NotFound(t *testing.T) {
	repo, mock := newMock(t)

	mock.ExpectQuery(`SELECT (.+) FROM bookings`).WillReturnRows(bookingRows())

	_, err := repo.GetByID(context.Background(), 404)

	assert.ErrorIs(t, err, ErrBookingNotFound)
}

func TestGetByTenant_StatusFilter(t *testing.T) {
	repo, mock := newMock(t)
	now := time.Now()
	status := domain.StatusPending

	mock.ExpectQuery(`SELECT (.+) FROM bookings WHERE tenant_id = \$1 AND status = \$2 ORDER BY check_in_date DESC, id DESC`).
		WithArgs(int64(7), "pending").
		WillReturnRows(bookingRows().AddRow(
			int64(1), int64(7), int64(3), int64(2),
			date(2025, 1, 15), date(2025, 3, 15),
			"pending", "5000000", int64(2), now, now,
		))

	list, err := repo.GetByTenant(context.Background(), domain.TenantBookingsFilter{TenantID: 7, Status: &status})

	require.NoError(t, err)
	require.Len(t, list, 1)
	require.NotNil(t, list[0].MonthsToRent)
	assert.Equal(t, 2, *list[0].MonthsToRent)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestGetByTenant_ActiveInTransactionLocksRows(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()
	repo := NewRepository(db)

	mock.ExpectBegin()
	mock.ExpectQuery(`FROM bookings WHERE tenant_id = \$1 AND status IN \(\$2,\$3,\$4\) (.+) FOR UPDATE`).
		WithArgs(int64(7), "pending", "approved", "checked_in").
		WillReturnRows(bookingRows())
	mock.ExpectCommit()

	tx, err := db.Begin()
	require.NoError(t, err)
	ctx := dbmetrics.WithTx(context.Background(), tx)

	list, err := repo.GetByTenant(ctx, domain.TenantBookingsFilter{TenantID: 7, OnlyActive: true})
	require.NoError(t, err)
	assert.Empty(t, list)

	require.NoError(t, tx.Commit())
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestGetActiveByRoom(t *testing.T) {
	repo, mock := newMock(t)

	mock.ExpectQuery(`FROM bookings WHERE room_id = \$1 AND status IN (.+) AND check_in_date < (.+) AND check_out_date > (.+)`).
		WillReturnRows(bookingRows())

	list, err := repo.GetActiveByRoom(context.Background(), 3, date(2025, 3, 1), date(2025, 4, 1))

	require.NoError(t, err)
	assert.Empty(t, list)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUpdateStatus(t *testing.T) {
	t.Run("updated", func(t *testing.T) {
		repo, mock := newMock(t)
		mock.ExpectExec(`UPDATE bookings SET status = \$1, updated_at = NOW\(\) WHERE id = \$2`).
			WithArgs("approved", int64(5)).
			WillReturnResult(sqlmock.NewResult(0, 1))

		assert.NoError(t, repo.UpdateStatus(context.Background(), 5, domain.StatusApproved))
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("not found", func(t *testing.T) {
		repo, mock := newMock(t)
		mock.ExpectExec("UPDATE bookings").WillReturnResult(sqlmock.NewResult(0, 0))

		assert.ErrorIs(t, repo.UpdateStatus(context.Background(), 5, domain.StatusApproved), ErrBookingNotFound)
	})

	t.Run("invalid status", func(t *testing.T) {
		repo, _ := newMock(t)

		assert.ErrorIs(t, repo.UpdateStatus(context.Background(), 5, "archived"), ErrInvalidStatus)
	})
}
