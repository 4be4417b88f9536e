package rooms

import (
	"context"
	"time"

	"github.com/rusunawa-id/booking-service/internal/domain"
)

// RoomRepository интерфейс репозитория комнат
type RoomRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.Room, error)
	GetRentalTypes(ctx context.Context) ([]domain.RentalType, error)
	GetUnavailableDates(ctx context.Context, roomID int64, start, end time.Time) ([]time.Time, error)
}

// BookingRepository интерфейс репозитория бронирований
type BookingRepository interface {
	GetActiveByRoom(ctx context.Context, roomID int64, start, end time.Time) ([]domain.Booking, error)
}

// Logger интерфейс для логирования
type TransactionManager interface {
	DoReadOnly(ctx context.Context, fn func(ctx context.Context) error) error
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
