package check_availability

import (
	"context"
	"time"

	"github.com/rusunawa-id/booking-service/internal/domain"
)

// RoomRepository интерфейс репозитория комнат
type RoomRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.Room, error)
	GetRentalTypeByID(ctx context.Context, id int64) (*domain.RentalType, error)
	GetUnavailableDates(ctx context.Context, roomID int64, start, end time.Time) ([]time.Time, error)
}

// BookingRepository интерфейс репозитория бронирований
type BookingRepository interface {
	GetByTenant(ctx context.Context, filter domain.TenantBookingsFilter) ([]domain.Booking, error)
}

// Metrics интерфейс доменных метрик
type Metrics interface {
	RecordAvailability(outcome string)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
