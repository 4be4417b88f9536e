package create_booking

import (
	"context"
	"time"

	"github.com/rusunawa-id/booking-service/internal/domain"
	"github.com/rusunawa-id/booking-service/internal/usecase/check_verification"
)

// BookingRepository интерфейс репозитория бронирований
type BookingRepository interface {
	Create(ctx context.Context, booking *domain.Booking) (*domain.Booking, error)
	GetByTenant(ctx context.Context, filter domain.TenantBookingsFilter) ([]domain.Booking, error)
}

// RoomRepository интерфейс репозитория комнат
type RoomRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.Room, error)
	GetRentalTypeByID(ctx context.Context, id int64) (*domain.RentalType, error)
	GetUnavailableDates(ctx context.Context, roomID int64, start, end time.Time) ([]time.Time, error)
}

// VerificationChecker проверка документов жильца
type VerificationChecker interface {
	Execute(ctx context.Context, req *check_verification.Request) (*check_verification.Response, error)
}

// TransactionManager интерфейс для управления транзакциями
type TransactionManager interface {
	DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error
}

// Metrics интерфейс доменных метрик
type Metrics interface {
	RecordBookingCreated(rentalType string)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
