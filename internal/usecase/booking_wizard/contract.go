package booking_wizard

import (
	"context"
	"time"

	"github.com/rusunawa-id/booking-service/internal/domain"
	"github.com/rusunawa-id/booking-service/internal/usecase/check_availability"
	"github.com/rusunawa-id/booking-service/internal/usecase/create_booking"
	"github.com/rusunawa-id/booking-service/internal/wizard"
)

// SessionStore хранилище сессий мастера с оптимистичной проверкой ревизии
type SessionStore interface {
	Get(ctx context.Context, sessionID string) (*wizard.State, error)
	Save(ctx context.Context, state wizard.State, expectedRevision int64) error
}

// RoomRepository интерфейс репозитория комнат
type RoomRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.Room, error)
	GetRentalTypeByID(ctx context.Context, id int64) (*domain.RentalType, error)
}

// AvailabilityChecker проверка доступности и расчёт стоимости
type AvailabilityChecker interface {
	Execute(ctx context.Context, req *check_availability.Request) (*check_availability.Response, error)
}

// BookingCreator создание бронирования
type BookingCreator interface {
	Execute(ctx context.Context, req *create_booking.Request) (*create_booking.Response, error)
}

// Metrics интерфейс доменных метрик
type Metrics interface {
	RecordWizardTransition(step, result string)
}

// TimeProvider интерфейс для получения текущего времени (для тестирования)
type TimeProvider interface {
	Now() time.Time
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// RealTimeProvider реальный провайдер времени для production
type RealTimeProvider struct{}

// Now возвращает текущее время
func (p *RealTimeProvider) Now() time.Time {
	return time.Now()
}
