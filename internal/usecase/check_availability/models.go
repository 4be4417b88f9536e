package check_availability

import (
	"time"

	"github.com/rusunawa-id/booking-service/internal/domain"
	"github.com/rusunawa-id/booking-service/internal/reservation"
)

// Request модель запроса проверки доступности и расчёта стоимости
type Request struct {
	TenantID     int64
	RoomID       int64
	RentalTypeID int64
	StartDate    time.Time
	EndDate      time.Time // только для посуточной аренды
	MonthsToRent int       // только для помесячной аренды
}

// Response результат проверки доступности
type Response struct {
	Room       domain.Room
	RentalType domain.RentalType
	Result     reservation.Result
	// Rejection причина недоступности (ErrDateBlackout или ErrActiveBookingConflict), nil если доступно
	Rejection error
}

// Исходы проверки для метрик
const (
	outcomeAvailable   = "available"
	outcomeInvalid     = "invalid"
	outcomeBlackout    = "blackout"
	outcomeConflict    = "conflict"
	outcomeUnavailable = "unavailable"
)
