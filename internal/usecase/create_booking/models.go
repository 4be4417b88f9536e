package create_booking

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/rusunawa-id/booking-service/internal/domain"
	"github.com/rusunawa-id/booking-service/internal/reservation"
)

// Request модель запроса на создание бронирования
type Request struct {
	TenantID     int64
	RoomID       int64
	RentalTypeID int64
	StartDate    time.Time
	EndDate      time.Time // только для посуточной аренды
	MonthsToRent int       // только для помесячной аренды
	// ExpectedAmount сумма, показанная жильцу (опционально)
	ExpectedAmount *decimal.Decimal
}

// Response модель ответа с созданным бронированием
type Response struct {
	Booking    domain.Booking
	RentalType domain.RentalType
	Result     reservation.Result
}
