package reservation

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/rusunawa-id/booking-service/internal/domain"
)

// Request is a snapshot of everything the engine needs to evaluate a stay
type Request struct {
	Room       domain.Room
	RentalType domain.RentalType
	StartDate  time.Time
	EndDate    time.Time // только для посуточной аренды, для помесячной вычисляется
	// MonthsToRent задаётся явно для помесячной аренды (1..12)
	MonthsToRent int

	BlackoutDates    []time.Time
	ExistingBookings []domain.Booking // бронирования жильца во всех комнатах
}

// Result is the availability and pricing verdict for a requested stay
type Result struct {
	IsAvailable   bool
	StartDate     time.Time
	EndDate       time.Time
	DurationUnits int
	TotalAmount   decimal.Decimal

	ConflictingBookings []domain.Booking
	BlackoutConflicts   []time.Time
	// ActiveBooking активное бронирование жильца, блокирующее новое (если есть)
	ActiveBooking *domain.Booking
}

// Quote is the duration and price part of a result
type Quote struct {
	StartDate     time.Time
	EndDate       time.Time
	DurationUnits int
	TotalAmount   decimal.Decimal
}
