package reservation

import (
	"fmt"
	"time"

	"github.com/rusunawa-id/booking-service/internal/domain"
)

// Evaluate checks availability and computes the price of a requested stay.
//
// Validation order:
//  1. dates present and parseable (monthly: months in 1..12)
//  2. start before end
//  3. monthly stays cover at least 30 days
//  4. no day of [start, end) is blacked out
//  5. the tenant holds no active booking (overlap and global rule)
//
// Steps 1-3 short-circuit with an empty result. Steps 4 and 5 are both
// evaluated so the result lists blackout and booking conflicts together; the
// returned error is the first failing step.
func Evaluate(req Request) (Result, error) {
	quote, err := CalculateQuote(req.Room, req.RentalType, req.StartDate, req.EndDate, req.MonthsToRent)
	if err != nil {
		return Unavailable(), err
	}

	period := domain.NewDateRange(quote.StartDate, quote.EndDate)
	result := Result{
		StartDate:     quote.StartDate,
		EndDate:       quote.EndDate,
		DurationUnits: quote.DurationUnits,
		TotalAmount:   quote.TotalAmount,
	}

	// 4. Проверка недоступных дат комнаты
	result.BlackoutConflicts = FindBlackouts(period, req.BlackoutDates)

	// 5. Пересечения с активными бронированиями жильца и глобальное правило
	// "одно активное бронирование на жильца"
	result.ConflictingBookings = FindOverlapping(period, req.ExistingBookings)
	result.ActiveBooking = FindActiveBooking(period, req.ExistingBookings)

	if len(result.BlackoutConflicts) > 0 {
		return result, fmt.Errorf("%w: %s", ErrDateBlackout, result.BlackoutConflicts[0].Format(domain.DateFormat))
	}

	if result.ActiveBooking != nil {
		return result, fmt.Errorf("%w: booking id=%d in room id=%d until %s", ErrActiveBookingConflict,
			result.ActiveBooking.ID, result.ActiveBooking.RoomID,
			result.ActiveBooking.CheckOutDate.Format(domain.DateFormat))
	}

	result.IsAvailable = true
	return result, nil
}

// Unavailable returns the fail-closed result used whenever availability
// cannot be established, including snapshot fetch failures.
func Unavailable() Result {
	return Result{
		IsAvailable:         false,
		ConflictingBookings: make([]domain.Booking, 0),
		BlackoutConflicts:   make([]time.Time, 0),
	}
}
