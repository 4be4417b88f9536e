package reservation

import (
	"fmt"
	"math"
	"time"

	"github.com/shopspring/decimal"

	"github.com/rusunawa-id/booking-service/internal/domain"
)

// ResolveEndDate returns the end of the stay for the rental type.
// Daily stays use the requested end date; monthly stays derive it from the
// start date by calendar-month addition (see domain.AddMonths for clamping).
func ResolveEndDate(rentalType domain.RentalType, start, end time.Time, monthsToRent int) (time.Time, error) {
	switch {
	case rentalType.IsDaily():
		return domain.DateOnly(end), nil
	case rentalType.IsMonthly():
		if monthsToRent < domain.MinMonthsToRent || monthsToRent > domain.MaxMonthsToRent {
			return time.Time{}, fmt.Errorf("%w: got %d", ErrInvalidMonths, monthsToRent)
		}
		if start.IsZero() {
			return time.Time{}, fmt.Errorf("%w: start date is required", ErrDateRangeInvalid)
		}
		return domain.AddMonths(start, monthsToRent), nil
	default:
		return time.Time{}, fmt.Errorf("%w: %q", ErrUnknownRentalType, rentalType.Name)
	}
}

// CalculateQuote validates the stay duration and computes the total amount.
// The rental type must be the room's own: the rate is priced per unit of it.
// It covers validation steps 1-3: dates present, start before end and the
// monthly 30-day floor.
func CalculateQuote(room domain.Room, rentalType domain.RentalType, start, end time.Time, monthsToRent int) (*Quote, error) {
	if !rentalType.IsKnown() {
		return nil, fmt.Errorf("%w: %q", ErrUnknownRentalType, rentalType.Name)
	}
	if rentalType.ID != room.RentalTypeID {
		return nil, fmt.Errorf("%w: room id=%d has rental type id=%d, requested id=%d",
			ErrRentalTypeMismatch, room.ID, room.RentalTypeID, rentalType.ID)
	}
	if !room.Rate.IsPositive() {
		return nil, fmt.Errorf("%w: room id=%d", ErrInvalidRate, room.ID)
	}

	// 1. Даты должны быть указаны
	if start.IsZero() || (rentalType.IsDaily() && end.IsZero()) {
		return nil, fmt.Errorf("%w: start and end dates are required", ErrDateRangeInvalid)
	}

	end, err := ResolveEndDate(rentalType, start, end, monthsToRent)
	if err != nil {
		return nil, err
	}
	period := domain.NewDateRange(start, end)

	// 2. Начало строго раньше конца
	if !period.IsValid() {
		return nil, fmt.Errorf("%w: start %s must be before end %s", ErrDateRangeInvalid,
			period.Start.Format(domain.DateFormat), period.End.Format(domain.DateFormat))
	}

	quote := &Quote{StartDate: period.Start, EndDate: period.End}

	if rentalType.IsMonthly() {
		// 3. Защита от патологических результатов календарного сложения
		if days := period.Days(); days < domain.MinMonthlyStayDays {
			return nil, fmt.Errorf("%w: %s - %s is %d days", ErrDurationTooShort,
				period.Start.Format(domain.DateFormat), period.End.Format(domain.DateFormat), days)
		}
		quote.DurationUnits = monthsToRent
	} else {
		quote.DurationUnits = dailyUnits(period)
	}

	quote.TotalAmount = room.Rate.Mul(decimal.NewFromInt(int64(quote.DurationUnits)))
	return quote, nil
}

// dailyUnits считает количество суток с округлением вверх, минимум одни сутки
func dailyUnits(period domain.DateRange) int {
	units := int(math.Ceil(period.End.Sub(period.Start).Hours() / 24))
	if units < domain.MinDailyUnits {
		return domain.MinDailyUnits
	}
	return units
}
