package reservation

import (
	"time"

	"github.com/rusunawa-id/booking-service/internal/domain"
)

// FindOverlapping returns the active bookings whose stay intersects the period.
// Cancelled, completed and rejected bookings never conflict. The room is not
// compared: a tenant may not hold two simultaneous stays anywhere.
func FindOverlapping(period domain.DateRange, bookings []domain.Booking) []domain.Booking {
	result := make([]domain.Booking, 0)
	for _, b := range bookings {
		if !b.IsActive() {
			continue
		}
		if period.Overlaps(b.Range()) {
			result = append(result, b)
		}
	}
	return result
}

// FindActiveBooking returns an active booking of the tenant regardless of dates.
// An overlapping one is preferred so the caller surfaces the most relevant stay.
func FindActiveBooking(period domain.DateRange, bookings []domain.Booking) *domain.Booking {
	var found *domain.Booking
	for i := range bookings {
		b := bookings[i]
		if !b.IsActive() {
			continue
		}
		if period.Overlaps(b.Range()) {
			return &b
		}
		if found == nil {
			found = &b
		}
	}
	return found
}

// FindBlackouts returns every day of the period that appears in the unavailable list, in date order
func FindBlackouts(period domain.DateRange, unavailable []time.Time) []time.Time {
	blocked := make(map[time.Time]struct{}, len(unavailable))
	for _, d := range unavailable {
		blocked[domain.DateOnly(d)] = struct{}{}
	}

	result := make([]time.Time, 0)
	if len(blocked) == 0 {
		return result
	}
	period.EachDay(func(day time.Time) bool {
		if _, ok := blocked[day]; ok {
			result = append(result, day)
		}
		return true
	})
	return result
}
