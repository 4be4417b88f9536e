package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// BookingStatus represents the status of a booking
type BookingStatus string

const (
	StatusPending   BookingStatus = "pending"
	StatusApproved  BookingStatus = "approved"
	StatusCheckedIn BookingStatus = "checked_in"
	StatusCompleted BookingStatus = "completed"
	StatusCancelled BookingStatus = "cancelled"
	StatusRejected  BookingStatus = "rejected"
)

// IsValid returns true if the status is one of the known booking statuses
func (s BookingStatus) IsValid() bool {
	switch s {
	case StatusPending, StatusApproved, StatusCheckedIn, StatusCompleted, StatusCancelled, StatusRejected:
		return true
	default:
		return false
	}
}

// Booking represents a room reservation made by a tenant
type Booking struct {
	ID           int64
	TenantID     int64
	RoomID       int64
	RentalTypeID int64
	CheckInDate  time.Time
	CheckOutDate time.Time
	Status       BookingStatus
	TotalAmount  decimal.Decimal
	MonthsToRent *int // только для помесячной аренды

	CreatedAt time.Time
	UpdatedAt time.Time
}

// IsActive returns true if the booking takes part in conflict detection
func (b *Booking) IsActive() bool {
	return b.Status == StatusPending ||
		b.Status == StatusApproved ||
		b.Status == StatusCheckedIn
}

// Range returns the half-open stay period of the booking
func (b *Booking) Range() DateRange {
	return NewDateRange(b.CheckInDate, b.CheckOutDate)
}

// CanBeCancelled returns true if the booking can still be cancelled
func (b *Booking) CanBeCancelled() bool {
	return b.Status == StatusPending || b.Status == StatusApproved
}

// CanTransitionTo checks the admin-driven status lifecycle:
// pending -> approved|rejected|cancelled, approved -> checked_in|cancelled,
// checked_in -> completed
func (b *Booking) CanTransitionTo(next BookingStatus) bool {
	allowed, ok := StatusTransitions[b.Status]
	if !ok {
		return false
	}
	for _, s := range allowed {
		if s == next {
			return true
		}
	}
	return false
}

// TenantBookingsFilter фильтр для получения бронирований жильца
type TenantBookingsFilter struct {
	TenantID   int64          // Обязательный параметр
	Status     *BookingStatus // Фильтр по статусу (опционально)
	OnlyActive bool           // Только активные бронирования (pending, approved, checked_in)
}
