package handlers

import (
	"errors"
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"github.com/rusunawa-id/booking-service/internal/domain"
	"github.com/rusunawa-id/booking-service/internal/reservation"
	"github.com/rusunawa-id/booking-service/internal/service/bookings/models"
)

// QuoteResponse результат проверки доступности и расчёта стоимости
type QuoteResponse struct {
	IsAvailable   bool            `json:"isAvailable"`
	StartDate     string          `json:"startDate,omitempty"`
	EndDate       string          `json:"endDate,omitempty"`
	DurationUnits int             `json:"durationUnits"`
	TotalAmount   decimal.Decimal `json:"totalAmount"`

	BlackoutDates       []string                 `json:"blackoutDates,omitempty"`
	ConflictingBookings []models.BookingResponse `json:"conflictingBookings,omitempty"`
	ActiveBooking       *models.BookingResponse  `json:"activeBooking,omitempty"`
}

// FromReservationResult конвертирует результат движка бронирования в DTO
func FromReservationResult(r reservation.Result) *QuoteResponse {
	resp := &QuoteResponse{
		IsAvailable:   r.IsAvailable,
		StartDate:     formatDate(r.StartDate),
		EndDate:       formatDate(r.EndDate),
		DurationUnits: r.DurationUnits,
		TotalAmount:   r.TotalAmount,
		ActiveBooking: models.FromDomainBooking(r.ActiveBooking),
	}

	for _, d := range r.BlackoutConflicts {
		resp.BlackoutDates = append(resp.BlackoutDates, d.Format(domain.DateFormat))
	}
	if len(r.ConflictingBookings) > 0 {
		resp.ConflictingBookings = models.FromDomainBookingList(r.ConflictingBookings).Bookings
	}

	return resp
}

func formatDate(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.Format(domain.DateFormat)
}

// Причины недоступности периода
const (
	ReasonDateBlackout          = "date_blackout"
	ReasonActiveBookingConflict = "active_booking_conflict"
)

// RejectionMessage возвращает код причины и сообщение для жильца, если err это отказ
// из-за закрытой даты или активного бронирования. Для остальных ошибок ok = false.
func RejectionMessage(err error, r reservation.Result) (reason, message string, ok bool) {
	switch {
	case errors.Is(err, reservation.ErrDateBlackout):
		message = "Kamar tidak tersedia pada tanggal yang dipilih"
		if len(r.BlackoutConflicts) > 0 {
			message = fmt.Sprintf("Kamar tidak tersedia pada tanggal %s", r.BlackoutConflicts[0].Format(domain.DateFormat))
		}
		return ReasonDateBlackout, message, true

	case errors.Is(err, reservation.ErrActiveBookingConflict):
		message = "Anda masih memiliki pemesanan aktif"
		if r.ActiveBooking != nil {
			message = fmt.Sprintf("Anda masih memiliki pemesanan aktif di kamar %d hingga %s",
				r.ActiveBooking.RoomID, r.ActiveBooking.CheckOutDate.Format(domain.DateFormat))
		}
		return ReasonActiveBookingConflict, message, true
	}

	return "", "", false
}

// PeriodErrorMessage возвращает сообщение для ошибок валидации периода движка бронирования
func PeriodErrorMessage(err error) (string, bool) {
	switch {
	case errors.Is(err, reservation.ErrInvalidMonths):
		return "jumlah bulan sewa harus antara 1 dan 12", true
	case errors.Is(err, reservation.ErrDateRangeInvalid):
		return "rentang tanggal tidak valid, tanggal mulai harus sebelum tanggal selesai", true
	case errors.Is(err, reservation.ErrDurationTooShort):
		return "durasi sewa bulanan minimal 30 hari", true
	case errors.Is(err, reservation.ErrUnknownRentalType):
		return "tipe sewa tidak didukung", true
	case errors.Is(err, reservation.ErrRentalTypeMismatch):
		return "tipe sewa tidak tersedia untuk kamar ini", true
	case errors.Is(err, reservation.ErrInvalidRate):
		return "tarif kamar tidak valid", true
	}
	return "", false
}
