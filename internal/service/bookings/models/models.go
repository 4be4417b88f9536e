package models

import (
	"errors"
	"time"

	"github.com/shopspring/decimal"

	"github.com/rusunawa-id/booking-service/internal/domain"
)

var (
	// ErrInvalidStatus возвращается при некорректном статусе
	ErrInvalidStatus = errors.New("invalid booking status")
)

// Requester кто выполняет запрос: жилец (X-Tenant-ID) или администратор (X-Role: admin)
type Requester struct {
	TenantID int64
	IsAdmin  bool
}

// CanAccessTenant проверяет доступ к данным жильца
func (r Requester) CanAccessTenant(tenantID int64) bool {
	return r.IsAdmin || r.TenantID == tenantID
}

// Request модели

// CancelBookingRequest запрос на отмену бронирования жильцом
type CancelBookingRequest struct {
	Requester Requester
}

// UpdateStatusRequest запрос администратора на смену статуса
type UpdateStatusRequest struct {
	Requester Requester
	Status    string `json:"status"`
}

// GetTenantBookingsRequest запрос на получение бронирований жильца
type GetTenantBookingsRequest struct {
	Requester  Requester
	TenantID   int64   `json:"tenantId"`
	Status     *string `json:"status,omitempty"`
	OnlyActive bool    `json:"onlyActive,omitempty"`
}

// ToDomainFilter конвертирует request в domain фильтр
func (r *GetTenantBookingsRequest) ToDomainFilter() (domain.TenantBookingsFilter, error) {
	filter := domain.TenantBookingsFilter{
		TenantID:   r.TenantID,
		OnlyActive: r.OnlyActive,
	}

	if r.Status != nil {
		status, err := ToDomainBookingStatus(*r.Status)
		if err != nil {
			return filter, err
		}
		filter.Status = &status
	}

	return filter, nil
}

// Response модели

// BookingResponse ответ с данными бронирования
type BookingResponse struct {
	ID           int64           `json:"id"`
	TenantID     int64           `json:"tenantId"`
	RoomID       int64           `json:"roomId"`
	RentalTypeID int64           `json:"rentalTypeId"`
	CheckInDate  string          `json:"checkInDate"`  // "2025-03-01"
	CheckOutDate string          `json:"checkOutDate"` // "2025-03-05"
	Status       string          `json:"status"`
	TotalAmount  decimal.Decimal `json:"totalAmount"`
	MonthsToRent *int            `json:"monthsToRent,omitempty"`
	IsActive     bool            `json:"isActive"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// BookingListResponse ответ со списком бронирований
type BookingListResponse struct {
	Bookings []BookingResponse `json:"bookings"`
}

// Методы конвертации

// FromDomainBooking конвертирует domain модель в DTO
func FromDomainBooking(b *domain.Booking) *BookingResponse {
	if b == nil {
		return nil
	}

	return &BookingResponse{
		ID:           b.ID,
		TenantID:     b.TenantID,
		RoomID:       b.RoomID,
		RentalTypeID: b.RentalTypeID,
		CheckInDate:  b.CheckInDate.Format(domain.DateFormat),
		CheckOutDate: b.CheckOutDate.Format(domain.DateFormat),
		Status:       string(b.Status),
		TotalAmount:  b.TotalAmount,
		MonthsToRent: b.MonthsToRent,
		IsActive:     b.IsActive(),
		CreatedAt:    b.CreatedAt,
		UpdatedAt:    b.UpdatedAt,
	}
}

// FromDomainBookingList конвертирует список domain моделей в DTO
func FromDomainBookingList(bookings []domain.Booking) *BookingListResponse {
	resp := &BookingListResponse{
		Bookings: make([]BookingResponse, len(bookings)),
	}

	for i := range bookings {
		resp.Bookings[i] = *FromDomainBooking(&bookings[i])
	}

	return resp
}

// ToDomainBookingStatus конвертирует строку в domain.BookingStatus с валидацией
func ToDomainBookingStatus(status string) (domain.BookingStatus, error) {
	s := domain.BookingStatus(status)
	if !s.IsValid() {
		return "", ErrInvalidStatus
	}
	return s, nil
}
