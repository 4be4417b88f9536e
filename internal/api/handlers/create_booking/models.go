package create_booking

import (
	"github.com/shopspring/decimal"

	"github.com/rusunawa-id/booking-service/internal/api/handlers"
	"github.com/rusunawa-id/booking-service/internal/service/bookings/models"
	createBooking "github.com/rusunawa-id/booking-service/internal/usecase/create_booking"
)

// CreateBookingRequest HTTP request model
type CreateBookingRequest struct {
	TenantID     int64  `json:"tenantId,omitempty" validate:"gte=0"` // только для администратора
	RoomID       int64  `json:"roomId" validate:"required,gt=0"`
	RentalTypeID int64  `json:"rentalTypeId" validate:"required,gt=0"`
	StartDate    string `json:"startDate" validate:"required,datetime=2006-01-02"`
	EndDate      string `json:"endDate,omitempty" validate:"omitempty,datetime=2006-01-02"`
	MonthsToRent int    `json:"monthsToRent,omitempty" validate:"gte=0"`
	// TotalAmount сумма, которую видел жилец; если передана, должна совпасть с пересчитанной
	TotalAmount *decimal.Decimal `json:"totalAmount,omitempty"`
}

// BookingCreatedResponse HTTP response model
type BookingCreatedResponse struct {
	Booking        *models.BookingResponse `json:"booking"`
	RentalTypeName string                  `json:"rentalTypeName"`
	DurationUnits  int                     `json:"durationUnits"`
}

// RejectionResponse ответ 409 с причиной отказа
type RejectionResponse struct {
	Code    int                     `json:"code"`
	Message string                  `json:"message"`
	Reason  string                  `json:"reason"`
	Quote   *handlers.QuoteResponse `json:"quote,omitempty"`
}

// ToUseCaseRequest конвертирует HTTP запрос в модель use case
func (r *CreateBookingRequest) ToUseCaseRequest(tenantID int64) (*createBooking.Request, error) {
	start, err := handlers.ParseDate(r.StartDate)
	if err != nil {
		return nil, err
	}
	end, err := handlers.ParseDate(r.EndDate)
	if err != nil {
		return nil, err
	}

	return &createBooking.Request{
		TenantID:       tenantID,
		RoomID:         r.RoomID,
		RentalTypeID:   r.RentalTypeID,
		StartDate:      start,
		EndDate:        end,
		MonthsToRent:   r.MonthsToRent,
		ExpectedAmount: r.TotalAmount,
	}, nil
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *createBooking.Response) *BookingCreatedResponse {
	return &BookingCreatedResponse{
		Booking:        models.FromDomainBooking(&resp.Booking),
		RentalTypeName: string(resp.RentalType.Name),
		DurationUnits:  resp.Result.DurationUnits,
	}
}
