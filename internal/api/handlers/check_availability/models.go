package check_availability

import (
	"github.com/rusunawa-id/booking-service/internal/api/handlers"
	checkAvailability "github.com/rusunawa-id/booking-service/internal/usecase/check_availability"
)

// CheckAvailabilityRequest HTTP request model
type CheckAvailabilityRequest struct {
	TenantID     int64  `json:"tenantId,omitempty" validate:"gte=0"` // только для администратора
	RoomID       int64  `json:"roomId" validate:"required,gt=0"`
	RentalTypeID int64  `json:"rentalTypeId" validate:"required,gt=0"`
	StartDate    string `json:"startDate" validate:"required,datetime=2006-01-02"`          // "2025-03-01"
	EndDate      string `json:"endDate,omitempty" validate:"omitempty,datetime=2006-01-02"` // посуточная аренда
	MonthsToRent int    `json:"monthsToRent,omitempty" validate:"gte=0"`                    // помесячная аренда
}

// AvailabilityResponse HTTP response model
type AvailabilityResponse struct {
	RoomID         int64  `json:"roomId"`
	RentalTypeID   int64  `json:"rentalTypeId"`
	RentalTypeName string `json:"rentalTypeName,omitempty"`
	*handlers.QuoteResponse
	Reason  string `json:"reason,omitempty"`
	Message string `json:"message,omitempty"`
}

// ToUseCaseRequest конвертирует HTTP запрос в модель use case
func (r *CheckAvailabilityRequest) ToUseCaseRequest(tenantID int64) (*checkAvailability.Request, error) {
	start, err := handlers.ParseDate(r.StartDate)
	if err != nil {
		return nil, err
	}
	end, err := handlers.ParseDate(r.EndDate)
	if err != nil {
		return nil, err
	}

	return &checkAvailability.Request{
		TenantID:     tenantID,
		RoomID:       r.RoomID,
		RentalTypeID: r.RentalTypeID,
		StartDate:    start,
		EndDate:      end,
		MonthsToRent: r.MonthsToRent,
	}, nil
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *checkAvailability.Response) *AvailabilityResponse {
	out := &AvailabilityResponse{
		RoomID:         resp.Room.ID,
		RentalTypeID:   resp.RentalType.ID,
		RentalTypeName: string(resp.RentalType.Name),
		QuoteResponse:  handlers.FromReservationResult(resp.Result),
	}

	if reason, message, ok := handlers.RejectionMessage(resp.Rejection, resp.Result); ok {
		out.Reason = reason
		out.Message = message
	}

	return out
}
